package risk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"txlens/internal/risk"
	"txlens/internal/risk/fake"
	tokenIssuer "txlens/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Client", func() {
	var (
		client     *risk.Client
		fakeTokens *fake.TokenIssuer
		engine     *httptest.Server
		handler    http.HandlerFunc
		ctx        context.Context

		gotRequest *http.Request
		gotBody    risk.Request

		analysisRequest risk.Request
		result          risk.Result
		err             error
	)

	BeforeEach(func() {
		ctx = context.Background()
		gotRequest = nil
		gotBody = risk.Request{}
		fakeTokens = new(fake.TokenIssuer)
		fakeTokens.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
		fakeTokens.SignReturns("signed.token", nil)

		analysisRequest = risk.Request{
			TxHash:        "a1b2c3d4",
			WalletAddress: "addr1qxyz",
			Metadata:      map[string]any{"kycVerified": false},
		}

		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"txHash": "a1b2c3d4",
				"walletAddress": "addr1qxyz",
				"complianceScore": 72,
				"riskLevel": "Medium",
				"issues": ["wallet is not KYC verified"],
				"recommendations": ["request KYC"]
			}`))
		}
	})

	JustBeforeEach(func() {
		engine = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			gotRequest = r
			Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())
			handler(w, r)
		}))
		DeferCleanup(engine.Close)

		var tokens risk.TokenIssuer
		if fakeTokens != nil {
			tokens = fakeTokens
		}

		client = risk.NewClient(zap.NewNop().Sugar(), engine.Client(), engine.URL+"/", "txlens", tokens)
		result, err = client.Analyze(ctx, analysisRequest)
	})

	When("the risk engine answers with a valid result", func() {
		It("returns the result unchanged", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(risk.Result{
				TxHash:          "a1b2c3d4",
				WalletAddress:   "addr1qxyz",
				ComplianceScore: 72,
				RiskLevel:       "Medium",
				Issues:          []string{"wallet is not KYC verified"},
				Recommendations: []string{"request KYC"},
			}))
		})

		It("posts the request as JSON to the analyze endpoint", func() {
			Expect(gotRequest.Method).To(Equal(http.MethodPost))
			Expect(gotRequest.URL.Path).To(Equal("/analyze"))
			Expect(gotRequest.Header.Get("Content-Type")).To(Equal("application/json"))
			Expect(gotBody).To(Equal(analysisRequest))
		})

		It("authenticates with a signed service token", func() {
			Expect(gotRequest.Header.Get("Authorization")).To(Equal("Bearer signed.token"))
			Expect(fakeTokens.GenerateCallCount()).To(Equal(1))
			Expect(fakeTokens.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
				Subject:    "txlens",
				Audience:   "risk-engine",
				Expiration: 5 * time.Minute,
			}))
			Expect(fakeTokens.SignCallCount()).To(Equal(1))
		})
	})

	When("metadata is omitted", func() {
		BeforeEach(func() {
			analysisRequest.Metadata = nil
		})

		It("sends an empty metadata object", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gotBody.Metadata).To(Equal(map[string]any{}))
		})
	})

	When("no token issuer is configured", func() {
		BeforeEach(func() {
			fakeTokens = nil
		})

		It("sends no Authorization header", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gotRequest.Header.Get("Authorization")).To(BeEmpty())
		})
	})

	When("signing the service token fails", func() {
		BeforeEach(func() {
			fakeTokens.SignReturns("", errors.New("bad key"))
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(ContainSubstring("sign service token: bad key")))
		})
	})

	When("the risk engine responds with an error status", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "engine down", http.StatusBadGateway)
			}
		})

		It("returns ErrUnexpectedStatus with the status and body", func() {
			Expect(err).To(MatchError(risk.ErrUnexpectedStatus))
			Expect(err.Error()).To(ContainSubstring("502: engine down"))
			Expect(result).To(Equal(risk.Result{}))
		})
	})

	When("the risk engine omits issues and recommendations", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"txHash":"a1b2c3d4","complianceScore":50,"riskLevel":"Low"}`))
			}
		})

		It("returns empty lists that encode as JSON arrays", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Issues).To(Equal([]string{}))
			Expect(result.Recommendations).To(Equal([]string{}))

			encoded, marshalErr := json.Marshal(result)
			Expect(marshalErr).NotTo(HaveOccurred())
			Expect(encoded).To(MatchJSON(`{"txHash":"a1b2c3d4","complianceScore":50,"riskLevel":"Low","issues":[],"recommendations":[]}`))
		})
	})

	When("the risk engine returns an invalid result", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"txHash":"a1b2c3d4","complianceScore":140,"riskLevel":"Extreme"}`))
			}
		})

		It("returns a validation error", func() {
			Expect(err).To(MatchError(ContainSubstring("validate analysis result")))
		})
	})

	When("the risk engine returns malformed JSON", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			}
		})

		It("returns a decode error", func() {
			Expect(err).To(MatchError(ContainSubstring("decode analysis result")))
		})
	})
})
