package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"txlens/internal/cardano"
	"txlens/internal/core"
	"txlens/internal/http/handler"
	"txlens/internal/http/handler/fake"
	"txlens/internal/http/handler/middleware"
	"txlens/internal/risk"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TransactionHandler", func() {
	var (
		th            *handler.TransactionHandler
		fakeService   *fake.TransactionService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		txHash        string
		fakeErr       error
	)

	BeforeEach(func() {
		txHash = strings.Repeat("a1", 32)
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.TransactionService)
		fakeValidator = new(fake.RequestValidator)

		w = httptest.NewRecorder()
		th = handler.NewTransactionHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleGetTransaction", func() {
		var response handler.Response

		BeforeEach(func() {
			response = handler.Response{}
			req = httptest.NewRequest("GET", "/api/transaction/"+txHash, nil)
			req.SetPathValue("txHash", txHash)
		})

		JustBeforeEach(func() {
			th.HandleGetTransaction(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("the transaction is generated", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(cardano.Transaction{Hash: txHash, Block: "#9100000"}, nil)
			})

			It("wraps it in a success envelope", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
				Expect(response.Success).To(BeTrue())
				Expect(response.Message).To(Equal("Transaction data retrieved (simulated for demo purposes)"))
				Expect(response.Data).To(HaveKeyWithValue("hash", txHash))
				Expect(response.Data).To(HaveKeyWithValue("block", "#9100000"))

				Expect(fakeService.GetTransactionCallCount()).To(Equal(1))
				_, argHash := fakeService.GetTransactionArgsForCall(0)
				Expect(argHash).To(Equal(txHash))
			})
		})

		When("the hash is not 64 characters long", func() {
			BeforeEach(func() {
				req.SetPathValue("txHash", "abc123")
			})

			It("should return 400 Bad Request without generating", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Success).To(BeFalse())
				Expect(response.Detail).To(Equal("Invalid transaction hash. Must be 64 hexadecimal characters."))
				Expect(fakeService.GetTransactionCallCount()).To(Equal(0))
			})
		})

		When("the hash is not hexadecimal", func() {
			BeforeEach(func() {
				req.SetPathValue("txHash", strings.Repeat("zz", 32))
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetTransactionCallCount()).To(Equal(0))
			})
		})

		When("the service rejects the identifier", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(cardano.Transaction{}, core.ErrMalformedIdentifier)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Detail).To(ContainSubstring("Invalid transaction hash"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(cardano.Transaction{}, fakeErr)
			})

			It("should return 500 Internal Server Error with the failure description", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Success).To(BeFalse())
				Expect(response.Detail).To(Equal("Error fetching transaction: fake-error"))
			})
		})
	})

	Describe("HandleAnalyzeTransaction", func() {
		var body string

		BeforeEach(func() {
			body = `{"txHash":"` + txHash + `","walletAddress":"addr1qxyz","metadata":{"kycVerified":false}}`
			fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/analyzeTransaction", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			th.HandleAnalyzeTransaction(w, req)
		})

		When("the analysis succeeds", func() {
			BeforeEach(func() {
				fakeService.AnalyzeTransactionReturns(risk.Result{
					TxHash:          txHash,
					ComplianceScore: 64,
					RiskLevel:       "Medium",
					Issues:          []string{"wallet is not KYC verified"},
					Recommendations: []string{},
				}, nil)
			})

			It("returns the analysis result unchanged", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var result risk.Result
				Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
				Expect(result.ComplianceScore).To(Equal(64))
				Expect(result.RiskLevel).To(Equal("Medium"))
				Expect(result.Issues).To(ConsistOf("wallet is not KYC verified"))

				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
				argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))

				Expect(fakeService.AnalyzeTransactionCallCount()).To(Equal(1))
				_, msg := fakeService.AnalyzeTransactionArgsForCall(0)
				Expect(msg).To(Equal(core.AnalysisMessage{
					TxHash:        txHash,
					WalletAddress: "addr1qxyz",
					Metadata:      map[string]any{"kycVerified": false},
				}))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
				fakeValidator.DecodeJSONPayloadStub = nil
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AnalyzeTransactionCallCount()).To(Equal(0))
			})
		})

		When("the risk engine fails", func() {
			BeforeEach(func() {
				fakeService.AnalyzeTransactionReturns(risk.Result{}, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("Error analyzing transaction: fake-error"))
			})
		})
	})

	Describe("HandleHealth", func() {
		It("reports ok", func() {
			req = httptest.NewRequest("GET", "/health", nil)
			th.HandleHealth(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
		})
	})

	When("routed through a mux behind the request id middleware", func() {
		It("resolves the path value and echoes the request id", func() {
			fakeService.GetTransactionStub = func(ctx context.Context, hash string) (cardano.Transaction, error) {
				Expect(middleware.RequestIDFrom(ctx)).To(Equal("req-42"))
				return cardano.Transaction{Hash: hash}, nil
			}

			mux := http.NewServeMux()
			mux.HandleFunc("GET /api"+handler.GetTransaction, th.HandleGetTransaction)
			srv := middleware.NewRequestIDMiddleware().RequestID(mux)

			req = httptest.NewRequest("GET", "/api/transaction/"+txHash, nil)
			req.Header.Set(middleware.RequestIDHeader, "req-42")
			srv.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("req-42"))
			Expect(w.Body.String()).To(ContainSubstring(txHash))
		})
	})
})
