package risk

import "github.com/jellydator/validation"

// Request is the body sent to the risk engine.
type Request struct {
	TxHash        string         `json:"tx_hash"`
	WalletAddress string         `json:"wallet_address"`
	Metadata      map[string]any `json:"metadata"`
}

// Result is the analysis the risk engine returns, decoded into the fields API
// clients read. Anything else in the engine's response is dropped.
type Result struct {
	TxHash          string   `json:"txHash"`
	WalletAddress   string   `json:"walletAddress,omitempty"`
	ComplianceScore int      `json:"complianceScore"`
	RiskLevel       string   `json:"riskLevel"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

func (r Result) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TxHash, validation.Required),
		validation.Field(&r.ComplianceScore, validation.Min(0), validation.Max(100)),
		validation.Field(&r.RiskLevel, validation.Required, validation.In("Low", "Medium", "High")),
	)
}

// withEmptyLists replaces missing issue and recommendation lists with empty ones
// so they serialize as [] rather than null.
func (r Result) withEmptyLists() Result {
	if r.Issues == nil {
		r.Issues = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	return r
}
