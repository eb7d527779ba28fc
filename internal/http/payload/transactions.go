package payload

import (
	"regexp"

	"txlens/internal/core"

	"github.com/jellydator/validation"
)

var txHashRegex = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// TransactionRequest carries the path parameter of the transaction details route.
type TransactionRequest struct {
	TxHash string
}

func (t TransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.TxHash,
			validation.Required,
			validation.Length(64, 64),
			validation.Match(txHashRegex).Error("must be 64 hexadecimal characters")),
	)
}

type AnalyzeTransactionRequest struct {
	TxHash        string         `json:"txHash"`
	WalletAddress string         `json:"walletAddress"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

func (a AnalyzeTransactionRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.TxHash, validation.Required, validation.Match(txHashRegex).Error("must be 64 hexadecimal characters")),
		validation.Field(&a.WalletAddress, validation.Required),
	)
}

func (a AnalyzeTransactionRequest) ToMessage() core.AnalysisMessage {
	metadata := a.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return core.AnalysisMessage{
		TxHash:        a.TxHash,
		WalletAddress: a.WalletAddress,
		Metadata:      metadata,
	}
}
