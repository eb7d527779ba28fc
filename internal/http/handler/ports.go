package handler

import (
	"context"
	"net/http"

	"txlens/internal/cardano"
	"txlens/internal/core"
	"txlens/internal/risk"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	GetTransaction(ctx context.Context, txHash string) (cardano.Transaction, error)
	AnalyzeTransaction(ctx context.Context, msg core.AnalysisMessage) (risk.Result, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
