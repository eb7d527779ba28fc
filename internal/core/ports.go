package core

import (
	"context"

	"txlens/internal/cardano"
	"txlens/internal/risk"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionGenerator . TransactionGenerator
type TransactionGenerator interface {
	Generate(identifier string) (cardano.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name RiskAnalyzer . RiskAnalyzer
type RiskAnalyzer interface {
	Analyze(ctx context.Context, analysisRequest risk.Request) (risk.Result, error)
}
