package core

import (
	"context"
	"errors"
	"fmt"

	"txlens/internal/cardano"
	"txlens/internal/risk"

	"go.uber.org/zap"
)

var ErrMalformedIdentifier error = errors.New("malformed transaction identifier")

// Lens serves synthetic transaction details and forwards analysis requests to the risk engine.
type Lens struct {
	logs      *zap.SugaredLogger
	generator TransactionGenerator
	analyzer  RiskAnalyzer
}

// NewLens is a constructor function for the Lens type.
func NewLens(logger *zap.SugaredLogger, generator TransactionGenerator, analyzer RiskAnalyzer) *Lens {
	return &Lens{
		logs:      logger,
		generator: generator,
		analyzer:  analyzer,
	}
}

// GetTransaction returns the synthetic transaction for txHash. It returns
// ErrMalformedIdentifier when the hash cannot seed the generator.
func (l *Lens) GetTransaction(ctx context.Context, txHash string) (cardano.Transaction, error) {
	tx, err := l.generator.Generate(txHash)
	if err != nil {
		if errors.Is(err, cardano.ErrMalformedIdentifier) {
			l.logs.Infow("rejected transaction identifier", "tx_hash", txHash, "reason", err)
			return cardano.Transaction{}, ErrMalformedIdentifier
		}
		return cardano.Transaction{}, fmt.Errorf("generate transaction: %w", err)
	}

	l.logs.Debugw("synthetic transaction generated",
		"tx_hash", txHash,
		"inputs", len(tx.Inputs),
		"outputs", len(tx.Outputs))

	return tx, nil
}

// AnalyzeTransaction forwards the message to the risk engine and returns its verdict unchanged.
func (l *Lens) AnalyzeTransaction(ctx context.Context, msg AnalysisMessage) (risk.Result, error) {
	result, err := l.analyzer.Analyze(ctx, risk.Request{
		TxHash:        msg.TxHash,
		WalletAddress: msg.WalletAddress,
		Metadata:      msg.Metadata,
	})
	if err != nil {
		return risk.Result{}, fmt.Errorf("analyze transaction: %w", err)
	}

	return result, nil
}
