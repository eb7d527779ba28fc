package core

type AnalysisMessage struct {
	TxHash        string
	WalletAddress string
	Metadata      map[string]any
}
