package cardano

type Transaction struct {
	Hash          string   `json:"hash"`
	Block         string   `json:"block"`
	Era           string   `json:"era"`
	Epoch         int      `json:"epoch"`
	Slot          int      `json:"slot"`
	Timestamp     string   `json:"timestamp"`
	Confirmations int      `json:"confirmations"`
	Size          int      `json:"size"`
	Fee           string   `json:"fee"`
	Status        string   `json:"status"`
	Inputs        []Input  `json:"inputs"`
	Outputs       []Output `json:"outputs"`
	Metadata      Metadata `json:"metadata"`
	Validity      Validity `json:"validity"`
	Mint          []any    `json:"mint"`
	Certificates  []any    `json:"certificates"`
	Withdrawals   []any    `json:"withdrawals"`
}

type Input struct {
	Address string `json:"address"`
	Amount  string `json:"amount"` // lovelace, unit-labeled
	Tokens  int    `json:"tokens"`
}

type Output struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
	Tokens  int    `json:"tokens"`
}

type Metadata struct {
	Label   string          `json:"label"`
	Content MetadataContent `json:"content"`
}

type MetadataContent struct {
	Msg   []string `json:"msg"`
	Score int      `json:"score"`
}

// Validity is the slot interval in which the transaction may be included.
type Validity struct {
	ValidFrom int `json:"valid_from"`
	ValidTo   int `json:"valid_to"`
}
