package cardano

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"
)

const (
	seedPrefixLen    = 8
	addressSuffixLen = 52
	addressAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"

	inputAddressPrefix  = "addr1qymnqvscmt76g2f58sm0qqq8a4ztknqa5asp3z5ydqd8"
	outputAddressPrefix = "addr1qz"

	metadataLabel   = "674"
	metadataMessage = "Cardano Compliance Analysis Result"
)

var ErrMalformedIdentifier error = errors.New("malformed transaction identifier")

// Generator fabricates demo transactions. The same identifier always yields the
// same record for a given reference time.
type Generator struct {
	now func() time.Time
}

type Option func(*Generator)

// WithClock sets the reference time the timestamp offset is subtracted from.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Seed parses the first 8 characters of the identifier as a hexadecimal integer.
func Seed(identifier string) (uint64, error) {
	if len(identifier) < seedPrefixLen {
		return 0, fmt.Errorf("%w: need at least %d characters, got %d", ErrMalformedIdentifier, seedPrefixLen, len(identifier))
	}

	seed, err := strconv.ParseUint(identifier[:seedPrefixLen], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: parse seed %q: %w", ErrMalformedIdentifier, identifier[:seedPrefixLen], err)
	}

	return seed, nil
}

// Generate builds the synthetic transaction for identifier. Every call owns its
// own random stream, so Generate is safe for concurrent use.
func (g *Generator) Generate(identifier string) (Transaction, error) {
	seed, err := Seed(identifier)
	if err != nil {
		return Transaction{}, err
	}

	s := stream{rnd: rand.New(rand.NewPCG(seed, 0))}

	// draw order below is part of the output format, do not reorder
	numInputs := s.between(1, 5)
	numOutputs := s.between(1, 8)
	block := s.between(9_000_000, 9_500_000)
	epoch := s.between(400, 450)
	slot := s.between(100_000, 120_000_000)
	daysAgo := s.between(1, 365)
	confirmations := s.between(1_000, 50_000)
	size := s.between(300, 8_000)
	fee := s.between(160_000, 500_000)

	tx := Transaction{
		Hash:          identifier,
		Block:         fmt.Sprintf("#%d", block),
		Era:           "Babbage",
		Epoch:         epoch,
		Slot:          slot,
		Timestamp:     g.timestamp(daysAgo),
		Confirmations: confirmations,
		Size:          size,
		Fee:           lovelace(fee),
		Status:        "SUCCESS",
		Inputs:        make([]Input, 0, numInputs),
		Outputs:       make([]Output, 0, numOutputs),
		Mint:          []any{},
		Certificates:  []any{},
		Withdrawals:   []any{},
	}

	for range numInputs {
		address := s.address(inputAddressPrefix)
		amount := s.between(1_000_000, 50_000_000)
		tokens := s.between(0, 3)
		tx.Inputs = append(tx.Inputs, Input{Address: address, Amount: lovelace(amount), Tokens: tokens})
	}

	for range numOutputs {
		address := s.address(outputAddressPrefix)
		amount := s.between(1_000_000, 10_000_000)
		tokens := s.between(0, 2)
		tx.Outputs = append(tx.Outputs, Output{Address: address, Amount: lovelace(amount), Tokens: tokens})
	}

	score := s.between(20, 95)
	tx.Metadata = Metadata{
		Label: metadataLabel,
		Content: MetadataContent{
			Msg:   []string{metadataMessage},
			Score: score,
		},
	}

	validFrom := s.between(100_000_000, 120_000_000)
	validTo := s.between(120_000_001, 150_000_000)
	tx.Validity = Validity{
		ValidFrom: validFrom,
		ValidTo:   validTo,
	}

	return tx, nil
}

func (g *Generator) timestamp(daysAgo int) string {
	return g.now().UTC().Add(-time.Duration(daysAgo) * 24 * time.Hour).Format(time.RFC3339Nano)
}

// DemoIdentifier derives a 64 character identifier from a free-form label, the
// same way Cardano derives transaction ids from a body: blake2b-256, hex encoded.
func DemoIdentifier(label string) string {
	sum := blake2b.Sum256([]byte(label))
	return hex.EncodeToString(sum[:])
}

type stream struct {
	rnd *rand.Rand
}

// between returns a value in [lo, hi].
func (s stream) between(lo, hi int) int {
	return lo + s.rnd.IntN(hi-lo+1)
}

func (s stream) address(prefix string) string {
	suffix := make([]byte, addressSuffixLen)
	for i := range suffix {
		suffix[i] = addressAlphabet[s.rnd.IntN(len(addressAlphabet))]
	}
	return prefix + string(suffix)
}

func lovelace(amount int) string {
	return strconv.Itoa(amount) + " lovelace"
}
