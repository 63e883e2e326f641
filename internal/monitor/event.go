package monitor

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags the type of on-chain occurrence an Event represents.
type Kind string

const (
	// KindNative identifies a native coin transfer (TRX).
	KindNative Kind = "native"

	// KindToken identifies a TRC-20 token transfer.
	KindToken Kind = "token"
)

// Direction indicates whether an Event moves value toward or away from the
// monitored wallet.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// Metadata carries kind-specific fields used only for rendering
// notifications. The admission logic never inspects it.
type Metadata struct {
	TokenSymbol     string // short token ticker (e.g. "USDT"), empty for native transfers
	TokenName       string // full token name as reported by the explorer
	ContractAddress string // TRC-20 contract address, empty for native transfers
	ContractType    int64  // explorer contract type code for native transactions
	Block           int64  // block number, 0 if unknown
	Status          int64  // explorer status code, 0 means success
}

// Event is the canonical, source-agnostic representation of one on-chain
// transfer relevant to the monitored wallet.
type Event struct {
	ID         string          // transaction hash, the sole deduplication key
	OccurredAt time.Time       // event timestamp; the zero value means unknown
	Kind       Kind            // native or token transfer
	Direction  Direction       // incoming or outgoing relative to the monitored wallet
	Amount     decimal.Decimal // value already scaled by the token's decimals
	From       string          // sender address as reported upstream, not validated
	To         string          // recipient address as reported upstream, not validated
	Metadata   Metadata        // rendering-only extras
}

// InferDirection classifies an event by comparing its counterparty addresses
// against the monitored wallet, case-insensitively. When neither side matches
// the wallet, the provided fallback is returned so sources can supply
// whatever explicit direction flag the upstream API exposes (defaulting to
// incoming when that is absent as well).
func InferDirection(wallet, from, to string, fallback Direction) Direction {
	switch {
	case strings.EqualFold(to, wallet):
		return DirectionIncoming
	case strings.EqualFold(from, wallet):
		return DirectionOutgoing
	default:
		return fallback
	}
}
