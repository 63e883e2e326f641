package tronscan

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// trxDecimals is the number of implicit decimal places in raw TRX amounts.
const trxDecimals = 6

// transactionListResponse is the envelope of the native transaction listing.
type transactionListResponse struct {
	Total int64               `json:"total"`
	Data  []TransactionRecord `json:"data"`
}

// tokenTransferListResponse is the envelope of the TRC-20 transfer listing.
type tokenTransferListResponse struct {
	Total int64                 `json:"total"`
	Data  []TokenTransferRecord `json:"data"`
}

// TransactionRecord is one native transaction as returned by the explorer.
// Numeric fields arrive inconsistently typed across explorer versions, so
// they are kept raw and decoded leniently.
type TransactionRecord struct {
	Hash         string          `json:"hash"`
	Timestamp    json.RawMessage `json:"timestamp"`
	Block        json.RawMessage `json:"block"`
	OwnerAddress string          `json:"ownerAddress"`
	ToAddress    string          `json:"toAddress"`
	Amount       json.RawMessage `json:"amount"`
	ContractType json.RawMessage `json:"contractType"`
}

// TokenTransferRecord is one TRC-20 transfer as returned by the explorer.
type TokenTransferRecord struct {
	Hash            string          `json:"hash"`
	BlockTimestamp  json.RawMessage `json:"block_timestamp"`
	Block           json.RawMessage `json:"block"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	Amount          json.RawMessage `json:"amount"`
	TokenName       string          `json:"token_name"`
	Decimals        json.RawMessage `json:"decimals"`
	ContractAddress string          `json:"contract_address"`
	Status          json.RawMessage `json:"status"`
	Direction       json.RawMessage `json:"direction"`
}

// parseInt extracts an integer from a raw JSON value that may arrive as a
// number, a quoted string, or not at all. Malformed values fall back to def.
func parseInt(raw json.RawMessage, def int64) int64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return def
	}
	s = strings.Trim(s, `"`)

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}

	return v
}

// parseDecimal extracts a decimal from a raw JSON value that may arrive as a
// number or a quoted string. Malformed values fall back to zero.
func parseDecimal(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero
	}
	s = strings.Trim(s, `"`)

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return v
}

// parseTimestamp converts an explorer millisecond timestamp into a wall-clock
// time. Missing or malformed timestamps yield the zero time, which downstream
// treats as unknown.
func parseTimestamp(raw json.RawMessage) time.Time {
	ms := parseInt(raw, 0)
	if ms <= 0 {
		return time.Time{}
	}

	return time.UnixMilli(ms).UTC()
}
