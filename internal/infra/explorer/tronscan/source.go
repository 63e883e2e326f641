package tronscan

import (
	"context"

	"github.com/gabapcia/tronwatch/internal/monitor"
)

// nativeSource fetches the wallet's recent native TRX transactions.
type nativeSource struct {
	client *Client
	wallet string
}

var _ monitor.Source = (*nativeSource)(nil)

// NewNativeSource creates a monitor source that reports the wallet's native
// TRX transactions.
func NewNativeSource(client *Client, wallet string) *nativeSource {
	return &nativeSource{
		client: client,
		wallet: wallet,
	}
}

// Name implements monitor.Source.
func (s *nativeSource) Name() string {
	return "trx"
}

// FetchRecent implements monitor.Source.
func (s *nativeSource) FetchRecent(ctx context.Context) ([]monitor.Event, error) {
	records, err := s.client.fetchTransactions(ctx, s.wallet)
	if err != nil {
		return nil, err
	}

	events := make([]monitor.Event, 0, len(records))
	for _, record := range records {
		events = append(events, s.buildEvent(record))
	}

	return events, nil
}

// buildEvent normalizes one raw native transaction into a canonical event.
func (s *nativeSource) buildEvent(record TransactionRecord) monitor.Event {
	return monitor.Event{
		ID:         record.Hash,
		OccurredAt: parseTimestamp(record.Timestamp),
		Kind:       monitor.KindNative,
		Direction:  monitor.InferDirection(s.wallet, record.OwnerAddress, record.ToAddress, monitor.DirectionOutgoing),
		Amount:     parseDecimal(record.Amount).Shift(-trxDecimals),
		From:       record.OwnerAddress,
		To:         record.ToAddress,
		Metadata: monitor.Metadata{
			TokenSymbol:  "TRX",
			ContractType: parseInt(record.ContractType, 0),
			Block:        parseInt(record.Block, 0),
		},
	}
}

// tokenSource fetches the wallet's recent TRC-20 transfers for one token
// contract.
type tokenSource struct {
	client          *Client
	wallet          string
	contractAddress string
	symbol          string
}

var _ monitor.Source = (*tokenSource)(nil)

// NewTokenSource creates a monitor source that reports the wallet's TRC-20
// transfers for the given token contract.
func NewTokenSource(client *Client, wallet, contractAddress, symbol string) *tokenSource {
	return &tokenSource{
		client:          client,
		wallet:          wallet,
		contractAddress: contractAddress,
		symbol:          symbol,
	}
}

// Name implements monitor.Source.
func (s *tokenSource) Name() string {
	return "trc20:" + s.symbol
}

// FetchRecent implements monitor.Source.
func (s *tokenSource) FetchRecent(ctx context.Context) ([]monitor.Event, error) {
	records, err := s.client.fetchTokenTransfers(ctx, s.wallet, s.contractAddress)
	if err != nil {
		return nil, err
	}

	events := make([]monitor.Event, 0, len(records))
	for _, record := range records {
		events = append(events, s.buildEvent(record))
	}

	return events, nil
}

// buildEvent normalizes one raw TRC-20 transfer into a canonical event.
func (s *tokenSource) buildEvent(record TokenTransferRecord) monitor.Event {
	// The explorer flags outgoing transfers with direction 1. When the flag
	// is absent the addresses decide, defaulting to incoming.
	fallback := monitor.DirectionIncoming
	if parseInt(record.Direction, 0) == 1 {
		fallback = monitor.DirectionOutgoing
	}

	return monitor.Event{
		ID:         record.Hash,
		OccurredAt: parseTimestamp(record.BlockTimestamp),
		Kind:       monitor.KindToken,
		Direction:  monitor.InferDirection(s.wallet, record.From, record.To, fallback),
		Amount:     parseDecimal(record.Amount).Shift(-int32(parseInt(record.Decimals, 0))),
		From:       record.From,
		To:         record.To,
		Metadata: monitor.Metadata{
			TokenSymbol:     s.symbol,
			TokenName:       record.TokenName,
			ContractAddress: record.ContractAddress,
			Block:           parseInt(record.Block, 0),
			Status:          parseInt(record.Status, 0),
		},
	}
}
