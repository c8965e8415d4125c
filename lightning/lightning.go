package lightning

import (
	"context"
	"fmt"

	"github.com/lightningnetwork/lnd/lntypes"
)

var ErrInvoiceCanceled = fmt.Errorf("invoice canceled")

// NodeInfo is a snapshot of the node state as reported by its RPC.
type NodeInfo struct {
	Version     string
	BlockHeight uint32
	Pubkey      string
	URIs        []string

	ActiveChannels   uint32
	InactiveChannels uint32
	PendingChannels  uint32
}

// ChannelBalance is the local/remote split of a single channel in satoshis.
type ChannelBalance struct {
	Local  uint64
	Remote uint64
}

type PaymentResult struct {
	PaymentHash string
	Preimage    string
	FeeSats     uint64
}

// RoutingHint describes one hop hint to embed into an invoice so payments
// get steered through a specific routing node.
type RoutingHint struct {
	NodeID                    string
	ChanID                    uint64
	FeeBaseMsat               uint32
	FeeProportionalMillionths uint32
	CltvExpiryDelta           uint32
}

//go:generate go tool mockgen -destination=mock.go -package=lightning . Client
type Client interface {
	GetInfo(ctx context.Context) (*NodeInfo, error)
	ListChannels(ctx context.Context) ([]ChannelBalance, error)
	SendPayment(ctx context.Context, paymentRequest string) (*PaymentResult, error)
	AddInvoice(ctx context.Context, amountSats uint64, memo string) (paymentRequest string, e error)
	AddHoldInvoice(ctx context.Context, preimageHash lntypes.Hash, amountSats uint64, cltvExpiry uint32, memo string, hints []RoutingHint) (paymentRequest string, e error)
	GetRoutingHints(ctx context.Context, routingNode string) ([]RoutingHint, error)
}
