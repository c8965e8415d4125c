// Package wallet defines the contract the orchestrator consumes for key
// derivation, addresses and spends. CoreWallet, backed by a
// bitcoind-compatible node, is the implementation in this package.
package wallet

import "context"

type Balance struct {
	Total       uint64
	Confirmed   uint64
	Unconfirmed uint64
}

// KeyPair is an HD-derived key pair, hex encoded.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

type SendResult struct {
	TransactionID string
	Vout          uint32
}

//go:generate go tool mockgen -destination=mock.go -package=wallet . Wallet
type Wallet interface {
	GetBalance(ctx context.Context) (*Balance, error)
	NewAddress(ctx context.Context) (string, error)
	GetKeysByIndex(index uint32) (*KeyPair, error)
	// SendToAddress sends the amount in the smallest unit of the chain,
	// with fee in sat/vByte (gas price for account chains).
	SendToAddress(ctx context.Context, address string, amount uint64, fee float64) (*SendResult, error)
	// SweepWallet spends the whole confirmed balance to the address.
	SweepWallet(ctx context.Context, address string, fee float64) (*SendResult, error)
}
