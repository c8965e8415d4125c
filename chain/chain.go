package chain

import (
	"context"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
)

// NetworkInfo mirrors the subset of getnetworkinfo the service reports.
type NetworkInfo struct {
	Version     int32
	Connections int32
}

// BlockchainInfo mirrors the subset of getblockchaininfo the service reports.
type BlockchainInfo struct {
	Blocks        uint32
	ScannedBlocks uint32
}

//go:generate go tool mockgen -destination=mock.go -package=chain . Client
type Client interface {
	GetNetworkInfo(ctx context.Context) (*NetworkInfo, error)
	GetBlockchainInfo(ctx context.Context) (*BlockchainInfo, error)
	// EstimateFee returns the fee estimate in sat/vByte for a confirmation
	// within the given number of blocks.
	EstimateFee(ctx context.Context, blocks int32) (float64, error)
	GetRawTransaction(ctx context.Context, txID string) (string, error)
	SendRawTransaction(ctx context.Context, txHex string) (string, error)
}

// locktimeRequirementPrefix is the bitcoind rejection message for a refund
// transaction broadcast before its CLTV timeout.
const locktimeRequirementPrefix = "non-mandatory-script-verify-flag (Locktime requirement not satisfied)"

// IsLocktimeRequirementError reports whether the broadcast was rejected
// because the transaction's locktime has not been reached yet.
func IsLocktimeRequirementError(err error) bool {
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}

	return rpcErr.Code == btcjson.ErrRPCVerifyRejected &&
		strings.HasPrefix(rpcErr.Message, locktimeRequirementPrefix)
}
