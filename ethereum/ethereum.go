// Package ethereum holds the account-chain provider used for Ether and
// ERC20 swaps: block height and gas price queries plus address handling.
package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

// Decimal factors of the account chain units.
var (
	GweiDecimals  = decimal.NewFromInt(1_000_000_000)
	EtherDecimals = decimal.RequireFromString("1000000000000000000")
)

// PrepayMinerFeeGasLimit is the gas budget used to size the prepay
// on-chain amount of reverse swaps that lock up on the account chain.
const PrepayMinerFeeGasLimit = 100_000

//go:generate go tool mockgen -destination=mock.go -package=ethereum . Provider
type Provider interface {
	BlockNumber(ctx context.Context) (uint64, error)
	// SuggestGasPrice returns the current gas price in wei.
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// Client implements Provider on top of a go-ethereum RPC connection.
type Client struct {
	eth *ethclient.Client
}

func NewClient(rpcURL string) (*Client, error) {
	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	return &Client{eth: eth}, nil
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.eth.BlockNumber(ctx)
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return c.eth.SuggestGasPrice(ctx)
}

// ChecksumAddress canonicalizes an address into its EIP-55 checksum form.
func ChecksumAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address: %s", address)
	}

	return common.HexToAddress(address).Hex(), nil
}
