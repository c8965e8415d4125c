package chain

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

// BitcoindClient talks to a bitcoind-compatible node (bitcoind, litecoind)
// over its JSON-RPC interface.
type BitcoindClient struct {
	rpc *rpcclient.Client
}

type BitcoindConfig struct {
	Host     string
	User     string
	Password string
}

func NewBitcoindClient(cfg BitcoindConfig) (*BitcoindClient, error) {
	rpc, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         cfg.Host,
		User:         cfg.User,
		Pass:         cfg.Password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rpc client: %w", err)
	}

	return &BitcoindClient{rpc: rpc}, nil
}

func (c *BitcoindClient) GetNetworkInfo(_ context.Context) (*NetworkInfo, error) {
	info, err := c.rpc.GetNetworkInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get network info: %w", err)
	}

	return &NetworkInfo{
		Version:     info.Version,
		Connections: info.Connections,
	}, nil
}

func (c *BitcoindClient) GetBlockchainInfo(_ context.Context) (*BlockchainInfo, error) {
	info, err := c.rpc.GetBlockChainInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get blockchain info: %w", err)
	}

	blocks := uint32(info.Blocks)

	return &BlockchainInfo{
		Blocks: blocks,
		// bitcoind scans as it validates, so both counters track the tip.
		ScannedBlocks: blocks,
	}, nil
}

func (c *BitcoindClient) EstimateFee(_ context.Context, blocks int32) (float64, error) {
	mode := btcjson.EstimateModeConservative
	estimate, err := c.rpc.EstimateSmartFee(int64(blocks), &mode)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate fee: %w", err)
	}
	if estimate.FeeRate == nil {
		return 0, fmt.Errorf("fee estimation not available")
	}

	// estimatesmartfee returns BTC/kvB.
	return *estimate.FeeRate * 1e8 / 1000, nil
}

func (c *BitcoindClient) GetRawTransaction(_ context.Context, txID string) (string, error) {
	hash, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return "", fmt.Errorf("failed to parse transaction id: %w", err)
	}

	tx, err := c.rpc.GetRawTransaction(hash)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tx.MsgTx().Serialize(&buf); err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}

	return hex.EncodeToString(buf.Bytes()), nil
}

func (c *BitcoindClient) SendRawTransaction(_ context.Context, txHex string) (string, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return "", fmt.Errorf("failed to decode transaction hex: %w", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return "", fmt.Errorf("failed to deserialize transaction: %w", err)
	}

	hash, err := c.rpc.SendRawTransaction(tx, false)
	if err != nil {
		// Broadcast rejections are returned verbatim so callers can
		// inspect the node's error code.
		return "", err
	}

	return hash.String(), nil
}
