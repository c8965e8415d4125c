package wallet

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
)

// CoreWallet serves a UTXO chain through the wallet of a bitcoind-compatible
// node, with swap keys derived locally from an HD master key.
type CoreWallet struct {
	rpc    *rpcclient.Client
	master *hdkeychain.ExtendedKey
	params *chaincfg.Params
}

type CoreConfig struct {
	Host     string
	User     string
	Password string

	// Seed of the swap key chain; never sent to the node.
	Seed   []byte
	Params *chaincfg.Params
}

func NewCoreWallet(cfg CoreConfig) (*CoreWallet, error) {
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

	master, err := hdkeychain.NewMaster(cfg.Seed, cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to derive master key: %w", err)
	}

	return &CoreWallet{
		rpc:    rpc,
		master: master,
		params: cfg.Params,
	}, nil
}

func (w *CoreWallet) GetBalance(_ context.Context) (*Balance, error) {
	balances, err := w.rpc.GetBalances()
	if err != nil {
		return nil, fmt.Errorf("failed to get balances: %w", err)
	}

	confirmed, err := btcutil.NewAmount(balances.Mine.Trusted)
	if err != nil {
		return nil, fmt.Errorf("failed to convert balance: %w", err)
	}
	unconfirmed, err := btcutil.NewAmount(balances.Mine.UntrustedPending)
	if err != nil {
		return nil, fmt.Errorf("failed to convert balance: %w", err)
	}

	return &Balance{
		Total:       uint64(confirmed) + uint64(unconfirmed),
		Confirmed:   uint64(confirmed),
		Unconfirmed: uint64(unconfirmed),
	}, nil
}

func (w *CoreWallet) NewAddress(_ context.Context) (string, error) {
	address, err := w.rpc.GetNewAddress("")
	if err != nil {
		return "", fmt.Errorf("failed to get new address: %w", err)
	}

	return address.EncodeAddress(), nil
}

func (w *CoreWallet) GetKeysByIndex(index uint32) (*KeyPair, error) {
	child, err := w.master.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key %d: %w", index, err)
	}

	privKey, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}

	pubKey, err := child.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get public key: %w", err)
	}

	return &KeyPair{
		PublicKey:  hex.EncodeToString(pubKey.SerializeCompressed()),
		PrivateKey: hex.EncodeToString(privKey.Serialize()),
	}, nil
}

func (w *CoreWallet) SendToAddress(_ context.Context, address string, amount uint64, _ float64) (*SendResult, error) {
	decoded, err := btcutil.DecodeAddress(address, w.params)
	if err != nil {
		return nil, fmt.Errorf("failed to decode address: %w", err)
	}

	txHash, err := w.rpc.SendToAddress(decoded, btcutil.Amount(amount))
	if err != nil {
		return nil, fmt.Errorf("failed to send to address: %w", err)
	}

	return &SendResult{TransactionID: txHash.String()}, nil
}

func (w *CoreWallet) SweepWallet(ctx context.Context, address string, fee float64) (*SendResult, error) {
	balance, err := w.GetBalance(ctx)
	if err != nil {
		return nil, err
	}
	if balance.Confirmed == 0 {
		return nil, fmt.Errorf("nothing to sweep")
	}

	return w.SendToAddress(ctx, address, balance.Confirmed, fee)
}
