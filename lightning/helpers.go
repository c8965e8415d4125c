package lightning

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightningnetwork/lnd/zpay32"
)

// ParsePubKey parses a hex-encoded public key (bitcoin secp256k1) string into a btcec public key object
func ParsePubKey(pubKeyStr string) (*btcec.PublicKey, error) {
	pubKeyBytes, err := hex.DecodeString(pubKeyStr)
	if err != nil {
		return nil, err
	}

	pubKey, err := btcec.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, err
	}

	return pubKey, nil
}

type Network string

const Mainnet Network = "mainnet"
const Regtest Network = "regtest"
const Testnet Network = "testnet"

func ToChainCfgNetwork(network Network) *chaincfg.Params {
	switch network {
	case Mainnet:
		return &chaincfg.MainNetParams
	case Regtest:
		return &chaincfg.RegressionNetParams
	case Testnet:
		return &chaincfg.TestNet3Params
	default:
		return nil
	}
}

// DecodeInvoice parses a BOLT11 payment request against the given chain
// parameters. The params carry the invoice human-readable prefix, so
// litecoin invoices need litecoin params.
func DecodeInvoice(paymentRequest string, params *chaincfg.Params) (*zpay32.Invoice, error) {
	invoice, err := zpay32.Decode(paymentRequest, params)
	if err != nil {
		return nil, fmt.Errorf("failed to decode invoice: %w", err)
	}

	return invoice, nil
}

// InvoiceAmountSats returns the invoice amount in satoshis, zero for
// amountless invoices.
func InvoiceAmountSats(invoice *zpay32.Invoice) uint64 {
	if invoice.MilliSat == nil {
		return 0
	}

	return uint64(invoice.MilliSat.ToSatoshis())
}
