package bitcoin

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tideswap/tideswap/lightning"
)

// Litecoin parameters for address derivation and invoice decoding. Only the
// fields the service touches are overridden; the chains are never registered
// with btcd's global registry.
var (
	LitecoinMainNetParams = litecoinParams(chaincfg.MainNetParams, "litecoin", 0x30, 0x32, "ltc")
	LitecoinTestNetParams = litecoinParams(chaincfg.TestNet3Params, "litecoin-testnet", 0x6f, 0x3a, "tltc")
	LitecoinRegtestParams = litecoinParams(chaincfg.RegressionNetParams, "litecoin-regtest", 0x6f, 0x3a, "rltc")
)

func litecoinParams(base chaincfg.Params, name string, pubKeyHashID, scriptHashID byte, bech32HRP string) chaincfg.Params {
	params := base
	params.Name = name
	params.PubKeyHashAddrID = pubKeyHashID
	params.ScriptHashAddrID = scriptHashID
	params.Bech32HRPSegwit = bech32HRP

	return params
}

// ChainParams resolves the chain parameters for a UTXO chain symbol.
func ChainParams(symbol string, network lightning.Network) *chaincfg.Params {
	if symbol == "LTC" {
		switch network {
		case lightning.Mainnet:
			return &LitecoinMainNetParams
		case lightning.Testnet:
			return &LitecoinTestNetParams
		case lightning.Regtest:
			return &LitecoinRegtestParams
		}
	}

	return lightning.ToChainCfgNetwork(network)
}
