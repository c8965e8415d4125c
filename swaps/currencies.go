package swaps

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tideswap/tideswap/bitcoin"
	"github.com/tideswap/tideswap/chain"
	"github.com/tideswap/tideswap/ethereum"
	"github.com/tideswap/tideswap/lightning"
)

// CurrencyKind tags the three chain families the service can swap between.
type CurrencyKind int

const (
	CurrencyBitcoinLike CurrencyKind = iota
	CurrencyEther
	CurrencyERC20
)

func (k CurrencyKind) String() string {
	switch k {
	case CurrencyBitcoinLike:
		return "bitcoin-like"
	case CurrencyEther:
		return "ether"
	case CurrencyERC20:
		return "erc20"
	default:
		return "unknown"
	}
}

// Currency bundles a symbol with the collaborators available for it. All
// collaborators are optional capabilities; their absence is a known failure
// mode, not a programming error.
type Currency struct {
	Symbol  string
	Kind    CurrencyKind
	Network lightning.Network

	Chain     chain.Client
	Lightning lightning.Client
	Provider  ethereum.Provider
}

// ChainParams resolves the address/invoice parameters of a UTXO currency.
func (c *Currency) ChainParams() *chaincfg.Params {
	return bitcoin.ChainParams(c.Symbol, c.Network)
}

// IsAccountBased reports whether the currency settles on the account chain.
func (c *Currency) IsAccountBased() bool {
	switch c.Kind {
	case CurrencyEther, CurrencyERC20:
		return true
	default:
		return false
	}
}
