package swaps

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/lightningnetwork/lnd/lntypes"
	log "github.com/sirupsen/logrus"
	"github.com/tideswap/tideswap/bitcoin"
	"github.com/tideswap/tideswap/crypto"
	"github.com/tideswap/tideswap/database"
	"github.com/tideswap/tideswap/database/models"
	"github.com/tideswap/tideswap/lightning"
	"github.com/tideswap/tideswap/wallet"
)

// Contracts holds the deployed swap contract addresses of the account chain.
type Contracts struct {
	EtherSwap string
	ERC20Swap string
}

// Manager builds the HTLCs of new swaps, binds invoices and persists the
// authoritative records. It is driven exclusively by the service.
type Manager struct {
	repo    database.Repository
	wallets map[string]wallet.Wallet

	contracts Contracts

	// Derive bech32 lockup addresses instead of nested P2SH ones.
	useWitnessAddress bool
}

func NewManager(repo database.Repository, wallets map[string]wallet.Wallet, contracts Contracts, useWitnessAddress bool) *Manager {
	return &Manager{
		repo:              repo,
		wallets:           wallets,
		contracts:         contracts,
		useWitnessAddress: useWitnessAddress,
	}
}

type ChannelRequest struct {
	InboundLiquidity uint32
	Private          bool
}

type CreateSwapArgs struct {
	PairID        string
	ChainCurrency *Currency
	OrderSide     models.OrderSide
	PreimageHash  []byte

	RefundPublicKey string
	ClaimAddress    string

	TimeoutBlockDelta uint32
	Channel           *ChannelRequest
	ReferralID        string
}

type CreateSwapResult struct {
	ID                 string
	Address            string
	RedeemScript       string
	ClaimAddress       string
	TimeoutBlockHeight uint32
}

// CreateSwap constructs the lockup HTLC of a forward swap and persists the
// record. The invoice is bound later with SetSwapInvoice.
func (m *Manager) CreateSwap(ctx context.Context, args *CreateSwapArgs) (*CreateSwapResult, error) {
	id, err := crypto.GenerateID()
	if err != nil {
		return nil, err
	}

	height, err := m.blockHeight(ctx, args.ChainCurrency)
	if err != nil {
		return nil, err
	}
	timeoutBlockHeight := height + args.TimeoutBlockDelta

	swap := &models.Swap{
		ID:                 id,
		Pair:               args.PairID,
		OrderSide:          args.OrderSide,
		PreimageHash:       hex.EncodeToString(args.PreimageHash),
		TimeoutBlockHeight: timeoutBlockHeight,
		Status:             models.StatusSwapCreated,
	}
	if args.ReferralID != "" {
		referralID := args.ReferralID
		swap.ReferralID = &referralID
	}

	result := &CreateSwapResult{
		ID:                 id,
		TimeoutBlockHeight: timeoutBlockHeight,
	}

	switch args.ChainCurrency.Kind {
	case CurrencyBitcoinLike:
		redeemScript, address, keyIndex, err := m.buildLockup(
			ctx, args.ChainCurrency, args.PreimageHash, "", args.RefundPublicKey, timeoutBlockHeight,
		)
		if err != nil {
			return nil, err
		}

		refundPublicKey := args.RefundPublicKey
		swap.RefundPublicKey = &refundPublicKey
		swap.KeyIndex = &keyIndex
		swap.RedeemScript = &redeemScript
		swap.LockupAddress = address

		result.Address = address
		result.RedeemScript = redeemScript

	case CurrencyEther, CurrencyERC20:
		claimAddress := args.ClaimAddress
		swap.ClaimAddress = &claimAddress
		swap.LockupAddress = m.contractAddress(args.ChainCurrency.Kind)

		result.Address = swap.LockupAddress
		result.ClaimAddress = claimAddress
	}

	if err := m.repo.CreateSwap(ctx, swap); err != nil {
		if errors.Is(err, database.ErrDuplicateRecord) {
			return nil, ErrSwapWithPreimageExists()
		}

		return nil, fmt.Errorf("failed to create swap: %w", err)
	}

	if args.Channel != nil {
		err := m.repo.CreateChannelCreation(ctx, &models.ChannelCreation{
			SwapID:           id,
			InboundLiquidity: args.Channel.InboundLiquidity,
			Private:          args.Channel.Private,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create channel creation: %w", err)
		}
	}

	log.WithField("id", id).Info("created new swap")

	return result, nil
}

// SetSwapInvoice binds the invoice and locks the quote of the swap. The
// callback runs after the record is persisted.
func (m *Manager) SetSwapInvoice(ctx context.Context, swap *models.Swap, invoice string, rate float64, expectedAmount, percentageFee uint64, acceptZeroConf bool, onSet func(*models.Swap)) error {
	swap.Invoice = &invoice
	swap.Rate = &rate
	swap.ExpectedAmount = &expectedAmount
	swap.PercentageFee = &percentageFee
	swap.AcceptZeroConf = acceptZeroConf
	swap.Status = models.StatusInvoiceSet

	if err := m.repo.SaveSwap(ctx, swap); err != nil {
		if errors.Is(err, database.ErrDuplicateRecord) {
			return ErrSwapWithInvoiceExists()
		}

		return fmt.Errorf("failed to save swap: %w", err)
	}

	log.WithField("id", swap.ID).Info("set invoice of swap")

	if onSet != nil {
		onSet(swap)
	}

	return nil
}

type CreateReverseSwapArgs struct {
	PairID            string
	SendingCurrency   *Currency
	ReceivingCurrency *Currency
	OrderSide         models.OrderSide
	PreimageHash      []byte

	ClaimPublicKey string
	ClaimAddress   string

	HoldInvoiceAmount uint64
	OnchainAmount     uint64
	PercentageFee     uint64

	PrepayMinerFeeInvoiceAmount *uint64
	PrepayMinerFeeOnchainAmount *uint64

	OnchainTimeoutBlockDelta   uint32
	LightningTimeoutBlockDelta uint32

	RoutingNode string
	ReferralID  string
}

type CreateReverseSwapResult struct {
	ID                 string
	Invoice            string
	MinerFeeInvoice    string
	LockupAddress      string
	RedeemScript       string
	TimeoutBlockHeight uint32
}

// CreateReverseSwap registers the hold invoice and prepares the lockup of a
// reverse swap.
func (m *Manager) CreateReverseSwap(ctx context.Context, args *CreateReverseSwapArgs) (*CreateReverseSwapResult, error) {
	if args.ReceivingCurrency.Lightning == nil {
		return nil, ErrNoLndClient(args.ReceivingCurrency.Symbol)
	}

	id, err := crypto.GenerateID()
	if err != nil {
		return nil, err
	}

	height, err := m.blockHeight(ctx, args.SendingCurrency)
	if err != nil {
		return nil, err
	}
	timeoutBlockHeight := height + args.OnchainTimeoutBlockDelta

	preimageHash, err := lntypes.MakeHash(args.PreimageHash)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preimage hash: %w", err)
	}

	var hints []lightning.RoutingHint
	if args.RoutingNode != "" {
		hints, err = args.ReceivingCurrency.Lightning.GetRoutingHints(ctx, args.RoutingNode)
		if err != nil {
			return nil, fmt.Errorf("failed to get routing hints: %w", err)
		}
	}

	invoice, err := args.ReceivingCurrency.Lightning.AddHoldInvoice(
		ctx,
		preimageHash,
		args.HoldInvoiceAmount,
		args.LightningTimeoutBlockDelta,
		fmt.Sprintf("Send to %s address", args.SendingCurrency.Symbol),
		hints,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add hold invoice: %w", err)
	}

	swap := &models.ReverseSwap{
		ID:                          id,
		Pair:                        args.PairID,
		OrderSide:                   args.OrderSide,
		PreimageHash:                hex.EncodeToString(args.PreimageHash),
		Invoice:                     invoice,
		HoldInvoiceAmount:           args.HoldInvoiceAmount,
		OnchainAmount:               args.OnchainAmount,
		PercentageFee:               args.PercentageFee,
		PrepayMinerFeeInvoiceAmount: args.PrepayMinerFeeInvoiceAmount,
		PrepayMinerFeeOnchainAmount: args.PrepayMinerFeeOnchainAmount,
		TimeoutBlockHeight:          timeoutBlockHeight,
		Status:                      models.StatusSwapCreated,
	}
	if args.ReferralID != "" {
		referralID := args.ReferralID
		swap.ReferralID = &referralID
	}

	result := &CreateReverseSwapResult{
		ID:                 id,
		Invoice:            invoice,
		TimeoutBlockHeight: timeoutBlockHeight,
	}

	if args.PrepayMinerFeeInvoiceAmount != nil {
		minerFeeInvoice, err := args.ReceivingCurrency.Lightning.AddInvoice(
			ctx,
			*args.PrepayMinerFeeInvoiceAmount,
			fmt.Sprintf("Miner fee for sending to %s address", args.SendingCurrency.Symbol),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to add miner fee invoice: %w", err)
		}

		swap.MinerFeeInvoice = &minerFeeInvoice
		result.MinerFeeInvoice = minerFeeInvoice
	}

	switch args.SendingCurrency.Kind {
	case CurrencyBitcoinLike:
		redeemScript, address, keyIndex, err := m.buildLockup(
			ctx, args.SendingCurrency, args.PreimageHash, args.ClaimPublicKey, "", timeoutBlockHeight,
		)
		if err != nil {
			return nil, err
		}

		claimPublicKey := args.ClaimPublicKey
		swap.ClaimPublicKey = &claimPublicKey
		swap.KeyIndex = &keyIndex
		swap.RedeemScript = &redeemScript
		swap.LockupAddress = address

		result.RedeemScript = redeemScript

	case CurrencyEther, CurrencyERC20:
		claimAddress := args.ClaimAddress
		swap.ClaimAddress = &claimAddress
		swap.LockupAddress = m.contractAddress(args.SendingCurrency.Kind)
	}

	result.LockupAddress = swap.LockupAddress

	if err := m.repo.CreateReverseSwap(ctx, swap); err != nil {
		if errors.Is(err, database.ErrDuplicateRecord) {
			return nil, ErrSwapWithInvoiceExists()
		}

		return nil, fmt.Errorf("failed to create reverse swap: %w", err)
	}

	log.WithField("id", id).Info("created new reverse swap")

	return result, nil
}

// buildLockup derives a fresh service key, assembles the redeem script and
// encodes the lockup address. Exactly one of userClaimKey and userRefundKey
// is set: the other role is played by the derived service key.
func (m *Manager) buildLockup(ctx context.Context, currency *Currency, preimageHash []byte, userClaimKey, userRefundKey string, timeoutBlockHeight uint32) (redeemScript, address string, keyIndex uint32, err error) {
	swapWallet, ok := m.wallets[currency.Symbol]
	if !ok {
		return "", "", 0, ErrCurrencyNotFound(currency.Symbol)
	}

	keyIndex, err = m.repo.NextKeyIndex(ctx, currency.Symbol)
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to reserve key index: %w", err)
	}

	keys, err := swapWallet.GetKeysByIndex(keyIndex)
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to derive keys: %w", err)
	}

	claimKey := userClaimKey
	refundKey := userRefundKey
	if claimKey == "" {
		claimKey = keys.PublicKey
	} else {
		refundKey = keys.PublicKey
	}

	claimPubKey, err := parseScriptKey(claimKey, "claim")
	if err != nil {
		return "", "", 0, err
	}

	refundPubKey, err := parseScriptKey(refundKey, "refund")
	if err != nil {
		return "", "", 0, err
	}

	script, err := bitcoin.SwapScript(preimageHash, claimPubKey, refundPubKey, timeoutBlockHeight)
	if err != nil {
		return "", "", 0, err
	}

	params := currency.ChainParams()
	if m.useWitnessAddress {
		address, err = bitcoin.WitnessScriptHashAddress(script, params)
	} else {
		address, err = bitcoin.NestedScriptHashAddress(script, params)
	}
	if err != nil {
		return "", "", 0, err
	}

	return hex.EncodeToString(script), address, keyIndex, nil
}

func parseScriptKey(pubKey, role string) (*btcec.PublicKey, error) {
	parsed, err := lightning.ParsePubKey(pubKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s public key: %w", role, err)
	}

	return parsed, nil
}

func (m *Manager) blockHeight(ctx context.Context, currency *Currency) (uint32, error) {
	switch currency.Kind {
	case CurrencyBitcoinLike:
		if currency.Chain == nil {
			return 0, ErrNotSupportedBySymbol(currency.Symbol)
		}

		info, err := currency.Chain.GetBlockchainInfo(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get blockchain info: %w", err)
		}

		return info.Blocks, nil

	case CurrencyEther, CurrencyERC20:
		if currency.Provider == nil {
			return 0, ErrEthereumNotEnabled()
		}

		height, err := currency.Provider.BlockNumber(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get block number: %w", err)
		}

		return uint32(height), nil

	default:
		return 0, ErrNotSupportedBySymbol(currency.Symbol)
	}
}

func (m *Manager) contractAddress(kind CurrencyKind) string {
	if kind == CurrencyERC20 {
		return m.contracts.ERC20Swap
	}

	return m.contracts.EtherSwap
}
