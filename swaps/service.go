package swaps

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tideswap/tideswap/bitcoin"
	"github.com/tideswap/tideswap/chain"
	"github.com/tideswap/tideswap/crypto"
	"github.com/tideswap/tideswap/database"
	"github.com/tideswap/tideswap/database/models"
	"github.com/tideswap/tideswap/ethereum"
	"github.com/tideswap/tideswap/wallet"
)

const (
	InfoPrepayMinerFee          = "prepay.minerfee"
	WarningReverseSwapsDisabled = "reverse.swaps.disabled"
)

const (
	MinInboundLiquidity uint32 = 10
	MaxInboundLiquidity uint32 = 50
)

var (
	ErrEmptyReferralID      = errors.New("referral IDs cannot be empty")
	ErrInvalidReferralShare = errors.New("referral fee share must be between 0 and 100")
)

// Service is the orchestrator: it owns all cross-cutting swap policy and is
// the only entry point for externally callable operations.
type Service struct {
	version string

	currencies map[string]*Currency
	wallets    map[string]wallet.Wallet

	pairs    *PairRegistry
	rates    *RateProvider
	fees     *FeeProvider
	timeouts *TimeoutDeltaProvider

	repo    database.Repository
	manager *Manager
	hub     *EventHub

	nodes map[string]NodeURIs

	contracts       Contracts
	ethereumEnabled bool

	allowReverseSwaps atomic.Bool
	prepayMinerFee    atomic.Bool

	now func() time.Time
}

// NodeURIs is the snapshot of a Lightning node's identity taken at init.
type NodeURIs struct {
	Pubkey string
	URIs   []string
}

type Config struct {
	Version string

	Currencies map[string]*Currency
	Wallets    map[string]wallet.Wallet

	Repository database.Repository

	Rates    *RateProvider
	Timeouts *TimeoutDeltaProvider

	Contracts Contracts

	AllowReverseSwaps bool
	PrepayMinerFee    bool
	UseWitnessAddress bool
}

func NewService(cfg *Config) *Service {
	service := &Service{
		version:    cfg.Version,
		currencies: cfg.Currencies,
		wallets:    cfg.Wallets,
		pairs:      NewPairRegistry(),
		rates:      cfg.Rates,
		fees:       NewFeeProvider(),
		timeouts:   cfg.Timeouts,
		repo:       cfg.Repository,
		hub:        NewEventHub(),
		nodes:      make(map[string]NodeURIs),
		contracts:  cfg.Contracts,
		now:        time.Now,
	}

	service.manager = NewManager(cfg.Repository, cfg.Wallets, cfg.Contracts, cfg.UseWitnessAddress)

	for _, currency := range cfg.Currencies {
		if currency.Provider != nil {
			service.ethereumEnabled = true

			break
		}
	}

	service.allowReverseSwaps.Store(cfg.AllowReverseSwaps)
	service.prepayMinerFee.Store(cfg.PrepayMinerFee)

	return service
}

// Init registers the configured pairs and initializes the providers.
func (s *Service) Init(ctx context.Context, pairs []*Pair) error {
	for _, pair := range pairs {
		if _, ok := s.currencies[pair.Base]; !ok {
			return ErrCurrencyNotFound(pair.Base)
		}
		if _, ok := s.currencies[pair.Quote]; !ok {
			return ErrCurrencyNotFound(pair.Quote)
		}

		s.pairs.Add(pair)
	}

	if err := s.timeouts.Init(pairs); err != nil {
		return fmt.Errorf("failed to initialize timeouts: %w", err)
	}
	s.fees.Init(pairs)
	s.rates.Init(pairs)

	for symbol, currency := range s.currencies {
		if currency.Lightning == nil {
			continue
		}

		info, err := currency.Lightning.GetInfo(ctx)
		if err != nil {
			log.WithField("symbol", symbol).WithError(err).Warn("could not snapshot node URIs")

			continue
		}

		s.nodes[symbol] = NodeURIs{
			Pubkey: info.Pubkey,
			URIs:   info.URIs,
		}
	}

	log.Infof("initialized %d pairs", len(pairs))

	return nil
}

// Subscribe returns a stream of swap lifecycle updates.
func (s *Service) Subscribe() (<-chan SwapUpdate, func()) {
	return s.hub.Subscribe()
}

type ChainInfo struct {
	Version       int32
	Connections   int32
	Blocks        uint32
	ScannedBlocks uint32
	Error         string
}

type ChannelStats struct {
	Active   uint32
	Inactive uint32
	Pending  uint32
}

type LightningInfo struct {
	Version     string
	BlockHeight uint32
	Channels    ChannelStats
	Error       string
}

type CurrencyInfo struct {
	Chain     ChainInfo
	Lightning LightningInfo
}

type GetInfoResponse struct {
	Version string
	Chains  map[string]CurrencyInfo
}

// GetInfo probes every currency's chain and Lightning node. Collaborator
// errors are captured per collaborator and never propagate.
func (s *Service) GetInfo(ctx context.Context) *GetInfoResponse {
	response := &GetInfoResponse{
		Version: s.version,
		Chains:  make(map[string]CurrencyInfo),
	}

	for symbol, currency := range s.currencies {
		var info CurrencyInfo

		switch {
		case currency.Chain != nil:
			networkInfo, err := currency.Chain.GetNetworkInfo(ctx)
			if err != nil {
				info.Chain.Error = err.Error()

				break
			}

			blockchainInfo, err := currency.Chain.GetBlockchainInfo(ctx)
			if err != nil {
				info.Chain.Error = err.Error()

				break
			}

			info.Chain = ChainInfo{
				Version:       networkInfo.Version,
				Connections:   networkInfo.Connections,
				Blocks:        blockchainInfo.Blocks,
				ScannedBlocks: blockchainInfo.ScannedBlocks,
			}

		case currency.Provider != nil:
			height, err := currency.Provider.BlockNumber(ctx)
			if err != nil {
				info.Chain.Error = err.Error()
			} else {
				info.Chain.Blocks = uint32(height)
				info.Chain.ScannedBlocks = uint32(height)
			}
		}

		if currency.Lightning != nil {
			nodeInfo, err := currency.Lightning.GetInfo(ctx)
			if err != nil {
				info.Lightning.Error = err.Error()
			} else {
				info.Lightning = LightningInfo{
					Version:     nodeInfo.Version,
					BlockHeight: nodeInfo.BlockHeight,
					Channels: ChannelStats{
						Active:   nodeInfo.ActiveChannels,
						Inactive: nodeInfo.InactiveChannels,
						Pending:  nodeInfo.PendingChannels,
					},
				}
			}
		}

		response.Chains[symbol] = info
	}

	return response
}

type LightningBalance struct {
	LocalBalance  uint64
	RemoteBalance uint64
}

type Balances struct {
	WalletBalance    *wallet.Balance
	LightningBalance *LightningBalance
}

// GetBalance sums the wallet balance of every currency, plus the channel
// balances of Lightning-capable ones.
func (s *Service) GetBalance(ctx context.Context) (map[string]Balances, error) {
	balances := make(map[string]Balances)

	for symbol, currencyWallet := range s.wallets {
		walletBalance, err := currencyWallet.GetBalance(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s wallet balance: %w", symbol, err)
		}

		entry := Balances{WalletBalance: walletBalance}

		if currency, ok := s.currencies[symbol]; ok && currency.Lightning != nil {
			channels, err := currency.Lightning.ListChannels(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list %s channels: %w", symbol, err)
			}

			lightningBalance := &LightningBalance{}
			for _, channel := range channels {
				lightningBalance.LocalBalance += channel.Local
				lightningBalance.RemoteBalance += channel.Remote
			}
			entry.LightningBalance = lightningBalance
		}

		balances[symbol] = entry
	}

	return balances, nil
}

type GetPairsResponse struct {
	Pairs    map[string]*PairInfo
	Info     []string
	Warnings []string
}

func (s *Service) GetPairs() *GetPairsResponse {
	response := &GetPairsResponse{
		Pairs:    make(map[string]*PairInfo),
		Info:     []string{},
		Warnings: []string{},
	}

	for _, pair := range s.pairs.All() {
		if info, ok := s.rates.Get(pair.ID()); ok {
			response.Pairs[pair.ID()] = info
		}
	}

	if s.prepayMinerFee.Load() {
		response.Info = append(response.Info, InfoPrepayMinerFee)
	}
	if !s.allowReverseSwaps.Load() {
		response.Warnings = append(response.Warnings, WarningReverseSwapsDisabled)
	}

	return response
}

func (s *Service) GetNodes() map[string]NodeURIs {
	nodes := make(map[string]NodeURIs, len(s.nodes))
	for symbol, node := range s.nodes {
		nodes[symbol] = node
	}

	return nodes
}

func (s *Service) GetTimeouts() map[string]PairTimeoutBlockDeltas {
	return s.timeouts.All()
}

func (s *Service) GetContracts() (*Contracts, error) {
	if !s.ethereumEnabled {
		return nil, ErrEthereumNotEnabled()
	}

	contracts := s.contracts

	return &contracts, nil
}

func (s *Service) GetRoutingHints(ctx context.Context, symbol, routingNode string) ([]RoutingHintResult, error) {
	currency, err := s.getCurrency(symbol)
	if err != nil {
		return nil, err
	}
	if currency.Lightning == nil {
		return nil, ErrNoLndClient(symbol)
	}

	hints, err := currency.Lightning.GetRoutingHints(ctx, routingNode)
	if err != nil {
		return nil, err
	}

	results := make([]RoutingHintResult, 0, len(hints))
	for _, hint := range hints {
		results = append(results, RoutingHintResult(hint))
	}

	return results, nil
}

func (s *Service) GetTransaction(ctx context.Context, symbol, txID string) (string, error) {
	currency, err := s.getCurrency(symbol)
	if err != nil {
		return "", err
	}
	if currency.Chain == nil {
		return "", ErrNotSupportedBySymbol(symbol)
	}

	return currency.Chain.GetRawTransaction(ctx, txID)
}

// BroadcastTransaction relays a raw transaction. When the node rejects a
// refund because its locktime has not been reached yet, the rejection is
// rewritten into a structured error telling the user when to retry; all
// other rejections propagate verbatim.
func (s *Service) BroadcastTransaction(ctx context.Context, symbol, txHex string) (string, error) {
	currency, err := s.getCurrency(symbol)
	if err != nil {
		return "", err
	}
	if currency.Chain == nil {
		return "", ErrNotSupportedBySymbol(symbol)
	}

	txID, err := currency.Chain.SendRawTransaction(ctx, txHex)
	if err == nil {
		return txID, nil
	}

	if !chain.IsLocktimeRequirementError(err) {
		return "", err
	}

	tx, decodeErr := bitcoin.DecodeTransaction(txHex)
	if decodeErr != nil {
		return "", err
	}

	for _, inputTxID := range bitcoin.InputTransactionIDs(tx) {
		swap, lookupErr := s.repo.GetUnfinishedSwapByLockupTransaction(ctx, inputTxID)
		if lookupErr != nil {
			return "", fmt.Errorf("failed to look up swap: %w", lookupErr)
		}
		if swap == nil {
			continue
		}

		info, infoErr := currency.Chain.GetBlockchainInfo(ctx)
		if infoErr != nil {
			return "", fmt.Errorf("failed to get blockchain info: %w", infoErr)
		}

		eta, etaErr := CalculateTimeoutDate(symbol, swap.TimeoutBlockHeight-info.Blocks, s.now())
		if etaErr != nil {
			return "", etaErr
		}

		return "", &PrematureRefundError{
			Err:                err,
			TimeoutBlockHeight: swap.TimeoutBlockHeight,
			TimeoutEta:         eta,
		}
	}

	return "", err
}

func (s *Service) DeriveKeys(symbol string, index uint32) (*wallet.KeyPair, error) {
	currencyWallet, ok := s.wallets[symbol]
	if !ok {
		return nil, ErrCurrencyNotFound(symbol)
	}

	return currencyWallet.GetKeysByIndex(index)
}

func (s *Service) GetAddress(ctx context.Context, symbol string) (string, error) {
	currencyWallet, ok := s.wallets[symbol]
	if !ok {
		return "", ErrCurrencyNotFound(symbol)
	}

	return currencyWallet.NewAddress(ctx)
}

// GetFeeEstimation estimates fees for a single currency or, with an empty
// symbol, for all of them. ERC20 tokens collapse into the entry of their
// account chain.
func (s *Service) GetFeeEstimation(ctx context.Context, symbol string, blocks int32) (map[string]float64, error) {
	if blocks == 0 {
		blocks = feeEstimationBlockTarget
	}

	estimations := make(map[string]float64)

	estimate := func(currency *Currency) error {
		if currency.IsAccountBased() {
			// ERC20 tokens share the account chain's gas market, so they
			// all collapse into one entry keyed by the native symbol.
			key, err := s.etherSymbol()
			if err != nil {
				return err
			}
			if _, done := estimations[key]; done {
				return nil
			}
			if currency.Provider == nil {
				return ErrEthereumNotEnabled()
			}

			gasPrice, err := currency.Provider.SuggestGasPrice(ctx)
			if err != nil {
				return fmt.Errorf("failed to get gas price: %w", err)
			}

			gwei, _ := decimal.NewFromBigInt(gasPrice, 0).
				Div(ethereum.GweiDecimals).
				Float64()
			estimations[key] = gwei

			return nil
		}

		if currency.Chain == nil {
			return ErrNotSupportedBySymbol(currency.Symbol)
		}

		feeRate, err := currency.Chain.EstimateFee(ctx, blocks)
		if err != nil {
			return fmt.Errorf("failed to estimate %s fee: %w", currency.Symbol, err)
		}
		estimations[currency.Symbol] = feeRate

		return nil
	}

	if symbol != "" {
		currency, err := s.getCurrency(symbol)
		if err != nil {
			return nil, err
		}

		if err := estimate(currency); err != nil {
			return nil, err
		}

		return estimations, nil
	}

	for _, currency := range s.currencies {
		if err := estimate(currency); err != nil {
			return nil, err
		}
	}

	return estimations, nil
}

type SendCoinsArgs struct {
	Symbol  string
	Address string
	Amount  uint64
	SendAll bool
	Fee     float64
}

func (s *Service) SendCoins(ctx context.Context, args SendCoinsArgs) (*wallet.SendResult, error) {
	currencyWallet, ok := s.wallets[args.Symbol]
	if !ok {
		return nil, ErrCurrencyNotFound(args.Symbol)
	}

	if args.SendAll {
		return currencyWallet.SweepWallet(ctx, args.Address, args.Fee)
	}

	return currencyWallet.SendToAddress(ctx, args.Address, args.Amount, args.Fee)
}

type AddReferralArgs struct {
	ID          string
	FeeShare    uint32
	RoutingNode string
}

type AddReferralResult struct {
	APIKey    string
	APISecret string
}

func (s *Service) AddReferral(ctx context.Context, args AddReferralArgs) (*AddReferralResult, error) {
	if args.ID == "" {
		return nil, ErrEmptyReferralID
	}
	if args.FeeShare > 100 {
		return nil, ErrInvalidReferralShare
	}

	apiKey, apiSecret, err := crypto.GenerateAPICredentials()
	if err != nil {
		return nil, err
	}

	referral := &models.Referral{
		ID:        args.ID,
		FeeShare:  args.FeeShare,
		APIKey:    apiKey,
		APISecret: apiSecret,
	}
	if args.RoutingNode != "" {
		routingNode := args.RoutingNode
		referral.RoutingNode = &routingNode
	}

	if err := s.repo.CreateReferral(ctx, referral); err != nil {
		return nil, fmt.Errorf("failed to create referral: %w", err)
	}

	return &AddReferralResult{
		APIKey:    apiKey,
		APISecret: apiSecret,
	}, nil
}

// SetReverseSwapsEnabled toggles reverse swap creation at runtime.
func (s *Service) SetReverseSwapsEnabled(enabled bool) {
	s.allowReverseSwaps.Store(enabled)
}

// SetPrepayMinerFee toggles the global prepay miner fee flag at runtime.
func (s *Service) SetPrepayMinerFee(enabled bool) {
	s.prepayMinerFee.Store(enabled)
}

// UpdateTimeoutBlockDelta updates the timeout configuration of a pair.
func (s *Service) UpdateTimeoutBlockDelta(pairID string, minutes uint32) error {
	return s.timeouts.SetTimeout(pairID, minutes)
}

func (s *Service) getCurrency(symbol string) (*Currency, error) {
	currency, ok := s.currencies[symbol]
	if !ok {
		return nil, ErrCurrencyNotFound(symbol)
	}

	return currency, nil
}

func (s *Service) etherSymbol() (string, error) {
	for symbol, currency := range s.currencies {
		if currency.Kind == CurrencyEther {
			return symbol, nil
		}
	}

	return "", ErrEthereumNotEnabled()
}

// RoutingHintResult mirrors the lightning hint for external callers.
type RoutingHintResult struct {
	NodeID                    string
	ChanID                    uint64
	FeeBaseMsat               uint32
	FeeProportionalMillionths uint32
	CltvExpiryDelta           uint32
}
