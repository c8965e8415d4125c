package swaps

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tideswap/tideswap/database/models"
	"github.com/tideswap/tideswap/ethereum"
	"github.com/tideswap/tideswap/lightning"
	"github.com/tideswap/tideswap/money"
)

type CreateSwapRequest struct {
	PairID       string
	OrderSide    string
	PreimageHash []byte

	RefundPublicKey string
	ClaimAddress    string

	Channel    *ChannelRequest
	ReferralID string
}

type CreateSwapResponse struct {
	ID                 string
	Address            string
	RedeemScript       string
	ClaimAddress       string
	TimeoutBlockHeight uint32
}

// CreateSwap creates a forward swap without an invoice. The user locks
// funds into the returned address; the invoice is bound later.
func (s *Service) CreateSwap(ctx context.Context, req CreateSwapRequest) (*CreateSwapResponse, error) {
	if len(req.PreimageHash) != 32 {
		return nil, fmt.Errorf("preimage hash must be 32 bytes, got %d", len(req.PreimageHash))
	}

	existing, err := s.repo.GetSwapByPreimageHash(ctx, hex.EncodeToString(req.PreimageHash))
	if err != nil {
		return nil, fmt.Errorf("failed to look up swap: %w", err)
	}
	if existing != nil {
		return nil, ErrSwapWithPreimageExists()
	}

	pair, ok := s.pairs.Get(req.PairID)
	if !ok {
		return nil, ErrPairNotFound(req.PairID)
	}

	side, err := ParseOrderSide(req.OrderSide)
	if err != nil {
		return nil, err
	}

	chainSymbol := GetChainCurrency(pair.Base, pair.Quote, side, false)
	chainCurrency, err := s.getCurrency(chainSymbol)
	if err != nil {
		return nil, err
	}

	claimAddress := ""
	switch chainCurrency.Kind {
	case CurrencyBitcoinLike:
		if req.RefundPublicKey == "" {
			return nil, ErrUndefinedParameter("refundPublicKey")
		}

	case CurrencyEther, CurrencyERC20:
		if req.ClaimAddress == "" {
			return nil, ErrUndefinedParameter("claimAddress")
		}

		claimAddress, err = ethereum.ChecksumAddress(req.ClaimAddress)
		if err != nil {
			return nil, ErrInvalidEthereumAddress(req.ClaimAddress)
		}
	}

	if req.Channel != nil {
		if req.Channel.InboundLiquidity < MinInboundLiquidity {
			return nil, ErrBeneathMinInboundLiquidity(req.Channel.InboundLiquidity, MinInboundLiquidity)
		}
		if req.Channel.InboundLiquidity > MaxInboundLiquidity {
			return nil, ErrExceedsMaxInboundLiquidity(req.Channel.InboundLiquidity, MaxInboundLiquidity)
		}
	}

	timeoutBlockDelta, err := s.timeouts.GetTimeout(req.PairID, side, false)
	if err != nil {
		return nil, err
	}

	referralID, err := s.resolveReferral(ctx, req.ReferralID, "")
	if err != nil {
		return nil, err
	}

	created, err := s.manager.CreateSwap(ctx, &CreateSwapArgs{
		PairID:            req.PairID,
		ChainCurrency:     chainCurrency,
		OrderSide:         side,
		PreimageHash:      req.PreimageHash,
		RefundPublicKey:   req.RefundPublicKey,
		ClaimAddress:      claimAddress,
		TimeoutBlockDelta: timeoutBlockDelta,
		Channel:           req.Channel,
		ReferralID:        referralID,
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish(SwapUpdate{
		ID:     created.ID,
		Status: models.StatusSwapCreated,
	})

	return &CreateSwapResponse{
		ID:                 created.ID,
		Address:            created.Address,
		RedeemScript:       created.RedeemScript,
		ClaimAddress:       created.ClaimAddress,
		TimeoutBlockHeight: created.TimeoutBlockHeight,
	}, nil
}

type SetSwapInvoiceRequest struct {
	ID      string
	Invoice string

	// When set, it must match the current hash of the swap's pair quote.
	PairHash *string
}

type SetSwapInvoiceResponse struct {
	ExpectedAmount uint64
	AcceptZeroConf bool
	Bip21          string
}

// SetSwapInvoice binds an invoice to a swap, locking its quote. The
// response is empty when the user funded the lockup address already.
func (s *Service) SetSwapInvoice(ctx context.Context, req SetSwapInvoiceRequest) (*SetSwapInvoiceResponse, error) {
	swap, err := s.repo.GetSwap(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up swap: %w", err)
	}
	if swap == nil {
		return nil, ErrSwapNotFound(req.ID)
	}
	if swap.Invoice != nil {
		return nil, ErrSwapHasInvoiceAlready(swap.ID)
	}

	pairInfo, ok := s.rates.Get(swap.Pair)
	if !ok {
		return nil, ErrPairNotFound(swap.Pair)
	}

	if req.PairHash != nil && *req.PairHash != pairInfo.Hash {
		return nil, ErrInvalidPairHash()
	}

	base, quote, err := SplitPairID(swap.Pair)
	if err != nil {
		return nil, err
	}

	lightningSymbol := GetLightningCurrency(base, quote, swap.OrderSide, false)
	lightningCurrency, err := s.getCurrency(lightningSymbol)
	if err != nil {
		return nil, err
	}

	chainSymbol := GetChainCurrency(base, quote, swap.OrderSide, false)
	chainCurrency, err := s.getCurrency(chainSymbol)
	if err != nil {
		return nil, err
	}

	invoice, err := lightning.DecodeInvoice(req.Invoice, lightningCurrency.ChainParams())
	if err != nil {
		return nil, err
	}
	invoiceAmount := lightning.InvoiceAmountSats(invoice)

	rate := GetRate(pairInfo.Rate, swap.OrderSide, false)
	if swap.Rate != nil {
		rate = *swap.Rate
	}

	if err := s.verifyAmount(swap.Pair, rate, invoiceAmount, swap.OrderSide, false); err != nil {
		return nil, err
	}

	baseFee, percentageFee, err := s.fees.GetFees(ctx, swap.Pair, rate, chainCurrency, invoiceAmount, BaseFeeNormalClaim)
	if err != nil {
		return nil, err
	}

	expectedAmount := mulFloor(invoiceAmount, rate) + baseFee + percentageFee

	if swap.OnchainAmount != nil && expectedAmount > *swap.OnchainAmount {
		maxInvoiceAmount := CalculateInvoiceAmount(
			swap.OrderSide, pairInfo.Rate, *swap.OnchainAmount, baseFee, pairInfo.FeePercent,
		)

		return nil, ErrInvalidInvoiceAmount(maxInvoiceAmount)
	}

	acceptZeroConf := s.rates.AcceptZeroConf(chainSymbol, expectedAmount)

	err = s.manager.SetSwapInvoice(ctx, swap, req.Invoice, rate, expectedAmount, percentageFee, acceptZeroConf, func(updated *models.Swap) {
		s.hub.Publish(SwapUpdate{
			ID:       updated.ID,
			Status:   models.StatusInvoiceSet,
			ZeroConf: acceptZeroConf,
		})
	})
	if err != nil {
		return nil, err
	}

	// The lockup is funded already; there is nothing left for the user to pay.
	if swap.OnchainAmount != nil {
		return &SetSwapInvoiceResponse{}, nil
	}

	return &SetSwapInvoiceResponse{
		ExpectedAmount: expectedAmount,
		AcceptZeroConf: acceptZeroConf,
		Bip21:          encodeBip21(chainCurrency, swap.LockupAddress, expectedAmount, fmt.Sprintf("Send to %s lightning", lightningSymbol)),
	}, nil
}

type CreateSwapWithInvoiceRequest struct {
	PairID       string
	OrderSide    string
	PreimageHash []byte
	Invoice      string

	RefundPublicKey string
	ClaimAddress    string

	PairHash   *string
	Channel    *ChannelRequest
	ReferralID string
}

type CreateSwapWithInvoiceResponse struct {
	CreateSwapResponse
	ExpectedAmount uint64
	AcceptZeroConf bool
	Bip21          string
}

// CreateSwapWithInvoice composes CreateSwap and SetSwapInvoice. If binding
// the invoice fails, the half-created records are rolled back and the
// original error is returned.
func (s *Service) CreateSwapWithInvoice(ctx context.Context, req CreateSwapWithInvoiceRequest) (*CreateSwapWithInvoiceResponse, error) {
	created, err := s.CreateSwap(ctx, CreateSwapRequest{
		PairID:          req.PairID,
		OrderSide:       req.OrderSide,
		PreimageHash:    req.PreimageHash,
		RefundPublicKey: req.RefundPublicKey,
		ClaimAddress:    req.ClaimAddress,
		Channel:         req.Channel,
		ReferralID:      req.ReferralID,
	})
	if err != nil {
		return nil, err
	}

	invoiceResponse, err := s.SetSwapInvoice(ctx, SetSwapInvoiceRequest{
		ID:       created.ID,
		Invoice:  req.Invoice,
		PairHash: req.PairHash,
	})
	if err != nil {
		s.rollbackSwap(ctx, created.ID)

		return nil, err
	}

	return &CreateSwapWithInvoiceResponse{
		CreateSwapResponse: *created,
		ExpectedAmount:     invoiceResponse.ExpectedAmount,
		AcceptZeroConf:     invoiceResponse.AcceptZeroConf,
		Bip21:              invoiceResponse.Bip21,
	}, nil
}

// rollbackSwap destroys a half-created swap: the channel creation first,
// then the swap itself. Failures are logged, the original error wins.
func (s *Service) rollbackSwap(ctx context.Context, id string) {
	logger := log.WithField("id", id)

	channelCreation, err := s.repo.GetChannelCreation(ctx, id)
	if err != nil {
		logger.WithError(err).Error("failed to look up channel creation for rollback")
	} else if channelCreation != nil {
		if err := s.repo.DeleteChannelCreation(ctx, channelCreation); err != nil {
			logger.WithError(err).Error("failed to delete channel creation")
		}
	}

	swap, err := s.repo.GetSwap(ctx, id)
	if err != nil {
		logger.WithError(err).Error("failed to look up swap for rollback")

		return
	}
	if swap != nil {
		if err := s.repo.DeleteSwap(ctx, swap); err != nil {
			logger.WithError(err).Error("failed to delete swap")
		}
	}
}

// verifyAmount checks an amount against the pair limits, scaling it into
// base units first when the swap direction requires it.
func (s *Service) verifyAmount(pairID string, rate float64, amount uint64, side models.OrderSide, isReverse bool) error {
	pairInfo, ok := s.rates.Get(pairID)
	if !ok {
		return ErrPairNotFound(pairID)
	}

	scaled := decimal.NewFromUint64(amount)
	if (!isReverse && side == models.OrderSideBuy) || (isReverse && side == models.OrderSideSell) {
		scaled = scaled.Mul(decimal.NewFromFloat(rate))
	}

	if uint64(scaled.Floor().IntPart()) > pairInfo.Limits.Maximal {
		return ErrExceedMaximalAmount(uint64(scaled.Floor().IntPart()), pairInfo.Limits.Maximal)
	}
	if uint64(scaled.Ceil().IntPart()) < pairInfo.Limits.Minimal {
		return ErrBeneathMinimalAmount(uint64(scaled.Ceil().IntPart()), pairInfo.Limits.Minimal)
	}

	return nil
}

// resolveReferral picks the referral of a swap: an explicit id wins, then
// the referral registered for the routing node, then none.
func (s *Service) resolveReferral(ctx context.Context, explicitID, routingNode string) (string, error) {
	if explicitID != "" {
		return explicitID, nil
	}

	if routingNode != "" {
		referral, err := s.repo.GetReferralByRoutingNode(ctx, routingNode)
		if err != nil {
			return "", fmt.Errorf("failed to look up referral: %w", err)
		}
		if referral != nil {
			return referral.ID, nil
		}
	}

	return "", nil
}

func encodeBip21(chainCurrency *Currency, address string, amount uint64, memo string) string {
	scheme := strings.ToLower(chainCurrency.Symbol)
	switch chainCurrency.Symbol {
	case "BTC":
		scheme = "bitcoin"
	case "LTC":
		scheme = "litecoin"
	}

	return fmt.Sprintf(
		"%s:%s?amount=%s&label=%s",
		scheme,
		address,
		money.Money(amount).ToBtc().String(),
		url.PathEscape(memo),
	)
}
