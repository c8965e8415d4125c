package swaps

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tideswap/tideswap/database/models"
	"github.com/tideswap/tideswap/ethereum"
)

// Buffer added to the Lightning CLTV delta on top of the converted on-chain
// timeout, so the hold invoice always outlives the lockup.
const (
	sameChainCltvBuffer    = 3
	crossChainCltvBufferPc = 0.1
)

type CreateReverseSwapRequest struct {
	PairID       string
	OrderSide    string
	PreimageHash []byte

	// Exactly one of the two must be set.
	InvoiceAmount *float64
	OnchainAmount *float64

	PairHash    *string
	RoutingNode string
	ReferralID  string

	ClaimPublicKey string
	ClaimAddress   string

	PrepayMinerFee *bool
}

type CreateReverseSwapResponse struct {
	ID                 string
	Invoice            string
	RedeemScript       string
	LockupAddress      string
	TimeoutBlockHeight uint32

	// Only set when the invoice amount was the input.
	OnchainAmount uint64

	// Only set when prepay is active.
	MinerFeeInvoice      string
	PrepayMinerFeeAmount uint64
}

// CreateReverseSwap creates a reverse swap: a hold invoice the user pays
// and an on-chain HTLC the user claims with the preimage.
func (s *Service) CreateReverseSwap(ctx context.Context, req CreateReverseSwapRequest) (*CreateReverseSwapResponse, error) {
	if !s.allowReverseSwaps.Load() {
		return nil, ErrReverseSwapsDisabled()
	}

	if len(req.PreimageHash) != 32 {
		return nil, fmt.Errorf("preimage hash must be 32 bytes, got %d", len(req.PreimageHash))
	}

	pair, ok := s.pairs.Get(req.PairID)
	if !ok {
		return nil, ErrPairNotFound(req.PairID)
	}

	pairInfo, ok := s.rates.Get(req.PairID)
	if !ok {
		return nil, ErrPairNotFound(req.PairID)
	}

	if req.PairHash != nil && *req.PairHash != pairInfo.Hash {
		return nil, ErrInvalidPairHash()
	}

	side, err := ParseOrderSide(req.OrderSide)
	if err != nil {
		return nil, err
	}

	sendingSymbol, receivingSymbol := GetSendingReceivingCurrency(pair.Base, pair.Quote, side)

	sending, err := s.getCurrency(sendingSymbol)
	if err != nil {
		return nil, err
	}
	receiving, err := s.getCurrency(receivingSymbol)
	if err != nil {
		return nil, err
	}

	claimAddress := ""
	switch sending.Kind {
	case CurrencyBitcoinLike:
		if req.ClaimPublicKey == "" {
			return nil, ErrUndefinedParameter("claimPublicKey")
		}
		if req.PrepayMinerFee != nil && *req.PrepayMinerFee {
			return nil, ErrUnsupportedParameter("prepayMinerFee")
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

	onchainTimeoutBlockDelta, err := s.timeouts.GetTimeout(req.PairID, side, true)
	if err != nil {
		return nil, err
	}

	lightningTimeoutBlockDelta, err := s.timeouts.ConvertBlocks(sendingSymbol, receivingSymbol, onchainTimeoutBlockDelta)
	if err != nil {
		return nil, err
	}
	if sendingSymbol == receivingSymbol {
		lightningTimeoutBlockDelta += sameChainCltvBuffer
	} else {
		lightningTimeoutBlockDelta += uint32(decimal.NewFromInt(int64(lightningTimeoutBlockDelta)).
			Mul(decimal.NewFromFloat(crossChainCltvBufferPc)).
			Ceil().
			IntPart())
	}

	if req.InvoiceAmount != nil && req.OnchainAmount != nil {
		return nil, ErrInvoiceAndOnchainAmountSpecified()
	}
	if req.InvoiceAmount == nil && req.OnchainAmount == nil {
		return nil, ErrNoAmountSpecified()
	}
	if req.InvoiceAmount != nil && !decimal.NewFromFloat(*req.InvoiceAmount).IsInteger() {
		return nil, ErrNotWholeNumber("invoiceAmount")
	}
	if req.OnchainAmount != nil && !decimal.NewFromFloat(*req.OnchainAmount).IsInteger() {
		return nil, ErrNotWholeNumber("onchainAmount")
	}

	rate := GetRate(pairInfo.Rate, side, true)
	feePercent := pairInfo.FeePercent

	baseFee, err := s.fees.GetBaseFee(ctx, sending, BaseFeeReverseLockup)
	if err != nil {
		return nil, err
	}

	var (
		holdInvoiceAmount uint64
		percentageFee     uint64

		// Signed until the final bound check: fees can exceed small amounts.
		onchainAmount int64

		invoiceAmountGiven = req.InvoiceAmount != nil
	)

	rateDec := decimal.NewFromFloat(rate)
	feePercentDec := decimal.NewFromFloat(feePercent)

	if invoiceAmountGiven {
		holdInvoiceAmount = uint64(*req.InvoiceAmount)

		converted := decimal.NewFromUint64(holdInvoiceAmount).Mul(rateDec)
		percentageFeeDec := converted.Mul(feePercentDec).Ceil()

		percentageFee = uint64(percentageFeeDec.IntPart())
		onchainAmount = converted.
			Sub(percentageFeeDec).
			Sub(decimal.NewFromUint64(baseFee)).
			Floor().
			IntPart()
	} else {
		requested := uint64(*req.OnchainAmount)

		holdDec := decimal.NewFromUint64(requested + baseFee).
			Div(rateDec).
			Div(decimal.NewFromInt(1).Sub(feePercentDec)).
			Ceil()

		holdInvoiceAmount = uint64(holdDec.IntPart())
		onchainAmount = int64(requested)
		percentageFee = uint64(holdDec.
			Mul(rateDec).
			Mul(feePercentDec).
			Ceil().
			IntPart())
	}

	if err := s.verifyAmount(req.PairID, rate, holdInvoiceAmount, side, true); err != nil {
		return nil, err
	}

	var (
		prepayInvoiceAmount *uint64
		prepayOnchainAmount *uint64
	)

	prepayActive := s.prepayMinerFee.Load() || (req.PrepayMinerFee != nil && *req.PrepayMinerFee)
	if prepayActive {
		switch sending.Kind {
		case CurrencyBitcoinLike:
			amount := uint64(decimal.NewFromUint64(baseFee).
				Div(rateDec).
				Ceil().
				IntPart())

			prepayInvoiceAmount = &amount
			holdInvoiceAmount -= amount

		case CurrencyEther, CurrencyERC20:
			if sending.Provider == nil {
				return nil, ErrEthereumNotEnabled()
			}

			gasPrice, err := sending.Provider.SuggestGasPrice(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to get gas price: %w", err)
			}

			// wei -> 10^-8 coin units, like every other amount.
			onchainPrepayDec := decimal.NewFromBigInt(gasPrice, 0).
				Mul(decimal.NewFromInt(ethereum.PrepayMinerFeeGasLimit)).
				Div(ethereum.EtherDecimals).
				Mul(decimal.NewFromInt(1e8)).
				Ceil()
			onchainPrepay := uint64(onchainPrepayDec.IntPart())

			invoicePrepay := uint64(onchainPrepayDec.
				Div(rateDec).
				Ceil().
				IntPart())

			prepayOnchainAmount = &onchainPrepay
			prepayInvoiceAmount = &invoicePrepay

			if invoiceAmountGiven {
				onchainAmount -= int64(onchainPrepay)
				holdInvoiceAmount -= invoicePrepay
			}
		}
	}

	if onchainAmount < 1 {
		return nil, ErrOnchainAmountTooLow()
	}

	referralID, err := s.resolveReferral(ctx, req.ReferralID, req.RoutingNode)
	if err != nil {
		return nil, err
	}

	created, err := s.manager.CreateReverseSwap(ctx, &CreateReverseSwapArgs{
		PairID:                      req.PairID,
		SendingCurrency:             sending,
		ReceivingCurrency:           receiving,
		OrderSide:                   side,
		PreimageHash:                req.PreimageHash,
		ClaimPublicKey:              req.ClaimPublicKey,
		ClaimAddress:                claimAddress,
		HoldInvoiceAmount:           holdInvoiceAmount,
		OnchainAmount:               uint64(onchainAmount),
		PercentageFee:               percentageFee,
		PrepayMinerFeeInvoiceAmount: prepayInvoiceAmount,
		PrepayMinerFeeOnchainAmount: prepayOnchainAmount,
		OnchainTimeoutBlockDelta:    onchainTimeoutBlockDelta,
		LightningTimeoutBlockDelta:  lightningTimeoutBlockDelta,
		RoutingNode:                 req.RoutingNode,
		ReferralID:                  referralID,
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish(SwapUpdate{
		ID:     created.ID,
		Status: models.StatusSwapCreated,
	})

	response := &CreateReverseSwapResponse{
		ID:                 created.ID,
		Invoice:            created.Invoice,
		RedeemScript:       created.RedeemScript,
		LockupAddress:      created.LockupAddress,
		TimeoutBlockHeight: created.TimeoutBlockHeight,
	}

	if invoiceAmountGiven {
		response.OnchainAmount = uint64(onchainAmount)
	}
	if prepayInvoiceAmount != nil {
		response.MinerFeeInvoice = created.MinerFeeInvoice
		response.PrepayMinerFeeAmount = *prepayInvoiceAmount
	}

	return response, nil
}
