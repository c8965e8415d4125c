package swaps

import (
	"fmt"
)

// ErrorCode is the closed catalog of errors the orchestrator returns.
// Callers assert on codes, never on message strings.
type ErrorCode int

const (
	CodeCurrencyNotFound ErrorCode = iota
	CodePairNotFound
	CodeSwapNotFound
	CodeOrderSideNotFound
	CodeNoLndClient
	CodeNotSupportedBySymbol
	CodeEthereumNotEnabled

	CodeUndefinedParameter
	CodeUnsupportedParameter
	CodeInvalidEthereumAddress
	CodeNotWholeNumber
	CodeInvalidPairHash

	CodeSwapWithPreimageExists
	CodeSwapWithInvoiceExists
	CodeSwapHasInvoiceAlready
	CodeSwapNoLockup
	CodeInvalidInvoiceAmount
	CodeBeneathMinimalAmount
	CodeExceedMaximalAmount
	CodeOnchainAmountTooLow
	CodeReverseSwapsDisabled
	CodeExceedsMaxInboundLiquidity
	CodeBeneathMinInboundLiquidity
	CodeInvoiceAndOnchainAmountSpecified
	CodeNoAmountSpecified
)

// Error is a structured service error: a stable code plus a human message.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func ErrCurrencyNotFound(symbol string) Error {
	return Error{CodeCurrencyNotFound, fmt.Sprintf("could not find currency: %s", symbol)}
}

func ErrPairNotFound(pairID string) Error {
	return Error{CodePairNotFound, fmt.Sprintf("could not find pair: %s", pairID)}
}

func ErrSwapNotFound(id string) Error {
	return Error{CodeSwapNotFound, fmt.Sprintf("could not find swap: %s", id)}
}

func ErrOrderSideNotFound(side string) Error {
	return Error{CodeOrderSideNotFound, fmt.Sprintf("could not find order side: %s", side)}
}

func ErrNoLndClient(symbol string) Error {
	return Error{CodeNoLndClient, fmt.Sprintf("no LND client for %s", symbol)}
}

func ErrNotSupportedBySymbol(symbol string) Error {
	return Error{CodeNotSupportedBySymbol, fmt.Sprintf("operation not supported by %s", symbol)}
}

func ErrEthereumNotEnabled() Error {
	return Error{CodeEthereumNotEnabled, "the Ethereum integration is not enabled"}
}

func ErrUndefinedParameter(name string) Error {
	return Error{CodeUndefinedParameter, fmt.Sprintf("undefined parameter: %s", name)}
}

func ErrUnsupportedParameter(name string) Error {
	return Error{CodeUnsupportedParameter, fmt.Sprintf("unsupported parameter: %s", name)}
}

func ErrInvalidEthereumAddress(address string) Error {
	return Error{CodeInvalidEthereumAddress, fmt.Sprintf("invalid Ethereum address: %s", address)}
}

func ErrNotWholeNumber(name string) Error {
	return Error{CodeNotWholeNumber, fmt.Sprintf("%s is not a whole number", name)}
}

func ErrInvalidPairHash() Error {
	return Error{CodeInvalidPairHash, "invalid pair hash"}
}

func ErrSwapWithPreimageExists() Error {
	return Error{CodeSwapWithPreimageExists, "a swap with this preimage hash exists already"}
}

func ErrSwapWithInvoiceExists() Error {
	return Error{CodeSwapWithInvoiceExists, "a swap with this invoice exists already"}
}

func ErrSwapHasInvoiceAlready(id string) Error {
	return Error{CodeSwapHasInvoiceAlready, fmt.Sprintf("swap %s has an invoice already", id)}
}

func ErrSwapNoLockup() Error {
	return Error{CodeSwapNoLockup, "no lockup transaction found"}
}

// ErrInvalidInvoiceAmount carries the maximal invoice amount that would
// still fit the already observed on-chain amount.
func ErrInvalidInvoiceAmount(maxInvoiceAmount uint64) Error {
	return Error{CodeInvalidInvoiceAmount, fmt.Sprintf("invoice amount exceeds the maximal of %d", maxInvoiceAmount)}
}

func ErrBeneathMinimalAmount(amount, minimal uint64) Error {
	return Error{CodeBeneathMinimalAmount, fmt.Sprintf("%d is less than minimal of %d", amount, minimal)}
}

func ErrExceedMaximalAmount(amount, maximal uint64) Error {
	return Error{CodeExceedMaximalAmount, fmt.Sprintf("%d exceeds maximal of %d", amount, maximal)}
}

func ErrOnchainAmountTooLow() Error {
	return Error{CodeOnchainAmountTooLow, "onchain amount is too low"}
}

func ErrReverseSwapsDisabled() Error {
	return Error{CodeReverseSwapsDisabled, "reverse swaps are disabled"}
}

func ErrExceedsMaxInboundLiquidity(liquidity, maximal uint32) Error {
	return Error{CodeExceedsMaxInboundLiquidity, fmt.Sprintf("inbound liquidity %d exceeds maximal of %d", liquidity, maximal)}
}

func ErrBeneathMinInboundLiquidity(liquidity, minimal uint32) Error {
	return Error{CodeBeneathMinInboundLiquidity, fmt.Sprintf("inbound liquidity %d is less than minimal of %d", liquidity, minimal)}
}

func ErrInvoiceAndOnchainAmountSpecified() Error {
	return Error{CodeInvoiceAndOnchainAmountSpecified, "invoice and onchain amount were specified"}
}

func ErrNoAmountSpecified() Error {
	return Error{CodeNoAmountSpecified, "no amount was specified"}
}

// PrematureRefundError rewrites a locktime broadcast rejection into a
// structured response telling the user when the refund becomes valid.
type PrematureRefundError struct {
	Err                error
	TimeoutBlockHeight uint32
	TimeoutEta         int64
}

func (e *PrematureRefundError) Error() string {
	return e.Err.Error()
}

func (e *PrematureRefundError) Unwrap() error {
	return e.Err
}
