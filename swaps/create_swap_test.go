package swaps

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tideswap/tideswap/chain"
	"github.com/tideswap/tideswap/database/models"
	"github.com/tideswap/tideswap/lightning"
	"github.com/tideswap/tideswap/wallet"
	"go.uber.org/mock/gomock"
)

func testPreimageHash() []byte {
	hash := sha256.Sum256([]byte("preimage"))

	return hash[:]
}

func TestService_CreateSwap(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	updates, cancelSub := setup.service.Subscribe()
	defer cancelSub()

	preimageHash := testPreimageHash()

	setup.repo.EXPECT().GetSwapByPreimageHash(ctx, hex.EncodeToString(preimageHash)).Return(nil, nil)
	setup.btcChain.EXPECT().GetBlockchainInfo(ctx).Return(&chain.BlockchainInfo{Blocks: 100}, nil)
	setup.repo.EXPECT().NextKeyIndex(ctx, "BTC").Return(uint32(42), nil)
	setup.btcWallet.EXPECT().GetKeysByIndex(uint32(42)).Return(&wallet.KeyPair{
		PublicKey: testServiceKey,
	}, nil)

	var persisted *models.Swap
	setup.repo.EXPECT().CreateSwap(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, swap *models.Swap) error {
			persisted = swap

			return nil
		})

	response, err := setup.service.CreateSwap(ctx, CreateSwapRequest{
		PairID:          "BTC/BTC",
		OrderSide:       "buy",
		PreimageHash:    preimageHash,
		RefundPublicKey: testUserKey,
	})
	require.NoError(t, err)

	require.NotEmpty(t, response.ID)
	require.True(t, strings.HasPrefix(response.Address, "bcrt1"))
	require.NotEmpty(t, response.RedeemScript)
	require.Empty(t, response.ClaimAddress)
	// 60 minutes of timeout make 6 blocks on top of the current height.
	require.Equal(t, uint32(106), response.TimeoutBlockHeight)

	require.NotNil(t, persisted)
	require.Equal(t, models.StatusSwapCreated, persisted.Status)
	require.Equal(t, models.OrderSideBuy, persisted.OrderSide)
	require.Equal(t, uint32(42), *persisted.KeyIndex)
	require.Equal(t, testUserKey, *persisted.RefundPublicKey)

	update := <-updates
	require.Equal(t, response.ID, update.ID)
	require.Equal(t, models.StatusSwapCreated, update.Status)
}

func TestService_CreateSwap_Validation(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()
	preimageHash := testPreimageHash()

	t.Run("existing preimage hash", func(t *testing.T) {
		setup.repo.EXPECT().GetSwapByPreimageHash(ctx, gomock.Any()).
			Return(&models.Swap{ID: "existing"}, nil)

		_, err := setup.service.CreateSwap(ctx, CreateSwapRequest{
			PairID:          "BTC/BTC",
			OrderSide:       "buy",
			PreimageHash:    preimageHash,
			RefundPublicKey: testUserKey,
		})
		requireErrorCode(t, err, CodeSwapWithPreimageExists)
	})

	t.Run("unknown pair", func(t *testing.T) {
		setup.repo.EXPECT().GetSwapByPreimageHash(ctx, gomock.Any()).Return(nil, nil)

		_, err := setup.service.CreateSwap(ctx, CreateSwapRequest{
			PairID:          "DOGE/BTC",
			OrderSide:       "buy",
			PreimageHash:    preimageHash,
			RefundPublicKey: testUserKey,
		})
		requireErrorCode(t, err, CodePairNotFound)
	})

	t.Run("invalid order side", func(t *testing.T) {
		setup.repo.EXPECT().GetSwapByPreimageHash(ctx, gomock.Any()).Return(nil, nil)

		_, err := setup.service.CreateSwap(ctx, CreateSwapRequest{
			PairID:          "BTC/BTC",
			OrderSide:       "hodl",
			PreimageHash:    preimageHash,
			RefundPublicKey: testUserKey,
		})
		requireErrorCode(t, err, CodeOrderSideNotFound)
	})

	t.Run("missing refund public key", func(t *testing.T) {
		setup.repo.EXPECT().GetSwapByPreimageHash(ctx, gomock.Any()).Return(nil, nil)

		_, err := setup.service.CreateSwap(ctx, CreateSwapRequest{
			PairID:       "BTC/BTC",
			OrderSide:    "buy",
			PreimageHash: preimageHash,
		})
		requireErrorCode(t, err, CodeUndefinedParameter)
	})

	t.Run("inbound liquidity bounds", func(t *testing.T) {
		for liquidity, code := range map[uint32]ErrorCode{
			9:  CodeBeneathMinInboundLiquidity,
			51: CodeExceedsMaxInboundLiquidity,
		} {
			setup.repo.EXPECT().GetSwapByPreimageHash(ctx, gomock.Any()).Return(nil, nil)

			_, err := setup.service.CreateSwap(ctx, CreateSwapRequest{
				PairID:          "BTC/BTC",
				OrderSide:       "buy",
				PreimageHash:    preimageHash,
				RefundPublicKey: testUserKey,
				Channel:         &ChannelRequest{InboundLiquidity: liquidity},
			})
			requireErrorCode(t, err, code)
		}
	})
}

func TestService_SetSwapInvoice(t *testing.T) {
	// rate 1, base fee 1 sat, percentage fee 1 sat on a 100 000 sat invoice.
	setup := newTestService(t, []*Pair{btcBtcPair(0.00001)})
	ctx := context.Background()

	updates, cancelSub := setup.service.Subscribe()
	defer cancelSub()

	lockupAddress := "bcrt1qu8dup57cfmcab7tn0zt4ca7y7g033vq8q4y5em"
	invoice := lightning.CreateMockInvoice(t, 100_000)

	pendingSwap := func() *models.Swap {
		return &models.Swap{
			ID:            "swapid",
			Pair:          "BTC/BTC",
			OrderSide:     models.OrderSideBuy,
			LockupAddress: lockupAddress,
			Status:        models.StatusSwapCreated,
		}
	}

	t.Run("binds invoice and computes the quote", func(t *testing.T) {
		swap := pendingSwap()
		setup.repo.EXPECT().GetSwap(ctx, "swapid").Return(swap, nil)
		setup.btcChain.EXPECT().EstimateFee(ctx, int32(2)).Return(0.005, nil)
		setup.repo.EXPECT().SaveSwap(ctx, swap).Return(nil)

		response, err := setup.service.SetSwapInvoice(ctx, SetSwapInvoiceRequest{
			ID:      "swapid",
			Invoice: invoice,
		})
		require.NoError(t, err)

		require.Equal(t, uint64(100_002), response.ExpectedAmount)
		require.True(t, response.AcceptZeroConf)
		require.Equal(t,
			"bitcoin:"+lockupAddress+"?amount=0.00100002&label=Send%20to%20BTC%20lightning",
			response.Bip21,
		)

		require.Equal(t, models.StatusInvoiceSet, swap.Status)
		require.Equal(t, invoice, *swap.Invoice)
		require.Equal(t, float64(1), *swap.Rate)
		require.Equal(t, uint64(100_002), *swap.ExpectedAmount)
		require.Equal(t, uint64(1), *swap.PercentageFee)

		update := <-updates
		require.Equal(t, "swapid", update.ID)
		require.Equal(t, models.StatusInvoiceSet, update.Status)
	})

	t.Run("swap not found", func(t *testing.T) {
		setup.repo.EXPECT().GetSwap(ctx, "missing").Return(nil, nil)

		_, err := setup.service.SetSwapInvoice(ctx, SetSwapInvoiceRequest{ID: "missing", Invoice: invoice})
		requireErrorCode(t, err, CodeSwapNotFound)
	})

	t.Run("invoice already set", func(t *testing.T) {
		swap := pendingSwap()
		swap.Invoice = &invoice
		setup.repo.EXPECT().GetSwap(ctx, "swapid").Return(swap, nil)

		_, err := setup.service.SetSwapInvoice(ctx, SetSwapInvoiceRequest{ID: "swapid", Invoice: invoice})
		requireErrorCode(t, err, CodeSwapHasInvoiceAlready)
	})

	t.Run("pair hash", func(t *testing.T) {
		currentHash, ok := setup.service.rates.Hash("BTC/BTC")
		require.True(t, ok)

		wrongHash := "deadbeef"
		swap := pendingSwap()
		setup.repo.EXPECT().GetSwap(ctx, "swapid").Return(swap, nil)

		_, err := setup.service.SetSwapInvoice(ctx, SetSwapInvoiceRequest{
			ID: "swapid", Invoice: invoice, PairHash: &wrongHash,
		})
		requireErrorCode(t, err, CodeInvalidPairHash)

		emptyHash := ""
		setup.repo.EXPECT().GetSwap(ctx, "swapid").Return(pendingSwap(), nil)

		_, err = setup.service.SetSwapInvoice(ctx, SetSwapInvoiceRequest{
			ID: "swapid", Invoice: invoice, PairHash: &emptyHash,
		})
		requireErrorCode(t, err, CodeInvalidPairHash)

		matching := pendingSwap()
		setup.repo.EXPECT().GetSwap(ctx, "swapid").Return(matching, nil)
		setup.btcChain.EXPECT().EstimateFee(ctx, int32(2)).Return(0.005, nil)
		setup.repo.EXPECT().SaveSwap(ctx, matching).Return(nil)

		_, err = setup.service.SetSwapInvoice(ctx, SetSwapInvoiceRequest{
			ID: "swapid", Invoice: invoice, PairHash: &currentHash,
		})
		require.NoError(t, err)
		<-updates
	})

	t.Run("funded lockup caps the invoice amount", func(t *testing.T) {
		swap := pendingSwap()
		onchainAmount := uint64(50_000)
		swap.OnchainAmount = &onchainAmount

		setup.repo.EXPECT().GetSwap(ctx, "swapid").Return(swap, nil)
		setup.btcChain.EXPECT().EstimateFee(ctx, int32(2)).Return(0.005, nil)

		_, err := setup.service.SetSwapInvoice(ctx, SetSwapInvoiceRequest{ID: "swapid", Invoice: invoice})
		requireErrorCode(t, err, CodeInvalidInvoiceAmount)
	})

	t.Run("amount beneath pair limits", func(t *testing.T) {
		smallInvoice := lightning.CreateMockInvoice(t, 100)

		setup.repo.EXPECT().GetSwap(ctx, "swapid").Return(pendingSwap(), nil)

		_, err := setup.service.SetSwapInvoice(ctx, SetSwapInvoiceRequest{ID: "swapid", Invoice: smallInvoice})
		requireErrorCode(t, err, CodeBeneathMinimalAmount)
	})
}

func TestService_CreateSwapWithInvoice_RollsBackOnFailure(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.00001)})
	ctx := context.Background()

	preimageHash := testPreimageHash()
	// Amountless invoices fail the limit check after the swap was created.
	invoice := lightning.CreateMockInvoice(t, -1)

	setup.repo.EXPECT().GetSwapByPreimageHash(ctx, gomock.Any()).Return(nil, nil)
	setup.btcChain.EXPECT().GetBlockchainInfo(ctx).Return(&chain.BlockchainInfo{Blocks: 100}, nil)
	setup.repo.EXPECT().NextKeyIndex(ctx, "BTC").Return(uint32(0), nil)
	setup.btcWallet.EXPECT().GetKeysByIndex(uint32(0)).Return(&wallet.KeyPair{PublicKey: testServiceKey}, nil)

	var created *models.Swap
	setup.repo.EXPECT().CreateSwap(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, swap *models.Swap) error {
			created = swap

			return nil
		})
	setup.repo.EXPECT().CreateChannelCreation(ctx, gomock.Any()).Return(nil)

	setup.repo.EXPECT().GetSwap(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, string) (*models.Swap, error) {
			return created, nil
		}).Times(2)

	channelCreation := &models.ChannelCreation{InboundLiquidity: 25}
	setup.repo.EXPECT().GetChannelCreation(ctx, gomock.Any()).Return(channelCreation, nil)
	setup.repo.EXPECT().DeleteChannelCreation(ctx, channelCreation).Return(nil)
	setup.repo.EXPECT().DeleteSwap(ctx, gomock.Any()).Return(nil)

	_, err := setup.service.CreateSwapWithInvoice(ctx, CreateSwapWithInvoiceRequest{
		PairID:          "BTC/BTC",
		OrderSide:       "buy",
		PreimageHash:    preimageHash,
		Invoice:         invoice,
		RefundPublicKey: testUserKey,
		Channel:         &ChannelRequest{InboundLiquidity: 25},
	})
	requireErrorCode(t, err, CodeBeneathMinimalAmount)

	require.NotNil(t, created)
	require.Nil(t, created.Invoice)
}
