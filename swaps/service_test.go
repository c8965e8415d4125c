package swaps

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
	"github.com/tideswap/tideswap/chain"
	"github.com/tideswap/tideswap/database"
	"github.com/tideswap/tideswap/database/models"
	"github.com/tideswap/tideswap/ethereum"
	"github.com/tideswap/tideswap/lightning"
	"github.com/tideswap/tideswap/wallet"
	"go.uber.org/mock/gomock"
)

const (
	// secp256k1 generator point and its double, used wherever a valid
	// compressed public key is needed.
	testServiceKey = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	testUserKey    = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
)

type testSetup struct {
	ctrl *gomock.Controller

	repo *database.MockRepository

	btcChain     *chain.MockClient
	ltcChain     *chain.MockClient
	btcLightning *lightning.MockClient

	btcWallet *wallet.MockWallet
	ltcWallet *wallet.MockWallet
	ethWallet *wallet.MockWallet

	provider *ethereum.MockProvider

	service *Service
}

func newTestService(t *testing.T, pairs []*Pair) *testSetup {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	setup := &testSetup{
		ctrl:         ctrl,
		repo:         database.NewMockRepository(ctrl),
		btcChain:     chain.NewMockClient(ctrl),
		ltcChain:     chain.NewMockClient(ctrl),
		btcLightning: lightning.NewMockClient(ctrl),
		btcWallet:    wallet.NewMockWallet(ctrl),
		ltcWallet:    wallet.NewMockWallet(ctrl),
		ethWallet:    wallet.NewMockWallet(ctrl),
		provider:     ethereum.NewMockProvider(ctrl),
	}

	currencies := map[string]*Currency{
		"BTC": {
			Symbol:    "BTC",
			Kind:      CurrencyBitcoinLike,
			Network:   lightning.Regtest,
			Chain:     setup.btcChain,
			Lightning: setup.btcLightning,
		},
		"LTC": {
			Symbol:  "LTC",
			Kind:    CurrencyBitcoinLike,
			Network: lightning.Regtest,
			Chain:   setup.ltcChain,
		},
		"ETH": {
			Symbol:   "ETH",
			Kind:     CurrencyEther,
			Network:  lightning.Regtest,
			Provider: setup.provider,
		},
	}

	wallets := map[string]wallet.Wallet{
		"BTC": setup.btcWallet,
		"LTC": setup.ltcWallet,
		"ETH": setup.ethWallet,
	}

	setup.service = NewService(&Config{
		Version:    "test",
		Currencies: currencies,
		Wallets:    wallets,
		Repository: setup.repo,
		Rates:      NewRateProvider(nil, 0, map[string]uint64{"BTC": 200_000}),
		Timeouts:   NewTimeoutDeltaProvider(nil),
		Contracts: Contracts{
			EtherSwap: "0x18E2DBF2Cbb2e1AB3f78b1e26081d6b29b68Ba34",
		},
		AllowReverseSwaps: true,
		UseWitnessAddress: true,
	})

	setup.btcLightning.EXPECT().GetInfo(gomock.Any()).Return(&lightning.NodeInfo{
		Version:          "0.18.2-beta",
		BlockHeight:      100,
		Pubkey:           testServiceKey,
		URIs:             []string{testServiceKey + "@127.0.0.1:9735"},
		ActiveChannels:   1,
		InactiveChannels: 0,
		PendingChannels:  0,
	}, nil).AnyTimes()

	require.NoError(t, setup.service.Init(context.Background(), pairs))

	return setup
}

func btcBtcPair(feePercent float64) *Pair {
	return &Pair{
		Base:  "BTC",
		Quote: "BTC",
		Rate:  1,
		Limits: Limits{
			Minimal: 10_000,
			Maximal: 10_000_000,
		},
		FeePercent:          feePercent,
		TimeoutDeltaMinutes: 60,
	}
}

func ltcBtcPair(feePercent float64) *Pair {
	return &Pair{
		Base:  "LTC",
		Quote: "BTC",
		Rate:  0.004,
		Limits: Limits{
			Minimal: 10_000,
			Maximal: 100_000_000,
		},
		FeePercent:          feePercent,
		TimeoutDeltaMinutes: 60,
	}
}

func TestService_GetBalance(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	setup.btcWallet.EXPECT().GetBalance(ctx).Return(&wallet.Balance{
		Total:       1,
		Confirmed:   2,
		Unconfirmed: 3,
	}, nil)
	setup.ltcWallet.EXPECT().GetBalance(ctx).Return(&wallet.Balance{}, nil)
	setup.ethWallet.EXPECT().GetBalance(ctx).Return(&wallet.Balance{
		Total:     239874,
		Confirmed: 239874,
	}, nil)

	setup.btcLightning.EXPECT().ListChannels(ctx).Return([]lightning.ChannelBalance{
		{Local: 1, Remote: 2},
		{Local: 1, Remote: 2},
	}, nil)

	balances, err := setup.service.GetBalance(ctx)
	require.NoError(t, err)

	btc := balances["BTC"]
	require.Equal(t, &wallet.Balance{Total: 1, Confirmed: 2, Unconfirmed: 3}, btc.WalletBalance)
	require.Equal(t, &LightningBalance{LocalBalance: 2, RemoteBalance: 4}, btc.LightningBalance)

	eth := balances["ETH"]
	require.Equal(t, &wallet.Balance{Total: 239874, Confirmed: 239874, Unconfirmed: 0}, eth.WalletBalance)
	require.Nil(t, eth.LightningBalance)
}

func TestService_GetInfo_CapturesErrors(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	setup.btcChain.EXPECT().GetNetworkInfo(ctx).Return(nil, errors.New("connection refused"))
	setup.ltcChain.EXPECT().GetNetworkInfo(ctx).Return(&chain.NetworkInfo{Version: 270000, Connections: 8}, nil)
	setup.ltcChain.EXPECT().GetBlockchainInfo(ctx).Return(&chain.BlockchainInfo{Blocks: 1234, ScannedBlocks: 1234}, nil)
	setup.provider.EXPECT().BlockNumber(ctx).Return(uint64(5000), nil)

	info := setup.service.GetInfo(ctx)
	require.Equal(t, "test", info.Version)

	require.Equal(t, "connection refused", info.Chains["BTC"].Chain.Error)
	require.Empty(t, info.Chains["BTC"].Lightning.Error)
	require.Equal(t, "0.18.2-beta", info.Chains["BTC"].Lightning.Version)
	require.Equal(t, ChannelStats{Active: 1}, info.Chains["BTC"].Lightning.Channels)

	require.Equal(t, uint32(1234), info.Chains["LTC"].Chain.Blocks)
	require.Equal(t, uint32(5000), info.Chains["ETH"].Chain.Blocks)
}

func TestService_GetPairs_FlagsAndWarnings(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})

	response := setup.service.GetPairs()
	require.Contains(t, response.Pairs, "BTC/BTC")
	require.Empty(t, response.Info)
	require.Empty(t, response.Warnings)

	setup.service.SetPrepayMinerFee(true)
	setup.service.SetReverseSwapsEnabled(false)

	response = setup.service.GetPairs()
	require.Equal(t, []string{InfoPrepayMinerFee}, response.Info)
	require.Equal(t, []string{WarningReverseSwapsDisabled}, response.Warnings)
}

func TestService_GetContracts(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})

	contracts, err := setup.service.GetContracts()
	require.NoError(t, err)
	require.Equal(t, "0x18E2DBF2Cbb2e1AB3f78b1e26081d6b29b68Ba34", contracts.EtherSwap)
}

func TestService_AddReferral(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	_, err := setup.service.AddReferral(ctx, AddReferralArgs{ID: "", FeeShare: 10})
	require.ErrorIs(t, err, ErrEmptyReferralID)

	_, err = setup.service.AddReferral(ctx, AddReferralArgs{ID: "partner", FeeShare: 101})
	require.ErrorIs(t, err, ErrInvalidReferralShare)

	setup.repo.EXPECT().CreateReferral(ctx, gomock.Any()).Return(nil)

	result, err := setup.service.AddReferral(ctx, AddReferralArgs{ID: "partner", FeeShare: 100})
	require.NoError(t, err)
	require.Len(t, result.APIKey, 32)
	require.Len(t, result.APISecret, 64)
}

func TestService_BroadcastTransaction_PrematureRefund(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	now := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	setup.service.now = func() time.Time { return now }

	lockupTxID := "1d1f8a66f78563b86fbb9ce0b87a8cda9e1a06849481e2d847bead4f56ad29f4"

	hash, err := chainhash.NewHashFromStr(lockupTxID)
	require.NoError(t, err)

	refundTx := wire.NewMsgTx(wire.TxVersion)
	refundTx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(hash, 0), nil, nil))
	refundTx.AddTxOut(wire.NewTxOut(10_000, []byte{0x00, 0x14}))
	refundTx.LockTime = 800

	var buf bytes.Buffer
	require.NoError(t, refundTx.Serialize(&buf))
	txHex := hex.EncodeToString(buf.Bytes())

	rejection := &btcjson.RPCError{
		Code:    btcjson.ErrRPCVerifyRejected,
		Message: "non-mandatory-script-verify-flag (Locktime requirement not satisfied) (code 64)",
	}

	t.Run("known lockup input", func(t *testing.T) {
		setup.btcChain.EXPECT().SendRawTransaction(ctx, txHex).Return("", rejection)
		setup.repo.EXPECT().GetUnfinishedSwapByLockupTransaction(ctx, lockupTxID).
			Return(swapWithTimeout(800), nil)
		setup.btcChain.EXPECT().GetBlockchainInfo(ctx).Return(&chain.BlockchainInfo{Blocks: 790}, nil)

		_, err := setup.service.BroadcastTransaction(ctx, "BTC", txHex)

		var premature *PrematureRefundError
		require.ErrorAs(t, err, &premature)
		require.Equal(t, uint32(800), premature.TimeoutBlockHeight)
		require.Equal(t, now.Unix()+10*10*60, premature.TimeoutEta)
	})

	t.Run("unknown input propagates verbatim", func(t *testing.T) {
		setup.btcChain.EXPECT().SendRawTransaction(ctx, txHex).Return("", rejection)
		setup.repo.EXPECT().GetUnfinishedSwapByLockupTransaction(ctx, lockupTxID).Return(nil, nil)

		_, err := setup.service.BroadcastTransaction(ctx, "BTC", txHex)
		require.ErrorIs(t, err, rejection)
	})

	t.Run("other rejections propagate verbatim", func(t *testing.T) {
		otherRejection := &btcjson.RPCError{
			Code:    btcjson.ErrRPCVerifyRejected,
			Message: "insufficient fee",
		}
		setup.btcChain.EXPECT().SendRawTransaction(ctx, txHex).Return("", otherRejection)

		_, err := setup.service.BroadcastTransaction(ctx, "BTC", txHex)
		require.ErrorIs(t, err, otherRejection)
	})
}

func TestService_GetFeeEstimation(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	setup.btcChain.EXPECT().EstimateFee(ctx, int32(2)).Return(12.5, nil)

	estimations, err := setup.service.GetFeeEstimation(ctx, "BTC", 0)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"BTC": 12.5}, estimations)

	gasPrice, ok := new(big.Int).SetString("20000000000", 10)
	require.True(t, ok)
	setup.provider.EXPECT().SuggestGasPrice(ctx).Return(gasPrice, nil)

	estimations, err = setup.service.GetFeeEstimation(ctx, "ETH", 0)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"ETH": 20}, estimations)
}

func TestService_DeriveKeysAndAddress(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	setup.btcWallet.EXPECT().GetKeysByIndex(uint32(7)).Return(&wallet.KeyPair{
		PublicKey:  testServiceKey,
		PrivateKey: "secret",
	}, nil)

	keys, err := setup.service.DeriveKeys("BTC", 7)
	require.NoError(t, err)
	require.Equal(t, testServiceKey, keys.PublicKey)

	_, err = setup.service.DeriveKeys("DOGE", 0)
	requireErrorCode(t, err, CodeCurrencyNotFound)

	setup.btcWallet.EXPECT().NewAddress(ctx).Return("bcrt1qu8dup57cfmcab7tn0zt4ca7y7g033vq8q4y5em", nil)

	address, err := setup.service.GetAddress(ctx, "BTC")
	require.NoError(t, err)
	require.NotEmpty(t, address)
}

func TestService_SendCoins(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	setup.btcWallet.EXPECT().SendToAddress(ctx, "addr", uint64(1000), 2.0).
		Return(&wallet.SendResult{TransactionID: "txid", Vout: 1}, nil)

	result, err := setup.service.SendCoins(ctx, SendCoinsArgs{
		Symbol:  "BTC",
		Address: "addr",
		Amount:  1000,
		Fee:     2,
	})
	require.NoError(t, err)
	require.Equal(t, uint32(1), result.Vout)

	setup.btcWallet.EXPECT().SweepWallet(ctx, "addr", 2.0).
		Return(&wallet.SendResult{TransactionID: "txid"}, nil)

	_, err = setup.service.SendCoins(ctx, SendCoinsArgs{
		Symbol:  "BTC",
		Address: "addr",
		SendAll: true,
		Fee:     2,
	})
	require.NoError(t, err)
}

func TestService_Projections(t *testing.T) {
	setup := newTestService(t, []*Pair{btcBtcPair(0.01)})
	ctx := context.Background()

	nodes := setup.service.GetNodes()
	require.Equal(t, testServiceKey, nodes["BTC"].Pubkey)
	require.NotEmpty(t, nodes["BTC"].URIs)

	timeouts := setup.service.GetTimeouts()
	require.Equal(t, PairTimeoutBlockDeltas{Base: 6, Quote: 6}, timeouts["BTC/BTC"])

	setup.btcLightning.EXPECT().GetRoutingHints(ctx, testUserKey).Return([]lightning.RoutingHint{
		{NodeID: testUserKey, ChanID: 123},
	}, nil)

	hints, err := setup.service.GetRoutingHints(ctx, "BTC", testUserKey)
	require.NoError(t, err)
	require.Len(t, hints, 1)
	require.Equal(t, uint64(123), hints[0].ChanID)

	// LTC has a chain but no Lightning node.
	_, err = setup.service.GetRoutingHints(ctx, "LTC", testUserKey)
	requireErrorCode(t, err, CodeNoLndClient)

	setup.btcChain.EXPECT().GetRawTransaction(ctx, "txid").Return("beef", nil)

	rawTx, err := setup.service.GetTransaction(ctx, "BTC", "txid")
	require.NoError(t, err)
	require.Equal(t, "beef", rawTx)

	_, err = setup.service.GetTransaction(ctx, "ETH", "txid")
	requireErrorCode(t, err, CodeNotSupportedBySymbol)
}

func requireErrorCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()

	var serviceErr Error
	require.ErrorAs(t, err, &serviceErr)
	require.Equal(t, code, serviceErr.Code)
}

func swapWithTimeout(height uint32) *models.Swap {
	return &models.Swap{
		ID:                 "premature",
		Pair:               "BTC/BTC",
		OrderSide:          models.OrderSideBuy,
		TimeoutBlockHeight: height,
		Status:             models.StatusTransactionConfirmed,
	}
}
