package bitcoin

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
	"github.com/tideswap/tideswap/lightning"
)

const (
	claimKeyHex  = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	refundKeyHex = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
)

func testScript(t *testing.T, timeoutBlockHeight uint32) []byte {
	t.Helper()

	preimageHash := sha256.Sum256([]byte("preimage"))

	claimKey, err := lightning.ParsePubKey(claimKeyHex)
	require.NoError(t, err)
	refundKey, err := lightning.ParsePubKey(refundKeyHex)
	require.NoError(t, err)

	script, err := SwapScript(preimageHash[:], claimKey, refundKey, timeoutBlockHeight)
	require.NoError(t, err)

	return script
}

func TestSwapScript(t *testing.T) {
	script := testScript(t, 800_000)

	disassembled, err := txscript.DisasmString(script)
	require.NoError(t, err)

	require.Contains(t, disassembled, "OP_IF")
	require.Contains(t, disassembled, "OP_SHA256")
	require.Contains(t, disassembled, "OP_CHECKLOCKTIMEVERIFY")
	require.Contains(t, disassembled, strings.ToLower(claimKeyHex))
	require.Contains(t, disassembled, strings.ToLower(refundKeyHex))

	// The same inputs must produce the same script.
	require.Equal(t, script, testScript(t, 800_000))
	require.NotEqual(t, script, testScript(t, 800_001))
}

func TestSwapScript_RejectsShortHash(t *testing.T) {
	claimKey, err := lightning.ParsePubKey(claimKeyHex)
	require.NoError(t, err)
	refundKey, err := lightning.ParsePubKey(refundKeyHex)
	require.NoError(t, err)

	_, err = SwapScript([]byte{0x01, 0x02}, claimKey, refundKey, 100)
	require.Error(t, err)
}

func TestLockupAddresses(t *testing.T) {
	script := testScript(t, 800_000)

	witness, err := WitnessScriptHashAddress(script, &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(witness, "bcrt1"))

	nested, err := NestedScriptHashAddress(script, &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.False(t, strings.HasPrefix(nested, "bcrt1"))

	litecoin, err := WitnessScriptHashAddress(script, &LitecoinMainNetParams)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(litecoin, "ltc1"))
}

func TestDecodeTransaction(t *testing.T) {
	prevHash, err := chainhash.NewHashFromStr("1d1f8a66f78563b86fbb9ce0b87a8cda9e1a06849481e2d847bead4f56ad29f4")
	require.NoError(t, err)

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(prevHash, 1), nil, nil))
	tx.AddTxOut(wire.NewTxOut(5000, []byte{0x00, 0x14}))

	var buf bytes.Buffer
	require.NoError(t, tx.Serialize(&buf))

	decoded, err := DecodeTransaction(hex.EncodeToString(buf.Bytes()))
	require.NoError(t, err)

	require.Equal(t, []string{prevHash.String()}, InputTransactionIDs(decoded))

	_, err = DecodeTransaction("not hex")
	require.Error(t, err)
}
