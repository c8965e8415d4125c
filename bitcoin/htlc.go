// Package bitcoin builds the HTLC redeem scripts and lockup addresses for
// UTXO chains, and decodes raw transactions for broadcast safety checks.
package bitcoin

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// SwapScript builds the redeem script of a swap lockup output.
//
// Script structure:
//
//	OP_IF
//	    OP_SHA256 <preimage_hash> OP_EQUALVERIFY
//	    <claim_pubkey> OP_CHECKSIG
//	OP_ELSE
//	    <timeout_block_height> OP_CHECKLOCKTIMEVERIFY OP_DROP
//	    <refund_pubkey> OP_CHECKSIG
//	OP_ENDIF
//
// Claim path: preimage + claim key signature.
// Refund path: refund key signature once the chain passes the timeout height.
func SwapScript(preimageHash []byte, claimPubKey, refundPubKey *btcec.PublicKey, timeoutBlockHeight uint32) ([]byte, error) {
	if len(preimageHash) != sha256.Size {
		return nil, fmt.Errorf("preimage hash must be %d bytes, got %d", sha256.Size, len(preimageHash))
	}

	builder := txscript.NewScriptBuilder()

	builder.AddOp(txscript.OP_IF)
	builder.AddOp(txscript.OP_SHA256)
	builder.AddData(preimageHash)
	builder.AddOp(txscript.OP_EQUALVERIFY)
	builder.AddData(claimPubKey.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)
	builder.AddOp(txscript.OP_ELSE)
	builder.AddInt64(int64(timeoutBlockHeight))
	builder.AddOp(txscript.OP_CHECKLOCKTIMEVERIFY)
	builder.AddOp(txscript.OP_DROP)
	builder.AddData(refundPubKey.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)
	builder.AddOp(txscript.OP_ENDIF)

	script, err := builder.Script()
	if err != nil {
		return nil, fmt.Errorf("failed to build swap script: %w", err)
	}

	return script, nil
}

// WitnessScriptHashAddress derives the P2WSH lockup address of a redeem script.
func WitnessScriptHashAddress(script []byte, params *chaincfg.Params) (string, error) {
	scriptHash := sha256.Sum256(script)

	address, err := btcutil.NewAddressWitnessScriptHash(scriptHash[:], params)
	if err != nil {
		return "", fmt.Errorf("failed to derive witness address: %w", err)
	}

	return address.EncodeAddress(), nil
}

// NestedScriptHashAddress derives the P2SH-nested-P2WSH lockup address of a
// redeem script, for wallets that cannot send to bech32 addresses.
func NestedScriptHashAddress(script []byte, params *chaincfg.Params) (string, error) {
	scriptHash := sha256.Sum256(script)

	witnessProgram, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddData(scriptHash[:]).
		Script()
	if err != nil {
		return "", fmt.Errorf("failed to build witness program: %w", err)
	}

	address, err := btcutil.NewAddressScriptHash(witnessProgram, params)
	if err != nil {
		return "", fmt.Errorf("failed to derive nested address: %w", err)
	}

	return address.EncodeAddress(), nil
}

// DecodeTransaction parses a hex-encoded raw transaction.
func DecodeTransaction(txHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transaction hex: %w", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to deserialize transaction: %w", err)
	}

	return tx, nil
}

// InputTransactionIDs returns the ids of the transactions the inputs spend.
func InputTransactionIDs(tx *wire.MsgTx) []string {
	ids := make([]string, 0, len(tx.TxIn))
	for _, input := range tx.TxIn {
		ids = append(ids, input.PreviousOutPoint.Hash.String())
	}

	return ids
}
