package chain

import (
	"context"
	"time"

	"fundrr-backend/config"
	"fundrr-backend/logger"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
)

const (
	broadcastRetries = 3
	confirmWait      = 2 * time.Second
)

var memoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

// TransferClient issues the side-channel transfers that accompany every
// campaign lifecycle operation. The transfer amount is decoupled from the
// logical campaign amounts; destination and amount come from configuration.
type TransferClient interface {
	// Transfer sends lamports to the given address and returns the
	// transaction signature once the transaction is accepted by the network.
	Transfer(ctx context.Context, to string, lamports uint64, memo string) (string, error)
	PayerAddress() string
}

type rpcTransferClient struct {
	client *rpc.Client
	payer  solana.PrivateKey
}

func NewTransferClient(cfg *config.ChainConfig) (TransferClient, error) {
	if len(cfg.RPCURL) == 0 {
		return nil, errors.New("chain.rpc_url is empty in config")
	}
	payer, err := solana.PrivateKeyFromBase58(cfg.PayerSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse chain.payer_secret as base58")
	}
	return &rpcTransferClient{
		client: rpc.New(cfg.RPCURL),
		payer:  payer,
	}, nil
}

func (c *rpcTransferClient) PayerAddress() string {
	return c.payer.PublicKey().String()
}

func (c *rpcTransferClient) Transfer(ctx context.Context, to string, lamports uint64, memo string) (string, error) {
	dest, err := solana.PublicKeyFromBase58(to)
	if err != nil {
		return "", errors.Wrap(err, "invalid destination address")
	}

	bh, err := c.client.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return "", errors.Wrap(err, "failed to get latest blockhash")
	}

	payerKey := c.payer.PublicKey()
	instructions := []solana.Instruction{
		system.NewTransferInstruction(lamports, payerKey, dest).Build(),
	}
	if len(memo) > 0 {
		instructions = append(instructions, solana.NewInstruction(
			memoProgramID,
			solana.AccountMetaSlice{},
			[]byte(memo),
		))
	}

	tx, err := solana.NewTransaction(
		instructions,
		bh.Value.Blockhash,
		solana.TransactionPayer(payerKey),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to create transaction")
	}

	_, err = tx.Sign(func(pk solana.PublicKey) *solana.PrivateKey {
		if pk.Equals(payerKey) {
			return &c.payer
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to sign transaction")
	}

	enc, err := tx.MarshalBinary()
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize transaction")
	}

	var sig solana.Signature
	var broadcastErr error
	for i := 0; i < broadcastRetries; i++ {
		sig, broadcastErr = c.client.SendRawTransaction(ctx, enc)
		if broadcastErr == nil {
			break
		}
		logger.Warn("transfer broadcast failed (attempt %d/%d): %v", i+1, broadcastRetries, broadcastErr)
	}
	if broadcastErr != nil {
		return "", errors.Wrap(broadcastErr, "failed to broadcast transfer")
	}

	if err := c.confirm(ctx, sig); err != nil {
		return "", err
	}
	return sig.String(), nil
}

// Verify that the broadcast transaction is visible on chain and did not
// fail. Freshly broadcast transactions may not be queryable immediately,
// so one short re-check is allowed.
func (c *rpcTransferClient) confirm(ctx context.Context, sig solana.Signature) error {
	statuses, err := c.client.GetSignatureStatuses(ctx, false, sig)
	if err != nil {
		return errors.Wrap(err, "failed to query transfer status")
	}
	if statuses == nil || len(statuses.Value) == 0 || statuses.Value[0] == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(confirmWait):
		}
		statuses, err = c.client.GetSignatureStatuses(ctx, false, sig)
		if err != nil {
			return errors.Wrap(err, "failed to query transfer status")
		}
		if statuses == nil || len(statuses.Value) == 0 || statuses.Value[0] == nil {
			return errors.New("transfer not found on chain after broadcast")
		}
	}
	if statuses.Value[0].Err != nil {
		return errors.Errorf("transfer failed on chain: %v", statuses.Value[0].Err)
	}
	logger.Debug("transfer %s confirmed (%v)", sig.String(), statuses.Value[0].ConfirmationStatus)
	return nil
}
