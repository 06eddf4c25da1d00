package chain

import (
	"github.com/gagliardetto/solana-go"
)

// NewCampaignID returns the base58 public key of a freshly generated
// keypair. The key is never funded or signed with, it only serves as a
// globally unique, address-shaped campaign identifier.
func NewCampaignID() string {
	return solana.NewWallet().PublicKey().String()
}

func ValidAddress(addr string) bool {
	_, err := solana.PublicKeyFromBase58(addr)
	return err == nil
}
