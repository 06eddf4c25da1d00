package chain

import (
	"context"
	"fmt"
	"sync"
)

type StubTransfer struct {
	To       string
	Lamports uint64
	Memo     string
}

// Transfer client for tests. Records all transfers and returns
// deterministic signatures; set Err to make the next calls fail.
type StubTransferClient struct {
	sync.Mutex

	Err       error
	Transfers []StubTransfer

	payer string
}

func NewStubTransferClient() *StubTransferClient {
	return &StubTransferClient{payer: NewCampaignID()}
}

func (c *StubTransferClient) Transfer(ctx context.Context, to string, lamports uint64, memo string) (string, error) {
	c.Lock()
	defer c.Unlock()

	if c.Err != nil {
		return "", c.Err
	}
	c.Transfers = append(c.Transfers, StubTransfer{To: to, Lamports: lamports, Memo: memo})
	return fmt.Sprintf("stub-signature-%d", len(c.Transfers)), nil
}

func (c *StubTransferClient) PayerAddress() string {
	return c.payer
}

func (c *StubTransferClient) TransferCount() int {
	c.Lock()
	defer c.Unlock()
	return len(c.Transfers)
}
