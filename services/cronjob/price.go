package cronjob

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"fundrr-backend/logger"
	"fundrr-backend/services/config"
	"fundrr-backend/services/shared"

	"github.com/pkg/errors"
)

const defaultPriceInterval = 60 * time.Second

// PriceCronjob polls a third-party endpoint for the native token's fiat
// price. Poll failures keep the previous value in place.
type PriceCronjob struct {
	enabled bool
	timeout time.Duration
	url     string
	client  *http.Client

	mu       sync.RWMutex
	price    float64
	hasPrice bool
}

func NewPriceCronjob(cfg *config.PriceFeedConfig) *PriceCronjob {
	timeout := time.Duration(cfg.IntervalSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultPriceInterval
	}
	return &PriceCronjob{
		enabled: cfg.Enabled && len(cfg.URL) > 0,
		timeout: timeout,
		url:     cfg.URL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *PriceCronjob) Name() string { return "price feed" }

func (c *PriceCronjob) Enabled() bool { return c.enabled }

func (c *PriceCronjob) Timeout() time.Duration { return c.timeout }

func (c *PriceCronjob) OnStart() error {
	// The first poll may fail (e.g. rate limited endpoint); the job keeps
	// running without a price until a poll succeeds
	if err := c.Call(); err != nil {
		logger.Warn("initial price poll failed: %v", err)
	}
	return nil
}

func (c *PriceCronjob) Call() error {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return errors.Wrap(err, "price poll failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("price endpoint returned status %d", resp.StatusCode)
	}

	// Coingecko simple-price document shape
	var doc struct {
		Solana struct {
			USD float64 `json:"usd"`
		} `json:"solana"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return errors.Wrap(err, "error parsing price document")
	}
	if doc.Solana.USD <= 0 {
		return errors.New("price document contains no usable price")
	}

	c.mu.Lock()
	c.price = doc.Solana.USD
	c.hasPrice = true
	c.mu.Unlock()
	shared.SolPriceUSD.Set(doc.Solana.USD)
	return nil
}

// Value returns the last successfully polled price; false until the first
// successful poll
func (c *PriceCronjob) Value() (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.price, c.hasPrice
}
