package cronjob

import (
	"context"
	"time"

	"fundrr-backend/logger"
)

type Cronjob interface {
	Name() string
	Enabled() bool
	Timeout() time.Duration
	Call() error
	OnStart() error
}

// RunCronjob calls the job on a fixed interval until the context is
// cancelled. The ticker is stopped on teardown so that no timer leaks
// past shutdown.
func RunCronjob(ctx context.Context, c Cronjob) {
	if !c.Enabled() {
		logger.Debug("%s cronjob disabled", c.Name())
		return
	}

	err := c.OnStart()
	if err != nil {
		logger.Error("%s cronjob on start error %v", c.Name(), err)
		return
	}

	logger.Debug("starting %s cronjob", c.Name())

	ticker := time.NewTicker(c.Timeout())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("stopped %s cronjob", c.Name())
			return
		case <-ticker.C:
			err := c.Call()
			if err != nil {
				logger.Error("%s cronjob error %s", c.Name(), err.Error())
			}
		}
	}
}
