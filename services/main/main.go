package main

import (
	stdContext "context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fundrr-backend/logger"
	"fundrr-backend/services/context"
	"fundrr-backend/services/cronjob"
	"fundrr-backend/services/routes"
	"fundrr-backend/services/shared"
	"fundrr-backend/services/utils"

	"github.com/gorilla/mux"
)

func main() {
	ctx, err := context.BuildContext()
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}

	shared.InitMetricsServer(&ctx.Config().Metrics)

	cronCtx, cancel := stdContext.WithCancel(stdContext.Background())
	defer cancel()
	priceFeed := cronjob.NewPriceCronjob(&ctx.Config().PriceFeed)
	go cronjob.RunCronjob(cronCtx, priceFeed)

	muxRouter := mux.NewRouter()
	router := utils.NewSwaggerRouter(muxRouter, "Fundrr backend", "0.1.0")
	routes.AddCampaignRoutes(router, ctx)
	routes.AddLedgerRoutes(router, ctx)
	routes.AddPriceRoutes(router, priceFeed)
	router.Finalize()

	srv := &http.Server{
		Handler: muxRouter,
		Addr:    ctx.Config().Services.Address,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
		srv.Shutdown(stdContext.Background())
	}()

	logger.Info("Serving API on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server exited: %v", err)
	}
}
