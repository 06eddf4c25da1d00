package routes

import (
	"net/http"

	"fundrr-backend/ledger"
	"fundrr-backend/services/api"
	servicesContext "fundrr-backend/services/context"
	"fundrr-backend/services/utils"

	"gorm.io/gorm"
)

type ledgerRouteHandlers struct {
	db *gorm.DB
}

func newLedgerRouteHandlers(ctx servicesContext.ServicesContext) *ledgerRouteHandlers {
	return &ledgerRouteHandlers{
		db: ctx.DB(),
	}
}

func (rh *ledgerRouteHandlers) getHistory() utils.RouteHandler {
	handler := func(params map[string]string) ([]api.ApiLedgerEntry, *utils.ErrorHandler) {
		entries, err := ledger.Query(rh.db, params["wallet"])
		if err != nil {
			return nil, utils.InternalServerErrorHandler(err)
		}
		history := make([]api.ApiLedgerEntry, len(entries))
		for i := range entries {
			history[i] = api.NewApiLedgerEntry(&entries[i])
		}
		return history, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"wallet": "Wallet address"}, []api.ApiLedgerEntry{})
}

func AddLedgerRoutes(router utils.Router, ctx servicesContext.ServicesContext) {
	rh := newLedgerRouteHandlers(ctx)

	subrouter := router.WithPrefix("/transactions", "Transactions")
	subrouter.AddRoute("/history/{wallet}", rh.getHistory(), "Transaction history of a wallet")
}
