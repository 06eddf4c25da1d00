package routes

import (
	"net/http"

	"fundrr-backend/services/api"
	"fundrr-backend/services/cronjob"
	"fundrr-backend/services/utils"
)

type priceRouteHandlers struct {
	feed *cronjob.PriceCronjob
}

func (rh *priceRouteHandlers) getPrice() utils.RouteHandler {
	handler := func(params map[string]string) (PriceResponse, *utils.ErrorHandler) {
		price, ok := rh.feed.Value()
		if !ok {
			return PriceResponse{}, utils.ApiResponseErrorHandler(api.ApiResStatusError,
				"price not available", "no successful price poll yet")
		}
		return PriceResponse{Price: price, Currency: "usd"}, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet, map[string]string{}, PriceResponse{})
}

func AddPriceRoutes(router utils.Router, feed *cronjob.PriceCronjob) {
	rh := &priceRouteHandlers{feed: feed}

	subrouter := router.WithPrefix("/price", "Price")
	subrouter.AddRoute("/sol", rh.getPrice(), "Last polled SOL price")
}
