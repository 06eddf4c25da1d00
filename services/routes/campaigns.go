package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fundrr-backend/campaign"
	"fundrr-backend/services/api"
	servicesContext "fundrr-backend/services/context"
	"fundrr-backend/services/shared"
	"fundrr-backend/services/utils"
)

type campaignRouteHandlers struct {
	service *campaign.Service
}

func newCampaignRouteHandlers(ctx servicesContext.ServicesContext) *campaignRouteHandlers {
	cfg := ctx.Config().Campaigns
	service := campaign.NewService(ctx.DB(), ctx.TransferClient(), campaign.Config{
		FeeCollector:            cfg.FeeCollector,
		EscrowWallet:            cfg.EscrowWallet,
		CreationFeeLamports:     cfg.CreationFeeLamports,
		WithdrawalFeeLamports:   cfg.WithdrawalFeeLamports,
		ContributionCapLamports: cfg.ContributionCapLamports,
		CacheTTL:                time.Duration(cfg.CacheTTLSeconds) * time.Second,
	})
	return &campaignRouteHandlers{service: service}
}

func (rh *campaignRouteHandlers) createCampaign() utils.RouteHandler {
	handler := func(request CreateCampaignRequest) (CreateCampaignResponse, *utils.ErrorHandler) {
		result, err := rh.service.Create(context.Background(), request.Creator, request.Title,
			request.Description, request.GoalAmount, request.DurationDays, request.ImageURL)
		if err != nil {
			return CreateCampaignResponse{}, campaignErrorHandler(err)
		}
		shared.CampaignsCreated.Inc()
		return CreateCampaignResponse{CampaignID: result.CampaignID, Signature: result.Signature}, nil
	}
	return utils.NewRouteHandler(handler, http.MethodPost, CreateCampaignRequest{}, CreateCampaignResponse{})
}

func (rh *campaignRouteHandlers) contribute() utils.RouteHandler {
	handler := func(request ContributeRequest) (TransferResponse, *utils.ErrorHandler) {
		signature, err := rh.service.Contribute(context.Background(), request.Contributor,
			request.CampaignID, request.Amount)
		if err != nil {
			return TransferResponse{}, campaignErrorHandler(err)
		}
		shared.ContributionsTotal.Inc()
		return TransferResponse{Signature: signature}, nil
	}
	return utils.NewRouteHandler(handler, http.MethodPost, ContributeRequest{}, TransferResponse{})
}

func (rh *campaignRouteHandlers) withdraw() utils.RouteHandler {
	handler := func(request WithdrawRequest) (TransferResponse, *utils.ErrorHandler) {
		signature, err := rh.service.Withdraw(context.Background(), request.Creator, request.CampaignID)
		if err != nil {
			return TransferResponse{}, campaignErrorHandler(err)
		}
		shared.WithdrawalsTotal.Inc()
		return TransferResponse{Signature: signature}, nil
	}
	return utils.NewRouteHandler(handler, http.MethodPost, WithdrawRequest{}, TransferResponse{})
}

func (rh *campaignRouteHandlers) listCampaigns() utils.RouteHandler {
	handler := func(params map[string]string) ([]api.ApiCampaign, *utils.ErrorHandler) {
		views, err := rh.service.List(params["wallet"])
		if err != nil {
			return nil, utils.InternalServerErrorHandler(err)
		}
		campaigns := make([]api.ApiCampaign, len(views))
		for i := range views {
			campaigns[i] = api.NewApiCampaign(&views[i].Campaign, views[i].IsCreator)
		}
		return campaigns, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"wallet": "Requesting wallet address"}, []api.ApiCampaign{})
}

func (rh *campaignRouteHandlers) getCampaign() utils.RouteHandler {
	handler := func(params map[string]string) (api.ApiCampaignDetail, *utils.ErrorHandler) {
		record, contributions, err := rh.service.Get(params["campaign_id"])
		if err != nil {
			return api.ApiCampaignDetail{}, campaignErrorHandler(err)
		}
		metadata := rh.service.Metadata(record)
		return api.NewApiCampaignDetail(record, contributions, metadata), nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"campaign_id": "Campaign identifier"}, api.ApiCampaignDetail{})
}

func (rh *campaignRouteHandlers) listByOwner() utils.RouteHandler {
	handler := func(params map[string]string) ([]api.ApiCampaign, *utils.ErrorHandler) {
		wallet := params["wallet"]
		records, err := rh.service.ListByCreator(wallet)
		if err != nil {
			return nil, utils.InternalServerErrorHandler(err)
		}
		campaigns := make([]api.ApiCampaign, len(records))
		for i := range records {
			campaigns[i] = api.NewApiCampaign(&records[i], true)
		}
		return campaigns, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"wallet": "Creator wallet address"}, []api.ApiCampaign{})
}

func campaignErrorHandler(err error) *utils.ErrorHandler {
	switch {
	case errors.Is(err, campaign.ErrNotFound):
		return utils.ApiResponseErrorHandler(api.ApiResStatusNotFound, "campaign not found", err.Error())
	case errors.Is(err, campaign.ErrNotCreator):
		return utils.ApiResponseErrorHandler(api.ApiResStatusForbidden, "only the campaign creator may withdraw", err.Error())
	case errors.Is(err, campaign.ErrTransferFailed):
		shared.TransferFailures.Inc()
		return utils.ApiResponseErrorHandler(api.ApiResStatusTransferError, "transfer failed", err.Error())
	case errors.Is(err, campaign.ErrNotActive),
		errors.Is(err, campaign.ErrExpired),
		errors.Is(err, campaign.ErrFullyFunded),
		errors.Is(err, campaign.ErrWithdrawLocked),
		errors.Is(err, campaign.ErrInvalidAmount),
		errors.Is(err, campaign.ErrInvalidDuration),
		errors.Is(err, campaign.ErrInvalidAddress),
		errors.Is(err, campaign.ErrMissingField):
		return utils.ApiResponseErrorHandler(api.ApiResStatusInvalidRequest, "invalid request", err.Error())
	default:
		return utils.InternalServerErrorHandler(err)
	}
}

func AddCampaignRoutes(router utils.Router, ctx servicesContext.ServicesContext) {
	rh := newCampaignRouteHandlers(ctx)
	shared.RegisterCacheAgeGauge(func() float64 {
		return rh.service.CacheAge().Seconds()
	})

	subrouter := router.WithPrefix("/campaigns", "Campaigns")
	subrouter.AddRoute("/create", rh.createCampaign(), "Create a campaign")
	subrouter.AddRoute("/contribute", rh.contribute(), "Contribute to a campaign")
	subrouter.AddRoute("/withdraw", rh.withdraw(), "Withdraw a campaign's funds")
	subrouter.AddRoute("/list/{wallet}", rh.listCampaigns(), "List all campaigns")
	subrouter.AddRoute("/get/{campaign_id}", rh.getCampaign(), "Get one campaign with contributions")
	subrouter.AddRoute("/owner/{wallet}", rh.listByOwner(), "List campaigns of a creator")
}
