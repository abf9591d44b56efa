package handler

import (
	"net/http"

	"github.com/vfg2006/influencer-sales-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/accepting"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/affiliate"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/sales"
	"github.com/vfg2006/influencer-sales-api/pkg/middleware"
)

func Healthcheck(deps map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(deps),
		},
	}
}

func Sales(service sales.SalesService, directory affiliate.AffiliateDirectory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/sales/check-orders",
			Method:      http.MethodPost,
			Handler:     CheckOrders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/sales/summary/:influencerId",
			Method:      http.MethodGet,
			Handler:     GetSalesSummary(directory, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Imports(service sales.SalesService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/import/preview",
			Method:      http.MethodPost,
			Handler:     PreviewImport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/sales/import/confirm",
			Method:      http.MethodPost,
			Handler:     ConfirmImport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Affiliates(directory affiliate.AffiliateDirectory, service sales.SalesService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/affiliates",
			Method:      http.MethodGet,
			Handler:     ListAffiliates(directory),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliates",
			Method:      http.MethodPost,
			Handler:     CreateAffiliate(directory),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/affiliates/:id",
			Method:      http.MethodGet,
			Handler:     GetAffiliate(directory),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliates/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAffiliate(directory),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/affiliates/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAffiliate(directory),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/affiliates/:id/sales",
			Method:      http.MethodGet,
			Handler:     ListAffiliateSales(directory, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultation",
			Method:      http.MethodGet,
			Handler:     GetConsultation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Terms(acceptor accepting.TermsAcceptor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/terms/send-code",
			Method:      http.MethodPost,
			Handler:     SendAcceptanceCode(acceptor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/terms/validate-code",
			Method:      http.MethodPost,
			Handler:     ValidateAcceptanceCode(acceptor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/terms/status",
			Method:      http.MethodGet,
			Handler:     GetAcceptanceStatus(acceptor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
