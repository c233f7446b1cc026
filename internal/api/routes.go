package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/knstl/qstaking-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/register", registerHandler(handlers.Register))
	r.Post("/v1/stake", registerHandler(handlers.Stake))
	r.Post("/v1/unstake", registerHandler(handlers.Unstake))
	r.Post("/v1/restake", registerHandler(handlers.Restake))
	r.Post("/v1/collect", registerHandler(handlers.Collect))
	r.Post("/v1/collect-all", registerHandler(handlers.CollectAll))
	r.Post("/v1/compound", registerHandler(handlers.Compound))
	r.Post("/v1/withdraw", registerHandler(handlers.Withdraw))

	r.Get("/v1/config", registerHandler(handlers.GetEngineConfig))
	r.Get("/v1/account", registerHandler(handlers.GetAccount))
	r.Get("/v1/position", registerHandler(handlers.GetPosition))
	r.Get("/v1/proxy", registerHandler(handlers.GetProxyState))
	r.Get("/v1/rewards", registerHandler(handlers.GetProxyRewards))
	r.Get("/v1/credit-balance", registerHandler(handlers.GetCreditBalance))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
