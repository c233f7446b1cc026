package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/knstl/qstaking-service/cmd/qstaking-service/cli"
	"github.com/knstl/qstaking-service/cmd/qstaking-service/scripts"
	"github.com/knstl/qstaking-service/internal/api"
	"github.com/knstl/qstaking-service/internal/clients"
	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/db/model"
	"github.com/knstl/qstaking-service/internal/observability/healthcheck"
	"github.com/knstl/qstaking-service/internal/observability/metrics"
	"github.com/knstl/qstaking-service/internal/queue"
	"github.com/knstl/qstaking-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking db model")
	}

	externalClients := clients.New(cfg)
	instructionSender, err := queue.NewInstructionSender(cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating instruction queue client")
	}
	services, err := services.New(ctx, cfg, externalClients, instructionSender)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking services layer")
	}
	// Start the contract event queue processing
	queues := queue.New(cfg.Queue, instructionSender, services)

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		err := scripts.ReplayUnprocessableMessages(ctx, cfg, queues, services.DbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	// Kick off issuer provisioning on first boot
	if err := services.EnsureIssuerProvisioned(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while ensuring issuer provisioning")
	}

	queues.StartReceivingMessages()

	if err := healthcheck.StartHealthCheckCron(ctx, queues, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting staking api service")
	}
}
