// The sweeper is a long-running worker that drives the clock-based escrow
// transitions: releasing escrows past their cooling-off or trust-tier hold,
// auto-approving stale reviews, and dispatching reminder notifications.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/tradecrews/escrow-payments/pkg/approval"
	"github.com/tradecrews/escrow-payments/pkg/config"
	"github.com/tradecrews/escrow-payments/pkg/escrow"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	dydbstore "github.com/tradecrews/escrow-payments/pkg/storage/dynamodb"
	"github.com/tradecrews/escrow-payments/pkg/sweep"
	"github.com/tradecrews/escrow-payments/pkg/transfer"
	"github.com/tradecrews/escrow-payments/pkg/trust"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.ValidateTables(); err != nil {
		log.Fatal(err)
	}
	if cfg.TransferProviderURL == "" {
		log.Fatal("TRANSFER_PROVIDER_URL environment variable not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, cfg.Tables())

	var notifier notify.Dispatcher = &notify.NopDispatcher{}
	if cfg.NotificationsQueueURL != "" {
		notifier = notify.NewSQSDispatcher(sqs.NewFromConfig(awsCfg), cfg.NotificationsQueueURL)
	} else {
		logger.Warn("NOTIFICATIONS_QUEUE_URL not set, notifications will be dropped")
	}

	provider := transfer.NewClient(cfg.TransferProviderURL, cfg.TransferProviderAPIKey)

	trustSvc := trust.NewService(store, logger)
	escrowSvc := escrow.NewService(store, provider, trustSvc, notifier, logger)
	approvalSvc := approval.NewService(store, notifier, logger)
	sweeper := sweep.NewSweeper(store, escrowSvc, approvalSvc, logger)

	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	if _, err := c.AddFunc(cfg.ReleaseSweepSchedule, func() {
		if err := sweeper.RunReleaseSweep(context.Background()); err != nil {
			logger.Error("release sweep failed", "error", err)
		}
	}); err != nil {
		log.Fatalf("failed to schedule release sweep: %v", err)
	}
	logger.Info("scheduled release sweep", "schedule", cfg.ReleaseSweepSchedule)

	if _, err := c.AddFunc(cfg.ApprovalSweepSchedule, func() {
		if err := sweeper.RunApprovalSweep(context.Background()); err != nil {
			logger.Error("approval sweep failed", "error", err)
		}
	}); err != nil {
		log.Fatalf("failed to schedule approval sweep: %v", err)
	}
	logger.Info("scheduled approval sweep", "schedule", cfg.ApprovalSweepSchedule)

	c.Start()
	logger.Info("sweeper started")

	// Wait for termination signal to gracefully shut down.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received, stopping sweeper")
	<-c.Stop().Done()
	logger.Info("sweeper stopped")
}
