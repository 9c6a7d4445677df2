package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/tradecrews/escrow-payments/pkg/approval"
	"github.com/tradecrews/escrow-payments/pkg/config"
	"github.com/tradecrews/escrow-payments/pkg/enforcement"
	"github.com/tradecrews/escrow-payments/pkg/escrow"
	"github.com/tradecrews/escrow-payments/pkg/handlers"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	"github.com/tradecrews/escrow-payments/pkg/payout"
	dydbstore "github.com/tradecrews/escrow-payments/pkg/storage/dynamodb"
	"github.com/tradecrews/escrow-payments/pkg/transfer"
	"github.com/tradecrews/escrow-payments/pkg/trust"
)

func main() {
	// Load environment variables from .env file
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

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, cfg.Tables())

	// Notification queue. Without a queue URL notifications are dropped, which
	// is fine for local runs.
	var notifier notify.Dispatcher = &notify.NopDispatcher{}
	if cfg.NotificationsQueueURL != "" {
		notifier = notify.NewSQSDispatcher(sqs.NewFromConfig(awsCfg), cfg.NotificationsQueueURL)
	} else {
		logger.Warn("NOTIFICATIONS_QUEUE_URL not set, notifications will be dropped")
	}

	if cfg.TransferProviderURL == "" {
		log.Fatal("TRANSFER_PROVIDER_URL environment variable not set")
	}
	provider := transfer.NewClient(cfg.TransferProviderURL, cfg.TransferProviderAPIKey)

	// Wire up the services.
	trustSvc := trust.NewService(store, logger)
	escrowSvc := escrow.NewService(store, provider, trustSvc, notifier, logger)
	approvalSvc := approval.NewService(store, notifier, logger)
	enforcementSvc := enforcement.NewService(store, notifier, logger)
	payoutSvc := payout.NewService(provider, trustSvc)

	handler := handlers.NewApiHandler(escrowSvc, approvalSvc, enforcementSvc, trustSvc, payoutSvc)
	router := handlers.NewRouter(handler, logger)

	log.Printf("Starting server on port %s", cfg.HTTPPort)

	// Start the server
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
