// EventBridge-triggered Lambda running the daily approval sweep: escrows past
// the homeowner review window get auto-approved (when their photos verified),
// and the rest receive their reminder notifications.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/tradecrews/escrow-payments/pkg/approval"
	"github.com/tradecrews/escrow-payments/pkg/config"
	"github.com/tradecrews/escrow-payments/pkg/notify"
	dydbstore "github.com/tradecrews/escrow-payments/pkg/storage/dynamodb"
	"github.com/tradecrews/escrow-payments/pkg/sweep"
)

var sweeper *sweep.Sweeper

func init() {
	// Load environment variables from .env file (useful for local testing).
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

	// Initialize dependencies once. The approval sweep never moves money, so
	// no transfer provider is wired here.
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.Tables())

	var notifier notify.Dispatcher = &notify.NopDispatcher{}
	if cfg.NotificationsQueueURL != "" {
		notifier = notify.NewSQSDispatcher(sqs.NewFromConfig(awsCfg), cfg.NotificationsQueueURL)
	}

	approvalSvc := approval.NewService(store, notifier, logger)

	sweeper = sweep.NewSweeper(store, nil, approvalSvc, logger)
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	return sweeper.RunApprovalSweep(ctx)
}

func main() {
	lambda.Start(HandleRequest)
}
