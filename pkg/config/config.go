// Package config loads service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tradecrews/escrow-payments/pkg/storage/dynamodb"
)

// Config holds every setting the entrypoints need. All values come from the
// environment; schedules and the port have working defaults.
type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`

	EscrowsTable     string `mapstructure:"DYNAMODB_ESCROWS_TABLE_NAME"`
	ApprovalsTable   string `mapstructure:"DYNAMODB_APPROVALS_TABLE_NAME"`
	StatusLogTable   string `mapstructure:"DYNAMODB_STATUS_LOG_TABLE_NAME"`
	TrustScoresTable string `mapstructure:"DYNAMODB_TRUST_SCORES_TABLE_NAME"`
	JobsTable        string `mapstructure:"DYNAMODB_JOBS_TABLE_NAME"`
	UsersTable       string `mapstructure:"DYNAMODB_USERS_TABLE_NAME"`
	ReviewsTable     string `mapstructure:"DYNAMODB_REVIEWS_TABLE_NAME"`
	DisputesTable    string `mapstructure:"DYNAMODB_DISPUTES_TABLE_NAME"`

	NotificationsQueueURL string `mapstructure:"NOTIFICATIONS_QUEUE_URL"`

	TransferProviderURL    string `mapstructure:"TRANSFER_PROVIDER_URL"`
	TransferProviderAPIKey string `mapstructure:"TRANSFER_PROVIDER_API_KEY"`

	ReleaseSweepSchedule  string `mapstructure:"RELEASE_SWEEP_SCHEDULE"`
	ApprovalSweepSchedule string `mapstructure:"APPROVAL_SWEEP_SCHEDULE"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("RELEASE_SWEEP_SCHEDULE", "*/15 * * * *") // Every 15 minutes.
	viper.SetDefault("APPROVAL_SWEEP_SCHEDULE", "0 9 * * *")   // Daily at 09:00.
	viper.AutomaticEnv()

	// Bind environment variables explicitly so they appear in Unmarshal.
	for _, key := range []string{
		"HTTP_PORT",
		"DYNAMODB_ESCROWS_TABLE_NAME",
		"DYNAMODB_APPROVALS_TABLE_NAME",
		"DYNAMODB_STATUS_LOG_TABLE_NAME",
		"DYNAMODB_TRUST_SCORES_TABLE_NAME",
		"DYNAMODB_JOBS_TABLE_NAME",
		"DYNAMODB_USERS_TABLE_NAME",
		"DYNAMODB_REVIEWS_TABLE_NAME",
		"DYNAMODB_DISPUTES_TABLE_NAME",
		"NOTIFICATIONS_QUEUE_URL",
		"TRANSFER_PROVIDER_URL",
		"TRANSFER_PROVIDER_API_KEY",
		"RELEASE_SWEEP_SCHEDULE",
		"APPROVAL_SWEEP_SCHEDULE",
	} {
		_ = viper.BindEnv(key)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ValidateTables checks that every DynamoDB table name is set. Entrypoints
// call this at startup so a misconfigured deployment fails fast.
func (c *Config) ValidateTables() error {
	tables := map[string]string{
		"DYNAMODB_ESCROWS_TABLE_NAME":      c.EscrowsTable,
		"DYNAMODB_APPROVALS_TABLE_NAME":    c.ApprovalsTable,
		"DYNAMODB_STATUS_LOG_TABLE_NAME":   c.StatusLogTable,
		"DYNAMODB_TRUST_SCORES_TABLE_NAME": c.TrustScoresTable,
		"DYNAMODB_JOBS_TABLE_NAME":         c.JobsTable,
		"DYNAMODB_USERS_TABLE_NAME":        c.UsersTable,
		"DYNAMODB_REVIEWS_TABLE_NAME":      c.ReviewsTable,
		"DYNAMODB_DISPUTES_TABLE_NAME":     c.DisputesTable,
	}
	for key, value := range tables {
		if value == "" {
			return fmt.Errorf("%s environment variable is not set", key)
		}
	}
	return nil
}

// Tables maps the configured table names onto the storage layer's table set.
func (c *Config) Tables() dynamodb.Tables {
	return dynamodb.Tables{
		Escrows:     c.EscrowsTable,
		Approvals:   c.ApprovalsTable,
		StatusLog:   c.StatusLogTable,
		TrustScores: c.TrustScoresTable,
		Jobs:        c.JobsTable,
		Users:       c.UsersTable,
		Reviews:     c.ReviewsTable,
		Disputes:    c.DisputesTable,
	}
}
