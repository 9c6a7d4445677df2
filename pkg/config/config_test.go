package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradecrews/escrow-payments/pkg/config"
)

func setTableEnv(t *testing.T) {
	t.Setenv("DYNAMODB_ESCROWS_TABLE_NAME", "escrow_transactions")
	t.Setenv("DYNAMODB_APPROVALS_TABLE_NAME", "approval_history")
	t.Setenv("DYNAMODB_STATUS_LOG_TABLE_NAME", "escrow_status_log")
	t.Setenv("DYNAMODB_TRUST_SCORES_TABLE_NAME", "trust_scores")
	t.Setenv("DYNAMODB_JOBS_TABLE_NAME", "jobs")
	t.Setenv("DYNAMODB_USERS_TABLE_NAME", "users")
	t.Setenv("DYNAMODB_REVIEWS_TABLE_NAME", "reviews")
	t.Setenv("DYNAMODB_DISPUTES_TABLE_NAME", "disputes")
}

func TestLoadConfigDefaults(t *testing.T) {
	setTableEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "*/15 * * * *", cfg.ReleaseSweepSchedule)
	assert.Equal(t, "0 9 * * *", cfg.ApprovalSweepSchedule)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	setTableEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("NOTIFICATIONS_QUEUE_URL", "https://sqs.test/notifications")
	t.Setenv("TRANSFER_PROVIDER_URL", "https://transfers.test")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "https://sqs.test/notifications", cfg.NotificationsQueueURL)
	assert.Equal(t, "https://transfers.test", cfg.TransferProviderURL)
	assert.Equal(t, "escrow_transactions", cfg.Tables().Escrows)
	assert.Equal(t, "disputes", cfg.Tables().Disputes)
}

func TestValidateTables(t *testing.T) {
	setTableEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.NoError(t, cfg.ValidateTables())

	cfg.JobsTable = ""
	err = cfg.ValidateTables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DYNAMODB_JOBS_TABLE_NAME")
}
