package payout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tradecrews/escrow-payments/pkg/storage"
)

func TestCalculateFees(t *testing.T) {
	t.Run("Standard Amount", func(t *testing.T) {
		fees, err := CalculateFees(10000) // $100.00

		assert.NoError(t, err)
		assert.Equal(t, int64(500), fees.PlatformFeeCents)
		assert.Equal(t, int64(320), fees.ProcessingFeeCents)
		assert.Equal(t, int64(820), fees.TotalFeesCents)
		assert.Equal(t, int64(9180), fees.ContractorPayoutCents)
	})

	t.Run("Platform Fee Floor", func(t *testing.T) {
		fees, err := CalculateFees(100) // $1.00

		assert.NoError(t, err)
		assert.Equal(t, int64(50), fees.PlatformFeeCents)
	})

	t.Run("Platform Fee Cap", func(t *testing.T) {
		fees, err := CalculateFees(200000) // $2,000.00

		assert.NoError(t, err)
		assert.Equal(t, int64(5000), fees.PlatformFeeCents)
		assert.Equal(t, int64(5830), fees.ProcessingFeeCents)
		assert.Equal(t, int64(189170), fees.ContractorPayoutCents)
	})

	t.Run("Parts Always Sum To The Amount", func(t *testing.T) {
		for _, amount := range []int64{100, 999, 10000, 10333, 49999, 200000, 1234567} {
			fees, err := CalculateFees(amount)

			assert.NoError(t, err)
			sum := fees.PlatformFeeCents + fees.ProcessingFeeCents + fees.ContractorPayoutCents
			assert.Equal(t, amount, sum, "amount %d", amount)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := CalculateFees(10333)
		assert.NoError(t, err)
		second, err := CalculateFees(10333)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Rejects Non Positive Amounts", func(t *testing.T) {
		for _, amount := range []int64{0, -1, -10000} {
			_, err := CalculateFees(amount)

			assert.ErrorIs(t, err, storage.ErrValidation, "amount %d", amount)
		}
	})
}
