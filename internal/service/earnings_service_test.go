package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carwash/internal/model"
)

// The repository is mocked here, so these cases cover the arithmetic only.
// Range bounds and status handling live in the SQL; see
// repository.TestSumWasherTotalsSQL.
func TestEarningsService_Compute(t *testing.T) {
	from := mustDate(t, "2024-01-01")
	to := mustDate(t, "2024-01-31")

	tests := []struct {
		name       string
		sum        decimal.Decimal
		percentage float64
		expected   float64
	}{
		{name: "single order at half", sum: decimal.NewFromInt(100), percentage: 50, expected: 50},
		{name: "two orders at ten percent", sum: decimal.NewFromInt(100).Add(decimal.NewFromInt(200)), percentage: 10, expected: 30},
		{name: "no orders", sum: decimal.Zero, percentage: 40, expected: 0},
		{name: "cents", sum: decimal.RequireFromString("45.50"), percentage: 20, expected: 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrderRepository)
			orders.On("SumTotalsForWasher", mock.Anything, uint(3), from, to).Return(tt.sum, nil)

			svc := NewEarningsService(orders)
			got, err := svc.Compute(context.Background(), EarningsQuery{
				EmployeeID: 3, From: from, To: to, Percentage: tt.percentage,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.Amount)
			assert.Equal(t, uint(3), got.EmployeeID)
			assert.Equal(t, tt.percentage, got.Percentage)
			assert.Equal(t, from, got.From)
			orders.AssertExpectations(t)
		})
	}
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}
