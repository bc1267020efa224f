package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"carwash/internal/metrics"
	"carwash/internal/model"
	"carwash/internal/repository"
)

var hundred = decimal.NewFromInt(100)

// EarningsQuery selects a washer's orders by date range, both ends inclusive.
type EarningsQuery struct {
	EmployeeID uint
	From       model.Date
	To         model.Date
	Percentage float64
}

// Earnings echoes the query next to the computed amount.
type Earnings struct {
	EmployeeID uint       `json:"empleado_id"`
	From       model.Date `json:"fecha_inicio"`
	To         model.Date `json:"fecha_fin"`
	Percentage float64    `json:"porcentaje"`
	Amount     float64    `json:"ganancias"`
}

// EarningsService computes the payroll share of a washer.
type EarningsService interface {
	Compute(ctx context.Context, q EarningsQuery) (*Earnings, error)
}

type earningsService struct {
	orders repository.OrderRepository
}

// NewEarningsService creates a new earnings calculator.
func NewEarningsService(orders repository.OrderRepository) EarningsService {
	return &earningsService{orders: orders}
}

// Compute returns sum(total) × percentage / 100 over every order the washer
// performed in range, whatever its status. An unknown washer earns 0.
func (s *earningsService) Compute(ctx context.Context, q EarningsQuery) (*Earnings, error) {
	sum, err := s.orders.SumTotalsForWasher(ctx, q.EmployeeID, q.From, q.To)
	if err != nil {
		return nil, fmt.Errorf("compute earnings: %w", err)
	}
	amount := sum.Mul(decimal.NewFromFloat(q.Percentage)).Div(hundred)
	metrics.EarningsComputedTotal.Inc()
	return &Earnings{
		EmployeeID: q.EmployeeID,
		From:       q.From,
		To:         q.To,
		Percentage: q.Percentage,
		Amount:     amount.InexactFloat64(),
	}, nil
}
