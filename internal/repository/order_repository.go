package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carwash/internal/model"
)

const sumWasherTotalsSQL = `
SELECT COALESCE(SUM(total), 0)
FROM orden_servicio
WHERE empleado_lavador_id = ?
  AND fecha_orden BETWEEN ? AND ?`

// OrderRepository defines service order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.ServiceOrder) error
	Update(ctx context.Context, order *model.ServiceOrder) error
	FindByID(ctx context.Context, id uint) (*model.ServiceOrder, error)
	// List returns every order, or only those in status when it is non-nil.
	List(ctx context.Context, status *model.OrderStatus) ([]model.ServiceOrder, error)
	Delete(ctx context.Context, order *model.ServiceOrder) error
	// SumTotalsForWasher adds up order totals for a washer between two dates,
	// both inclusive, whatever the order status.
	SumTotalsForWasher(ctx context.Context, washerID uint, from, to model.Date) (decimal.Decimal, error)
}

type orderRepository struct {
	crud[model.ServiceOrder]
}

// NewOrderRepository creates a new service order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{crud[model.ServiceOrder]{db: db}}
}

func (r *orderRepository) List(ctx context.Context, status *model.OrderStatus) ([]model.ServiceOrder, error) {
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("estado = ?", *status)
	}
	var orders []model.ServiceOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) SumTotalsForWasher(ctx context.Context, washerID uint, from, to model.Date) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	row := r.db.WithContext(ctx).Raw(sumWasherTotalsSQL, washerID, from, to).Row()
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum washer totals: %w", err)
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
