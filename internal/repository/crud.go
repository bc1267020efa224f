package repository

import (
	"context"

	"gorm.io/gorm"
)

// crud implements the primary-key operations shared by every table. The
// concrete repositories embed it and add their own lookups.
type crud[T any] struct {
	db *gorm.DB
}

// Create inserts a new row.
func (r crud[T]) Create(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// Update writes every column of an existing row.
func (r crud[T]) Update(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// FindByID returns gorm.ErrRecordNotFound when the row does not exist.
func (r crud[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns all rows in storage order.
func (r crud[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Delete physically removes the row identified by v's primary key.
func (r crud[T]) Delete(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Delete(v).Error
}
