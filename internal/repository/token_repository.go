package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"carwash/internal/model"
)

// TokenRepository persists employee sessions (one access/refresh pair per row).
type TokenRepository interface {
	Create(ctx context.Context, record *model.TokenRecord) error
	DeleteByUser(ctx context.Context, userID uint) error
	FindActiveByAccessToken(ctx context.Context, accessToken string) (*model.TokenRecord, error)
	FindActiveByRefreshToken(ctx context.Context, refreshToken string) (*model.TokenRecord, error)
	// Rotate swaps the access token of a session in one transaction.
	Rotate(ctx context.Context, old *model.TokenRecord, newAccessToken string) (*model.TokenRecord, error)
	Deactivate(ctx context.Context, accessToken string) error
	// PurgeStale deletes inactive sessions and sessions created before cutoff.
	PurgeStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new session repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, record *model.TokenRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *tokenRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.TokenRecord{}).Error
}

func (r *tokenRepository) FindActiveByAccessToken(ctx context.Context, accessToken string) (*model.TokenRecord, error) {
	var record model.TokenRecord
	err := r.db.WithContext(ctx).
		Where("access_token = ? AND status = ?", accessToken, true).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *tokenRepository) FindActiveByRefreshToken(ctx context.Context, refreshToken string) (*model.TokenRecord, error) {
	var record model.TokenRecord
	err := r.db.WithContext(ctx).
		Where("refresh_token = ? AND status = ?", refreshToken, true).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *tokenRepository) Rotate(ctx context.Context, old *model.TokenRecord, newAccessToken string) (*model.TokenRecord, error) {
	next := &model.TokenRecord{
		UserID:       old.UserID,
		AccessToken:  newAccessToken,
		RefreshToken: old.RefreshToken,
		Active:       true,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("access_token = ?", old.AccessToken).Delete(&model.TokenRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(next).Error
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (r *tokenRepository) Deactivate(ctx context.Context, accessToken string) error {
	return r.db.WithContext(ctx).Model(&model.TokenRecord{}).
		Where("access_token = ?", accessToken).
		Update("status", false).Error
}

func (r *tokenRepository) PurgeStale(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? OR created_date < ?", false, cutoff).
		Delete(&model.TokenRecord{})
	return res.RowsAffected, res.Error
}
