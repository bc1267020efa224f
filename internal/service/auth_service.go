package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"carwash/internal/auth"
	"carwash/internal/errors"
	"carwash/internal/logger"
	"carwash/internal/metrics"
	"carwash/internal/model"
	"carwash/internal/repository"
)

// LoginResult is returned to a successfully authenticated employee.
type LoginResult struct {
	User         *model.Employee   `json:"user"`
	Operations   []model.Operation `json:"operaciones"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, accessToken string) error
	// Authenticate resolves the employee behind a validated access token and
	// requires the token's session to be live.
	Authenticate(ctx context.Context, employeeID uint, accessToken string) (*model.Employee, error)
	OperationsForRole(ctx context.Context, roleID uint) ([]model.Operation, error)
	// PurgeSessions deletes inactive sessions and those older than the refresh TTL.
	PurgeSessions(ctx context.Context) (int64, error)
}

type authService struct {
	employees  repository.EmployeeRepository
	tokens     repository.TokenRepository
	operations repository.OperationRepository
	jwtService *auth.JWTService
	grants     auth.GrantStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	employees repository.EmployeeRepository,
	tokens repository.TokenRepository,
	operations repository.OperationRepository,
	jwtService *auth.JWTService,
	grants auth.GrantStoreInterface,
) AuthService {
	return &authService{
		employees:  employees,
		tokens:     tokens,
		operations: operations,
		jwtService: jwtService,
		grants:     grants,
	}
}

// Login verifies credentials, replaces the employee's previous sessions and
// returns fresh tokens along with the operations granted to the role.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	employee, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find employee: %w", err)
		}
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, errors.ErrInvalidCredentials
	}
	if !auth.VerifyPassword(employee.PasswordHash, password) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, errors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(employee.ID, employee.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(employee.ID, employee.Email)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	ops, err := s.OperationsForRole(ctx, employee.RoleIDOrZero())
	if err != nil {
		return nil, err
	}

	// Old sessions are removed best-effort; a failure must not block login.
	if err := s.tokens.DeleteByUser(ctx, employee.ID); err != nil {
		logger.Get().Warn().Err(err).Uint("empleado_id", employee.ID).Msg("could not purge previous sessions")
	}

	record := &model.TokenRecord{
		UserID:       employee.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Active:       true,
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	logger.Get().Info().Uint("empleado_id", employee.ID).Str("jti", tokenID).Msg("employee logged in")

	return &LoginResult{
		User:         employee,
		Operations:   ops,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// OperationsForRole reads through the grant cache. Role 0 (no role) has none.
func (s *authService) OperationsForRole(ctx context.Context, roleID uint) ([]model.Operation, error) {
	if roleID == 0 {
		return []model.Operation{}, nil
	}
	if ops, ok := s.grants.GetOperations(ctx, roleID); ok {
		return ops, nil
	}
	ops, err := s.operations.ListByRole(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role operations: %w", err)
	}
	if ops == nil {
		ops = []model.Operation{}
	}
	_ = s.grants.StoreOperations(ctx, roleID, ops)
	return ops, nil
}

// RefreshToken validates a refresh token against its live session and
// rotates the session's access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}
	employeeID, err := claims.EmployeeID()
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	record, err := s.tokens.FindActiveByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("find session: %w", err)
	}
	if record.UserID != employeeID {
		return "", errors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(employeeID, claims.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	if _, err := s.tokens.Rotate(ctx, record, accessToken); err != nil {
		return "", fmt.Errorf("rotate session: %w", err)
	}
	return accessToken, nil
}

// Logout deactivates the session that owns accessToken.
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	if err := s.tokens.Deactivate(ctx, accessToken); err != nil {
		return fmt.Errorf("deactivate session: %w", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, employeeID uint, accessToken string) (*model.Employee, error) {
	record, err := s.tokens.FindActiveByAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	if record.UserID != employeeID {
		return nil, errors.ErrUnauthorized
	}
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return employee, nil
}

func (s *authService) PurgeSessions(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.jwtService.RefreshTTL())
	n, err := s.tokens.PurgeStale(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	metrics.SessionsPurgedTotal.Add(float64(n))
	return n, nil
}
