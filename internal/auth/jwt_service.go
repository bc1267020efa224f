package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultAccessTokenExpiry is used when no TTL is configured.
	DefaultAccessTokenExpiry = 15 * time.Minute
	// DefaultRefreshTokenExpiry is used when no TTL is configured.
	DefaultRefreshTokenExpiry = 7 * 24 * time.Hour
)

// Claims represents JWT claims. The subject carries the employee id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// EmployeeID parses the subject claim.
func (c *Claims) EmployeeID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject %q: %w", c.Subject, err)
	}
	return uint(id), nil
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTService creates a new JWT service. Zero TTLs fall back to the defaults.
func NewJWTService(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenExpiry
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenExpiry
	}
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Secret is handed to the echo-jwt middleware.
func (s *JWTService) Secret() []byte {
	return s.secret
}

func (s *JWTService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *JWTService) RefreshTTL() time.Duration { return s.refreshTTL }

// GenerateAccessToken generates a new access token for the employee.
func (s *JWTService) GenerateAccessToken(employeeID uint, email string) (string, error) {
	return s.sign(employeeID, email, uuid.NewString(), s.accessTTL)
}

// GenerateRefreshToken generates a new refresh token. The token id (jti) is
// returned separately for logging.
func (s *JWTService) GenerateRefreshToken(employeeID uint, email string) (tokenID string, token string, err error) {
	tokenID = uuid.NewString()
	token, err = s.sign(employeeID, email, tokenID, s.refreshTTL)
	return tokenID, token, err
}

func (s *JWTService) sign(employeeID uint, email, jti string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatUint(uint64(employeeID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
