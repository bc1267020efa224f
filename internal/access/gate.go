package access

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"carwash/internal/auth"
	"carwash/internal/errors"
	"carwash/internal/model"
)

const identityKey = "employee"

// Gate checks an identity's role against a policy table.
type Gate struct {
	rules map[Action]map[uint]struct{}
}

// NewGate indexes policy for lookups.
func NewGate(policy map[Action][]uint) *Gate {
	rules := make(map[Action]map[uint]struct{}, len(policy))
	for action, roles := range policy {
		set := make(map[uint]struct{}, len(roles))
		for _, r := range roles {
			set[r] = struct{}{}
		}
		rules[action] = set
	}
	return &Gate{rules: rules}
}

// Check returns ErrUnauthorized without an identity and ErrForbidden when
// the identity's role may not run action.
func (g *Gate) Check(identity *model.Employee, action Action) error {
	if identity == nil {
		return errors.ErrUnauthorized
	}
	allowed, restricted := g.rules[action]
	if !restricted {
		return nil
	}
	if _, ok := allowed[identity.RoleIDOrZero()]; !ok {
		return errors.ErrForbidden
	}
	return nil
}

// Require guards a route with Check. It must run after Identify.
func (g *Gate) Require(action Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := g.Check(Identity(c), action); err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// Authenticator resolves the employee behind a live access token.
type Authenticator interface {
	Authenticate(ctx context.Context, employeeID uint, accessToken string) (*model.Employee, error)
}

// Identify loads the employee named by the token echo-jwt validated and
// stores it on the context. A token whose session was replaced or revoked is
// rejected even though its signature is still valid.
func Identify(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return unauthorized()
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return unauthorized()
			}
			employeeID, err := claims.EmployeeID()
			if err != nil {
				return unauthorized()
			}

			employee, err := authn.Authenticate(c.Request().Context(), employeeID, token.Raw)
			if err != nil {
				if errors.IsHandled(err) {
					return unauthorized()
				}
				return err
			}
			SetIdentity(c, employee)
			return next(c)
		}
	}
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Detail: errors.ErrUnauthorized.Error()})
}

// Identity returns the employee stored by Identify, or nil.
func Identity(c echo.Context) *model.Employee {
	employee, _ := c.Get(identityKey).(*model.Employee)
	return employee
}

// SetIdentity stores employee on c. Used by Identify and by tests.
func SetIdentity(c echo.Context, employee *model.Employee) {
	c.Set(identityKey, employee)
}
