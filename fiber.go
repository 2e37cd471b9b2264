package identity

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// LocalsUserKey is where the middleware stores the resolved identity on the
// fiber context.
const LocalsUserKey = "request-user"

type fiberHeaders struct {
	c *fiber.Ctx
}

func (h fiberHeaders) Get(key string) string {
	return h.c.Get(key)
}

// Middleware resolves the caller identity for every request and attaches it
// to the fiber locals and the request context. Requests without credentials
// proceed as guest; rejection is left to the route guards.
func (r *Resolver) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := r.Resolve(fiberHeaders{c}, c.IP())
		if user != nil {
			c.Locals(LocalsUserKey, user)
			c.SetUserContext(WithRequestUser(c.UserContext(), user))
		}
		return c.Next()
	}
}

// RequestUserFromFiber finds the resolved identity on the fiber context.
func RequestUserFromFiber(c *fiber.Ctx) (*RequestUser, bool) {
	user, ok := c.Locals(LocalsUserKey).(*RequestUser)
	return user, ok && user != nil
}

// RequireRoles gates a route by the given role set. No roles means "any
// authenticated identity".
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := RequestUserFromFiber(c)
		if err := Authorize(user, roles...); err != nil {
			return ErrorResponse(c, err)
		}
		return c.Next()
	}
}

// ErrorResponse writes a JSON error body with the transport status for the
// given error. Token failure detail never reaches the client; all auth
// failures share the same generic message.
func ErrorResponse(c *fiber.Ctx, err error) error {
	status := HTTPStatus(err)

	message := "internal server error"
	var rich *errors.Error
	if errors.As(err, &rich) && status < fiber.StatusInternalServerError {
		message = rich.Message
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// HTTPStatus maps core errors to transport status codes.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, ErrPermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenSignatureInvalid),
		errors.Is(err, ErrTokenMalformed):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrCredentialInvalid):
		return fiber.StatusBadRequest
	}

	var rich *errors.Error
	if errors.As(err, &rich) {
		switch rich.Category {
		case errors.CategoryValidation, errors.CategoryBadInput:
			return fiber.StatusBadRequest
		case errors.CategoryConflict:
			return fiber.StatusConflict
		case errors.CategoryAuth:
			return fiber.StatusUnauthorized
		case errors.CategoryNotFound:
			return fiber.StatusNotFound
		}
	}

	return fiber.StatusInternalServerError
}
