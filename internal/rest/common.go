package rest

import (
	"errors"
	"net/http"
	"styleflame/domain"

	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

// statusFromError maps domain sentinel errors onto HTTP status codes.
// Anything unmapped is a server fault.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrOutfitNotFound),
		errors.Is(err, domain.ErrOccasionNotFound),
		errors.Is(err, domain.ErrStyleNotFound),
		errors.Is(err, domain.ErrStylistNotFound),
		errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyUpvoted),
		errors.Is(err, domain.ErrNeverUpvoted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidFilterExpression),
		errors.Is(err, domain.ErrInvalidShowTime):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
}

// viewerID returns the authenticated user's ID, or "" for an anonymous
// request on an optionally-authenticated route.
func viewerID(c echo.Context) string {
	if id, ok := c.Get("user_id").(string); ok {
		return id
	}
	return ""
}
