package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-gateway/internal/api/middleware"
	"github.com/localspot/directory-gateway/internal/core/domain"
)

// ctxSession extracts the snapshot the route guard injected and fast-fails
// when a handler was somehow reached without it.
func ctxSession(c echo.Context) (domain.SessionSnapshot, error) {
	snap := middleware.Session(c)
	if !snap.IsAuthenticated() {
		return domain.SessionSnapshot{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return snap, nil
}

func isValidationError(err error) bool {
	var ve *domain.ValidationError
	return errors.As(err, &ve)
}

func isTransportError(err error) bool {
	var te *domain.TransportError
	return errors.As(err, &te)
}
