package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrc-navate/worklog/internal/api/middleware"
	"github.com/hrc-navate/worklog/internal/core/domain"
)

// ctxViewer extracts the viewer injected by the Auth middleware. A missing
// viewer means the route was registered without Auth; reject with 401.
func ctxViewer(c echo.Context) (domain.Viewer, error) {
	viewer, ok := c.Get(middleware.ViewerKey).(domain.Viewer)
	if !ok || viewer.UserID == "" {
		return domain.Viewer{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return viewer, nil
}

func ctxToken(c echo.Context) (id string, expires time.Time) {
	id, _ = c.Get(middleware.TokenIDKey).(string)
	expires, _ = c.Get(middleware.TokenExpiresKey).(time.Time)
	return id, expires
}
