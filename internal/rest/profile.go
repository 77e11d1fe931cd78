package rest

import (
	"context"
	"net/http"
	"styleflame/domain"
	"styleflame/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	GetStyleProfile(ctx context.Context, userID string) (domain.StyleAffinityProfile, error)
}

type ProfileHandler struct {
	profileService ProfileService
	timeout        time.Duration
}

func NewProfileHandler(profileService ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		timeout:        10 * time.Second,
	}
}

// GetStyleProfile exposes the viewer's computed style affinities.
func (h *ProfileHandler) GetStyleProfile(c echo.Context) error {
	uid := viewerID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.profileService.GetStyleProfile(ctx, uid)
	if err != nil {
		logger.Error("Failed to compute style profile", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profile))
}
