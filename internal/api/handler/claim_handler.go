package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
)

// ClaimHandler covers ownership claims: submission by any signed-in user,
// review by admins. Approval logic lives upstream; this layer relays.
type ClaimHandler struct {
	directory ports.DirectoryAPI
	logger    zerolog.Logger
}

func NewClaimHandler(directory ports.DirectoryAPI, logger zerolog.Logger) *ClaimHandler {
	return &ClaimHandler{directory: directory, logger: logger}
}

type submitClaimRequest struct {
	Evidence string `json:"evidence" validate:"required,min=10"`
}

type updateClaimRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// Submit serves POST /businesses/:id/claim.
func (h *ClaimHandler) Submit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req submitClaimRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	claim, err := h.directory.SubmitClaim(c.Request().Context(), id, req.Evidence)
	if err != nil {
		return err
	}

	h.logger.Info().Int64("business_id", id).Str("email", snap.User.Email).Msg("ownership claim submitted")
	return c.JSON(http.StatusCreated, claim)
}

// List serves GET /admin/claims.
func (h *ClaimHandler) List(c echo.Context) error {
	claims, err := h.directory.ListClaims(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}

// Update serves PUT /admin/claims/:id, the approve/reject decision.
func (h *ClaimHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateClaimRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	claim, err := h.directory.UpdateClaimStatus(c.Request().Context(), id, domain.ClaimStatus(req.Status))
	if err != nil {
		return err
	}

	h.logger.Info().
		Int64("claim_id", id).
		Str("status", req.Status).
		Str("admin", snap.User.Email).
		Msg("claim decided")
	return c.JSON(http.StatusOK, claim)
}
