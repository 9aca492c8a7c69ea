package settings

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
)

// Handler holds dependencies for settings endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new settings handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the settings routes. Reading is public because the
// landing page needs the intro video before login; writing is admin-only.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	settingsGroup := router.Group("/settings")
	{
		settingsGroup.GET("/appearance", h.get)
		settingsGroup.PUT("/appearance", authMW, adminMW, h.update)
	}
}

func (h *Handler) get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Settings retrieved successfully.", resp)
}

func (h *Handler) update(c *gin.Context) {
	var req UpdateAppearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Update appearance: Invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	if err := h.service.Update(c.Request.Context(), req); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
