package dashboard

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
)

// Handler holds dependencies for the dashboard endpoint.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new dashboard handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the dashboard route; it requires a session.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.GET("/dashboard", authMW, h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	p := common.GetPrincipalFromContext(c)
	if p == nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), p)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Dashboard retrieved successfully.", summary)
}
