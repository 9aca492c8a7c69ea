package chat

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
)

// SendMessageRequest defines the chat send payload.
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// Handler holds dependencies for chat endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new chat handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the chat routes; both require a session.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	chatGroup := router.Group("/chat", authMW)
	{
		chatGroup.GET("/messages", h.history)
		chatGroup.POST("/messages", h.send)
	}
}

func (h *Handler) history(c *gin.Context) {
	msgs, err := h.service.History(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Messages retrieved successfully.", msgs)
}

func (h *Handler) send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Chat send: Invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	msg, err := h.service.Send(c.Request.Context(), common.GetPrincipalFromContext(c), req.Text)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Message sent.", msg)
}
