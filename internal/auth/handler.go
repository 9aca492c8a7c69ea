package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
)

// Handler holds dependencies for auth endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the auth routes. Signup and login are public;
// logout needs a session to know whose tokens to revoke.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.signup)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", authMW, h.logout)
	}
}

func (h *Handler) signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}
	session, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Account created successfully.", session)
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}
	session, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Logged in successfully.", session)
}

func (h *Handler) logout(c *gin.Context) {
	uid := common.GetFirebaseUIDFromContext(c)
	if uid == "" {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	if err := h.service.Logout(c.Request.Context(), uid); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) respondBindingError(c *gin.Context, err error) {
	h.logger.Warn("Invalid request body", zap.Error(err), zap.String("path", c.Request.URL.Path))
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
		return
	}
	common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
}
