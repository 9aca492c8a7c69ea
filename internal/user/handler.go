package user

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
)

// Handler holds dependencies for user endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the user routes. The roster and both toggles are
// admin-only; profile and lesson completion need a session.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	userGroup := router.Group("/users", authMW)
	{
		userGroup.GET("/me", h.getMe)
		userGroup.POST("/me/lessons/:lessonId/complete", h.markLessonCompleted)

		adminGroup := userGroup.Group("", adminMW)
		{
			adminGroup.GET("", h.roster)
			adminGroup.POST("/:id/role", h.toggleRole)
			adminGroup.POST("/:id/courses/:courseId/access", h.toggleAccess)
		}
	}
}

func (h *Handler) getMe(c *gin.Context) {
	p := common.GetPrincipalFromContext(c)
	if p == nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	common.RespondOK(c, "Profile retrieved successfully.", p)
}

func (h *Handler) roster(c *gin.Context) {
	users, err := h.service.Roster(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Users retrieved successfully.", users)
}

func (h *Handler) toggleRole(c *gin.Context) {
	if err := h.service.ToggleRole(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) toggleAccess(c *gin.Context) {
	err := h.service.ToggleAccess(c.Request.Context(), c.Param("id"), c.Param("courseId"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

// markLessonCompleted always answers 204: completion marking is background
// bookkeeping and its failures are logged, not surfaced.
func (h *Handler) markLessonCompleted(c *gin.Context) {
	p := common.GetPrincipalFromContext(c)
	if p == nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	h.service.MarkLessonCompleted(c.Request.Context(), p.ID, c.Param("lessonId"))
	common.RespondNoContent(c)
}
