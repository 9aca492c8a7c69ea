package course

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
)

// Handler holds dependencies for course endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new course handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the course routes. The catalog is public (anonymous
// callers see it fully locked, so the landing page can render it); the player
// needs a session; mutations need the manage role.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, optionalAuthMW, authMW, manageMW gin.HandlerFunc) {
	courseGroup := router.Group("/courses")
	{
		courseGroup.GET("", optionalAuthMW, h.catalog)
		courseGroup.GET("/:id/player", authMW, h.player)

		manageGroup := courseGroup.Group("", authMW, manageMW)
		{
			manageGroup.POST("", h.create)
			manageGroup.DELETE("/:id", h.delete)
			manageGroup.POST("/:id/lessons", h.appendLesson)
			manageGroup.PUT("/:id/lessons", h.replaceLessons)
			manageGroup.DELETE("/:id/lessons/:lessonId", h.removeLesson)
		}
	}
}

func (h *Handler) catalog(c *gin.Context) {
	principal := common.GetPrincipalFromContext(c)
	courses, err := h.service.Catalog(c.Request.Context(), principal)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Courses retrieved successfully.", courses)
}

func (h *Handler) player(c *gin.Context) {
	principal := common.GetPrincipalFromContext(c)
	payload, err := h.service.Player(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Course retrieved successfully.", payload)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}
	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Course created successfully.", created)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) appendLesson(c *gin.Context) {
	var req AddLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}
	if err := h.service.AppendLesson(c.Request.Context(), c.Param("id"), req); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) replaceLessons(c *gin.Context) {
	var req ReplaceLessonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}
	if err := h.service.ReplaceLessons(c.Request.Context(), c.Param("id"), req.Videos); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) removeLesson(c *gin.Context) {
	err := h.service.RemoveLesson(c.Request.Context(), c.Param("id"), c.Param("lessonId"))
	if err != nil {
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
