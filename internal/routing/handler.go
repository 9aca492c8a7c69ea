package routing

import (
	"github.com/gin-gonic/gin"

	"nxorax_backend/internal/common"
)

// Handler exposes route resolution over HTTP so clients can ask where a
// navigation should land before rendering anything.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes sets up the route-resolution endpoint. It is public; the
// optional auth middleware supplies the principal when a session exists.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, optionalAuthMW gin.HandlerFunc) {
	router.GET("/routes/resolve", optionalAuthMW, h.resolve)
}

func (h *Handler) resolve(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("The 'path' query parameter is required."))
		return
	}

	// Auth state is settled by the time the middleware has run, so the
	// session is never in the loading state here.
	session := Session{Profile: common.GetPrincipalFromContext(c)}
	common.RespondOK(c, "Route resolved.", Resolve(session, path))
}
