// internal/handlers/user/user_handler.go
package user

import (
	"net/http"
	"strconv"

	"bookings-service/internal/domain/user"
	"bookings-service/internal/middleware"
	"bookings-service/internal/pkg/response"
	service "bookings-service/internal/service/user"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// FindByID retrieves one user
func (h *UserHandler) FindByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	u, err := h.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, user.ToResponse(u))
}

// Delete removes the requester's own account. The route guard guarantees a
// principal is present.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id, principal.Username); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
