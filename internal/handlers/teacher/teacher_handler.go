// internal/handlers/teacher/teacher_handler.go
package teacher

import (
	"net/http"
	"strconv"

	"bookings-service/internal/pkg/response"
	service "bookings-service/internal/service/teacher"

	"github.com/gin-gonic/gin"
)

type TeacherHandler struct {
	teacherService *service.TeacherService
}

func NewTeacherHandler(teacherService *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// FindAll lists every teacher
func (h *TeacherHandler) FindAll(c *gin.Context) {
	teachers, err := h.teacherService.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, teachers)
}

// FindByID retrieves one teacher
func (h *TeacherHandler) FindByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid teacher id")
		return
	}

	t, err := h.teacherService.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, t)
}
