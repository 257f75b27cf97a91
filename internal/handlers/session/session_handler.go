// internal/handlers/session/session_handler.go
package session

import (
	"net/http"
	"strconv"

	"bookings-service/internal/domain/session"
	"bookings-service/internal/pkg/response"
	service "bookings-service/internal/service/session"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *service.SessionService
}

func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// FindAll lists every session
func (h *SessionHandler) FindAll(c *gin.Context) {
	sessions, err := h.sessionService.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]session.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, session.ToResponse(&sessions[i]))
	}
	response.JSON(c, http.StatusOK, out)
}

// FindByID retrieves one session
func (h *SessionHandler) FindByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	sess, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, session.ToResponse(sess))
}

// Create persists a new session
func (h *SessionHandler) Create(c *gin.Context) {
	var req session.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	sess, err := h.sessionService.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, session.ToResponse(sess))
}

// Update overwrites a session; the path id wins over any id in the payload
func (h *SessionHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	var req session.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	sess, err := h.sessionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, session.ToResponse(sess))
}

// Delete removes a session
func (h *SessionHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Participate adds the user to the session roster
func (h *SessionHandler) Participate(c *gin.Context) {
	sessionID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	userID, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.sessionService.Participate(c.Request.Context(), sessionID, userID); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// NoLongerParticipate removes the user from the session roster
func (h *SessionHandler) NoLongerParticipate(c *gin.Context) {
	sessionID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	userID, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.sessionService.NoLongerParticipate(c.Request.Context(), sessionID, userID); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
