// README: Session inspection and deletion handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sofia/internal/modules/session"
	"sofia/internal/modules/stats"
)

type SessionHandler struct {
	sessions *session.Service
	stats    *stats.Recorder
}

func NewSessionHandler(sessions *session.Service, recorder *stats.Recorder) *SessionHandler {
	return &SessionHandler{sessions: sessions, stats: recorder}
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidSessionID(id) {
		writeError(c, http.StatusBadRequest, "invalid session id")
		return
	}
	sess, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sess)
}

// Delete handles DELETE /api/sessions/:id.
func (h *SessionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !isValidSessionID(id) {
		writeError(c, http.StatusBadRequest, "invalid session id")
		return
	}
	if err := h.sessions.Destroy(c.Request.Context(), id); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"deleted": id})
}

// Stats handles GET /api/stats.
func (h *SessionHandler) Stats(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.stats.Current())
}
