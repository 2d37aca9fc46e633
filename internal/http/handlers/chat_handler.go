// README: Chat handler: one user turn in, one assistant reply out.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sofia/internal/modules/chat"
)

type ChatHandler struct {
	chat       *chat.Service
	maxMsgLen  int
	llmTimeout time.Duration
}

func NewChatHandler(chatSvc *chat.Service, maxMsgLen int) *ChatHandler {
	if maxMsgLen <= 0 {
		maxMsgLen = 400
	}
	return &ChatHandler{chat: chatSvc, maxMsgLen: maxMsgLen, llmTimeout: 30 * time.Second}
}

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResp struct {
	SessionID        string  `json:"session_id"`
	Reply            string  `json:"reply"`
	Category         string  `json:"category"`
	Confidence       float64 `json:"confidence"`
	TurnCount        int     `json:"turn_count"`
	State            string  `json:"state"`
	Destination      string  `json:"destination,omitempty"`
	ExternalDataUsed bool    `json:"external_data_used"`
	Fallback         bool    `json:"fallback,omitempty"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}
	if len(req.Message) > h.maxMsgLen {
		writeError(c, http.StatusBadRequest, "message too long")
		return
	}
	if req.SessionID != "" && !isValidSessionID(req.SessionID) {
		writeError(c, http.StatusBadRequest, "invalid session_id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.llmTimeout)
	defer cancel()

	reply, err := h.chat.ProcessMessage(ctx, req.SessionID, req.Message)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, chatResp{
		SessionID:        reply.Session.ID,
		Reply:            reply.Text,
		Category:         string(reply.Category),
		Confidence:       reply.Confidence,
		TurnCount:        reply.Session.TurnCount,
		State:            string(reply.Session.State),
		Destination:      reply.Session.CurrentDestination,
		ExternalDataUsed: reply.ExternalDataUsed,
		Fallback:         reply.Fallback,
	})
}
