package chat

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/vaidya/server/internal/agent"
	"codeberg.org/vaidya/server/internal/errors"
	"codeberg.org/vaidya/server/internal/history"
	"codeberg.org/vaidya/server/internal/logger"
	"codeberg.org/vaidya/server/internal/metrics"
	"codeberg.org/vaidya/server/internal/sessions"
)

// Handler godoc
// @Summary Chat with the wellness assistant
// @Description Sends a message to the model with the session's recent history. Model failures return a fixed disclaimer.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body Request true "Chat message"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/chat [post]
func Handler(replier Replier, historyBuffer *history.Buffer, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		persona := replier.Persona()

		userMsg := strings.TrimSpace(req.Message)
		if userMsg == "" {
			m.ObserveChat(metrics.OutcomeEmpty)
			c.JSON(http.StatusOK, Response{Reply: persona.EmptyMessageReply})
			return
		}

		sessionID, err := sessions.ID(c)
		if err != nil {
			errors.InternalError(c, "failed to resolve session", err)
			return
		}

		ctx := c.Request.Context()
		log := logger.FromContext(ctx).With("session_id", sessionID)

		// a history read failure degrades to a single-turn call
		turns, err := historyBuffer.ProjectForModel(ctx, sessionID)
		if err != nil {
			log.Error("failed to load chat history", "error", err)
			turns = nil
		}

		start := time.Now()
		reply, err := replier.Reply(ctx, userMsg, turns)
		m.ObserveModelCall(replier.Model(), time.Since(start), err)

		outcome := metrics.OutcomeReply
		if err != nil {
			if !stderrors.Is(err, agent.ErrUpstream) {
				errors.InternalError(c, "failed to generate reply", err)
				return
			}

			log.Error("model call failed, using fallback reply", "error", err)
			reply = persona.FallbackReply
			outcome = metrics.OutcomeFallback
		}

		// the client went away, so the turn was never seen
		if ctx.Err() != nil {
			log.Warn("client disconnected before reply, not recording turn", "error", ctx.Err())
			m.ObserveChat(outcome)
			return
		}

		if err := historyBuffer.AppendTurn(ctx, sessionID, userMsg, reply); err != nil {
			log.Error("failed to append chat history", "error", err)
		}

		m.ObserveChat(outcome)
		c.JSON(http.StatusOK, Response{Reply: reply})
	}
}
