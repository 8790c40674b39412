package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

// ChatHandler serves the per-route chat channel shared by drivers and
// passengers on the same route.
type ChatHandler struct{}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

var routeChatLog = []domain.ChatMessage{
	{User: "driver1", Message: "Any delays on this route?", Time: "10:30 AM"},
	{User: "passenger1", Message: "Just reached Geeta Bhawan stop", Time: "10:32 AM"},
}

type chatPostRequest struct {
	Message string `json:"message"`
}

// Messages returns the chat log for a route, or posts a new message.
//
// @Summary      Route chat
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        route  path  string  true  "Route identifier"
// @Success      200  {array}  domain.ChatMessage
// @Router       /api/chat/{route} [get]
func (h *ChatHandler) Messages(c echo.Context) error {
	route := c.Param("route")

	if c.Request().Method == http.MethodPost {
		username, _, err := ctxIdentity(c)
		if err != nil {
			return err
		}
		var req chatPostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		}
		return c.JSON(http.StatusOK, map[string]string{
			"msg":       fmt.Sprintf("message sent on route %s", route),
			"user":      username,
			"message":   req.Message,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, routeChatLog)
}
