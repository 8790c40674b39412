package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transitpulse/transit-api/internal/api/metrics"
	"github.com/transitpulse/transit-api/internal/core/domain"
)

// PassengerHandler serves the routes open to any authenticated identity:
// the live bus feed, service alerts, feedback, and SOS.
type PassengerHandler struct{}

func NewPassengerHandler() *PassengerHandler {
	return &PassengerHandler{}
}

var serviceAlerts = []domain.Alert{
	{Message: "Route A delayed", Time: "10:30 AM", Type: "delay"},
	{Message: "Bus 102 breakdown", Time: "11:15 AM", Type: "breakdown"},
}

var liveBuses = []domain.Bus{
	{ID: "101", Route: "A", Lat: 22.7196, Lng: 75.8577, ETA: "5 min", Destination: "DAVV Campus"},
	{ID: "102", Route: "B", Lat: 22.7300, Lng: 75.8800, ETA: "12 min", Destination: "Rajwada"},
	{ID: "103", Route: "C", Lat: 22.7120, Lng: 75.8400, ETA: "8 min", Destination: "Railway Station"},
}

type createAlertRequest struct {
	Message string `json:"message"`
}

// Alerts returns the current service alerts, or records a new one on POST.
//
// @Summary      Service alerts
// @Tags         passenger
// @Produce      json
// @Success      200  {array}  domain.Alert
// @Router       /api/alerts [get]
func (h *PassengerHandler) Alerts(c echo.Context) error {
	if c.Request().Method == http.MethodPost {
		username, _, err := ctxIdentity(c)
		if err != nil {
			return err
		}
		var req createAlertRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		}
		return c.JSON(http.StatusOK, map[string]string{
			"msg": fmt.Sprintf("alert '%s' created by %s", req.Message, username),
		})
	}
	return c.JSON(http.StatusOK, serviceAlerts)
}

// Buses returns the live positions of tracked buses.
//
// @Summary      Live bus positions
// @Tags         passenger
// @Produce      json
// @Success      200  {array}  domain.Bus
// @Router       /api/buses [get]
func (h *PassengerHandler) Buses(c echo.Context) error {
	return c.JSON(http.StatusOK, liveBuses)
}

type feedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Feedback records a service rating from the authenticated user.
//
// @Summary      Submit feedback
// @Tags         passenger
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/feedback [post]
func (h *PassengerHandler) Feedback(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	req := feedbackRequest{Rating: 5}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"msg":    fmt.Sprintf("feedback submitted successfully by %s", username),
		"rating": req.Rating,
	})
}

type sosRequest struct {
	Location string `json:"location"`
}

// SOS raises an emergency signal tied to the authenticated identity.
//
// @Summary      Trigger SOS
// @Tags         passenger
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/sos [post]
func (h *PassengerHandler) SOS(c echo.Context) error {
	username, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	req := sosRequest{Location: "Unknown"}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	metrics.SOSTriggeredTotal.WithLabelValues(role).Inc()

	return c.JSON(http.StatusOK, map[string]string{
		"msg":       fmt.Sprintf("SOS triggered by %s", username),
		"location":  req.Location,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
