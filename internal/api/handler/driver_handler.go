package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

// DriverHandler serves the driver-gated routes.
type DriverHandler struct{}

func NewDriverHandler() *DriverHandler {
	return &DriverHandler{}
}

var assignedRoute = domain.RouteInfo{
	CurrentRoute: "R102",
	RouteName:    "Vijay Nagar to Railway Station",
	Stops: []domain.Stop{
		{Name: "Vijay Nagar Square", Lat: 22.7276, Lng: 75.8723, ETA: "0 min"},
		{Name: "IT Park", Lat: 22.7196, Lng: 75.8577, ETA: "5 min"},
		{Name: "Geeta Bhawan", Lat: 22.7120, Lng: 75.8400, ETA: "15 min"},
		{Name: "Railway Station", Lat: 22.7050, Lng: 75.8350, ETA: "25 min"},
	},
	OtherBuses: []domain.RouteBus{
		{ID: "101", Lat: 22.7276, Lng: 75.8723, Status: "On Time"},
		{ID: "103", Lat: 22.7120, Lng: 75.8400, Status: "Delayed"},
		{ID: "104", Lat: 22.7350, Lng: 75.8650, Status: "On Time"},
	},
}

type breakdownRequest struct {
	Location string `json:"location"`
	Issue    string `json:"issue"`
	Details  string `json:"details"`
}

// Breakdown records a vehicle breakdown reported by the driver.
//
// @Summary      Report a breakdown (driver only)
// @Tags         driver
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/breakdown [post]
func (h *DriverHandler) Breakdown(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req breakdownRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"msg":       fmt.Sprintf("breakdown reported by driver %s", username),
		"location":  req.Location,
		"issue":     req.Issue,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// RouteInfo returns the driver's assigned route with stops and nearby buses.
//
// @Summary      Assigned route details (driver only)
// @Tags         driver
// @Produce      json
// @Success      200  {object}  domain.RouteInfo
// @Failure      403  {object}  map[string]string
// @Router       /api/driver/route-info [get]
func (h *DriverHandler) RouteInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, assignedRoute)
}
