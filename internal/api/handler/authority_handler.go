package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

// AuthorityHandler serves the authority-gated monitoring routes.
type AuthorityHandler struct{}

func NewAuthorityHandler() *AuthorityHandler {
	return &AuthorityHandler{}
}

var trackedVehicles = []domain.Vehicle{
	{ID: "BUS101", Type: "driver", Location: domain.Coordinates{Lat: 22.7196, Lng: 75.8577}, Status: "Active", Route: "R102"},
	{ID: "BUS102", Type: "driver", Location: domain.Coordinates{Lat: 22.7276, Lng: 75.8723}, Status: "Active", Route: "R101"},
	{ID: "BUS103", Type: "driver", Location: domain.Coordinates{Lat: 22.7120, Lng: 75.8400}, Status: "Maintenance", Route: "R103"},
	{ID: "PASS101", Type: "passenger", Location: domain.Coordinates{Lat: 22.7120, Lng: 75.8400}, Status: "Waiting", Route: "R102"},
}

// AllVehicles returns every tracked unit on the fleet map.
//
// @Summary      All tracked vehicles (authority only)
// @Tags         authority
// @Produce      json
// @Success      200  {array}   domain.Vehicle
// @Failure      403  {object}  map[string]string
// @Router       /api/authority/all-vehicles [get]
func (h *AuthorityHandler) AllVehicles(c echo.Context) error {
	return c.JSON(http.StatusOK, trackedVehicles)
}

// Analytics returns the fleet-wide operational summary.
//
// @Summary      Fleet analytics (authority only)
// @Tags         authority
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]string
// @Router       /api/authority/analytics [get]
func (h *AuthorityHandler) Analytics(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"total_active_buses":   25,
		"total_passengers":     150,
		"emergency_alerts":     2,
		"route_delays":         3,
		"buses_in_maintenance": 3,
		"average_delay_time":   "5 mins",
	})
}

// Monitor returns the incident and feedback dashboard.
//
// @Summary      Incident monitor (authority only)
// @Tags         authority
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]string
// @Router       /api/monitor [get]
func (h *AuthorityHandler) Monitor(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ratings_count": map[string]int{"5": 45, "4": 23, "3": 12, "2": 5, "1": 2},
		"breakdowns": []map[string]any{
			{"issue": "Engine", "count": 2, "severity": "High"},
			{"issue": "Flat Tire", "count": 1, "severity": "Medium"},
			{"issue": "AC Problem", "count": 3, "severity": "Low"},
		},
		"sos_logs": []map[string]any{
			{"driver": "driver1", "active": 0, "last_triggered": "Never"},
			{"passenger": "passenger1", "active": 1, "last_triggered": "10:45 AM"},
		},
	})
}
