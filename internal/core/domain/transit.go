package domain

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bus is a vehicle position as shown to passengers.
type Bus struct {
	ID          string  `json:"id"`
	Route       string  `json:"route"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	ETA         string  `json:"eta"`
	Destination string  `json:"destination"`
}

// Alert is a service disruption notice on the passenger feed.
type Alert struct {
	Message string `json:"message"`
	Time    string `json:"time"`
	Type    string `json:"type"`
}

// Stop is a scheduled stop on a driver's assigned route.
type Stop struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	ETA  string  `json:"eta"`
}

// RouteBus is a nearby vehicle shown on the driver's route view.
type RouteBus struct {
	ID     string  `json:"id"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Status string  `json:"status"`
}

// RouteInfo is the driver's view of their assigned route.
type RouteInfo struct {
	CurrentRoute string     `json:"current_route"`
	RouteName    string     `json:"route_name"`
	Stops        []Stop     `json:"stops"`
	OtherBuses   []RouteBus `json:"other_buses"`
}

// Vehicle is a tracked unit on the authority's fleet map.
type Vehicle struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Location Coordinates `json:"location"`
	Status   string      `json:"status"`
	Route    string      `json:"route"`
}

// ChatMessage is a single message on a per-route chat channel.
type ChatMessage struct {
	User    string `json:"user"`
	Message string `json:"msg"`
	Time    string `json:"time"`
}
