package models

import "time"

// TransportMode is a kind of public transport offered in the app
type TransportMode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// RouteOption is a pre-computed trip option between the city endpoints
type RouteOption struct {
	ID       string   `json:"id"`
	Modes    []string `json:"modes"`
	Duration string   `json:"duration"`
	// Fare in INR
	Fare     int    `json:"fare"`
	EcoScore int    `json:"ecoScore"`
	Label    string `json:"label"`
}

// RouteStatus composes a route's latest reported condition for display
type RouteStatus struct {
	RouteID       string        `json:"routeId"`
	RouteName     string        `json:"routeName,omitempty"`
	DelayStatus   DelayStatus   `json:"delayStatus,omitempty"`
	CrowdLevel    CrowdLevel    `json:"crowdLevel,omitempty"`
	VehicleStatus VehicleStatus `json:"vehicleStatus,omitempty"`
	DelayReason   string        `json:"delayReason,omitempty"`
	ReportedAt    int64         `json:"reportedAt,omitempty"`
}

// Ticket is a simulated checkout result. No payment is processed; the ticket
// is confirmed as soon as it is issued.
type Ticket struct {
	TicketID      string    `json:"ticketId"`
	Email         string    `json:"email"`
	RouteOptionID string    `json:"routeOptionId"`
	Passengers    int       `json:"passengers"`
	Fare          int       `json:"fare"`
	Status        string    `json:"status"`
	IssuedAt      time.Time `json:"issuedAt"`
}

// CheckoutRequest is the ticket purchase payload
type CheckoutRequest struct {
	RouteOptionID string `json:"routeOptionId"`
	Passengers    int    `json:"passengers"`
}
