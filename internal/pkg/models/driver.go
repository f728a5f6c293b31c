package models

import "time"

// DriverAccount represents a provisioned driver keyed by normalized driver ID
type DriverAccount struct {
	DriverID      string    `json:"driverId"`
	PasswordHash  string    `json:"passwordHash"`
	Name          string    `json:"name,omitempty"`
	VehicleNumber string    `json:"vehicleNumber,omitempty"`
	RouteID       string    `json:"routeId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DriverProfile is a driver account without credentials, safe to return to
// callers
type DriverProfile struct {
	DriverID      string `json:"driverId"`
	Name          string `json:"name,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	RouteID       string `json:"routeId,omitempty"`
}

// DriverSession represents a signed-in driver, same single-current-session
// rule as RiderSession in a separate storage namespace
type DriverSession struct {
	SessionID     string `json:"sessionId"`
	DriverID      string `json:"driverId"`
	Name          string `json:"name,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	RouteID       string `json:"routeId,omitempty"`
	Token         string `json:"token,omitempty"`
	ExpiresAt     int64  `json:"expiresAt,omitempty"`
}

// DriverSignInRequest is the driver sign-in payload
type DriverSignInRequest struct {
	DriverID string `json:"driverId"`
	Password string `json:"password"`
}

// RegisterDriverRequest is the administrative driver provisioning payload
type RegisterDriverRequest struct {
	DriverID      string `json:"driverId"`
	Password      string `json:"password"`
	Name          string `json:"name,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	RouteID       string `json:"routeId,omitempty"`
}
