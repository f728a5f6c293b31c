package models

// DelayStatus describes how late a route is running
type DelayStatus string

const (
	DelayOnTime         DelayStatus = "on-time"
	DelayDelayed        DelayStatus = "delayed"
	DelayHeavilyDelayed DelayStatus = "heavily-delayed"
)

// VehicleStatus describes the reported condition of a vehicle
type VehicleStatus string

const (
	VehicleOnTime    VehicleStatus = "on-time"
	VehicleDelayed   VehicleStatus = "delayed"
	VehicleBreakdown VehicleStatus = "breakdown"
)

// CrowdLevel describes how full a vehicle is
type CrowdLevel string

const (
	CrowdLow         CrowdLevel = "low"
	CrowdMedium      CrowdLevel = "medium"
	CrowdHigh        CrowdLevel = "high"
	CrowdOvercrowded CrowdLevel = "overcrowded"
)

// FieldReport is an immutable driver-submitted observation of a route.
// DelayStatus is derived from VehicleStatus whenever the latter is present;
// the two must never disagree.
type FieldReport struct {
	ID            string        `json:"id"`
	RouteID       string        `json:"routeId"`
	RouteName     string        `json:"routeName"`
	DelayStatus   DelayStatus   `json:"delayStatus"`
	CrowdLevel    CrowdLevel    `json:"crowdLevel"`
	Timestamp     int64         `json:"timestamp"` // milliseconds since epoch
	DriverID      string        `json:"driverId,omitempty"`
	VehicleNumber string        `json:"vehicleNumber,omitempty"`
	VehicleStatus VehicleStatus `json:"vehicleStatus,omitempty"`
	DelayReason   string        `json:"delayReason,omitempty"`
}

// DelayStatusFor maps a vehicle status to its delay status
func DelayStatusFor(vs VehicleStatus) DelayStatus {
	switch vs {
	case VehicleDelayed:
		return DelayDelayed
	case VehicleBreakdown:
		return DelayHeavilyDelayed
	default:
		return DelayOnTime
	}
}

// ValidDelayStatus reports whether s is a known delay status
func ValidDelayStatus(s DelayStatus) bool {
	switch s {
	case DelayOnTime, DelayDelayed, DelayHeavilyDelayed:
		return true
	}
	return false
}

// ValidVehicleStatus reports whether s is a known vehicle status
func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleOnTime, VehicleDelayed, VehicleBreakdown:
		return true
	}
	return false
}

// ValidCrowdLevel reports whether l is a known crowd level
func ValidCrowdLevel(l CrowdLevel) bool {
	switch l {
	case CrowdLow, CrowdMedium, CrowdHigh, CrowdOvercrowded:
		return true
	}
	return false
}

// LegacyReportRequest is the payload for reports without vehicle fields
type LegacyReportRequest struct {
	RouteID     string      `json:"routeId"`
	RouteName   string      `json:"routeName"`
	DelayStatus DelayStatus `json:"delayStatus"`
	CrowdLevel  CrowdLevel  `json:"crowdLevel"`
	DriverID    string      `json:"driverId,omitempty"`
}

// StatusUpdateRequest is the payload for vehicle status updates
type StatusUpdateRequest struct {
	RouteID       string        `json:"routeId"`
	RouteName     string        `json:"routeName"`
	VehicleNumber string        `json:"vehicleNumber"`
	VehicleStatus VehicleStatus `json:"vehicleStatus"`
	CrowdLevel    CrowdLevel    `json:"crowdLevel"`
	DriverID      string        `json:"driverId"`
	DelayReason   string        `json:"delayReason,omitempty"`
}
