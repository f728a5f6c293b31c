package gateway

import (
	natspkg "github.com/mkale/transitmate/internal/pkg/nats"
)

// SubjectReportCreated carries every accepted field report as JSON
const SubjectReportCreated = "transitmate.reports.created"

// ReportsGW publishes report events over NATS. A nil NATS client disables
// publishing.
type ReportsGW struct {
	natsClient *natspkg.Client
}

// NewReportsGW creates a new reports gateway
func NewReportsGW(natsClient *natspkg.Client) *ReportsGW {
	return &ReportsGW{natsClient: natsClient}
}
