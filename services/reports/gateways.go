package reports

import (
	"github.com/mkale/transitmate/internal/pkg/models"
)

// ReportsGW publishes report lifecycle events for downstream consumers
type ReportsGW interface {
	PublishReportCreated(report *models.FieldReport) error
}
