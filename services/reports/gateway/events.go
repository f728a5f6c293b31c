package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/mkale/transitmate/internal/pkg/models"
)

// PublishReportCreated broadcasts a newly accepted report. No-op when
// messaging is not configured.
func (g *ReportsGW) PublishReportCreated(report *models.FieldReport) error {
	if g.natsClient == nil {
		return nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report event: %w", err)
	}
	if err := g.natsClient.Publish(SubjectReportCreated, data); err != nil {
		return fmt.Errorf("failed to publish report event: %w", err)
	}
	return nil
}
