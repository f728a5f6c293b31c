package usecase

import (
	"github.com/mkale/transitmate/services/reports"
)

// ReportsUC manages the append-only field report log
type ReportsUC struct {
	reportsRepo reports.ReportsRepo
	reportsGW   reports.ReportsGW
}

// NewReportsUC creates a new reports usecase instance
func NewReportsUC(reportsRepo reports.ReportsRepo, reportsGW reports.ReportsGW) *ReportsUC {
	return &ReportsUC{
		reportsRepo: reportsRepo,
		reportsGW:   reportsGW,
	}
}
