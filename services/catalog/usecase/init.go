package usecase

import (
	"github.com/mkale/transitmate/services/catalog"
	"github.com/mkale/transitmate/services/reports"
)

// CatalogUC serves the static route catalog, composes live route status from
// the report log and issues tickets
type CatalogUC struct {
	ticketRepo catalog.TicketRepo
	reportsUC  reports.ReportsUC
}

// NewCatalogUC creates a new catalog usecase instance
func NewCatalogUC(ticketRepo catalog.TicketRepo, reportsUC reports.ReportsUC) *CatalogUC {
	return &CatalogUC{
		ticketRepo: ticketRepo,
		reportsUC:  reportsUC,
	}
}
