package usecase

import (
	"sync"

	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/services/driver"
)

// DriverUC holds the driver identity state: the persisted account table
// behind the repository plus the in-memory session table, one session per
// driver ID
type DriverUC struct {
	driverRepo driver.DriverRepo
	cfg        *models.Config

	mu       sync.RWMutex
	sessions map[string]*models.DriverSession // keyed by driver ID
}

// NewDriverUC creates a new driver identity usecase instance
func NewDriverUC(driverRepo driver.DriverRepo, cfg *models.Config) *DriverUC {
	return &DriverUC{
		driverRepo: driverRepo,
		cfg:        cfg,
		sessions:   make(map[string]*models.DriverSession),
	}
}

func (u *DriverUC) sessionFor(driverID string) *models.DriverSession {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.sessions[driverID]
}

func (u *DriverUC) putSession(session *models.DriverSession) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sessions[session.DriverID] = session
}

func (u *DriverUC) dropSessions() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sessions = make(map[string]*models.DriverSession)
}
