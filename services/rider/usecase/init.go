package usecase

import (
	"sync"

	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/services/rider"
)

// RiderUC holds the rider identity state: the persisted account table behind
// the repository, plus the in-memory session table. Only the session most
// recently written to the store survives a restart.
type RiderUC struct {
	riderRepo  rider.RiderRepo
	identityGW rider.IdentityGW
	cfg        *models.Config

	mu       sync.RWMutex
	sessions map[string]*models.RiderSession // keyed by session ID
}

// NewRiderUC creates a new rider identity usecase instance
func NewRiderUC(riderRepo rider.RiderRepo, identityGW rider.IdentityGW, cfg *models.Config) *RiderUC {
	return &RiderUC{
		riderRepo:  riderRepo,
		identityGW: identityGW,
		cfg:        cfg,
		sessions:   make(map[string]*models.RiderSession),
	}
}

func (u *RiderUC) putSession(session *models.RiderSession) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sessions[session.SessionID] = session
}

func (u *RiderUC) sessionByEmail(email string) *models.RiderSession {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, s := range u.sessions {
		if s.Email == email {
			return s
		}
	}
	return nil
}

func (u *RiderUC) dropSessions() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sessions = make(map[string]*models.RiderSession)
}
