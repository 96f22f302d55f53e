package services

import (
	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
)

// Read surfaces affected by command execution.
const (
	SurfaceDashboard = "dashboard"
	SurfaceInventory = "inventory"
	SurfaceSales     = "sales"
	SurfaceProducts  = "products"
)

// Invalidator receives best-effort notifications that a user's read surfaces
// are stale. It is a side-effect hook, not a correctness requirement.
type Invalidator interface {
	Invalidate(userID uuid.UUID, surfaces ...string)
}

type logInvalidator struct {
	log *logger.Logger
}

// NewLogInvalidator returns an Invalidator that only records the event.
func NewLogInvalidator(log *logger.Logger) Invalidator {
	return &logInvalidator{log: log.With("service", "Invalidator")}
}

func (i *logInvalidator) Invalidate(userID uuid.UUID, surfaces ...string) {
	i.log.Debug("Invalidating read surfaces", "user_id", userID.String(), "surfaces", surfaces)
}
