// ABOUTME: Data lock state machine protecting historical records.
// ABOUTME: Lock date only moves forward while locked; unlock drops it all.
package datalock

import (
	"errors"
	"fmt"

	"github.com/harperreed/vitals/internal/models"
)

// ErrDateLocked marks a rejected write to a protected date. Import paths
// count these instead of aborting, so a bulk import can report how many
// records it skipped.
var ErrDateLocked = errors.New("date is protected by data lock")

// State is the persisted lock configuration.
type State struct {
	Enabled  bool        `json:"enabled" yaml:"enabled"`
	LockDate models.Date `json:"lock_date,omitzero" yaml:"lock_date,omitempty"`
}

// Guard enforces the lock contract over a State. The guard only defines
// the predicate; callers writing records concurrently must serialize the
// IsProtected check and the write per user themselves.
type Guard struct {
	state State
}

// NewGuard creates a guard from persisted state. A nil state means
// unlocked.
func NewGuard(state *State) *Guard {
	g := &Guard{}
	if state != nil {
		g.state = *state
	}
	return g
}

// State returns a copy of the current lock state.
func (g *Guard) State() State {
	return g.state
}

// Locked reports whether the lock is active.
func (g *Guard) Locked() bool {
	return g.state.Enabled
}

// LockDate returns the active lock date; meaningful only while locked.
func (g *Guard) LockDate() models.Date {
	return g.state.LockDate
}

// SetLock activates the lock at date, or extends an active lock forward.
// While locked, a date at or before the current lock date is rejected:
// the lock only ever moves forward.
func (g *Guard) SetLock(date models.Date) error {
	if date.IsZero() {
		return fmt.Errorf("lock date must be set")
	}
	if g.state.Enabled && !date.After(g.state.LockDate) {
		return fmt.Errorf("lock date %s must be after current lock date %s", date, g.state.LockDate)
	}
	g.state.Enabled = true
	g.state.LockDate = date
	return nil
}

// Unlock deactivates the lock and drops all protection.
func (g *Guard) Unlock() {
	g.state = State{}
}

// IsProtected reports whether a record dated on or before the lock date
// may not be modified.
func (g *Guard) IsProtected(date models.Date) bool {
	return g.state.Enabled && !date.After(g.state.LockDate)
}

// ProtectedCount derives the number of protected records from the given
// record set. It is recomputed on every call, never stored.
func (g *Guard) ProtectedCount(records []*models.DailyRecord) int {
	if !g.state.Enabled {
		return 0
	}
	n := 0
	for _, r := range records {
		if r != nil && g.IsProtected(r.Date) {
			n++
		}
	}
	return n
}
