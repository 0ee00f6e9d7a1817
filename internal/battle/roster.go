package battle

import (
	"context"
	"sync"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
)

// Roster is the transient set of enemies the admin stages before starting
// a battle. It lives in process memory only; a restart empties it.
type Roster struct {
	mu      sync.Mutex
	byID    map[string]*entities.Enemy
	ordered []string
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{byID: make(map[string]*entities.Enemy)}
}

// Add stages an enemy. Returns false when the enemy was already staged;
// adding twice never duplicates.
func (r *Roster) Add(e *entities.Enemy) bool {
	if e == nil || e.ID == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; ok {
		return false
	}
	r.byID[e.ID] = e
	r.ordered = append(r.ordered, e.ID)
	return true
}

// Remove unstages an enemy. Returns false when it was not staged.
func (r *Roster) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, existing := range r.ordered {
		if existing == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return true
}

// Clear unstages everything
func (r *Roster) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]*entities.Enemy)
	r.ordered = nil
}

// IsEmpty reports whether nothing is staged
func (r *Roster) IsEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ordered) == 0
}

// Enemies returns the staged enemies in the order they were added
func (r *Roster) Enemies() []*entities.Enemy {
	r.mu.Lock()
	defer r.mu.Unlock()

	enemies := make([]*entities.Enemy, 0, len(r.ordered))
	for _, id := range r.ordered {
		enemies = append(enemies, r.byID[id])
	}
	return enemies
}

// StartBattle broadcasts the staged selection over the channel and clears
// the roster. An empty roster is a precondition failure, not an empty
// broadcast.
func (r *Roster) StartBattle(ctx context.Context, ch *Channel) error {
	enemies := r.Enemies()
	if len(enemies) == 0 {
		return errors.FailedPrecondition("no enemies staged for battle")
	}

	if err := ch.Publish(ctx, &BattleEvent{Message: StartMessage, Enemies: enemies}); err != nil {
		return errors.Wrap(err, "failed to broadcast battle start")
	}

	r.Clear()
	return nil
}
