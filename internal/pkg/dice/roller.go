// Package dice provides the die roller seam for attack resolution. The real
// implementation delegates to rpg-toolkit; tests pin the rolled value.
package dice

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/tavernkeep/companion-api/internal/errors"
)

// Roller produces a uniform integer in [1, sides]
type Roller interface {
	Roll(sides int) (int32, error)
}

// ToolkitRoller rolls through rpg-toolkit's dice package
type ToolkitRoller struct{}

// NewToolkitRoller returns the production roller
func NewToolkitRoller() *ToolkitRoller {
	return &ToolkitRoller{}
}

// Roll rolls a single die with the given number of sides
func (r *ToolkitRoller) Roll(sides int) (int32, error) {
	if sides < 1 {
		return 0, errors.InvalidArgumentf("die must have at least one side, got %d", sides)
	}

	roll, err := dice.NewRoll(1, sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", sides)
	}

	return int32(roll.GetValue()), nil
}

// FixedRoller always returns the configured values in order, then repeats
// the last one. Tests use it to make attack resolution deterministic.
type FixedRoller struct {
	Values []int32
	next   int
}

// NewFixedRoller returns a roller pinned to the given values
func NewFixedRoller(values ...int32) *FixedRoller {
	return &FixedRoller{Values: values}
}

// Roll returns the next pinned value
func (r *FixedRoller) Roll(sides int) (int32, error) {
	if len(r.Values) == 0 {
		return 1, nil
	}
	v := r.Values[r.next]
	if r.next < len(r.Values)-1 {
		r.next++
	}
	return v, nil
}
