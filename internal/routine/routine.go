// Package routine tracks the daily skincare routine: morning and evening
// step lists, a 3-step or 5-step level, and weekly commitment progress.
// State is in-memory and lives for the session, like the scan history.
package routine

import (
	"sync"

	"github.com/glowlab/skinflow/internal/common"
)

// Level selects how many steps each routine slot carries.
type Level string

const (
	Level3 Level = "3-step"
	Level5 Level = "5-step"
)

// DefaultCommitmentDays is the weekly completion target a new tracker
// starts with.
const DefaultCommitmentDays = 5

// Step is one routine entry; Product is the product assigned to it, if any.
type Step struct {
	ID        string
	Name      string
	Product   string
	Completed bool
}

func baseMorning() []Step {
	return []Step{
		{ID: "1", Name: "Cleanser", Product: "Gentle Foam Cleanser", Completed: true},
		{ID: "2", Name: "Serum", Product: "Vitamin C Serum", Completed: true},
		{ID: "3", Name: "Moisturizer", Product: "Daily Hydrating Cream"},
	}
}

func baseEvening() []Step {
	return []Step{
		{ID: "4", Name: "Cleanser", Product: "Gentle Foam Cleanser"},
		{ID: "5", Name: "Toner", Product: "Balancing Toner"},
		{ID: "6", Name: "Moisturizer", Product: "Night Repair Cream"},
	}
}

// Tracker holds the routine state for the current session.
type Tracker struct {
	mu             sync.Mutex
	level          Level
	morning        []Step
	evening        []Step
	commitmentDays int
	completedDays  int
}

func New() *Tracker {
	return &Tracker{
		level:          Level3,
		morning:        baseMorning(),
		evening:        baseEvening(),
		commitmentDays: DefaultCommitmentDays,
		completedDays:  4,
	}
}

// Level returns the active routine level.
func (t *Tracker) Level() Level {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.level
}

// SetLevel switches between the 3-step and 5-step routines. Moving up adds
// the extended steps; moving down trims each slot back to its first three.
func (t *Tracker) SetLevel(level Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if level == t.level {
		return
	}
	t.level = level

	if level == Level5 {
		t.morning = append(t.morning,
			Step{ID: "m4", Name: "Essence"},
			Step{ID: "m5", Name: "Sunscreen"},
		)
		t.evening = append(t.evening,
			Step{ID: "e4", Name: "Treatment"},
			Step{ID: "e5", Name: "Eye Cream"},
		)
		return
	}
	t.morning = t.morning[:3]
	t.evening = t.evening[:3]
}

// Toggle flips the completion state of the step with the given id, in
// either slot. Unknown ids fail with common.ErrNotFound.
func (t *Tracker) Toggle(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, steps := range [][]Step{t.morning, t.evening} {
		for i := range steps {
			if steps[i].ID == id {
				steps[i].Completed = !steps[i].Completed
				return nil
			}
		}
	}
	return common.ErrNotFound
}

// Morning returns a copy of the morning steps.
func (t *Tracker) Morning() []Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Step(nil), t.morning...)
}

// Evening returns a copy of the evening steps.
func (t *Tracker) Evening() []Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Step(nil), t.evening...)
}

// Progress reports per-slot completion percentages for today.
func (t *Tracker) Progress() (morning, evening int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return percent(t.morning), percent(t.evening)
}

// Weekly reports completed days against the commitment target.
func (t *Tracker) Weekly() (completed, target int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completedDays, t.commitmentDays
}

// SetCommitment changes the weekly target. Values below 1 are ignored.
func (t *Tracker) SetCommitment(days int) {
	if days < 1 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.commitmentDays = days
}

func percent(steps []Step) int {
	if len(steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range steps {
		if s.Completed {
			done++
		}
	}
	return done * 100 / len(steps)
}
