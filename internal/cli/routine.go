package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/routine"
)

// ShowRoutine prints today's morning and evening steps with completion
// marks, plus the weekly commitment progress.
func (a *App) ShowRoutine(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Routine (%s)", a.routine.Level()))

	printlnFn("Morning:")
	printSteps(a.routine.Morning())
	printlnFn("Evening:")
	printSteps(a.routine.Evening())

	m, e := a.routine.Progress()
	printlnFn(fmt.Sprintf("Today: morning %d%%, evening %d%%", m, e))

	completed, target := a.routine.Weekly()
	printlnFn(fmt.Sprintf("This week: %d of %d days", completed, target))
	return nil
}

func printSteps(steps []routine.Step) {
	for _, s := range steps {
		mark := " "
		if s.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] %s. %s", mark, s.ID, s.Name)
		if s.Product != "" {
			line += " (" + s.Product + ")"
		}
		printlnFn(line)
	}
}

// ToggleStep prompts for a step id and flips its completion state.
func (a *App) ToggleStep(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Step id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.routine.Toggle(id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Unknown step:", id)
			return nil
		}
		return err
	}
	printlnFn("Done.")
	return nil
}

// SetRoutineLevel switches between the 3-step and 5-step routines.
func (a *App) SetRoutineLevel(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Routine level (3 or 5)", os.Stdout)
	if err != nil {
		return err
	}

	switch answer {
	case "3":
		a.routine.SetLevel(routine.Level3)
	case "5":
		a.routine.SetLevel(routine.Level5)
	default:
		printlnFn("Enter 3 or 5.")
		return nil
	}
	printlnFn("Routine level set to", answer, "steps.")
	return nil
}
