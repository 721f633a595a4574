package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/glowlab/skinflow/internal/catalog"
	"github.com/glowlab/skinflow/internal/models"
)

// ShowProfile prints the current session profile.
func (a *App) ShowProfile(ctx context.Context) error {
	p := a.sessions.Current()
	if p == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s>", p.Name, p.Email))
	printlnFn(fmt.Sprintf("Title: %s  XP: %d  Streak: %d days", p.Title, p.XP, p.Streak))
	if p.SkinType != "" {
		printlnFn("Skin type:", p.SkinType)
	}
	if p.SkinTone != "" {
		printlnFn("Skin tone:", p.SkinTone)
	}
	if len(p.Goals) > 0 {
		printlnFn("Goals:", strings.Join(p.Goals, ", "))
	}
	for _, al := range p.Allergies {
		printlnFn(fmt.Sprintf("Allergy: %s (%s)", al.Ingredient, al.Severity))
	}
	return nil
}

// EditProfile prompts for name, skin type and skin tone. Empty answers keep
// the current values; only the changed fields go into the update.
func (a *App) EditProfile(ctx context.Context) error {
	p := a.sessions.Current()
	if p == nil {
		printlnFn("Not logged in.")
		return nil
	}

	var update models.ProfileUpdate

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s] (enter to keep)", p.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		update.Name = &name
	}

	skinType, err := getSimpleText(a.reader, fmt.Sprintf("Skin type [%s] (enter to keep)", p.SkinType), os.Stdout)
	if err != nil {
		return err
	}
	if skinType != "" {
		update.SkinType = &skinType
	}

	skinTone, err := getSimpleText(a.reader, fmt.Sprintf("Skin tone [%s] (enter to keep)", p.SkinTone), os.Stdout)
	if err != nil {
		return err
	}
	if skinTone != "" {
		update.SkinTone = &skinTone
	}

	if err := a.sessions.UpdateProfile(ctx, update); err != nil {
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

// EditGoals lists the goal catalog and replaces the profile's goals with the
// numbers the user picks. An empty answer clears them.
func (a *App) EditGoals(ctx context.Context) error {
	if a.sessions.Current() == nil {
		printlnFn("Not logged in.")
		return nil
	}

	for i, g := range catalog.AvailableGoals {
		printlnFn(fmt.Sprintf("%d. %s", i+1, g))
	}

	answer, err := getSimpleText(a.reader, "Pick goals by number, comma-separated", os.Stdout)
	if err != nil {
		return err
	}

	goals := []string{}
	for _, tok := range strings.Split(answer, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > len(catalog.AvailableGoals) {
			printlnFn("Skipping unknown goal:", tok)
			continue
		}
		goals = append(goals, catalog.AvailableGoals[n-1])
	}

	if err := a.sessions.UpdateProfile(ctx, models.ProfileUpdate{Goals: goals}); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Saved %d goals.", len(goals)))
	return nil
}
