package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glowlab/skinflow/internal/billing"
	"github.com/glowlab/skinflow/internal/common"
)

// Dashboard prints the home summary for the current session.
func (a *App) Dashboard(ctx context.Context) error {
	s, err := a.dash.Build()
	if err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			printlnFn("Log in to see your dashboard.")
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("%s, %s!", s.Greeting, s.Name))
	printlnFn(fmt.Sprintf("%s | %d XP | %d-day streak", s.Title, s.XP, s.Streak))
	if len(s.Badges) > 0 {
		printlnFn("Badges:", strings.Join(s.Badges, ", "))
	}

	if s.RecentScan != nil {
		printlnFn(fmt.Sprintf("Last scan: %s (%d/100, %s)",
			s.RecentScan.Name, s.RecentScan.Score, s.RecentScan.Verdict))
		if s.AllergyFlags > 0 {
			printlnFn(fmt.Sprintf("  %d of its ingredients match your allergies.", s.AllergyFlags))
		}
	}

	if len(s.Recommendations) > 0 {
		printlnFn("Recommended for you:")
		for _, p := range s.Recommendations {
			printlnFn(fmt.Sprintf("  %s by %s (%d/100)", p.Name, p.Brand, p.Score))
		}
	}

	printlnFn(s.Tip)
	return nil
}

// Billing prints the subscription plans, saved cards and invoice history.
func (a *App) Billing(ctx context.Context) error {
	printlnFn("Plans:")
	for _, p := range billing.Plans() {
		marker := " "
		if p.ID == billing.CurrentPlanID {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s $%.2f/%s", marker, p.Name, p.Price, p.Interval))
		for _, f := range p.Features {
			printlnFn("    -", f)
		}
	}

	printlnFn("Payment methods:")
	for _, m := range billing.PaymentMethods() {
		line := fmt.Sprintf("  %s ending %s, expires %02d/%d", m.Brand, m.Last4, m.ExpiryMonth, m.ExpiryYear)
		if m.Default {
			line += " (default)"
		}
		printlnFn(line)
	}

	printlnFn("Billing history:")
	for _, inv := range billing.History() {
		printlnFn(fmt.Sprintf("  %s  %s  $%.2f  %s  %s", inv.ID, inv.Date, inv.Amount, inv.Status, inv.Description))
	}
	return nil
}
