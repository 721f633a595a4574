package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/glowlab/skinflow/internal/catalog"
	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/models"
)

// Scan resolves the barcode scan against the catalog, records it in the
// history and prints the verdict.
func (a *App) Scan(ctx context.Context) error {
	return a.record(ctx, a.catalog.Scan())
}

// Search prompts for a query, resolves it against the catalog and records
// the match in the history.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Product name or brand", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.catalog.Search(query)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No product found for:", query)
			return nil
		}
		return err
	}
	return a.record(ctx, p)
}

func (a *App) record(ctx context.Context, p models.Product) error {
	if err := a.history.Append(p.ScanRecord()); err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			printlnFn("Log in to scan products.")
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("%s by %s: score %d/100, verdict %s", p.Name, p.Brand, p.Score, p.Verdict))

	if profile := a.sessions.Current(); profile != nil {
		if flags := catalog.FlagAllergies(p, profile.Allergies); flags > 0 {
			printlnFn(fmt.Sprintf("Warning: %d ingredients match your allergies.", flags))
		}
	}
	return nil
}

// History lists the scanned products, newest first.
func (a *App) History(ctx context.Context) error {
	records := a.history.All()
	if len(records) == 0 {
		printlnFn("No scans yet.")
		return nil
	}

	for _, r := range records {
		printlnFn(fmt.Sprintf("%s  %s by %s  %d/100 (%s)",
			r.ScannedAt.Format("2006-01-02 15:04"), r.Name, r.Brand, r.Score, r.Verdict))
	}
	return nil
}

// ClearHistory empties the scan history.
func (a *App) ClearHistory(ctx context.Context) error {
	a.history.Clear()
	printlnFn("Scan history cleared.")
	return nil
}
