package models

import "time"

// Verdict is the overall rating a scanned product receives.
type Verdict string

const (
	VerdictGood    Verdict = "good"
	VerdictCaution Verdict = "caution"
	VerdictAvoid   Verdict = "avoid"
)

// ScanRecord is one entry in the session-scoped scan history. ScannedAt is
// assigned by the log at insertion, never by the caller.
type ScanRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Image     string    `json:"image"`
	Score     int       `json:"score"`
	Verdict   Verdict   `json:"verdict"`
	ScannedAt time.Time `json:"scannedAt"`
}

// Product is a catalog item the scan and search flows resolve against.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
	Score       int      `json:"score"`
	Verdict     Verdict  `json:"verdict"`
	Ingredients []string `json:"ingredients,omitempty"`
	Tag         string   `json:"tag,omitempty"`
}

// ScanRecord converts a catalog product into the history entry shape.
// The timestamp is left zero; the scan log stamps it on append.
func (p Product) ScanRecord() ScanRecord {
	return ScanRecord{
		ID:      p.ID,
		Name:    p.Name,
		Brand:   p.Brand,
		Image:   p.Image,
		Score:   p.Score,
		Verdict: p.Verdict,
	}
}
