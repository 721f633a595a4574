// Package models defines the account, profile and scan types shared by the
// registry, session store and scan history.
package models

import "github.com/google/uuid"

// DefaultTitle is the display title every new account starts with.
const DefaultTitle = "Glow Seeker"

// OnboardingStatus tracks how far a user got through onboarding.
type OnboardingStatus string

const (
	OnboardingNotStarted OnboardingStatus = "not_started"
	OnboardingInProgress OnboardingStatus = "in_progress"
	OnboardingComplete   OnboardingStatus = "complete"
)

// Severity grades how strongly an ingredient affects the user.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Allergy is one tracked ingredient sensitivity. The registry does not
// dedupe ingredients; the list is kept in the order the user entered it.
type Allergy struct {
	Ingredient string   `json:"ingredient"`
	Severity   Severity `json:"severity"`
}

// Account is the full durable record owned by the registry, credentials
// included. Only the registry ever sees PasswordSecret; everything else in
// the application works with the redacted Profile projection.
type Account struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	PasswordSecret   string           `json:"password"`
	Name             string           `json:"name"`
	OnboardingStatus OnboardingStatus `json:"onboardingStatus"`
	SkinType         string           `json:"skinType,omitempty"`
	SkinTone         string           `json:"skinTone,omitempty"`
	Goals            []string         `json:"goals,omitempty"`
	Allergies        []Allergy        `json:"allergies,omitempty"`
	ShoppingPrefs    []string         `json:"shoppingPrefs,omitempty"`
	XP               int              `json:"xp"`
	Streak           int              `json:"streak"`
	Title            string           `json:"title"`
}

// NewAccount builds an account with a fresh opaque ID and the standard
// starting values: onboarding not started, zero XP and streak, default title.
func NewAccount(email, passwordSecret, name string) Account {
	return Account{
		ID:               uuid.NewString(),
		Email:            email,
		PasswordSecret:   passwordSecret,
		Name:             name,
		OnboardingStatus: OnboardingNotStarted,
		XP:               0,
		Streak:           0,
		Title:            DefaultTitle,
	}
}

// Profile returns the account with the credential field stripped. This is
// the only shape the session store persists or hands out.
func (a Account) Profile() Profile {
	return Profile{
		ID:               a.ID,
		Email:            a.Email,
		Name:             a.Name,
		OnboardingStatus: a.OnboardingStatus,
		SkinType:         a.SkinType,
		SkinTone:         a.SkinTone,
		Goals:            a.Goals,
		Allergies:        a.Allergies,
		ShoppingPrefs:    a.ShoppingPrefs,
		XP:               a.XP,
		Streak:           a.Streak,
		Title:            a.Title,
	}
}

// Profile is the credential-stripped projection of an Account.
type Profile struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	Name             string           `json:"name"`
	OnboardingStatus OnboardingStatus `json:"onboardingStatus"`
	SkinType         string           `json:"skinType,omitempty"`
	SkinTone         string           `json:"skinTone,omitempty"`
	Goals            []string         `json:"goals,omitempty"`
	Allergies        []Allergy        `json:"allergies,omitempty"`
	ShoppingPrefs    []string         `json:"shoppingPrefs,omitempty"`
	XP               int              `json:"xp"`
	Streak           int              `json:"streak"`
	Title            string           `json:"title"`
}

// ProfileUpdate is a partial update. Nil pointer/slice fields mean "leave
// unchanged"; set fields win wholesale (shallow, last-write-wins per field).
// ID and Email are identity fields and cannot be changed through an update.
type ProfileUpdate struct {
	Name             *string           `json:"name,omitempty"`
	OnboardingStatus *OnboardingStatus `json:"onboardingStatus,omitempty"`
	SkinType         *string           `json:"skinType,omitempty"`
	SkinTone         *string           `json:"skinTone,omitempty"`
	Goals            []string          `json:"goals,omitempty"`
	Allergies        []Allergy         `json:"allergies,omitempty"`
	ShoppingPrefs    []string          `json:"shoppingPrefs,omitempty"`
	XP               *int              `json:"xp,omitempty"`
	Streak           *int              `json:"streak,omitempty"`
	Title            *string           `json:"title,omitempty"`
}

// ApplyToProfile merges the update into p.
func (u ProfileUpdate) ApplyToProfile(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.OnboardingStatus != nil {
		p.OnboardingStatus = *u.OnboardingStatus
	}
	if u.SkinType != nil {
		p.SkinType = *u.SkinType
	}
	if u.SkinTone != nil {
		p.SkinTone = *u.SkinTone
	}
	if u.Goals != nil {
		p.Goals = u.Goals
	}
	if u.Allergies != nil {
		p.Allergies = u.Allergies
	}
	if u.ShoppingPrefs != nil {
		p.ShoppingPrefs = u.ShoppingPrefs
	}
	if u.XP != nil {
		p.XP = *u.XP
	}
	if u.Streak != nil {
		p.Streak = *u.Streak
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
}

// ApplyToAccount merges the update into a. The credential field is never
// part of an update and stays untouched.
func (u ProfileUpdate) ApplyToAccount(a *Account) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.OnboardingStatus != nil {
		a.OnboardingStatus = *u.OnboardingStatus
	}
	if u.SkinType != nil {
		a.SkinType = *u.SkinType
	}
	if u.SkinTone != nil {
		a.SkinTone = *u.SkinTone
	}
	if u.Goals != nil {
		a.Goals = u.Goals
	}
	if u.Allergies != nil {
		a.Allergies = u.Allergies
	}
	if u.ShoppingPrefs != nil {
		a.ShoppingPrefs = u.ShoppingPrefs
	}
	if u.XP != nil {
		a.XP = *u.XP
	}
	if u.Streak != nil {
		a.Streak = *u.Streak
	}
	if u.Title != nil {
		a.Title = *u.Title
	}
}

// Helpers for building updates without intermediate variables.

func StringPtr(s string) *string { return &s }

func IntPtr(n int) *int { return &n }

func OnboardingPtr(s OnboardingStatus) *OnboardingStatus { return &s }
