package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_Defaults(t *testing.T) {
	a := NewAccount("a@b.com", "pw", "A")

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "a@b.com", a.Email)
	assert.Equal(t, "pw", a.PasswordSecret)
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, OnboardingNotStarted, a.OnboardingStatus)
	assert.Equal(t, 0, a.XP)
	assert.Equal(t, 0, a.Streak)
	assert.Equal(t, DefaultTitle, a.Title)
}

func TestNewAccount_UniqueIDs(t *testing.T) {
	a := NewAccount("a@b.com", "pw", "A")
	b := NewAccount("b@c.com", "pw", "B")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAccount_Profile_StripsCredential(t *testing.T) {
	a := NewAccount("a@b.com", "secret", "A")
	a.Goals = []string{"Hydration"}

	p := a.Profile()

	assert.Equal(t, a.ID, p.ID)
	assert.Equal(t, a.Email, p.Email)
	assert.Equal(t, a.Goals, p.Goals)

	// The projection type has no credential field at all; the best we can
	// assert here is that the source is untouched.
	assert.Equal(t, "secret", a.PasswordSecret)
}

func TestProfileUpdate_ApplyToProfile_PreservesUntouchedFields(t *testing.T) {
	p := Profile{ID: "1", Email: "a@b.com", Name: "A", XP: 10, Streak: 3}

	u := ProfileUpdate{XP: IntPtr(50)}
	u.ApplyToProfile(&p)

	assert.Equal(t, 50, p.XP)
	assert.Equal(t, 3, p.Streak)
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, "a@b.com", p.Email)
}

func TestProfileUpdate_ApplyToProfile_SlicesReplaceWholesale(t *testing.T) {
	p := Profile{Goals: []string{"Hydration", "Anti-aging"}}

	u := ProfileUpdate{Goals: []string{"Brightening"}}
	u.ApplyToProfile(&p)

	assert.Equal(t, []string{"Brightening"}, p.Goals)

	// Non-nil empty slice clears; nil leaves alone.
	u2 := ProfileUpdate{Goals: []string{}}
	u2.ApplyToProfile(&p)
	assert.Empty(t, p.Goals)
	assert.NotNil(t, p.Goals)

	u3 := ProfileUpdate{Name: StringPtr("B")}
	u3.ApplyToProfile(&p)
	assert.NotNil(t, p.Goals)
}

func TestProfileUpdate_ApplyToAccount_NeverTouchesCredential(t *testing.T) {
	a := NewAccount("a@b.com", "pw", "A")

	u := ProfileUpdate{
		Name:             StringPtr("B"),
		OnboardingStatus: OnboardingPtr(OnboardingComplete),
		SkinType:         StringPtr("oily"),
		Allergies:        []Allergy{{Ingredient: "fragrance", Severity: SeverityHigh}},
	}
	u.ApplyToAccount(&a)

	require.Equal(t, "B", a.Name)
	require.Equal(t, OnboardingComplete, a.OnboardingStatus)
	require.Equal(t, "oily", a.SkinType)
	require.Len(t, a.Allergies, 1)
	assert.Equal(t, "pw", a.PasswordSecret)
	assert.Equal(t, "a@b.com", a.Email)
}

func TestProduct_ScanRecord_LeavesTimestampZero(t *testing.T) {
	p := Product{ID: "1", Name: "Hydrating Face Serum", Brand: "GlowLab", Score: 92, Verdict: VerdictGood}

	rec := p.ScanRecord()

	assert.Equal(t, p.ID, rec.ID)
	assert.Equal(t, p.Name, rec.Name)
	assert.Equal(t, p.Verdict, rec.Verdict)
	assert.True(t, rec.ScannedAt.IsZero())
}
