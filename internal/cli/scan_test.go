package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/skinflow/internal/catalog"
	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/models"
)

type fakeHistorySvc struct {
	records   []models.ScanRecord
	appendErr error
}

func (f *fakeHistorySvc) Append(rec models.ScanRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.records = append([]models.ScanRecord{rec}, f.records...)
	return nil
}
func (f *fakeHistorySvc) All() []models.ScanRecord { return f.records }
func (f *fakeHistorySvc) Clear()                   { f.records = nil }

func newTestApp(sessions *fakeSessions, history *fakeHistorySvc) *App {
	return &App{
		sessions: sessions,
		history:  history,
		catalog:  catalog.New(),
	}
}

func TestScan_RecordsTheBarcodeResult(t *testing.T) {
	defer stubPrintln(t)()

	history := &fakeHistorySvc{}
	a := newTestApp(&fakeSessions{current: &models.Profile{Email: "a@b.c"}}, history)

	require.NoError(t, a.Scan(context.Background()))

	require.Len(t, history.records, 1)
	assert.Equal(t, "Hydrating Face Serum", history.records[0].Name)
}

func TestScan_NotLoggedInReportedNotReturned(t *testing.T) {
	defer stubPrintln(t)()

	history := &fakeHistorySvc{appendErr: common.ErrNoActiveSession}
	a := newTestApp(&fakeSessions{}, history)

	require.NoError(t, a.Scan(context.Background()))
	assert.Empty(t, history.records)
}

func TestSearch_MissLeavesHistoryUntouched(t *testing.T) {
	defer stubPrintln(t)()
	defer stubInputs(t, []string{"does not exist"}, nil)()

	history := &fakeHistorySvc{}
	a := newTestApp(&fakeSessions{current: &models.Profile{}}, history)

	require.NoError(t, a.Search(context.Background()))
	assert.Empty(t, history.records)
}

func TestSearch_HitIsRecorded(t *testing.T) {
	defer stubPrintln(t)()
	defer stubInputs(t, []string{"vitamin c"}, nil)()

	history := &fakeHistorySvc{}
	a := newTestApp(&fakeSessions{current: &models.Profile{}}, history)

	require.NoError(t, a.Search(context.Background()))

	require.Len(t, history.records, 1)
	assert.Equal(t, "Vitamin C Serum", history.records[0].Name)
}

func TestEditProfile_OnlyChangedFieldsInUpdate(t *testing.T) {
	defer stubPrintln(t)()
	defer stubInputs(t, []string{"New Name", "", ""}, nil)()

	sessions := &fakeSessions{current: &models.Profile{Name: "Old", SkinType: "dry"}}
	a := newTestApp(sessions, &fakeHistorySvc{})

	require.NoError(t, a.EditProfile(context.Background()))

	require.Len(t, sessions.updates, 1)
	u := sessions.updates[0]
	require.NotNil(t, u.Name)
	assert.Equal(t, "New Name", *u.Name)
	assert.Nil(t, u.SkinType, "untouched answers stay out of the update")
	assert.Nil(t, u.SkinTone)
}

func TestEditGoals_MapsNumbersAndSkipsUnknown(t *testing.T) {
	defer stubPrintln(t)()
	defer stubInputs(t, []string{"1, 3, 99"}, nil)()

	sessions := &fakeSessions{current: &models.Profile{}}
	a := newTestApp(sessions, &fakeHistorySvc{})

	require.NoError(t, a.EditGoals(context.Background()))

	require.Len(t, sessions.updates, 1)
	assert.Equal(t, []string{"Hydration", "Brightening"}, sessions.updates[0].Goals)
}
