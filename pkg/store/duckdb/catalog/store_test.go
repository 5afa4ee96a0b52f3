package catalog

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/clearpath-aba/clearpath/pkg/models/store"
	"github.com/clearpath-aba/clearpath/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func TestCatalogStore_RoundTrip(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	clients := []store.ClientRecord{
		{ID: "client-ben", Name: "Ben Osei", LeadBCBA: "Priya Nair"},
		{ID: "client-ava", Name: "Ava Thompson", LeadBCBA: "Dana Rios"},
	}
	programs := []store.ProgramRecord{
		{
			ID:           "prog-mands",
			ClientID:     "client-ava",
			Name:         "Mands",
			Domain:       "Communication",
			Status:       "Active",
			CurrentPhase: "Acquisition",
			TierLevel:    "Tier 1",
			BCBAOwner:    "Dana Rios",
			PromptLevel:  "Independent",
			TargetSkills: []string{"requesting", "labeling"},
			Notes:        "Expand to novel items",
			MasteryRate:  82.5,
			Position:     0,
		},
		{
			ID:          "prog-matching",
			ClientID:    "client-ben",
			Name:        "Matching",
			Domain:      "Academic",
			MasteryRate: 64,
			Position:    1,
		},
	}
	sessions := []store.SessionRecord{
		{
			ProgramID: "prog-mands",
			Seq:       0,
			Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Correct:   3,
			Incorrect: 1,
			Therapist: "Jordan",
			Location:  "Clinic",
		},
		{
			ProgramID: "prog-mands",
			Seq:       1,
			Date:      time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			Correct:   4,
			Therapist: "Jordan",
			Location:  "Clinic",
		},
	}

	require.NoError(t, f.store.AddClients(ctx, clients))
	require.NoError(t, f.store.AddPrograms(ctx, programs))
	require.NoError(t, f.store.AddSessions(ctx, sessions))

	t.Run("clients ordered by name", func(t *testing.T) {
		got, err := f.store.GetClients(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "client-ava", got[0].ID)
		assert.Equal(t, "Priya Nair", got[1].LeadBCBA)
	})

	t.Run("programs ordered by position", func(t *testing.T) {
		got, err := f.store.GetPrograms(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "prog-mands", got[0].ID)
		assert.Equal(t, []string{"requesting", "labeling"}, got[0].TargetSkills)
		assert.InDelta(t, 82.5, got[0].MasteryRate, 1e-9)
		assert.Equal(t, "prog-matching", got[1].ID)
	})

	t.Run("sessions ordered by seq", func(t *testing.T) {
		got, err := f.store.GetSessions(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Seq)
		assert.Equal(t, 3, got[0].Correct)
		assert.Equal(t, 1, got[0].Incorrect)
		assert.True(t, got[1].Date.After(got[0].Date))
	})
}

func TestCatalogStore_TransactionalWrite(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	tx, err := f.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := duckdb.WithTransaction(ctx, tx)
	require.NoError(t, f.store.AddClients(txCtx, []store.ClientRecord{
		{ID: "client-1", Name: "Ava", LeadBCBA: "Dana"},
	}))
	require.NoError(t, tx.Rollback())

	got, err := f.store.GetClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogStore_EmptyBatchesAreNoops(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.store.AddClients(ctx, nil))
	assert.NoError(t, f.store.AddPrograms(ctx, nil))
	assert.NoError(t, f.store.AddSessions(ctx, nil))
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
