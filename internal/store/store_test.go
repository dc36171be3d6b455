package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-portal/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_SeedsFreshStore(t *testing.T) {
	s := newTestStore(t)

	companies := s.GetCompanies()
	require.Len(t, companies, 5)
	assert.Equal(t, "Google", companies[0].Name)
	assert.Equal(t, "Flipkart", companies[4].Name)

	exps := s.GetExperiences("")
	require.Len(t, exps, 2)
	assert.Equal(t, "e1", exps[0].ID)
	assert.Equal(t, 12, exps[0].Upvotes)

	_, ok := s.GetUser("senior.dev@iitg.ac.in")
	assert.True(t, ok)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)

	exp := types.NewExperience(types.ExperienceDraft{
		UserID:           "u1",
		CompanyID:        "c3",
		CompanyName:      "Uber",
		Role:             "Backend Engineer",
		Year:             2025,
		Shortlisted:      true,
		OADetails:        &types.OARound{Topics: []string{"Heaps"}, CodingQuestions: []string{"Merge k lists"}, Difficulty: types.DifficultyMedium},
		Summary:          "Fast-paced process.",
		DifficultyRating: 3,
	})
	stored, err := s.AddExperience(ctx, exp)
	require.NoError(t, err)

	company, err := s.CreateCompany(ctx, "Initech")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.GetExperienceByID(stored.ID)
	require.True(t, ok)
	assert.Equal(t, stored, got, "experience must round-trip the snapshot unchanged")

	gotCompany, ok := reopened.GetCompany(company.ID)
	require.True(t, ok)
	assert.Equal(t, company, gotCompany)
}

func TestStore_ReopenDoesNotReseed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.CreateCompany(ctx, "Initech")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Len(t, reopened.GetCompanies(), 6, "persisted snapshot wins over seed data")
}

func countSnapshots(t *testing.T, path string) int {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count))
	return count
}

func TestSave_MaterializesSeedSnapshots(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.db")

	// Opening a fresh store only loads seed data into memory; nothing is
	// written until a mutation or an explicit Save.
	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.Equal(t, 0, countSnapshots(t, path))

	s, err = Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx))
	require.NoError(t, s.Close())
	assert.Equal(t, 3, countSnapshots(t, path), "Save writes all three collection snapshots")

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Len(t, reopened.GetCompanies(), 5)
	assert.Len(t, reopened.GetExperiences(""), 2)
}

func TestStore_InMemory(t *testing.T) {
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()

	assert.Len(t, s.GetCompanies(), 5)
}
