package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-portal/internal/types"
)

func TestCreateCompany_PlaceholderFields(t *testing.T) {
	s := newTestStore(t)

	company, err := s.CreateCompany(context.Background(), "Initech")
	require.NoError(t, err)

	assert.NotEmpty(t, company.ID)
	assert.Equal(t, "Initech", company.Name)
	assert.Equal(t, NewCompanyDescription, company.Description)
	assert.Equal(t, "Unknown", company.Industry)

	got, ok := s.GetCompany(company.ID)
	require.True(t, ok)
	assert.Equal(t, company, got)
}

func TestCreateCompany_SameNameYieldsDistinctRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateCompany(ctx, "Initech")
	require.NoError(t, err)
	second, err := s.CreateCompany(ctx, "Initech")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, s.GetCompanies(), 7, "both records are stored; names are never deduplicated")
}

func TestUpdateCompany_RenameIsNotRetroactive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	company, ok := s.GetCompany("c1")
	require.True(t, ok)

	company.Name = "Alphabet"
	_, err := s.UpdateCompany(ctx, company)
	require.NoError(t, err)

	got, ok := s.GetCompany("c1")
	require.True(t, ok)
	assert.Equal(t, "Alphabet", got.Name)

	exp, ok := s.GetExperienceByID("e1")
	require.True(t, ok)
	assert.Equal(t, "Google", exp.CompanyName, "experiences keep the name snapshotted at submission")
}

func TestUpdateCompany_UnknownIDIsNotStored(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateCompany(context.Background(), types.Company{ID: "c99", Name: "Ghost Corp"})
	require.NoError(t, err)

	assert.Len(t, s.GetCompanies(), 5)
	_, ok := s.GetCompany("c99")
	assert.False(t, ok)
}
