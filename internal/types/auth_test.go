package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{
			name:    "valid email",
			request: LoginRequest{Email: "student@iitg.ac.in"},
			wantErr: false,
		},
		{
			name:    "missing email",
			request: LoginRequest{},
			wantErr: true,
		},
		{
			name:    "invalid email format",
			request: LoginRequest{Email: "not-an-email"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompleteProfileRequest_Validate(t *testing.T) {
	valid := CompleteProfileRequest{
		Email:  "student@iitg.ac.in",
		Name:   "Asha Verma",
		Branch: BranchCSE,
		Year:   2026,
	}

	tests := []struct {
		name    string
		mutate  func(r *CompleteProfileRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(_ *CompleteProfileRequest) {},
			wantErr: false,
		},
		{
			name:    "valid with optional fields",
			mutate:  func(r *CompleteProfileRequest) { r.LinkedIn = "linkedin.com/in/asha"; r.Phone = "9876543210" },
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(r *CompleteProfileRequest) { r.Name = "" },
			wantErr: true,
		},
		{
			name:    "invalid email",
			mutate:  func(r *CompleteProfileRequest) { r.Email = "nope" },
			wantErr: true,
		},
		{
			name:    "year too early",
			mutate:  func(r *CompleteProfileRequest) { r.Year = 1999 },
			wantErr: true,
		},
		{
			name:    "year too late",
			mutate:  func(r *CompleteProfileRequest) { r.Year = 2101 },
			wantErr: true,
		},
		{
			name:    "missing branch",
			mutate:  func(r *CompleteProfileRequest) { r.Branch = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompleteProfileRequest_UnknownBranch(t *testing.T) {
	req := CompleteProfileRequest{
		Email:  "student@iitg.ac.in",
		Name:   "Asha Verma",
		Branch: Branch("Astrology"),
		Year:   2026,
	}

	err := req.Validate()
	require.Error(t, err)

	var branchErr *InvalidBranchError
	require.ErrorAs(t, err, &branchErr)
	assert.Equal(t, Branch("Astrology"), branchErr.Branch)
}
