package core

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"sailfish-platforms/internal/types"
)

func TestProfileValidatorCases(t *testing.T) {
	validator := NewProfileValidator()

	tests := []struct {
		name    string
		id      string
		build   func() types.PlatformProfile
		wantErr string
	}{
		{
			name:  "valid profile",
			id:    "mighty_one",
			build: validProfile,
		},
		{
			name:    "empty id",
			id:      " ",
			build:   validProfile,
			wantErr: "platform id must not be empty",
		},
		{
			name:    "whitespace in id",
			id:      "mighty one",
			build:   validProfile,
			wantErr: "must not contain whitespace",
		},
		{
			name: "missing mcu",
			id:   "x",
			build: func() types.PlatformProfile {
				profile := validProfile()
				profile.MCU = ""
				return profile
			},
			wantErr: "platform x missing mcu",
		},
		{
			name: "missing programmer",
			id:   "x",
			build: func() types.PlatformProfile {
				profile := validProfile()
				profile.Programmer = "  "
				return profile
			},
			wantErr: "platform x missing programmer",
		},
		{
			name: "missing board directory",
			id:   "x",
			build: func() types.PlatformProfile {
				profile := validProfile()
				profile.BoardDirectory = ""
				return profile
			},
			wantErr: "platform x missing board_directory",
		},
		{
			name: "empty defines entry",
			id:   "x",
			build: func() types.PlatformProfile {
				profile := validProfile()
				profile.Defines = []string{"A", ""}
				return profile
			},
			wantErr: "empty defines entry at position 1",
		},
		{
			name: "empty squeeze entry",
			id:   "x",
			build: func() types.PlatformProfile {
				profile := validProfile()
				profile.Squeeze = []string{""}
				return profile
			},
			wantErr: "empty squeeze entry at position 0",
		},
		{
			name: "malformed define syntax is left to resolution",
			id:   "x",
			build: func() types.PlatformProfile {
				profile := validProfile()
				profile.Defines = []string{"=oops"}
				return profile
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateProfile(context.Background(), tt.id, tt.build())
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
			if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected code (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProfileValidatorValidateAllReportsFirstSortedFailure(t *testing.T) {
	validator := NewProfileValidator()
	broken := validProfile()
	broken.MCU = ""
	profiles := map[string]types.PlatformProfile{
		"zeta":  broken,
		"alpha": broken,
		"beta":  validProfile(),
	}
	id, err := validator.ValidateAll(context.Background(), profiles)
	require.Error(t, err)
	require.Equal(t, "alpha", id)

	id, err = validator.ValidateAll(context.Background(), map[string]types.PlatformProfile{"beta": validProfile()})
	require.NoError(t, err)
	require.Empty(t, id)
}

func validProfile() types.PlatformProfile {
	return types.PlatformProfile{
		MCU:            "atmega2560",
		Programmer:     "stk500v2",
		BoardDirectory: "mighty_one",
		Defines:        []string{"BUILD_STATS"},
	}
}
