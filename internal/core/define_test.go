package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sailfish-platforms/internal/types"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		raw      string
		kind     types.DirectiveKind
		name     string
		value    string
		hasValue bool
	}{
		{"CORE_XY", types.DirectiveAdd, "CORE_XY", "", false},
		{"PLATFORM_EXTRUDERS=1", types.DirectiveAdd, "PLATFORM_EXTRUDERS", "1", true},
		{"PLATFORM_X_OFFSET_STEPS=0L", types.DirectiveAdd, "PLATFORM_X_OFFSET_STEPS", "0L", true},
		{"PLATFORM_VREF_DEFAULTS={127, 127, 127, 127, 127}", types.DirectiveAdd, "PLATFORM_VREF_DEFAULTS", "{127, 127, 127, 127, 127}", true},
		{`PLATFORM_SPLASH1_MSG=\"SF-Replicator1\"`, types.DirectiveAdd, "PLATFORM_SPLASH1_MSG", `\"SF-Replicator1\"`, true},
		{"EMPTY=", types.DirectiveAdd, "EMPTY", "", true},
		{"A=b=c", types.DirectiveAdd, "A", "b=c", true},
		{"__DELAY_BACKWARD_COMPATIBLE__", types.DirectiveAdd, "__DELAY_BACKWARD_COMPATIBLE__", "", false},
		{"-HAS_RGB_LED", types.DirectiveRemove, "HAS_RGB_LED", "", false},
		{"-PLATFORM_EXTRUDERS=2", types.DirectiveRemove, "PLATFORM_EXTRUDERS", "", false},
	}

	for _, tt := range tests {
		directive, err := ParseDirective(tt.raw, 3)
		require.NoError(t, err, tt.raw)
		if diff := cmp.Diff(tt.kind, directive.Kind); diff != "" {
			t.Fatalf("unexpected kind for %s (-want +got):\n%s", tt.raw, diff)
		}
		if diff := cmp.Diff(tt.name, directive.Name); diff != "" {
			t.Fatalf("unexpected name for %s (-want +got):\n%s", tt.raw, diff)
		}
		if diff := cmp.Diff(tt.value, directive.Value); diff != "" {
			t.Fatalf("unexpected value for %s (-want +got):\n%s", tt.raw, diff)
		}
		assert.Equal(t, tt.hasValue, directive.HasValue, tt.raw)
		assert.Equal(t, 3, directive.Position)
		assert.Equal(t, tt.raw, directive.Raw)
	}
}

func TestParseDirectiveRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{name: "empty", raw: "", reason: "empty directive"},
		{name: "blank", raw: "   ", reason: "empty directive"},
		{name: "bare dash", raw: "-", reason: "missing symbol name"},
		{name: "value without name", raw: "=1", reason: "missing symbol name"},
		{name: "removal without name", raw: "-=1", reason: "missing symbol name"},
		{name: "double equals", raw: "A==1", reason: "unexpected '='"},
		{name: "leading digit", raw: "1ABC", reason: "not a valid identifier"},
		{name: "embedded space", raw: "CORE XY", reason: "not a valid identifier"},
		{name: "double dash", raw: "--A", reason: "not a valid identifier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirective(tt.raw, 7)
			require.Error(t, err)
			var invalid *InvalidDefineError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.raw, invalid.Directive)
			assert.Equal(t, 7, invalid.Position)
			assert.Contains(t, invalid.Reason, tt.reason)
		})
	}
}

func TestComposeDefines(t *testing.T) {
	tests := []struct {
		name       string
		directives []string
		want       []types.Define
	}{
		{
			name:       "add then remove",
			directives: []string{"A", "-A"},
			want:       []types.Define{},
		},
		{
			name:       "remove then add",
			directives: []string{"-A", "A"},
			want:       []types.Define{{Name: "A"}},
		},
		{
			name:       "last write wins",
			directives: []string{"A=1", "A=2"},
			want:       []types.Define{{Name: "A", Value: "2", HasValue: true}},
		},
		{
			name:       "redefinition keeps slot",
			directives: []string{"A=1", "B", "A=2"},
			want: []types.Define{
				{Name: "A", Value: "2", HasValue: true},
				{Name: "B"},
			},
		},
		{
			name:       "re-added symbol moves to end",
			directives: []string{"A", "B", "C", "-A", "A=3"},
			want: []types.Define{
				{Name: "B"},
				{Name: "C"},
				{Name: "A", Value: "3", HasValue: true},
			},
		},
		{
			name:       "removal ignores value",
			directives: []string{"PLATFORM_EXTRUDERS=2", "-PLATFORM_EXTRUDERS=1"},
			want:       []types.Define{},
		},
		{
			name:       "removing absent symbol is a no-op",
			directives: []string{"A", "-B"},
			want:       []types.Define{{Name: "A"}},
		},
		{
			name:       "bare redefinition clears value",
			directives: []string{"A=1", "A"},
			want:       []types.Define{{Name: "A"}},
		},
		{
			name:       "removal in the middle keeps later slots addressable",
			directives: []string{"A", "B", "C", "-B", "C=1", "D"},
			want: []types.Define{
				{Name: "A"},
				{Name: "C", Value: "1", HasValue: true},
				{Name: "D"},
			},
		},
		{
			name:       "empty list",
			directives: nil,
			want:       []types.Define{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComposeDefines(tt.directives)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected defines (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposeDefinesFailsWholeComposition(t *testing.T) {
	_, err := ComposeDefines([]string{"A", "B", "=oops", "C"})
	require.Error(t, err)
	var invalid *InvalidDefineError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 2, invalid.Position)
	assert.Equal(t, "=oops", invalid.Directive)
	assert.Contains(t, err.Error(), `"=oops" at position 2`)
}

func TestComposeDefinesPreservesQuotedValues(t *testing.T) {
	raw := `PLATFORM_THE_REPLICATOR_STR=\"Replicator 1\"`
	got, err := ComposeDefines([]string{raw})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, `\"Replicator 1\"`, got[0].Value)
	assert.Equal(t, raw, got[0].String())
	assert.Equal(t, "-D"+raw, got[0].Flag())
}
