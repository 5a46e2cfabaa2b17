package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnquoteDefineValue(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{`\"SF-Replicator1\"`, "SF-Replicator1"},
		{`"Replicator 2"`, "Replicator 2"},
		{"127", "127"},
		{`\"`, `\"`},
		{`""`, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UnquoteDefineValue(tt.value), tt.value)
	}
}

func TestDisplayWidthCountsRunes(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("Größe"))
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "a b c", JoinIDs([]string{"a", "b", "c"}))
	assert.Equal(t, "", JoinIDs(nil))
}
