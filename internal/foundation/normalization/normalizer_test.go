package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode string

const (
	modeFast mode = "fast"
	modeSafe mode = "safe-mode"
)

func TestNormalizerLookup(t *testing.T) {
	n := New(map[string]mode{"fast": modeFast, "safe-mode": modeSafe})

	tests := []struct {
		name  string
		input string
		want  mode
		ok    bool
	}{
		{"exact match", "fast", modeFast, true},
		{"case insensitive", "FAST", modeFast, true},
		{"surrounding space", "  safe-mode ", modeSafe, true},
		{"underscore spelling", "Safe_Mode", modeSafe, true},
		{"unknown", "slow", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Lookup(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizerParse(t *testing.T) {
	n := New(map[string]mode{"fast": modeFast, "safe-mode": modeSafe})

	got, err := n.Parse("Fast")
	require.NoError(t, err)
	assert.Equal(t, modeFast, got)

	_, err = n.Parse("slow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[fast safe-mode]")
}
