package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	flags := NewParsedFlags([]string{"--full-path", "-h"})

	require.True(t, flags.Has("--full-path"))
	require.True(t, flags.Has("-h"))
	require.False(t, flags.Has("--name-only"))
}

func TestParsedFlags_String(t *testing.T) {
	flags := NewParsedFlags([]string{"--roots=/a,/b", "--full-path"})

	require.Equal(t, "/a,/b", flags.String("--roots", ""))
	require.Equal(t, "fallback", flags.String("--missing", "fallback"))
	// Boolean flags carry no value
	require.Equal(t, "", flags.String("--full-path", ""))
}

func TestParsedFlags_Int(t *testing.T) {
	flags := NewParsedFlags([]string{"--min-score=40", "--bad=abc"})

	require.Equal(t, 40, flags.Int("--min-score", 1))
	require.Equal(t, 1, flags.Int("--bad", 1))
	require.Equal(t, 7, flags.Int("--missing", 7))
}

func TestParsedFlags_List(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "multiple values",
			raw:  []string{"--roots=/a,/b,/c"},
			want: []string{"/a", "/b", "/c"},
		},
		{
			name: "drops empty segments",
			raw:  []string{"--roots=/a,,/b,"},
			want: []string{"/a", "/b"},
		},
		{
			name: "trims whitespace",
			raw:  []string{"--roots=/a, /b"},
			want: []string{"/a", "/b"},
		},
		{
			name: "absent flag",
			raw:  []string{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewParsedFlags(tt.raw)
			require.Equal(t, tt.want, flags.List("--roots"))
		})
	}
}
