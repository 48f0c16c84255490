package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("CARDSHELF_TEST_DIR", "/tmp/cards")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain path untouched", in: "/etc/cardshelf.yaml", want: "/etc/cardshelf.yaml"},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/exports/cards.json", want: filepath.Join(home, "exports/cards.json")},
		{name: "env var", in: "$CARDSHELF_TEST_DIR/out.csv", want: "/tmp/cards/out.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
