package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-tournament/internal/rng"
)

func TestRandomName(t *testing.T) {
	a := assert.New(t)

	n1 := RandomName(rng.NewSeeded(0))
	n2 := RandomName(rng.NewSeeded(0))
	a.Equal(n1, n2)
	a.Len(strings.Split(n1, " "), 2)
}

func TestRandomNames(t *testing.T) {
	a := assert.New(t)

	names := RandomNames(rng.NewSeeded(7), 10)
	a.Len(names, 10)

	seen := make(map[string]bool)
	for _, name := range names {
		a.False(seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}
