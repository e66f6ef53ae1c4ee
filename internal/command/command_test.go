package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Command
	}{
		{"plant corn a1", Command{Kind: Plant, Plant: "corn", Coord: "a1"}},
		{"  PLANT  Tomato   C3 ", Command{Kind: Plant, Plant: "tomato", Coord: "c3"}},
		{"plant carrot z9", Command{Kind: Plant, Plant: "carrot", Coord: "z9"}},
		{"check", Command{Kind: Check}},
		{"Submit", Command{Kind: Check}},
		{"rules", Command{Kind: Rules}},
		{"help", Command{Kind: Help}},
		{"clear", Command{Kind: Clear}},
		{"undo", Command{Kind: Undo}},
		{"restart", Command{Kind: Restart}},
		{"hint", Command{Kind: Hint}},
		{"rain", Command{Kind: Rain}},
		{"theme", Command{Kind: Theme}},
		{"exit", Command{Kind: Quit}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "dig a1", "check now"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnknownCommand, in)
	}
	for _, in := range []string{"plant", "plant corn", "plant corn a1 b2"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUsage, in)
	}
}
