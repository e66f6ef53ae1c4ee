package tui

import (
	"strings"
	"time"
)

const (
	rainInterval = 120 * time.Millisecond
	rainRows     = 3
)

type rainTickMsg struct{}

// rain is the cosmetic shower shown while a won round hands over to the next.
type rain struct {
	active bool
	frame  int
}

// render draws rainRows lines of falling drops; the pattern shifts down each frame.
func (r rain) render(width int) []string {
	if width <= 0 {
		return nil
	}
	out := make([]string, rainRows)
	for row := 0; row < rainRows; row++ {
		phase := ((row-r.frame)%11 + 11) % 11
		var sb strings.Builder
		for col := 0; col < width; col++ {
			if (col*7+phase*3)%11 == 0 {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		out[row] = sb.String()
	}
	return out
}
