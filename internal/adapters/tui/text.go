package tui

import (
	"fmt"
	"strings"

	"svw.info/verdant/internal/usecase"
)

var welcome = []string{
	"welcome to verdant",
	"",
	"=== How to Play ===",
	"1. The game board is a 3x3 grid (A1-C3).",
	"2. You must plant different types of plants on the grid.",
	"3. Each round has rules about which plants must or must not be touching (including diagonally).",
	"4. You have a limited number of seeds to plant each round.",
	"5. After planting, type \"check\" to see if you followed the rules.",
	"6. If you succeed, you move to the next round. If you fail, you start over.",
	"7. Every plant named in the rules must be planted at least once.",
	"",
	"Type \"help\" for a list of commands.",
	"",
}

func helpText(s *usecase.Session) []string {
	return []string{
		"Available commands:",
		"- plant <type> <coordinate> (e.g. \"plant potato a1\")",
		"- check (verify your garden)",
		"- rules (repeat the rules)",
		"- undo (take back the last planting)",
		"- restart (replant this round with the same rules)",
		"- hint (suggest a planting)",
		"- rain / theme (toggle the rain effect / light and dark)",
		"- clear (clear the terminal)",
		"- help (show this message)",
		"You can only plant plants involved in the current round's rules.",
		"Allowed plants: " + allowed(s),
		"Coordinates: A1-C3",
	}
}

func roundBanner(s *usecase.Session) []string {
	out := []string{
		fmt.Sprintf("=== Round %d ===", s.Round()),
		fmt.Sprintf("You have %d seeds to plant.", s.Seeds()),
		"Rules:",
	}
	return append(out, ruleLines(s)...)
}

func ruleLines(s *usecase.Session) []string {
	rules := s.Rules()
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.String()
	}
	return out
}

func allowed(s *usecase.Session) string {
	req := s.Required()
	names := make([]string, len(req))
	for i, p := range req {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
