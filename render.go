package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
)

var (
	tileHit     = color.New(color.BgGreen, color.FgBlack)
	tilePresent = color.New(color.BgYellow, color.FgBlack)
	tileMiss    = color.New(color.BgHiBlack, color.FgWhite)
	emphasis    = color.New(color.Bold)
)

// renderTiles draws a guess as colored tiles according to its feedback.
func renderTiles(guess string, fb feedback.Feedback) string {
	var b strings.Builder
	for i := 0; i < feedback.WordLen; i++ {
		cell := " " + strings.ToUpper(string(guess[i])) + " "
		switch fb[i] {
		case feedback.MarkHit:
			b.WriteString(tileHit.Sprint(cell))
		case feedback.MarkPresent:
			b.WriteString(tilePresent.Sprint(cell))
		default:
			b.WriteString(tileMiss.Sprint(cell))
		}
	}
	return b.String()
}
