package autoplay

import (
	"fmt"

	"github.com/tatianab/school-days/internal/minigame"
)

var wordProblems = minigame.WordProblems()

// Solve answers a math quiz question read back from the screen.
func Solve(q string) (int, bool) {
	var a, b, c int
	switch {
	case scan(q, "What is %d + %d?", &a, &b):
		return a + b, true
	case scan(q, "What is %d - %d?", &a, &b):
		return a - b, true
	case scan(q, "What is %d × %d?", &a, &b):
		return a * b, true
	case scan(q, "Solve for x: %dx + %d = %d", &a, &b, &c):
		if a == 0 {
			return 0, false
		}
		return (c - b) / a, true
	case scan(q, "If x = %d, what is %dx + %d?", &c, &a, &b):
		return a*c + b, true
	}
	n, ok := wordProblems[q]
	return n, ok
}

func scan(q, format string, args ...any) bool {
	n, err := fmt.Sscanf(q, format, args...)
	return err == nil && n == len(args)
}
