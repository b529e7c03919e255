package minigame

// tier is one row of a scoring table: a score at or above min earns points.
type tier struct {
	min     float64
	points  int
	message string
	good    bool
}

// award returns the first tier whose threshold pct meets. Tables are
// ordered from best to worst and end with a catch-all row.
func award(pct float64, tiers []tier) tier {
	for _, t := range tiers {
		if pct >= t.min {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

var mathTiers = []tier{
	{100, 20, "Perfect score! You're a math wizard!", true},
	{80, 15, "Excellent work! Great math skills!", true},
	{60, 10, "Good job! Keep practicing!", false},
	{40, 5, "Not bad! Math takes practice.", false},
	{0, 3, "Keep studying! You'll improve!", false},
}

var scienceTiers = []tier{
	{100, 20, "Perfect score! You're a science genius!", true},
	{80, 15, "Excellent! You really know your science!", true},
	{60, 10, "Good job! Keep learning!", false},
	{40, 5, "Not bad! Science is fascinating!", false},
	{0, 3, "Keep studying! Science is everywhere!", false},
}

var grammarTiers = []tier{
	{100, 20, "Perfect score! You're a grammar expert!", true},
	{66, 15, "Great job! You know your grammar!", true},
	{33, 10, "Good effort! Keep studying!", false},
	{0, 5, "Keep practicing! Grammar takes time to master.", false},
}

// typingScore grades a typing run on both accuracy and speed.
func typingScore(accuracy float64, wpm int) tier {
	switch {
	case accuracy >= 95 && wpm >= 40:
		return tier{points: 20, message: "Outstanding! You're a typing master!", good: true}
	case accuracy >= 90 && wpm >= 30:
		return tier{points: 15, message: "Excellent work! Very impressive!", good: true}
	case accuracy >= 80 && wpm >= 20:
		return tier{points: 10, message: "Good job! Keep practicing!"}
	case accuracy >= 70:
		return tier{points: 5, message: "Not bad! You'll improve with practice."}
	}
	return tier{points: 3, message: "Keep practicing! Accuracy is important."}
}

// wordPuzzlePoints rewards solving in fewer attempts, never below 10.
func wordPuzzlePoints(attempt int) int {
	return max(10, 25-attempt*3)
}

const wordPuzzleConsolation = 5
