// Package check compares roll totals against a difficulty.
package check

// MeetsDifficulty returns true if total >= difficulty.
// This is the most common difficulty check in tabletop RPGs.
func MeetsDifficulty(total, difficulty int64) bool {
	return total >= difficulty
}

// Margin calculates the margin of success or failure.
// Positive values indicate success, negative indicate failure.
func Margin(total, difficulty int64) int64 {
	return total - difficulty
}

// Result represents the outcome of a difficulty check.
type Result struct {
	Difficulty int64
	Success    bool
	Margin     int64
}

// Check performs a difficulty check and returns the result.
func Check(total, difficulty int64) Result {
	return Result{
		Difficulty: difficulty,
		Success:    MeetsDifficulty(total, difficulty),
		Margin:     Margin(total, difficulty),
	}
}
