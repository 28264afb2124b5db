package game

import "time"

// Scoring and progression tuning. Centralized so the session logic stays free
// of magic numbers.
const (
	// SoftDropPoints is awarded per player-initiated single-row descent.
	SoftDropPoints = 1
	// HardDropPoints is awarded per row descended during a hard drop.
	HardDropPoints = 2

	// LinesPerLevel is how many cumulative cleared lines advance the level.
	LinesPerLevel = 10

	// BaseDropInterval is the auto-drop cadence at level 1.
	BaseDropInterval = 800 * time.Millisecond
	// DropSpeedup is how much faster each level above 1 drops.
	DropSpeedup = 50 * time.Millisecond
	// MinDropInterval is the cadence floor regardless of level.
	MinDropInterval = 100 * time.Millisecond
)

// linePoints[n] is the base score for clearing n rows with a single lock.
// A single piece can clear at most four rows.
var linePoints = [5]int{0, 100, 300, 500, 800}

// LineClearPoints returns the score awarded for clearing n rows at the given
// level. n is clamped to 4.
func LineClearPoints(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n > 4 {
		n = 4
	}
	return linePoints[n] * level
}

// LevelForLines derives the level from cumulative cleared lines.
func LevelForLines(lines int) int {
	return 1 + lines/LinesPerLevel
}

// DropIntervalForLevel derives the auto-drop interval from the level, floored
// at MinDropInterval.
func DropIntervalForLevel(level int) time.Duration {
	d := BaseDropInterval - time.Duration(level-1)*DropSpeedup
	if d < MinDropInterval {
		d = MinDropInterval
	}
	return d
}
