package generator

// Maze size policy. Interior sizes stay odd so carve nodes line up with cell centers.
const (
	BaseSize = 5
	MaxSize  = 25

	levelsPerGrowth = 3
	growthStep      = 2

	baseLoops      = 5
	levelsPerLoop  = 2
	attemptsPerHit = 10
)

// InteriorSize maps a level to the maze side length excluding the wall frame.
// Level 1: 5, level 3: 7, level 30 and beyond: 25. Levels below 1 get the base size.
func InteriorSize(level int) int {
	if level < 1 {
		return BaseSize
	}
	size := BaseSize + (level/levelsPerGrowth)*growthStep
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// LoopCount is the number of extra openings to punch into a carved interior.
// It grows mildly with the level and never exceeds the interior size.
func LoopCount(level, innerSize int) int {
	if level < 1 {
		level = 1
	}
	return min(innerSize, baseLoops+level/levelsPerLoop)
}
