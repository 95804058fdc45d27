// Package progression implements the level, rank and training-intensity
// rules. Every function is pure and total over its domain.
package progression

import (
	"math"

	"github.com/forgo/ascend/api/internal/model"
)

// StatPointsPerLevel is granted for every level gained.
const StatPointsPerLevel = 3

// Experience curve
const (
	baseExperience   = 150
	experienceGrowth = 1.8
)

// intensityCapLevel is the level at which exercise targets reach their max.
const intensityCapLevel = 50

var rankThresholds = []struct {
	level int
	rank  model.Rank
}{
	{80, model.RankS},
	{60, model.RankA},
	{40, model.RankB},
	{25, model.RankC},
	{10, model.RankD},
}

// RankFor maps a level to its rank.
func RankFor(level int) model.Rank {
	for _, t := range rankThresholds {
		if level >= t.level {
			return t.rank
		}
	}
	return model.RankE
}

// ExperienceRequired is the experience needed to advance past level:
// floor(150 * 1.8^(level-1)). Values beyond the int range saturate at
// math.MaxInt.
func ExperienceRequired(level int) int {
	if level < 1 {
		level = 1
	}
	v := math.Floor(baseExperience * math.Pow(experienceGrowth, float64(level-1)))
	if v >= math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// TrainingIntensity interpolates an exercise target from base at level 1 to
// max at level 50 and above.
func TrainingIntensity(level, base, max int) int {
	if level >= intensityCapLevel {
		return max
	}
	if level < 1 {
		level = 1
	}
	return base + (max-base)*(level-1)/(intensityCapLevel-1)
}

// ScaledTarget applies a dungeon or boss multiplier to a training target.
func ScaledTarget(intensity int, multiplier float64) int {
	return int(float64(intensity) * multiplier)
}

// LevelUp is the outcome of adding experience.
type LevelUp struct {
	Level        int
	Experience   int
	LevelsGained int
}

// StatPoints returns the stat points earned by the levels gained.
func (l LevelUp) StatPoints() int {
	return l.LevelsGained * StatPointsPerLevel
}

// ApplyExperience adds gained experience and resolves every threshold it
// crosses. The result always satisfies Experience < ExperienceRequired(Level).
// Negative gains are treated as zero.
func ApplyExperience(level, experience, gained int) LevelUp {
	if level < 1 {
		level = 1
	}
	if gained > 0 {
		if experience > math.MaxInt-gained {
			experience = math.MaxInt
		} else {
			experience += gained
		}
	}

	out := LevelUp{Level: level, Experience: experience}
	for {
		need := ExperienceRequired(out.Level)
		if out.Experience < need || need == math.MaxInt {
			break
		}
		out.Experience -= need
		out.Level++
		out.LevelsGained++
	}
	return out
}
