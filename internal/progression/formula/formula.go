package formula

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// WeightUnit is the unit a set's weight was logged in.
type WeightUnit string

const (
	UnitKg WeightUnit = "kg"
	UnitLb WeightUnit = "lb"
)

const (
	// LbPerKg is the number of pounds in one kilogram.
	LbPerKg = 2.20462

	// reps outside of this range are clipped before estimating the 1RM
	minEstimateReps = 1
	maxEstimateReps = 12

	levelFactor = 0.1

	baseWorkoutXP = 50
	xpPerSet      = 5
	xpPerPR       = 25
)

func (u WeightUnit) String() string {
	return string(u)
}

func (u WeightUnit) IsValid() bool {
	switch u {
	case UnitKg, UnitLb:
		return true
	default:
		return false
	}
}

// ParseUnit accepts "kg" / "lb" (case-insensitive, "lbs" too).
func ParseUnit(s string) (WeightUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kgs":
		return UnitKg, nil
	case "lb", "lbs":
		return UnitLb, nil
	default:
		return "", fmt.Errorf("unknown weight unit: %q", s)
	}
}

// Estimated1RM estimates the one-rep max with the Brzycki formula:
// 1RM = weight / (1.0278 - 0.0278 * reps), reps clipped to [1, 12].
// The result is rounded to one decimal.
func Estimated1RM(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	clipped := min(max(reps, minEstimateReps), maxEstimateReps)
	return roundTo(weight/(1.0278-0.0278*float64(clipped)), 1)
}

// ConvertWeight converts weight between units, rounded to two decimals.
func ConvertWeight(weight float64, from, to WeightUnit) float64 {
	if from == to {
		return weight
	}
	if from == UnitKg && to == UnitLb {
		return roundTo(weight*LbPerKg, 2)
	}
	return roundTo(weight/LbPerKg, 2)
}

// ToKg normalizes weight to kilograms.
func ToKg(weight float64, unit WeightUnit) float64 {
	if unit == UnitLb {
		return ConvertWeight(weight, UnitLb, UnitKg)
	}
	return weight
}

// Level is floor(0.1 * sqrt(totalXP)).
func Level(totalXP int) int {
	if totalXP <= 0 {
		return 0
	}
	return int(math.Floor(levelFactor * math.Sqrt(float64(totalXP))))
}

// XPForLevel is the inverse of Level: (level / 0.1)^2.
func XPForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	v := float64(level) / levelFactor
	return int(math.Round(v * v))
}

// LevelProgress returns the 0..1 fraction of XP earned towards the next level.
func LevelProgress(totalXP int) float64 {
	level := Level(totalXP)
	current := XPForLevel(level)
	next := XPForLevel(level + 1)
	if next <= current {
		return 1
	}
	return Clamp01(float64(totalXP-current) / float64(next-current))
}

// WorkoutXP is the raw XP candidate for a completed workout, before the reward
// policy (cooldown, minimum duration, daily cap) is applied.
func WorkoutXP(completedSets, newPRs int) int {
	return baseWorkoutXP + xpPerSet*max(completedSets, 0) + xpPerPR*max(newPRs, 0)
}

// SameDay reports whether a and b fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DaysBetween(a, b, loc) == 0
}

// DaysBetween returns the number of calendar days from -> to in loc,
// i.e. 23:59 -> 00:01 the next day is 1 day.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	// compare as UTC midnights so DST shifts do not leak into the difference
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// WeekStart returns local Sunday 00:00 of the week containing t.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	y, m, d := local.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -int(local.Weekday()))
}

// ISOWeekKey labels the Sunday-started week as "YYYY-Www", taking the ISO week
// of the Monday that follows weekStart.
func ISOWeekKey(weekStart time.Time) string {
	year, week := weekStart.AddDate(0, 0, 1).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
