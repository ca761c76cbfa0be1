package pet

import "log"

// Stat and level bounds
const (
	MinStat  = 0
	MaxStat  = 100
	MinLevel = 1
	MaxLevel = 20
)

// Phase is the pet's life stage, derived purely from its level.
type Phase string

const (
	PhaseBaby  Phase = "baby"
	PhaseKid   Phase = "kid"
	PhaseTeen  Phase = "teen"
	PhaseAdult Phase = "adult"
)

// phaseRanges is checked in order; first matching range wins.
var phaseRanges = []struct {
	lo, hi int
	phase  Phase
}{
	{1, 4, PhaseBaby},
	{5, 9, PhaseKid},
	{10, 14, PhaseTeen},
	{15, 20, PhaseAdult},
}

// State is the persisted pet record. It is owned exclusively by the Machine;
// the UI only ever sees copies via Snapshot. AgeDays is saved and loaded but
// no rule currently mutates it.
type State struct {
	Level     int  `json:"level"`
	XP        int  `json:"xp"`
	Hunger    int  `json:"hunger"`
	Happiness int  `json:"happiness"`
	Love      int  `json:"love"`
	Energy    int  `json:"energy"`
	AgeDays   int  `json:"age_days"`
	Dead      bool `json:"dead"`
}

// DefaultState returns a freshly hatched pet.
func DefaultState() State {
	return State{
		Level:     MinLevel,
		XP:        0,
		Hunger:    50,
		Happiness: 50,
		Love:      50,
		Energy:    50,
	}
}

// Phase returns the life stage for the current level. Levels beyond every
// range fall back to adult; unreachable while the level cap holds.
func (s State) Phase() Phase {
	for _, r := range phaseRanges {
		if s.Level >= r.lo && s.Level <= r.hi {
			return r.phase
		}
	}
	return PhaseAdult
}

// XPNeeded returns the XP required to advance past the given level.
func XPNeeded(level int) int {
	return 100 + (level-1)*25
}

// ApplyLeveling consumes accumulated XP into level-ups. A single reward can
// cross several thresholds, so this loops. At the level cap the remaining XP
// stays unconsumed.
func (s *State) ApplyLeveling() {
	for s.Level < MaxLevel && s.XP >= XPNeeded(s.Level) {
		s.XP -= XPNeeded(s.Level)
		s.Level++
		log.Printf("Level up! New level: %d", s.Level)
	}
}

// Clamp constrains a stat value to [MinStat, MaxStat].
func Clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// Bucket is the traffic-light classification of a stat value.
type Bucket string

const (
	BucketGreen  Bucket = "green"
	BucketOrange Bucket = "orange"
	BucketRed    Bucket = "red"
)

// BucketOf classifies a stat value: green >= 70, orange >= 35, red below.
func BucketOf(v int) Bucket {
	switch {
	case v >= 70:
		return BucketGreen
	case v >= 35:
		return BucketOrange
	default:
		return BucketRed
	}
}
