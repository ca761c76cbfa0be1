package pet

import (
	"math"
	"math/rand"
	"time"
)

// Dialog durations for specific situations; everything else uses the
// configured default.
const (
	hungryDialog   = 5200 * time.Millisecond
	deathDialog    = 7 * time.Second
	noEnergyDialog = 2600 * time.Millisecond
	resetDialog    = 3 * time.Second
)

// decayStep is how much hunger, happiness and love drop per decay interval.
const decayStep = 1

// FrameOverride may replace the frame index for a single draw. It is
// evaluated at snapshot time and never stored.
type FrameOverride func(s State, sprite SpriteAction, locked bool) (int, bool)

// Config carries every tunable the machine needs. The host builds it once at
// startup; there is no ambient package state.
type Config struct {
	DecayInterval    time.Duration
	AutosaveInterval time.Duration
	IdleFrame        time.Duration
	ActionFrameMin   time.Duration
	ActionFrameMax   time.Duration
	DialogDuration   time.Duration
	Rules            map[Action]Rule
	Now              func() time.Time
	Rand             *rand.Rand
	FrameOverride    FrameOverride
}

// DefaultConfig returns the stock timings and action table.
func DefaultConfig() Config {
	return Config{
		DecayInterval:    10 * time.Second,
		AutosaveInterval: 60 * time.Second,
		IdleFrame:        2400 * time.Millisecond,
		ActionFrameMin:   1800 * time.Millisecond,
		ActionFrameMax:   2600 * time.Millisecond,
		DialogDuration:   4200 * time.Millisecond,
		Rules:            DefaultRules(),
		Now:              time.Now,
		Rand:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Machine is the stateful controller driving a State forward in time: frame
// timing, action locking, decay, energy regeneration, death evaluation and
// dialog queuing. All timers are absolute millisecond deadlines so tick rate
// never accumulates drift. Not safe for concurrent use; the host calls it
// from a single loop.
type Machine struct {
	cfg   Config
	store *Store
	state State

	sprite      SpriteAction
	frameIndex  int
	locked      bool
	nextFrameMs int64

	lastDecayMs    int64
	lastAutosaveMs int64

	// Continuous regeneration accumulator, resynced to the integer stat
	// whenever energy is spent.
	energyFloat  float64
	lastEnergyMs int64

	hungerWarned bool

	// Cheapest-locking-action threshold for the exhausted idle sprite.
	noEnergyBelow int

	message        string
	messageUntilMs int64
}

// NewMachine wires a loaded state to its store and configuration.
func NewMachine(st State, store *Store, cfg Config) *Machine {
	now := cfg.Now().UnixMilli()
	m := &Machine{
		cfg:            cfg,
		store:          store,
		state:          st,
		sprite:         SpriteIdle,
		nextFrameMs:    now + cfg.IdleFrame.Milliseconds(),
		lastDecayMs:    now,
		lastAutosaveMs: now,
		energyFloat:    float64(st.Energy),
		lastEnergyMs:   now,
	}
	for _, rule := range cfg.Rules {
		if rule.Cost > m.noEnergyBelow {
			m.noEnergyBelow = rule.Cost
		}
	}
	return m
}

// State returns a copy of the current record.
func (m *Machine) State() State {
	return m.state
}

// Save flushes the current state to disk.
func (m *Machine) Save() {
	m.store.Save(&m.state)
}

// Tick advances the machine to now. The host calls it once per frame.
func (m *Machine) Tick(now time.Time) {
	nowMs := now.UnixMilli()

	m.advanceAnimation(nowMs)

	if !m.state.Dead && nowMs-m.lastDecayMs >= m.cfg.DecayInterval.Milliseconds() {
		m.state.Hunger = Clamp(m.state.Hunger - decayStep)
		m.state.Happiness = Clamp(m.state.Happiness - decayStep)
		m.state.Love = Clamp(m.state.Love - decayStep)
		m.lastDecayMs = nowMs
	}

	// Starvation warning fires once on the falling edge and re-arms when
	// hunger recovers.
	if !m.state.Dead && m.state.Hunger <= 0 && !m.hungerWarned {
		m.say(DialogHungry, hungryDialog, nowMs)
		m.hungerWarned = true
	}
	if !m.state.Dead && m.state.Hunger > 0 {
		m.hungerWarned = false
	}

	// Death rule: starving alone is survivable; it must coincide with red
	// love or red happiness.
	if !m.state.Dead && m.state.Hunger <= 0 {
		loveRed := BucketOf(m.state.Love) == BucketRed
		happyRed := BucketOf(m.state.Happiness) == BucketRed
		if loveRed || happyRed {
			m.state.Dead = true
			m.sprite = SpriteIdle
			m.frameIndex = 0
			m.locked = false
			m.nextFrameMs = nowMs + m.cfg.IdleFrame.Milliseconds()

			if loveRed {
				m.say(DialogDeadLove, deathDialog, nowMs)
			} else {
				m.say(DialogDeadPlay, deathDialog, nowMs)
			}

			// Deaths must survive a crash.
			m.store.Save(&m.state)
		}
	}

	m.regenerateEnergy(nowMs)

	if nowMs-m.lastAutosaveMs >= m.cfg.AutosaveInterval.Milliseconds() {
		m.store.Save(&m.state)
		m.lastAutosaveMs = nowMs
	}

	if nowMs >= m.messageUntilMs {
		m.message = ""
	}
}

// advanceAnimation flips idle frames forever and plays locked action
// animations through their two frames before unlocking.
func (m *Machine) advanceAnimation(nowMs int64) {
	if m.sprite == SpriteIdle {
		if nowMs >= m.nextFrameMs {
			m.frameIndex = 1 - m.frameIndex
			m.nextFrameMs = nowMs + m.cfg.IdleFrame.Milliseconds()
		}
		return
	}
	if nowMs < m.nextFrameMs {
		return
	}
	if m.frameIndex == 0 {
		m.frameIndex = 1
		m.nextFrameMs = nowMs + m.actionFrameMs()
	} else {
		m.sprite = SpriteIdle
		m.frameIndex = 0
		m.nextFrameMs = nowMs + m.cfg.IdleFrame.Milliseconds()
		m.locked = false
	}
}

func (m *Machine) actionFrameMs() int64 {
	lo := m.cfg.ActionFrameMin.Milliseconds()
	hi := m.cfg.ActionFrameMax.Milliseconds()
	if hi <= lo {
		return lo
	}
	return lo + m.cfg.Rand.Int63n(hi-lo+1)
}

// FillMinutes returns how many minutes a full 0-to-100 energy refill takes
// for the given stats. Starvation slows regeneration hardest; otherwise the
// traffic-light mix of the three care stats decides.
func FillMinutes(hunger, happiness, love int) float64 {
	if hunger <= 0 {
		return 60
	}
	if hunger < 35 {
		return 20
	}

	buckets := []Bucket{BucketOf(hunger), BucketOf(happiness), BucketOf(love)}
	greens, oranges := 0, 0
	for _, b := range buckets {
		switch b {
		case BucketGreen:
			greens++
		case BucketOrange:
			oranges++
		}
	}

	if greens == len(buckets) {
		return 7.5
	}
	if oranges == 1 {
		return 10
	}
	return 12.5
}

// regenerateEnergy accrues continuous regeneration while the pet is idle,
// unlocked and alive. The float accumulator keeps the rate frame-rate
// independent.
func (m *Machine) regenerateEnergy(nowMs int64) {
	dt := nowMs - m.lastEnergyMs
	m.lastEnergyMs = nowMs

	if m.state.Dead || m.locked || m.sprite != SpriteIdle {
		return
	}
	if m.state.Energy >= MaxStat {
		m.energyFloat = float64(MaxStat)
		return
	}

	minutes := FillMinutes(m.state.Hunger, m.state.Happiness, m.state.Love)
	ratePerMs := 100.0 / (minutes * 60_000.0)

	m.energyFloat = math.Min(float64(MaxStat), m.energyFloat+ratePerMs*float64(dt))
	m.state.Energy = Clamp(int(m.energyFloat))
}

// HandleAction applies a user interaction. Dead pets only accept RESET;
// locked or unaffordable actions are defined no-ops with user feedback.
// Accepted actions are persisted before returning.
func (m *Machine) HandleAction(a Action) {
	nowMs := m.cfg.Now().UnixMilli()

	if m.state.Dead {
		if a == ActionReset {
			m.Reset()
		}
		return
	}
	if a == ActionReset {
		return
	}
	if m.locked {
		return
	}

	rule, ok := m.cfg.Rules[a]
	if !ok {
		return
	}

	if m.state.Energy < rule.Cost {
		m.say(DialogNoEnergy, noEnergyDialog, nowMs)
		return
	}

	m.state.Energy = Clamp(m.state.Energy - rule.Cost)
	m.energyFloat = float64(m.state.Energy)

	m.state.Hunger = Clamp(m.state.Hunger + rule.Hunger)
	m.state.Happiness = Clamp(m.state.Happiness + rule.Happiness)
	m.state.Love = Clamp(m.state.Love + rule.Love)
	m.state.XP += rule.XP

	m.startAnimation(rule.Anim, nowMs)
	m.say(DialogKey(a), m.cfg.DialogDuration, nowMs)

	m.state.ApplyLeveling()
	m.store.Save(&m.state)
}

// Reset replaces the pet with a fresh default one. It is the only way out of
// the dead state; the UI may also offer it while alive via HandleAction,
// where it is ignored.
func (m *Machine) Reset() {
	nowMs := m.cfg.Now().UnixMilli()

	m.state = DefaultState()
	m.energyFloat = float64(m.state.Energy)
	m.lastEnergyMs = nowMs

	m.sprite = SpriteIdle
	m.frameIndex = 0
	m.locked = false
	m.nextFrameMs = nowMs + m.cfg.IdleFrame.Milliseconds()

	m.hungerWarned = false

	m.store.Save(&m.state)
	m.say(DialogReset, resetDialog, nowMs)
}

func (m *Machine) startAnimation(sprite SpriteAction, nowMs int64) {
	m.locked = true
	m.sprite = sprite
	m.frameIndex = 0
	m.nextFrameMs = nowMs + m.actionFrameMs()
}

func (m *Machine) say(key DialogKey, d time.Duration, nowMs int64) {
	m.message = Line(m.state.Phase(), key, m.cfg.Rand)
	m.messageUntilMs = nowMs + d.Milliseconds()
}

// effectiveSprite maps machine state to the frame set the renderer should
// draw: dead wins, and an idle pet too drained for the priciest action shows
// exhaustion.
func (m *Machine) effectiveSprite() SpriteAction {
	if m.state.Dead {
		return SpriteDead
	}
	if m.sprite == SpriteIdle && m.state.Energy < m.noEnergyBelow {
		return SpriteNoEnergy
	}
	return m.sprite
}

// Snapshot is the read-only view the renderer draws from. The renderer never
// mutates machine state.
type Snapshot struct {
	Phase      Phase
	Sprite     SpriteAction
	FrameIndex int

	Hunger    int
	Happiness int
	Love      int
	Energy    int

	HungerBucket    Bucket
	HappinessBucket Bucket
	LoveBucket      Bucket
	EnergyBucket    Bucket

	Level    int
	XP       int
	XPNeeded int
	AgeDays  int

	Dead    bool
	Locked  bool
	Message string
}

// Snapshot returns the current display-facing state.
func (m *Machine) Snapshot() Snapshot {
	sprite := m.effectiveSprite()
	frame := m.frameIndex
	if m.cfg.FrameOverride != nil {
		if idx, ok := m.cfg.FrameOverride(m.state, sprite, m.locked); ok {
			frame = idx
		}
	}

	return Snapshot{
		Phase:      m.state.Phase(),
		Sprite:     sprite,
		FrameIndex: frame,

		Hunger:    m.state.Hunger,
		Happiness: m.state.Happiness,
		Love:      m.state.Love,
		Energy:    m.state.Energy,

		HungerBucket:    BucketOf(m.state.Hunger),
		HappinessBucket: BucketOf(m.state.Happiness),
		LoveBucket:      BucketOf(m.state.Love),
		EnergyBucket:    BucketOf(m.state.Energy),

		Level:    m.state.Level,
		XP:       m.state.XP,
		XPNeeded: XPNeeded(m.state.Level),
		AgeDays:  m.state.AgeDays,

		Dead:    m.state.Dead,
		Locked:  m.locked,
		Message: m.message,
	}
}
