package pet

// Action is a player-triggered interaction.
type Action string

const (
	ActionFeed   Action = "FEED"
	ActionPlay   Action = "PLAY"
	ActionCuddle Action = "CUDDLE"
	ActionReset  Action = "RESET"
)

// SpriteAction names a sprite frame set. The machine's animation state and
// the renderer share this vocabulary.
type SpriteAction string

const (
	SpriteIdle     SpriteAction = "idle"
	SpriteFeed     SpriteAction = "feed"
	SpritePlay     SpriteAction = "play"
	SpriteCuddle   SpriteAction = "cuddle"
	SpriteNoEnergy SpriteAction = "no_energy"
	SpriteDead     SpriteAction = "dead"
)

// Rule is the configured cost and effects of an action. Stat deltas are
// applied independently and clamped; XP is added before leveling runs.
type Rule struct {
	Cost      int
	Hunger    int
	Happiness int
	Love      int
	XP        int
	Anim      SpriteAction
}

// DefaultRules returns the action table. This is data, not behavior: the
// machine looks effects up here rather than branching per action.
func DefaultRules() map[Action]Rule {
	return map[Action]Rule{
		ActionFeed:   {Cost: 2, Hunger: +22, XP: 10, Anim: SpriteFeed},
		ActionPlay:   {Cost: 10, Hunger: -2, Happiness: +22, Love: +4, XP: 14, Anim: SpritePlay},
		ActionCuddle: {Cost: 10, Hunger: -2, Happiness: +5, Love: +22, XP: 14, Anim: SpriteCuddle},
	}
}
