package ui

import "denogotchi/internal/pet"

// spriteFrames maps phase -> sprite action -> ASCII frames. Every action has
// two frames, dead has one, and the teen idle set carries a hidden third
// frame that SecretIdleOverride can select.
var spriteFrames = map[pet.Phase]map[pet.SpriteAction][]string{
	pet.PhaseBaby: {
		pet.SpriteIdle: {`
   (o.o)
   <) )>
    " "
`, `
   (o.o)
   <( (>
    " "
`},
		pet.SpriteFeed: {`
 🍼 (o.o)
    <) )>
     " "
`, `
   (>ᴗ<)
   <)🍼)>
    " "
`},
		pet.SpritePlay: {`
   (^o^)  🔔
   <) )>
    " "
`, `
 🔔 (^o^)
    <( (>
     " "
`},
		pet.SpriteCuddle: {`
   (˘ᴗ˘) ♡
   <) )>
    " "
`, `
 ♡ (˘ᴗ˘) ♡
   <( (>
    " "
`},
		pet.SpriteNoEnergy: {`
   (-.-) z
   <) )>
    " "
`, `
   (-.-) zZ
   <( (>
    " "
`},
		pet.SpriteDead: {`
   (x.x)
   <) )>
    " "
`},
	},
	pet.PhaseKid: {
		pet.SpriteIdle: {`
   (o▿o)
  <(   )>
    ᵛ ᵛ
`, `
   (o▿o)
  <(   )<
    ᵛ ᵛ
`},
		pet.SpriteFeed: {`
 🍔 (o▿o)
   <(   )>
     ᵛ ᵛ
`, `
   (>▿<)
  <( 🍔 )>
    ᵛ ᵛ
`},
		pet.SpritePlay: {`
   (^▿^) 🎮
  <(   )>
    ᵛ ᵛ
`, `
 🎮 (^▿^)
   <(   )<
     ᵛ ᵛ
`},
		pet.SpriteCuddle: {`
   (˘▿˘) ♥
  <(   )>
    ᵛ ᵛ
`, `
 ♥ (˘▿˘) ♥
  <(   )<
    ᵛ ᵛ
`},
		pet.SpriteNoEnergy: {`
   (−▿−) z
  <(   )>
    ᵛ ᵛ
`, `
   (−▿−) zZ
  <(   )<
    ᵛ ᵛ
`},
		pet.SpriteDead: {`
   (x▿x)
  <(   )>
    ᵛ ᵛ
`},
	},
	pet.PhaseTeen: {
		pet.SpriteIdle: {`
   (o_o)🕶
  <(   )>
    ᴧ ᴧ
`, `
   (o_o)🕶
  >(   )>
    ᴧ ᴧ
`, `
   (⌐■_■)
  <( 🌿 )>
    ᴧ ᴧ
`},
		pet.SpriteFeed: {`
 🌯 (o_o)
   <(   )>
     ᴧ ᴧ
`, `
   (>_<)
  <( 🌯 )>
    ᴧ ᴧ
`},
		pet.SpritePlay: {`
   (o_o)  🛹
  <(   )>
    ᴧ ᴧ
`, `
 🛹 (o_o)
   >(   )>
     ᴧ ᴧ
`},
		pet.SpriteCuddle: {`
   (˘_˘) ♥
  <(   )>
    ᴧ ᴧ
`, `
 ♥ (˘3˘) ♥
  >(   )>
    ᴧ ᴧ
`},
		pet.SpriteNoEnergy: {`
   (−_−) z
  <(   )>
    ᴧ ᴧ
`, `
   (−_−) zZ
  >(   )>
    ᴧ ᴧ
`},
		pet.SpriteDead: {`
   (x_x)
  <(   )>
    ᴧ ᴧ
`},
	},
	pet.PhaseAdult: {
		pet.SpriteIdle: {`
   (ò◊ó)
  <(|||)>
    Ш Ш
`, `
   (ò◊ó)
  <(|||)<
    Ш Ш
`},
		pet.SpriteFeed: {`
 🍖 (ò◊ó)
   <(|||)>
     Ш Ш
`, `
   (>◊<)
  <(🍖||)>
    Ш Ш
`},
		pet.SpritePlay: {`
   (ò◊ó)  🚗
  <(|||)>
    Ш Ш
`, `
 🚗 (ò◊ó)
   <(|||)<
     Ш Ш
`},
		pet.SpriteCuddle: {`
   (˘◊˘) ♥
  <(|||)>
    Ш Ш
`, `
 ♥ (˘◊˘) ♥
  <(|||)<
    Ш Ш
`},
		pet.SpriteNoEnergy: {`
   (−◊−) z
  <(|||)>
    Ш Ш
`, `
   (−◊−) zZ
  <(|||)<
    Ш Ш
`},
		pet.SpriteDead: {`
   (x◊x)
  <(|||)>
    Ш Ш
`},
	},
}

// Frame returns the frame for a phase, sprite action and index. Out-of-range
// indexes wrap; unknown sets fall back to the phase's idle frames.
func Frame(phase pet.Phase, sprite pet.SpriteAction, index int) string {
	set, ok := spriteFrames[phase]
	if !ok {
		set = spriteFrames[pet.PhaseAdult]
	}
	frames := set[sprite]
	if len(frames) == 0 {
		frames = set[pet.SpriteIdle]
	}
	if len(frames) == 0 {
		return ""
	}
	if index < 0 {
		index = 0
	}
	return frames[index%len(frames)]
}

// HasThirdIdleFrame reports whether a phase's idle set carries the rare
// third frame.
func HasThirdIdleFrame(phase pet.Phase) bool {
	return len(spriteFrames[phase][pet.SpriteIdle]) >= 3
}

// SecretIdleOverride picks the hidden third idle frame for a teen at full
// hunger. Evaluated per draw; never persisted.
func SecretIdleOverride(s pet.State, sprite pet.SpriteAction, locked bool) (int, bool) {
	if locked || s.Dead || sprite != pet.SpriteIdle {
		return 0, false
	}
	if s.Phase() == pet.PhaseTeen && s.Hunger >= pet.MaxStat && HasThirdIdleFrame(pet.PhaseTeen) {
		return 2, true
	}
	return 0, false
}
