package pet

import "math/rand"

// DialogKey selects a line set within a phase's dialog table.
type DialogKey string

const (
	DialogFeed     DialogKey = "FEED"
	DialogPlay     DialogKey = "PLAY"
	DialogCuddle   DialogKey = "CUDDLE"
	DialogNoEnergy DialogKey = "NO_ENERGY"
	DialogHungry   DialogKey = "HUNGRY"
	DialogDeadLove DialogKey = "DEAD_LOVE"
	DialogDeadPlay DialogKey = "DEAD_PLAY"
	DialogReset    DialogKey = "RESET"
)

// dialog holds the pet's voice, one table per life stage.
var dialog = map[Phase]map[DialogKey][]string{
	PhaseBaby: {
		DialogFeed:     {"Nom nom... 🍼", "ssschhlupp", "nyomnyomnyom"},
		DialogPlay:     {"brbrrbrr", "brabrabra", "gugu gaga rassel lustig"},
		DialogCuddle:   {"geil", "so waaarm :D", "I like this..."},
		DialogNoEnergy: {"wuaaah wuaah", "*baby kaputt warum tust du ihm das an", "wuaaaa"},
		DialogHungry:   {"Gugu gaga ich bin ein baby gib mir essen", "Feed me..", "Mein Bauch..."},
		DialogDeadLove: {"...  du liebst mich nicht."},
		DialogDeadPlay: {"...  du spielst nicht mit mir."},
		DialogReset:    {"Du hast ein Baby Deno aufm Gewissen"},
	},
	PhaseKid: {
		DialogFeed:     {"Lecker lecker", "ich satt :D", "Danki"},
		DialogPlay:     {"Minecraft so cool yeah", "NOCHMAL!!", "SPIEL MIT MIR!!!"},
		DialogCuddle:   {"Ich liebe dich", "Schatzi :3", "Mein Schatziii"},
		DialogNoEnergy: {"Keine Energie!", "Später...", "Ich kann nichtmal mehr zocken.. ;("},
		DialogHungry:   {"Ich bin hungrig... 😣", "Feed me...", "I'm starving..."},
		DialogDeadLove: {"... du liebst mich nicht."},
		DialogDeadPlay: {"... du spielst nicht mit mir."},
		DialogReset:    {"Kind Deno tot weil du nicht auf ihn achten kannst"},
	},
	PhaseTeen: {
		DialogFeed:     {"Jetzt ein Babak", "ein dicker Jibb zum chillen", "Noch ein boun!!!"},
		DialogPlay:     {"zweites zuhause :=)", "Ich muss die Pflanzen gießen :D", "Arbeiten.."},
		DialogCuddle:   {"JOANA <3 <3 <3 ", "Mein engelchen :3", "ily"},
		DialogNoEnergy: {"nicht jetzt man", "subtile Hinweise dass ich kein bock hab", "pustekuchen vergiss es"},
		DialogHungry:   {"Ich bin hungrig... 😣", "Fütter mich..", "Warum kein Essen ich Hunger"},
		DialogDeadLove: {"...  du liebst mich nicht."},
		DialogDeadPlay: {"...  du spielst nicht mit mir."},
		DialogReset:    {"Verkack es nicht nochmal!!!"},
	},
	PhaseAdult: {
		DialogFeed:     {"Fleisch!", "Ich stopf soviel in den Mund wie es nur geht", "*Zu voller Mund zum reden*"},
		DialogPlay:     {"Jetz- MEIN AUTOOOO", "Ist das ein...", "BOOOMBOCLAT"},
		DialogCuddle:   {"MEIN SCHATZI", "DU ENGEL", "Ich brauche dich für immer"},
		DialogNoEnergy: {"Digga bin tot", "nein vergiss es", "Später vll"},
		DialogHungry:   {"Du nixgönner", "Ich würde selber kochen gerade wenn ich kein Tamagotchi wäre", "HUnger du idiot"},
		DialogDeadLove: {"...  du liebst mich nicht."},
		DialogDeadPlay: {"...  du spielst nicht mit mir."},
		DialogReset:    {"Hier kannst du unendlich resetten aber im echten leben gibt es mich nur einmal.."},
	},
}

// Line picks a random dialog line for the phase and key. A missing table or
// key falls back to the key's own text rather than an empty bubble.
func Line(phase Phase, key DialogKey, r *rand.Rand) string {
	options := dialog[phase][key]
	if len(options) == 0 {
		return string(key)
	}
	return options[r.Intn(len(options))]
}
