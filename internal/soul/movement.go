package soul

// NonLivingVerbs is the subset of Verbs that make sense when targeted at
// an item rather than only at a living (e.g. "admire the painting").
// Grounded on tale/verbdefs.py's NONLIVING_OK_VERBS.
var NonLivingVerbs = map[string]bool{
	"admire": true, "adore": true, "answer": true, "argh": true, "ask": true,
	"babble": true, "barf": true, "bark": true, "beam": true, "bite": true,
	"blink": true, "bow": true, "breathe": true, "bump": true, "cackle": true,
	"caper": true, "capitulate": true, "chuckle": true, "complain": true,
	"cuddle": true, "curse": true, "drool": true, "embrace": true, "eye": true,
	"fear": true, "feel": true, "finger": true, "fondle": true, "gaze": true,
	"giggle": true, "glare": true, "glance": true, "grimace": true, "grin": true,
	"groan": true, "grope": true, "growl": true, "grunt": true, "guffaw": true,
	"hate": true, "headshake": true, "hide": true, "hiss": true, "hmm": true,
	"ignore": true, "jerk": true, "judge": true, "kick": true, "laugh": true,
	"leer": true, "lick": true, "like": true, "listen": true, "love": true,
	"lust": true, "meow": true, "moan": true, "mumble": true, "murmur": true,
	"mutter": true, "nod": true, "nominate": true, "ogle": true, "peer": true,
	"point": true, "puke": true, "pull": true, "push": true, "purr": true,
	"puzzle": true, "quote": true, "raise": true, "recoil": true, "reply": true,
	"rotate": true, "scowl": true, "scream": true, "shake": true, "shove": true,
	"sing": true, "smile": true, "snap": true, "snarl": true, "sneer": true,
	"sneeze": true, "smell": true, "sniff": true, "snigger": true, "snort": true,
	"spill": true, "spin": true, "spit": true, "spray": true, "stare": true,
	"surrender": true, "swing": true, "tongue": true, "touch": true, "trust": true,
	"turn": true, "understand": true, "utter": true, "want": true, "watch": true,
	"wave": true, "wiggle": true, "wobble": true, "worship": true, "wrinkle": true,
	"yawn": true,
}

// MovementVerbs are verbs that read as movement rather than social
// narration. The commands package registers every entry except "go" (its
// own command) and "move" (a soul emote in Verbs) as an exit-traversal
// command.
// Grounded on tale/verbdefs.py's MOVEMENT_VERBS.
var MovementVerbs = map[string]bool{
	"enter": true, "climb": true, "crawl": true, "go": true, "run": true, "move": true,
}
