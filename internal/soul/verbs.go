// Code generated data: the verb template table and the set of verbs treated
// as aggressive for combat-adjacent story hooks (movement verbs are in
// movement.go).
// Grounded on mudlib/soul.py's VERBS and AGGRESSIVE_VERBS tables.
package soul

// Verbs is the static dictionary of every emote verb the soul understands.
var Verbs = map[string]VerbDef{
	"ack": {Type: SIMP, Preposition: "at", Template: "ack$ \nHOW \nAT"},
	"admire": {Type: PREV, Extra: "", Preposition: ""},
	"adore": {Type: PREV, Extra: "", Preposition: ""},
	"agree": {Type: DEFA, Preposition: "with"},
	"ah": {Type: DEUX, Templates: []string{"go 'ah' \nHOW", "goes 'ah' \nHOW"}},
	"answer": {Type: SIMP, Preposition: "", Template: " \nHOW answer$ \nAT: \nWHAT"},
	"apologize": {Type: DEFA, Preposition: "to"},
	"applaud": {Type: DEFA, Preposition: ""},
	"argh": {Type: DEFA, Preposition: "at"},
	"ask": {Type: SIMP, Defaults: VerbDefaults{Adverb: "", Message: "ehh", Where: ""}, Preposition: "", Template: " \nHOW ask$ \nAT: \nWHAT?"},
	"awake": {Type: SIMP, Defaults: VerbDefaults{Adverb: "groggily", Message: "", Where: ""}, Preposition: "", Template: "awake$ \nHOW"},
	"ayt": {Type: SIMP, Preposition: "", Template: "wave$ \nYOUR hand in front of \nPOSS face, \nIS \nSUBJ \nHOW there?"},
	"babble": {Type: SIMP, Defaults: VerbDefaults{Adverb: "incoherently", Message: "'something", Where: ""}, Preposition: "to", Template: "babble$ \nMSG \nHOW \nAT"},
	"barf": {Type: DEFA, Preposition: "on"},
	"bark": {Type: DEFA, Preposition: "at"},
	"beam": {Type: DEFA, Preposition: "at"},
	"beep": {Type: PERS, Defaults: VerbDefaults{Adverb: "triumphantly", Message: "", Where: "on the nose"}, NoTarget: " \nHOW beep$ \nMYself \nWHERE", WithTarget: " \nHOW beep$ \nWHO \nWHERE"},
	"beg": {Type: PERS, NoTarget: "beg$ \nHOW", WithTarget: "beg$ \nWHO for mercy \nHOW"},
	"believe": {Type: PERS, NoTarget: "believe$ in \nMYself \nHOW", WithTarget: "believe$ \nWHO \nHOW"},
	"bitch": {Type: DEUX, Templates: []string{"bitch \nHOW", "bitches \nHOW"}},
	"bite": {Type: PERS, NoTarget: " \nHOW bite$ \nYOUR lip", WithTarget: "bite$ \nWHO \nHOW \nWHERE"},
	"blink": {Type: PERS, NoTarget: "blink$ \nHOW", WithTarget: "blink$ \nHOW at \nWHO"},
	"blush": {Type: DEUX, Templates: []string{"blush \nHOW", "blushes \nHOW"}},
	"boggle": {Type: SIMP, Preposition: "", Template: "boggle$ \nHOW at the concept"},
	"bonk": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "on the head"}, Extra: "", Preposition: ""},
	"bop": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "on the head"}, Extra: "", Preposition: ""},
	"bored": {Type: SIMP, Preposition: "", Template: "look$ \nHOW bored"},
	"bounce": {Type: SHRT, Defaults: VerbDefaults{Adverb: "up and down", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"bow": {Type: DEFA, Preposition: "to"},
	"breathe": {Type: DEFA, Defaults: VerbDefaults{Adverb: "heavily", Message: "", Where: ""}, Preposition: "at"},
	"bump": {Type: DEFA, Defaults: VerbDefaults{Adverb: "clumsily", Message: "", Where: ""}, Preposition: "into"},
	"burp": {Type: DEFA, Defaults: VerbDefaults{Adverb: "rudely", Message: "", Where: ""}, Preposition: "at"},
	"cackle": {Type: DEFA, Defaults: VerbDefaults{Adverb: "gleefully", Message: "", Where: ""}, Preposition: "at"},
	"caper": {Type: PERS, Defaults: VerbDefaults{Adverb: "merrily", Message: "", Where: ""}, NoTarget: "caper$ \nHOW about", WithTarget: "caper$ around \nWHO \nHOW"},
	"capitulate": {Type: DEFA, Defaults: VerbDefaults{Adverb: "unconditionally", Message: "", Where: ""}, Preposition: "to"},
	"caress": {Type: DEUX, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "on the cheek"}, Templates: []string{"caress \nWHO \nHOW \nWHERE", "caresses \nWHO \nHOW \nWHERE"}},
	"chant": {Type: SIMP, Defaults: VerbDefaults{Adverb: "", Message: "Hare Krishna Krishna Hare Hare", Where: ""}, Preposition: "", Template: " \nHOW chant$: \nWHAT"},
	"chase": {Type: PREV, Defaults: VerbDefaults{Adverb: "angrily", Message: "", Where: ""}, Extra: "after", Preposition: ""},
	"cheer": {Type: SHRT, Defaults: VerbDefaults{Adverb: "enthusiastically", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"choke": {Type: SHRT, Extra: "", Preposition: ""},
	"chuckle": {Type: DEFA, Preposition: "at"},
	"clap": {Type: SHRT, Extra: "", Preposition: ""},
	"clear": {Type: SIMP, Preposition: "", Template: "clear$ \nYOUR throat \nHOW"},
	"clue": {Type: SIMP, Preposition: "", Template: "need$ a clue \nHOW"},
	"comfort": {Type: PREV, Extra: "", Preposition: ""},
	"command": {Type: SIMP, Defaults: VerbDefaults{Adverb: "", Message: "follow orders", Where: ""}, Preposition: "", Template: "command$ \nWHO \nHOW to \nWHAT"},
	"complain": {Type: DEFA, Preposition: "about"},
	"congratulate": {Type: PREV, Extra: "", Preposition: ""},
	"consult": {Type: SIMP, Preposition: "", Template: " \nHOW consult$ \nAT \nWHAT"},
	"cough": {Type: SHRT, Defaults: VerbDefaults{Adverb: "noisily", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"cringe": {Type: SIMP, Defaults: VerbDefaults{Adverb: "in terror", Message: "", Where: ""}, Preposition: "", Template: "cringe$ \nHOW"},
	"criticize": {Type: PERS, NoTarget: "criticize$ \nWHAT \nHOW", WithTarget: "criticize$ \nWHO \nHOW"},
	"cry": {Type: DEUX, Templates: []string{"cry \nHOW", "cries \nHOW"}},
	"cuddle": {Type: PREV, Extra: "", Preposition: ""},
	"curse": {Type: PERS, NoTarget: "curse$ \nWHAT \nHOW", WithTarget: "curse$ \nWHO \nHOW"},
	"curtsy": {Type: DEFA, Preposition: "before"},
	"dance": {Type: DEFA, Preposition: "with"},
	"die": {Type: DEUX, Templates: []string{" \nHOW fall down and play dead", " \nHOW falls to the ground, dead"}},
	"disagree": {Type: DEFA, Preposition: "with"},
	"drool": {Type: DEFA, Preposition: "on"},
	"duck": {Type: PERS, NoTarget: "duck$ \nHOW out of the way", WithTarget: "duck$ \nHOW out of \nPOSS way"},
	"embrace": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "in \nYOUR arms"}, Extra: "", Preposition: ""},
	"emote": {Type: DEUX, Templates: []string{"emote: player \nWHAT", " \nWHAT"}},
	"envy": {Type: DEUX, Templates: []string{"envy \nWHO \nHOW", "envies \nWHO \nHOW"}},
	"exclaim": {Type: SIMP, Preposition: "", Template: " \nHOW exclaim$ \nAT: \nWHAT!"},
	"excuse": {Type: PERS, NoTarget: " \nHOW excuse$ \nMYself", WithTarget: " \nHOW excuse$ \nMYself to \nWHO"},
	"eye": {Type: PREV, Defaults: VerbDefaults{Adverb: "suspiciously", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"faint": {Type: SHRT, Extra: "", Preposition: ""},
	"fart": {Type: DEFA, Preposition: "at"},
	"fear": {Type: PERS, NoTarget: "shiver$ \nHOW with fear", WithTarget: "fear$ \nWHO \nHOW"},
	"feel": {Type: PHYS, Defaults: VerbDefaults{Adverb: "softly", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"finger": {Type: SIMP, Preposition: "", Template: "give$ \nWHO the finger"},
	"flex": {Type: DEUX, Templates: []string{"flex \nYOUR muscles \nHOW", "flexes \nYOUR muscles \nHOW"}},
	"flip": {Type: SIMP, Preposition: "", Template: "flip$ \nHOW head over heels"},
	"flirt": {Type: DEFA, Preposition: "with"},
	"fondle": {Type: PREV, Extra: "", Preposition: ""},
	"forgive": {Type: PREV, Extra: "", Preposition: ""},
	"french": {Type: SIMP, Preposition: "", Template: "give$ \nWHO a REAL kiss, it seems to last forever"},
	"frown": {Type: SHRT, Extra: "", Preposition: ""},
	"fume": {Type: SHRT, Extra: "", Preposition: ""},
	"gasp": {Type: SHRT, Defaults: VerbDefaults{Adverb: "in astonishment", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"giggle": {Type: DEFA, Defaults: VerbDefaults{Adverb: "merrily", Message: "", Where: ""}, Preposition: "at"},
	"glare": {Type: DEFA, Defaults: VerbDefaults{Adverb: "stonily", Message: "", Where: ""}, Preposition: "at"},
	"grease": {Type: SIMP, Defaults: VerbDefaults{Adverb: "like in a shiatsu", Message: "", Where: ""}, Preposition: "", Template: "grease$ \nWHO \nHOW"},
	"greet": {Type: PREV, Extra: "", Preposition: ""},
	"grimace": {Type: SIMP, Preposition: "at", Template: " \nHOW make$ an awful face \nAT"},
	"grin": {Type: DEFA, Defaults: VerbDefaults{Adverb: "evilly", Message: "", Where: ""}, Preposition: "at"},
	"gripe": {Type: PREV, Extra: "to", Preposition: ""},
	"groan": {Type: DEFA, Preposition: "at"},
	"grope": {Type: PREV, Extra: "", Preposition: ""},
	"grovel": {Type: DEFA, Preposition: "before"},
	"growl": {Type: DEFA, Preposition: "at"},
	"grumble": {Type: SHRT, Extra: "", Preposition: ""},
	"grunt": {Type: DEFA, Preposition: "at"},
	"guffaw": {Type: SIMP, Preposition: "at", Template: "guffaw$ \nHOW \nAT"},
	"gurgle": {Type: SHRT, Extra: "", Preposition: ""},
	"handshake": {Type: SIMP, Preposition: "", Template: "shake$ hands with \nWHO"},
	"hate": {Type: PREV, Extra: "", Preposition: ""},
	"headshake": {Type: SIMP, Preposition: "at", Template: "shake$ \nYOUR head \nAT \nHOW"},
	"hello": {Type: PERS, NoTarget: "greet$ everyone \nHOW", WithTarget: "greet$ \nWHO \nHOW"},
	"hi": {Type: PERS, NoTarget: "greet$ everyone \nHOW", WithTarget: "greet$ \nWHO \nHOW"},
	"hiccup": {Type: SHRT, Extra: "", Preposition: ""},
	"hide": {Type: SIMP, Preposition: "", Template: "hide$ \nHOW behind \nWHO"},
	"hiss": {Type: QUAD, Templates: []string{"hiss \nMSG \nHOW", "hisses \nMSG \nHOW", "hiss \nMSG to \nWHO \nHOW", "hisses \nMSG to \nWHO \nHOW"}},
	"hit": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "in the face"}, Extra: "", Preposition: ""},
	"hmm": {Type: SIMP, Preposition: "at", Template: "hmm$ \nHOW \nAT"},
	"hold": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "in \nYOUR arms"}, Extra: "", Preposition: ""},
	"howl": {Type: DEFA, Defaults: VerbDefaults{Adverb: "in pain", Message: "", Where: ""}, Preposition: "at"},
	"huff": {Type: SHRT, Extra: "", Preposition: ""},
	"hug": {Type: PREV, Extra: "", Preposition: ""},
	"ignore": {Type: PREV, Extra: "", Preposition: ""},
	"judge": {Type: PREV, Extra: "", Preposition: ""},
	"jump": {Type: SIMP, Defaults: VerbDefaults{Adverb: "up and down in aggravation", Message: "", Where: ""}, Preposition: "", Template: "jump$ \nHOW"},
	"kick": {Type: PHYS, Defaults: VerbDefaults{Adverb: "hard", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"kiss": {Type: DEUX, Templates: []string{"kiss \nWHO \nHOW \nWHERE", "kisses \nWHO \nHOW \nWHERE"}},
	"knee": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "where it hurts"}, Extra: "", Preposition: ""},
	"kneel": {Type: SIMP, Preposition: "in front of", Template: " \nHOW fall$ on \nYOUR knees \nAT"},
	"knock": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "on the head"}, Extra: "", Preposition: ""},
	"lag": {Type: SHRT, Defaults: VerbDefaults{Adverb: "helplessly", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"laugh": {Type: DEFA, Preposition: "at"},
	"leer": {Type: DEFA, Preposition: "at"},
	"lick": {Type: SIMP, Preposition: "", Template: "lick$ \nWHO \nHOW \nWHERE"},
	"lie": {Type: PERS, NoTarget: "lie$ \nMSG \nHOW", WithTarget: "lie$ to \nWHO \nHOW"},
	"lift": {Type: PREV, Defaults: VerbDefaults{Adverb: "from the floor", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"like": {Type: PREV, Extra: "", Preposition: ""},
	"listen": {Type: DEFA, Preposition: "to"},
	"love": {Type: PREV, Extra: "", Preposition: ""},
	"lust": {Type: DEFA, Preposition: "for"},
	"melt": {Type: PERS, Defaults: VerbDefaults{Adverb: "in front of", Message: "", Where: ""}, NoTarget: "melt$ from the heat", WithTarget: "melt$ \nHOW \nWHO"},
	"meow": {Type: DEFA, Preposition: "at"},
	"mercy": {Type: SIMP, Preposition: "", Template: "beg$ \nWHO for mercy"},
	"moan": {Type: DEFA, Preposition: "at"},
	"mock": {Type: PREV, Extra: "", Preposition: ""},
	"move": {Type: SIMP, Defaults: VerbDefaults{Adverb: "thoughtfully", Message: "", Where: ""}, Preposition: "", Template: "move$ out of the way \nHOW"},
	"mumble": {Type: SIMP, Preposition: "to", Template: "mumble$ \nMSG \nHOW \nAT"},
	"murmur": {Type: SIMP, Preposition: "to", Template: "murmur$ \nMSG \nHOW \nAT"},
	"mutter": {Type: PERS, NoTarget: "mutter$ \nMSG \nHOW", WithTarget: "mutter$ \nMSG to \nWHO \nHOW"},
	"nibble": {Type: SIMP, Preposition: "", Template: "nibble$ \nHOW on \nPOSS ear"},
	"nod": {Type: DEFA, Defaults: VerbDefaults{Adverb: "solemnly", Message: "", Where: ""}, Preposition: "at"},
	"nominate": {Type: PREV, Extra: "", Preposition: ""},
	"nudge": {Type: PHYS, Defaults: VerbDefaults{Adverb: "suggestively", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"ogle": {Type: PREV, Extra: "", Preposition: ""},
	"oil": {Type: SIMP, Defaults: VerbDefaults{Adverb: "like in a shiatsu", Message: "", Where: ""}, Preposition: "", Template: "oil$ \nWHO \nHOW"},
	"pace": {Type: SIMP, Defaults: VerbDefaults{Adverb: "impatiently", Message: "", Where: ""}, Preposition: "", Template: "start$ pacing \nHOW"},
	"pale": {Type: SIMP, Preposition: "", Template: "turn$ white as ashes \nHOW"},
	"panic": {Type: SHRT, Extra: "", Preposition: ""},
	"pant": {Type: SIMP, Defaults: VerbDefaults{Adverb: "heavily", Message: "", Where: ""}, Preposition: "at", Template: "pant$ \nHOW \nAT"},
	"pat": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "on the head"}, Extra: "", Preposition: ""},
	"peer": {Type: PREV, Extra: "at", Preposition: ""},
	"pet": {Type: SIMP, Preposition: "", Template: "pet$ \nWHO \nHOW \nWHERE"},
	"pinch": {Type: DEUX, Templates: []string{"pinch \nWHO \nHOW \nWHERE", "pinches \nWHO \nHOW \nWHERE"}},
	"point": {Type: DEFA, Preposition: "at"},
	"poke": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "in the ribs"}, Extra: "", Preposition: ""},
	"ponder": {Type: SHRT, Defaults: VerbDefaults{Adverb: "over some problem", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"pounce": {Type: PHYS, Defaults: VerbDefaults{Adverb: "playfully", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"pout": {Type: SHRT, Extra: "", Preposition: ""},
	"pray": {Type: SIMP, Preposition: "to", Template: "mumble$ a short prayer \nAT"},
	"puff": {Type: SHRT, Extra: "", Preposition: ""},
	"puke": {Type: DEFA, Preposition: "on"},
	"pull": {Type: SIMP, Preposition: "", Template: "pull$ at \nWHO"},
	"punch": {Type: DEUX, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "in the eye"}, Templates: []string{"punch \nWHO \nHOW \nWHERE", "punches \nWHO \nHOW \nWHERE"}},
	"purr": {Type: DEFA, Preposition: "at"},
	"push": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "to the side"}, Extra: "", Preposition: ""},
	"puzzle": {Type: SIMP, Preposition: "at", Template: "look$ \nHOW puzzled \nAT"},
	"quote": {Type: SIMP, Preposition: "to", Template: " \nHOW quote$ \nAT \nMSG"},
	"raise": {Type: SIMP, Preposition: "at", Template: " \nHOW raise$ an eyebrow \nAT"},
	"recoil": {Type: DEFA, Defaults: VerbDefaults{Adverb: "with fear", Message: "", Where: ""}, Preposition: "from"},
	"relax": {Type: DEUX, Templates: []string{"relax \nHOW", "relaxes \nHOW"}},
	"remember": {Type: SIMP, Preposition: "", Template: "remember$ \nAT \nHOW"},
	"repent": {Type: SIMP, Preposition: "", Template: "repent$ \nYOUR sins"},
	"reply": {Type: QUAD, Templates: []string{" \nHOW reply: \nWHAT", " \nHOW replies: \nWHAT", " \nHOW reply to \nWHO: \nWHAT", " \nHOW replies to \nWHO: \nWHAT"}},
	"request": {Type: SIMP, Preposition: "", Template: " \nHOW request$ \nAT \nWHAT"},
	"roll": {Type: SIMP, Defaults: VerbDefaults{Adverb: "to the ceiling", Message: "", Where: ""}, Preposition: "", Template: "roll$ \nYOUR eyes \nHOW"},
	"rotate": {Type: PERS, NoTarget: "rotate$ \nHOW", WithTarget: "rotate$ \nWHO \nHOW"},
	"rub": {Type: PHYS, Defaults: VerbDefaults{Adverb: "gently", Message: "", Where: "on the back"}, Extra: "", Preposition: ""},
	"ruffle": {Type: SIMP, Preposition: "", Template: "ruffle$ \nPOSS hair \nHOW"},
	"salute": {Type: PREV, Extra: "", Preposition: ""},
	"say": {Type: SIMP, Defaults: VerbDefaults{Adverb: "", Message: "'nothing", Where: ""}, Preposition: "to", Template: " \nHOW say$ \nMSG \nAT"},
	"scowl": {Type: DEFA, Defaults: VerbDefaults{Adverb: "darkly", Message: "", Where: ""}, Preposition: "at"},
	"scratch": {Type: QUAD, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "on the head"}, Templates: []string{"scratch \nMYself \nHOW \nWHERE", "scratches \nMYself \nHOW \nWHERE", "scratch \nWHO \nHOW \nWHERE", "scratches \nWHO \nHOW \nWHERE"}},
	"scream": {Type: SIMP, Defaults: VerbDefaults{Adverb: "loudly", Message: "", Where: ""}, Preposition: "at", Template: "scream$ \nMSG \nHOW \nAT"},
	"search": {Type: DEUX, Defaults: VerbDefaults{Adverb: "thoroughly", Message: "", Where: ""}, Templates: []string{"search \nWHO \nHOW, where is it?", "searches \nWHO \nHOW, where is it?"}},
	"shake": {Type: SIMP, Defaults: VerbDefaults{Adverb: "like a bowlful of jello", Message: "", Where: ""}, Preposition: "", Template: "shake$ \nAT \nHOW"},
	"shiver": {Type: SHRT, Defaults: VerbDefaults{Adverb: "from the cold", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"shove": {Type: PHYS, Defaults: VerbDefaults{Adverb: "briskly", Message: "", Where: "to the side"}, Extra: "", Preposition: ""},
	"shrug": {Type: SHRT, Extra: "", Preposition: ""},
	"sigh": {Type: SHRT, Extra: "", Preposition: ""},
	"sing": {Type: SIMP, Preposition: "to", Template: "sing$ \nWHAT \nHOW \nAT"},
	"sit": {Type: DEFA, Defaults: VerbDefaults{Adverb: "down", Message: "", Where: ""}, Preposition: "in front of"},
	"slap": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "in the face"}, Extra: "", Preposition: ""},
	"sleep": {Type: DEUX, Defaults: VerbDefaults{Adverb: "soundly", Message: "", Where: ""}, Templates: []string{"fall asleep \nHOW", "falls asleep \nHOW"}},
	"slide": {Type: SIMP, Preposition: "", Template: "slip$ and slide$ \nHOW"},
	"smile": {Type: DEFA, Defaults: VerbDefaults{Adverb: "happily", Message: "", Where: ""}, Preposition: "at"},
	"smirk": {Type: SHRT, Extra: "", Preposition: ""},
	"smooch": {Type: DEUX, Templates: []string{"smooch \nWHO \nHOW", "smooches \nWHO \nHOW"}},
	"snap": {Type: SIMP, Preposition: "at", Template: "snap$ \nYOUR fingers \nAT"},
	"snarl": {Type: DEFA, Preposition: "at"},
	"sneer": {Type: DEFA, Defaults: VerbDefaults{Adverb: "disdainfully", Message: "", Where: ""}, Preposition: "at"},
	"sneeze": {Type: DEFA, Defaults: VerbDefaults{Adverb: "loudly", Message: "", Where: ""}, Preposition: "at"},
	"snicker": {Type: SHRT, Extra: "", Preposition: ""},
	"sniff": {Type: PERS, NoTarget: "sniff$. What's that smell?", WithTarget: "sniff$ \nWHO. What's that smell?"},
	"snigger": {Type: DEFA, Defaults: VerbDefaults{Adverb: "jeeringly", Message: "", Where: ""}, Preposition: "at"},
	"snivel": {Type: SHRT, Defaults: VerbDefaults{Adverb: "pathetically", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"snore": {Type: SHRT, Extra: "", Preposition: ""},
	"snort": {Type: SIMP, Preposition: "at", Template: "snort$ \nHOW \nAT"},
	"snuggle": {Type: PREV, Extra: "", Preposition: ""},
	"sob": {Type: SHRT, Extra: "", Preposition: ""},
	"spank": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "on the butt"}, Extra: "", Preposition: ""},
	"spill": {Type: SIMP, Preposition: "all over", Template: "spill$ \nYOUR drink \nHOW \nAT"},
	"spin": {Type: DEFA, Defaults: VerbDefaults{Adverb: "dizzily", Message: "", Where: ""}, Preposition: "around"},
	"spit": {Type: DEFA, Preposition: "on"},
	"spray": {Type: SIMP, Preposition: "all over", Template: "spray$ \nHOW \nAT"},
	"squeeze": {Type: PREV, Defaults: VerbDefaults{Adverb: "fondly", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"squint": {Type: SHRT, Extra: "", Preposition: ""},
	"stand": {Type: DEFA, Defaults: VerbDefaults{Adverb: "up", Message: "", Where: ""}, Preposition: "in front of"},
	"stare": {Type: DEFA, Preposition: "at"},
	"startle": {Type: PREV, Extra: "", Preposition: ""},
	"steam": {Type: SHRT, Extra: "", Preposition: ""},
	"stink": {Type: PERS, NoTarget: "smell$ \nYOUR armpits. Eeeww!", WithTarget: "smell$ \nPOSS armpits. Eeeww!"},
	"stomp": {Type: PERS, NoTarget: "stomp$ \nYOUR foot \nHOW", WithTarget: "stomp$ on \nPOSS foot \nHOW"},
	"strangle": {Type: PREV, Extra: "", Preposition: ""},
	"stretch": {Type: DEUX, Templates: []string{"stretch \nHOW", "stretches \nHOW"}},
	"stroke": {Type: PHYS, Defaults: VerbDefaults{Adverb: "", Message: "", Where: "on the cheek"}, Extra: "", Preposition: ""},
	"strut": {Type: SHRT, Defaults: VerbDefaults{Adverb: "proudly", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"stumble": {Type: SHRT, Extra: "", Preposition: ""},
	"stupid": {Type: SIMP, Preposition: "", Template: "look$ \nHOW stupid"},
	"sulk": {Type: SHRT, Defaults: VerbDefaults{Adverb: "in the corner", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"surprise": {Type: PREV, Extra: "", Preposition: ""},
	"surrender": {Type: DEFA, Preposition: "to"},
	"swear": {Type: SIMP, Preposition: "before", Template: "swear$ \nWHAT \nAT \nHOW"},
	"sweat": {Type: SHRT, Extra: "", Preposition: ""},
	"swing": {Type: SIMP, Defaults: VerbDefaults{Adverb: "wildly", Message: "", Where: ""}, Preposition: "at", Template: "swing$ \nYOUR arms \nHOW \nAT"},
	"swoon": {Type: DEFA, Defaults: VerbDefaults{Adverb: "romantically", Message: "", Where: ""}, Preposition: "at"},
	"tackle": {Type: SIMP, Preposition: "", Template: "tackle$ \nWHO \nHOW"},
	"talk": {Type: SIMP, Preposition: "to", Template: "want$ to talk \nAT \nHOW"},
	"tap": {Type: PERS, Defaults: VerbDefaults{Adverb: "impatiently", Message: "", Where: "on the shoulder"}, NoTarget: "tap$ \nYOUR foot \nHOW", WithTarget: "tap$ \nWHO \nWHERE"},
	"taunt": {Type: PREV, Extra: "", Preposition: ""},
	"tease": {Type: PREV, Extra: "", Preposition: ""},
	"tell": {Type: SIMP, Preposition: "", Template: "tell$ \nWHO \nMSG"},
	"thank": {Type: PREV, Extra: "", Preposition: ""},
	"think": {Type: SHRT, Defaults: VerbDefaults{Adverb: "carefully", Message: "", Where: ""}, Extra: "", Preposition: ""},
	"thumb": {Type: SIMP, Preposition: "", Template: " \nHOW suck$ \nYOUR thumb"},
	"tickle": {Type: PREV, Extra: "", Preposition: ""},
	"tongue": {Type: SIMP, Preposition: "at", Template: "stick$ \nYOUR tongue out \nHOW \nAT"},
	"touch": {Type: DEUX, Templates: []string{"touch \nWHO \nHOW \nWHERE", "touches \nWHO \nHOW \nWHERE"}},
	"tremble": {Type: SHRT, Extra: "", Preposition: ""},
	"trust": {Type: PREV, Extra: "", Preposition: ""},
	"turn": {Type: PREV, Extra: "\nYOUR head towards", Preposition: ""},
	"twiddle": {Type: SIMP, Preposition: "", Template: "twiddle$ \nYOUR thumbs \nHOW"},
	"twitch": {Type: DEUX, Templates: []string{"twitch \nHOW", "twitches \nHOW"}},
	"understand": {Type: PERS, Defaults: VerbDefaults{Adverb: "now", Message: "", Where: ""}, NoTarget: "understand$ \nHOW", WithTarget: "understand$ \nWHO \nHOW"},
	"utter": {Type: SIMP, Preposition: "to", Template: " \nHOW utter$ \nMSG \nAT"},
	"wait": {Type: SIMP, Preposition: "", Template: "wait$ \nHOW"},
	"wake": {Type: SIMP, Defaults: VerbDefaults{Adverb: "groggily", Message: "", Where: ""}, Preposition: "", Template: "awake$ \nHOW"},
	"want": {Type: PREV, Extra: "", Preposition: ""},
	"watch": {Type: QUAD, Defaults: VerbDefaults{Adverb: "carefully", Message: "", Where: ""}, Templates: []string{"watch the surroundings \nHOW", "watches the surroundings \nHOW", "watch \nWHO \nHOW", "watches \nWHO \nHOW"}},
	"wave": {Type: DEFA, Defaults: VerbDefaults{Adverb: "happily", Message: "", Where: ""}, Preposition: "at"},
	"welcome": {Type: PREV, Extra: "", Preposition: ""},
	"whine": {Type: SHRT, Extra: "", Preposition: ""},
	"whisper": {Type: SIMP, Preposition: "to", Template: "whisper$ \nMSG \nHOW \nAT"},
	"whistle": {Type: DEFA, Defaults: VerbDefaults{Adverb: "appreciatively", Message: "", Where: ""}, Preposition: "at"},
	"wiggle": {Type: SIMP, Preposition: "at", Template: "wiggle$ \nYOUR bottom \nAT \nHOW"},
	"wink": {Type: DEFA, Defaults: VerbDefaults{Adverb: "suggestively", Message: "", Where: ""}, Preposition: "at"},
	"wobble": {Type: SIMP, Preposition: "", Template: "wobble$ \nAT \nHOW"},
	"wonder": {Type: DEFA, Preposition: "at"},
	"worship": {Type: PREV, Extra: "", Preposition: ""},
	"wrinkle": {Type: SIMP, Preposition: "at", Template: "wrinkle$ \nYOUR nose \nAT \nHOW"},
	"yawn": {Type: DEFA, Preposition: "at"},
	"yell": {Type: SIMP, Defaults: VerbDefaults{Adverb: "in a high pitched voice", Message: "", Where: ""}, Preposition: "at", Template: "yell$ \nMSG \nHOW \nAT"},
	"yodel": {Type: SIMP, Preposition: "", Template: "yodel$ a merry tune \nHOW"},
}

// AggressiveVerbs is the set of verbs a story may treat as hostile actions
// (e.g. to trigger combat or NPC retaliation).
var AggressiveVerbs = map[string]bool{
	"barf": true,
	"bitch": true,
	"bite": true,
	"bonk": true,
	"bop": true,
	"bump": true,
	"burp": true,
	"chase": true,
	"curse": true,
	"feel": true,
	"finger": true,
	"fondle": true,
	"french": true,
	"grease": true,
	"grimace": true,
	"grope": true,
	"growl": true,
	"guffaw": true,
	"handshake": true,
	"hit": true,
	"hold": true,
	"hug": true,
	"kick": true,
	"kiss": true,
	"knee": true,
	"knock": true,
	"lick": true,
	"lift": true,
	"mock": true,
	"nibble": true,
	"nudge": true,
	"oil": true,
	"pat": true,
	"pet": true,
	"pinch": true,
	"poke": true,
	"pounce": true,
	"puke": true,
	"pull": true,
	"punch": true,
	"push": true,
	"rotate": true,
	"rub": true,
	"ruffle": true,
	"scowl": true,
	"scratch": true,
	"search": true,
	"shake": true,
	"shove": true,
	"slap": true,
	"smooch": true,
	"sneer": true,
	"snigger": true,
	"snuggle": true,
	"spank": true,
	"spill": true,
	"spit": true,
	"spray": true,
	"squeeze": true,
	"startle": true,
	"stomp": true,
	"strangle": true,
	"stroke": true,
	"surprise": true,
	"swing": true,
	"tackle": true,
	"tap": true,
	"taunt": true,
	"tease": true,
	"tickle": true,
	"tongue": true,
	"touch": true,
	"wiggle": true,
	"wobble": true,
	"wrinkle": true,
}
