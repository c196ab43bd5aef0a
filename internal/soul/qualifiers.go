// Code generated data: action qualifiers and body-part phrases.
// Grounded on mudlib/soul.py's ACTION_QUALIFIERS and BODY_PARTS tables.
package soul

// Qualifier wraps an action string to change its modality (fail, pretend, ...).
type Qualifier struct {
	// ActorFormat is a %s-style format string for the actor's own message.
	ActorFormat string
	// RoomFormat is a %s-style format string for the room/target message.
	RoomFormat string
	// UseRoomDefault: when true, RoomFormat wraps the already-3rd-personified
	// room action string; when false, it wraps the same actor-form action
	// string (the qualifier itself supplies the 3rd person spelling).
	UseRoomDefault bool
}

// Qualifiers is the table of recognised action qualifiers.
var Qualifiers = map[string]Qualifier{
	"again": {ActorFormat: "%s again", RoomFormat: "%s again", UseRoomDefault: true},
	"attempt": {ActorFormat: "attempt to %s, without much success", RoomFormat: "attempts to %s, without much success", UseRoomDefault: false},
	"don't": {ActorFormat: "don't %s", RoomFormat: "doesn't %s", UseRoomDefault: false},
	"dont": {ActorFormat: "don't %s", RoomFormat: "doesn't %s", UseRoomDefault: false},
	"fail": {ActorFormat: "try to %s, but fail miserably", RoomFormat: "tries to %s, but fails miserably", UseRoomDefault: false},
	"pretend": {ActorFormat: "pretend to %s", RoomFormat: "pretends to %s", UseRoomDefault: false},
	"suddenly": {ActorFormat: "suddenly %s", RoomFormat: "suddenly %s", UseRoomDefault: true},
}

// BodyParts maps a body-part keyword to the descriptive phrase slotted
// into the WHERE escape.
var BodyParts = map[string]string{
	"ankle": "in the ankle",
	"arm": "on the arm",
	"back": "on the back",
	"behind": "on the behind",
	"butt": "on the butt",
	"cheek": "on the cheek",
	"chest": "on the chest",
	"ear": "on the ear",
	"everywhere": "everywhere",
	"eye": "in the eye",
	"face": "in the face",
	"foot": "on the foot",
	"forehead": "on the forehead",
	"hand": "on the hand",
	"head": "on the head",
	"hurts": "where it hurts",
	"knee": "on the knee",
	"kneecap": "on the kneecap",
	"leg": "on the leg",
	"neck": "in the neck",
	"nose": "on the nose",
	"nuts": "where it hurts",
	"shoulder": "on the shoulder",
	"side": "in the side",
	"stomach": "in the stomach",
	"toe": "on the right toe",
}
