package config

import "strings"

// Action categories, in help-listing order.
var ActionCategories = []string{"gaming", "affection", "aggressive", "bratty", "meme"}

// Category display headers for the help embed
var ActionCategoryHeaders = map[string]string{
	"gaming":     "🎮 Gaming",
	"affection":  "💕 Affection",
	"aggressive": "👊 Aggressive",
	"bratty":     "😈 Bratty",
	"meme":       "🎭 Meme",
}

// ActionConfig - one action command: flavor messages and embed styling.
// Message templates use {user} for the sender and {target} for the mention.
type ActionConfig struct {
	Category string
	Emoji    string
	Color    int
	Messages []string
}

// RenderMessage fills a template with the sender and target names.
func (a ActionConfig) RenderMessage(tmpl, user, target string) string {
	return strings.NewReplacer("{user}", user, "{target}", target).Replace(tmpl)
}

// ActionFallbackColor for actions without a declared color
const ActionFallbackColor = 0x7289DA

// Actions - the full action command table
var Actions = map[string]ActionConfig{
	// Gaming
	"score": {
		Category: "gaming",
		Emoji:    "🎯",
		Color:    0xFFD700,
		Messages: []string{
			"{user} scores on {target}! GG EZ!",
			"{user} just dunked on {target}!",
			"{target} got scored on by {user}!",
			"{user} puts {target} on the highlight reel!",
		},
	},
	"gg": {
		Category: "gaming",
		Emoji:    "🤝",
		Color:    0x50C878,
		Messages: []string{
			"{user} says GG to {target}!",
			"{user} gives {target} a good game handshake!",
			"GG {target}! - {user}",
			"{user} respects {target}. Good game!",
		},
	},
	"rekt": {
		Category: "gaming",
		Emoji:    "💀",
		Color:    0xFF4500,
		Messages: []string{
			"{user} absolutely REKT {target}!",
			"{target} got destroyed by {user}!",
			"GET REKT {target}! - {user}",
			"{user} sends {target} back to the lobby!",
		},
	},
	"carry": {
		Category: "gaming",
		Emoji:    "🦸",
		Color:    0x9932CC,
		Messages: []string{
			"{user} carries {target} to victory!",
			"{target} is being hard carried by {user}!",
			"{user} puts {target} on their back!",
			"Don't worry {target}, {user} has got you!",
		},
	},
	"clutch": {
		Category: "gaming",
		Emoji:    "⚡",
		Color:    0x00CED1,
		Messages: []string{
			"{user} clutches it for {target}!",
			"{user} pulls off a clutch play for {target}!",
			"CLUTCH! {user} saves {target}!",
			"{user} is INSANE! Clutch for {target}!",
		},
	},
	"teabag": {
		Category: "gaming",
		Emoji:    "🫖",
		Color:    0x8B4513,
		Messages: []string{
			"{user} teabags {target}! Disrespectful!",
			"{target} is getting teabagged by {user}!",
			"{user} asserts dominance over {target}!",
			"The disrespect! {user} teabags {target}!",
		},
	},
	"rage": {
		Category: "gaming",
		Emoji:    "😤",
		Color:    0xFF0000,
		Messages: []string{
			"{user} is RAGING at {target}!",
			"{user} threw their controller because of {target}!",
			"{target} made {user} rage quit!",
			"{user} is malding because of {target}!",
		},
	},
	"noob": {
		Category: "gaming",
		Emoji:    "👶",
		Color:    0x808080,
		Messages: []string{
			"{user} calls {target} a NOOB!",
			"Nice try, noob! - {user} to {target}",
			"{user} thinks {target} should uninstall!",
			"L2P {target}! - {user}",
		},
	},
	"camp": {
		Category: "gaming",
		Emoji:    "⛺",
		Color:    0x228B22,
		Messages: []string{
			"{user} is camping {target}!",
			"{user} sets up a tent and waits for {target}!",
			"{target} got camped by {user}!",
			"{user} is a professional camper vs {target}!",
		},
	},
	"combo": {
		Category: "gaming",
		Emoji:    "🔥",
		Color:    0xFF6347,
		Messages: []string{
			"{user} hits a sick combo on {target}!",
			"COMBO BREAKER! {user} destroys {target}!",
			"{user} combos {target} into oblivion!",
			"{target} couldn't escape {user}'s combo!",
		},
	},

	// Affection
	"hug": {
		Category: "affection",
		Emoji:    "🤗",
		Color:    0xFFB6C1,
		Messages: []string{
			"{user} hugs {target} warmly!",
			"{user} gives {target} a big hug!",
			"{target} receives a hug from {user}!",
			"{user} wraps their arms around {target}!",
		},
	},
	"pat": {
		Category: "affection",
		Emoji:    "✋",
		Color:    0xFFE4B5,
		Messages: []string{
			"{user} pats {target} on the head!",
			"{user} gives {target} headpats!",
			"*pat pat* {user} pats {target}!",
			"{target} receives headpats from {user}!",
		},
	},
	"cuddle": {
		Category: "affection",
		Emoji:    "💕",
		Color:    0xFFB6C1,
		Messages: []string{
			"{user} cuddles with {target}!",
			"{user} snuggles up to {target}!",
			"{target} is being cuddled by {user}!",
			"{user} and {target} cuddle together!",
		},
	},
	"poke": {
		Category: "affection",
		Emoji:    "👉",
		Color:    0x87CEEB,
		Messages: []string{
			"{user} pokes {target}!",
			"*poke poke* {user} pokes {target}!",
			"{user} keeps poking {target}!",
			"{target} got poked by {user}!",
		},
	},
	"boop": {
		Category: "affection",
		Emoji:    "👆",
		Color:    0xFFC0CB,
		Messages: []string{
			"{user} boops {target}'s nose!",
			"*boop* {user} boops {target}!",
			"{user} gives {target} a nose boop!",
			"{target} got booped by {user}!",
		},
	},
	"wave": {
		Category: "affection",
		Emoji:    "👋",
		Color:    0x87CEEB,
		Messages: []string{
			"{user} waves at {target}!",
			"{user} waves hello to {target}!",
			"*wave wave* {user} greets {target}!",
			"{user} is waving at {target}!",
		},
	},
	"highfive": {
		Category: "affection",
		Emoji:    "🙌",
		Color:    0xFFD700,
		Messages: []string{
			"{user} high-fives {target}!",
			"{user} and {target} high-five!",
			"*slap* {user} high-fives {target}!",
			"{target} receives a high-five from {user}!",
		},
	},
	"handhold": {
		Category: "affection",
		Emoji:    "💑",
		Color:    0xFFB6C1,
		Messages: []string{
			"{user} holds {target}'s hand!",
			"{user} and {target} are holding hands!",
			"{user} reaches for {target}'s hand!",
			"How lewd! {user} holds {target}'s hand!",
		},
	},
	"snuggle": {
		Category: "affection",
		Emoji:    "🥰",
		Color:    0xDDA0DD,
		Messages: []string{
			"{user} snuggles {target}!",
			"{user} snuggles up with {target}!",
			"{target} gets snuggled by {user}!",
			"{user} and {target} snuggle together!",
		},
	},
	"glomp": {
		Category: "affection",
		Emoji:    "💨",
		Color:    0xFF69B4,
		Messages: []string{
			"{user} glomps {target}!",
			"{user} tackle-hugs {target}!",
			"{target} got glomped by {user}!",
			"*GLOMP* {user} jumps on {target}!",
		},
	},

	// Aggressive
	"slap": {
		Category: "aggressive",
		Emoji:    "👋",
		Color:    0xFF4500,
		Messages: []string{
			"{user} slaps {target}!",
			"{user} slaps {target} across the face!",
			"*SLAP* {user} hits {target}!",
			"{target} got slapped by {user}!",
		},
	},
	"punch": {
		Category: "aggressive",
		Emoji:    "👊",
		Color:    0xFF0000,
		Messages: []string{
			"{user} punches {target}!",
			"{user} throws a punch at {target}!",
			"*POW* {user} punches {target}!",
			"{target} receives a punch from {user}!",
		},
	},
	"kick": {
		Category: "aggressive",
		Emoji:    "🦵",
		Color:    0xFF4500,
		Messages: []string{
			"{user} kicks {target}!",
			"{user} lands a kick on {target}!",
			"*KICK* {user} boots {target}!",
			"{target} got kicked by {user}!",
		},
	},
	"bonk": {
		Category: "aggressive",
		Emoji:    "🔨",
		Color:    0xFFD700,
		Messages: []string{
			"{user} bonks {target}!",
			"{user} bonks {target} on the head!",
			"*BONK* Go to horny jail {target}!",
			"{target} got bonked by {user}!",
		},
	},
	"smack": {
		Category: "aggressive",
		Emoji:    "💥",
		Color:    0xFF6347,
		Messages: []string{
			"{user} smacks {target}!",
			"{user} gives {target} a smack!",
			"*SMACK* {user} hits {target}!",
			"{target} got smacked by {user}!",
		},
	},
	"bite": {
		Category: "aggressive",
		Emoji:    "😬",
		Color:    0x8B0000,
		Messages: []string{
			"{user} bites {target}!",
			"{user} takes a bite of {target}!",
			"*chomp* {user} bites {target}!",
			"{target} got bitten by {user}!",
		},
	},
	"yeet": {
		Category: "aggressive",
		Emoji:    "🚀",
		Color:    0x00CED1,
		Messages: []string{
			"{user} yeets {target}!",
			"{user} yeets {target} into the void!",
			"*YEET* {user} throws {target}!",
			"{target} got yeeted by {user}!",
		},
	},
	"throw": {
		Category: "aggressive",
		Emoji:    "💨",
		Color:    0x4682B4,
		Messages: []string{
			"{user} throws something at {target}!",
			"{user} chucks something at {target}!",
			"*BONK* {user} throws at {target}!",
			"{target} got hit by {user}'s throw!",
		},
	},
	"stab": {
		Category: "aggressive",
		Emoji:    "🗡️",
		Color:    0x8B0000,
		Messages: []string{
			"{user} stabs {target}!",
			"{user} shanks {target}!",
			"*stab stab* {user} attacks {target}!",
			"{target} got stabbed by {user}!",
		},
	},
	"shoot": {
		Category: "aggressive",
		Emoji:    "🔫",
		Color:    0x2F4F4F,
		Messages: []string{
			"{user} shoots {target}!",
			"{user} goes pew pew at {target}!",
			"*BANG* {user} shoots {target}!",
			"{target} got shot by {user}!",
		},
	},

	// Bratty
	"spank": {
		Category: "bratty",
		Emoji:    "🍑",
		Color:    0xFF69B4,
		Messages: []string{
			"{user} spanks {target}!",
			"{user} gives {target} a spank!",
			"*SMACK* {user} spanks {target}!",
			"{target} got spanked by {user}!",
		},
	},
	"ballkick": {
		Category: "bratty",
		Emoji:    "⚽",
		Color:    0xFF4500,
		Messages: []string{
			"{user} kicks {target} in the balls!",
			"{user} goes for {target}'s weak spot!",
			"*CRUNCH* {user} destroys {target}!",
			"{target} is now singing soprano thanks to {user}!",
		},
	},
	"wedgie": {
		Category: "bratty",
		Emoji:    "🩲",
		Color:    0xFFD700,
		Messages: []string{
			"{user} gives {target} a wedgie!",
			"{user} pulls {target}'s underwear!",
			"*YOINK* {user} wedgies {target}!",
			"{target} got a wedgie from {user}!",
		},
	},
	"bully": {
		Category: "bratty",
		Emoji:    "😈",
		Color:    0x800080,
		Messages: []string{
			"{user} bullies {target}!",
			"{user} is being mean to {target}!",
			"{user} picks on {target}!",
			"{target} is being bullied by {user}!",
		},
	},
	"tease": {
		Category: "bratty",
		Emoji:    "😏",
		Color:    0xFF69B4,
		Messages: []string{
			"{user} teases {target}!",
			"{user} is teasing {target}~",
			"{user} playfully teases {target}!",
			"{target} is being teased by {user}!",
		},
	},
	"lick": {
		Category: "bratty",
		Emoji:    "👅",
		Color:    0xFF1493,
		Messages: []string{
			"{user} licks {target}!",
			"{user} gives {target} a lick!",
			"*lick* {user} licks {target}!",
			"{target} got licked by {user}! Ew!",
		},
	},
	"grope": {
		Category: "bratty",
		Emoji:    "🙈",
		Color:    0xFF69B4,
		Messages: []string{
			"{user} gropes {target}!",
			"{user} is being handsy with {target}!",
			"{user} cops a feel on {target}!",
			"{target} got groped by {user}!",
		},
	},
	"choke": {
		Category: "bratty",
		Emoji:    "😵",
		Color:    0x8B0000,
		Messages: []string{
			"{user} chokes {target}!",
			"{user} grabs {target} by the throat!",
			"{user} is choking {target}!",
			"{target} is being choked by {user}!",
		},
	},
	"sit": {
		Category: "bratty",
		Emoji:    "🪑",
		Color:    0xDDA0DD,
		Messages: []string{
			"{user} sits on {target}!",
			"{user} uses {target} as a chair!",
			"{user} plops down on {target}!",
			"{target} is being sat on by {user}!",
		},
	},
	"trap": {
		Category: "bratty",
		Emoji:    "🪤",
		Color:    0x4B0082,
		Messages: []string{
			"{user} traps {target}!",
			"{user} has trapped {target}!",
			"{target} fell into {user}'s trap!",
			"{user} won't let {target} escape!",
		},
	},

	// Meme
	"cringe": {
		Category: "meme",
		Emoji:    "😬",
		Color:    0x808080,
		Messages: []string{
			"{user} cringes at {target}!",
			"{user} finds {target} cringe!",
			"{user} is cringing because of {target}!",
			"Cringe... {user} looks at {target}!",
		},
	},
	"stare": {
		Category: "meme",
		Emoji:    "👀",
		Color:    0x4B0082,
		Messages: []string{
			"{user} stares at {target}!",
			"{user} is staring intensely at {target}!",
			"*stare* {user} watches {target}!",
			"{user} gives {target} a menacing stare!",
		},
	},
	"judge": {
		Category: "meme",
		Emoji:    "🧐",
		Color:    0x696969,
		Messages: []string{
			"{user} judges {target}!",
			"{user} is judging {target} silently!",
			"{user} gives {target} a judgy look!",
			"{target} is being judged by {user}!",
		},
	},
	"shame": {
		Category: "meme",
		Emoji:    "🔔",
		Color:    0x8B4513,
		Messages: []string{
			"{user} shames {target}!",
			"Shame! Shame! {user} shames {target}!",
			"{user} rings the shame bell for {target}!",
			"{target} should be ashamed! - {user}",
		},
	},
	"flex": {
		Category: "meme",
		Emoji:    "💪",
		Color:    0xFFD700,
		Messages: []string{
			"{user} flexes on {target}!",
			"{user} is flexing hard on {target}!",
			"{user} shows off to {target}!",
			"{target} just got flexed on by {user}!",
		},
	},
	"mock": {
		Category: "meme",
		Emoji:    "🤪",
		Color:    0xFFA500,
		Messages: []string{
			"{user} mocks {target}!",
			"{user} is mocking {target}!",
			"\"{target}\" - {user} (mocking)",
			"{user} makes fun of {target}!",
		},
	},
	"facepalm": {
		Category: "meme",
		Emoji:    "🤦",
		Color:    0x808080,
		Messages: []string{
			"{user} facepalms at {target}!",
			"{user} can't believe {target}!",
			"*facepalm* {user} at {target}!",
			"{target} made {user} facepalm!",
		},
	},
	"disappoint": {
		Category: "meme",
		Emoji:    "😞",
		Color:    0x4682B4,
		Messages: []string{
			"{user} is disappointed in {target}!",
			"{user} expected better from {target}!",
			"{user} shakes head at {target}!",
			"{target} has disappointed {user}!",
		},
	},
}
