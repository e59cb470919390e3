package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Search
	Mark
	Favorite
	Play
	Link
	Warn
)

var icons = map[Icon]*symbol{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "~",
		kaomoji: "(o_o)",
		squares: "🟦",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟪",
	},
	Mark: {
		emoji:   "▼",
		nerd:    "",
		plain:   "*",
		kaomoji: "(*)",
		squares: "🟨",
	},
	Favorite: {
		emoji:   "❤️",
		nerd:    "",
		plain:   "<3",
		kaomoji: "(♡˙︶˙♡)",
		squares: "🟥",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(>_>)",
		squares: "🟧",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "#",
		kaomoji: "(-‿-)",
		squares: "🟫",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(°ロ°)",
		squares: "🟨",
	},
}
