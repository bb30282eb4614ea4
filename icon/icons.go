package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Empty
	Top
	Question
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "✖",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "✔",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Empty: {
		emoji:   "🫙",
		nerd:    "\uf49e",
		plain:   "∅",
		kaomoji: "(・_・)",
		squares: "⬜",
	},
	Top: {
		emoji:   "🔝",
		nerd:    "\uf062",
		plain:   "▲",
		kaomoji: "(＾▽＾)",
		squares: "🟦",
	},
	Question: {
		emoji:   "🤔",
		nerd:    "\uf128",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟨",
	},
}
