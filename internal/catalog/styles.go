package catalog

// CategoryStyle is the visual identity of a category.
type CategoryStyle struct {
	Icon     string `json:"icon"`
	Gradient string `json:"gradient"`
	IconBg   string `json:"icon_bg"`
}

var categoryStyles = map[CategoryID]CategoryStyle{
	CategoryUIBasics: {
		Icon:     "palette",
		Gradient: "from-pink-500 via-rose-500 to-red-500",
		IconBg:   "bg-gradient-to-br from-pink-500 to-rose-600",
	},
	CategoryLayout: {
		Icon:     "layout",
		Gradient: "from-blue-500 via-cyan-500 to-teal-500",
		IconBg:   "bg-gradient-to-br from-blue-500 to-cyan-600",
	},
	CategoryAnimation: {
		Icon:     "sparkles",
		Gradient: "from-amber-500 via-orange-500 to-yellow-500",
		IconBg:   "bg-gradient-to-br from-amber-500 to-orange-600",
	},
	CategoryReactHooks: {
		Icon:     "atom",
		Gradient: "from-violet-500 via-purple-500 to-fuchsia-500",
		IconBg:   "bg-gradient-to-br from-violet-500 to-purple-600",
	},
	CategoryNextFeatures: {
		Icon:     "rocket",
		Gradient: "from-emerald-500 via-green-500 to-lime-500",
		IconBg:   "bg-gradient-to-br from-emerald-500 to-green-600",
	},
}

// StyleFor returns the style of a category. Unknown ids get a neutral style.
func StyleFor(id CategoryID) CategoryStyle {
	if s, ok := categoryStyles[id]; ok {
		return s
	}
	return CategoryStyle{
		Icon:     "book-open",
		Gradient: "from-zinc-500 via-zinc-400 to-zinc-300",
		IconBg:   "bg-gradient-to-br from-zinc-500 to-zinc-600",
	}
}

// DifficultyStyle is how a difficulty badge is drawn. Color is an ANSI 256 code.
type DifficultyStyle struct {
	Badge string `json:"badge"`
	Color string `json:"color"`
}

var difficultyStyles = map[Difficulty]DifficultyStyle{
	DifficultyBeginner:     {Badge: "bg-green-100 text-green-800", Color: "34"},
	DifficultyIntermediate: {Badge: "bg-yellow-100 text-yellow-800", Color: "178"},
	DifficultyAdvanced:     {Badge: "bg-red-100 text-red-800", Color: "160"},
}

func (d Difficulty) Style() DifficultyStyle {
	if s, ok := difficultyStyles[d]; ok {
		return s
	}
	return DifficultyStyle{Badge: "bg-zinc-100 text-zinc-800", Color: "245"}
}
