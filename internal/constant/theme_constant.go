package constant

// Theme describes one UI theme as data. The client renders a single navbar
// component from these records instead of shipping one component per theme.
type Theme struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	NavbarFont string `json:"navbar_font"`
}

var Themes = []Theme{
	{Id: 1, Name: "classic", Primary: "#1677ff", Background: "#ffffff", Text: "#1f1f1f", NavbarFont: "sans-serif"},
	{Id: 2, Name: "dark", Primary: "#177ddc", Background: "#141414", Text: "#f0f0f0", NavbarFont: "sans-serif"},
	{Id: 3, Name: "sepia", Primary: "#d48806", Background: "#fdf6e3", Text: "#433422", NavbarFont: "serif"},
	{Id: 4, Name: "forest", Primary: "#389e0d", Background: "#f6ffed", Text: "#1d3557", NavbarFont: "sans-serif"},
}

func ThemeById(id int) (Theme, bool) {
	for _, t := range Themes {
		if t.Id == id {
			return t, true
		}
	}
	return Theme{}, false
}
