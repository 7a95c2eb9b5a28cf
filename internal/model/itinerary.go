package model

// PlaceSourceUser marks a place typed or pasted by the traveller.
const PlaceSourceUser = "user"

// DayGroup is one day's worth of parsed place candidates.
type DayGroup struct {
	Label  string        `json:"label"`
	Date   *string       `json:"date"`
	Places []ParsedPlace `json:"places"`
}

// ParsedPlace is a place-candidate line after markup and time-prefix stripping.
type ParsedPlace struct {
	Name     string  `json:"name"`
	Source   string  `json:"source"`
	Notes    *string `json:"notes"`
	TimeText *string `json:"timeText"`
}

// ParseResult is the structured outcome of parsing raw itinerary text.
type ParseResult struct {
	CleanedRequest string     `json:"cleanedRequest"`
	PreviewText    string     `json:"previewText"`
	Destination    *string    `json:"destination"`
	Days           []DayGroup `json:"days"`
	Warnings       []string   `json:"warnings"`
}

// PlaceCount returns the number of places across all day groups.
func (r ParseResult) PlaceCount() int {
	n := 0
	for _, d := range r.Days {
		n += len(d.Places)
	}
	return n
}
