package usecase

// screenshotReply is the JSON the model returns for one screenshot.
type screenshotReply struct {
	Text        string  `json:"text"`
	Destination *string `json:"destination"`
}

// urlReply is the JSON the model returns for a web page.
type urlReply struct {
	Destination   *string  `json:"destination"`
	DurationDays  *float64 `json:"durationDays"`
	ItineraryText string   `json:"itineraryText"`
}

const (
	sourceText        = "text"
	sourceScreenshots = "screenshots"
	sourceURL         = "url"
)
