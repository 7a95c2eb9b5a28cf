package googleplaces

// SearchTextRequest is the body of a places:searchText call.
type SearchTextRequest struct {
	TextQuery      string `json:"textQuery"`
	MaxResultCount int    `json:"maxResultCount,omitempty"`
	LanguageCode   string `json:"languageCode,omitempty"`
	RegionCode     string `json:"regionCode,omitempty"`
}

type SearchTextResponse struct {
	Places []Place `json:"places"`
}

type Place struct {
	ID                string             `json:"id"`
	DisplayName       *LocalizedText     `json:"displayName,omitempty"`
	FormattedAddress  string             `json:"formattedAddress"`
	Location          *LatLng            `json:"location,omitempty"`
	AddressComponents []AddressComponent `json:"addressComponents,omitempty"`
	Types             []string           `json:"types,omitempty"`
	PrimaryType       string             `json:"primaryType,omitempty"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AddressComponent struct {
	LongText  string   `json:"longText"`
	ShortText string   `json:"shortText"`
	Types     []string `json:"types"`
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
