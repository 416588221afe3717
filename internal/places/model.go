package places

// SortRating orders results by venue rating, best first. Sent uppercase
// exactly as the API expects.
const SortRating = "RATING"

// SearchRequest describes one venue search.
type SearchRequest struct {
	Query string
	Near  string
	Limit int
	Sort  string
}

// Category is a venue category pair as returned by the API.
type Category struct {
	ID   string `json:"fsq_category_id"`
	Name string `json:"name"`
}

// Location holds the address fields of a venue.
type Location struct {
	FormattedAddress string `json:"formatted_address"`
	Locality         string `json:"locality,omitempty"`
	Region           string `json:"region,omitempty"`
	Country          string `json:"country,omitempty"`
}

// Place is a single venue record from the search provider. The structure is
// owned by the external API and passed through untouched.
type Place struct {
	FsqID      string     `json:"fsq_place_id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories,omitempty"`
	Location   Location   `json:"location"`
	Distance   int        `json:"distance,omitempty"`
	Rating     float32    `json:"rating,omitempty"`
	Price      int        `json:"price,omitempty"`
	Website    string     `json:"website,omitempty"`
	Tel        string     `json:"tel,omitempty"`
}

type searchResponse struct {
	Results []Place `json:"results"`
}
