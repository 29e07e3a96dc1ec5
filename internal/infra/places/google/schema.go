package google

// Upstream statuses that matter to the gateway.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// nearbySearchResponse is the body of place/nearbysearch/json.
type nearbySearchResponse struct {
	Results       []placeResult `json:"results"`
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

// placeDetailsResponse is the body of place/details/json.
type placeDetailsResponse struct {
	Result       placeResult `json:"result"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

// placeResult covers both nearby and details records. Nearby results carry
// vicinity, details carry formatted_address and the contact fields.
type placeResult struct {
	PlaceID              string         `json:"place_id"`
	Name                 string         `json:"name"`
	Vicinity             string         `json:"vicinity,omitempty"`
	FormattedAddress     string         `json:"formatted_address,omitempty"`
	FormattedPhoneNumber string         `json:"formatted_phone_number,omitempty"`
	Website              string         `json:"website,omitempty"`
	URL                  string         `json:"url,omitempty"`
	Rating               *float64       `json:"rating,omitempty"`
	UserRatingsTotal     *int           `json:"user_ratings_total,omitempty"`
	PriceLevel           *int           `json:"price_level,omitempty"`
	Types                []string       `json:"types"`
	Photos               []photoResult  `json:"photos,omitempty"`
	OpeningHours         *openingHours  `json:"opening_hours,omitempty"`
	Geometry             geometry       `json:"geometry"`
	Reviews              []reviewResult `json:"reviews,omitempty"`
}

type photoResult struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type openingHours struct {
	OpenNow     bool     `json:"open_now"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type reviewResult struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relative_time_description"`
}

// geocodeResponse is the body of geocode/json.
type geocodeResponse struct {
	Results      []geocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []addressComponent `json:"address_components"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}
