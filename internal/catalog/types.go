package catalog

// Result is one volume from a catalog search, flattened for display and
// for saving into the library.
type Result struct {
	ID          string `json:"id"`           // Google Books volume ID
	Title       string `json:"title"`        // Volume title
	Authors     string `json:"authors"`      // Comma-joined author names
	CoverURL    string `json:"cover_url"`    // Thumbnail URL, https
	PageCount   int    `json:"page_count"`   // 0 when the catalog does not know
	Description string `json:"description"`  // May be empty
}

// volumesResponse is the raw Google Books API response.
type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

// volume is a single item in a volumes response.
type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title       string     `json:"title"`
	Authors     []string   `json:"authors"`
	PageCount   int        `json:"pageCount"`
	Description string     `json:"description"`
	Language    string     `json:"language,omitempty"`
	ImageLinks  imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}
