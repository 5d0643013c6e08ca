package domain

// Genre is reference data for classifying books. Identity is the normalized
// label: two labels that slugify the same way are the same genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
