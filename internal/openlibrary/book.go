package openlibrary

// Book is a single entry of the "docs" array returned by search.json.
// Zero values mean the field was absent in the response.
type Book struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	Authors          []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverID          int      `json:"cover_i"`
}

type searchResponse struct {
	Docs []Book `json:"docs"`
}
