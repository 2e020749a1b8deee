package models

// SavedArticle is a bookmarked article owned by a single user. URL is the
// de-duplication key: one user cannot hold two entries with the same URL.
type SavedArticle struct {
	ID          string `json:"id"`
	UserID      string `json:"-"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}
