package content

// Post is a read-only blog entry used for deep-linking into blog views
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt,omitempty"`
}

// PostRepository provides read access to the static blog dataset
type PostRepository interface {
	// FindByID returns the post with the given ID, or shared.ErrNotFound
	FindByID(id int) (*Post, error)

	// All returns every post, newest first
	All() []*Post
}
