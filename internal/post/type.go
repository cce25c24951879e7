package post

// UpdateInput carries the mutable fields of a post.
type UpdateInput struct {
	Title string
	Body  string
}
