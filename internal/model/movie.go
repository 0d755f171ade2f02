package model

// Movie describes a film that can be screened in one or more
// theaters.  Movies are identified by an immutable numeric ID and
// carry only display metadata; they are created once and never
// mutated or deleted.
//
// Fields:
//  ID    – immutable numeric identifier.
//  Title – display title of the movie.
type Movie struct {
	ID    uint32 `json:"id"`    // movie identifier
	Title string `json:"title"` // display title
}
