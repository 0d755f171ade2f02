package model

// Theater describes a venue in which movies are screened.  Like
// movies, theaters are immutable once created: the catalog never
// mutates or deletes them within the lifetime of the process.
//
// Fields:
//  ID   – immutable numeric identifier.
//  Name – display name of the theater.
type Theater struct {
	ID   uint32 `json:"id"`   // theater identifier
	Name string `json:"name"` // display name
}
