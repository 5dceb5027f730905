package entity

import "time"

// Post is the aggregate root for the post domain.
// AuthorID is fixed at creation; Deleted is a tombstone flag — deleted posts
// stay in storage but are excluded from feeds and lookups.
type Post struct {
	ID        string
	Title     string
	Content   string
	ImagePath string
	AuthorID  string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the given user is the post's author.
func (p *Post) OwnedBy(userID string) bool { return p.AuthorID == userID }
