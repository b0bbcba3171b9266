package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user remark on a product. Content is stored sanitized.
// AuthorName and AuthorPhotoURL are denormalized from the author for listing.
type Comment struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	UserID         uuid.UUID `json:"user_id"`
	Rating         int       `json:"rating"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorName     string    `json:"author_name,omitempty"`
	AuthorPhotoURL string    `json:"author_photo_url,omitempty"`
}
