package models

import "time"

// Link is a single entry of a bundle. Links are stored inline with their
// bundle and only change through a patch of the whole bundle.
type Link struct {
	ID          string `json:"id"`
	URL         string `json:"url" validate:"omitempty,url"`
	Title       string `json:"title,omitempty" validate:"max=512"`
	Description string `json:"description,omitempty" validate:"max=2048"`
	Image       string `json:"image,omitempty" validate:"omitempty,url"`
}

// LinkBundle is a named, owned collection of links published under a vanity URL.
type LinkBundle struct {
	// ID is the primary key. Callers may supply it; otherwise the service assigns a UUID.
	ID string `gorm:"primaryKey;size:64" json:"id"`

	// UserID is the owner handle. It is always overwritten from the resolved identity.
	UserID string `gorm:"index;size:128" json:"userId"`

	// VanityURL is the public lookup key, unique and lowercase.
	VanityURL string `gorm:"uniqueIndex;size:255;not null" json:"vanityUrl" validate:"required,vanityurl,lowercase"`

	Description string `gorm:"size:2048" json:"description" validate:"max=2048"`

	// Links keeps its order and is serialized into a single column so that a
	// bundle is always written by one statement.
	Links []Link `gorm:"serializer:json" json:"links" validate:"dive"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// BundleSummary is the per-user listing projection. It exposes the link
// count instead of the links themselves.
type BundleSummary struct {
	UserID      string `json:"userId"`
	VanityURL   string `json:"vanityUrl"`
	Description string `json:"description"`
	LinkCount   int    `json:"linkCount"`
}

// Summary projects a bundle to its listing form.
func (b *LinkBundle) Summary() BundleSummary {
	return BundleSummary{
		UserID:      b.UserID,
		VanityURL:   b.VanityURL,
		Description: b.Description,
		LinkCount:   len(b.Links),
	}
}
