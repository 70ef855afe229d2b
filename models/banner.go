package models

import "time"

// Banner placement positions.
const (
	BannerHero    = "hero"
	BannerSidebar = "sidebar"
	BannerFooter  = "footer"
)

// Banner is a promotional content unit shown on the storefront.
type Banner struct {
	BannerID  string    `json:"bannerid" bson:"bannerid"`
	Title     string    `json:"title" bson:"title"`
	Subtitle  string    `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	ImageURL  string    `json:"imageUrl" bson:"imageUrl"`
	Link      string    `json:"link,omitempty" bson:"link,omitempty"`
	Position  string    `json:"position" bson:"position"`
	IsActive  bool      `json:"isActive" bson:"isActive"`
	Priority  int       `json:"priority" bson:"priority"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
