package dto

import "rewards-banner-service/internal/core/domain"

// PublisherKeyURI binds the :publisher_key path parameter.
type PublisherKeyURI struct {
	PublisherKey string `uri:"publisher_key" binding:"required,max=256,publisher_key"`
}

// BannerResponse is the presentation-layer view of a banner.
// Links is null when the banner carried no links.
type BannerResponse struct {
	PublisherKey string            `json:"publisher_key"`
	Title        string            `json:"title"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Background   string            `json:"background"`
	Logo         string            `json:"logo"`
	Provider     string            `json:"provider"`
	Links        map[string]string `json:"links"`
	Status       int32             `json:"status"`
	StatusName   string            `json:"status_name"`
	StatusKnown  bool              `json:"status_known"`
}

// NewBannerResponse builds the view from a banner.
func NewBannerResponse(b *domain.Banner) BannerResponse {
	return BannerResponse{
		PublisherKey: b.PublisherKey(),
		Title:        b.Title(),
		Name:         b.Name(),
		Description:  b.Description(),
		Background:   b.Background(),
		Logo:         b.Logo(),
		Provider:     b.Provider(),
		Links:        b.Links().Map(),
		Status:       b.Status().Raw(),
		StatusName:   b.Status().String(),
		StatusKnown:  b.Status().IsKnown(),
	}
}
