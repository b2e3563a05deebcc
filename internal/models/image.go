package models

import (
	"encoding/json"
	"fmt"
)

// ImageRef is the canonical image record accepted at the system boundary.
// Historic clients send images either as bare URL strings or as richer
// objects; both forms normalize into this one shape on ingress so nothing
// downstream has to branch on the representation.
type ImageRef struct {
	URL        string `json:"url"`
	Kind       string `json:"kind,omitempty"`
	IsMain     bool   `json:"is_main,omitempty"`
	IsFeatured bool   `json:"is_featured_image,omitempty"`
	AreaID     *uint  `json:"area_id,omitempty"`
	SortOrder  int    `json:"sort_order,omitempty"`
}

func (r *ImageRef) UnmarshalJSON(data []byte) error {
	// Legacy form: a bare URL string.
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		*r = ImageRef{URL: url, Kind: ImageKindPhoto}
		return nil
	}

	type imageRef ImageRef
	var full imageRef
	if err := json.Unmarshal(data, &full); err != nil {
		return fmt.Errorf("image must be a URL string or an image object: %w", err)
	}
	if full.Kind == "" {
		full.Kind = ImageKindPhoto
	}
	*r = ImageRef(full)
	return nil
}

// ToPropertyImage converts a normalized reference into a persisted row.
func (r ImageRef) ToPropertyImage(propertyID uint) PropertyImage {
	kind := r.Kind
	if kind == "" {
		kind = ImageKindPhoto
	}
	return PropertyImage{
		PropertyID: propertyID,
		AreaID:     r.AreaID,
		URL:        r.URL,
		Kind:       kind,
		IsMain:     r.IsMain,
		IsFeatured: r.IsFeatured,
		SortOrder:  r.SortOrder,
	}
}
