package models

import "estate-backoffice/internal/layout"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=12,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreatePropertyRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`

	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`

	BuildYear   int    `json:"build_year"`
	PlotSize    int    `json:"plot_size"`
	LivingArea  int    `json:"living_area"`
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	EnergyLabel string `json:"energy_label"`

	LocationDescription string `json:"location_description"`
	MapImageURL         string `json:"map_image_url"`
	VirtualTourURL      string `json:"virtual_tour_url"`
	VideoURL            string `json:"video_url"`

	AgentID *uint `json:"agent_id"`

	Images []ImageRef `json:"images"`
}

type UpdatePropertyRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`

	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`

	BuildYear   *int    `json:"build_year,omitempty"`
	PlotSize    *int    `json:"plot_size,omitempty"`
	LivingArea  *int    `json:"living_area,omitempty"`
	Bedrooms    *int    `json:"bedrooms,omitempty"`
	Bathrooms   *int    `json:"bathrooms,omitempty"`
	EnergyLabel *string `json:"energy_label,omitempty"`

	LocationDescription *string `json:"location_description,omitempty"`
	MapImageURL         *string `json:"map_image_url,omitempty"`
	VirtualTourURL      *string `json:"virtual_tour_url,omitempty"`
	VideoURL            *string `json:"video_url,omitempty"`

	AgentID *uint `json:"agent_id,omitempty"`

	Images *[]ImageRef `json:"images,omitempty"`
}

type CreateAreaRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Columns     int        `json:"columns"`
	Images      []ImageRef `json:"images"`
}

type CreateFeatureRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateNearbyPlaceRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Distance string `json:"distance"`
}

type SaveTemplateRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Sections    []layout.Section `json:"sections"`
}

type ReorderSectionsRequest struct {
	ActiveID string `json:"active_id" binding:"required"`
	OverID   string `json:"over_id" binding:"required"`
}

type UpdateContainerRequest struct {
	Columns      *int                     `json:"columns,omitempty"`
	ColumnWidths *[]int                   `json:"column_widths,omitempty"`
	Elements     *[]layout.ContentElement `json:"elements,omitempty"`
}

type ChangeColumnsRequest struct {
	Columns int `json:"columns" binding:"required,min=1,max=12"`
}

type ChangeColumnWidthRequest struct {
	ColumnIndex int `json:"column_index"`
	Width       int `json:"width" binding:"required,min=1,max=12"`
}

type DropElementRequest struct {
	ColumnIndex int    `json:"column_index"`
	ElementID   string `json:"element_id" binding:"required"`
}

type UpdateSettingsRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	LogoURL *string `json:"logo_url,omitempty"`

	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`

	WebsiteURL   *string `json:"website_url,omitempty"`
	FacebookURL  *string `json:"facebook_url,omitempty"`
	InstagramURL *string `json:"instagram_url,omitempty"`
	LinkedInURL  *string `json:"linkedin_url,omitempty"`
}

type InviteParticipantRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

type CreateDocumentRequest struct {
	Name        string `json:"name" binding:"required"`
	FileURL     string `json:"file_url" binding:"required"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}
