package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"estate-backoffice/internal/authorization"
	"estate-backoffice/internal/layout"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string                 `gorm:"uniqueIndex;not null" json:"username"`
	Email    string                 `gorm:"uniqueIndex;not null" json:"email"`
	Password string                 `gorm:"not null" json:"-"`
	Role     authorization.UserRole `gorm:"type:varchar(32);default:'agent'" json:"role"`

	Status string `gorm:"default:'active'" json:"status"`
}

const (
	ImageKindPhoto     = "photo"
	ImageKindFloorplan = "floorplan"

	// DefaultAreaColumns is the gallery column count an area falls back to
	// when none is configured.
	DefaultAreaColumns = 2
)

type Property struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"default:'draft'" json:"status"`
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

	LocationDescription string `gorm:"type:text" json:"location_description"`
	MapImageURL         string `json:"map_image_url"`
	VirtualTourURL      string `json:"virtual_tour_url"`
	VideoURL            string `json:"video_url"`

	AgentID *uint `json:"agent_id"`
	Agent   *User `gorm:"foreignKey:AgentID" json:"agent,omitempty"`

	Images       []PropertyImage   `gorm:"foreignKey:PropertyID" json:"images"`
	Areas        []PropertyArea    `gorm:"foreignKey:PropertyID" json:"areas"`
	Features     []PropertyFeature `gorm:"foreignKey:PropertyID" json:"features"`
	NearbyPlaces []NearbyPlace     `gorm:"foreignKey:PropertyID" json:"nearby_places"`

	CreatedBy uint `json:"created_by"`
}

type PropertyImage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint  `gorm:"not null;index" json:"property_id"`
	AreaID     *uint `gorm:"index" json:"area_id,omitempty"`

	URL        string `gorm:"type:text;not null" json:"url"`
	Kind       string `gorm:"default:'photo'" json:"kind"`
	IsMain     bool   `gorm:"default:false" json:"is_main"`
	IsFeatured bool   `gorm:"default:false" json:"is_featured_image"`
	SortOrder  int    `gorm:"default:0;index" json:"sort_order"`
}

type PropertyArea struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID  uint   `gorm:"not null;index" json:"property_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Columns     int    `gorm:"default:2" json:"columns"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	Images []PropertyImage `gorm:"foreignKey:AreaID" json:"images"`
}

type PropertyFeature struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint   `gorm:"not null;index" json:"property_id"`
	Name       string `gorm:"not null" json:"name"`
	SortOrder  int    `gorm:"default:0" json:"sort_order"`
}

type NearbyPlace struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint   `gorm:"not null;index" json:"property_id"`
	Name       string `gorm:"not null" json:"name"`
	Type       string `gorm:"not null" json:"type"`
	Distance   string `json:"distance"`
}

type AgencySettings struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logo_url"`

	PrimaryColor   string `gorm:"default:'#1a365d'" json:"primary_color"`
	SecondaryColor string `gorm:"default:'#c9a227'" json:"secondary_color"`

	WebsiteURL   string `json:"website_url"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	LinkedInURL  string `json:"linkedin_url"`
}

// HasSocialLinks reports whether the contact page should render the social
// panel.
func (s *AgencySettings) HasSocialLinks() bool {
	return s.WebsiteURL != "" || s.FacebookURL != "" || s.InstagramURL != "" || s.LinkedInURL != ""
}

type BrochureTemplate struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	Sections    TemplateSections `gorm:"type:jsonb" json:"sections"`
	CreatedBy   uint             `gorm:"not null" json:"created_by"`
}

// TemplateSections persists the full section tree as one JSONB document, the
// wholesale save strategy the template store uses.
type TemplateSections []layout.Section

func (ts *TemplateSections) Scan(value interface{}) error {
	if value == nil {
		*ts = TemplateSections{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TemplateSections")
	}
	return json.Unmarshal(bytes, ts)
}

func (ts TemplateSections) Value() (driver.Value, error) {
	if ts == nil {
		ts = TemplateSections{}
	}
	return json.Marshal(ts)
}

type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Type    string `gorm:"not null" json:"type"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`

	Read   bool       `gorm:"default:false;index" json:"read"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}

const (
	ParticipantStatusInvited = "invited"
	ParticipantStatusActive  = "active"
)

type Participant struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint   `gorm:"not null;index" json:"property_id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Role       string `gorm:"default:'viewer'" json:"role"`
	Status     string `gorm:"default:'invited'" json:"status"`
	InvitedBy  uint   `json:"invited_by"`
}

type Document struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID  uint   `gorm:"not null;index" json:"property_id"`
	Name        string `gorm:"not null" json:"name"`
	FileURL     string `gorm:"type:text;not null" json:"file_url"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	UploadedBy  uint   `json:"uploaded_by"`
}

// MainImage resolves the cover slot: the first image flagged as main, else
// the first image in the list, else nil.
func (p *Property) MainImage() *PropertyImage {
	for i := range p.Images {
		if p.Images[i].IsMain {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// FeaturedImages returns the images flagged for the cover grid, in list
// order.
func (p *Property) FeaturedImages() []PropertyImage {
	var out []PropertyImage
	for _, img := range p.Images {
		if img.IsFeatured {
			out = append(out, img)
		}
	}
	return out
}

// Floorplans returns the images recorded as floorplan drawings.
func (p *Property) Floorplans() []PropertyImage {
	var out []PropertyImage
	for _, img := range p.Images {
		if img.Kind == ImageKindFloorplan {
			out = append(out, img)
		}
	}
	return out
}

// HasLocationContent reports whether the location page has anything to show.
func (p *Property) HasLocationContent() bool {
	return p.LocationDescription != "" || p.MapImageURL != "" || len(p.NearbyPlaces) > 0
}
