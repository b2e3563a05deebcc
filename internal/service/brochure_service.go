package service

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"estate-backoffice/internal/compose"
	"estate-backoffice/internal/models"
	"estate-backoffice/internal/render"
	"estate-backoffice/internal/repository"
	"estate-backoffice/pkg/logger"
)

var (
	brochureMetricsOnce sync.Once
	brochureRunsTotal   *prometheus.CounterVec
	brochureDuration    prometheus.Histogram
	brochurePageCount   prometheus.Histogram
)

func initBrochureMetrics() {
	brochureMetricsOnce.Do(func() {
		brochureRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estate",
			Subsystem: "brochure",
			Name:      "generations_total",
			Help:      "Total brochure generation attempts",
		}, []string{"variant", "status"})

		brochureDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "estate",
			Subsystem: "brochure",
			Name:      "generation_duration_seconds",
			Help:      "Wall time of brochure generation, composition and rendering included",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		})

		brochurePageCount = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "estate",
			Subsystem: "brochure",
			Name:      "pages",
			Help:      "Pages emitted per generated brochure",
			Buckets:   []float64{1, 2, 4, 6, 8, 12, 16, 24},
		})
	})
}

// BrochureService turns a property and the agency settings into a
// finished PDF. Reads go straight to the repository, never through the
// Redis cache: a brochure must always reflect what is in the database
// right now.
type BrochureService struct {
	propertyRepo repository.PropertyRepository
	settingsRepo repository.SettingsRepository
	renderer     *render.Renderer
	measure      compose.MeasureFunc
	events       *Events
}

func NewBrochureService(
	propertyRepo repository.PropertyRepository,
	settingsRepo repository.SettingsRepository,
	renderer *render.Renderer,
	events *Events,
) *BrochureService {
	initBrochureMetrics()

	return &BrochureService{
		propertyRepo: propertyRepo,
		settingsRepo: settingsRepo,
		renderer:     renderer,
		measure:      render.NewMeasure(),
		events:       events,
	}
}

// GeneratedBrochure is a finished render plus the page count reported to
// clients.
type GeneratedBrochure struct {
	PDF   []byte
	Pages int
}

// Generate renders the full portrait brochure for a property.
func (s *BrochureService) Generate(ctx context.Context, propertyID uint, actorID uint) (*GeneratedBrochure, error) {
	return s.generate(ctx, propertyID, actorID, "portrait", func(p *models.Property, settings *models.AgencySettings) (*compose.Document, error) {
		return compose.ComposeDocument(p, settings, compose.Options{Measure: s.measure})
	})
}

// GenerateLandscapeSheet renders the one-page landscape window sheet.
func (s *BrochureService) GenerateLandscapeSheet(ctx context.Context, propertyID uint, actorID uint) (*GeneratedBrochure, error) {
	return s.generate(ctx, propertyID, actorID, "landscape", func(p *models.Property, settings *models.AgencySettings) (*compose.Document, error) {
		return compose.ComposeLandscapeSheet(p, settings, compose.Options{Measure: s.measure})
	})
}

func (s *BrochureService) generate(
	ctx context.Context,
	propertyID uint,
	actorID uint,
	variant string,
	composeFn func(*models.Property, *models.AgencySettings) (*compose.Document, error),
) (*GeneratedBrochure, error) {
	start := time.Now()
	status := "success"
	defer func() {
		brochureRunsTotal.WithLabelValues(variant, status).Inc()
		brochureDuration.Observe(time.Since(start).Seconds())
	}()

	property, err := s.propertyRepo.GetByID(propertyID)
	if err != nil {
		status = "failure"
		return nil, err
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		status = "failure"
		return nil, err
	}

	doc, err := composeFn(property, settings)
	if err != nil {
		status = "failure"
		return nil, err
	}

	pdf, err := s.renderer.Render(ctx, doc)
	if err != nil {
		status = "failure"
		return nil, err
	}

	brochurePageCount.Observe(float64(len(doc.Pages)))

	logger.Info("Brochure generated", map[string]interface{}{
		"property_id": propertyID,
		"variant":     variant,
		"pages":       len(doc.Pages),
		"bytes":       len(pdf),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	s.events.Publish(Event{
		Type:   EventBrochureGenerated,
		UserID: actorID,
		Payload: map[string]interface{}{
			"property_id": propertyID,
			"variant":     variant,
			"pages":       len(doc.Pages),
		},
	})

	return &GeneratedBrochure{PDF: pdf, Pages: len(doc.Pages)}, nil
}

// PreviewPageCount exposes the printed page budget without rendering.
func (s *BrochureService) PreviewPageCount(propertyID uint) (int, error) {
	property, err := s.propertyRepo.GetByID(propertyID)
	if err != nil {
		return 0, err
	}
	return compose.CalculateTotalPages(property), nil
}
