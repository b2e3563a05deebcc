package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate-backoffice/internal/models"
	"estate-backoffice/internal/service"
	"estate-backoffice/pkg/cache"
)

type stubTemplateRepo struct {
	templates map[uint]*models.BrochureTemplate
	writes    int
}

func newStubTemplateRepo() *stubTemplateRepo {
	return &stubTemplateRepo{templates: make(map[uint]*models.BrochureTemplate)}
}

func (s *stubTemplateRepo) Create(t *models.BrochureTemplate) error {
	s.writes++
	if t.ID == 0 {
		t.ID = uint(len(s.templates) + 1)
	}
	s.templates[t.ID] = t
	return nil
}

func (s *stubTemplateRepo) GetByID(id uint) (*models.BrochureTemplate, error) {
	t, ok := s.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *stubTemplateRepo) GetAll(offset, limit int) ([]models.BrochureTemplate, int64, error) {
	return nil, 0, nil
}

func (s *stubTemplateRepo) Save(t *models.BrochureTemplate) error {
	return s.Create(t)
}

func (s *stubTemplateRepo) Delete(id uint) error {
	delete(s.templates, id)
	return nil
}

func (s *stubTemplateRepo) Count() (int64, error) {
	return int64(len(s.templates)), nil
}

func newTestRouter(repo *stubTemplateRepo, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	c, _ := cache.NewCache("", false)
	svc := service.NewTemplateService(repo, c, service.NewEvents())
	handler := NewTemplateHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", userID)
		}
	})
	router.POST("/templates", handler.Create)
	router.GET("/templates/draft", handler.NewDraft)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateTemplateRejectsBlankName(t *testing.T) {
	repo := newStubTemplateRepo()
	router := newTestRouter(repo, 7)

	recorder := postJSON(t, router, "/templates", models.SaveTemplateRequest{Name: "   "})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if repo.writes != 0 {
		t.Fatalf("rejected save must not write, saw %d writes", repo.writes)
	}
}

func TestCreateTemplateWithoutUserIsUnauthorized(t *testing.T) {
	repo := newStubTemplateRepo()
	router := newTestRouter(repo, 0)

	recorder := postJSON(t, router, "/templates", models.SaveTemplateRequest{Name: "Standard"})

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if repo.writes != 0 {
		t.Fatalf("rejected save must not write, saw %d writes", repo.writes)
	}
}

func TestCreateTemplateReturnsPersistedTree(t *testing.T) {
	repo := newStubTemplateRepo()
	router := newTestRouter(repo, 7)

	recorder := postJSON(t, router, "/templates", models.SaveTemplateRequest{Name: "Standard"})

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp struct {
		Template models.BrochureTemplate `json:"template"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Template.Sections) != 6 {
		t.Fatalf("expected the six standard sections, got %d", len(resp.Template.Sections))
	}
	if resp.Template.CreatedBy != 7 {
		t.Fatalf("expected creator 7, got %d", resp.Template.CreatedBy)
	}
}

func TestNewDraftServesCatalog(t *testing.T) {
	router := newTestRouter(newStubTemplateRepo(), 7)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates/draft", nil)
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	for _, key := range []string{"sections", "global_elements", "catalog"} {
		if _, ok := resp[key]; !ok {
			t.Fatalf("draft response missing %q", key)
		}
	}
}
