package service

import (
	"errors"
	"testing"

	"estate-backoffice/internal/layout"
	"estate-backoffice/internal/models"
	"estate-backoffice/pkg/cache"
)

type fakeTemplateRepo struct {
	saved     []*models.BrochureTemplate
	templates map[uint]*models.BrochureTemplate
	calls     int
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[uint]*models.BrochureTemplate)}
}

func (f *fakeTemplateRepo) Create(t *models.BrochureTemplate) error {
	f.calls++
	if t.ID == 0 {
		t.ID = uint(len(f.templates) + 1)
	}
	f.templates[t.ID] = t
	return nil
}

func (f *fakeTemplateRepo) GetByID(id uint) (*models.BrochureTemplate, error) {
	f.calls++
	t, ok := f.templates[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTemplateRepo) GetAll(offset, limit int) ([]models.BrochureTemplate, int64, error) {
	f.calls++
	return nil, 0, nil
}

func (f *fakeTemplateRepo) Save(t *models.BrochureTemplate) error {
	f.calls++
	if t.ID == 0 {
		t.ID = uint(len(f.templates) + 1)
	}
	f.templates[t.ID] = t
	f.saved = append(f.saved, t)
	return nil
}

func (f *fakeTemplateRepo) Delete(id uint) error {
	f.calls++
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateRepo) Count() (int64, error) {
	return int64(len(f.templates)), nil
}

func newTemplateServiceForTest(repo *fakeTemplateRepo) *TemplateService {
	c, _ := cache.NewCache("", false)
	return NewTemplateService(repo, c, NewEvents())
}

func TestSaveRejectsEmptyNameWithoutTouchingStorage(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newTemplateServiceForTest(repo)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Save(0, models.SaveTemplateRequest{Name: name}, 7)
		if !errors.Is(err, ErrTemplateNameRequired) {
			t.Fatalf("name %q: expected ErrTemplateNameRequired, got %v", name, err)
		}
	}

	if repo.calls != 0 {
		t.Fatalf("rejected saves must not reach the repository, saw %d calls", repo.calls)
	}
}

func TestSaveRejectsMissingActor(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newTemplateServiceForTest(repo)

	_, err := svc.Save(0, models.SaveTemplateRequest{Name: "Standard"}, 0)
	if !errors.Is(err, ErrMissingActor) {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("rejected saves must not reach the repository, saw %d calls", repo.calls)
	}
}

func TestSavePersistsWholeTreeInOneWrite(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newTemplateServiceForTest(repo)

	sections := layout.DefaultSections()
	sections = layout.AddContainer(sections, "2")

	template, err := svc.Save(0, models.SaveTemplateRequest{
		Name:     "Standard brochure",
		Sections: sections,
	}, 7)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("expected exactly one write, got %d", len(repo.saved))
	}
	if template.CreatedBy != 7 {
		t.Fatalf("expected creator 7, got %d", template.CreatedBy)
	}
	if len(template.Sections) != len(sections) {
		t.Fatalf("section tree not persisted wholesale")
	}
}

func TestSaveDefaultsSectionsForNewTemplates(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newTemplateServiceForTest(repo)

	template, err := svc.Save(0, models.SaveTemplateRequest{Name: "Blank"}, 3)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(template.Sections) != 6 {
		t.Fatalf("expected the six standard sections, got %d", len(template.Sections))
	}
}

func TestSavePreservesCreatorOnUpdate(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newTemplateServiceForTest(repo)

	created, err := svc.Save(0, models.SaveTemplateRequest{Name: "Original"}, 3)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Save(created.ID, models.SaveTemplateRequest{Name: "Renamed"}, 9)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.CreatedBy != 3 {
		t.Fatalf("update must keep the original creator, got %d", updated.CreatedBy)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("expected renamed template, got %q", updated.Name)
	}
}

func TestEditorOperationsPersistTransformedTree(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newTemplateServiceForTest(repo)

	created, err := svc.Save(0, models.SaveTemplateRequest{Name: "Editable"}, 3)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	withContainer, err := svc.AddContainer(created.ID, "2")
	if err != nil {
		t.Fatalf("add container failed: %v", err)
	}

	var containerID string
	for _, section := range withContainer.Sections {
		if section.ID == "2" && len(section.Design.Containers) > 0 {
			containerID = section.Design.Containers[0].ID
		}
	}
	if containerID == "" {
		t.Fatalf("container was not added to section 2")
	}

	if _, err := svc.ChangeColumns(created.ID, containerID, models.ChangeColumnsRequest{Columns: 3}); err != nil {
		t.Fatalf("change columns failed: %v", err)
	}

	stored, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("template disappeared: %v", err)
	}
	for _, section := range stored.Sections {
		for _, container := range section.Design.Containers {
			if container.ID == containerID && container.Columns != 3 {
				t.Fatalf("column change was not persisted, got %d", container.Columns)
			}
		}
	}
}

func TestEditorOperationOnUnknownTemplateFails(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newTemplateServiceForTest(repo)

	if _, err := svc.AddContainer(99, "1"); err == nil {
		t.Fatalf("expected an error for an unknown template")
	}
}
