package models

import (
	"encoding/json"
	"testing"
)

func TestImageRef_UnmarshalBareString(t *testing.T) {
	var ref ImageRef
	if err := json.Unmarshal([]byte(`"https://cdn.example.com/front.jpg"`), &ref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.URL != "https://cdn.example.com/front.jpg" {
		t.Fatalf("unexpected url: %q", ref.URL)
	}
	if ref.Kind != ImageKindPhoto {
		t.Fatalf("expected kind %q, got %q", ImageKindPhoto, ref.Kind)
	}
	if ref.IsMain || ref.IsFeatured {
		t.Fatalf("bare string must not carry flags")
	}
}

func TestImageRef_UnmarshalObject(t *testing.T) {
	var ref ImageRef
	payload := `{"url":"https://cdn.example.com/plan.png","kind":"floorplan","is_main":true}`
	if err := json.Unmarshal([]byte(payload), &ref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.URL != "https://cdn.example.com/plan.png" || ref.Kind != ImageKindFloorplan || !ref.IsMain {
		t.Fatalf("object form not preserved: %+v", ref)
	}
}

func TestImageRef_UnmarshalMixedList(t *testing.T) {
	var refs []ImageRef
	payload := `["https://cdn.example.com/a.jpg",{"url":"https://cdn.example.com/b.jpg","is_featured_image":true}]`
	if err := json.Unmarshal([]byte(payload), &refs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].URL != "https://cdn.example.com/a.jpg" || refs[0].IsFeatured {
		t.Fatalf("unexpected first ref: %+v", refs[0])
	}
	if !refs[1].IsFeatured {
		t.Fatalf("expected second ref to be featured")
	}
}

func TestImageRef_RejectsInvalidShape(t *testing.T) {
	var ref ImageRef
	if err := json.Unmarshal([]byte(`42`), &ref); err == nil {
		t.Fatalf("expected error for numeric image value")
	}
}

func TestProperty_MainImageFallback(t *testing.T) {
	p := Property{Images: []PropertyImage{
		{URL: "u1"},
		{URL: "u2", IsMain: true},
	}}
	if img := p.MainImage(); img == nil || img.URL != "u2" {
		t.Fatalf("expected flagged main image, got %+v", img)
	}

	p = Property{Images: []PropertyImage{{URL: "u1"}, {URL: "u2"}}}
	if img := p.MainImage(); img == nil || img.URL != "u1" {
		t.Fatalf("expected first image fallback, got %+v", img)
	}

	p = Property{}
	if img := p.MainImage(); img != nil {
		t.Fatalf("expected nil for property without images")
	}
}
