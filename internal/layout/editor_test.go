package layout

import (
	"reflect"
	"testing"
)

func sectionIDs(sections []Section) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

func TestReorderSections_MovesToTargetPosition(t *testing.T) {
	sections := DefaultSections()

	got := ReorderSections(sections, "1", "4")

	want := []string{"2", "3", "4", "1", "5", "6"}
	if !reflect.DeepEqual(sectionIDs(got), want) {
		t.Fatalf("expected order %v, got %v", want, sectionIDs(got))
	}
}

func TestReorderSections_IsPermutation(t *testing.T) {
	sections := DefaultSections()
	pairs := [][2]string{{"1", "6"}, {"6", "1"}, {"3", "2"}, {"2", "5"}}

	for _, pair := range pairs {
		got := ReorderSections(sections, pair[0], pair[1])
		if len(got) != len(sections) {
			t.Fatalf("reorder %v changed length: %d", pair, len(got))
		}

		seen := map[string]int{}
		for _, id := range sectionIDs(got) {
			seen[id]++
		}
		for _, s := range sections {
			if seen[s.ID] != 1 {
				t.Fatalf("reorder %v: section %q appears %d times", pair, s.ID, seen[s.ID])
			}
		}

		// Remaining sections keep their original relative order.
		var rest []string
		for _, id := range sectionIDs(got) {
			if id != pair[0] {
				rest = append(rest, id)
			}
		}
		var original []string
		for _, s := range sections {
			if s.ID != pair[0] {
				original = append(original, s.ID)
			}
		}
		if !reflect.DeepEqual(rest, original) {
			t.Fatalf("reorder %v disturbed relative order: %v", pair, rest)
		}
	}
}

func TestReorderSections_SameIDIsNoOp(t *testing.T) {
	sections := DefaultSections()

	got := ReorderSections(sections, "3", "3")

	if !reflect.DeepEqual(got, sections) {
		t.Fatalf("expected unchanged list, got %v", sectionIDs(got))
	}
}

func TestReorderSections_UnknownIDIsNoOp(t *testing.T) {
	sections := DefaultSections()

	if got := ReorderSections(sections, "missing", "2"); !reflect.DeepEqual(got, sections) {
		t.Fatalf("unknown active id should leave list unchanged")
	}
	if got := ReorderSections(sections, "2", "missing"); !reflect.DeepEqual(got, sections) {
		t.Fatalf("unknown over id should leave list unchanged")
	}
}

func TestAddContainer_AppendsDefaultContainer(t *testing.T) {
	sections := DefaultSections()

	got := AddContainer(sections, "2")
	got = AddContainer(got, "2")

	details := got[1]
	if details.ID != "2" {
		t.Fatalf("expected section '2' at index 1, got %q", details.ID)
	}
	if len(details.Design.Containers) != 2 {
		t.Fatalf("expected 2 containers, got %d", len(details.Design.Containers))
	}
	for _, c := range details.Design.Containers {
		if c.Columns != 1 {
			t.Fatalf("expected 1 column, got %d", c.Columns)
		}
		if !reflect.DeepEqual(c.ColumnWidths, []int{1}) {
			t.Fatalf("expected column widths [1], got %v", c.ColumnWidths)
		}
		if len(c.Elements) != 0 {
			t.Fatalf("expected no elements, got %d", len(c.Elements))
		}
	}
	if details.Design.Containers[0].ID == details.Design.Containers[1].ID {
		t.Fatalf("container ids must be distinct")
	}

	for i, s := range got {
		if s.ID == "2" {
			continue
		}
		if !reflect.DeepEqual(s, sections[i]) {
			t.Fatalf("section %q changed unexpectedly", s.ID)
		}
	}
}

func TestAddContainer_UnknownSectionIsNoOp(t *testing.T) {
	sections := DefaultSections()

	if got := AddContainer(sections, "99"); !reflect.DeepEqual(got, sections) {
		t.Fatalf("unknown section id should leave list unchanged")
	}
}

func TestUpdateContainer_MergesOnlyProvidedFields(t *testing.T) {
	sections := AddContainer(DefaultSections(), "2")
	containerID := sections[1].Design.Containers[0].ID

	cols := 3
	got := UpdateContainer(sections, "2", containerID, ContainerUpdate{Columns: &cols})

	container := got[1].Design.Containers[0]
	if container.Columns != 3 {
		t.Fatalf("expected columns 3, got %d", container.Columns)
	}
	// Widths were not part of the update, so they stay out of sync on purpose.
	if !reflect.DeepEqual(container.ColumnWidths, []int{1}) {
		t.Fatalf("expected widths untouched, got %v", container.ColumnWidths)
	}
}

func TestUpdateContainer_UnknownIDsAreNoOps(t *testing.T) {
	sections := AddContainer(DefaultSections(), "2")
	containerID := sections[1].Design.Containers[0].ID
	cols := 2

	if got := UpdateContainer(sections, "99", containerID, ContainerUpdate{Columns: &cols}); !reflect.DeepEqual(got, sections) {
		t.Fatalf("unknown section id should leave list unchanged")
	}
	if got := UpdateContainer(sections, "2", "missing", ContainerUpdate{Columns: &cols}); !reflect.DeepEqual(got, sections) {
		t.Fatalf("unknown container id should leave list unchanged")
	}
}

func TestDeleteContainer_RemovesMatchingContainer(t *testing.T) {
	sections := AddContainer(AddContainer(DefaultSections(), "2"), "2")
	first := sections[1].Design.Containers[0].ID
	second := sections[1].Design.Containers[1].ID

	got := DeleteContainer(sections, "2", first)

	containers := got[1].Design.Containers
	if len(containers) != 1 || containers[0].ID != second {
		t.Fatalf("expected only container %q to remain, got %v", second, containers)
	}

	if got := DeleteContainer(sections, "2", "missing"); !reflect.DeepEqual(got, sections) {
		t.Fatalf("unknown container id should leave list unchanged")
	}
}

func TestChangeColumns_ResetsWidthsToOne(t *testing.T) {
	sections := AddContainer(DefaultSections(), "2")
	containerID := sections[1].Design.Containers[0].ID
	sections = ChangeColumnWidth(ChangeColumns(sections, containerID, 2), containerID, 0, 7)

	for _, n := range []int{1, 2, 4} {
		got := ChangeColumns(sections, containerID, n)
		widths := got[1].Design.Containers[0].ColumnWidths
		if len(widths) != n {
			t.Fatalf("expected %d widths, got %d", n, len(widths))
		}
		for i, w := range widths {
			if w != 1 {
				t.Fatalf("expected width 1 at index %d, got %d", i, w)
			}
		}
	}
}

func TestChangeColumnWidth_SetsSingleEntry(t *testing.T) {
	sections := AddContainer(DefaultSections(), "2")
	containerID := sections[1].Design.Containers[0].ID
	sections = ChangeColumns(sections, containerID, 3)

	got := ChangeColumnWidth(sections, containerID, 1, 8)

	if !reflect.DeepEqual(got[1].Design.Containers[0].ColumnWidths, []int{1, 8, 1}) {
		t.Fatalf("expected widths [1 8 1], got %v", got[1].Design.Containers[0].ColumnWidths)
	}
}

func TestDropElement_AlwaysCreatesTextElement(t *testing.T) {
	sections := AddContainer(DefaultSections(), "2")
	containerID := sections[1].Design.Containers[0].ID

	// The dragged catalog entry's type is ignored: every drop yields a
	// generic text element.
	got := DropElement(sections, containerID, 0, "global-featured-image")

	elements := got[1].Design.Containers[0].Elements
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	el := elements[0]
	if el.Type != ElementText {
		t.Fatalf("expected type %q, got %q", ElementText, el.Type)
	}
	if el.Title != "New Element" {
		t.Fatalf("expected title 'New Element', got %q", el.Title)
	}
	if el.ColumnIndex == nil || *el.ColumnIndex != 0 {
		t.Fatalf("expected column index 0, got %v", el.ColumnIndex)
	}
	if el.ID == "" {
		t.Fatalf("expected a generated element id")
	}
}

func TestDropElement_UnknownContainerIsNoOp(t *testing.T) {
	sections := DefaultSections()

	if got := DropElement(sections, "missing", 0, "x"); !reflect.DeepEqual(got, sections) {
		t.Fatalf("unknown container id should leave list unchanged")
	}
}

func TestEditorDoesNotMutateInput(t *testing.T) {
	sections := AddContainer(DefaultSections(), "2")
	containerID := sections[1].Design.Containers[0].ID
	before := cloneSections(sections)

	ChangeColumns(sections, containerID, 4)
	DropElement(sections, containerID, 0, "x")
	DeleteContainer(sections, "2", containerID)
	ReorderSections(sections, "1", "6")

	if !reflect.DeepEqual(sections, before) {
		t.Fatalf("editor operations mutated their input")
	}
}
