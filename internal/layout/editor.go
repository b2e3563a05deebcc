package layout

import "github.com/google/uuid"

// Editor operations are total functions over the in-memory section tree: an
// id that does not resolve yields the input list unchanged, never an error.
// Untouched sections are shared between input and output; mutated sections
// (and their containers) are copied before editing.

// ContainerUpdate carries the fields UpdateContainer shallow-merges into a
// container. Nil fields are left untouched.
type ContainerUpdate struct {
	Columns      *int              `json:"columns,omitempty"`
	ColumnWidths *[]int            `json:"columnWidths,omitempty"`
	Elements     *[]ContentElement `json:"elements,omitempty"`
}

// ReorderSections removes the section with activeID from its current
// position and reinserts it at the index occupied by overID, preserving all
// other relative orderings. Calling it with activeID == overID, or with an id
// that is not present, returns the input unchanged.
func ReorderSections(sections []Section, activeID, overID string) []Section {
	if activeID == overID {
		return sections
	}

	from, to := -1, -1
	for i, s := range sections {
		switch s.ID {
		case activeID:
			from = i
		case overID:
			to = i
		}
	}
	if from == -1 || to == -1 {
		return sections
	}

	out := make([]Section, 0, len(sections))
	out = append(out, sections[:from]...)
	out = append(out, sections[from+1:]...)

	moved := sections[from]
	out = append(out[:to], append([]Section{moved}, out[to:]...)...)
	return out
}

// AddContainer appends a single-column container with a fresh id to the
// target section's design.
func AddContainer(sections []Section, sectionID string) []Section {
	idx := sectionIndex(sections, sectionID)
	if idx == -1 {
		return sections
	}

	out := cloneSections(sections)
	section := &out[idx]
	section.Design.Containers = append(section.Design.Containers, Container{
		ID:           uuid.New().String(),
		Columns:      1,
		ColumnWidths: []int{1},
		Elements:     []ContentElement{},
	})
	return out
}

// UpdateContainer shallow-merges upd into the matching container.
func UpdateContainer(sections []Section, sectionID, containerID string, upd ContainerUpdate) []Section {
	idx := sectionIndex(sections, sectionID)
	if idx == -1 {
		return sections
	}
	cIdx := containerIndex(sections[idx].Design.Containers, containerID)
	if cIdx == -1 {
		return sections
	}

	out := cloneSections(sections)
	container := &out[idx].Design.Containers[cIdx]
	if upd.Columns != nil {
		container.Columns = *upd.Columns
	}
	if upd.ColumnWidths != nil {
		container.ColumnWidths = *upd.ColumnWidths
	}
	if upd.Elements != nil {
		container.Elements = *upd.Elements
	}
	return out
}

// DeleteContainer removes the container with containerID from the section's
// design.
func DeleteContainer(sections []Section, sectionID, containerID string) []Section {
	idx := sectionIndex(sections, sectionID)
	if idx == -1 {
		return sections
	}
	cIdx := containerIndex(sections[idx].Design.Containers, containerID)
	if cIdx == -1 {
		return sections
	}

	out := cloneSections(sections)
	containers := out[idx].Design.Containers
	out[idx].Design.Containers = append(containers[:cIdx], containers[cIdx+1:]...)
	return out
}

// ChangeColumns sets the container's column count and resets every column
// width to 1. Existing custom weights are discarded; elements whose
// ColumnIndex now exceeds the new bound are left dangling rather than
// reassigned.
func ChangeColumns(sections []Section, containerID string, columns int) []Section {
	sIdx, cIdx := findContainer(sections, containerID)
	if sIdx == -1 {
		return sections
	}

	out := cloneSections(sections)
	container := &out[sIdx].Design.Containers[cIdx]
	container.Columns = columns
	widths := make([]int, columns)
	for i := range widths {
		widths[i] = 1
	}
	container.ColumnWidths = widths
	return out
}

// ChangeColumnWidth sets a single column weight. The value is expected in the
// 1-12 range but is not clamped here; range enforcement is a UI concern.
func ChangeColumnWidth(sections []Section, containerID string, columnIndex, width int) []Section {
	sIdx, cIdx := findContainer(sections, containerID)
	if sIdx == -1 {
		return sections
	}
	if columnIndex < 0 || columnIndex >= len(sections[sIdx].Design.Containers[cIdx].ColumnWidths) {
		return sections
	}

	out := cloneSections(sections)
	out[sIdx].Design.Containers[cIdx].ColumnWidths[columnIndex] = width
	return out
}

// DropElement appends a new element to the target container at the given
// column. Every drop produces a generic text element titled "New Element";
// the dragged catalog entry's semantic type is deliberately not carried over.
func DropElement(sections []Section, containerID string, columnIndex int, _ string) []Section {
	sIdx, cIdx := findContainer(sections, containerID)
	if sIdx == -1 {
		return sections
	}

	out := cloneSections(sections)
	col := columnIndex
	out[sIdx].Design.Containers[cIdx].Elements = append(
		out[sIdx].Design.Containers[cIdx].Elements,
		ContentElement{
			ID:          uuid.New().String(),
			Type:        ElementText,
			Title:       "New Element",
			ColumnIndex: &col,
		},
	)
	return out
}

func sectionIndex(sections []Section, id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func containerIndex(containers []Container, id string) int {
	for i, c := range containers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func findContainer(sections []Section, containerID string) (int, int) {
	for i, s := range sections {
		for j, c := range s.Design.Containers {
			if c.ID == containerID {
				return i, j
			}
		}
	}
	return -1, -1
}

func cloneSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	for i := range out {
		containers := make([]Container, len(out[i].Design.Containers))
		copy(containers, out[i].Design.Containers)
		for j := range containers {
			widths := make([]int, len(containers[j].ColumnWidths))
			copy(widths, containers[j].ColumnWidths)
			containers[j].ColumnWidths = widths

			elements := make([]ContentElement, len(containers[j].Elements))
			copy(elements, containers[j].Elements)
			containers[j].Elements = elements
		}
		out[i].Design.Containers = containers
	}
	return out
}
