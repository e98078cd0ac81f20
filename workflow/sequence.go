// Package workflow orchestrates batch processing: it validates the
// user-authored stitching plan, derives target specs, runs the encoder per
// sequence item, and reports progress over a channel so a UI or CLI can
// render it without sharing mutable state with the worker.
package workflow

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Public types (alphabetical)

// Item is one planned output: a client video followed by template segments
// stitched after it, in order.
type Item struct {
	// ClientVideo is the path of the client-supplied source video.
	ClientVideo string

	// Templates are the template segments appended after the client video.
	Templates []Template
}

// Sequence is the ordered stitching plan for one batch. It is created when
// the user adds client files, mutated by add, remove, and move operations,
// and consumed once at export time.
type Sequence struct {
	items []Item
}

// Template is one template segment with its display color for the plan UI.
type Template struct {
	// Path is the template video's path.
	Path string

	// DisplayColor is the color tag shown in the plan listing.
	DisplayColor string
}

// Public methods (alphabetical)

// Add appends an item to the plan.
func (s *Sequence) Add(item Item) {
	s.items = append(s.items, item)
}

// Inputs returns the encoder input list for the item at index: the client
// video followed by its templates.
func (s *Sequence) Inputs(index int) ([]string, error) {
	if index < 0 || index >= len(s.items) {
		return nil, fmt.Errorf("workflow: item index %d out of range", index)
	}

	item := s.items[index]
	inputs := make([]string, 0, 1+len(item.Templates))
	inputs = append(inputs, item.ClientVideo)
	for _, template := range item.Templates {
		inputs = append(inputs, template.Path)
	}
	return inputs, nil
}

// Items returns the planned items in order.
func (s *Sequence) Items() []Item {
	return s.items
}

// Len returns the number of planned items.
func (s *Sequence) Len() int {
	return len(s.items)
}

// Move relocates the item at from to position to, shifting the items in
// between.
func (s *Sequence) Move(from, to int) error {
	if from < 0 || from >= len(s.items) || to < 0 || to >= len(s.items) {
		return fmt.Errorf("workflow: move %d -> %d out of range", from, to)
	}
	if from == to {
		return nil
	}

	item := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)

	rest := append([]Item{item}, s.items[to:]...)
	s.items = append(s.items[:to], rest...)
	return nil
}

// Remove deletes the item at index.
func (s *Sequence) Remove(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("workflow: item index %d out of range", index)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Validate rejects a plan that cannot be processed: no items, an item with
// no client video, or a non-video input anywhere.
func (s *Sequence) Validate() error {
	if len(s.items) == 0 {
		return fmt.Errorf("workflow: no files selected")
	}

	for i, item := range s.items {
		if strings.TrimSpace(item.ClientVideo) == "" {
			return fmt.Errorf("workflow: item %d has no client video", i+1)
		}
		if !isVideoFile(item.ClientVideo) {
			return fmt.Errorf("workflow: %s is not a supported video file", item.ClientVideo)
		}
		for _, template := range item.Templates {
			if !isVideoFile(template.Path) {
				return fmt.Errorf("workflow: %s is not a supported video file", template.Path)
			}
		}
	}
	return nil
}

// Private functions (alphabetical)

// isVideoFile reports whether the path carries a supported video extension.
func isVideoFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".m4v", ".avi", ".mkv", ".webm":
		return true
	}
	return false
}
