// Package transitions builds the FFmpeg filter graphs that stitch an
// ordered batch of videos into one output, either with crossfade
// transitions or with hard cuts, and runs the encoder with a fallback
// cascade so a failing transition style degrades to a plain concatenation
// instead of aborting the batch.
package transitions

import (
	"fmt"
	"sort"
)

// Public constants (alphabetical)
const (
	// MaxDuration is the longest allowed transition in seconds.
	MaxDuration = 2.0

	// MinDuration is the shortest allowed transition in seconds.
	MinDuration = 0.25
)

// Public types (alphabetical)

// Transition describes one crossfade style: the xfade filter name it maps
// to, its default length, and the acrossfade curve used when audio is
// blended. The table of transitions is static and never mutated.
type Transition struct {
	// ID is the user-facing transition name.
	ID string

	// FilterName is the xfade transition argument.
	FilterName string

	// DefaultDuration is the transition length in seconds when the caller
	// does not override it.
	DefaultDuration float64

	// AudioCurve is the acrossfade curve applied to both edges.
	AudioCurve string
}

// Private variables (alphabetical)

// catalog holds every supported transition keyed by ID.
var catalog = map[string]Transition{
	"fade":        {ID: "fade", FilterName: "fade", DefaultDuration: 0.5, AudioCurve: "tri"},
	"slide":       {ID: "slide", FilterName: "slideleft", DefaultDuration: 0.7, AudioCurve: "tri"},
	"wipe":        {ID: "wipe", FilterName: "wipeleft", DefaultDuration: 0.6, AudioCurve: "qsin"},
	"dissolve":    {ID: "dissolve", FilterName: "dissolve", DefaultDuration: 0.5, AudioCurve: "exp"},
	"fadeblack":   {ID: "fadeblack", FilterName: "fadeblack", DefaultDuration: 0.4, AudioCurve: "tri"},
	"fadegrays":   {ID: "fadegrays", FilterName: "fadegrays", DefaultDuration: 0.5, AudioCurve: "tri"},
	"smoothleft":  {ID: "smoothleft", FilterName: "smoothleft", DefaultDuration: 0.8, AudioCurve: "tri"},
	"smoothright": {ID: "smoothright", FilterName: "smoothright", DefaultDuration: 0.8, AudioCurve: "tri"},
	"circleopen":  {ID: "circleopen", FilterName: "circleopen", DefaultDuration: 0.6, AudioCurve: "qsin"},
	"circleclose": {ID: "circleclose", FilterName: "circleclose", DefaultDuration: 0.6, AudioCurve: "qsin"},
}

// Public functions (alphabetical)

// ClampDuration limits a transition duration to the supported range.
func ClampDuration(duration float64) float64 {
	if duration < MinDuration {
		return MinDuration
	}
	if duration > MaxDuration {
		return MaxDuration
	}
	return duration
}

// Get looks up a transition by ID.
func Get(id string) (Transition, error) {
	transition, ok := catalog[id]
	if !ok {
		return Transition{}, fmt.Errorf("transitions: unknown transition %q", id)
	}
	return transition, nil
}

// IDs returns the supported transition names in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
