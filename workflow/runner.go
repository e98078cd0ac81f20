// Package workflow orchestrates batch processing.
package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TalQualityScore/AI-Automation-sub001/config"
	"github.com/TalQualityScore/AI-Automation-sub001/ffmpeg"
	"github.com/TalQualityScore/AI-Automation-sub001/naming"
	"github.com/TalQualityScore/AI-Automation-sub001/report"
	"github.com/TalQualityScore/AI-Automation-sub001/transitions"
)

// Public types (alphabetical)

// Event reports worker progress for one sequence item. Events flow over a
// channel from the single worker goroutine to whoever renders progress, so
// no state is shared across the boundary.
type Event struct {
	// Err is non-nil when the item failed. Processing continues with the
	// next item.
	Err error

	// Index is the 1-based item number.
	Index int

	// OutputName is the generated output filename, set once known.
	OutputName string

	// Stage is the item's current stage: "probing", "encoding", or "done".
	Stage string

	// Total is the number of items in the batch.
	Total int

	// UsedFallback is true when the item was produced by the hard-cut
	// fallback after a failed crossfade.
	UsedFallback bool
}

// Request describes one batch run.
type Request struct {
	// OutputDir is where outputs and the breakdown report are written.
	OutputDir string

	// Mode is the processing mode the outputs are named for.
	Mode naming.Mode

	// ProjectName is the cleaned project title.
	ProjectName string

	// Sequence is the validated stitching plan.
	Sequence *Sequence

	// TransitionDuration is the transition length in seconds; zero selects
	// the transition's default.
	TransitionDuration float64

	// TransitionID names the transition style.
	TransitionID string
}

// Runner executes a batch sequentially on one worker goroutine. Items are
// processed in plan order and outputs numbered v01, v02, ... matching that
// order; there is no parallel encoding within a batch.
type Runner struct {
	cfg       *config.Config
	generator *naming.Generator
	prober    *ffmpeg.Prober
	processor *transitions.Processor
}

// Public functions (alphabetical)

// NewRunner creates a Runner from a detected FFmpeg installation.
func NewRunner(cfg *config.Config, info *ffmpeg.FFmpegInfo) (*Runner, error) {
	prober, err := ffmpeg.NewProber(info)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:       cfg,
		generator: naming.NewGenerator(&cfg.Naming),
		prober:    prober,
		processor: transitions.NewProcessor(info.Path, prober, &cfg.Encoding),
	}, nil
}

// Public methods (alphabetical)

// Run validates the request and processes every sequence item, sending an
// Event per stage on the returned channel. The channel is closed when the
// batch finishes or the context is canceled. The breakdown report covers
// only the items that succeeded and is written after the last item, so a
// failed batch never leaves a report describing files that do not exist.
func (r *Runner) Run(ctx context.Context, req *Request) (<-chan Event, error) {
	if strings.TrimSpace(req.ProjectName) == "" {
		return nil, fmt.Errorf("workflow: empty project name")
	}
	if req.Sequence == nil {
		return nil, fmt.Errorf("workflow: no sequence")
	}
	if err := req.Sequence.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("workflow: creating output dir: %w", err)
	}

	transitionID := req.TransitionID
	if transitionID == "" {
		transitionID = r.cfg.Transitions.DefaultType
	}
	if _, err := transitions.Get(transitionID); err != nil {
		return nil, err
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		r.process(ctx, req, transitionID, events)
	}()
	return events, nil
}

// Private methods (alphabetical)

// process runs the batch on the worker goroutine.
func (r *Runner) process(ctx context.Context, req *Request, transitionID string, events chan<- Event) {
	items := req.Sequence.Items()
	total := len(items)

	breakdown := &report.Report{GeneratedAt: time.Now()}

	for i := range items {
		if !emit(ctx, events, Event{Index: i + 1, Total: total, Stage: "probing"}) {
			return
		}

		entry, event := r.processItem(ctx, req, transitionID, i, total, events)
		if ctx.Err() != nil {
			return
		}
		if entry != nil {
			breakdown.Entries = append(breakdown.Entries, *entry)
		}
		if !emit(ctx, events, event) {
			return
		}
	}

	if len(breakdown.Entries) > 0 {
		if _, err := breakdown.WriteFile(req.OutputDir); err != nil {
			emit(ctx, events, Event{Index: total, Total: total, Stage: "done", Err: err})
		}
	}
}

// processItem stitches one sequence item and returns its report entry plus
// the terminal event for it.
func (r *Runner) processItem(ctx context.Context, req *Request, transitionID string, index, total int, events chan<- Event) (*report.Entry, Event) {
	item := req.Sequence.Items()[index]
	done := Event{Index: index + 1, Total: total, Stage: "done"}

	inputs, err := req.Sequence.Inputs(index)
	if err != nil {
		done.Err = err
		return nil, done
	}

	spec, err := r.prober.DetermineTargetSpecs(ctx, inputs)
	if err != nil {
		done.Err = err
		return nil, done
	}

	outputName := r.generator.GenerateOutputName(req.ProjectName, item.ClientVideo, req.Mode, index+1, "")
	outputPath := filepath.Join(req.OutputDir, outputName+".mp4")
	done.OutputName = outputName

	if !emit(ctx, events, Event{Index: index + 1, Total: total, Stage: "encoding", OutputName: outputName}) {
		return nil, done
	}

	result, err := r.processor.Apply(ctx, inputs, outputPath, spec, transitionID, req.TransitionDuration)
	if err != nil {
		done.Err = err
		return nil, done
	}
	done.UsedFallback = result.UsedFallback

	return r.reportEntry(ctx, item, inputs, result, transitionID, req.TransitionDuration, outputName, outputPath), done
}

// reportEntry builds the breakdown entry for a finished item.
func (r *Runner) reportEntry(ctx context.Context, item Item, inputs []string, result *transitions.Result, transitionID string, requestedDuration float64, outputName, outputPath string) *report.Entry {
	transitionDuration := requestedDuration
	if transitionDuration <= 0 {
		if transition, err := transitions.Get(transitionID); err == nil {
			transitionDuration = transition.DefaultDuration
		} else {
			transitionDuration = r.cfg.Transitions.DefaultDuration
		}
	}
	transitionDuration = transitions.ClampDuration(transitionDuration)
	if result.UsedFallback {
		// Hard cuts have no overlap between segments.
		transitionDuration = 0
	}

	entry := &report.Entry{
		OutputName:         outputName,
		Composition:        compositionLabel(item),
		SourceFile:         item.ClientVideo,
		TransitionDuration: transitionDuration,
	}

	for i, input := range inputs {
		duration := 0.0
		if i < len(result.Durations) {
			duration = result.Durations[i]
		}
		entry.Segments = append(entry.Segments, report.Segment{
			Label:    filepath.Base(input),
			Duration: duration,
		})
		entry.TotalDuration += duration
	}
	if n := len(inputs); n > 1 && !result.UsedFallback {
		entry.TotalDuration -= float64(n-1) * transitionDuration
	}

	if info, err := r.prober.GetVideoInfo(ctx, outputPath); err == nil {
		entry.SizeMB = info.FileSizeMB
		if info.Duration > 0 {
			entry.TotalDuration = info.Duration
		}
	}

	return entry
}

// Private functions (alphabetical)

// compositionLabel names an item's stitch layout for the report.
func compositionLabel(item Item) string {
	if len(item.Templates) == 0 {
		return "Client Only"
	}
	parts := []string{"Client"}
	for _, template := range item.Templates {
		name := filepath.Base(template.Path)
		parts = append(parts, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return strings.Join(parts, " + ")
}

// emit sends an event unless the context is canceled; it reports whether
// processing should continue.
func emit(ctx context.Context, events chan<- Event, event Event) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
