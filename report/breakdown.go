// Package report writes the human-readable processing breakdown that
// accompanies every batch: one block per stitched video with its
// composition, source file, per-segment timecodes, total duration, and
// output size. The file is for people, not machines; nothing parses it
// downstream.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Private constants (alphabetical)

const (
	// fileName is the breakdown's filename inside the output folder.
	fileName = "processing_breakdown.txt"

	// separatorWidth is the width of the header and block separators.
	separatorWidth = 80
)

// Public types (alphabetical)

// Entry describes one stitched output video.
type Entry struct {
	// Composition names the stitch layout (e.g. "Client + Quiz Outro").
	Composition string

	// OutputName is the generated output filename.
	OutputName string

	// Segments are the stitched parts in order.
	Segments []Segment

	// SizeMB is the output file size in megabytes, zero when unknown.
	SizeMB float64

	// SourceFile is the client video the output was built from.
	SourceFile string

	// TotalDuration is the output duration in seconds.
	TotalDuration float64

	// TransitionDuration is the per-transition overlap subtracted between
	// segment timecodes.
	TransitionDuration float64
}

// Report is a full processing breakdown for one batch.
type Report struct {
	// GeneratedAt stamps the report header.
	GeneratedAt time.Time

	// Entries holds one entry per stitched output, in processing order.
	Entries []Entry
}

// Segment is one stitched part of an output video.
type Segment struct {
	// Duration is the segment length in seconds.
	Duration float64

	// Label names the segment (its source filename or role).
	Label string
}

// Public methods (alphabetical)

// Write renders the report to w.
func (r *Report) Write(w io.Writer) error {
	heavy := strings.Repeat("=", separatorWidth)
	light := strings.Repeat("─", separatorWidth)

	fmt.Fprintln(w, heavy)
	fmt.Fprintln(w, "AI AUTOMATION SUITE - PROCESSING BREAKDOWN REPORT")
	fmt.Fprintf(w, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, heavy)
	fmt.Fprintln(w)

	for i, entry := range r.Entries {
		fmt.Fprintf(w, "VIDEO %d: %s\n", i+1, entry.OutputName)
		fmt.Fprintln(w, light)
		fmt.Fprintf(w, "Composition: %s\n", entry.Composition)
		fmt.Fprintf(w, "Source:      %s\n", filepath.Base(entry.SourceFile))
		fmt.Fprintln(w)

		start := 0.0
		for _, segment := range entry.Segments {
			end := start + segment.Duration
			fmt.Fprintf(w, "  %s - %s  %s\n", formatTimecode(start), formatTimecode(end), segment.Label)
			// The next segment starts inside the transition overlap.
			start = end - entry.TransitionDuration
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "Total Duration: %s\n", formatTimecode(entry.TotalDuration))
		if entry.SizeMB > 0 {
			fmt.Fprintf(w, "File Size:      %.1f MB\n", entry.SizeMB)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, heavy)
	fmt.Fprintf(w, "END OF REPORT - %d video(s) processed\n", len(r.Entries))
	fmt.Fprintln(w, heavy)
	return nil
}

// WriteFile renders the report into its standard file inside outputDir and
// returns the written path.
func (r *Report) WriteFile(outputDir string) (string, error) {
	path := filepath.Join(outputDir, fileName)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: creating %s: %w", path, err)
	}
	defer file.Close()

	if err := r.Write(file); err != nil {
		return "", err
	}
	return path, nil
}

// Private functions (alphabetical)

// formatTimecode renders seconds as MM:SS, rounding down.
func formatTimecode(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := int(seconds)
	return fmt.Sprintf("%02d:%02d", whole/60, whole%60)
}
