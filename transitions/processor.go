// Package transitions builds the FFmpeg filter graphs that stitch an
// ordered batch of videos into one output.
package transitions

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/TalQualityScore/AI-Automation-sub001/config"
	"github.com/TalQualityScore/AI-Automation-sub001/ffmpeg"
)

// Private constants (alphabetical)

// maxStderrBytes bounds how much encoder output is carried into error
// messages shown to the user.
const maxStderrBytes = 2000

// Public types (alphabetical)

// Processor runs the encoder over a built filter graph. A crossfade encode
// that fails is retried once as a hard-cut concatenation before the error
// is surfaced, so one unsupported transition style never sinks a batch.
type Processor struct {
	// FFmpegPath is the path to the FFmpeg executable.
	FFmpegPath string

	prober   *ffmpeg.Prober
	encoding *config.EncodingConfig
}

// Result describes one completed stitch.
type Result struct {
	// OutputPath is the written file.
	OutputPath string

	// Durations holds the probed input durations in batch order.
	Durations []float64

	// UsedFallback is true when the crossfade failed and the output was
	// produced by the hard-cut fallback instead.
	UsedFallback bool
}

// Public functions (alphabetical)

// NewProcessor creates a Processor.
func NewProcessor(ffmpegPath string, prober *ffmpeg.Prober, encoding *config.EncodingConfig) *Processor {
	return &Processor{
		FFmpegPath: ffmpegPath,
		prober:     prober,
		encoding:   encoding,
	}
}

// Public methods (alphabetical)

// Apply stitches the inputs into outputPath using the named transition.
// transitionDuration of zero selects the transition's default length; any
// value is clamped to the supported range. The inputs are probed for their
// durations first because the crossfade offsets depend on them.
func (p *Processor) Apply(ctx context.Context, inputs []string, outputPath string, spec *ffmpeg.VideoSpec, transitionID string, transitionDuration float64) (*Result, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("transitions: no input files")
	}

	transition, err := Get(transitionID)
	if err != nil {
		return nil, err
	}
	if transitionDuration == 0 {
		transitionDuration = transition.DefaultDuration
	}

	durations := make([]float64, len(inputs))
	for i, input := range inputs {
		duration, err := p.prober.GetDuration(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("transitions: probing %s: %w", input, err)
		}
		durations[i] = duration
	}

	builder := NewBuilder(spec)
	graph, err := builder.BuildGraph(durations, transition, transitionDuration)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputPath: outputPath, Durations: durations}

	if err := p.encode(ctx, inputs, graph, spec, outputPath); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if len(inputs) < 2 {
			return nil, err
		}

		// Crossfade graphs occasionally fail on exotic inputs; a hard-cut
		// concat of the same normalized streams almost always succeeds.
		fallback, buildErr := builder.BuildConcatGraph(len(inputs))
		if buildErr != nil {
			return nil, err
		}
		if fallbackErr := p.encode(ctx, inputs, fallback, spec, outputPath); fallbackErr != nil {
			return nil, fmt.Errorf("transitions: crossfade failed (%v); concat fallback failed: %w", err, fallbackErr)
		}
		result.UsedFallback = true
	}

	return result, nil
}

// RobustConcat stitches the inputs with hard cuts, skipping transitions
// entirely. This is the strategy for large batches and the explicit
// fallback entry point.
func (p *Processor) RobustConcat(ctx context.Context, inputs []string, outputPath string, spec *ffmpeg.VideoSpec) (*Result, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("transitions: no input files")
	}

	graph, err := NewBuilder(spec).BuildConcatGraph(len(inputs))
	if err != nil {
		return nil, err
	}

	if err := p.encode(ctx, inputs, graph, spec, outputPath); err != nil {
		return nil, err
	}

	return &Result{OutputPath: outputPath}, nil
}

// Private methods (alphabetical)

// buildArgs assembles the full encoder argument list for a graph.
func (p *Processor) buildArgs(inputs []string, graph *Graph, spec *ffmpeg.VideoSpec, outputPath string) []string {
	args := []string{"-y", "-hide_banner"}
	for _, input := range inputs {
		args = append(args, "-i", input)
	}

	args = append(args,
		"-filter_complex", graph.FilterComplex,
		"-map", graph.VideoLabel,
		"-map", graph.AudioLabel,
		"-c:v", "libx264",
		"-preset", spec.Preset,
		"-crf", strconv.Itoa(p.encoding.CRF),
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", p.encoding.AudioBitrate,
		"-ar", strconv.Itoa(spec.SampleRate),
		"-ac", "2",
		"-movflags", "+faststart",
		outputPath,
	)
	return args
}

// encode runs the encoder once, returning an error carrying bounded stderr
// output on failure.
func (p *Processor) encode(ctx context.Context, inputs []string, graph *Graph, spec *ffmpeg.VideoSpec, outputPath string) error {
	cmd := exec.CommandContext(ctx, p.FFmpegPath, p.buildArgs(inputs, graph, spec, outputPath)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("transitions: encoder failed: %w: %s", err, truncateOutput(output))
	}
	return nil
}

// Private functions (alphabetical)

// truncateOutput bounds encoder output for inclusion in error messages.
func truncateOutput(output []byte) string {
	if len(output) <= maxStderrBytes {
		return string(output)
	}
	return string(output[len(output)-maxStderrBytes:])
}
