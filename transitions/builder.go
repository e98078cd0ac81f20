// Package transitions builds the FFmpeg filter graphs that stitch an
// ordered batch of videos into one output.
package transitions

import (
	"fmt"
	"strings"

	"github.com/TalQualityScore/AI-Automation-sub001/ffmpeg"
)

// Private constants (alphabetical)

// maxCrossfadeInputs is the largest batch that gets crossfades. Chained
// xfade graphs grow combinatorially hard to debug, so larger batches fall
// back to hard cuts.
const maxCrossfadeInputs = 3

// Public types (alphabetical)

// Builder constructs filter_complex expressions for a fixed target spec.
type Builder struct {
	spec *ffmpeg.VideoSpec
}

// Graph is a complete filter_complex expression plus the labels of its
// final video and audio streams, ready to be passed to the encoder.
type Graph struct {
	// AudioLabel is the label of the final audio stream (e.g. "[aout]").
	AudioLabel string

	// FilterComplex is the full filter_complex expression.
	FilterComplex string

	// VideoLabel is the label of the final video stream (e.g. "[vout]").
	VideoLabel string
}

// Public functions (alphabetical)

// CrossfadeOffsets computes the xfade offset for each transition in a
// chain. The offset of transition k is the cumulative duration of the
// clips before it minus one transition length, which places the blend so
// it ends exactly at the first clip's tail.
func CrossfadeOffsets(durations []float64, transitionDuration float64) []float64 {
	if len(durations) < 2 {
		return nil
	}

	offsets := make([]float64, 0, len(durations)-1)
	cumulative := 0.0
	for _, duration := range durations[:len(durations)-1] {
		cumulative += duration
		offsets = append(offsets, cumulative-transitionDuration)
	}
	return offsets
}

// NewBuilder creates a Builder targeting the given spec.
func NewBuilder(spec *ffmpeg.VideoSpec) *Builder {
	return &Builder{spec: spec}
}

// Public methods (alphabetical)

// BuildConcatGraph normalizes every input and joins them with hard cuts.
// This is both the strategy for large batches and the fallback when a
// crossfade encode fails.
func (b *Builder) BuildConcatGraph(inputCount int) (*Graph, error) {
	if inputCount < 1 {
		return nil, fmt.Errorf("transitions: concat needs at least 1 input, got %d", inputCount)
	}

	var parts []string
	for i := 0; i < inputCount; i++ {
		parts = append(parts, b.normalizeVideo(i))
		parts = append(parts, b.normalizeAudio(i))
	}

	var join strings.Builder
	for i := 0; i < inputCount; i++ {
		fmt.Fprintf(&join, "[v%d][a%d]", i, i)
	}
	fmt.Fprintf(&join, "concat=n=%d:v=1:a=1[outv][outa]", inputCount)
	parts = append(parts, join.String())

	return &Graph{
		FilterComplex: strings.Join(parts, ";"),
		VideoLabel:    "[outv]",
		AudioLabel:    "[outa]",
	}, nil
}

// BuildGraph constructs the filter graph for a batch. Batches of two or
// three clips get crossfades; a single clip gets a plain normalization
// pass, and four or more clips get hard cuts via BuildConcatGraph.
// durations must carry one entry per input, in order.
func (b *Builder) BuildGraph(durations []float64, transition Transition, transitionDuration float64) (*Graph, error) {
	transitionDuration = ClampDuration(transitionDuration)

	switch {
	case len(durations) == 0:
		return nil, fmt.Errorf("transitions: empty batch")
	case len(durations) == 1:
		return b.buildPassthroughGraph(), nil
	case len(durations) <= maxCrossfadeInputs:
		return b.buildCrossfadeGraph(durations, transition, transitionDuration), nil
	default:
		return b.BuildConcatGraph(len(durations))
	}
}

// Private methods (alphabetical)

// buildCrossfadeGraph chains xfade filters over two or three inputs.
//
// Audio handling differs by batch size. For two clips the audio is cut and
// spliced at the exact visual transition point instead of crossfaded:
// blending both audio tracks during the overlap makes the tail of the
// first clip audible under the second and produces audible glitches, so
// the first clip's audio is trimmed at the offset and the second appended.
// For three clips the audio uses acrossfade chains matching the video
// offsets.
func (b *Builder) buildCrossfadeGraph(durations []float64, transition Transition, transitionDuration float64) *Graph {
	offsets := CrossfadeOffsets(durations, transitionDuration)

	var parts []string
	for i := range durations {
		parts = append(parts, b.normalizeVideo(i))
	}

	if len(durations) == 2 {
		parts = append(parts, fmt.Sprintf(
			"[v0][v1]xfade=transition=%s:duration=%.2f:offset=%.2f[vout]",
			transition.FilterName, transitionDuration, offsets[0]))

		parts = append(parts, fmt.Sprintf(
			"[0:a]atrim=0:%.2f,asetpts=PTS-STARTPTS,%s[a0]",
			offsets[0], b.audioNormalizeChain()))
		parts = append(parts, fmt.Sprintf("[1:a]%s[a1]", b.audioNormalizeChain()))
		parts = append(parts, "[a0][a1]concat=n=2:v=0:a=1[aout]")
	} else {
		parts = append(parts, fmt.Sprintf(
			"[v0][v1]xfade=transition=%s:duration=%.2f:offset=%.2f[vx1]",
			transition.FilterName, transitionDuration, offsets[0]))
		parts = append(parts, fmt.Sprintf(
			"[vx1][v2]xfade=transition=%s:duration=%.2f:offset=%.2f[vout]",
			transition.FilterName, transitionDuration, offsets[1]))

		for i := range durations {
			parts = append(parts, b.normalizeAudioLabeled(i, fmt.Sprintf("[a%d]", i)))
		}
		parts = append(parts, fmt.Sprintf(
			"[a0][a1]acrossfade=d=%.2f:c1=%s:c2=%s[ax1]",
			transitionDuration, transition.AudioCurve, transition.AudioCurve))
		parts = append(parts, fmt.Sprintf(
			"[ax1][a2]acrossfade=d=%.2f:c1=%s:c2=%s[aout]",
			transitionDuration, transition.AudioCurve, transition.AudioCurve))
	}

	return &Graph{
		FilterComplex: strings.Join(parts, ";"),
		VideoLabel:    "[vout]",
		AudioLabel:    "[aout]",
	}
}

// buildPassthroughGraph normalizes a single input with no joining filter.
func (b *Builder) buildPassthroughGraph() *Graph {
	parts := []string{
		strings.Replace(b.normalizeVideo(0), "[v0]", "[vout]", 1),
		strings.Replace(b.normalizeAudio(0), "[a0]", "[aout]", 1),
	}

	return &Graph{
		FilterComplex: strings.Join(parts, ";"),
		VideoLabel:    "[vout]",
		AudioLabel:    "[aout]",
	}
}

// audioNormalizeChain is the per-input audio normalization: resample to the
// target rate compensating drift, then force the rate and a stereo layout.
func (b *Builder) audioNormalizeChain() string {
	return fmt.Sprintf("aresample=%d:async=1,aformat=sample_rates=%d:channel_layouts=stereo",
		b.spec.SampleRate, b.spec.SampleRate)
}

// normalizeAudio emits the audio normalization chain for input i labeled
// [ai].
func (b *Builder) normalizeAudio(i int) string {
	return b.normalizeAudioLabeled(i, fmt.Sprintf("[a%d]", i))
}

// normalizeAudioLabeled emits the audio normalization chain for input i
// with an explicit output label.
func (b *Builder) normalizeAudioLabeled(i int, label string) string {
	return fmt.Sprintf("[%d:a]%s%s", i, b.audioNormalizeChain(), label)
}

// normalizeVideo emits the video normalization chain for input i labeled
// [vi]: aspect-preserving scale, centered pad to the exact target frame,
// frame-rate lock, square pixels.
func (b *Builder) normalizeVideo(i int) string {
	w, h := b.spec.Width, b.spec.Height
	return fmt.Sprintf(
		"[%d:v]scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:black,fps=%g,setsar=1[v%d]",
		i, w, h, w, h, b.spec.FrameRate, i)
}
