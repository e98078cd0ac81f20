// Package ffmpeg provides functionality for detecting and working with FFmpeg.
package ffmpeg

import (
	"context"
)

// Private types (alphabetical)

// resolution is a width/height pair used as a vote key.
type resolution struct {
	width  int
	height int
}

// Private functions (alphabetical)

// chooseFrameRate picks the common target frame rate for a batch.
// When every input already shares one rate it wins. Otherwise two
// harmonization rules cover the mixes that actually occur in client
// material: PAL 25fps mixed with film-rate ~24fps standardizes to 25, and
// any NTSC-ish ~30fps input standardizes to 30. Any other mix keeps the
// first file's rate.
func chooseFrameRate(rates []float64) float64 {
	if len(rates) == 0 {
		return DefaultFrameRate
	}

	allEqual := true
	for _, rate := range rates[1:] {
		if rate != rates[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return rates[0]
	}

	has25 := false
	hasFilmRate := false
	hasNTSC := false
	for _, rate := range rates {
		if rate == 25.0 {
			has25 = true
		}
		if rate > 23 && rate < 24.5 {
			hasFilmRate = true
		}
		if rate > 29 && rate < 31 {
			hasNTSC = true
		}
	}

	if has25 && hasFilmRate {
		return 25.0
	}
	if hasNTSC {
		return 30.0
	}

	return rates[0]
}

// choosePreset maps the batch's total duration to a libx264 preset.
func choosePreset(totalDuration float64) string {
	switch {
	case totalDuration > VeryLongBatchSeconds:
		return "faster"
	case totalDuration > LongBatchSeconds:
		return "medium"
	default:
		return "medium"
	}
}

// chooseResolution picks the most common resolution among the probed
// inputs. Ties break toward the resolution seen first, which keeps the
// choice deterministic for a given input order.
func chooseResolution(infos []*VideoInfo) (int, int) {
	votes := make(map[resolution]int)
	var order []resolution

	for _, info := range infos {
		if info.Width <= 0 || info.Height <= 0 {
			continue
		}
		key := resolution{width: info.Width, height: info.Height}
		if votes[key] == 0 {
			order = append(order, key)
		}
		votes[key]++
	}

	if len(order) == 0 {
		return DefaultWidth, DefaultHeight
	}

	best := order[0]
	for _, key := range order[1:] {
		if votes[key] > votes[best] {
			best = key
		}
	}

	return best.width, best.height
}

// Public methods (alphabetical)

// DetermineTargetSpecs probes every file in the batch and derives the
// common specification the stitch will normalize all inputs to. Files that
// fail to probe are skipped; a batch where nothing probed falls back to
// 1920x1080 at 30fps. The sample rate is always DefaultSampleRate because
// audio is re-encoded regardless of input.
func (p *Prober) DetermineTargetSpecs(ctx context.Context, videoPaths []string) (*VideoSpec, error) {
	var infos []*VideoInfo
	var rates []float64
	totalDuration := 0.0

	for _, path := range videoPaths {
		info, err := p.GetVideoInfo(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		infos = append(infos, info)
		rates = append(rates, info.FrameRate)
		totalDuration += info.Duration
	}

	width, height := chooseResolution(infos)

	return &VideoSpec{
		Width:         width,
		Height:        height,
		FrameRate:     chooseFrameRate(rates),
		SampleRate:    DefaultSampleRate,
		Preset:        choosePreset(totalDuration),
		TotalDuration: totalDuration,
	}, nil
}
