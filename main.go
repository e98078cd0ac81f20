// Package main provides the entry point for the ai-automation application.
// It stitches client video ads with template segments via FFmpeg, applies
// the production naming conventions, and writes a processing breakdown for
// every batch.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/TalQualityScore/AI-Automation-sub001/config"
	"github.com/TalQualityScore/AI-Automation-sub001/ffmpeg"
	"github.com/TalQualityScore/AI-Automation-sub001/naming"
	"github.com/TalQualityScore/AI-Automation-sub001/transitions"
	"github.com/TalQualityScore/AI-Automation-sub001/workflow"
)

// Private constants (alphabetical)
// None currently defined

// Public constants (alphabetical)
// None currently defined

// Private variables (alphabetical)
// None currently defined

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'github.com/TalQualityScore/AI-Automation-sub001.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// detectInstallation locates FFmpeg and fails with a user-facing error when
// it is missing, since nothing in the tool works without it.
func detectInstallation(ctx context.Context) (*ffmpeg.FFmpegInfo, error) {
	info, err := ffmpeg.DetectFFmpeg(ctx)
	if err != nil {
		return nil, fmt.Errorf("error detecting FFmpeg: %w", err)
	}
	if !info.Installed {
		return nil, fmt.Errorf("FFmpeg not found: install it and make sure it is on your PATH")
	}
	return info, nil
}

// formatDuration formats seconds into a human-readable duration string
// such as "10.5 seconds" or "1 hour, 2 minutes and 13 seconds"
func formatDuration(seconds float64) string {
	// Return seconds with appropriate formatting if less than 60 seconds
	if seconds < 60 {
		// Check if it's a whole number
		if seconds == float64(int(seconds)) {
			return fmt.Sprintf("%d seconds", int(seconds))
		}
		return fmt.Sprintf("%.3f seconds", seconds)
	}

	duration := time.Duration(seconds * float64(time.Second))
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	secs := int(duration.Seconds()) % 60

	var parts []string
	if hours > 0 {
		if hours == 1 {
			parts = append(parts, "1 hour")
		} else {
			parts = append(parts, fmt.Sprintf("%d hours", hours))
		}
	}
	if minutes > 0 {
		if minutes == 1 {
			parts = append(parts, "1 minute")
		} else {
			parts = append(parts, fmt.Sprintf("%d minutes", minutes))
		}
	}
	if secs > 0 || (hours == 0 && minutes == 0) {
		if secs == 1 {
			parts = append(parts, "1 second")
		} else {
			parts = append(parts, fmt.Sprintf("%d seconds", secs))
		}
	}

	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	case 3:
		return parts[0] + ", " + parts[1] + " and " + parts[2]
	default:
		return fmt.Sprintf("%.3f seconds", seconds)
	}
}

// loadConfig reads the optional config file named by the --config flag.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// nameCommand prints the generated output filename and project folder name
// for a client video.
func nameCommand(c *cli.Context) error {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: CLIENT_VIDEO")
	}
	clientVideo := c.Args().Get(0)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	mode, err := naming.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	projectName, err := resolveProjectName(c, cfg, clientVideo)
	if err != nil {
		return err
	}

	generator := naming.NewGenerator(&cfg.Naming)
	outputName := generator.GenerateOutputName(projectName, clientVideo, mode, c.Int("version"), c.String("letter"))
	folderName := generator.GenerateProjectFolderName(projectName, clientVideo, mode)

	summaryStyle.Println("🏷️ GENERATED NAMES")
	regularStyle.Printf("📄 Output file: ")
	valueStyle.Printf("%s\n", outputName)
	regularStyle.Printf("📁 Project folder: ")
	valueStyle.Printf("%s\n", folderName)
	return nil
}

// parseCommand parses a folder or file name and prints the structured
// fields.
func parseCommand(c *cli.Context) error {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: NAME")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	parser := naming.NewParser(&cfg.Naming)
	info, err := parser.Parse(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	summaryStyle.Println("🔎 PARSED PROJECT INFO")
	regularStyle.Printf("📛 Project: ")
	valueStyle.Printf("%s\n", info.ProjectName)
	regularStyle.Printf("🏷️ Ad type: ")
	valueStyle.Printf("%s\n", info.AdType)
	regularStyle.Printf("🔢 Test: ")
	valueStyle.Printf("%s\n", info.TestName)
	regularStyle.Printf("🔤 Version letter: ")
	if info.VersionLetter == "" {
		valueStyle.Println("(none)")
	} else {
		valueStyle.Printf("%s\n", info.VersionLetter)
	}
	return nil
}

// probeCommand probes one or more video files and prints the common target
// spec the batch would be normalized to.
func probeCommand(c *cli.Context) error {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: VIDEO_FILE")
	}
	paths := c.Args().Slice()

	info, err := detectInstallation(c.Context)
	if err != nil {
		return err
	}

	prober, err := ffmpeg.NewProber(info)
	if err != nil {
		return fmt.Errorf("error creating prober: %w", err)
	}

	pluralizeClient := pluralize.NewClient()
	summaryStyle.Printf("📊 PROBING %d %s\n", len(paths),
		pluralizeClient.Pluralize("file", len(paths), false))
	fmt.Println()

	for _, path := range paths {
		videoInfo, err := prober.GetVideoInfo(c.Context, path)
		if err != nil {
			color.New(color.FgRed).Printf("❌ %s: %v\n", filepath.Base(path), err)
			continue
		}
		regularStyle.Printf("🎬 %s: ", filepath.Base(path))
		valueStyle.Printf("%s\n", videoInfo)
	}

	spec, err := prober.DetermineTargetSpecs(c.Context, paths)
	if err != nil {
		return fmt.Errorf("error determining target specs: %w", err)
	}

	summaryStyle.Println("\n🎯 TARGET SPEC")
	regularStyle.Printf("📐 Resolution: ")
	valueStyle.Printf("%dx%d\n", spec.Width, spec.Height)
	regularStyle.Printf("🎞️ Frame rate: ")
	valueStyle.Printf("%g fps\n", spec.FrameRate)
	regularStyle.Printf("🔊 Sample rate: ")
	valueStyle.Printf("%d Hz\n", spec.SampleRate)
	regularStyle.Printf("⚙️ Preset: ")
	valueStyle.Printf("%s\n", spec.Preset)
	regularStyle.Printf("⏱️ Total duration: ")
	valueStyle.Printf("%s\n", formatDuration(spec.TotalDuration))
	return nil
}

// resolveProjectName returns the --project flag value, or parses the project
// name from the client video's basename when the flag is absent.
func resolveProjectName(c *cli.Context, cfg *config.Config, clientVideo string) (string, error) {
	if projectName := c.String("project"); projectName != "" {
		return projectName, nil
	}

	parser := naming.NewParser(&cfg.Naming)
	base := filepath.Base(clientVideo)
	info, err := parser.Parse(strings.TrimSuffix(base, filepath.Ext(base)))
	if err != nil {
		return "", err
	}
	return info.ProjectName, nil
}

// setupCommand creates the standard project folder skeleton for a client
// video.
func setupCommand(c *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)

	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: CLIENT_VIDEO")
	}
	clientVideo := c.Args().Get(0)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	mode, err := naming.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	projectName, err := resolveProjectName(c, cfg, clientVideo)
	if err != nil {
		return err
	}

	generator := naming.NewGenerator(&cfg.Naming)
	folderName := generator.GenerateProjectFolderName(projectName, clientVideo, mode)
	root := filepath.Join(c.String("root"), folderName)

	if err := workflow.CreateProjectStructure(root); err != nil {
		return err
	}

	regularStyle.Printf("📁 Project folder: ")
	valueStyle.Printf("%s\n", root)
	successStyle.Println("✅ Folder structure created")
	return nil
}

// stitchCommand runs a full batch: every CLIENT_VIDEO argument becomes one
// output, stitched with the shared --template segments.
func stitchCommand(c *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)
	errorStyle := color.New(color.FgRed)

	if c.NArg() < 1 {
		errorStyle.Printf("❌ Error: missing required argument: CLIENT_VIDEO\n\n")
		regularStyle.Printf("Usage: %s stitch [options] CLIENT_VIDEO...\n", c.App.Name)
		regularStyle.Printf("Run '%s stitch --help' for more information.\n", c.App.Name)
		return fmt.Errorf("missing required argument: CLIENT_VIDEO")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	mode, err := naming.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	if id := c.String("transition"); id != "" {
		if _, err := transitions.Get(id); err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(transitions.IDs(), ", "))
		}
	}

	info, err := detectInstallation(c.Context)
	if err != nil {
		return err
	}
	regularStyle.Printf("🔧 Using FFmpeg at ")
	valueStyle.Printf("%s\n", info.Path)
	regularStyle.Printf("🔖 FFmpeg version: ")
	valueStyle.Printf("%s\n\n", info.Version)

	var templates []workflow.Template
	for _, path := range c.StringSlice("template") {
		templates = append(templates, workflow.Template{Path: path})
	}

	sequence := &workflow.Sequence{}
	for _, clientVideo := range c.Args().Slice() {
		sequence.Add(workflow.Item{ClientVideo: clientVideo, Templates: templates})
	}

	projectName, err := resolveProjectName(c, cfg, c.Args().Get(0))
	if err != nil {
		return err
	}

	runner, err := workflow.NewRunner(cfg, info)
	if err != nil {
		return err
	}

	request := &workflow.Request{
		OutputDir:          c.String("output"),
		Mode:               mode,
		ProjectName:        projectName,
		Sequence:           sequence,
		TransitionDuration: c.Float64("duration"),
		TransitionID:       c.String("transition"),
	}

	events, err := runner.Run(c.Context, request)
	if err != nil {
		return err
	}

	pluralizeClient := pluralize.NewClient()
	regularStyle.Printf("🎬 Processing ")
	valueStyle.Printf("%d %s\n", sequence.Len(),
		pluralizeClient.Pluralize("video", sequence.Len(), false))

	bar := progressbar.NewOptions(sequence.Len(),
		progressbar.OptionSetDescription("Stitching"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	failures := 0
	for event := range events {
		if event.Stage != "done" {
			continue
		}
		_ = bar.Add(1)
		if event.Err != nil {
			failures++
			errorStyle.Printf("❌ Video %d failed: %v\n", event.Index, event.Err)
			continue
		}
		if event.UsedFallback {
			color.New(color.FgYellow).Printf("⚠️ Video %d used hard-cut fallback\n", event.Index)
		}
		regularStyle.Printf("✅ %s\n", event.OutputName)
	}
	_ = bar.Finish()

	if failures > 0 {
		return fmt.Errorf("%d of %d videos failed", failures, sequence.Len())
	}
	successStyle.Printf("\n✅ Batch complete: outputs and processing_breakdown.txt written to %s\n",
		c.String("output"))
	return nil
}

// versionPrinter prints the version banner with build metadata.
func versionPrinter(c *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("🎬 AI Automation Suite %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// main is the entry point of the application.
// It parses command-line arguments, validates input, and dispatches to the
// selected command.
func main() {
	// Override the default version printer
	cli.VersionPrinter = versionPrinter

	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a TOML config file overriding the built-in defaults",
	}
	modeFlag := &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "Processing mode: quiz, svsl, or vsl",
		Value:   "quiz",
	}
	projectFlag := &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Project name (parsed from the first client video when omitted)",
	}

	app := &cli.App{
		Name:  "ai-automation",
		Usage: "A tool for stitching and naming video ad batches",
		Description: "AI Automation Suite stitches client videos with template segments using " +
			"FFmpeg crossfades, applies the production naming conventions, and writes a " +
			"processing breakdown for every batch.",
		Authors: []*cli.Author{
			{
				Name: "Tal Quality Score",
			},
		},
		Version: Version,
		Commands: []*cli.Command{
			{
				Name:      "stitch",
				Usage:     "Stitch client videos with template segments",
				ArgsUsage: "CLIENT_VIDEO...",
				Action:    stitchCommand,
				Flags: []cli.Flag{
					configFlag,
					modeFlag,
					projectFlag,
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Directory where outputs and the breakdown report are written",
						Value:   filepath.Join(".", "rendered"),
					},
					&cli.StringSliceFlag{
						Name:    "template",
						Aliases: []string{"t"},
						Usage:   "Template segment appended after each client video (repeatable)",
					},
					&cli.StringFlag{
						Name:  "transition",
						Usage: "Transition style between segments",
					},
					&cli.Float64Flag{
						Name:  "duration",
						Usage: "Transition duration in seconds (0 = transition default)",
					},
				},
			},
			{
				Name:      "parse",
				Usage:     "Parse a Drive folder or file name into project fields",
				ArgsUsage: "NAME",
				Action:    parseCommand,
				Flags:     []cli.Flag{configFlag},
			},
			{
				Name:      "name",
				Usage:     "Generate the output filename for a client video",
				ArgsUsage: "CLIENT_VIDEO",
				Action:    nameCommand,
				Flags: []cli.Flag{
					configFlag,
					modeFlag,
					projectFlag,
					&cli.IntFlag{
						Name:  "version",
						Usage: "Version number for the vNN token",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "letter",
						Usage: "Version letter override (extracted from the filename when omitted)",
					},
				},
			},
			{
				Name:      "probe",
				Usage:     "Probe video files and show the batch target spec",
				ArgsUsage: "VIDEO_FILE...",
				Action:    probeCommand,
			},
			{
				Name:      "setup",
				Usage:     "Create the standard project folder skeleton",
				ArgsUsage: "CLIENT_VIDEO",
				Action:    setupCommand,
				Flags: []cli.Flag{
					configFlag,
					modeFlag,
					projectFlag,
					&cli.StringFlag{
						Name:  "root",
						Usage: "Parent directory for the project folder",
						Value: ".",
					},
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
