// Package naming implements the naming conventions used across the ad
// production pipeline.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/TalQualityScore/AI-Automation-sub001/config"
)

// Private variables (alphabetical)

// modeDisplayNames maps a processing mode to its folder-name capitalization.
var modeDisplayNames = map[Mode]string{
	ModeQuiz: "Quiz",
	ModeSVSL: "SVSL",
	ModeVSL:  "VSL",
}

// projectTokenFilter keeps only characters legal in the compact project
// token of an output filename.
func projectTokenFilter(r rune) rune {
	if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
		return r
	}
	return -1
}

// Public types (alphabetical)

// Generator composes output filenames and project-folder names from parsed
// project information, following the fixed template the downstream rendering
// pipeline expects.
type Generator struct {
	cfg *config.NamingConfig
}

// Mode identifies the processing mode a batch was stitched for.
type Mode string

// Processing modes, in no particular order.
const (
	ModeQuiz Mode = "quiz"
	ModeSVSL Mode = "svsl"
	ModeVSL  Mode = "vsl"
)

// Public functions (alphabetical)

// NewGenerator creates a Generator backed by the given naming configuration.
func NewGenerator(cfg *config.NamingConfig) *Generator {
	return &Generator{cfg: cfg}
}

// ParseMode converts a user-supplied mode string to a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeQuiz:
		return ModeQuiz, nil
	case ModeSVSL:
		return ModeSVSL, nil
	case ModeVSL:
		return ModeVSL, nil
	}
	return "", fmt.Errorf("error parsing mode: %q is not one of quiz, svsl, vsl", value)
}

// Public methods (alphabetical)

// GenerateOutputName composes the final output filename for one stitched
// video. The ad type and test number are re-extracted from the first client
// video's basename rather than taken from projectName, because the filename
// is the authoritative source for those fields even when the project name
// came from a folder or card title. When versionLetter is empty it is
// recovered from the same path; a path carrying no version letter leaves the
// letter out entirely.
//
// The "X" token is a fixed placeholder reserved for a content-description
// integration, and "ZZ", "m01", "f00", "c00" are protocol constants of the
// downstream rendering pipeline.
func (g *Generator) GenerateOutputName(projectName, firstClientVideo string, mode Mode, versionNum int, versionLetter string) string {
	adType, testName := extractAdTypeAndTest(firstClientVideo)

	if versionLetter == "" {
		versionLetter = ExtractVersionLetter(firstClientVideo)
	}

	project := g.projectToken(projectName)

	return fmt.Sprintf("GH-%s%s%s%sZZ%s_X-v%02d-m01-f00-c00",
		project, adType, testName, versionLetter, mode, versionNum)
}

// GenerateProjectFolderName composes the human-readable project folder name
// from the same fields GenerateOutputName uses.
func (g *Generator) GenerateProjectFolderName(projectName, firstClientVideo string, mode Mode) string {
	adType, testName := extractAdTypeAndTest(firstClientVideo)
	cleaned := g.removeAccountPrefix(strings.TrimSpace(projectName))

	display, ok := modeDisplayNames[mode]
	if !ok {
		display = strings.ToUpper(string(mode))
	}

	return fmt.Sprintf("GH %s %s %s %s", cleaned, adType, testName, display)
}

// Private methods (alphabetical)

// projectToken lowercases the project name, drops the account code, and
// strips everything but letters and digits, yielding the compact token used
// inside output filenames.
func (g *Generator) projectToken(projectName string) string {
	name := g.removeAccountPrefix(strings.TrimSpace(projectName))
	name = strings.ToLower(name)
	return strings.Map(projectTokenFilter, name)
}

// removeAccountPrefix strips a leading account code from a project name.
// Besides the configured codes, a leading word of up to three characters
// followed by a lone hyphen is treated as a mis-entered account code and
// removed with its separator.
func (g *Generator) removeAccountPrefix(name string) string {
	for _, code := range g.cfg.AccountCodes {
		for _, sep := range []string{" ", "_", "-"} {
			prefix := code + sep
			if strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(prefix)) {
				return strings.TrimSpace(name[len(prefix):])
			}
		}
	}

	fields := strings.SplitN(name, " ", 3)
	if len(fields) >= 3 && len(fields[0]) <= 3 && fields[1] == "-" {
		return strings.TrimSpace(fields[2])
	}

	return name
}

// Private functions (alphabetical)

// extractAdTypeAndTest recovers the ad type and test number from a client
// video's basename, defaulting to VTD and "0000" when absent.
func extractAdTypeAndTest(path string) (string, string) {
	base := filepath.Base(path)

	adType := string(AdTypeVTD)
	if m := adTypePattern.FindStringSubmatch(base); m != nil {
		adType = m[1]
	}

	testName := "0000"
	if m := adTypeNumberPattern.FindStringSubmatch(base); m != nil {
		testName = m[1]
	}

	return adType, testName
}
