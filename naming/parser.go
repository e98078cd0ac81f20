// Package naming implements the naming conventions used across the ad
// production pipeline.
package naming

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/TalQualityScore/AI-Automation-sub001/config"
)

// Private constants (alphabetical)

// maxTestNameLength caps test numbers at five digits; minTestNameLength pads
// shorter numbers up to four.
const (
	maxTestNameLength = 5
	minTestNameLength = 4
)

// Private variables (alphabetical)

// adTypeNumberPattern captures the test number attached to an ad-type tag.
var adTypeNumberPattern = regexp.MustCompile(`(?:VTD|STOR|ACT)-(\d+)`)

// adTypePattern captures a bare ad-type tag anywhere in the text.
var adTypePattern = regexp.MustCompile(`(VTD|STOR|ACT)`)

// alternativeCompactLetterPattern recovers a version letter from a six-digit
// date suffix in compact names.
var alternativeCompactLetterPattern = regexp.MustCompile(`(\d{6})([A-Z])`)

// alternativeCompactPattern matches names with no separators between the
// project, ad type, and test number (e.g. "ProjectVTD12345").
var alternativeCompactPattern = regexp.MustCompile(`^(.+?)(VTD|STOR|ACT)(\d{4,5})`)

// alternativeSpacedPattern matches space-separated names such as
// "Project Name VTD 12345" or "Project Name STOR-3133".
var alternativeSpacedPattern = regexp.MustCompile(`^(.+?)\s+(VTD|STOR|ACT)[\s-](\d{4,5})(?:.*?([A-Z])(?:\.|_|$))?`)

// standaloneNumberPattern finds a 4-5 digit test number anywhere in the text.
var standaloneNumberPattern = regexp.MustCompile(`(\d{4,5})`)

// legacyLetterPattern recovers a version letter from legacy-format names.
var legacyLetterPattern = regexp.MustCompile(`[_\s]([A-Z])(?:\.|_|$)`)

// legacyPatterns are the older hyphen- and word-separated conventions, in
// priority order. Group order is project, number, ad type.
var legacyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)-(\d{4,5})-(VTD|STOR|ACT)`),
	regexp.MustCompile(`(?i)^(.+?)_(\d{4,5})_(VTD|STOR|ACT)`),
	regexp.MustCompile(`(?i)^(.+?)\s+Test\s+(\d+)\s+(VTD|STOR|ACT)`),
}

// optFormatPattern matches the optimization-batch folder convention
// "ACCOUNT_SUBCODE_Project_Name_OPT_TYPE-NUMBER...". The sub-code between
// the account code and the project title is an internal campaign marker and
// is dropped from the project name.
var optFormatPattern = regexp.MustCompile(`^([A-Z0-9]{2,5})_([A-Z0-9]{2,5})_(.+?)_OPT_(VTD|STOR|ACT)-(\d+)`)

// standardFormatPattern matches the current folder convention
// "ACCOUNT_Project_Name_TAG_TYPE-NUMBER[..._LETTER]".
var standardFormatPattern = regexp.MustCompile(`^([A-Z]{2,4})_(.+?)_([A-Z]+)_(VTD|STOR|ACT)-(\d+)(?:_.*?_.*?([A-Z]))?`)

// trailingParenthetical matches a parenthesized suffix such as a Drive link.
var trailingParenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// Public types (alphabetical)

// AdType identifies the ad campaign category embedded in folder and file
// names.
type AdType string

// Ad type values, in no particular order.
const (
	AdTypeVTD  AdType = "VTD"
	AdTypeSTOR AdType = "STOR"
	AdTypeACT  AdType = "ACT"
)

// Parser extracts structured project information from Drive folder names and
// client filenames. Folder names come from years of inconsistent manual
// entry, so parsing runs a fixed cascade of format strategies from newest to
// oldest and bottoms out in a heuristic that never fails on non-empty input.
type Parser struct {
	cfg     *config.NamingConfig
	cleaner *Cleaner
}

// ProjectInfo is the structured result of parsing a folder or file name.
// Instances are immutable after validation.
type ProjectInfo struct {
	// ProjectName is the cleaned human-readable project title.
	ProjectName string

	// AdType is the campaign category. Unrecognized values are clamped to
	// AdTypeVTD during validation.
	AdType AdType

	// TestName is the numeric test identifier, zero-padded to at least four
	// digits and truncated to at most five.
	TestName string

	// VersionLetter is the single uppercase version marker, or "" when the
	// source name carries none.
	VersionLetter string
}

// Public functions (alphabetical)

// NewParser creates a Parser backed by the given naming configuration.
func NewParser(cfg *config.NamingConfig) *Parser {
	return &Parser{
		cfg:     cfg,
		cleaner: NewCleaner(cfg),
	}
}

// ValidAdType reports whether value is a recognized ad type.
func ValidAdType(value string) bool {
	switch AdType(value) {
	case AdTypeVTD, AdTypeSTOR, AdTypeACT:
		return true
	}
	return false
}

// Public methods (alphabetical)

// Parse extracts project information from a folder or file name. Strategies
// are tried newest-format first; when none matches, a best-effort record is
// synthesized from whatever tokens the text contains, because the naming
// step must never block the pipeline on a single malformed label. Only an
// empty input returns an error.
func (p *Parser) Parse(text string) (*ProjectInfo, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("error parsing project info: empty input")
	}

	trimmed = stripDriveLink(trimmed)

	if info := p.parseOptFormat(trimmed); info != nil {
		return p.validate(info), nil
	}
	if info := p.parseStandardFormat(trimmed); info != nil {
		return p.validate(info), nil
	}
	if info := p.parseAlternativeFormat(trimmed); info != nil {
		return p.validate(info), nil
	}
	if info := p.parseLegacyFormat(trimmed); info != nil {
		return p.validate(info), nil
	}
	if info := p.parseForwardedName(trimmed); info != nil {
		return p.validate(info), nil
	}

	return p.validate(p.synthesize(trimmed)), nil
}

// Private methods (alphabetical)

// parseAlternativeFormat handles space-separated and compact variants that
// predate the standard underscore convention.
func (p *Parser) parseAlternativeFormat(text string) *ProjectInfo {
	stripped := text
	for _, prefix := range []string{"Copy of ", "GH ", "AGMD "} {
		stripped = strings.TrimPrefix(stripped, prefix)
	}

	if m := alternativeSpacedPattern.FindStringSubmatch(stripped); m != nil {
		return &ProjectInfo{
			ProjectName:   m[1],
			AdType:        AdType(m[2]),
			TestName:      m[3],
			VersionLetter: m[4],
		}
	}

	if m := alternativeCompactPattern.FindStringSubmatch(stripped); m != nil {
		letter := ""
		if lm := alternativeCompactLetterPattern.FindStringSubmatch(stripped); lm != nil {
			letter = lm[2]
		}
		return &ProjectInfo{
			ProjectName:   m[1],
			AdType:        AdType(m[2]),
			TestName:      m[3],
			VersionLetter: letter,
		}
	}

	return nil
}

// parseForwardedName handles names forwarded through the review channel,
// which wrap the real folder name in "... from GH <name> (<link>)". The text
// after the marker is re-run through the structured strategies.
func (p *Parser) parseForwardedName(text string) *ProjectInfo {
	idx := strings.Index(text, "from GH")
	if idx < 0 {
		return nil
	}

	forwarded := strings.TrimSpace(text[idx+len("from GH"):])
	forwarded = trailingParenthetical.ReplaceAllString(forwarded, "")
	forwarded = strings.TrimSpace(forwarded)
	if forwarded == "" {
		return nil
	}

	if info := p.parseStandardFormat(forwarded); info != nil {
		return info
	}
	return p.parseAlternativeFormat(forwarded)
}

// parseLegacyFormat handles the hyphen- and word-separated conventions used
// before the ad-type tag moved in front of the test number.
func (p *Parser) parseLegacyFormat(text string) *ProjectInfo {
	for _, pattern := range legacyPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		letter := ""
		if lm := legacyLetterPattern.FindStringSubmatch(text); lm != nil {
			letter = lm[1]
		}

		return &ProjectInfo{
			ProjectName:   m[1],
			AdType:        AdType(strings.ToUpper(m[3])),
			TestName:      m[2],
			VersionLetter: letter,
		}
	}

	return nil
}

// parseOptFormat handles the optimization-batch convention. It runs before
// the standard pattern because the standard pattern would swallow the
// sub-code into the project title.
func (p *Parser) parseOptFormat(text string) *ProjectInfo {
	stripped := strings.TrimPrefix(text, "Copy of ")

	m := optFormatPattern.FindStringSubmatch(stripped)
	if m == nil {
		return nil
	}

	return &ProjectInfo{
		ProjectName:   m[1] + " " + m[3],
		AdType:        AdType(m[4]),
		TestName:      m[5],
		VersionLetter: ExtractVersionLetter(stripped),
	}
}

// parseStandardFormat handles the current underscore convention. The account
// code is kept in front of the project title; the generator strips it when
// composing output filenames.
func (p *Parser) parseStandardFormat(text string) *ProjectInfo {
	stripped := strings.TrimPrefix(text, "Copy of ")
	stripped = strings.TrimSuffix(stripped, " Ad")

	m := standardFormatPattern.FindStringSubmatch(stripped)
	if m == nil {
		return nil
	}

	return &ProjectInfo{
		ProjectName:   m[1] + " " + m[2],
		AdType:        AdType(m[4]),
		TestName:      m[5],
		VersionLetter: m[6],
	}
}

// synthesize builds a best-effort record when no structured format matched.
// The ad type defaults to VTD and the test number to "0000" when the text
// carries neither, so callers always get a usable record for non-empty
// input.
func (p *Parser) synthesize(text string) *ProjectInfo {
	remaining := text
	for _, prefix := range p.cfg.CleanPrefixes {
		remaining = strings.TrimPrefix(remaining, prefix)
	}

	adType := ""
	if m := adTypePattern.FindStringSubmatch(remaining); m != nil {
		adType = m[1]
	}

	testName := "0000"
	if m := adTypeNumberPattern.FindStringSubmatch(remaining); m != nil {
		testName = m[1]
	} else if m := standaloneNumberPattern.FindStringSubmatch(remaining); m != nil {
		testName = m[1]
	}

	name := remaining
	if adType != "" {
		name = strings.Split(name, adType)[0]
	}
	name = trailingParenthetical.ReplaceAllString(name, "")

	return &ProjectInfo{
		ProjectName:   name,
		AdType:        AdType(adType),
		TestName:      testName,
		VersionLetter: ExtractVersionLetter(text),
	}
}

// validate clamps every field to its legal range and cleans the project
// name. The result is safe to use in output filenames without further
// checks.
func (p *Parser) validate(info *ProjectInfo) *ProjectInfo {
	if !ValidAdType(string(info.AdType)) {
		info.AdType = AdTypeVTD
	}

	info.TestName = normalizeTestName(info.TestName)

	letter := strings.ToUpper(strings.TrimSpace(info.VersionLetter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		letter = ""
	}
	info.VersionLetter = letter

	info.ProjectName = p.cleaner.CleanProjectName(info.ProjectName)

	return info
}

// Private functions (alphabetical)

// normalizeTestName keeps only the digits, zero-pads to four, and truncates
// to five.
func normalizeTestName(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	name := digits.String()
	for len(name) < minTestNameLength {
		name = "0" + name
	}
	if len(name) > maxTestNameLength {
		name = name[:maxTestNameLength]
	}
	return name
}

// stripDriveLink removes a trailing parenthesized Drive link from a pasted
// card title, leaving the bare folder name.
func stripDriveLink(text string) string {
	if !strings.Contains(text, "drive.google.com") {
		return text
	}
	return strings.TrimSpace(trailingParenthetical.ReplaceAllString(text, ""))
}
