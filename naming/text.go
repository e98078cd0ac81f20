// Package naming implements the naming conventions used across the ad
// production pipeline.
package naming

import (
	"regexp"
	"strings"

	"github.com/TalQualityScore/AI-Automation-sub001/config"
)

// Private variables (alphabetical)

// camelCasePattern matches a lowercase-to-uppercase boundary inside a word.
var camelCasePattern = regexp.MustCompile(`([a-z])([A-Z])`)

// connectorWords stay lowercase in cleaned names unless they lead.
var connectorWords = map[string]bool{
	"and": true, "or": true, "of": true, "the": true, "in": true,
	"on": true, "at": true, "to": true, "for": true,
}

// whitespacePattern matches runs of whitespace for collapsing.
var whitespacePattern = regexp.MustCompile(`\s+`)

// Public types (alphabetical)

// Cleaner normalizes raw project names extracted from folder and file names.
// The prefix, suffix, and acronym lists come from configuration because they
// track a specific client roster rather than any general rule.
type Cleaner struct {
	cfg *config.NamingConfig

	preserveCaps map[string]bool
	suffixes     []*regexp.Regexp
}

// Public functions (alphabetical)

// NewCleaner creates a Cleaner backed by the given naming configuration.
func NewCleaner(cfg *config.NamingConfig) *Cleaner {
	preserve := make(map[string]bool, len(cfg.PreserveCaps))
	for _, word := range cfg.PreserveCaps {
		preserve[strings.ToUpper(word)] = true
	}

	suffixes := make([]*regexp.Regexp, 0, len(cfg.RemoveSuffixes))
	for _, suffix := range cfg.RemoveSuffixes {
		suffixes = append(suffixes, regexp.MustCompile(`(?i)\s+`+regexp.QuoteMeta(suffix)+`$`))
	}

	return &Cleaner{
		cfg:          cfg,
		preserveCaps: preserve,
		suffixes:     suffixes,
	}
}

// Public methods (alphabetical)

// CleanProjectName normalizes a raw project name: known prefixes are
// stripped, separators become spaces, camelCase words are split, whitespace
// is collapsed, title case is applied with the preserve-uppercase and
// connector-word exceptions, and known suffixes are removed. It never fails;
// an input that cleans down to nothing yields "Untitled Project". The result
// is a fixed point: cleaning an already-clean name changes nothing.
func (c *Cleaner) CleanProjectName(raw string) string {
	if raw == "" {
		return "Untitled Project"
	}

	name := c.stripPrefixes(raw)
	name = normalizeSeparators(name)
	name = c.separateCamelCase(name)
	name = collapseWhitespace(name)
	name = c.applyCapitalization(name)
	name = c.stripSuffixes(name)
	name = collapseWhitespace(name)

	if name == "" {
		return "Untitled Project"
	}
	return name
}

// Private methods (alphabetical)

// applyCapitalization title-cases each word, keeping preserve-list words
// fully uppercase and connector words lowercase unless they lead.
func (c *Cleaner) applyCapitalization(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		upper := strings.ToUpper(word)
		switch {
		case c.preserveCaps[upper]:
			words[i] = upper
		case i > 0 && connectorWords[strings.ToLower(word)]:
			words[i] = strings.ToLower(word)
		case len(word) >= 2 && word == upper:
			// Fully-uppercase words are acronyms or account codes;
			// title-casing them would corrupt the name.
		default:
			words[i] = titleCase(word)
		}
	}
	return strings.Join(words, " ")
}

// separateCamelCase splits camelCase words on lowercase-to-uppercase
// boundaries, leaving preserve-list words untouched.
func (c *Cleaner) separateCamelCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if c.preserveCaps[strings.ToUpper(word)] {
			words[i] = strings.ToUpper(word)
			continue
		}
		words[i] = camelCasePattern.ReplaceAllString(word, "$1 $2")
	}
	return strings.Join(words, " ")
}

// stripPrefixes removes known literal prefixes. Removal repeats until no
// prefix matches so that stacked prefixes ("Copy of OO_...") clean fully in
// one call.
func (c *Cleaner) stripPrefixes(text string) string {
	for {
		stripped := false
		for _, prefix := range c.cfg.CleanPrefixes {
			if strings.HasPrefix(text, prefix) {
				text = text[len(prefix):]
				stripped = true
				break
			}
		}
		if !stripped {
			return text
		}
	}
}

// stripSuffixes removes known trailing words, repeating until stable so that
// stacked suffixes ("... Test Final") clean fully in one call.
func (c *Cleaner) stripSuffixes(text string) string {
	for {
		stripped := false
		for _, suffix := range c.suffixes {
			if replaced := suffix.ReplaceAllString(text, ""); replaced != text {
				text = replaced
				stripped = true
			}
		}
		if !stripped {
			return text
		}
	}
}

// Private functions (alphabetical)

// collapseWhitespace reduces whitespace runs to single spaces and trims.
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// normalizeSeparators replaces underscore, hyphen, and plus separators with
// spaces.
func normalizeSeparators(text string) string {
	text = strings.ReplaceAll(text, "+", " ")
	text = strings.ReplaceAll(text, "_", " ")
	text = strings.ReplaceAll(text, "-", " ")
	return text
}

// titleCase uppercases the first rune and lowercases the rest.
func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
