package sanitizer

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxAnswerLength is a hard policy limit; answers beyond it are rejected
// rather than truncated.
const MaxAnswerLength = 10000

// Result is the outcome of validating one free-text answer.
// MaskedText is always safe to persist when IsValid is true.
type Result struct {
	IsValid     bool
	MaskedText  string
	ContainsPII bool
	Warnings    []string
}

type detector struct {
	label   string
	pattern *regexp.Regexp
}

// Longer digit runs are matched first so the phone pattern cannot swallow a
// prefix of a card or identity number.
var detectors = []detector{
	{"email address", regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
	{"identity number", regexp.MustCompile(`\b\d{16}\b`)},
	{"card number", regexp.MustCompile(`\b(?:\d[ \-]?){13,19}\b`)},
	// A bare digit run is not enough: require an international prefix or
	// grouped digits with separators, so order ids and amounts pass through.
	{"phone number", regexp.MustCompile(`\+\d{8,15}\b|\(?\d{2,4}\)?[\s\-.]\d{3,4}[\s\-.]\d{3,4}\b`)},
}

// Sanitizer validates and redacts free-text answers before persistence.
type Sanitizer struct {
	maskToken string
}

func New(maskToken string) *Sanitizer {
	return &Sanitizer{maskToken: maskToken}
}

// ValidateAndMask checks one raw answer against the hard rules and replaces
// any detected PII span with the mask token. PII detection alone never makes
// the answer invalid; the masked text is stored and the caller is expected to
// log the warnings.
func (s *Sanitizer) ValidateAndMask(rawText string) *Result {
	trimmed := strings.TrimSpace(rawText)

	if trimmed == "" {
		return &Result{
			IsValid:    false,
			MaskedText: "",
			Warnings:   []string{"answer is empty"},
		}
	}

	if len(trimmed) > MaxAnswerLength {
		return &Result{
			IsValid:    false,
			MaskedText: "",
			Warnings:   []string{fmt.Sprintf("answer exceeds %d characters", MaxAnswerLength)},
		}
	}

	masked := trimmed
	var warnings []string
	for _, d := range detectors {
		if !d.pattern.MatchString(masked) {
			continue
		}
		masked = d.pattern.ReplaceAllString(masked, s.maskToken)
		warnings = append(warnings, fmt.Sprintf("detected %s, masked before save", d.label))
	}

	return &Result{
		IsValid:     true,
		MaskedText:  masked,
		ContainsPII: len(warnings) > 0,
		Warnings:    warnings,
	}
}
