// Package catalog - Catalog validation
// Checks that go beyond what registry construction enforces.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"qualitymap/core/derive"
	"qualitymap/core/quality"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(quality.Entry) error

var codePattern = regexp.MustCompile(`^[A-Z0-9]{2,3}(_[A-Za-z0-9_]+)?$`)

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateCodeSyntax,
		validateDescriptionPresent,
		validateRenamedCodeMatchesHint,
	}
}

// Validate checks every entry against every rule and returns all violations
func Validate(r *quality.Registry, rules []ValidationRule) []error {
	var errs []error

	for e := range r.Entries() {
		for _, rule := range rules {
			if err := rule(e); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", e.Code, err))
			}
		}
	}

	return errs
}

// validateCodeSyntax ensures codes are a qualifier, optionally followed by a suffix
func validateCodeSyntax(e quality.Entry) error {
	if !codePattern.MatchString(e.Code) {
		return fmt.Errorf("code does not match %s", codePattern)
	}
	return nil
}

// validateDescriptionPresent ensures every code carries a mapping hint
func validateDescriptionPresent(e quality.Entry) error {
	if strings.TrimSpace(e.Description) == "" {
		return errors.New("empty mapping hint")
	}
	if e.Description != strings.TrimSpace(e.Description) {
		return errors.New("mapping hint has surrounding whitespace")
	}
	return nil
}

// validateRenamedCodeMatchesHint ensures a suffixed code of an unspecified
// entry spells its own hint (Z50_Termindaten_der_Marktlokation)
func validateRenamedCodeMatchesHint(e quality.Entry) error {
	if e.Quality != quality.Unspecified {
		return nil
	}
	_, suffix, found := strings.Cut(e.Code, "_")
	if !found {
		return nil
	}
	if want := derive.CodeSuffix(e.Description); suffix != want {
		return fmt.Errorf("suffix %q does not spell hint (want %q)", suffix, want)
	}
	return nil
}

// MustValidate panics if validation fails
func MustValidate(r *quality.Registry) {
	errs := Validate(r, DefaultValidationRules())
	if len(errs) > 0 {
		panic(fmt.Sprintf("catalog has %d validation errors: %v", len(errs), errors.Join(errs...)))
	}
}
