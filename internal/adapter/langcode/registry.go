// Package langcode implements the closed registry of language codes that
// question translations may use. Codes are ISO 639 languages, stored in
// their shortest canonical form ("deu" becomes "de").
package langcode

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLanguage is returned for codes outside the registry.
var ErrUnknownLanguage = errors.New("unknown language")

// Registry validates and canonicalizes language codes.
// The zero value is not usable; use New.
type Registry struct {
	allowed map[language.Base]struct{}
}

// New creates a registry. With no codes every ISO 639 language is accepted;
// otherwise only the listed languages are.
func New(codes []string) (*Registry, error) {
	r := &Registry{}
	if len(codes) == 0 {
		return r, nil
	}

	r.allowed = make(map[language.Base]struct{}, len(codes))
	for _, code := range codes {
		base, err := parse(code)
		if err != nil {
			return nil, err
		}
		r.allowed[base] = struct{}{}
	}
	return r, nil
}

// Normalize returns the canonical form of code, or ErrUnknownLanguage.
func (r *Registry) Normalize(code string) (string, error) {
	base, err := parse(code)
	if err != nil {
		return "", err
	}
	if r.allowed != nil {
		if _, ok := r.allowed[base]; !ok {
			return "", fmt.Errorf("%q: %w", code, ErrUnknownLanguage)
		}
	}
	return base.String(), nil
}

// Languages returns the allow-list in sorted order, or nil when every
// language is accepted.
func (r *Registry) Languages() []string {
	if r.allowed == nil {
		return nil
	}
	out := make([]string, 0, len(r.allowed))
	for b := range r.allowed {
		out = append(out, b.String())
	}
	slices.Sort(out)
	return out
}

func parse(code string) (language.Base, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return language.Base{}, fmt.Errorf("empty code: %w", ErrUnknownLanguage)
	}
	base, err := language.ParseBase(code)
	if err != nil || base.String() == "und" {
		return language.Base{}, fmt.Errorf("%q: %w", code, ErrUnknownLanguage)
	}
	return base, nil
}
