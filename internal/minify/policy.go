package minify

import (
	"fmt"
	"regexp"
)

// DefaultInvalidPatterns excludes generated extension interfaces; tooling
// downstream reads their source untouched.
var DefaultInvalidPatterns = []string{
	`^[A-Za-z][a-zA-Z0-9_]*ExtensionInterface\.php$`,
}

// FilenamePolicy decides by base name whether a generated file may be minified.
type FilenamePolicy struct {
	patterns []string
	compiled []*regexp.Regexp
}

// NewFilenamePolicy compiles patterns in order. A nil slice selects
// DefaultInvalidPatterns; an empty non-nil slice excludes nothing.
func NewFilenamePolicy(patterns []string) (*FilenamePolicy, error) {
	if patterns == nil {
		patterns = DefaultInvalidPatterns
	}
	p := &FilenamePolicy{
		patterns: append([]string(nil), patterns...),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, expr := range patterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("filename pattern %q: %w", expr, err)
		}
		p.compiled = append(p.compiled, re)
	}
	return p, nil
}

// DefaultPolicy returns the policy built from DefaultInvalidPatterns.
func DefaultPolicy() *FilenamePolicy {
	p, err := NewFilenamePolicy(nil)
	if err != nil {
		panic(err)
	}
	return p
}

// Allows reports whether baseName may be minified: false on the first matching pattern.
func (p *FilenamePolicy) Allows(baseName string) bool {
	if p == nil {
		return true
	}
	for _, re := range p.compiled {
		if re.MatchString(baseName) {
			return false
		}
	}
	return true
}

// Patterns returns a copy of the pattern sources in evaluation order.
func (p *FilenamePolicy) Patterns() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.patterns...)
}
