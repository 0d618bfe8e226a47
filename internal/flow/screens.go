// Package flow hosts a single login screen inside a Bubble Tea program and
// reports which action the user chose.
package flow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ScreenKind names one of the mountable screens.
type ScreenKind string

const (
	ScreenSplash  ScreenKind = "splash"
	ScreenFailure ScreenKind = "failure"
	ScreenIntro   ScreenKind = "intro"
)

// AllScreens lists every screen kind in display order.
func AllScreens() []ScreenKind {
	return []ScreenKind{ScreenSplash, ScreenFailure, ScreenIntro}
}

// ErrUnknownScreen is returned by ParseScreen for names it does not know.
var ErrUnknownScreen = errors.New("unknown screen")

// maxSuggestDistance bounds how far a typo may be from a screen name and
// still produce a suggestion.
const maxSuggestDistance = 3

// ParseScreen resolves a case-insensitive screen name.
func ParseScreen(name string) (ScreenKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, k := range AllScreens() {
		if n == string(k) {
			return k, nil
		}
	}
	if s, ok := suggestScreen(n); ok {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownScreen, name, s)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownScreen, name)
}

func suggestScreen(name string) (ScreenKind, bool) {
	if name == "" {
		return "", false
	}
	best, bestDist := ScreenKind(""), maxSuggestDistance+1
	for _, k := range AllScreens() {
		if d := levenshtein.ComputeDistance(name, string(k)); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}
