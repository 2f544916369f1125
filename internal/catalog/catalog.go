// Package catalog enumerates the numbered click-target games. Every number
// in range maps to a reproducible configuration: the template is chosen by
// the last digit, the target shape by its parity.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/canvas-arcade/internal/config"
)

// Catalog bounds, inclusive.
const (
	First = 104
	Last  = 1000103
)

// ErrOutOfRange is returned for game numbers outside [First, Last].
var ErrOutOfRange = errors.New("catalog: game number out of range")

// Template names the theme of a numbered game.
type Template int

const (
	TemplateClick Template = iota
	TemplateShoot
	TemplateCollect
	TemplateAvoid
	TemplateMatch
	TemplateRace
	TemplateJump
	TemplatePuzzle
	TemplateDefend
	TemplateAttack
)

var templateNames = [...]string{
	TemplateClick:   "Click",
	TemplateShoot:   "Shoot",
	TemplateCollect: "Collect",
	TemplateAvoid:   "Avoid",
	TemplateMatch:   "Match",
	TemplateRace:    "Race",
	TemplateJump:    "Jump",
	TemplatePuzzle:  "Puzzle",
	TemplateDefend:  "Defend",
	TemplateAttack:  "Attack",
}

// String returns the template name.
func (t Template) String() string {
	if t >= 0 && int(t) < len(templateNames) {
		return templateNames[t]
	}
	return "Unknown"
}

// Target wander speed range for numbered games.
const (
	minSpeed = 1
	maxSpeed = 3
)

// Entry describes one numbered game.
type Entry struct {
	Number   int
	Template Template
	Seed     int64
	Config   config.GameConfig
}

// ID returns the registry-style identifier, e.g. "game104".
func (e Entry) ID() string {
	return ID(e.Number)
}

// Len returns how many games the catalog holds.
func Len() int {
	return Last - First + 1
}

// ID formats a game number as an identifier.
func ID(n int) string {
	return "game" + strconv.Itoa(n)
}

// ParseNumber accepts "123" or "game123" and returns the number.
// It does not check the range; Lookup does.
func ParseNumber(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "game"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Lookup builds the entry for game number n.
func Lookup(n int) (Entry, error) {
	if n < First || n > Last {
		return Entry{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, n, First, Last)
	}

	tmpl := Template(n % 10)
	cfg := config.DefaultClickerConfig()
	cfg.Title = fmt.Sprintf("%s Game %d", tmpl, n)
	cfg.Targets.Speed = minSpeed
	cfg.Targets.SpeedMax = maxSpeed
	if n%2 == 0 {
		cfg.Targets.Shape = config.ShapeRect
		cfg.Rules.Collision = config.CollisionRect
	} else {
		cfg.Targets.Shape = config.ShapeCircle
		cfg.Rules.Collision = config.CollisionCircle
	}

	return Entry{
		Number:   n,
		Template: tmpl,
		Seed:     seedFor(n),
		Config:   cfg,
	}, nil
}

// seedFor spreads consecutive numbers across the seed space.
func seedFor(n int) int64 {
	return int64(uint64(n) * 0x9E3779B97F4A7C15 >> 1) //#nosec G115 -- seed derivation
}
