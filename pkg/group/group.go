// Package group holds the user-defined event categories.
package group

import (
	"errors"
	"strings"
	"unicode"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// Default is the protected group every calendar starts with.
	Default = "default"

	DefaultColor  = "#e5e7eb"
	NewGroupColor = "#ffffff"
	// FallbackColor is shown for events whose group no longer exists.
	FallbackColor = "lightgray"
)

// Group is a named category with a display color and a visibility toggle.
type Group struct {
	Name    string `json:"name" yaml:"name" mapstructure:"name"`
	Color   string `json:"color" yaml:"color" mapstructure:"color"`
	Visible bool   `json:"visible" yaml:"visible" mapstructure:"visible"`
}

// Normalize strips every whitespace rune from a group name.
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

var namedColors = map[string]string{
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"gray":      "#808080",
	"white":     "#ffffff",
	"black":     "#000000",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#800080",
}

// ErrInvalidColor is returned for colors that are neither hex nor a known name.
var ErrInvalidColor = errors.New("group: invalid color")

// ParseColor accepts "#rrggbb", "#rgb" or one of a few CSS color names.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, ErrInvalidColor
	}
	return c, nil
}

// NormalizeColor validates s and returns it as lowercase "#rrggbb".
func NormalizeColor(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Foreground picks black or white text, whichever reads better on bg.
func Foreground(bg string) string {
	c, err := ParseColor(bg)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
