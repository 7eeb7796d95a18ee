package utils

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/mattn/go-runewidth"
)

// WithPadding pads a string on the right up to the given display width
func WithPadding(str string, padding int) string {
	width := DisplayWidth(str)
	if padding < width {
		return str
	}
	return str + strings.Repeat(" ", padding-width)
}

// WithLeftPadding pads a string on the left up to the given display width
func WithLeftPadding(str string, padding int) string {
	width := DisplayWidth(str)
	if padding < width {
		return str
	}
	return strings.Repeat(" ", padding-width) + str
}

// DisplayWidth returns how many terminal columns a string occupies once its
// color codes are stripped
func DisplayWidth(str string) int {
	return runewidth.StringWidth(Decolorise(str))
}

// MultiColoredString takes a string and an array of colour attributes and returns a colored
// string with those attributes
func MultiColoredString(str string, colorAttributes ...color.Attribute) string {
	// fatih/color does not have a color.Default attribute, so unless we fork that repo the only way for us to express that we don't want to color a string different to the terminal's default is to not call the function in the first place, but that's annoying when you want a streamlined code path. Because I'm too lazy to fork the repo right now, we'll just assume that by FgWhite you really mean Default, for the sake of supporting users with light themed terminals.
	attributes := make([]color.Attribute, 0, len(colorAttributes))
	for _, attribute := range colorAttributes {
		if attribute != color.FgWhite {
			attributes = append(attributes, attribute)
		}
	}
	if len(attributes) == 0 {
		return str
	}
	return ColoredStringDirect(str, color.New(attributes...))
}

// ColoredStringDirect used for aggregating a few color attributes rather than
// just sending a single one
func ColoredStringDirect(str string, colour *color.Color) string {
	return colour.SprintFunc()(fmt.Sprint(str))
}

// Decolorise strips a string of color
func Decolorise(str string) string {
	re := regexp.MustCompile(`\x1B\[([0-9]{1,2}(;[0-9]{1,2})*)?[m|K]`)
	return re.ReplaceAllString(str, "")
}

// Max returns the maximum of two integers
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// GetColorAttribute gets the color attribute from the string
func GetColorAttribute(key string) color.Attribute {
	value, present := colorMap[key]
	if present {
		return value
	}
	return color.FgWhite
}

// GetColorAttributes maps each of the given keys to its color attribute
func GetColorAttributes(keys []string) []color.Attribute {
	attributes := make([]color.Attribute, len(keys))
	for i, key := range keys {
		attributes[i] = GetColorAttribute(key)
	}
	return attributes
}

// IsValidColor tells us whether the key names a color attribute we know about
func IsValidColor(key string) bool {
	_, present := colorMap[key]
	return present
}

var colorMap = map[string]color.Attribute{
	"default":   color.FgWhite,
	"black":     color.FgBlack,
	"red":       color.FgRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"blue":      color.FgBlue,
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"white":     color.FgWhite,
	"hiRed":     color.FgHiRed,
	"hiGreen":   color.FgHiGreen,
	"hiYellow":  color.FgHiYellow,
	"hiBlue":    color.FgHiBlue,
	"hiMagenta": color.FgHiMagenta,
	"hiCyan":    color.FgHiCyan,
	"bold":      color.Bold,
	"underline": color.Underline,
}

// WriteLines writes each line followed by a newline
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return errors.Wrap(err, 0)
		}
	}
	return nil
}
