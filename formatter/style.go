package formatter

import (
	"github.com/fatih/color"
)

// Style selects the ANSI styling of a token
type Style uint8

const (
	StyleNone Style = iota
	StyleGray
	StyleRed
	StyleGreen
	StyleYellow
	StyleBlue
	StyleMagenta
	StyleCyan
	StyleWhite
	// StyleFatal is white on a red background
	StyleFatal
)

// styles is built once and never mutated. EnableColor pins each color on,
// so output carries escapes even when stdout is a pipe.
var styles = [...]*color.Color{
	StyleGray:    forced(color.FgHiBlack),
	StyleRed:     forced(color.FgRed),
	StyleGreen:   forced(color.FgGreen),
	StyleYellow:  forced(color.FgYellow),
	StyleBlue:    forced(color.FgBlue),
	StyleMagenta: forced(color.FgMagenta),
	StyleCyan:    forced(color.FgCyan),
	StyleWhite:   forced(color.FgWhite),
	StyleFatal:   forced(color.FgWhite, color.BgRed),
}

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Paint wraps text in the escape sequences of s. Empty text stays empty
// so that the token is dropped by the joiner.
func Paint(text string, s Style) string {
	if text == "" || s == StyleNone || int(s) >= len(styles) {
		return text
	}
	return styles[s].Sprint(text)
}
