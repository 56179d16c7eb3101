package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/fwdlist"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors used for displaying a list.
type Palette struct {
	Value    *color.Color
	Marker   *color.Color
	Ellipsis *color.Color
}

// DefaultPalette is the palette used if a Config does not name one.
func DefaultPalette() *Palette {
	return &Palette{
		Value:    color.New(color.FgBlue),
		Marker:   color.New(color.FgRed, color.Bold),
		Ellipsis: color.New(color.Faint),
	}
}

// Config configures the output of lists.
type Config struct {
	LineWidth int            // maximum width in ‘en’s; 0 means unlimited
	Marker    string         // cursor mark, defaults to "|"
	Palette   *Palette       // colors, defaults to DefaultPalette()
	Plain     bool           // do not use colors at all
	Context   *uax11.Context // context for width measuring, defaults to uax11.LatinContext
}

const ellipsis = "…"

var setupGraphemes sync.Once

// Print outputs a list with a cursor mark at position to stdout, followed by
// a newline.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T any](l *fwdlist.List[T], position int, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if err := Fprint(os.Stdout, l, position, config); err != nil {
		return err
	}
	_, err := io.WriteString(os.Stdout, "\n")
	return err
}

// Fprint outputs a list with a cursor mark in front of the value at position.
// A position of l.Len() puts the mark behind the last value, a negative position
// omits the mark.
func Fprint[T any](w io.Writer, l *fwdlist.List[T], position int, config *Config) error {
	if position > l.Len() {
		return fmt.Errorf("formatter: cursor position %d out of range [0…%d]: %w",
			position, l.Len(), fwdlist.ErrIndexOutOfBounds)
	}
	config = normalize(config)
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	tokens := make([]token, 0, l.Len()+1)
	for i, v := range l.All() {
		if i == position {
			tokens = append(tokens, config.token(config.Marker, true))
		}
		tokens = append(tokens, config.token(fmt.Sprint(v), false))
	}
	if position == l.Len() {
		tokens = append(tokens, config.token(config.Marker, true))
	}
	lo, hi := window(tokens, markerIndex(tokens), config.LineWidth)
	tracer().Debugf("formatter: showing tokens [%d…%d) of %d", lo, hi, len(tokens))
	out := &output{w: w, config: config}
	out.write("[", nil)
	if lo > 0 {
		out.write(ellipsis+" ", config.Palette.Ellipsis)
	}
	for i, t := range tokens[lo:hi] {
		if i > 0 {
			out.write(" ", nil)
		}
		if t.marker {
			out.write(t.text, config.Palette.Marker)
		} else {
			out.write(t.text, config.Palette.Value)
		}
	}
	if hi < len(tokens) {
		out.write(" "+ellipsis, config.Palette.Ellipsis)
	}
	out.write("]", nil)
	return out.err
}

// Sprint is like Fprint, but returns the output as a string. Sprint never uses
// colors.
func Sprint[T any](l *fwdlist.List[T], position int, config *Config) string {
	var c Config
	if config != nil {
		c = *config
	}
	c.Plain = true
	var sb strings.Builder
	if err := Fprint(&sb, l, position, &c); err != nil {
		tracer().Errorf("formatter: %v", err)
		return ""
	}
	return sb.String()
}

// --- Layout ----------------------------------------------------------------

type token struct {
	text   string
	width  int
	marker bool
}

func (config *Config) token(s string, marker bool) token {
	return token{
		text:   s,
		width:  config.width(s),
		marker: marker,
	}
}

// width returns the display width of s in ‘en’s. Printable ASCII is always
// narrow; anything else is measured by UAX#11 grapheme widths.
func (config *Config) width(s string) int {
	if isPrintableASCII(s) {
		return len(s)
	}
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, config.Context)
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func markerIndex(tokens []token) int {
	for i, t := range tokens {
		if t.marker {
			return i
		}
	}
	return 0
}

// window selects a range of tokens around the token at center, which fits
// into linewidth together with brackets and ellipses. It grows the range
// alternately to the right and to the left.
func window(tokens []token, center int, linewidth int) (lo, hi int) {
	if len(tokens) == 0 {
		return 0, 0
	}
	total := 2 + len(tokens) - 1
	for _, t := range tokens {
		total += t.width
	}
	if linewidth <= 0 || total <= linewidth {
		return 0, len(tokens)
	}
	const reserve = 2 + 2*2 // brackets and two ellipses with blanks
	lo, hi = center, center+1
	used := reserve + tokens[center].width
	for {
		grown := false
		if hi < len(tokens) && used+1+tokens[hi].width <= linewidth {
			used += 1 + tokens[hi].width
			hi++
			grown = true
		}
		if lo > 0 && used+1+tokens[lo-1].width <= linewidth {
			used += 1 + tokens[lo-1].width
			lo--
			grown = true
		}
		if !grown {
			return lo, hi
		}
	}
}

type output struct {
	w      io.Writer
	config *Config
	err    error
}

func (out *output) write(s string, c *color.Color) {
	if out.err != nil {
		return
	}
	if c == nil || out.config.Plain {
		_, out.err = io.WriteString(out.w, s)
		return
	}
	_, out.err = c.Fprint(out.w, s)
}

func normalize(config *Config) *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.Marker == "" {
		c.Marker = "|"
	}
	if c.Palette == nil {
		c.Palette = DefaultPalette()
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched off
// for non-interactive output.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 65
		config.Plain = true
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
