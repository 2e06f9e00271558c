package dump

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/segarray"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette maps the parts of a page dump to colors.
// Nil entries are printed without color.
type Palette struct {
	Header *color.Color
	Value  *color.Color
	Hole   *color.Color
}

// DefaultPalette is used if a ConsoleConfig does not name a palette.
var DefaultPalette = Palette{
	Header: color.New(color.FgBlue, color.Bold),
	Value:  nil,
	Hole:   color.New(color.FgRed),
}

// ConsoleConfig configures console output.
type ConsoleConfig struct {
	LineWidth int            // wrap page contents at this width, measured in ‘en’s
	Context   *uax11.Context // context for East Asian character widths
	Palette   *Palette
}

var setupGraphemes sync.Once

// Console writes the page layout of a to w, one block per page.
//
// Every block starts with a header line
//
//	page 2  len 4/cap 4  holes 1
//
// followed by the page's slots in columns of uniform width, wrapped at
// cfg.LineWidth. Holes are printed as HoleMark. If cfg is nil, a heuristic
// will create a config from the current terminal's properties.
func Console[T any](w io.Writer, a *segarray.Array[T], cfg *ConsoleConfig) error {
	if w == nil || a == nil {
		return segarray.ErrIllegalArguments
	}
	if cfg == nil {
		cfg = ConfigFromTerminal()
		cfg.Context = uax11.ContextFromEnvironment()
	}
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	palette := cfg.Palette
	if palette == nil {
		palette = &DefaultPalette
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	sum := a.Summary()
	_, err := fmt.Fprintf(w, "%d elements, %d pages, %d slots, %d holes\n",
		a.GetTotalLen(), sum.Pages, sum.Slots, sum.Holes)
	if err != nil {
		return err
	}
	for pageID := 1; pageID <= a.PageCount(); pageID++ {
		p, _ := a.GetPage(pageID)
		header := fmt.Sprintf("page %d  len %d/cap %d  holes %d", pageID, p.Len(), p.Cap(), p.Holes())
		if err = fprintln(w, palette.Header, header); err != nil {
			return err
		}
		cells := make([]cell, p.Len())
		colwidth := 1
		for off := 1; off <= p.Len(); off++ {
			s, _ := p.SlotAt(off)
			c := cell{text: HoleMark, hole: s.Empty}
			if !s.Empty {
				c.text = fmt.Sprint(s.Value)
			}
			c.width = uax11.StringWidth(grapheme.StringFromString(c.text), cfg.Context)
			colwidth = max(colwidth, c.width)
			cells[off-1] = c
		}
		if err = writeCells(w, cells, colwidth, cfg.LineWidth, palette); err != nil {
			return err
		}
	}
	return nil
}

// cell is a formatted slot.
type cell struct {
	text  string
	width int
	hole  bool
}

func writeCells(w io.Writer, cells []cell, colwidth, linewidth int, palette *Palette) error {
	if len(cells) == 0 {
		return nil
	}
	perLine := max(1, (linewidth+1)/(colwidth+1))
	for k, c := range cells {
		if k > 0 {
			sep := " "
			if k%perLine == 0 {
				sep = "\n"
			}
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		col := palette.Value
		if c.hole {
			col = palette.Hole
		}
		padded := strings.Repeat(" ", colwidth-c.width) + c.text
		if err := fprint(w, col, padded); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func fprint(w io.Writer, c *color.Color, s string) error {
	var err error
	if c == nil {
		_, err = io.WriteString(w, s)
	} else {
		_, err = c.Fprint(w, s)
	}
	return err
}

func fprintln(w io.Writer, c *color.Color, s string) error {
	if err := fprint(w, c, s); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the LineWidth parameter accordingly.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("dump", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
