// Package drawadapter is the Draw Adapter external collaborator: the only
// place in the repository that allocates colors, loads fonts, measures
// text, or paints pixels onto the bar window. The core window manager
// package never imports xgraphics directly; it talks to an *Adapter through
// the handful of methods below, matching the drawing primitives dwm.c keeps
// in drw.c behind the Drw/Clr/Fnt types.
package drawadapter

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/golang/freetype/truetype"
	xp "github.com/BurntSushi/xgb/xproto"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// candidateFontPaths are tried in order until one parses. xgraphics has no
// fontconfig resolver of its own, so unlike dwm's Xft-backed drw.c (which
// resolves a family name like "monospace:size=10" through fontconfig), this
// adapter falls back to whichever common monospace TTF is actually
// installed — the family names in cfg.Fonts are recorded for diagnostics
// but not resolved by name.
var candidateFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
}

// Scheme is a resolved border/foreground/background color triple, the
// decoded form of config.go's scheme hex strings.
type Scheme struct {
	Fg, Bg, Border color.RGBA
}

// Adapter owns one off-screen pixmap-backed image sized to the bar window
// it was created for, plus the single font loaded at startup. Mirrors
// dwm.c's Drw.
type Adapter struct {
	xu       *xgbutil.XUtil
	win      xp.Window
	img      *xgraphics.Image
	face     font.Face
	fontSize float64
	scheme   Scheme
}

// New loads the first usable font from names (currently ignored beyond
// diagnostics, see candidateFontPaths) and creates a w×h backing pixmap for
// win. Mirrors dwm.c's drw_create + drw_fontset_create.
func New(xu *xgbutil.XUtil, win xp.Window, w, h int, names []string) (*Adapter, error) {
	a := &Adapter{xu: xu, win: win, fontSize: 13}
	if err := a.loadFont(names); err != nil {
		return nil, err
	}
	a.img = xgraphics.New(xu, image.Rect(0, 0, max1(w), max1(h)))
	if err := a.img.CreatePixmap(); err != nil {
		return nil, fmt.Errorf("create bar pixmap: %w", err)
	}
	return a, nil
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (a *Adapter) loadFont(names []string) error {
	var lastErr error
	for _, p := range candidateFontPaths {
		b, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		f, err := xgraphics.ParseFont(bytes.NewReader(b))
		if err != nil {
			lastErr = err
			continue
		}
		a.face = truetype.NewFace(f, &truetype.Options{Size: a.fontSize})
		return nil
	}
	return fmt.Errorf("load fonts %v: no candidate font found: %w", names, lastErr)
}

// Resize replaces the backing pixmap with one sized w×h. Mirrors dwm.c's
// drw_resize.
func (a *Adapter) Resize(w, h int) {
	if a.img != nil {
		a.img.Destroy()
	}
	a.img = xgraphics.New(a.xu, image.Rect(0, 0, max1(w), max1(h)))
	if err := a.img.CreatePixmap(); err != nil {
		return
	}
}

// Free releases the backing pixmap. Mirrors dwm.c's drw_free.
func (a *Adapter) Free() {
	if a.img != nil {
		a.img.Destroy()
	}
}

// SetScheme installs the fg/bg/border triple subsequent Text/Rect calls
// paint with. Mirrors dwm.c's drw_setscheme.
func (a *Adapter) SetScheme(s Scheme) {
	a.scheme = s
}

// ColorCreate parses a "#rrggbb" string into a color.RGBA. Mirrors dwm.c's
// drw_clr_create (XftColorAllocName).
func ColorCreate(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want #rrggbb", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Pixel packs a color into the 32-bit value ChangeWindowAttributes'
// CwBorderPixel expects for a TrueColor visual.
func Pixel(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// TextWidth measures s without drawing it. Mirrors dwm.c's TEXTW (drw_fontset_getwidth + lrpad).
func (a *Adapter) TextWidth(s string) int {
	if a.face == nil {
		return len(s) * 7
	}
	w := font.MeasureString(a.face, s)
	return w.Round() + int(a.fontSize) // lrpad: one fontSize of horizontal padding
}

// Text clears (x,y,w,h) to bg (or fg, if invert) then draws s left-padded
// by half the font size, returning the drawn width. Mirrors dwm.c's
// drw_text.
func (a *Adapter) Text(x, y, w, h int, s string, invert bool) int {
	fg, bg := a.scheme.Fg, a.scheme.Bg
	if invert {
		fg, bg = bg, fg
	}
	a.fillRect(x, y, w, h, bg)
	if a.face == nil || s == "" {
		return 0
	}
	pad := int(a.fontSize) / 2
	baseline := y + (h+int(a.fontSize))/2
	startX := x + pad
	d := &font.Drawer{
		Dst:  a.img,
		Src:  image.NewUniform(fg),
		Face: a.face,
		Dot:  fixed.P(startX, baseline),
	}
	d.DrawString(s)
	return d.Dot.X.Round() - startX
}

// Rect paints (x,y,w,h) with fg (or bg, if invert): a solid fill when
// filled is set, otherwise a one-pixel outline when empty is set, and
// nothing when neither is. Mirrors dwm.c's drw_rect's filled/outline
// distinction (used for the occupancy and urgency square on the tag bar).
func (a *Adapter) Rect(x, y, w, h int, filled, empty, invert bool) {
	clr := a.scheme.Fg
	if invert {
		clr = a.scheme.Bg
	}
	if filled {
		a.fillRect(x, y, w, h, clr)
		return
	}
	if empty {
		a.fillRect(x, y, w, 1, clr)
		a.fillRect(x, y+h-1, w, 1, clr)
		a.fillRect(x, y, 1, h, clr)
		a.fillRect(x+w-1, y, 1, h, clr)
	}
}

func (a *Adapter) fillRect(x, y, w, h int, c color.RGBA) {
	draw.Draw(a.img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

// Map flushes the backing pixmap to the X server and copies (x,y,w,h) of
// it onto win. Mirrors dwm.c's drw_map.
func (a *Adapter) Map(win xp.Window, x, y, w, h int) {
	if err := a.img.XDraw(); err != nil {
		return
	}
	gc, err := xp.NewGcontextId(a.xu.Conn())
	if err != nil {
		return
	}
	defer xp.FreeGC(a.xu.Conn(), gc)
	xp.CreateGC(a.xu.Conn(), gc, xp.Drawable(win), 0, nil)
	xp.CopyArea(a.xu.Conn(), xp.Drawable(a.img.Pixmap), xp.Drawable(win), gc,
		int16(x), int16(y), int16(x), int16(y), uint16(w), uint16(h))
}

// CursorCreate allocates an X cursor by cursorfont shape (see
// xgbutil/xcursor's named constants, e.g. xcursor.Fleur for move,
// xcursor.XTerm for resize). Mirrors dwm.c's drw_cur_create.
func CursorCreate(xu *xgbutil.XUtil, shape uint16) (xp.Cursor, error) {
	return xcursor.CreateCursor(xu, shape)
}

// CursorFree releases a cursor allocated by CursorCreate. Mirrors dwm.c's
// drw_cur_free.
func CursorFree(xu *xgbutil.XUtil, c xp.Cursor) {
	xp.FreeCursor(xu.Conn(), c)
}
