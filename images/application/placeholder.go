package application

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// labelBaselineOffset shifts the label baseline below the vertical center.
	labelBaselineOffset = 8
	// glyphCacheEntries covers the label alphabet: digits, space and "x".
	glyphCacheEntries = 16
)

type Rect struct {
	X, Y, W, H float64
	Fill       color.NRGBA
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Stroke         color.NRGBA
}

type Label struct {
	X, Y, DY float64
	Size     float64
	Fill     color.NRGBA
	Text     string
}

// Layout is the resolved geometry of a placeholder, painted in field order.
// Coordinates are not clipped: a border wider than half the canvas yields
// degenerate shapes rather than an error.
type Layout struct {
	Width    int
	Height   int
	Frame    Rect
	Panel    Rect
	Cross    [2]Line
	Backdrop Rect
	Label    Label
}

// NewLayout computes the placeholder geometry from spec.
func NewLayout(spec domain.PlaceholderSpec) Layout {
	w := float64(spec.Width)
	h := float64(spec.Height)
	b := float64(spec.Border)
	ts := float64(min(spec.TextSize, domain.MaxPlaceholderTextSize))

	bg := colorOr(spec.BgColor, domain.DefaultPlaceholderBgColor)
	fg := colorOr(spec.FgColor, domain.DefaultPlaceholderFgColor)
	text := colorOr(spec.TextColor, domain.DefaultPlaceholderTextColor)

	return Layout{
		Width:  spec.Width,
		Height: spec.Height,
		Frame:  Rect{X: 0, Y: 0, W: w, H: h, Fill: fg},
		Panel:  Rect{X: b, Y: b, W: w - b*2, H: h - b*2, Fill: bg},
		Cross: [2]Line{
			{X1: b * 2, Y1: b * 2, X2: w - b*2, Y2: h - b*2, Width: b, Stroke: fg},
			{X1: w - b*2, Y1: b * 2, X2: b * 2, Y2: h - b*2, Width: b, Stroke: fg},
		},
		Backdrop: Rect{X: b, Y: (h - ts) / 2, W: w - b*2, H: ts, Fill: bg},
		Label: Label{
			X:    w / 2,
			Y:    h / 2,
			DY:   labelBaselineOffset,
			Size: ts,
			Fill: text,
			Text: fmt.Sprintf("%d x %d", spec.Width, spec.Height),
		},
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func opacity(c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return ` fill-opacity="` + num(float64(c.A)/0xff) + `"`
}

func strokeOpacity(c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return ` stroke-opacity="` + num(float64(c.A)/0xff) + `"`
}

func writeRect(b *bytes.Buffer, r Rect) {
	fmt.Fprintf(b, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s />`+"\n",
		num(r.X), num(r.Y), num(r.W), num(r.H), hexColor(r.Fill), opacity(r.Fill))
}

func writeLine(b *bytes.Buffer, l Line) {
	fmt.Fprintf(b, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="%s" stroke="%s"%s />`+"\n",
		num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), num(l.Width), hexColor(l.Stroke), strokeOpacity(l.Stroke))
}

// SVG renders the layout as standalone SVG markup. Colors are emitted in
// normalized hex form, never as the raw query strings.
func (l Layout) SVG() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", l.Width, l.Height)
	writeRect(&b, l.Frame)
	writeRect(&b, l.Panel)
	writeLine(&b, l.Cross[0])
	writeLine(&b, l.Cross[1])
	writeRect(&b, l.Backdrop)
	fmt.Fprintf(&b, `  <text x="%s" y="%s" dy="%s" font-family="Helvetica" font-size="%s" fill="%s"%s text-anchor="middle">%s</text>`+"\n",
		num(l.Label.X), num(l.Label.Y), num(l.Label.DY), num(l.Label.Size),
		hexColor(l.Label.Fill), opacity(l.Label.Fill), l.Label.Text)
	b.WriteString("</svg>\n")
	return b.Bytes()
}

// PlaceholderRenderer rasterizes placeholder layouts.
type PlaceholderRenderer struct {
	font        *truetype.Font
	jpegQuality int
}

func NewPlaceholderRenderer(jpegQuality int) (*PlaceholderRenderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}

	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}

	return &PlaceholderRenderer{
		font:        f,
		jpegQuality: jpegQuality,
	}, nil
}

// Render draws the placeholder for spec onto a transparent canvas and encodes
// it in format.
func (r *PlaceholderRenderer) Render(w io.Writer, spec domain.PlaceholderSpec, format domain.Format) error {
	l := NewLayout(spec)
	dc := gg.NewContext(l.Width, l.Height)
	dc.SetLineCapButt()

	fillRect(dc, l.Frame)
	fillRect(dc, l.Panel)
	for _, line := range l.Cross {
		dc.SetColor(line.Stroke)
		dc.SetLineWidth(line.Width)
		dc.DrawLine(line.X1, line.Y1, line.X2, line.Y2)
		dc.Stroke()
	}
	fillRect(dc, l.Backdrop)

	// Faces keep a glyph cache and are not safe for concurrent use.
	face := truetype.NewFace(r.font, &truetype.Options{
		Size:              l.Label.Size,
		GlyphCacheEntries: glyphCacheEntries,
	})
	defer face.Close()
	dc.SetFontFace(face)
	dc.SetColor(l.Label.Fill)
	dc.DrawStringAnchored(l.Label.Text, l.Label.X, l.Label.Y+l.Label.DY, 0.5, 0)

	return encode(w, dc.Image(), format, r.jpegQuality)
}

func fillRect(dc *gg.Context, r Rect) {
	dc.SetColor(r.Fill)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Fill()
}
