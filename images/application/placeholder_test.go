package application

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/dfryer1193/imgserve/images/domain"
)

func TestNewLayout(t *testing.T) {
	layout := NewLayout(domain.DefaultPlaceholderSpec())

	if layout.Width != 300 || layout.Height != 200 {
		t.Errorf("size = %dx%d, want 300x200", layout.Width, layout.Height)
	}
	if layout.Label.Text != "300 x 200" {
		t.Errorf("label = %q, want %q", layout.Label.Text, "300 x 200")
	}

	expectedPanel := Rect{X: 5, Y: 5, W: 290, H: 190, Fill: colorOr("#fcfcfc", "")}
	if layout.Panel != expectedPanel {
		t.Errorf("panel = %+v, want %+v", layout.Panel, expectedPanel)
	}

	first := layout.Cross[0]
	if first.X1 != 10 || first.Y1 != 10 || first.X2 != 290 || first.Y2 != 190 || first.Width != 5 {
		t.Errorf("first diagonal = %+v", first)
	}
	second := layout.Cross[1]
	if second.X1 != 290 || second.Y1 != 10 || second.X2 != 10 || second.Y2 != 190 {
		t.Errorf("second diagonal = %+v", second)
	}

	if layout.Backdrop.Y != 88 || layout.Backdrop.H != 24 {
		t.Errorf("backdrop = %+v, want y=88 h=24", layout.Backdrop)
	}
}

func TestNewLayoutCapsTextSize(t *testing.T) {
	spec := domain.DefaultPlaceholderSpec()
	spec.TextSize = 100000

	layout := NewLayout(spec)
	if layout.Label.Size != float64(domain.MaxPlaceholderTextSize) {
		t.Errorf("label size = %v, want %d", layout.Label.Size, domain.MaxPlaceholderTextSize)
	}
}

func TestNewLayoutColors(t *testing.T) {
	spec := domain.DefaultPlaceholderSpec()
	spec.BgColor = "#000"
	spec.FgColor = "bogus"

	layout := NewLayout(spec)
	if hexColor(layout.Panel.Fill) != "#000000" {
		t.Errorf("panel fill = %s, want #000000", hexColor(layout.Panel.Fill))
	}
	if hexColor(layout.Frame.Fill) != "#dddddd" {
		t.Errorf("invalid fgcolor should fall back, got %s", hexColor(layout.Frame.Fill))
	}
	if layout.Width != 300 || layout.Height != 200 {
		t.Errorf("colors changed size to %dx%d", layout.Width, layout.Height)
	}
}

func TestLayoutSVG(t *testing.T) {
	spec := domain.DefaultPlaceholderSpec()
	spec.TextColor = `"><script>alert(1)</script>`

	svg := string(NewLayout(spec).SVG())

	tests := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="200">`,
		`<rect x="0" y="0" width="300" height="200" fill="#dddddd" />`,
		`<rect x="5" y="5" width="290" height="190" fill="#fcfcfc" />`,
		`<line x1="10" y1="10" x2="290" y2="190" stroke-width="5" stroke="#dddddd" />`,
		`>300 x 200</text>`,
		`fill="#aaaaaa"`,
	}
	for _, want := range tests {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q\n%s", want, svg)
		}
	}
	if strings.Contains(svg, "<script>") {
		t.Errorf("SVG contains raw color input:\n%s", svg)
	}
}

func TestPlaceholderRendererRender(t *testing.T) {
	renderer, err := NewPlaceholderRenderer(0)
	if err != nil {
		t.Fatalf("NewPlaceholderRenderer() error = %v", err)
	}

	tests := []struct {
		name   string
		spec   func() domain.PlaceholderSpec
		format domain.Format
		decode func(*bytes.Reader) (image.Image, error)
		width  int
		height int
	}{
		{
			name:   "Default PNG",
			spec:   domain.DefaultPlaceholderSpec,
			format: domain.FormatPNG,
			decode: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
			width:  300,
			height: 200,
		},
		{
			name: "Sized JPEG",
			spec: func() domain.PlaceholderSpec {
				s := domain.DefaultPlaceholderSpec()
				s.Width, s.Height = 100, 80
				return s
			},
			format: domain.FormatJPEG,
			decode: func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) },
			width:  100,
			height: 80,
		},
		{
			name: "Huge text size",
			spec: func() domain.PlaceholderSpec {
				s := domain.DefaultPlaceholderSpec()
				s.Width, s.Height, s.TextSize = 64, 48, 1 << 30
				return s
			},
			format: domain.FormatPNG,
			decode: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
			width:  64,
			height: 48,
		},
		{
			name: "Oversized border",
			spec: func() domain.PlaceholderSpec {
				s := domain.DefaultPlaceholderSpec()
				s.Width, s.Height, s.Border = 20, 20, 50
				return s
			},
			format: domain.FormatPNG,
			decode: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
			width:  20,
			height: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := renderer.Render(&buf, tt.spec(), tt.format); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			img, err := tt.decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if img.Bounds().Dx() != tt.width || img.Bounds().Dy() != tt.height {
				t.Errorf("size = %v, want %dx%d", img.Bounds().Size(), tt.width, tt.height)
			}
		})
	}
}
