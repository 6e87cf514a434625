package application

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/dfryer1193/imgserve/images/domain"
)

const DefaultJPEGQuality = 80

// TransformService renders stored images with on-the-fly transformations.
type TransformService struct {
	store        domain.ImageStore
	jpegQuality  int
	maxDimension int
}

// NewTransformService creates a TransformService. Output images never exceed
// maxDimension on either side.
func NewTransformService(store domain.ImageStore, jpegQuality, maxDimension int) *TransformService {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	if maxDimension <= 0 {
		maxDimension = domain.DefaultMaxTransformDimension
	}
	return &TransformService{
		store:        store,
		jpegQuality:  jpegQuality,
		maxDimension: maxDimension,
	}
}

// Render returns the encoded image for key after applying req. When req asks
// for nothing, the stored bytes are returned untouched.
func (s *TransformService) Render(ctx context.Context, key domain.Key, req domain.TransformRequest) (io.ReadCloser, error) {
	rc, err := s.store.Read(ctx, key)
	if err != nil {
		return nil, err
	}

	if req.IsNoop() {
		return rc, nil
	}
	defer rc.Close()

	src, err := imaging.Decode(rc, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnreadable, key, err)
	}

	req = Bound(req, src.Bounds().Dx(), src.Bounds().Dy(), s.maxDimension)

	var buf bytes.Buffer
	if err := encode(&buf, Apply(src, req), key.Format, s.jpegQuality); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", key, err)
	}

	return io.NopCloser(&buf), nil
}

// Bound resolves the output size of req against a srcW x srcH source and caps
// it and the filter strengths. A missing dimension is derived from the source
// aspect ratio; an oversized result is scaled down to fit maxDimension,
// keeping the requested proportions.
func Bound(req domain.TransformRequest, srcW, srcH, maxDimension int) domain.TransformRequest {
	if req.Resizes() && srcW > 0 && srcH > 0 {
		w, h := req.Width, req.Height
		switch {
		case w == 0:
			w = max(1, int(math.Round(float64(h)*float64(srcW)/float64(srcH))))
		case h == 0:
			h = max(1, int(math.Round(float64(w)*float64(srcH)/float64(srcW))))
		}
		if w > maxDimension || h > maxDimension {
			scale := min(float64(maxDimension)/float64(w), float64(maxDimension)/float64(h))
			w = max(1, int(math.Round(float64(w)*scale)))
			h = max(1, int(math.Round(float64(h)*scale)))
		}
		req.Width, req.Height = w, h
	}

	req.Blur = min(req.Blur, domain.MaxSigma)
	req.Sharpen = min(req.Sharpen, domain.MaxSigma)
	return req
}

// Apply runs the transformation steps in their fixed order: resize, blur,
// sharpen, greyscale, flip, flop.
func Apply(img image.Image, req domain.TransformRequest) image.Image {
	if req.Resizes() {
		// A zero dimension keeps the source aspect ratio.
		img = imaging.Resize(img, req.Width, req.Height, imaging.Lanczos)
	}

	if req.Blur > 0 {
		img = imaging.Blur(img, req.Blur)
	}

	if req.Sharpen > 0 {
		img = imaging.Sharpen(img, req.Sharpen)
	}

	if req.Greyscale {
		img = imaging.Grayscale(img)
	}

	if req.Flip {
		img = imaging.FlipV(img)
	}

	if req.Flop {
		img = imaging.FlipH(img)
	}

	return img
}

func encode(w io.Writer, img image.Image, format domain.Format, jpegQuality int) error {
	switch format {
	case domain.FormatJPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	case domain.FormatPNG:
		return imaging.Encode(w, img, imaging.PNG)
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}
