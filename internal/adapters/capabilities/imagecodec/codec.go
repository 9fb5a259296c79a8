// Package imagecodec implements ports.ImageCodec with disintegration/imaging.
//
// The output format is chosen in this order: ImageOptions.Format, the
// extension of ImageOptions.OutputName, the format of the source image.
// Resizing uses the Lanczos filter.
package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/jsamuelsen11/dataworks/internal/domain/task"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

var _ ports.ImageCodec = Codec{}

// ErrUnsupportedFormat is returned when no output format can be determined.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Codec decodes, resizes, and re-encodes raster images.
type Codec struct{}

// New returns a Codec.
func New() Codec {
	return Codec{}
}

// Transform reads an image from src and writes the transformed image to dst.
func (Codec) Transform(src io.Reader, dst io.Writer, opts ports.ImageOptions) error {
	raw, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	_, srcFormat, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("detecting image format: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	if opts.Resize != nil {
		img = imaging.Resize(img, opts.Resize.Width, opts.Resize.Height, imaging.Lanczos)
	}

	format, err := outputFormat(opts, srcFormat)
	if err != nil {
		return err
	}

	quality := opts.Quality
	if quality == 0 {
		quality = task.DefaultJPEGQuality
	}

	if err := imaging.Encode(dst, img, format, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

func outputFormat(opts ports.ImageOptions, srcFormat string) (imaging.Format, error) {
	if opts.Format != "" {
		f, err := imaging.FormatFromExtension(opts.Format)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
		}
		return f, nil
	}

	if ext := filepath.Ext(opts.OutputName); ext != "" {
		if f, err := imaging.FormatFromExtension(ext); err == nil {
			return f, nil
		}
	}

	f, err := imaging.FormatFromExtension(srcFormat)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, srcFormat)
	}
	return f, nil
}
