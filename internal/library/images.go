package library

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path"
	"strings"

	"golang.org/x/image/draw"

	"github.com/wpmvc/helpers/internal/config"
	"github.com/wpmvc/helpers/internal/utils"
	"github.com/wpmvc/helpers/media"
)

// jpegQuality is the encoding quality of resized JPEG variants.
const jpegQuality = 82

// generateImageMetadata decodes the original image, records its dimensions,
// and renders every registered size variant into the storage backend.
// Variants that would upscale the original are skipped.
func (l *Library) generateImageMetadata(
	ctx context.Context,
	key string,
	mimeType string,
	content []byte,
	metadata *media.AttachmentMetadata,
) error {
	source, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := source.Bounds()
	metadata.Width = bounds.Dx()
	metadata.Height = bounds.Dy()

	if len(l.cfg.ImageSizes) == 0 {
		return nil
	}

	metadata.Sizes = make(map[string]media.SizeVariant, len(l.cfg.ImageSizes))

	for name, size := range l.cfg.ImageSizes {
		variant, renderErr := l.renderSizeVariant(ctx, key, mimeType, source, size)
		if renderErr != nil {
			return fmt.Errorf("failed to render size '%s': %w", name, renderErr)
		}

		if variant == nil {
			// The original is already smaller than this size.
			continue
		}

		metadata.Sizes[name] = *variant
	}

	if len(metadata.Sizes) == 0 {
		metadata.Sizes = nil
	}

	return nil
}

// renderSizeVariant resamples the source image to one registered size and
// stores the result next to the original. A nil variant means the size was
// skipped because it would not shrink the image.
func (l *Library) renderSizeVariant(
	ctx context.Context,
	key string,
	mimeType string,
	source image.Image,
	size config.ImageSize,
) (*media.SizeVariant, error) {
	bounds := source.Bounds()

	width, height := variantDimensions(bounds.Dx(), bounds.Dy(), size)
	if width >= bounds.Dx() && height >= bounds.Dy() {
		return nil, nil //nolint:nilnil // A skipped size is neither a variant nor a failure.
	}

	resized := resample(source, width, height, size.Crop)

	encoded, err := encodeImage(resized, mimeType)
	if err != nil {
		return nil, err
	}

	variantName := variantFileName(key, width, height)
	variantKey := path.Dir(key) + "/" + variantName

	if err = l.files.Save(ctx, variantKey, bytes.NewReader(encoded)); err != nil {
		return nil, fmt.Errorf("failed to store size variant: %w", err)
	}

	return &media.SizeVariant{
		File:     variantName,
		Width:    width,
		Height:   height,
		MimeType: mimeType,
	}, nil
}

// variantDimensions computes the pixel dimensions of a size variant.
// Cropped sizes take the registered dimensions as-is (bounded by the
// original); scaled sizes fit the original into the registered box while
// keeping the aspect ratio. A zero width or height is unconstrained.
func variantDimensions(sourceWidth, sourceHeight int, size config.ImageSize) (int, int) {
	maxWidth, maxHeight := size.Width, size.Height
	if maxWidth <= 0 {
		maxWidth = sourceWidth
	}

	if maxHeight <= 0 {
		maxHeight = sourceHeight
	}

	if size.Crop {
		return min(maxWidth, sourceWidth), min(maxHeight, sourceHeight)
	}

	scale := min(
		float64(maxWidth)/float64(sourceWidth),
		float64(maxHeight)/float64(sourceHeight),
	)
	if scale >= 1 {
		return sourceWidth, sourceHeight
	}

	width := max(int(float64(sourceWidth)*scale), 1)
	height := max(int(float64(sourceHeight)*scale), 1)

	return width, height
}

// resample scales the source image to width x height.
// Cropped variants scale to cover the box first and then cut out its center.
func resample(source image.Image, width, height int, crop bool) image.Image {
	bounds := source.Bounds()

	if !crop {
		target := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(target, target.Bounds(), source, bounds, draw.Over, nil)

		return target
	}

	// Scale so that both dimensions cover the box.
	scale := max(
		float64(width)/float64(bounds.Dx()),
		float64(height)/float64(bounds.Dy()),
	)

	coveredWidth := max(int(float64(bounds.Dx())*scale), width)
	coveredHeight := max(int(float64(bounds.Dy())*scale), height)

	covered := image.NewRGBA(image.Rect(0, 0, coveredWidth, coveredHeight))
	draw.CatmullRom.Scale(covered, covered.Bounds(), source, bounds, draw.Over, nil)

	// Cut the requested box out of the center.
	offsetX := (coveredWidth - width) / 2
	offsetY := (coveredHeight - height) / 2

	target := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(target, target.Bounds(), covered, image.Pt(offsetX, offsetY), draw.Src)

	return target
}

// encodeImage encodes the image in the format matching its MIME type.
// Unrecognized image types fall back to PNG.
func encodeImage(img image.Image, mimeType string) ([]byte, error) {
	var buffer bytes.Buffer

	var err error

	switch mimeType {
	case utils.ImageJPEGMimeType:
		err = jpeg.Encode(&buffer, img, &jpeg.Options{Quality: jpegQuality})
	case utils.ImageGIFMimeType:
		err = gif.Encode(&buffer, img, nil)
	default:
		err = png.Encode(&buffer, img)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buffer.Bytes(), nil
}

// variantFileName derives a size variant's filename from the original key:
// 2026/08/picture.png at 150x150 becomes picture-150x150.png.
func variantFileName(key string, width, height int) string {
	name := path.Base(key)
	extension := path.Ext(name)
	base := strings.TrimSuffix(name, extension)

	return fmt.Sprintf("%s-%dx%d%s", base, width, height, extension)
}
