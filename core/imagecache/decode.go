// ABOUTME: Image download and decoding for the thumbnail cache
// ABOUTME: Accepts absolute http(s) URLs and decodes JPEG, PNG, GIF and WebP payloads

package imagecache

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"strings"

	_ "golang.org/x/image/webp" // WebP support

	coreerrors "articles-app-core/core/errors"
)

// maxImageBytes caps a single thumbnail download
const maxImageBytes = 10 << 20

// download fetches and decodes the image at rawURL
func (c *Cache) download(ctx context.Context, rawURL string) (img image.Image, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			img = nil
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	resp, err := c.deps.HTTPClient.Get(ctx, rawURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to download image")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "image request failed",
			API:        "image",
		}
	}

	return decode(io.LimitReader(resp.Body(), maxImageBytes))
}

// decode reads a raster image in any registered format
func decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &coreerrors.DecodeError{API: "image", Err: err}
	}
	if img == nil {
		return nil, &coreerrors.DecodeError{API: "image", Err: fmt.Errorf("%s decoder returned no image", format)}
	}
	return img, nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return &coreerrors.ValidationError{Field: "url", Message: fmt.Sprintf("not an absolute URL: %q", rawURL)}
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return &coreerrors.ValidationError{Field: "url", Message: fmt.Sprintf("unsupported scheme %q", parsed.Scheme)}
	}
	return nil
}
