package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
)

const (
	// uploads are bounded before decode; photos are display thumbnails
	MaxUploadBytes = 8 << 20

	maxDimension = 1024
	webpQuality  = 80
)

// NormalizeImage decodes a JPEG or PNG upload, downscales it to fit
// maxDimension and re-encodes it as WebP.
func NormalizeImage(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img := Downscale(src, maxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Downscale scales src so that neither side exceeds max, preserving the
// aspect ratio. Images already within bounds are returned unchanged.
func Downscale(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= max && h <= max {
		return src
	}

	nw, nh := max, max
	if w > h {
		nh = h * max / w
	} else {
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
