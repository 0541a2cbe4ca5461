package export

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

// processImage rasterizes a scene.Image, clamping to
// Options.MaxTextureSize and applying a vertical flip when requested,
// then encodes it and either appends it as a pending bufferView
// (binary output) or inlines a data: URI (JSON output). Keyed by
// (source identity, mimeType, flipY) per spec.md §3. WebP (and an
// unlabeled source) degrade to PNG; any other non-PNG/JPEG mime is
// UnsupportedMimeError.
func (w *Writer) processImage(src *scene.Image) (*uint32, error) {
	if src == nil || src.Source == nil {
		return nil, &InvalidImageError{Reason: "nil image source"}
	}

	mime := src.SourceMimeType
	if mime != "image/png" && mime != "image/jpeg" {
		switch mime {
		case "", "image/webp":
			// WebP (and an unlabeled source) degrade to PNG, per spec.md §7.
			if mime != "" {
				w.options.observe(Diagnostic{Kind: DiagDegradation, Message: "image mime " + mime + " degraded to image/png"})
			}
			mime = "image/png"
		default:
			return nil, &UnsupportedMimeError{Mime: mime}
		}
	}

	key := imageCacheKey{src: src, mimeType: mime, flipY: src.FlipY}
	if idx, ok := w.caches.images[key]; ok {
		return &idx, nil
	}

	img := rasterize(src.Source, w.options.MaxTextureSize)
	if src.FlipY {
		img = flipVertical(img)
	}

	var buf bytes.Buffer
	switch mime {
	case "image/jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
			return nil, err
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	}
	data := buf.Bytes()

	def := &gltf.Image{MimeType: mime}
	if w.options.Binary {
		bvIdx := w.newBufferView(targetNone, padTo4(len(data)), 0)
		padded := make([]byte, padTo4(len(data)))
		copy(padded, data)
		w.appendBufferViewData(bvIdx, padded)
		def.BufferView = gltf.Index(bvIdx)
	} else {
		def.URI = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	}

	w.doc.Images = append(w.doc.Images, def)
	idx := uint32(len(w.doc.Images) - 1)
	w.caches.images[key] = idx
	return &idx, nil
}

// rasterize copies src into a fresh RGBA image, downscaling with a
// Catmull-Rom filter when either axis exceeds maxSize (0 = unlimited).
func rasterize(src image.Image, maxSize int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		scale := float64(maxSize) / float64(w)
		if hs := float64(maxSize) / float64(h); hs < scale {
			scale = hs
		}
		nw, nh := int(float64(w)*scale), int(float64(h)*scale)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
		return dst
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func flipVertical(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		srcY := b.Max.Y - 1 - (y - b.Min.Y)
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, srcY))
		}
	}
	return dst
}

// linearize converts an sRGB-encoded channel value to a plain (gamma 1)
// grayscale value, used by buildMetalRoughTexture when a source map's
// colorspace is sRGB rather than already-linear data.
func linearize(c uint8) uint8 {
	f := float64(c) / 255
	if f <= 0.04045 {
		f = f / 12.92
	} else {
		f = math.Pow((f+0.055)/1.055, 2.4)
	}
	return uint8(clamp01(f) * 255)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
