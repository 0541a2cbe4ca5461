package export

import (
	"image"
	"image/color"
	"testing"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

func solidImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	return img
}

func TestProcessImageDegradesWebPToPNG(t *testing.T) {
	w := NewWriter(nil, nil)
	w.doc = &gltf.Document{}
	src := &scene.Image{Source: solidImage(), SourceMimeType: "image/webp"}
	idx, err := w.processImage(src)
	if err != nil {
		t.Fatalf("processImage: %v", err)
	}
	if w.doc.Images[*idx].MimeType != "image/png" {
		t.Fatalf("MimeType = %q, want image/png", w.doc.Images[*idx].MimeType)
	}
}

func TestProcessImageRejectsUnsupportedMime(t *testing.T) {
	w := NewWriter(nil, nil)
	w.doc = &gltf.Document{}
	src := &scene.Image{Source: solidImage(), SourceMimeType: "image/tiff"}
	if _, err := w.processImage(src); err == nil {
		t.Fatal("expected an UnsupportedMimeError for image/tiff")
	} else if _, ok := err.(*UnsupportedMimeError); !ok {
		t.Fatalf("error = %T, want *UnsupportedMimeError", err)
	}
}
