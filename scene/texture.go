package scene

import "image"

type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
	FilterNearestMipmapNearest
	FilterLinearMipmapNearest
	FilterNearestMipmapLinear
	FilterLinearMipmapLinear
)

type Wrap int

const (
	WrapClampToEdge Wrap = iota
	WrapMirroredRepeat
	WrapRepeat
)

// TextureTransform mirrors KHR_texture_transform parameters; Offset is
// written to the glTF document without Y-flipping (see DESIGN.md).
type TextureTransform struct {
	Offset   [2]float64
	Rotation float64
	Scale    [2]float64
}

// Image is a source raster plus the flags the writer needs to key its
// image cache: (mimeType, flipY).
type Image struct {
	Source image.Image
	// SourceMimeType hints at the original encoding (e.g. "image/webp").
	// The writer degrades "image/webp" and an empty value to PNG on
	// encode; any other mime besides PNG/JPEG is an UnsupportedMimeError.
	SourceMimeType string
	FlipY          bool
}

type Texture struct {
	Image     *Image
	MagFilter Filter
	MinFilter Filter
	WrapS     Wrap
	WrapT     Wrap
	Transform *TextureTransform
	UserData  map[string]interface{}
}
