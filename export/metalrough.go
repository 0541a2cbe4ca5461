package export

import (
	"image"
	"image/color"

	"github.com/binzume/gltfwriter/scene"
)

// buildMetalRoughTexture composites separate metalness and roughness
// maps into the single RGBA texture glTF's metallicRoughnessTexture
// expects: roughness in G, metalness in B, per spec.md §4.3. When only
// one of the two is present it is used directly without compositing.
func (w *Writer) buildMetalRoughTexture(mat *scene.Material) (*scene.Texture, *scene.TextureTransform, error) {
	mTex, rTex := mat.MetalnessTexture, mat.RoughnessTexture
	if mTex != nil && rTex == nil {
		return mTex, nil, nil
	}
	if rTex != nil && mTex == nil {
		return rTex, nil, nil
	}

	mImg := mTex.Image.Source
	rImg := rTex.Image.Source
	mb, rb := mImg.Bounds(), rImg.Bounds()
	if mb.Dx() != rb.Dx() || mb.Dy() != rb.Dy() {
		w.options.observe(Diagnostic{Kind: DiagDegradation, Message: "material " + mat.Name + ": metalness/roughness map size mismatch, using metalness map's resolution"})
	}
	width, height := mb.Dx(), mb.Dy()

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Set(x, y, color.RGBA{R: 0, G: 255, B: 255, A: 255}) // cyan prefill
		}
	}

	sample := func(img image.Image, x, y int, sRGB bool) uint8 {
		b := img.Bounds()
		if x >= b.Dx() || y >= b.Dy() {
			return 0
		}
		r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
		v := uint8(r >> 8)
		if sRGB {
			v = linearize(v)
		}
		return v
	}

	mSRGB := mTex.Image.SourceMimeType != "" // treat any tagged source as display-encoded unless marked raw data
	rSRGB := rTex.Image.SourceMimeType != ""
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := out.RGBAAt(x, y)
			c.B = sample(mImg, x, y, mSRGB)
			c.G = sample(rImg, x, y, rSRGB)
			out.SetRGBA(x, y, c)
		}
	}

	tex := &scene.Texture{
		Image:     &scene.Image{Source: out, SourceMimeType: "image/png"},
		MagFilter: mTex.MagFilter,
		MinFilter: mTex.MinFilter,
		WrapS:     mTex.WrapS,
		WrapT:     mTex.WrapT,
	}
	return tex, mTex.Transform, nil
}
