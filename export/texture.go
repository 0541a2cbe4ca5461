package export

import (
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

// processTexture dedups by source-texture pointer identity (spec.md §3
// cache list) and emits sampler + source indices.
func (w *Writer) processTexture(tex *scene.Texture) (*uint32, error) {
	if tex == nil || tex.Image == nil {
		return nil, nil
	}
	if idx, ok := w.caches.textures[tex]; ok {
		return &idx, nil
	}

	imgIdx, err := w.processImage(tex.Image)
	if err != nil {
		return nil, err
	}
	if imgIdx == nil {
		return nil, nil
	}

	samplerIdx := w.processSampler(tex)

	def := &gltf.Texture{Source: gltf.Index(*imgIdx), Sampler: gltf.Index(samplerIdx)}
	w.doc.Textures = append(w.doc.Textures, def)
	idx := uint32(len(w.doc.Textures) - 1)

	for _, p := range w.plugins {
		if tw, ok := p.(TextureWriter); ok {
			if err := tw.WriteTexture(w, tex, def); err != nil {
				return nil, err
			}
		}
	}

	w.caches.textures[tex] = idx
	return &idx, nil
}

// processSampler maps filter/wrap constants to their WebGL equivalents
// and appends a new sampler entry. Samplers are intentionally not
// deduplicated, per spec.md §9 open questions.
func (w *Writer) processSampler(tex *scene.Texture) uint32 {
	def := &gltf.Sampler{
		MagFilter: filterToMag(tex.MagFilter),
		MinFilter: filterToMin(tex.MinFilter),
		WrapS:     wrapToGltf(tex.WrapS),
		WrapT:     wrapToGltf(tex.WrapT),
	}
	w.doc.Samplers = append(w.doc.Samplers, def)
	return uint32(len(w.doc.Samplers) - 1)
}

func filterToMag(f scene.Filter) gltf.MagFilter {
	if f == scene.FilterNearest {
		return gltf.MagNearest
	}
	return gltf.MagLinear
}

func filterToMin(f scene.Filter) gltf.MinFilter {
	switch f {
	case scene.FilterNearest:
		return gltf.MinNearest
	case scene.FilterNearestMipmapNearest:
		return gltf.MinNearestMipMapNearest
	case scene.FilterLinearMipmapNearest:
		return gltf.MinLinearMipMapNearest
	case scene.FilterNearestMipmapLinear:
		return gltf.MinNearestMipMapLinear
	case scene.FilterLinearMipmapLinear:
		return gltf.MinLinearMipMapLinear
	default:
		return gltf.MinLinear
	}
}

func wrapToGltf(w scene.Wrap) gltf.WrappingMode {
	switch w {
	case scene.WrapClampToEdge:
		return gltf.WrapClampToEdge
	case scene.WrapMirroredRepeat:
		return gltf.WrapMirroredRepeat
	default:
		return gltf.WrapRepeat
	}
}
