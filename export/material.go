package export

import (
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

// processMaterial converts a scene.Material to a gltf.Material index,
// deduplicated by pointer identity (spec.md §3 cache list). A
// ShaderMaterial fails soft: it is reported via a Skip diagnostic and
// the mesh primitive that references it ends up with no material
// index, per spec.md §7.
func (w *Writer) processMaterial(mat *scene.Material) (*uint32, error) {
	if mat == nil {
		return nil, nil
	}
	if mat.IsShaderMaterial {
		w.options.observe(Diagnostic{Kind: DiagSkip, Message: "material " + mat.Name + ": custom shader materials are not exported"})
		return nil, nil
	}
	if idx, ok := w.caches.materials[mat]; ok {
		return &idx, nil
	}

	mm := &gltf.Material{
		Name:        mat.Name,
		DoubleSided: mat.Side == scene.DoubleSide,
	}

	pbr := &gltf.PBRMetallicRoughness{}
	base := mat.BaseColor
	if base == [4]float64{} {
		base = [4]float64{1, 1, 1, 1}
	}
	if base != [4]float64{1, 1, 1, 1} {
		v := [4]float32{float32(base[0]), float32(base[1]), float32(base[2]), float32(base[3])}
		pbr.BaseColorFactor = &v
	}

	// Non-PBR materials (e.g. a basic/unlit source material) carry no
	// real metalness/roughness, so the fallback factors from spec.md
	// §4.3 are written instead of whatever zero value scene.Material left.
	metalness, roughness := mat.Metalness, mat.Roughness
	if mat.Unlit {
		metalness, roughness = 0.5, 0.5
	}
	if metalness != 1 {
		v := float32(metalness)
		pbr.MetallicFactor = &v
	}
	if roughness != 1 {
		v := float32(roughness)
		pbr.RoughnessFactor = &v
	}

	if mat.BaseColorTexture != nil || mat.MetalnessTexture != nil || mat.RoughnessTexture != nil {
		if mat.BaseColorTexture != nil {
			ti, err := w.textureInfo(mat.BaseColorTexture, nil)
			if err != nil {
				return nil, err
			}
			pbr.BaseColorTexture = ti
		}
		if mat.MetalnessTexture != nil || mat.RoughnessTexture != nil {
			tex, transform, err := w.buildMetalRoughTexture(mat)
			if err != nil {
				return nil, err
			}
			ti, err := w.textureInfo(tex, transform)
			if err != nil {
				return nil, err
			}
			pbr.MetallicRoughnessTexture = ti
		}
	}
	mm.PBRMetallicRoughness = pbr

	if mat.NormalTexture != nil {
		idx, err := w.processTexture(mat.NormalTexture)
		if err != nil {
			return nil, err
		}
		if idx != nil {
			nt := &gltf.NormalTexture{Index: idx}
			if mat.NormalScale != 0 && mat.NormalScale != 1 {
				s := float32(mat.NormalScale)
				nt.Scale = &s
			}
			mm.NormalTexture = nt
		}
	}

	if mat.OcclusionTexture != nil {
		idx, err := w.processTexture(mat.OcclusionTexture)
		if err != nil {
			return nil, err
		}
		if idx != nil {
			ot := &gltf.OcclusionTexture{Index: idx}
			if mat.OcclusionIntensity != 0 && mat.OcclusionIntensity != 1 {
				s := float32(mat.OcclusionIntensity)
				ot.Strength = &s
			}
			mm.OcclusionTexture = ot
		}
	}

	if mat.Emissive != [3]float64{} {
		mm.EmissiveFactor = [3]float32{float32(mat.Emissive[0]), float32(mat.Emissive[1]), float32(mat.Emissive[2])}
	}
	if mat.EmissiveTexture != nil {
		ti, err := w.textureInfo(mat.EmissiveTexture, nil)
		if err != nil {
			return nil, err
		}
		mm.EmissiveTexture = ti
	}

	switch {
	case mat.Transparent:
		mm.AlphaMode = gltf.AlphaBlend
	case mat.AlphaTest > 0:
		mm.AlphaMode = gltf.AlphaMask
		cutoff := float32(mat.AlphaTest)
		mm.AlphaCutoff = &cutoff
	default:
		mm.AlphaMode = gltf.AlphaOpaque
	}

	for _, p := range w.plugins {
		if mw, ok := p.(MaterialWriter); ok {
			if err := mw.WriteMaterial(w, mat, mm); err != nil {
				return nil, err
			}
		}
	}

	w.doc.Materials = append(w.doc.Materials, mm)
	idx := uint32(len(w.doc.Materials) - 1)
	w.caches.materials[mat] = idx
	return &idx, nil
}

// textureInfo wraps processTexture's result in a gltf.TextureInfo,
// attaching KHR_texture_transform when transform is non-nil.
func (w *Writer) textureInfo(tex *scene.Texture, transform *scene.TextureTransform) (*gltf.TextureInfo, error) {
	idx, err := w.processTexture(tex)
	if err != nil {
		return nil, err
	}
	if idx == nil {
		return nil, nil
	}
	ti := &gltf.TextureInfo{Index: *idx}
	if transform == nil {
		transform = tex.Transform
	}
	if transform != nil {
		w.markExtensionUsed("KHR_texture_transform")
		if ti.Extensions == nil {
			ti.Extensions = gltf.Extensions{}
		}
		ti.Extensions["KHR_texture_transform"] = map[string]interface{}{
			"offset":   [2]float64{transform.Offset[0], transform.Offset[1]},
			"rotation": transform.Rotation,
			"scale":    [2]float64{transform.Scale[0], transform.Scale[1]},
		}
	}
	return ti, nil
}
