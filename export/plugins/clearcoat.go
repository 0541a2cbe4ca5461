package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const clearcoatExtensionName = "KHR_materials_clearcoat"

// clearcoat emits KHR_materials_clearcoat, skipped entirely when
// clearcoatFactor is 0 (the spec default), regardless of roughness or
// any attached texture.
type clearcoat struct{}

func NewClearcoat(w *export.Writer) export.Plugin { return &clearcoat{} }

func (p *clearcoat) Name() string { return clearcoatExtensionName }

func (p *clearcoat) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.Clearcoat == 0 {
		return nil
	}
	ext := map[string]interface{}{"clearcoatFactor": m.Clearcoat}
	if m.ClearcoatRoughness != 0 {
		ext["clearcoatRoughnessFactor"] = m.ClearcoatRoughness
	}
	if m.ClearcoatTexture != nil {
		ti, err := w.TextureInfo(m.ClearcoatTexture)
		if err != nil {
			return err
		}
		ext["clearcoatTexture"] = ti
	}
	if m.ClearcoatRoughnessTexture != nil {
		ti, err := w.TextureInfo(m.ClearcoatRoughnessTexture)
		if err != nil {
			return err
		}
		ext["clearcoatRoughnessTexture"] = ti
	}
	if m.ClearcoatNormalTexture != nil {
		ti, err := w.TextureInfo(m.ClearcoatNormalTexture)
		if err != nil {
			return err
		}
		ext["clearcoatNormalTexture"] = ti
	}
	setMaterialExtension(def, clearcoatExtensionName, ext)
	w.MarkExtensionUsed(clearcoatExtensionName)
	return nil
}
