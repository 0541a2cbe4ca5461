package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const anisotropyExtensionName = "KHR_materials_anisotropy"

// anisotropy emits KHR_materials_anisotropy, skipped when
// anisotropyStrength is 0.
type anisotropy struct{}

func NewAnisotropy(w *export.Writer) export.Plugin { return &anisotropy{} }

func (p *anisotropy) Name() string { return anisotropyExtensionName }

func (p *anisotropy) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.Anisotropy == 0 {
		return nil
	}
	ext := map[string]interface{}{"anisotropyStrength": m.Anisotropy}
	if m.AnisotropyRotation != 0 {
		ext["anisotropyRotation"] = m.AnisotropyRotation
	}
	if m.AnisotropyTexture != nil {
		ti, err := w.TextureInfo(m.AnisotropyTexture)
		if err != nil {
			return err
		}
		ext["anisotropyTexture"] = ti
	}
	setMaterialExtension(def, anisotropyExtensionName, ext)
	w.MarkExtensionUsed(anisotropyExtensionName)
	return nil
}
