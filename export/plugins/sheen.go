package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const sheenExtensionName = "KHR_materials_sheen"

// sheen emits KHR_materials_sheen, skipped when sheenColorFactor is
// black and sheenRoughnessFactor is 0 (the joint spec default, meaning
// no sheen lobe at all).
type sheen struct{}

func NewSheen(w *export.Writer) export.Plugin { return &sheen{} }

func (p *sheen) Name() string { return sheenExtensionName }

func (p *sheen) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.SheenColor == [3]float64{} && m.SheenRoughness == 0 && m.SheenColorTexture == nil && m.SheenRoughnessTexture == nil {
		return nil
	}
	ext := map[string]interface{}{
		"sheenColorFactor":     [3]float64{m.SheenColor[0], m.SheenColor[1], m.SheenColor[2]},
		"sheenRoughnessFactor": m.SheenRoughness,
	}
	if m.SheenColorTexture != nil {
		ti, err := w.TextureInfo(m.SheenColorTexture)
		if err != nil {
			return err
		}
		ext["sheenColorTexture"] = ti
	}
	if m.SheenRoughnessTexture != nil {
		ti, err := w.TextureInfo(m.SheenRoughnessTexture)
		if err != nil {
			return err
		}
		ext["sheenRoughnessTexture"] = ti
	}
	setMaterialExtension(def, sheenExtensionName, ext)
	w.MarkExtensionUsed(sheenExtensionName)
	return nil
}
