package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const volumeExtensionName = "KHR_materials_volume"

// volume emits KHR_materials_volume alongside transmission. It gates on
// transmissionFactor rather than thicknessFactor — a material with
// thickness set but no transmission is written with no volume block at
// all, which looks backwards but matches what the converter this was
// ported from actually does.
type volume struct{}

func NewVolume(w *export.Writer) export.Plugin { return &volume{} }

func (p *volume) Name() string { return volumeExtensionName }

func (p *volume) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.Transmission == 0 {
		return nil
	}
	ext := map[string]interface{}{}
	if m.Thickness != 0 {
		ext["thicknessFactor"] = m.Thickness
	}
	if m.AttenuationDistance != 0 {
		ext["attenuationDistance"] = m.AttenuationDistance
	}
	if m.AttenuationColor != [3]float64{} && m.AttenuationColor != [3]float64{1, 1, 1} {
		ext["attenuationColor"] = [3]float64{m.AttenuationColor[0], m.AttenuationColor[1], m.AttenuationColor[2]}
	}
	setMaterialExtension(def, volumeExtensionName, ext)
	w.MarkExtensionUsed(volumeExtensionName)
	return nil
}
