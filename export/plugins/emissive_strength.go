package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const emissiveStrengthExtensionName = "KHR_materials_emissive_strength"

// emissiveStrength emits KHR_materials_emissive_strength when the
// source material's emissive intensity is set (non-zero) and differs
// from the spec default of 1 — glTF's core emissiveFactor is clamped to
// [0,1] per channel, so values above that need this extension to
// express HDR emission.
type emissiveStrength struct{}

func NewEmissiveStrength(w *export.Writer) export.Plugin { return &emissiveStrength{} }

func (p *emissiveStrength) Name() string { return emissiveStrengthExtensionName }

func (p *emissiveStrength) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.EmissiveIntensity == 0 || m.EmissiveIntensity == 1 {
		return nil
	}
	setMaterialExtension(def, emissiveStrengthExtensionName, map[string]interface{}{"emissiveStrength": m.EmissiveIntensity})
	w.MarkExtensionUsed(emissiveStrengthExtensionName)
	return nil
}
