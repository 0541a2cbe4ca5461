package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const transmissionExtensionName = "KHR_materials_transmission"

// transmission emits KHR_materials_transmission, skipping entirely
// when transmissionFactor is at its spec default of 0.
type transmission struct{}

func NewTransmission(w *export.Writer) export.Plugin { return &transmission{} }

func (p *transmission) Name() string { return transmissionExtensionName }

func (p *transmission) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.Transmission == 0 {
		return nil
	}
	ext := map[string]interface{}{"transmissionFactor": m.Transmission}
	setMaterialExtension(def, transmissionExtensionName, ext)
	w.MarkExtensionUsed(transmissionExtensionName)
	return nil
}

func setMaterialExtension(def *gltf.Material, name string, value interface{}) {
	if def.Extensions == nil {
		def.Extensions = gltf.Extensions{}
	}
	def.Extensions[name] = value
}
