package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const iorExtensionName = "KHR_materials_ior"

// ior emits KHR_materials_ior, skipping when ior equals the spec
// default of 1.5.
type ior struct{}

func NewIOR(w *export.Writer) export.Plugin { return &ior{} }

func (p *ior) Name() string { return iorExtensionName }

func (p *ior) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.IOR == 0 || m.IOR == 1.5 {
		return nil
	}
	setMaterialExtension(def, iorExtensionName, map[string]interface{}{"ior": m.IOR})
	w.MarkExtensionUsed(iorExtensionName)
	return nil
}
