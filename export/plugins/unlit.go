package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const unlitExtensionName = "KHR_materials_unlit"

// unlit flags basic materials, grounded on mqo2gltf.go's
// `mm.Extensions = map[string]interface{}{unlitMaterialExt: map[string]string{}}`.
type unlit struct{}

func NewUnlit(w *export.Writer) export.Plugin { return &unlit{} }

func (p *unlit) Name() string { return unlitExtensionName }

func (p *unlit) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if !m.Unlit {
		return nil
	}
	if def.Extensions == nil {
		def.Extensions = gltf.Extensions{}
	}
	def.Extensions[unlitExtensionName] = map[string]interface{}{}
	w.MarkExtensionUsed(unlitExtensionName)
	return nil
}
