package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const dispersionExtensionName = "KHR_materials_dispersion"

// dispersion emits KHR_materials_dispersion. Per the extension spec it
// only makes sense alongside transmission, but the writer doesn't
// enforce that — it just skips when dispersion is 0.
type dispersion struct{}

func NewDispersion(w *export.Writer) export.Plugin { return &dispersion{} }

func (p *dispersion) Name() string { return dispersionExtensionName }

func (p *dispersion) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.Dispersion == 0 {
		return nil
	}
	setMaterialExtension(def, dispersionExtensionName, map[string]interface{}{"dispersion": m.Dispersion})
	w.MarkExtensionUsed(dispersionExtensionName)
	return nil
}
