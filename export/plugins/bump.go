package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const bumpExtensionName = "KHR_materials_bump"

// bump carries a bump map and its scale through to glTF via a
// non-standard sibling of NormalTexture, for source materials that
// used a height-based bump map instead of a tangent-space normal map.
type bump struct{}

func NewBump(w *export.Writer) export.Plugin { return &bump{} }

func (p *bump) Name() string { return bumpExtensionName }

func (p *bump) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	if m.BumpTexture == nil {
		return nil
	}
	ti, err := w.TextureInfo(m.BumpTexture)
	if err != nil {
		return err
	}
	ext := map[string]interface{}{"bumpTexture": ti}
	if m.BumpScale != 0 && m.BumpScale != 1 {
		ext["bumpScale"] = m.BumpScale
	}
	setMaterialExtension(def, bumpExtensionName, ext)
	w.MarkExtensionUsed(bumpExtensionName)
	return nil
}
