package plugins

import (
	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const specularExtensionName = "KHR_materials_specular"

// specular emits KHR_materials_specular. specularFactor defaults to 1
// and specularColorFactor defaults to white; the extension is skipped
// entirely when every parameter sits at its default.
type specular struct{}

func NewSpecular(w *export.Writer) export.Plugin { return &specular{} }

func (p *specular) Name() string { return specularExtensionName }

func (p *specular) WriteMaterial(w *export.Writer, m *scene.Material, def *gltf.Material) error {
	hasIntensity := m.SpecularIntensity != 0 && m.SpecularIntensity != 1
	hasColor := m.SpecularColor != [3]float64{} && m.SpecularColor != [3]float64{1, 1, 1}
	if !hasIntensity && !hasColor && m.SpecularColorTexture == nil && m.SpecularIntensityTexture == nil {
		return nil
	}
	ext := map[string]interface{}{}
	if hasIntensity {
		ext["specularFactor"] = m.SpecularIntensity
	}
	if hasColor {
		ext["specularColorFactor"] = [3]float64{m.SpecularColor[0], m.SpecularColor[1], m.SpecularColor[2]}
	}
	if m.SpecularColorTexture != nil {
		ti, err := w.TextureInfo(m.SpecularColorTexture)
		if err != nil {
			return err
		}
		ext["specularColorTexture"] = ti
	}
	if m.SpecularIntensityTexture != nil {
		ti, err := w.TextureInfo(m.SpecularIntensityTexture)
		if err != nil {
			return err
		}
		ext["specularTexture"] = ti
	}
	setMaterialExtension(def, specularExtensionName, ext)
	w.MarkExtensionUsed(specularExtensionName)
	return nil
}
