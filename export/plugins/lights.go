// Package plugins holds the writer's built-in KHR_/EXT_ extension
// plug-ins, each implementing the capability subset from export.Plugin
// it needs, per spec.md §4.7.
package plugins

import (
	"math"
	"strconv"

	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const lightsExtensionName = "KHR_lights_punctual"

// lightsPunctual collects every exported light into the document-scoped
// extension array and writes a node-scoped {light: idx} back-reference,
// grounded on the lightspuntual.Lights/LightIndex usage pattern in
// SolarLune-tetra3d's loader and mirroring the glTF JSON schema's own
// field names for the punctual-light record.
type lightsPunctual struct {
	lights []map[string]interface{}
}

func NewLightsPunctual(w *export.Writer) export.Plugin {
	return &lightsPunctual{}
}

func (p *lightsPunctual) Name() string { return lightsExtensionName }

func (p *lightsPunctual) WriteNode(w *export.Writer, n *scene.Node, def *gltf.Node) error {
	if n.Light == nil {
		return nil
	}
	if n.Light.Decay != 0 && n.Light.Decay != 2 {
		w.Observe(export.Diagnostic{Kind: export.DiagDegradation, Message: "light on node " + n.Name + " uses decay " + strconv.FormatFloat(n.Light.Decay, 'g', -1, 64) + ", glTF punctual lights imply decay 2"})
	}
	if n.Light.Type == scene.SpotLight && n.Light.Target != nil && !isCanonicalSpotTarget(n, n.Light.Target) {
		w.Observe(export.Diagnostic{Kind: export.DiagDegradation, Message: "spotlight on node " + n.Name + " targets a non-canonical direction; glTF spotlights always point -Z"})
	}

	rec := map[string]interface{}{
		"type":      lightTypeString(n.Light.Type),
		"color":     [3]float64{n.Light.Color[0], n.Light.Color[1], n.Light.Color[2]},
		"intensity": n.Light.Intensity,
	}
	if n.Light.Range != 0 {
		rec["range"] = n.Light.Range
	}
	if n.Light.Type == scene.SpotLight {
		rec["spot"] = map[string]interface{}{
			"innerConeAngle": n.Light.InnerConeAngle,
			"outerConeAngle": n.Light.OuterConeAngle,
		}
	}
	p.lights = append(p.lights, rec)
	idx := len(p.lights) - 1

	if def.Extensions == nil {
		def.Extensions = gltf.Extensions{}
	}
	def.Extensions[lightsExtensionName] = map[string]interface{}{"light": idx}
	w.MarkExtensionUsed(lightsExtensionName)
	w.SetDocumentExtension(lightsExtensionName, map[string]interface{}{"lights": p.lights})
	return nil
}

func lightTypeString(t scene.LightType) string {
	switch t {
	case scene.PointLight:
		return "point"
	case scene.SpotLight:
		return "spot"
	default:
		return "directional"
	}
}

// isCanonicalSpotTarget reports whether target sits on the light's own
// -Z axis (the only direction glTF can express without baking rotation
// from the target into the light's node transform).
func isCanonicalSpotTarget(light, target *scene.Node) bool {
	dx := target.Translation[0] - light.Translation[0]
	dy := target.Translation[1] - light.Translation[1]
	dz := target.Translation[2] - light.Translation[2]
	dlen := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if dlen == 0 {
		return true
	}
	return math.Abs(dx/dlen) < 1e-4 && math.Abs(dy/dlen) < 1e-4 && dz/dlen < 0
}
