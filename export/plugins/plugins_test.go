package plugins

import (
	"testing"

	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

func newTestWriter() *export.Writer {
	return export.NewWriter(DefaultRegistry(), export.DefaultOptions())
}

func TestUnlitOnlyFiresForUnlitMaterials(t *testing.T) {
	w := newTestWriter()
	p := &unlit{}

	lit := &scene.Material{Name: "lit"}
	def := &gltf.Material{}
	if err := p.WriteMaterial(w, lit, def); err != nil {
		t.Fatalf("WriteMaterial: %v", err)
	}
	if def.Extensions != nil {
		t.Fatalf("lit material should not get KHR_materials_unlit, got %v", def.Extensions)
	}

	basic := &scene.Material{Name: "basic", Unlit: true}
	def2 := &gltf.Material{}
	if err := p.WriteMaterial(w, basic, def2); err != nil {
		t.Fatalf("WriteMaterial: %v", err)
	}
	if _, ok := def2.Extensions[unlitExtensionName]; !ok {
		t.Fatalf("unlit material should get %s, got %v", unlitExtensionName, def2.Extensions)
	}
}

func TestTransmissionSkippedAtDefault(t *testing.T) {
	w := newTestWriter()
	p := &transmission{}

	def := &gltf.Material{}
	if err := p.WriteMaterial(w, &scene.Material{}, def); err != nil {
		t.Fatalf("WriteMaterial: %v", err)
	}
	if def.Extensions != nil {
		t.Fatalf("transmission=0 should not emit an extension, got %v", def.Extensions)
	}

	def2 := &gltf.Material{}
	if err := p.WriteMaterial(w, &scene.Material{Transmission: 0.5}, def2); err != nil {
		t.Fatalf("WriteMaterial: %v", err)
	}
	ext, ok := def2.Extensions[transmissionExtensionName].(map[string]interface{})
	if !ok {
		t.Fatalf("expected %s extension, got %v", transmissionExtensionName, def2.Extensions)
	}
	if ext["transmissionFactor"] != 0.5 {
		t.Fatalf("transmissionFactor = %v, want 0.5", ext["transmissionFactor"])
	}
}

// TestVolumeGatesOnTransmissionNotThickness preserves a known quirk: a
// material with thickness set but zero transmission gets no volume
// block at all, matching spec.md's open-question decision to keep the
// original behavior rather than gate on thickness.
func TestVolumeGatesOnTransmissionNotThickness(t *testing.T) {
	w := newTestWriter()
	p := &volume{}

	def := &gltf.Material{}
	mat := &scene.Material{Thickness: 2.5}
	if err := p.WriteMaterial(w, mat, def); err != nil {
		t.Fatalf("WriteMaterial: %v", err)
	}
	if def.Extensions != nil {
		t.Fatalf("thickness without transmission should not emit %s, got %v", volumeExtensionName, def.Extensions)
	}

	def2 := &gltf.Material{}
	mat2 := &scene.Material{Transmission: 0.8, Thickness: 2.5}
	if err := p.WriteMaterial(w, mat2, def2); err != nil {
		t.Fatalf("WriteMaterial: %v", err)
	}
	if _, ok := def2.Extensions[volumeExtensionName]; !ok {
		t.Fatalf("transmission+thickness should emit %s, got %v", volumeExtensionName, def2.Extensions)
	}
}

func TestIORSkippedAtSpecDefault(t *testing.T) {
	w := newTestWriter()
	p := &ior{}

	def := &gltf.Material{}
	if err := p.WriteMaterial(w, &scene.Material{IOR: 1.5}, def); err != nil {
		t.Fatalf("WriteMaterial: %v", err)
	}
	if def.Extensions != nil {
		t.Fatalf("ior=1.5 (spec default) should not emit an extension, got %v", def.Extensions)
	}

	def2 := &gltf.Material{}
	if err := p.WriteMaterial(w, &scene.Material{IOR: 1.1}, def2); err != nil {
		t.Fatalf("WriteMaterial: %v", err)
	}
	if _, ok := def2.Extensions[iorExtensionName]; !ok {
		t.Fatalf("non-default ior should emit %s, got %v", iorExtensionName, def2.Extensions)
	}
}

func TestLightsPunctualAccumulatesAcrossNodes(t *testing.T) {
	w := newTestWriter()
	p := &lightsPunctual{}

	n1 := scene.NewNode("light1")
	n1.Light = &scene.Light{Type: scene.PointLight, Color: [3]float64{1, 1, 1}, Intensity: 10}
	def1 := &gltf.Node{}
	if err := p.WriteNode(w, n1, def1); err != nil {
		t.Fatalf("WriteNode: %v", err)
	}

	n2 := scene.NewNode("light2")
	n2.Light = &scene.Light{Type: scene.DirectionalLight, Color: [3]float64{1, 0, 0}, Intensity: 1}
	def2 := &gltf.Node{}
	if err := p.WriteNode(w, n2, def2); err != nil {
		t.Fatalf("WriteNode: %v", err)
	}

	if len(p.lights) != 2 {
		t.Fatalf("len(lights) = %d, want 2", len(p.lights))
	}
	rec1, ok := def1.Extensions[lightsExtensionName].(map[string]interface{})
	if !ok || rec1["light"] != 0 {
		t.Fatalf("node1 light index = %v, want 0", rec1)
	}
	rec2, ok := def2.Extensions[lightsExtensionName].(map[string]interface{})
	if !ok || rec2["light"] != 1 {
		t.Fatalf("node2 light index = %v, want 1", rec2)
	}
}

func TestFilteredRegistryEnablesOnlyNamedExtensions(t *testing.T) {
	mesh := &scene.Mesh{
		Name:      "tri",
		Geometry:  triangleGeometryForTest(),
		Materials: []*scene.Material{{Name: "m", Unlit: true, Transmission: 0.5}},
	}
	node := scene.NewNode("root")
	node.Mesh = mesh
	sc := &scene.Scene{Name: "Scene", Nodes: []*scene.Node{node}}
	input := scene.SingleScene(sc)

	registry := FilteredRegistry(map[string]bool{unlitExtensionName: true})
	w := export.NewWriter(registry, export.DefaultOptions())
	result, err := w.Write(input)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	mat := result.JSON.Materials[0]
	if _, ok := mat.Extensions[unlitExtensionName]; !ok {
		t.Fatalf("expected %s to be enabled, got %v", unlitExtensionName, mat.Extensions)
	}
	if _, ok := mat.Extensions[transmissionExtensionName]; ok {
		t.Fatalf("expected %s to stay disabled, got %v", transmissionExtensionName, mat.Extensions)
	}
}

func triangleGeometryForTest() *scene.Geometry {
	g := scene.NewGeometry("geom-plugins-test")
	pos := scene.NewFloat32Array(3, 3)
	pos.Set(1, 0, 1)
	pos.Set(2, 1, 1)
	g.Attributes["position"] = &scene.Attribute{Name: "position", Array: pos}
	norm := scene.NewFloat32Array(3, 3)
	for i := 0; i < 3; i++ {
		norm.Set(i, 2, 1)
	}
	g.Attributes["normal"] = &scene.Attribute{Name: "normal", Array: norm}
	return g
}
