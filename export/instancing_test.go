package export

import (
	"testing"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

func TestWriteInstancingMarksExtensionRequired(t *testing.T) {
	w := NewWriter(nil, nil)
	w.doc = &gltf.Document{}

	n := scene.NewNode("instanced")
	m1 := identityMatrix
	m1[12] = 1 // translate x by 1
	m2 := identityMatrix
	m2[12] = 2
	n.Instances = &scene.Instancing{Matrices: [][16]float64{m1, m2}}

	def := &gltf.Node{}
	if err := w.writeInstancing(n, def); err != nil {
		t.Fatalf("writeInstancing: %v", err)
	}

	ext, ok := def.Extensions[instancingExtensionName].(map[string]interface{})
	if !ok {
		t.Fatalf("expected %s extension, got %v", instancingExtensionName, def.Extensions)
	}
	attrs, ok := ext["attributes"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected attributes map, got %v", ext)
	}
	for _, name := range []string{"TRANSLATION", "ROTATION", "SCALE"} {
		if _, ok := attrs[name]; !ok {
			t.Fatalf("missing %s attribute in %v", name, attrs)
		}
	}
	if !w.extensionsRequired[instancingExtensionName] {
		t.Fatal("expected EXT_mesh_gpu_instancing to be marked required")
	}

	tIdx := attrs["TRANSLATION"].(uint32)
	acc := w.doc.Accessors[tIdx]
	if acc.Count != 2 {
		t.Fatalf("TRANSLATION accessor count = %d, want 2", acc.Count)
	}
}

func TestWriteInstancingEmptyIsNoOp(t *testing.T) {
	w := NewWriter(nil, nil)
	w.doc = &gltf.Document{}
	n := scene.NewNode("empty")
	n.Instances = &scene.Instancing{}
	def := &gltf.Node{}
	if err := w.writeInstancing(n, def); err != nil {
		t.Fatalf("writeInstancing: %v", err)
	}
	if def.Extensions != nil {
		t.Fatalf("expected no extensions for zero instances, got %v", def.Extensions)
	}
}
