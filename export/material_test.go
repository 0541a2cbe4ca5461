package export

import (
	"testing"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

func TestProcessMaterialDoubleSided(t *testing.T) {
	w := NewWriter(nil, nil)
	w.doc = &gltf.Document{}

	cases := []struct {
		side scene.Side
		want bool
	}{
		{scene.FrontSide, false},
		{scene.BackSide, false},
		{scene.DoubleSide, true},
	}
	for _, c := range cases {
		mat := &scene.Material{Name: "m", Side: c.side}
		idx, err := w.processMaterial(mat)
		if err != nil {
			t.Fatalf("processMaterial: %v", err)
		}
		def := w.doc.Materials[*idx]
		if def.DoubleSided != c.want {
			t.Fatalf("Side=%v: DoubleSided = %v, want %v", c.side, def.DoubleSided, c.want)
		}
	}
}
