package export

import (
	"reflect"
	"testing"

	"github.com/binzume/gltfwriter/scene"
)

func TestSortedAttributeNamesIsFixedOrder(t *testing.T) {
	attrs := map[string]*scene.Attribute{
		"uv1":        {Name: "uv1"},
		"skinWeight": {Name: "skinWeight"},
		"normal":     {Name: "normal"},
		"position":   {Name: "position"},
		"uv":         {Name: "uv"},
		"skinIndex":  {Name: "skinIndex"},
		"tangent":    {Name: "tangent"},
		"color":      {Name: "color"},
	}
	want := []string{"position", "normal", "tangent", "uv", "uv1", "color", "skinIndex", "skinWeight"}

	for i := 0; i < 10; i++ {
		got := sortedAttributeNames(attrs)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: sortedAttributeNames = %v, want %v", i, got, want)
		}
	}
}

func TestSortedMorphAttributeNamesIsFixedOrder(t *testing.T) {
	attrs := map[string][]*scene.Attribute{
		"normal":   {{Name: "normal"}},
		"position": {{Name: "position"}},
	}
	want := []string{"position", "normal"}
	for i := 0; i < 10; i++ {
		got := sortedMorphAttributeNames(attrs)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: sortedMorphAttributeNames = %v, want %v", i, got, want)
		}
	}
}
