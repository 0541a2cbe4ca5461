package export

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/binzume/gltfwriter/scene"
)

var gltfAttrPattern = regexp.MustCompile(`^(POSITION|NORMAL|TANGENT|TEXCOORD_\d+|COLOR_\d+|JOINTS_\d+|WEIGHTS_\d+)$`)

// gltfAttributeName maps a scene.Geometry attribute key to its glTF
// JSON attribute name, per spec.md §4.4.
func gltfAttributeName(name string) string {
	switch {
	case name == "position":
		return "POSITION"
	case name == "normal":
		return "NORMAL"
	case name == "tangent":
		return "TANGENT"
	case name == "color":
		return "COLOR_0"
	case name == "skinWeight":
		return "WEIGHTS_0"
	case name == "skinIndex":
		return "JOINTS_0"
	case strings.HasPrefix(name, "uv"):
		n := strings.TrimPrefix(name, "uv")
		if n == "" {
			return "TEXCOORD_0"
		}
		if _, err := strconv.Atoi(n); err == nil {
			return "TEXCOORD_" + n
		}
	}
	upper := strings.ToUpper(name)
	if gltfAttrPattern.MatchString(upper) {
		return upper
	}
	return "_" + upper
}

// attributeRank orders a glTF attribute name for deterministic accessor
// emission: POSITION, NORMAL, TANGENT, TEXCOORD_n, COLOR_n, JOINTS_n,
// WEIGHTS_n, then anything else. Within TEXCOORD_n/COLOR_n/JOINTS_n/
// WEIGHTS_n, lower n sorts first.
func attributeRank(gltfName string) (int, int) {
	switch {
	case gltfName == "POSITION":
		return 0, 0
	case gltfName == "NORMAL":
		return 1, 0
	case gltfName == "TANGENT":
		return 2, 0
	case strings.HasPrefix(gltfName, "TEXCOORD_"):
		return 3, attributeSuffix(gltfName, "TEXCOORD_")
	case strings.HasPrefix(gltfName, "COLOR_"):
		return 4, attributeSuffix(gltfName, "COLOR_")
	case strings.HasPrefix(gltfName, "JOINTS_"):
		return 5, attributeSuffix(gltfName, "JOINTS_")
	case strings.HasPrefix(gltfName, "WEIGHTS_"):
		return 6, attributeSuffix(gltfName, "WEIGHTS_")
	default:
		return 7, 0
	}
}

func attributeSuffix(name, prefix string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
	if err != nil {
		return 0
	}
	return n
}

// sortedAttributeNames returns attrs' keys in a fixed, deterministic
// order instead of Go's randomized map-iteration order, so accessor
// indices and buffer layout are reproducible across runs for the same
// scene.
func sortedAttributeNames(attrs map[string]*scene.Attribute) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sortAttributeNames(names)
	return names
}

// sortedMorphAttributeNames is sortedAttributeNames for the
// map[string][]*scene.Attribute shape geom.MorphAttributes uses (one
// slice of per-target attributes per attribute name).
func sortedMorphAttributeNames(attrs map[string][]*scene.Attribute) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sortAttributeNames(names)
	return names
}

func sortAttributeNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		gi, gj := gltfAttributeName(names[i]), gltfAttributeName(names[j])
		ri, si := attributeRank(gi)
		rj, sj := attributeRank(gj)
		if ri != rj {
			return ri < rj
		}
		if si != sj {
			return si < sj
		}
		return gi < gj
	})
}
