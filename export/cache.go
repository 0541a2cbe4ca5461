package export

import (
	"strings"

	"github.com/binzume/gltfwriter/scene"
)

// uidRegistry allocates a stable integer per scene.Attribute pointer so
// cache keys survive the ephemeral clones processMesh/processAnimation
// create for normalization and morph relativization, per spec.md §3
// "UID registry".
type uidRegistry struct {
	next uint64
	ids  map[*scene.Attribute]uint64
}

func newUIDRegistry() *uidRegistry {
	return &uidRegistry{ids: map[*scene.Attribute]uint64{}}
}

func (r *uidRegistry) uid(a *scene.Attribute) uint64 {
	if id, ok := r.ids[a]; ok {
		return id
	}
	r.next++
	r.ids[a] = r.next
	return r.next
}

// attrCacheKey keys the accessor cache on (attribute identity,
// morph-relative?), independent of value equality.
type attrCacheKey struct {
	uid      uint64
	relative bool
}

// imageCacheKey keys the image cache on (source identity, mimeType,
// flipY), per spec.md §3 invariant list.
type imageCacheKey struct {
	src      *scene.Image
	mimeType string
	flipY    bool
}

type caches struct {
	uids *uidRegistry

	accessors map[attrCacheKey]uint32
	images    map[imageCacheKey]uint32
	textures  map[*scene.Texture]uint32
	materials map[*scene.Material]uint32
	meshes    map[string]uint32 // geometry UUID + ":" + material identities

	nodeMap map[*scene.Node]uint32
}

func newCaches() *caches {
	return &caches{
		uids:      newUIDRegistry(),
		accessors: map[attrCacheKey]uint32{},
		images:    map[imageCacheKey]uint32{},
		textures:  map[*scene.Texture]uint32{},
		materials: map[*scene.Material]uint32{},
		meshes:    map[string]uint32{},
		nodeMap:   map[*scene.Node]uint32{},
	}
}

// meshCacheKey builds the deterministic composite key described in
// spec.md §4.4: geometry UUID joined with ':' and each material's
// identity (name + "#" + pointer address, see materialIdentity) in bind
// order.
func meshCacheKey(geomUUID string, materials []*scene.Material) string {
	parts := make([]string, 0, len(materials)+1)
	parts = append(parts, geomUUID)
	for _, m := range materials {
		parts = append(parts, materialIdentity(m))
	}
	return strings.Join(parts, ":")
}

func materialIdentity(m *scene.Material) string {
	if m == nil {
		return ""
	}
	return m.Name + "#" + ptrString(m)
}
