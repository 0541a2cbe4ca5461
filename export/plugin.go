package export

import (
	"reflect"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

func factoryKey(f Factory) uintptr {
	return reflect.ValueOf(f).Pointer()
}

// Plugin is an extension writer. Each hook is optional; a plugin
// implements only the subset it cares about, following spec.md §4.7's
// "capability subset" model — Go expresses the "dynamic dispatch of
// extensions" the source relies on as a small set of narrow optional
// interfaces instead, checked with a type assertion at each hook point
// (see DESIGN.md, Plugin architecture).
type Plugin interface {
	Name() string
}

type NodeWriter interface {
	WriteNode(w *Writer, n *scene.Node, def *gltf.Node) error
}

type MaterialWriter interface {
	WriteMaterial(w *Writer, m *scene.Material, def *gltf.Material) error
}

type MeshWriter interface {
	WriteMesh(w *Writer, m *scene.Mesh, def *gltf.Mesh) error
}

type TextureWriter interface {
	WriteTexture(w *Writer, t *scene.Texture, def *gltf.Texture) error
}

type BeforeParser interface {
	BeforeParse(w *Writer, input *scene.Input) error
}

type AfterParser interface {
	AfterParse(w *Writer, input *scene.Input) error
}

// Factory builds a Plugin bound to a specific Writer instance, the role
// "factory: writer -> plugin" plays in spec.md §6.
type Factory func(w *Writer) Plugin

// Registry holds plugin factories in registration order. Re-registering
// the same factory is a no-op (idempotent), matching spec.md §6.
type Registry struct {
	factories []Factory
	seen      map[uintptr]bool
}

func NewRegistry() *Registry {
	return &Registry{seen: map[uintptr]bool{}}
}

func (r *Registry) Register(f Factory) {
	key := factoryKey(f)
	if r.seen[key] {
		return
	}
	r.seen[key] = true
	r.factories = append(r.factories, f)
}

func (r *Registry) Unregister(f Factory) {
	key := factoryKey(f)
	if !r.seen[key] {
		return
	}
	delete(r.seen, key)
	for i, existing := range r.factories {
		if factoryKey(existing) == key {
			r.factories = append(r.factories[:i], r.factories[i+1:]...)
			break
		}
	}
}

func (r *Registry) instantiate(w *Writer) []Plugin {
	plugins := make([]Plugin, 0, len(r.factories))
	for _, f := range r.factories {
		plugins = append(plugins, f(w))
	}
	return plugins
}

func (w *Writer) markExtensionUsed(name string) {
	if w.extensionsUsed == nil {
		w.extensionsUsed = map[string]bool{}
	}
	if !w.extensionsUsed[name] {
		w.extensionsUsed[name] = true
		w.extensionsUsedOrder = append(w.extensionsUsedOrder, name)
	}
}

func (w *Writer) markExtensionRequired(name string) {
	w.markExtensionUsed(name)
	if w.extensionsRequired == nil {
		w.extensionsRequired = map[string]bool{}
	}
	if !w.extensionsRequired[name] {
		w.extensionsRequired[name] = true
		w.extensionsRequiredOrder = append(w.extensionsRequiredOrder, name)
	}
}
