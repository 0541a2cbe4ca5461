// Package export implements the glTF 2.0 Writer: it walks a scene.Input
// and produces either a JSON glTF document or a binary GLB container.
// See spec.md / SPEC_FULL.md for the full component design; this file
// holds the top-level orchestration (processInput / processScene /
// finalize) described there.
package export

import (
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

// Writer is the per-call coordinator: caches, queues and the JSON
// document it builds are all created fresh in Write and discarded when
// it returns, per spec.md §3 "Lifecycle" — there is no process-wide
// exporter state.
type Writer struct {
	options *Options
	doc     *gltf.Document
	binBuffer []byte

	caches *caches

	registry *Registry
	plugins  []Plugin

	extensionsUsed          map[string]bool
	extensionsUsedOrder     []string
	extensionsRequired      map[string]bool
	extensionsRequiredOrder []string

	skinQueue []skinJob

	warnedMorphAttr map[string]bool
}

type skinJob struct {
	nodeIndex uint32
	skin      *scene.Skin
}

// NewWriter constructs a Writer bound to the given plugin registry and
// options. Pass nil for registry to run with no plugins at all; callers
// that want the built-in KHR_/EXT_ extensions should pass
// plugins.DefaultRegistry() from the export/plugins package (it can't
// be constructed here without an import cycle, since those plugins
// import export).
func NewWriter(registry *Registry, options *Options) *Writer {
	if registry == nil {
		registry = NewRegistry()
	}
	if options == nil {
		options = DefaultOptions()
	}
	return &Writer{
		options:         options,
		doc:             &gltf.Document{},
		registry:        registry,
		caches:          newCaches(),
		warnedMorphAttr: map[string]bool{},
	}
}

// Result is what Write returns: exactly one of JSON or Binary is set,
// matching the "binary vs JSON document" branch of spec.md §4.1.
type Result struct {
	JSON   *gltf.Document
	Binary []byte
}

// Write runs the full traversal and finalization pipeline described in
// spec.md §2 and returns a complete document — there is no partial
// output on error (spec.md §7 "Propagation").
func (w *Writer) Write(input *scene.Input) (*Result, error) {
	w.doc = &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: w.options.Generator},
	}
	w.binBuffer = nil
	w.plugins = w.registry.instantiate(w)

	if len(w.options.Animations) > 0 {
		w.options.TRS = true
	}

	for _, p := range w.plugins {
		if bp, ok := p.(BeforeParser); ok {
			if err := bp.BeforeParse(w, input); err != nil {
				return nil, err
			}
		}
	}

	for _, s := range input.Scenes {
		idx, err := w.processScene(s)
		if err != nil {
			return nil, err
		}
		if idx == uint32(input.DefaultScene) {
			w.doc.Scene = gltf.Index(idx)
		}
	}
	if len(w.doc.Scenes) > 0 && w.doc.Scene == nil {
		w.doc.Scene = gltf.Index(0)
	}

	if err := w.processSkinQueue(); err != nil {
		return nil, err
	}
	if err := w.processAnimations(); err != nil {
		return nil, err
	}

	for _, p := range w.plugins {
		if ap, ok := p.(AfterParser); ok {
			if err := ap.AfterParse(w, input); err != nil {
				return nil, err
			}
		}
	}

	return w.finalize()
}

func (w *Writer) processScene(s *scene.Scene) (uint32, error) {
	gs := &gltf.Scene{Name: s.Name}
	for _, root := range s.Nodes {
		if w.options.OnlyVisible && !root.Visible {
			continue
		}
		idx, err := w.processNode(root)
		if err != nil {
			return 0, err
		}
		gs.Nodes = append(gs.Nodes, idx)
	}
	w.doc.Scenes = append(w.doc.Scenes, gs)
	return uint32(len(w.doc.Scenes) - 1), nil
}
