package export

import (
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

// The methods in this file are the surface export/plugins builds on:
// plugin hooks live in a separate package, so they reach the Writer's
// internals only through exported wrappers instead of unexported
// fields, per spec.md §4.7's plug-in model.

// Observe forwards a diagnostic to the configured Options.Observer.
func (w *Writer) Observe(d Diagnostic) { w.options.observe(d) }

// MarkExtensionUsed records name in extensionsUsed (once).
func (w *Writer) MarkExtensionUsed(name string) { w.markExtensionUsed(name) }

// SetDocumentExtension sets doc.extensions[name], replacing any value a
// prior call for the same name set — used by plug-ins (KHR_lights_punctual)
// that accumulate one document-scoped array across every node visited.
func (w *Writer) SetDocumentExtension(name string, value interface{}) {
	if w.doc.Extensions == nil {
		w.doc.Extensions = gltf.Extensions{}
	}
	w.doc.Extensions[name] = value
}

// TextureInfo builds a gltf.TextureInfo for tex, applying
// KHR_texture_transform when tex.Transform is set — the same path
// processMaterial uses for the base color/emissive slots.
func (w *Writer) TextureInfo(tex *scene.Texture) (*gltf.TextureInfo, error) {
	return w.textureInfo(tex, nil)
}
