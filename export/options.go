package export

import (
	"log"

	"github.com/binzume/gltfwriter/scene"
)

// Options mirrors the recognized keys of the original writer's options
// record (spec.md §4.1).
type Options struct {
	// Binary selects GLB output; false emits a JSON document (with a
	// base64 data: URI buffer if there is binary payload).
	Binary bool

	// TRS forces translation/rotation/scale node fields instead of a
	// single matrix. Forced true automatically if any animation is
	// baked, because glTF animation channels target TRS properties.
	TRS bool

	// OnlyVisible skips nodes whose Visible flag is false.
	OnlyVisible bool

	// MaxTextureSize clamps image width/height on both axes. Zero means
	// unlimited.
	MaxTextureSize int

	// Animations is the ordered list of clips to bake into the output.
	Animations []*scene.AnimationClip

	// IncludeCustomExtensions copies Node.GltfExtensions into the
	// emitted JSON node definition.
	IncludeCustomExtensions bool

	// Generator overrides asset.generator; defaults to a library string.
	Generator string

	// Observer receives Degradation/Skip diagnostics. Defaults to a
	// logger that writes via the standard log package.
	Observer func(Diagnostic)
}

// DefaultOptions returns the writer's defaults, per the table in
// spec.md §4.1.
func DefaultOptions() *Options {
	return &Options{
		OnlyVisible: true,
		Generator:   "gltfwriter",
	}
}

func (o *Options) observe(d Diagnostic) {
	if o.Observer != nil {
		o.Observer(d)
		return
	}
	log.Print(d.String())
}
