package export

import "fmt"

// UnsupportedInputError is a fatal error: an accessor item size other
// than 1-4, 9 or 16, a CUBICSPLINE source reaching the animation
// merger, or a skin bone missing from the exported node tree. A
// ShaderMaterial is not one of these: it is skipped with a Diagnostic.
type UnsupportedInputError struct {
	Reason string
}

func (e *UnsupportedInputError) Error() string { return "gltfwriter: unsupported input: " + e.Reason }

// UnsupportedMimeError is fatal: an image mime-type other than
// image/png or image/jpeg was requested during encode.
type UnsupportedMimeError struct {
	Mime string
}

func (e *UnsupportedMimeError) Error() string {
	return fmt.Sprintf("gltfwriter: unsupported image mime type %q", e.Mime)
}

// InvalidImageError is fatal: the image source is not one of the
// rasterizable variants the writer accepts.
type InvalidImageError struct {
	Reason string
}

func (e *InvalidImageError) Error() string { return "gltfwriter: invalid image: " + e.Reason }

// DiagnosticKind classifies a non-fatal Diagnostic.
type DiagnosticKind int

const (
	DiagDegradation DiagnosticKind = iota
	DiagSkip
)

// Diagnostic is a warn-and-continue or silent-skip event, routed to the
// Writer's Observer instead of returned as an error so a single bad
// node, morph target or material never aborts the whole write.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string { return d.Message }
