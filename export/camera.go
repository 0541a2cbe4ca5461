package export

import (
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

// processCamera maps a scene.Camera to a gltf.Camera. When c.Name is
// non-empty it overwrites the type discriminator instead of a name
// field — a known source bug (spec.md open question 4) preserved
// as-is rather than silently corrected.
func (w *Writer) processCamera(c *scene.Camera) (uint32, error) {
	def := &gltf.Camera{}
	switch c.Type {
	case scene.OrthographicCamera:
		def.Type = gltf.CameraTypeOrthographic
		ortho := &gltf.Orthographic{
			Xmag:  float32(c.XMag),
			Ymag:  float32(c.YMag),
			Zfar:  float32(c.Far),
			Znear: float32(c.Near),
		}
		def.Orthographic = ortho
	default:
		def.Type = gltf.CameraTypePerspective
		persp := &gltf.Perspective{
			Yfov:  float32(c.Fov),
			Znear: float32(c.Near),
		}
		if c.AspectRatio != 0 {
			a := float32(c.AspectRatio)
			persp.AspectRatio = &a
		}
		if c.Far != 0 {
			f := float32(c.Far)
			persp.Zfar = &f
		}
		def.Perspective = persp
	}
	if c.Name != "" {
		def.Type = gltf.CameraType(c.Name)
	}
	w.doc.Cameras = append(w.doc.Cameras, def)
	return uint32(len(w.doc.Cameras) - 1), nil
}
