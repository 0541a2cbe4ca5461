package export

import (
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const instancingExtensionName = "EXT_mesh_gpu_instancing"

// writeInstancing decomposes each of n.Instances.Matrices into TRS and
// writes them as EXT_mesh_gpu_instancing's per-instance accessor
// attributes, plus an optional _COLOR_0 attribute when Instances.Colors
// is set. EXT_mesh_gpu_instancing is marked required: a viewer without
// it would render the node's mesh once at the identity transform
// instead of once per instance, which is wrong enough to refuse instead
// of degrading.
func (w *Writer) writeInstancing(n *scene.Node, def *gltf.Node) error {
	count := len(n.Instances.Matrices)
	if count == 0 {
		return nil
	}

	translation := scene.NewFloat32Array(3, count)
	rotation := scene.NewFloat32Array(4, count)
	scale := scene.NewFloat32Array(3, count)
	for i, m := range n.Instances.Matrices {
		t, r, s := decomposeTRS(m)
		translation.Set(i, 0, t[0])
		translation.Set(i, 1, t[1])
		translation.Set(i, 2, t[2])
		rotation.Set(i, 0, r[0])
		rotation.Set(i, 1, r[1])
		rotation.Set(i, 2, r[2])
		rotation.Set(i, 3, r[3])
		scale.Set(i, 0, s[0])
		scale.Set(i, 1, s[1])
		scale.Set(i, 2, s[2])
	}

	attrs := map[string]interface{}{}

	tIdx, err := w.processAccessor(&scene.Attribute{Name: "TRANSLATION", Array: translation}, 0, count, targetNone)
	if err != nil {
		return err
	}
	attrs["TRANSLATION"] = *tIdx

	rIdx, err := w.processAccessor(&scene.Attribute{Name: "ROTATION", Array: rotation}, 0, count, targetNone)
	if err != nil {
		return err
	}
	attrs["ROTATION"] = *rIdx

	sIdx, err := w.processAccessor(&scene.Attribute{Name: "SCALE", Array: scale}, 0, count, targetNone)
	if err != nil {
		return err
	}
	attrs["SCALE"] = *sIdx

	if len(n.Instances.Colors) > 0 {
		colors := scene.NewFloat32Array(4, count)
		for i, c := range n.Instances.Colors {
			colors.Set(i, 0, c[0])
			colors.Set(i, 1, c[1])
			colors.Set(i, 2, c[2])
			colors.Set(i, 3, c[3])
		}
		cIdx, err := w.processAccessor(&scene.Attribute{Name: "_COLOR_0", Array: colors}, 0, count, targetNone)
		if err != nil {
			return err
		}
		attrs["_COLOR_0"] = *cIdx
	}

	if def.Extensions == nil {
		def.Extensions = gltf.Extensions{}
	}
	def.Extensions[instancingExtensionName] = map[string]interface{}{"attributes": attrs}
	w.markExtensionRequired(instancingExtensionName)
	return nil
}
