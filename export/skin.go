package export

import (
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

// processSkinQueue runs after the whole node tree has been traversed
// (spec.md §4.6 "needs nodeMap complete"), emitting one gltf.Skin per
// queued job and back-writing its index onto the owning node.
func (w *Writer) processSkinQueue() error {
	for _, job := range w.skinQueue {
		idx, err := w.processSkin(job.skin)
		if err != nil {
			return err
		}
		if idx != nil {
			w.doc.Nodes[job.nodeIndex].Skin = idx
		}
	}
	return nil
}

// processSkin builds inverseBindMatrices by post-multiplying each bone
// inverse by the skin's bind matrix, per spec.md §4.6.
func (w *Writer) processSkin(sk *scene.Skin) (*uint32, error) {
	if sk == nil || len(sk.Bones) == 0 {
		return nil, nil
	}

	joints := make([]uint32, 0, len(sk.Bones))
	var skeleton *uint32
	for i, bone := range sk.Bones {
		idx, ok := w.caches.nodeMap[bone]
		if !ok {
			return nil, &UnsupportedInputError{Reason: "skin bone is not reachable from the scene's node tree"}
		}
		joints = append(joints, idx)
		if i == 0 {
			v := idx
			skeleton = &v
		}
	}

	arr := scene.NewFloat32Array(16, len(sk.Bones))
	for i := range sk.Bones {
		var boneInverse [16]float64
		if i < len(sk.BoneInverses) {
			boneInverse = sk.BoneInverses[i]
		} else {
			boneInverse = identityMatrix
		}
		m := mat4Mul(boneInverse, sk.BindMatrix)
		for c := 0; c < 16; c++ {
			arr.Set(i, c, m[c])
		}
	}
	attr := &scene.Attribute{Name: "inverseBindMatrices", Array: arr}
	accIdx, err := w.processAccessor(attr, 0, len(sk.Bones), targetNone)
	if err != nil {
		return nil, err
	}

	def := &gltf.Skin{Joints: joints, InverseBindMatrices: accIdx}
	if skeleton != nil {
		def.Skeleton = gltf.Index(*skeleton)
	}
	w.doc.Skins = append(w.doc.Skins, def)
	idx := uint32(len(w.doc.Skins) - 1)
	return &idx, nil
}
