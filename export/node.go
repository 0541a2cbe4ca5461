package export

import (
	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

var identityQuat = [4]float64{0, 0, 0, 1}
var unitScale = [3]float64{1, 1, 1}

// processNode recursively assigns each visited node a dense index in
// doc.Nodes before descending into children (depth-first, child-list
// order), satisfying the ordering requirement skins and animations
// depend on: nodeMap is complete only after the whole tree returns.
func (w *Writer) processNode(n *scene.Node) (uint32, error) {
	def := &gltf.Node{Name: n.Name}
	w.applyTransform(n, def)

	if n.GltfExtensions != nil && w.options.IncludeCustomExtensions {
		if def.Extensions == nil {
			def.Extensions = gltf.Extensions{}
		}
		for k, v := range n.GltfExtensions {
			def.Extensions[k] = v
		}
	}

	w.doc.Nodes = append(w.doc.Nodes, def)
	index := uint32(len(w.doc.Nodes) - 1)
	w.caches.nodeMap[n] = index

	if n.Mesh != nil {
		meshIndex, err := w.processMesh(n.Mesh)
		if err != nil {
			return 0, err
		}
		if meshIndex != nil {
			def.Mesh = meshIndex
			for _, p := range w.plugins {
				if mw, ok := p.(MeshWriter); ok {
					if err := mw.WriteMesh(w, n.Mesh, w.doc.Meshes[*meshIndex]); err != nil {
						return 0, err
					}
				}
			}
		}
	}

	if n.Instances != nil {
		if err := w.writeInstancing(n, def); err != nil {
			return 0, err
		}
	}

	if n.Camera != nil {
		camIndex, err := w.processCamera(n.Camera)
		if err != nil {
			return 0, err
		}
		def.Camera = gltf.Index(camIndex)
	}

	if n.Skin != nil {
		w.skinQueue = append(w.skinQueue, skinJob{nodeIndex: index, skin: n.Skin})
	}

	for _, child := range n.Children {
		if w.options.OnlyVisible && !child.Visible {
			continue
		}
		childIndex, err := w.processNode(child)
		if err != nil {
			return 0, err
		}
		def.Children = append(def.Children, childIndex)
	}

	for _, p := range w.plugins {
		if nw, ok := p.(NodeWriter); ok {
			if err := nw.WriteNode(w, n, def); err != nil {
				return 0, err
			}
		}
	}

	return index, nil
}

// applyTransform writes either a single Matrix or decomposed TRS fields
// onto def, per spec.md §4.1's `trs` option.
func (w *Writer) applyTransform(n *scene.Node, def *gltf.Node) {
	if n.Matrix != nil {
		if w.options.TRS {
			t, r, s := decomposeTRS(*n.Matrix)
			writeTRS(def, t, r, s)
		} else if !isIdentityMatrix(*n.Matrix) {
			def.Matrix = toFloat32Array16(*n.Matrix)
		}
		return
	}

	t, r, s := n.Translation, n.Rotation, n.Scale
	if s == [3]float64{} {
		s = unitScale
	}
	if r == [4]float64{} {
		r = identityQuat
	}
	if w.options.TRS {
		writeTRS(def, t, r, s)
		return
	}
	m := composeTRS(t, r, s)
	if !isIdentityMatrix(m) {
		def.Matrix = toFloat32Array16(m)
	}
}

func writeTRS(def *gltf.Node, t [3]float64, r [4]float64, s [3]float64) {
	if t != [3]float64{} {
		def.Translation = [3]float32{float32(t[0]), float32(t[1]), float32(t[2])}
	}
	if r != identityQuat {
		def.Rotation = [4]float32{float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])}
	}
	if s != unitScale {
		def.Scale = [3]float32{float32(s[0]), float32(s[1]), float32(s[2])}
	}
}
