package export

import (
	"math"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

func drawModeToPrimitiveMode(d scene.DrawMode, wireframe bool) gltf.PrimitiveMode {
	if wireframe && d == scene.Triangles {
		return gltf.PrimitiveLines
	}
	switch d {
	case scene.Lines:
		return gltf.PrimitiveLines
	case scene.LineLoop:
		return gltf.PrimitiveLineLoop
	case scene.LineStrip:
		return gltf.PrimitiveLineStrip
	case scene.Points:
		return gltf.PrimitivePoints
	default:
		return gltf.PrimitiveTriangles
	}
}

// normalizedNormalAttribute returns attr unchanged if every vector's
// length is within 1±0.0005, otherwise a normalized clone. Zero-length
// normals become (1,0,0), per spec.md §4.4.
func (w *Writer) normalizedNormalAttribute(attr *scene.Attribute) *scene.Attribute {
	const eps = 0.0005
	n := attr.Count()
	needsFix := false
	for i := 0; i < n; i++ {
		x, y, z := attr.Array.At(i, 0), attr.Array.At(i, 1), attr.Array.At(i, 2)
		l := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(l-1) > eps {
			needsFix = true
			break
		}
	}
	if !needsFix {
		return attr
	}
	clone := &scene.Attribute{Name: attr.Name, Array: attr.Array.Clone()}
	for i := 0; i < n; i++ {
		x, y, z := clone.Array.At(i, 0), clone.Array.At(i, 1), clone.Array.At(i, 2)
		l := math.Sqrt(x*x + y*y + z*z)
		if l == 0 {
			clone.Array.Set(i, 0, 1)
			clone.Array.Set(i, 1, 0)
			clone.Array.Set(i, 2, 0)
			continue
		}
		clone.Array.Set(i, 0, x/l)
		clone.Array.Set(i, 1, y/l)
		clone.Array.Set(i, 2, z/l)
	}
	return clone
}

// coerceJointsAttribute widens JOINTS_0 to uint16 storage when the source isn't
// already 8- or 16-bit unsigned, per spec.md §4.4.
func coerceJointsAttribute(attr *scene.Attribute) *scene.Attribute {
	k := attr.Array.Kind()
	if k == scene.Uint8 || k == scene.Uint16 {
		return attr
	}
	n := attr.Count()
	itemSize := attr.ItemSize()
	out := scene.NewUint16Array(itemSize, n)
	for i := 0; i < n; i++ {
		for c := 0; c < itemSize; c++ {
			out.Set(i, c, attr.Array.At(i, c))
		}
	}
	return &scene.Attribute{Name: attr.Name, Array: out}
}

// subtractBase returns a clone of target with base subtracted
// component-wise, the morph relativization rule of spec.md §4.4.
func subtractBase(target, base *scene.Attribute) *scene.Attribute {
	clone := &scene.Attribute{Name: target.Name, Array: target.Array.Clone()}
	n := clone.Array.Len()
	itemSize := clone.Array.ItemSize()
	for i := 0; i < n; i++ {
		for c := 0; c < itemSize; c++ {
			clone.Array.Set(i, c, target.Array.At(i, c)-base.Array.At(i, c))
		}
	}
	return clone
}

func (w *Writer) processMesh(m *scene.Mesh) (*uint32, error) {
	if m.Geometry == nil || len(m.Materials) == 0 {
		return nil, nil
	}
	multiMaterial := len(m.Materials) > 1
	if multiMaterial && len(m.Geometry.Groups) == 0 {
		w.options.observe(Diagnostic{Kind: DiagSkip, Message: "multi-material mesh without geometry groups: skipped"})
		return nil, nil
	}

	key := meshCacheKey(m.Geometry.UUID, m.Materials)
	if idx, ok := w.caches.meshes[key]; ok {
		return &idx, nil
	}

	geom := m.Geometry
	restoreIndex := false
	if multiMaterial && geom.Index == nil {
		n := 0
		if pos, ok := geom.Attributes["position"]; ok {
			n = pos.Count()
		}
		idxArr := scene.NewUint32Array(1, n)
		for i := 0; i < n; i++ {
			idxArr.Set(i, 0, float64(i))
		}
		geom.Index = &scene.Attribute{Name: "index", Array: idxArr, IsIndex: true}
		restoreIndex = true
	}

	materialIndices := make([]*uint32, len(m.Materials))
	for i, mat := range m.Materials {
		idx, err := w.processMaterial(mat)
		if err != nil {
			return nil, err
		}
		materialIndices[i] = idx
	}

	attributes := map[string]uint32{}
	for _, name := range sortedAttributeNames(geom.Attributes) {
		attr := geom.Attributes[name]
		key := attrCacheKey{uid: w.caches.uids.uid(attr), relative: false}
		if cached, ok := w.caches.accessors[key]; ok {
			attributes[gltfAttributeName(name)] = cached
			continue
		}
		a := attr
		if name == "normal" {
			a = w.normalizedNormalAttribute(a)
		}
		if name == "skinIndex" {
			a = coerceJointsAttribute(a)
		}
		accIdx, err := w.processAccessor(a, 0, a.Count(), targetArrayBuffer)
		if err != nil {
			return nil, err
		}
		if accIdx != nil {
			w.caches.accessors[key] = *accIdx
			attributes[gltfAttributeName(name)] = *accIdx
		}
	}

	targets, targetNames, err := w.processMorphTargets(geom, attributes)
	if err != nil {
		return nil, err
	}

	var primitives []*gltf.Primitive
	mode := drawModeToPrimitiveMode(m.DrawMode, len(m.Materials) > 0 && m.Materials[0].Wireframe)

	if geom.Index != nil {
		if multiMaterial {
			for _, g := range geom.Groups {
				groupAttr := &scene.Attribute{Name: "indices", Array: sliceIndexArray(geom.Index.Array, g.Start, g.Count), IsIndex: true}
				idxAcc, err := w.processAccessor(groupAttr, 0, g.Count, targetElementArrayBuffer)
				if err != nil {
					return nil, err
				}
				prim := &gltf.Primitive{Attributes: attributes, Targets: targets, Mode: mode}
				if idxAcc != nil {
					prim.Indices = idxAcc
				}
				if g.MaterialIndex >= 0 && g.MaterialIndex < len(materialIndices) {
					prim.Material = materialIndices[g.MaterialIndex]
				}
				primitives = append(primitives, prim)
			}
		} else {
			idxKey := attrCacheKey{uid: w.caches.uids.uid(geom.Index), relative: false}
			var idxAcc *uint32
			if cached, ok := w.caches.accessors[idxKey]; ok {
				idxAcc = &cached
			} else {
				var err error
				idxAcc, err = w.processAccessor(geom.Index, 0, geom.Index.Count(), targetElementArrayBuffer)
				if err != nil {
					return nil, err
				}
				if idxAcc != nil {
					w.caches.accessors[idxKey] = *idxAcc
				}
			}
			prim := &gltf.Primitive{Attributes: attributes, Targets: targets, Material: materialIndices[0], Mode: mode}
			if idxAcc != nil {
				prim.Indices = idxAcc
			}
			primitives = append(primitives, prim)
		}
	} else {
		prim := &gltf.Primitive{Attributes: attributes, Targets: targets, Material: materialIndices[0], Mode: mode}
		primitives = append(primitives, prim)
	}

	if restoreIndex {
		geom.Index = nil
	}

	if len(primitives) == 0 {
		return nil, nil
	}

	gm := &gltf.Mesh{Name: m.Name, Primitives: primitives}
	if len(m.MorphTargetInfluences) > 0 {
		gm.Weights = make([]float32, len(m.MorphTargetInfluences))
		for i, v := range m.MorphTargetInfluences {
			gm.Weights[i] = float32(v)
		}
	}
	if len(targetNames) > 0 {
		gm.Extras = map[string]interface{}{"targetNames": targetNames}
	}

	w.doc.Meshes = append(w.doc.Meshes, gm)
	idx := uint32(len(w.doc.Meshes) - 1)
	w.caches.meshes[key] = idx
	return &idx, nil
}

func sliceIndexArray(a scene.Array, start, count int) scene.Array {
	out := scene.NewUint32Array(1, count)
	for i := 0; i < count; i++ {
		out.Set(i, 0, a.At(start+i, 0))
	}
	return out
}

// processMorphTargets exports only the POSITION and NORMAL morph paths,
// relativizing absolute sources and warning once per skipped target
// name, per spec.md §4.4.
func (w *Writer) processMorphTargets(geom *scene.Geometry, baseAttrs map[string]uint32) ([]map[string]uint32, []string, error) {
	if len(geom.MorphAttributes) == 0 {
		return nil, nil, nil
	}
	morphNames := sortedMorphAttributeNames(geom.MorphAttributes)
	count := 0
	if len(morphNames) > 0 {
		count = len(geom.MorphAttributes[morphNames[0]])
	}
	targets := make([]map[string]uint32, count)
	for i := range targets {
		targets[i] = map[string]uint32{}
	}

	for _, name := range morphNames {
		attrs := geom.MorphAttributes[name]
		if name != "position" && name != "normal" {
			if !w.warnedMorphAttr[name] {
				w.warnedMorphAttr[name] = true
				w.options.observe(Diagnostic{Kind: DiagDegradation, Message: "morph attribute " + name + " is not POSITION/NORMAL: skipped"})
			}
			continue
		}
		base, ok := geom.Attributes[name]
		if !ok {
			continue
		}
		gltfName := gltfAttributeName(name)
		for i, target := range attrs {
			if i >= len(targets) {
				break
			}
			var toWrite *scene.Attribute
			relative := true
			if geom.MorphRelative {
				toWrite = target
				relative = false
			} else {
				toWrite = subtractBase(target, base)
			}
			key := attrCacheKey{uid: w.caches.uids.uid(target), relative: relative}
			if cached, ok := w.caches.accessors[key]; ok {
				targets[i][gltfName] = cached
				continue
			}
			accIdx, err := w.processAccessor(toWrite, 0, toWrite.Count(), targetArrayBuffer)
			if err != nil {
				return nil, nil, err
			}
			if accIdx != nil {
				w.caches.accessors[key] = *accIdx
				targets[i][gltfName] = *accIdx
			}
		}
	}
	return targets, geom.MorphTargetNames, nil
}
