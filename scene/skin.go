package scene

// Skin mirrors a three.js Skeleton bound to a SkinnedMesh: an ordered
// bone list, the skeleton's rest-pose bone inverses, and the bound
// object's own bind matrix (post-multiplied into each inverse on
// export, see export/skin.go).
type Skin struct {
	Bones        []*Node
	BoneInverses [][16]float64 // one per bone, column-major
	BindMatrix   [16]float64
}
