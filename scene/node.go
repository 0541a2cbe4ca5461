package scene

// Node is a scene-graph node: local transform (TRS or matrix), optional
// mesh/camera/light/skin reference and a child list. Node identity is
// its Go pointer; the writer keys nodeMap on that pointer.
type Node struct {
	Name string

	Translation [3]float64
	Rotation    [4]float64 // quaternion, xyzw
	Scale       [3]float64
	Matrix      *[16]float64 // column-major; if set, overrides TRS on export unless options.TRS forces decomposition

	Visible bool

	Mesh      *Mesh
	Instances *Instancing
	Camera    *Camera
	Light     *Light
	Skin      *Skin

	Children []*Node

	GltfExtensions map[string]interface{} // userData.gltfExtensions equivalent
}

func NewNode(name string) *Node {
	return &Node{Name: name, Scale: [3]float64{1, 1, 1}, Rotation: [4]float64{0, 0, 0, 1}, Visible: true}
}

// Instancing carries EXT_mesh_gpu_instancing per-instance data for a
// node whose Mesh is drawn multiple times with per-instance transforms.
type Instancing struct {
	Matrices [][16]float64 // one TRS matrix per instance; decomposed on export
	Colors   [][4]float64  // optional per-instance _COLOR_0
}
