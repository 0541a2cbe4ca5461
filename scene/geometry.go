package scene

// GeometryGroup binds a contiguous run of the index stream to a material
// slot, the same role three.js geometry groups play for multi-material
// meshes.
type GeometryGroup struct {
	Start, Count  int
	MaterialIndex int
}

// Geometry holds named vertex-attribute streams, an optional index
// stream, optional morph attributes and the material-group table used
// when a Mesh binds more than one material.
type Geometry struct {
	UUID string

	Attributes      map[string]*Attribute
	MorphAttributes map[string][]*Attribute // "position" / "normal" -> one Attribute per morph target
	MorphRelative   bool                     // true if morph attributes are already base-relative
	MorphTargetNames []string

	Index *Attribute

	Groups []GeometryGroup
}

func NewGeometry(uuid string) *Geometry {
	return &Geometry{UUID: uuid, Attributes: map[string]*Attribute{}, MorphAttributes: map[string][]*Attribute{}}
}
