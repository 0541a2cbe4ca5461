package scene

// Side mirrors three.js-style face culling state.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material carries the union of PBR parameters the writer knows how to
// map, plus a capability tag set identifying which physical-material
// extensions apply. Fields at their zero value are treated as "not set"
// by the writer/plugins, which elide default-valued sub-objects.
type Material struct {
	Name string

	IsShaderMaterial bool // fails soft: processMaterial warns and returns nil
	Unlit            bool

	BaseColor       [4]float64 // default {1,1,1,1}; omitted from JSON when default
	BaseColorTexture *Texture

	Metalness        float64
	Roughness        float64
	MetalnessTexture *Texture
	RoughnessTexture *Texture

	NormalTexture *Texture
	NormalScale   float64 // only the X component of a vec3 scale is honored

	OcclusionTexture   *Texture
	OcclusionIntensity float64

	Emissive          [3]float64
	EmissiveTexture   *Texture
	EmissiveIntensity float64 // KHR_materials_emissive_strength

	Transparent bool
	AlphaTest   float64
	Side        Side
	Wireframe   bool

	Capabilities map[string]bool

	Transmission float64

	Thickness           float64
	AttenuationDistance float64
	AttenuationColor    [3]float64

	IOR float64

	SpecularIntensity       float64
	SpecularColor           [3]float64
	SpecularColorTexture    *Texture
	SpecularIntensityTexture *Texture

	Clearcoat                float64
	ClearcoatRoughness       float64
	ClearcoatTexture         *Texture
	ClearcoatRoughnessTexture *Texture
	ClearcoatNormalTexture   *Texture

	Dispersion float64

	Iridescence               float64
	IridescenceIOR            float64
	IridescenceThicknessRange [2]float64
	IridescenceTexture        *Texture
	IridescenceThicknessTexture *Texture

	SheenColor           [3]float64
	SheenRoughness       float64
	SheenColorTexture    *Texture
	SheenRoughnessTexture *Texture

	Anisotropy         float64
	AnisotropyRotation float64
	AnisotropyTexture  *Texture

	BumpScale   float64
	BumpTexture *Texture

	UserData map[string]interface{}
}

func (m *Material) Has(capability string) bool {
	return m.Capabilities != nil && m.Capabilities[capability]
}
