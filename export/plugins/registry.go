package plugins

import "github.com/binzume/gltfwriter/export"

// builtin pairs an extension name with its plug-in factory. builtins is
// an explicit ordered slice, not a map: spec.md §4.7 guarantees
// plug-ins are called in registration order, and markExtensionUsed
// records that order for extensionsUsed/extensionsRequired — ranging a
// map here would make the emitted order nondeterministic across runs.
type builtin struct {
	name    string
	factory export.Factory
}

var builtins = []builtin{
	{lightsExtensionName, NewLightsPunctual},
	{unlitExtensionName, NewUnlit},
	{transmissionExtensionName, NewTransmission},
	{volumeExtensionName, NewVolume},
	{iorExtensionName, NewIOR},
	{specularExtensionName, NewSpecular},
	{clearcoatExtensionName, NewClearcoat},
	{dispersionExtensionName, NewDispersion},
	{iridescenceExtensionName, NewIridescence},
	{sheenExtensionName, NewSheen},
	{anisotropyExtensionName, NewAnisotropy},
	{emissiveStrengthExtensionName, NewEmissiveStrength},
	{bumpExtensionName, NewBump},
}

// DefaultRegistry returns a Registry with every built-in plug-in
// registered, in the fixed order above. Callers that only want a
// subset can build their own export.NewRegistry() and Register
// selectively, or use FilteredRegistry.
func DefaultRegistry() *export.Registry {
	r := export.NewRegistry()
	for _, b := range builtins {
		r.Register(b.factory)
	}
	return r
}

// FilteredRegistry returns a Registry with only the named extensions
// enabled in enabled (name -> true) registered, in the fixed order
// above, for a config file's `extensions` override
// (export.Config.Extensions).
func FilteredRegistry(enabled map[string]bool) *export.Registry {
	r := export.NewRegistry()
	for _, b := range builtins {
		if enabled[b.name] {
			r.Register(b.factory)
		}
	}
	return r
}
