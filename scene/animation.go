package scene

import "sort"

// Interpolation mirrors the glTF sampler interpolation modes, plus a
// placeholder for anything else a caller's animation system might use
// (e.g. smooth/bezier) that the writer downgrades to Linear with a
// warning, per spec.md §4.5 rule 5 and §7 Degradation.
type Interpolation int

const (
	Linear Interpolation = iota
	Step
	Cubicspline
	Other // any other interpolation mode; always downgraded
)

// TrackPath selects which node/morph property a KeyframeTrack animates.
type TrackPath int

const (
	TrackPosition TrackPath = iota
	TrackQuaternion
	TrackScale
	TrackMorphWeights        // whole-vector morph track, stride == morph target count
	TrackMorphWeightIndexed  // single morph-target-influence track; MorphIndex selects the slot
)

// KeyframeTrack is a single animated property: one Node target, one
// Path, Times in seconds and Values flattened at stride ValueSize.
type KeyframeTrack struct {
	Node          *Node
	Path          TrackPath
	MorphIndex    int // valid when Path == TrackMorphWeightIndexed
	MorphCount    int // total morph target count on the target node's mesh, valid when Path is morph-related
	Times         []float64
	Values        []float64
	ValueSize     int
	Interpolation Interpolation
}

// Sample evaluates the track's interpolant at time t, returning
// ValueSize components. Used by the morph-track merger to fill slots
// that a newly-inserted keyframe doesn't have a source value for.
func (k *KeyframeTrack) Sample(t float64) []float64 {
	n := len(k.Times)
	out := make([]float64, k.ValueSize)
	if n == 0 {
		return out
	}
	if t <= k.Times[0] {
		copy(out, k.Values[0:k.ValueSize])
		return out
	}
	if t >= k.Times[n-1] {
		copy(out, k.Values[(n-1)*k.ValueSize:n*k.ValueSize])
		return out
	}
	i := sort.Search(n, func(i int) bool { return k.Times[i] >= t })
	if i <= 0 {
		copy(out, k.Values[0:k.ValueSize])
		return out
	}
	if k.Times[i] == t {
		copy(out, k.Values[i*k.ValueSize:(i+1)*k.ValueSize])
		return out
	}
	lo, hi := i-1, i
	t0, t1 := k.Times[lo], k.Times[hi]
	if k.Interpolation == Step {
		copy(out, k.Values[lo*k.ValueSize:(lo+1)*k.ValueSize])
		return out
	}
	alpha := 0.0
	if t1 != t0 {
		alpha = (t - t0) / (t1 - t0)
	}
	for c := 0; c < k.ValueSize; c++ {
		a := k.Values[lo*k.ValueSize+c]
		b := k.Values[hi*k.ValueSize+c]
		out[c] = a + (b-a)*alpha
	}
	return out
}

// AnimationClip is a named bundle of tracks, the unit the writer bakes
// into a single glTF animation.
type AnimationClip struct {
	Name   string
	Tracks []*KeyframeTrack
}
