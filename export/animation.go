package export

import (
	"math"
	"sort"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

const keyframeEpsilon = 0.001

// processAnimations runs after the node tree has been traversed (and
// after processSkinQueue), per spec.md §4.5 — track targets, including
// bone tracks redirected by name through skinQueue, resolve against
// the completed nodeMap.
func (w *Writer) processAnimations() error {
	for _, clip := range w.options.Animations {
		if err := w.processAnimation(clip); err != nil {
			return err
		}
	}
	return nil
}

// mergeMorphTargetTracks coalesces per-index morphTargetInfluences[i]
// tracks into one stride-N track per target node, per spec.md §4.5.
func mergeMorphTargetTracks(clip *scene.AnimationClip) ([]*scene.KeyframeTrack, []Diagnostic, error) {
	var diags []Diagnostic
	var passthrough []*scene.KeyframeTrack
	merged := map[*scene.Node]*scene.KeyframeTrack{}
	var order []*scene.Node

	for _, t := range clip.Tracks {
		if t.Path != scene.TrackMorphWeightIndexed {
			passthrough = append(passthrough, t)
			continue
		}
		if t.Interpolation == scene.Cubicspline {
			return nil, nil, &UnsupportedInputError{Reason: "CUBICSPLINE morph-track interpolation is not supported"}
		}
		interp := t.Interpolation
		if interp != scene.Linear && interp != scene.Step {
			diags = append(diags, Diagnostic{Kind: DiagDegradation, Message: "morph track on " + t.Node.Name + " uses a non-linear interpolation mode, downgraded to LINEAR"})
			interp = scene.Linear
		}

		mt, ok := merged[t.Node]
		if !ok {
			mt = &scene.KeyframeTrack{
				Node:          t.Node,
				Path:          scene.TrackMorphWeights,
				MorphCount:    t.MorphCount,
				ValueSize:     t.MorphCount,
				Interpolation: interp,
				Times:         append([]float64{}, t.Times...),
				Values:        make([]float64, len(t.Times)*t.MorphCount),
			}
			for i := range t.Times {
				mt.Values[i*mt.MorphCount+t.MorphIndex] = t.Values[i*t.ValueSize]
			}
			merged[t.Node] = mt
			order = append(order, t.Node)
			continue
		}

		for i, time := range mt.Times {
			sample := t.Sample(time)
			mt.Values[i*mt.MorphCount+t.MorphIndex] = sample[0]
		}
		for i, time := range t.Times {
			idx := insertKeyframe(mt, time)
			mt.Values[idx*mt.MorphCount+t.MorphIndex] = t.Values[i*t.ValueSize]
		}
	}

	out := make([]*scene.KeyframeTrack, 0, len(passthrough)+len(order))
	out = append(out, passthrough...)
	for _, n := range order {
		out = append(out, merged[n])
	}
	return out, diags, nil
}

// insertKeyframe finds or creates a keyframe at time t in track,
// collapsing to an existing one within keyframeEpsilon, per spec.md
// §4.5. On insertion every component is filled from the track's
// current interpolant at t, before the caller overwrites its slot.
func insertKeyframe(track *scene.KeyframeTrack, t float64) int {
	n := len(track.Times)
	i := sort.Search(n, func(i int) bool { return track.Times[i] >= t })
	if i < n && math.Abs(track.Times[i]-t) <= keyframeEpsilon {
		return i
	}
	if i > 0 && math.Abs(track.Times[i-1]-t) <= keyframeEpsilon {
		return i - 1
	}

	sample := track.Sample(t)
	stride := track.ValueSize

	newTimes := make([]float64, n+1)
	copy(newTimes, track.Times[:i])
	newTimes[i] = t
	copy(newTimes[i+1:], track.Times[i:])

	newValues := make([]float64, (n+1)*stride)
	copy(newValues, track.Values[:i*stride])
	copy(newValues[i*stride:(i+1)*stride], sample)
	copy(newValues[(i+1)*stride:], track.Values[i*stride:])

	track.Times = newTimes
	track.Values = newValues
	return i
}

// processAnimation emits one sampler+channel pair per track, per
// spec.md §4.5. Only scale/translation/rotation/weights paths reach
// the document; a track with any other path is skipped here.
func (w *Writer) processAnimation(clip *scene.AnimationClip) error {
	tracks, diags, err := mergeMorphTargetTracks(clip)
	if err != nil {
		return err
	}
	for _, d := range diags {
		w.options.observe(d)
	}

	def := &gltf.Animation{Name: clip.Name}
	for _, t := range tracks {
		nodeIdx, ok := w.resolveAnimatedNode(t.Node)
		if !ok {
			w.options.observe(Diagnostic{Kind: DiagSkip, Message: "animation track target node " + t.Node.Name + " is not present in the exported scene"})
			continue
		}

		path, ok := gltfTargetPath(t.Path)
		if !ok {
			continue
		}

		inputAcc, err := w.writeTimesAccessor(t.Times)
		if err != nil {
			return err
		}
		outputAcc, err := w.writeValuesAccessor(t)
		if err != nil {
			return err
		}

		sampler := &gltf.AnimationSampler{
			Input:         inputAcc,
			Output:        outputAcc,
			Interpolation: gltfInterpolation(t.Interpolation),
		}
		def.Samplers = append(def.Samplers, sampler)
		samplerIdx := uint32(len(def.Samplers) - 1)

		def.Channels = append(def.Channels, &gltf.Channel{
			Sampler: gltf.Index(samplerIdx),
			Target:  gltf.ChannelTarget{Node: gltf.Index(nodeIdx), Path: path},
		})
	}

	if len(def.Channels) == 0 {
		return nil
	}
	w.doc.Animations = append(w.doc.Animations, def)
	return nil
}

// resolveAnimatedNode looks a track's target node up directly, falling
// back to a by-name match against every queued skin's bone list, per
// spec.md §4.5 "skinned-mesh bone tracks are redirected to the bone by
// name".
func (w *Writer) resolveAnimatedNode(n *scene.Node) (uint32, bool) {
	if idx, ok := w.caches.nodeMap[n]; ok {
		return idx, true
	}
	for _, job := range w.skinQueue {
		for _, bone := range job.skin.Bones {
			if bone.Name == n.Name {
				if idx, ok := w.caches.nodeMap[bone]; ok {
					return idx, true
				}
			}
		}
	}
	return 0, false
}

func gltfTargetPath(p scene.TrackPath) (gltf.TRSProperty, bool) {
	switch p {
	case scene.TrackPosition:
		return gltf.TRSTranslation, true
	case scene.TrackQuaternion:
		return gltf.TRSRotation, true
	case scene.TrackScale:
		return gltf.TRSScale, true
	case scene.TrackMorphWeights:
		return gltf.TRSWeights, true
	default:
		return 0, false
	}
}

func gltfInterpolation(i scene.Interpolation) gltf.Interpolation {
	switch i {
	case scene.Step:
		return gltf.InterpolationStep
	case scene.Cubicspline:
		return gltf.InterpolationCubicSpline
	default:
		return gltf.InterpolationLinear
	}
}

func (w *Writer) writeTimesAccessor(times []float64) (*uint32, error) {
	arr := scene.NewFloat32Array(1, len(times))
	for i, t := range times {
		arr.Set(i, 0, t)
	}
	attr := &scene.Attribute{Name: "input", Array: arr}
	return w.processAccessor(attr, 0, len(times), targetNone)
}

// writeValuesAccessor flattens a track's values into a sampler output
// accessor: itemSize 1 with
// count = keyframes*morphCount for morph-weight tracks, itemSize ==
// ValueSize (vec3/vec4) otherwise.
func (w *Writer) writeValuesAccessor(t *scene.KeyframeTrack) (*uint32, error) {
	n := len(t.Times)
	if t.Path == scene.TrackMorphWeights {
		arr := scene.NewFloat32Array(1, n*t.ValueSize)
		for i, v := range t.Values {
			arr.Set(i, 0, v)
		}
		attr := &scene.Attribute{Name: "output", Array: arr}
		return w.processAccessor(attr, 0, n*t.ValueSize, targetNone)
	}
	arr := scene.NewFloat32Array(t.ValueSize, n)
	for i := 0; i < n; i++ {
		for c := 0; c < t.ValueSize; c++ {
			arr.Set(i, c, t.Values[i*t.ValueSize+c])
		}
	}
	attr := &scene.Attribute{Name: "output", Array: arr}
	return w.processAccessor(attr, 0, n, targetNone)
}
