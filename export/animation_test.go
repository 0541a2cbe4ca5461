package export

import (
	"testing"

	"github.com/binzume/gltfwriter/scene"
)

func TestMergeMorphTargetTracksCombinesIndexedTracks(t *testing.T) {
	node := scene.NewNode("mesh")
	clip := &scene.AnimationClip{
		Name: "clip",
		Tracks: []*scene.KeyframeTrack{
			{
				Node: node, Path: scene.TrackMorphWeightIndexed, MorphIndex: 0, MorphCount: 2,
				Times: []float64{0, 1}, Values: []float64{0, 1}, ValueSize: 1, Interpolation: scene.Linear,
			},
			{
				Node: node, Path: scene.TrackMorphWeightIndexed, MorphIndex: 1, MorphCount: 2,
				Times: []float64{0, 1}, Values: []float64{1, 0}, ValueSize: 1, Interpolation: scene.Linear,
			},
		},
	}

	merged, diags, err := mergeMorphTargetTracks(clip)
	if err != nil {
		t.Fatalf("mergeMorphTargetTracks: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(merged) != 1 {
		t.Fatalf("len(merged) = %d, want 1", len(merged))
	}
	track := merged[0]
	if track.Path != scene.TrackMorphWeights || track.ValueSize != 2 {
		t.Fatalf("merged track = %+v, want Path=TrackMorphWeights ValueSize=2", track)
	}
	if len(track.Times) != 2 {
		t.Fatalf("len(Times) = %d, want 2", len(track.Times))
	}
	// at t=0: [weight0=0, weight1=1]; at t=1: [weight0=1, weight1=0]
	if track.Values[0] != 0 || track.Values[1] != 1 {
		t.Fatalf("Values at t=0 = %v, want [0 1]", track.Values[0:2])
	}
	if track.Values[2] != 1 || track.Values[3] != 0 {
		t.Fatalf("Values at t=1 = %v, want [1 0]", track.Values[2:4])
	}
}

func TestMergeMorphTargetTracksRejectsCubicSpline(t *testing.T) {
	node := scene.NewNode("mesh")
	clip := &scene.AnimationClip{
		Tracks: []*scene.KeyframeTrack{
			{Node: node, Path: scene.TrackMorphWeightIndexed, MorphCount: 1, Times: []float64{0}, Values: []float64{1}, ValueSize: 1, Interpolation: scene.Cubicspline},
		},
	}
	if _, _, err := mergeMorphTargetTracks(clip); err == nil {
		t.Fatal("expected an error for CUBICSPLINE morph tracks")
	}
}

func TestMergeMorphTargetTracksDowngradesOtherInterpolation(t *testing.T) {
	node := scene.NewNode("mesh")
	clip := &scene.AnimationClip{
		Tracks: []*scene.KeyframeTrack{
			{Node: node, Path: scene.TrackMorphWeightIndexed, MorphCount: 1, Times: []float64{0, 1}, Values: []float64{0, 1}, ValueSize: 1, Interpolation: scene.Other},
		},
	}
	merged, diags, err := mergeMorphTargetTracks(clip)
	if err != nil {
		t.Fatalf("mergeMorphTargetTracks: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("len(diags) = %d, want 1", len(diags))
	}
	if merged[0].Interpolation != scene.Linear {
		t.Fatalf("Interpolation = %v, want Linear", merged[0].Interpolation)
	}
}

func TestInsertKeyframeDedupesWithinEpsilon(t *testing.T) {
	track := &scene.KeyframeTrack{
		Times:     []float64{0, 1, 2},
		Values:    []float64{0, 1, 2},
		ValueSize: 1,
	}
	idx := insertKeyframe(track, 1.0005)
	if idx != 1 {
		t.Fatalf("insertKeyframe(1.0005) = %d, want 1 (collapsed onto existing keyframe at t=1)", idx)
	}
	if len(track.Times) != 3 {
		t.Fatalf("len(Times) = %d, want 3 (no new keyframe inserted)", len(track.Times))
	}
}

func TestInsertKeyframeInsertsNewSlot(t *testing.T) {
	track := &scene.KeyframeTrack{
		Times:     []float64{0, 2},
		Values:    []float64{0, 20},
		ValueSize: 1,
	}
	idx := insertKeyframe(track, 1)
	if idx != 1 {
		t.Fatalf("insertKeyframe(1) = %d, want 1", idx)
	}
	if len(track.Times) != 3 || track.Times[1] != 1 {
		t.Fatalf("Times = %v, want [0 1 2]", track.Times)
	}
	if track.Values[1] != 10 {
		t.Fatalf("Values[1] = %v, want 10 (sampled from linear interpolant)", track.Values[1])
	}
}

func TestGltfTargetPathMapping(t *testing.T) {
	cases := []scene.TrackPath{scene.TrackPosition, scene.TrackQuaternion, scene.TrackScale, scene.TrackMorphWeights}
	for _, p := range cases {
		if _, ok := gltfTargetPath(p); !ok {
			t.Fatalf("gltfTargetPath(%v) reported not ok", p)
		}
	}
	if _, ok := gltfTargetPath(scene.TrackMorphWeightIndexed); ok {
		t.Fatal("TrackMorphWeightIndexed should never reach gltfTargetPath directly")
	}
}
