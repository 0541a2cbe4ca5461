package scene

import "testing"

func TestKeyframeTrackSampleLinear(t *testing.T) {
	track := &KeyframeTrack{
		Times:         []float64{0, 1, 2},
		Values:        []float64{0, 0, 0, 10, 10, 10, 0, 0, 0},
		ValueSize:     3,
		Interpolation: Linear,
	}

	got := track.Sample(0.5)
	want := []float64{5, 5, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sample(0.5) = %v, want %v", got, want)
		}
	}
}

func TestKeyframeTrackSampleStepHoldsPreviousValue(t *testing.T) {
	track := &KeyframeTrack{
		Times:         []float64{0, 1},
		Values:        []float64{1, 2},
		ValueSize:     1,
		Interpolation: Step,
	}
	got := track.Sample(0.9)
	if got[0] != 1 {
		t.Fatalf("Sample(0.9) = %v, want [1]", got)
	}
}

func TestKeyframeTrackSampleClampsBeforeAndAfter(t *testing.T) {
	track := &KeyframeTrack{
		Times:     []float64{1, 2},
		Values:    []float64{10, 20},
		ValueSize: 1,
	}
	if got := track.Sample(0); got[0] != 10 {
		t.Fatalf("Sample(0) = %v, want [10]", got)
	}
	if got := track.Sample(5); got[0] != 20 {
		t.Fatalf("Sample(5) = %v, want [20]", got)
	}
}

func TestKeyframeTrackSampleExactHit(t *testing.T) {
	track := &KeyframeTrack{
		Times:     []float64{0, 1, 2},
		Values:    []float64{0, 100, 200},
		ValueSize: 1,
	}
	if got := track.Sample(1); got[0] != 100 {
		t.Fatalf("Sample(1) = %v, want [100]", got)
	}
}
