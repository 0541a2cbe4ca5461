package export

import (
	"testing"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

func TestPadTo4(t *testing.T) {
	cases := map[int]int{0: 0, 1: 4, 3: 4, 4: 4, 5: 8, 13: 16}
	for in, want := range cases {
		if got := padTo4(in); got != want {
			t.Errorf("padTo4(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestLcm4(t *testing.T) {
	cases := map[int]int{1: 4, 2: 4, 3: 12, 4: 4, 6: 12, 8: 8, 12: 12}
	for in, want := range cases {
		if got := lcm4(in); got != want {
			t.Errorf("lcm4(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestGltfAttributeName(t *testing.T) {
	cases := map[string]string{
		"position":   "POSITION",
		"normal":     "NORMAL",
		"tangent":    "TANGENT",
		"color":      "COLOR_0",
		"skinWeight": "WEIGHTS_0",
		"skinIndex":  "JOINTS_0",
		"uv":         "TEXCOORD_0",
		"uv1":        "TEXCOORD_1",
		"custom":     "_CUSTOM",
	}
	for in, want := range cases {
		if got := gltfAttributeName(in); got != want {
			t.Errorf("gltfAttributeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProcessAccessorBufferAlignmentAndBounds(t *testing.T) {
	w := NewWriter(nil, nil)
	w.doc = &gltf.Document{}

	arr := scene.NewUint16Array(3, 2) // VEC3 of uint16, elemStride = 6 bytes
	arr.Set(0, 0, 1)
	arr.Set(0, 1, 2)
	arr.Set(0, 2, 3)
	arr.Set(1, 0, 4)
	arr.Set(1, 1, 5)
	arr.Set(1, 2, 6)
	attr := &scene.Attribute{Name: "position", Array: arr}

	idx, err := w.processAccessor(attr, 0, 2, targetArrayBuffer)
	if err != nil {
		t.Fatalf("processAccessor: %v", err)
	}
	if idx == nil {
		t.Fatal("processAccessor returned nil index for non-empty attribute")
	}
	acc := w.doc.Accessors[*idx]
	if acc.Count != 2 {
		t.Fatalf("Count = %d, want 2", acc.Count)
	}
	if acc.Min[0] != 1 || acc.Max[0] != 4 {
		t.Fatalf("Min/Max[0] = %v/%v, want 1/4", acc.Min[0], acc.Max[0])
	}
	bv := w.doc.BufferViews[*acc.BufferView]
	if bv.ByteOffset%4 != 0 {
		t.Fatalf("bufferView ByteOffset %d is not 4-byte aligned", bv.ByteOffset)
	}
	if len(w.binBuffer)%4 != 0 {
		t.Fatalf("binBuffer length %d is not padded to a multiple of 4", len(w.binBuffer))
	}
}

func TestProcessAccessorByteStrideMatchesPackedSpacing(t *testing.T) {
	w := NewWriter(nil, nil)
	w.doc = &gltf.Document{}

	// A uint8 VEC3 (e.g. a packed COLOR_0) has elemStride=3, which is
	// not 4-byte aligned: byteStride must be padded to 4, and every
	// element must actually be written 4 bytes apart to match, not
	// packed tightly at 3.
	arr := scene.NewUint8Array(3, 2)
	arr.Set(0, 0, 10)
	arr.Set(0, 1, 20)
	arr.Set(0, 2, 30)
	arr.Set(1, 0, 40)
	arr.Set(1, 1, 50)
	arr.Set(1, 2, 60)
	attr := &scene.Attribute{Name: "color", Array: arr}

	idx, err := w.processAccessor(attr, 0, 2, targetArrayBuffer)
	if err != nil {
		t.Fatalf("processAccessor: %v", err)
	}
	acc := w.doc.Accessors[*idx]
	bv := w.doc.BufferViews[*acc.BufferView]
	if bv.ByteStride != 4 {
		t.Fatalf("ByteStride = %d, want 4", bv.ByteStride)
	}
	if bv.ByteLength != 8 {
		t.Fatalf("ByteLength = %d, want 8 (2 elements at the padded 4-byte stride)", bv.ByteLength)
	}
	data := w.binBuffer[bv.ByteOffset : bv.ByteOffset+bv.ByteLength]
	// second element must start at byteStride (4), not elemStride (3).
	if data[4] != 40 || data[5] != 50 || data[6] != 60 {
		t.Fatalf("second element bytes = %v, want [40 50 60] at offset 4", data[4:7])
	}
}

func TestProcessAccessorZeroCountReturnsNil(t *testing.T) {
	w := NewWriter(nil, nil)
	w.doc = &gltf.Document{}
	attr := &scene.Attribute{Name: "position", Array: scene.NewFloat32Array(3, 0)}
	idx, err := w.processAccessor(attr, 0, 0, targetArrayBuffer)
	if err != nil {
		t.Fatalf("processAccessor: %v", err)
	}
	if idx != nil {
		t.Fatalf("expected nil index for zero count, got %v", *idx)
	}
}
