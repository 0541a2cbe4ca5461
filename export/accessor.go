package export

import (
	"encoding/binary"
	"math"

	"github.com/binzume/gltfwriter/scene"
	"github.com/qmuntal/gltf"
)

func componentSize(k scene.ComponentKind) int {
	switch k {
	case scene.Int8, scene.Uint8:
		return 1
	case scene.Int16, scene.Uint16:
		return 2
	default:
		return 4
	}
}

func gltfComponentType(k scene.ComponentKind) gltf.ComponentType {
	switch k {
	case scene.Int8:
		return gltf.ComponentByte
	case scene.Uint8:
		return gltf.ComponentUbyte
	case scene.Int16:
		return gltf.ComponentShort
	case scene.Uint16:
		return gltf.ComponentUshort
	case scene.Uint32:
		return gltf.ComponentUint
	default:
		return gltf.ComponentFloat
	}
}

func gltfAccessorType(itemSize int) (gltf.AccessorType, error) {
	switch itemSize {
	case 1:
		return gltf.AccessorScalar, nil
	case 2:
		return gltf.AccessorVec2, nil
	case 3:
		return gltf.AccessorVec3, nil
	case 4:
		return gltf.AccessorVec4, nil
	case 9:
		return gltf.AccessorMat3, nil
	case 16:
		return gltf.AccessorMat4, nil
	default:
		return 0, &UnsupportedInputError{Reason: "item size > 4 without a MAT3/MAT4 mapping"}
	}
}

// lcm4 returns the least common multiple of n and 4.
func lcm4(n int) int {
	if n <= 0 {
		return 4
	}
	g := n
	h := 4
	for h != 0 {
		g, h = h, g%h
	}
	gcd := g
	return n * 4 / gcd
}

// normalizeComponent maps a logical value into the target component's
// fixed-point range when Normalized is set, per spec.md §4.2.
func normalizeComponent(v float64, k scene.ComponentKind) float64 {
	switch k {
	case scene.Uint8:
		return math.Round(v * 255)
	case scene.Int8:
		return math.Round(v * 127)
	case scene.Uint16:
		return math.Round(v * 65535)
	case scene.Int16:
		return math.Round(v * 32767)
	default:
		return v
	}
}

func writeComponent(buf []byte, off int, v float64, k scene.ComponentKind) {
	switch k {
	case scene.Int8:
		buf[off] = byte(int8(v))
	case scene.Uint8:
		buf[off] = byte(uint8(v))
	case scene.Int16:
		binary.LittleEndian.PutUint16(buf[off:], uint16(int16(v)))
	case scene.Uint16:
		binary.LittleEndian.PutUint16(buf[off:], uint16(v))
	case scene.Uint32:
		binary.LittleEndian.PutUint32(buf[off:], uint32(v))
	default:
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(v)))
	}
}

// accessorTarget selects the bufferView target usage.
type accessorTarget int

const (
	targetNone accessorTarget = iota
	targetArrayBuffer
	targetElementArrayBuffer
)

// processAccessor writes attr[start:start+count) into the document's
// single binary buffer and returns the new accessor's index, or nil if
// count is 0. See spec.md §4.2.
func (w *Writer) processAccessor(attr *scene.Attribute, start, count int, target accessorTarget) (*uint32, error) {
	if count == 0 {
		return nil, nil
	}
	itemSize := attr.ItemSize()
	if itemSize > 4 && itemSize != 9 && itemSize != 16 {
		return nil, &UnsupportedInputError{Reason: "item size > 4 with interleaved storage"}
	}
	accType, err := gltfAccessorType(itemSize)
	if err != nil {
		return nil, err
	}
	kind := attr.Array.Kind()
	compSize := componentSize(kind)

	min := make([]float64, itemSize)
	max := make([]float64, itemSize)
	for c := 0; c < itemSize; c++ {
		min[c] = math.MaxFloat64
		max[c] = -math.MaxFloat64
	}

	elemStride := itemSize * compSize
	writeStride := elemStride
	if target == targetArrayBuffer {
		// Each element must land on its declared byteStride, not just
		// packed tightly, or the accessor's stride disagrees with the
		// actual element spacing for any sub-4-byte-aligned attribute
		// (e.g. a uint8/uint16 VEC3 such as a packed COLOR_0).
		writeStride = padToMultiple(elemStride, 4)
	}
	byteLength := count * writeStride

	paddedLength := padTo4(byteLength)
	bvIndex := w.newBufferView(target, paddedLength, writeStride)
	data := make([]byte, paddedLength)
	for i := 0; i < count; i++ {
		srcI := start + i
		for c := 0; c < itemSize; c++ {
			v := attr.Array.At(srcI, c)
			if !attr.IsIndex {
				if v < min[c] {
					min[c] = v
				}
				if v > max[c] {
					max[c] = v
				}
			}
			out := v
			if attr.Normalized {
				out = normalizeComponent(v, kind)
			}
			writeComponent(data, i*writeStride+c*compSize, out, kind)
		}
	}
	w.appendBufferViewData(bvIndex, data)

	acc := &gltf.Accessor{
		BufferView:    gltf.Index(bvIndex),
		ComponentType: gltfComponentType(kind),
		Type:          accType,
		Count:         uint32(count),
		Normalized:    attr.Normalized,
	}
	if !attr.IsIndex {
		acc.Min = make([]float32, len(min))
		acc.Max = make([]float32, len(max))
		for c := range min {
			acc.Min[c] = float32(min[c])
			acc.Max[c] = float32(max[c])
		}
	}
	w.doc.Accessors = append(w.doc.Accessors, acc)
	return gltf.Index(uint32(len(w.doc.Accessors) - 1)), nil
}

// newBufferView reserves a bufferView; its byte range is appended by
// appendBufferViewData once the caller has the encoded bytes in hand.
// byteStride follows spec.md §4.2: only emitted for ARRAY_BUFFER
// targets, and must equal the actual per-element spacing the caller
// used when packing its data (padded to a multiple of 4); offsets into
// the shared buffer are always kept 4-byte aligned (and to
// lcm(stride,4) for vertex buffers) by padding the buffer before this
// view begins.
func (w *Writer) newBufferView(target accessorTarget, byteLength, stride int) uint32 {
	align := 4
	if target == targetArrayBuffer {
		align = lcm4(stride)
	}
	w.padBufferTo(align)

	bv := &gltf.BufferView{
		Buffer:     0,
		ByteOffset: uint32(len(w.binBuffer)),
		ByteLength: uint32(byteLength),
	}
	switch target {
	case targetArrayBuffer:
		bv.Target = gltf.TargetArrayBuffer
		bv.ByteStride = uint32(stride)
	case targetElementArrayBuffer:
		bv.Target = gltf.TargetElementArrayBuffer
	}
	w.doc.BufferViews = append(w.doc.BufferViews, bv)
	return uint32(len(w.doc.BufferViews) - 1)
}

func (w *Writer) padBufferTo(align int) {
	for len(w.binBuffer)%align != 0 {
		w.binBuffer = append(w.binBuffer, 0)
	}
}

func (w *Writer) appendBufferViewData(bvIndex uint32, data []byte) {
	// data is already padded to a multiple of 4 by the caller.
	w.binBuffer = append(w.binBuffer, data...)
}
