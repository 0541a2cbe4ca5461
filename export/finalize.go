package export

import (
	"bytes"
	"encoding/base64"

	"github.com/qmuntal/gltf"
)

// finalize attaches the accumulated binary buffer and extension
// bookkeeping to the document, then encodes it per Options.Binary.
// GLB output keeps the buffer's raw Data and lets gltf.Encoder frame
// the binary chunk. JSON output has no binary chunk to carry the
// buffer in, so the buffer is embedded as a base64 data: URI instead —
// Buffer.Data is json:"-" and the caller serializes the document with
// encoding/json directly (see cmd/gltfwriter/main.go), so Data alone
// would be silently dropped.
func (w *Writer) finalize() (*Result, error) {
	if len(w.binBuffer) > 0 {
		buf := &gltf.Buffer{ByteLength: uint32(len(w.binBuffer))}
		if w.options.Binary {
			buf.Data = w.binBuffer
		} else {
			buf.URI = "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(w.binBuffer)
		}
		w.doc.Buffers = append(w.doc.Buffers, buf)
	}

	w.doc.ExtensionsUsed = w.extensionsUsedOrder
	w.doc.ExtensionsRequired = w.extensionsRequiredOrder

	if !w.options.Binary {
		return &Result{JSON: w.doc}, nil
	}

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(w.doc); err != nil {
		return nil, err
	}
	return &Result{Binary: buf.Bytes()}, nil
}
