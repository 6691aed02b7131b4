package vegalite

import (
	"bytes"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// bufferPool reuses serialization buffers across charts.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 1024*1024 { // Don't pool very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Marshal serializes a specification to compact JSON.
func Marshal(s *Spec) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := Encode(buf, s); err != nil {
		return nil, err
	}

	data := bytes.TrimRight(buf.Bytes(), "\n")
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// MarshalIndent serializes a specification with two-space indentation.
func MarshalIndent(s *Spec) ([]byte, error) {
	return gojson.MarshalIndent(s, "", "  ")
}

// Encode streams a specification to w. Field names and color strings never
// need HTML escaping, so it is disabled.
func Encode(w io.Writer, s *Spec) error {
	enc := gojson.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(s)
}
