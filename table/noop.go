package table

// NoOpCodec passes payloads through unchanged. It is the default for
// coefficient tables, which are usually too small to benefit from
// compression.
//
// Both methods return the input slice as-is without copying, so callers must
// not modify the input while the result is in use.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data unchanged.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
