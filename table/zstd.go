package table

// ZstdCodec compresses payloads with Zstandard. Best compression ratio of
// the supported algorithms; the right choice for large archived tables.
//
// Two implementations exist behind build tags: the cgo build uses
// valyala/gozstd (libzstd bindings), the pure-Go build uses
// klauspost/compress/zstd. Their outputs are interchangeable.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
