package table

import (
	"fmt"

	"github.com/arloliu/powser/errs"
)

// Compressor compresses a table payload. The returned slice is newly
// allocated and owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor. It
// returns an error when the data is corrupted or was compressed with an
// incompatible algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
