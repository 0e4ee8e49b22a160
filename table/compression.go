package table

import (
	"fmt"
	"strings"

	"github.com/arloliu/powser/errs"
)

// CompressionType identifies the compression applied to a table payload.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0x1
	// CompressionZstd compresses the payload with Zstandard.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 compresses the payload with S2.
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 compresses the payload with LZ4 block compression.
	CompressionLZ4 CompressionType = 0x4
)

// String returns the string representation of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CompressionFromString returns the CompressionType for a case-insensitive
// name, failing with errs.ErrInvalidCompression for unknown names.
func CompressionFromString(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}
