package table

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/powser/errs"
	"github.com/arloliu/powser/internal/options"
)

const (
	// Version is the table format version written by this package.
	Version = 1

	// HeaderSize is the size of the fixed table header in bytes.
	HeaderSize = 20
)

// magic identifies coefficient table data.
var magic = [4]byte{'P', 'W', 'S', 'R'}

type encodeConfig struct {
	compression CompressionType
}

// Option is a functional option for Encode.
type Option = options.Option[*encodeConfig]

// WithCompression selects the payload compression. The default is
// CompressionNone.
func WithCompression(compression CompressionType) Option {
	return options.New(func(cfg *encodeConfig) error {
		if _, err := GetCodec(compression); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// Encode serializes a coefficient slice into the table format.
//
// Parameters:
//   - coeffs: The coefficients, in index order; may be empty
//   - opts: Optional configuration (see WithCompression)
//
// Returns:
//   - []byte: The encoded table, header included
//   - error: An option validation or compression error
func Encode(coeffs []float64, opts ...Option) ([]byte, error) {
	cfg := &encodeConfig{compression: CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(coeffs)*8)
	for _, c := range coeffs {
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(c))
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}

	buf := make([]byte, 0, HeaderSize+len(compressed))
	buf = append(buf, magic[:]...)
	buf = append(buf, Version, byte(cfg.compression), 0, 0)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(coeffs)))
	buf = binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(compressed))
	buf = append(buf, compressed...)

	return buf, nil
}

// Decode deserializes a coefficient table produced by Encode.
//
// The header is validated before any payload work: magic number, format
// version, compression type, and the xxHash64 payload checksum all have to
// match, and the decompressed payload size must agree with the coefficient
// count.
//
// Returns:
//   - []float64: The decoded coefficients
//   - error: errs.ErrInvalidTableSize, errs.ErrInvalidMagic,
//     errs.ErrUnsupportedVersion, errs.ErrInvalidCompression, or
//     errs.ErrChecksumMismatch
func Decode(data []byte) ([]float64, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", errs.ErrInvalidTableSize, len(data), HeaderSize)
	}

	if !bytes.Equal(data[0:4], magic[:]) {
		return nil, errs.ErrInvalidMagic
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	codec, err := GetCodec(CompressionType(data[5]))
	if err != nil {
		return nil, err
	}

	count := binary.LittleEndian.Uint32(data[8:12])
	checksum := binary.LittleEndian.Uint64(data[12:20])

	payload := data[HeaderSize:]
	if xxhash.Sum64(payload) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}

	if len(raw) != int(count)*8 {
		return nil, fmt.Errorf("%w: %d payload bytes for %d coefficients", errs.ErrInvalidTableSize, len(raw), count)
	}

	coeffs := make([]float64, count)
	for i := range coeffs {
		coeffs[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}

	return coeffs, nil
}
