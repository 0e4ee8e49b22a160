// Package table implements a compact binary format for storing power-series
// coefficient tables.
//
// A table is a fixed little-endian header followed by the coefficient payload
// (raw IEEE 754 float64 values, optionally compressed). The header carries a
// magic number, a format version, the compression type, the coefficient
// count, and an xxHash64 checksum of the payload, so corrupted or foreign
// data is rejected before any value is decoded.
//
// # Layout
//
//	offset 0-3   magic "PWSR"
//	offset 4     format version (currently 1)
//	offset 5     compression type
//	offset 6-7   reserved, must be zero
//	offset 8-11  coefficient count (uint32)
//	offset 12-19 xxHash64 checksum of the payload
//	offset 20-   payload
//
// # Compression
//
// Four compression types are supported: None, Zstd, S2, and LZ4. Zstd gives
// the best ratio, S2 balances ratio and speed, LZ4 decompresses fastest, and
// None stores the raw payload. Coefficient tables are usually small, so None
// is the default.
//
// # Usage
//
//	data, err := table.Encode(coeffs, table.WithCompression(table.CompressionZstd))
//	...
//	coeffs, err := table.Decode(data)
//
// The core evaluator in package series never persists anything; tables exist
// for tooling that wants to ship precomputed coefficient sets around.
package table
