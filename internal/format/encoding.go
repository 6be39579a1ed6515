package format

import "encoding/binary"

// Binary encoding utilities for little-endian integers.
//
// Implementation: encoding/binary.LittleEndian. The standard library
// versions inline well under modern compilers, so no unsafe variants are
// provided.

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int64, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutI64 writes an int64 value to the buffer at the specified offset in little-endian format.
func PutI64(b []byte, off int64, v int64) {
	binary.LittleEndian.PutUint64(b[off:off+8], uint64(v))
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int64) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// ReadI64 reads an int64 value from the buffer at the specified offset in little-endian format.
func ReadI64(b []byte, off int64) int64 {
	return int64(binary.LittleEndian.Uint64(b[off : off+8]))
}
