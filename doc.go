// Package gox decodes the chunk-based binary file format written by the
// goxel voxel editor into an in-memory [Document]: a format version followed
// by an ordered sequence of typed chunks (image metadata, preview image,
// voxel block payloads, layers, camera and light settings).
//
// The decoder is purely structural. It frames chunks, splits dictionaries
// into (key, value) pairs and reads block placement records, but leaves all
// payload bytes (preview data, voxel block data, dictionary values) opaque.
// Decoding operates on a caller-supplied byte buffer, performs no I/O and
// keeps no state between invocations; distinct buffers can be decoded
// concurrently.
//
// [Decode] reproduces the behavior of the reference decoder exactly: declared
// chunk sizes and trailing checksum fields are consumed but not acted upon.
// A [Decoder] configured with [Decoder.StrictSizes] or
// [Decoder.VerifyChecksums] turns either field into a hard constraint.
package gox
