package gox

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"strings"
)

// magic identifies a .gox file.
const magic = "GOX "

// Decode decodes a complete .gox file using the default [Decoder], which
// matches the reference decoder: declared chunk sizes and trailing checksum
// fields are consumed but not validated.
func Decode(data []byte) (*Document, error) {
	return dec.Decode(data)
}

// The default Decoder instance.
var dec = NewDecoder()

// Decoder decodes .gox files. A Decoder holds no decode state; the same
// instance can decode any number of buffers, concurrently if desired.
type Decoder struct {
	strictSizes     bool
	verifyChecksums bool
}

// NewDecoder returns a Decoder with the reference behavior: size and
// checksum fields are informational only.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// StrictSizes returns a Decoder that requires every chunk body to consume
// exactly the byte count declared in the chunk's size field. Decoding fails
// with [ErrSizeMismatch] otherwise.
func (d *Decoder) StrictSizes() *Decoder {
	if d.strictSizes {
		return d
	}

	return &Decoder{strictSizes: true, verifyChecksums: d.verifyChecksums}
}

// VerifyChecksums returns a Decoder that compares the trailing field of
// every chunk against the CRC-32 (IEEE) of the chunk body and fails with
// [ErrChecksum] on mismatch. A stored zero means the writer did not checksum
// the chunk and is accepted as-is.
func (d *Decoder) VerifyChecksums() *Decoder {
	if d.verifyChecksums {
		return d
	}

	return &Decoder{strictSizes: d.strictSizes, verifyChecksums: true}
}

// Decode decodes a complete .gox file from data.
//
// Decoding stops without error at the first position where no known chunk
// tag matches; whatever is left over ends up in [Document.Rest]. A file with
// zero chunks is valid. A chunk body that fails to decode after its tag
// matched is a hard error.
func (d *Decoder) Decode(data []byte) (*Document, error) {
	r := NewReader(data)

	if !r.Literal(magic) {
		return nil, ErrBadMagic
	}

	version, err := r.Int32()
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}

	doc := &Document{Version: version}

	for {
		chunk, err := d.decodeChunk(r)
		if err != nil {
			return nil, err
		}

		if chunk == nil {
			break
		}

		doc.Chunks = append(doc.Chunks, chunk)
	}

	doc.Rest = r.Rest()
	return doc, nil
}

// A bodyFunc decodes one chunk body. size is the value of the chunk's
// declared size field, already consumed by the envelope.
type bodyFunc func(d *Decoder, r *Reader, size uint32) (Chunk, error)

// chunkKinds lists the known chunk kinds in the order they are tried.
// The first tag match wins; a chunk never recovers from another kind's
// partial read because tags are matched before anything else is consumed.
var chunkKinds = []struct {
	tag  string
	body bodyFunc
}{
	{TagImage, (*Decoder).imageBody},
	{TagPreview, (*Decoder).previewBody},
	{TagBlockPalette, (*Decoder).blockPaletteBody},
	{TagLayer, (*Decoder).layerBody},
	{TagCamera, (*Decoder).cameraBody},
	{TagLight, (*Decoder).lightBody},
}

// decodeChunk decodes one chunk, trying each known kind in order. It returns
// a nil Chunk if no tag matches at the current position (or the input is
// exhausted), which terminates the chunk loop.
func (d *Decoder) decodeChunk(r *Reader) (Chunk, error) {
	for _, kind := range chunkKinds {
		if !r.Literal(kind.tag) {
			continue
		}

		chunk, err := d.decodeEnvelope(r, kind.body)
		if err != nil {
			return nil, fmt.Errorf("decode %q chunk: %w", kind.tag, err)
		}

		return chunk, nil
	}

	return nil, nil
}

// decodeEnvelope decodes the framing shared by all chunk kinds: the declared
// size field, the body and the trailing checksum field. The tag has already
// been consumed.
func (d *Decoder) decodeEnvelope(r *Reader, body bodyFunc) (Chunk, error) {
	size, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("read size: %w", err)
	}

	start := r.Offset()

	chunk, err := body(d, r, size)
	if err != nil {
		return nil, err
	}

	consumed := r.Offset() - start
	if d.strictSizes && consumed != int(size) {
		return nil, fmt.Errorf("declared %d body bytes, consumed %d: %w", size, consumed, ErrSizeMismatch)
	}

	crc, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("read checksum: %w", err)
	}

	if d.verifyChecksums && crc != 0 {
		if sum := crc32.ChecksumIEEE(r.buf[start : start+consumed]); sum != crc {
			return nil, fmt.Errorf("stored %#08x, computed %#08x: %w", crc, sum, ErrChecksum)
		}
	}

	return chunk, nil
}

func (d *Decoder) imageBody(r *Reader, _ uint32) (Chunk, error) {
	dict, err := d.decodeDict(r)
	if err != nil {
		return nil, err
	}

	return Image{Dict: dict}, nil
}

// previewBody reads the preview picture bytes. The declared size field
// doubles as the blob length here, as in the reference decoder.
func (d *Decoder) previewBody(r *Reader, size uint32) (Chunk, error) {
	data, err := r.Bytes(int(size))
	if err != nil {
		return nil, err
	}

	return Preview{Data: bytes.Clone(data)}, nil
}

// blockPaletteBody reads one palette block's voxel payload. Like previewBody,
// the declared size field is the blob length.
func (d *Decoder) blockPaletteBody(r *Reader, size uint32) (Chunk, error) {
	data, err := r.Bytes(int(size))
	if err != nil {
		return nil, err
	}

	return BlockPalette{Data: bytes.Clone(data)}, nil
}

func (d *Decoder) layerBody(r *Reader, _ uint32) (Chunk, error) {
	count, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("read block count: %w", err)
	}

	var blocks []Block
	for idx := uint32(0); idx < count; idx++ {
		block, err := d.decodeBlock(r)
		if err != nil {
			return nil, fmt.Errorf("read block %d of %d: %w", idx, count, err)
		}

		blocks = append(blocks, block)
	}

	dict, err := d.decodeDict(r)
	if err != nil {
		return nil, err
	}

	return Layer{Blocks: blocks, Dict: dict}, nil
}

func (d *Decoder) cameraBody(r *Reader, _ uint32) (Chunk, error) {
	dict, err := d.decodeDict(r)
	if err != nil {
		return nil, err
	}

	return Camera{Dict: dict}, nil
}

func (d *Decoder) lightBody(r *Reader, _ uint32) (Chunk, error) {
	dict, err := d.decodeDict(r)
	if err != nil {
		return nil, err
	}

	return Light{Dict: dict}, nil
}

// decodeBlock reads one placed-block record: index, x, y, z and a reserved
// fifth field that is read and discarded.
func (d *Decoder) decodeBlock(r *Reader) (Block, error) {
	var fields [5]int32
	for idx := range fields {
		value, err := r.Int32()
		if err != nil {
			return Block{}, err
		}

		fields[idx] = value
	}

	return Block{Index: fields[0], X: fields[1], Y: fields[2], Z: fields[3]}, nil
}

// decodeDict reads dictionary entries until the next entry attempt fails.
// A failed attempt is not an error, it is the end-of-dictionary sentinel;
// the bytes that caused it stay unconsumed for the caller, which normally
// reads them as the chunk's trailing checksum field. A dictionary with zero
// entries cannot be represented, so the very first attempt must succeed.
func (d *Decoder) decodeDict(r *Reader) (Dict, error) {
	dict := Dict{}

	for {
		key, value, ok := d.decodeEntry(r)
		if !ok {
			break
		}

		dict[key] = value
	}

	if len(dict) == 0 {
		return nil, ErrEmptyDict
	}

	return dict, nil
}

// decodeEntry attempts to read one (key, value) entry. A zero key length or
// running out of input at any of the four fields reports ok=false with the
// cursor rewound to where the attempt started. Invalid UTF-8 in the key is
// replaced, not rejected.
func (d *Decoder) decodeEntry(r *Reader) (key string, value []byte, ok bool) {
	start := r.Offset()

	keyLen, err := r.Uint32()
	if err != nil || keyLen == 0 {
		r.seek(start)
		return "", nil, false
	}

	keyBytes, err := r.Bytes(int(keyLen))
	if err != nil {
		r.seek(start)
		return "", nil, false
	}

	valueLen, err := r.Uint32()
	if err != nil {
		r.seek(start)
		return "", nil, false
	}

	valueBytes, err := r.Bytes(int(valueLen))
	if err != nil {
		r.seek(start)
		return "", nil, false
	}

	return strings.ToValidUTF8(string(keyBytes), "�"), bytes.Clone(valueBytes), true
}
