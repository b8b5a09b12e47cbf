package gox

// Chunk tags as they appear on the wire.
const (
	TagImage        = "IMG "
	TagPreview      = "PREV"
	TagBlockPalette = "BL16"
	TagLayer        = "LAYR"
	TagCamera       = "CAMR"
	TagLight        = "LIGH"
)

// Document is the result of decoding a .gox file. It owns its chunks and is
// not modified after [Decoder.Decode] returns.
type Document struct {
	Version int32
	Chunks  []Chunk

	// Rest holds the input left over after the last recognized chunk.
	// Trailing bytes are not a decode error; they are kept for diagnostics.
	Rest []byte
}

// Chunk is one tagged section of a .gox file. The set of implementations is
// closed: [Image], [Preview], [BlockPalette], [Layer], [Camera] and [Light].
type Chunk interface {
	// Tag returns the chunk's 4-byte ASCII tag as it appears on the wire.
	Tag() string

	chunk()
}

// Dict maps UTF-8 string keys to opaque value bytes. Keys are unique;
// decoding a duplicate key keeps the last value.
type Dict map[string][]byte

// Block places one entry of the voxel block palette at an integer grid
// position within a layer.
type Block struct {
	Index int32
	X     int32
	Y     int32
	Z     int32
}

// Image carries the document-wide metadata dictionary.
type Image struct {
	Dict Dict
}

// Preview carries the raw bytes of the embedded preview picture.
type Preview struct {
	Data []byte
}

// BlockPalette carries the raw voxel payload of one palette block. Layers
// reference palette blocks by their position in the chunk sequence.
type BlockPalette struct {
	Data []byte
}

// Layer carries the blocks placed on one layer and the layer's metadata
// dictionary.
type Layer struct {
	Blocks []Block
	Dict   Dict
}

// Camera carries one camera's settings dictionary.
type Camera struct {
	Dict Dict
}

// Light carries the light settings dictionary.
type Light struct {
	Dict Dict
}

var _ Chunk = Image{}
var _ Chunk = Preview{}
var _ Chunk = BlockPalette{}
var _ Chunk = Layer{}
var _ Chunk = Camera{}
var _ Chunk = Light{}

func (Image) Tag() string        { return TagImage }
func (Preview) Tag() string      { return TagPreview }
func (BlockPalette) Tag() string { return TagBlockPalette }
func (Layer) Tag() string        { return TagLayer }
func (Camera) Tag() string       { return TagCamera }
func (Light) Tag() string        { return TagLight }

func (Image) chunk()        {}
func (Preview) chunk()      {}
func (BlockPalette) chunk() {}
func (Layer) chunk()        {}
func (Camera) chunk()       {}
func (Light) chunk()        {}
