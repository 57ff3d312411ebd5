package mesh

import "fmt"

// Kind identifies a record kind.
type Kind uint8

const (
	KindVertex Kind = iota + 1
	KindTexCoord
	KindNormal
	KindFace
)

// Descriptor returns the leading token that selects the kind.
func (k Kind) Descriptor() string {
	switch k {
	case KindVertex:
		return "v"
	case KindTexCoord:
		return "vt"
	case KindNormal:
		return "vn"
	case KindFace:
		return "f"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindTexCoord:
		return "texcoord"
	case KindNormal:
		return "normal"
	case KindFace:
		return "face"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Record is one decoded line. The set of implementations is closed.
type Record interface {
	Kind() Kind
}

// Vertex is an object-space position.
type Vertex struct {
	X, Y, Z float32
}

// TextureCoordinate is a (u, v, w) texture position; v and w default to 0.
type TextureCoordinate struct {
	U, V, W float32
}

// Normal is a vertex normal.
type Normal struct {
	X, Y, Z float32
}

// Face is a triangle. Each array holds one 1-based index per corner; 0 means
// the index was not given.
type Face struct {
	Point [3]uint32
	Tex   [3]uint32
	Norm  [3]uint32
}

func (Vertex) Kind() Kind            { return KindVertex }
func (TextureCoordinate) Kind() Kind { return KindTexCoord }
func (Normal) Kind() Kind            { return KindNormal }
func (Face) Kind() Kind              { return KindFace }

// zeroRecord returns the substitute used for a malformed line of kind k.
func zeroRecord(k Kind) Record {
	switch k {
	case KindVertex:
		return Vertex{}
	case KindTexCoord:
		return TextureCoordinate{}
	case KindNormal:
		return Normal{}
	case KindFace:
		return Face{}
	default:
		return nil
	}
}
