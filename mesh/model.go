package mesh

import "iter"

// Model owns the records of one mesh description in file order. It is built
// by a Parser and read-only afterwards.
type Model struct {
	vertices  []Vertex
	texCoords []TextureCoordinate
	normals   []Normal
	faces     []Face
}

func (m *Model) add(r Record) {
	switch r := r.(type) {
	case Vertex:
		m.vertices = append(m.vertices, r)
	case TextureCoordinate:
		m.texCoords = append(m.texCoords, r)
	case Normal:
		m.normals = append(m.normals, r)
	case Face:
		m.faces = append(m.faces, r)
	}
}

// Faces returns the faces in file order. The sequence can be ranged over
// any number of times.
func (m *Model) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		if m == nil {
			return
		}
		for _, f := range m.faces {
			if !yield(f) {
				return
			}
		}
	}
}

// Face returns the i-th face (0-based).
func (m *Model) Face(i int) (Face, bool) { return lookup(m.faceSlice(), i) }

// Vertex returns the i-th vertex (0-based). Face indices are 1-based.
func (m *Model) Vertex(i int) (Vertex, bool) { return lookup(m.vertexSlice(), i) }

// TexCoord returns the i-th texture coordinate (0-based).
func (m *Model) TexCoord(i int) (TextureCoordinate, bool) { return lookup(m.texCoordSlice(), i) }

// Normal returns the i-th normal (0-based).
func (m *Model) Normal(i int) (Normal, bool) { return lookup(m.normalSlice(), i) }

func (m *Model) NumVertices() int  { return len(m.vertexSlice()) }
func (m *Model) NumTexCoords() int { return len(m.texCoordSlice()) }
func (m *Model) NumNormals() int   { return len(m.normalSlice()) }
func (m *Model) NumFaces() int     { return len(m.faceSlice()) }

func (m *Model) vertexSlice() []Vertex {
	if m == nil {
		return nil
	}
	return m.vertices
}

func (m *Model) texCoordSlice() []TextureCoordinate {
	if m == nil {
		return nil
	}
	return m.texCoords
}

func (m *Model) normalSlice() []Normal {
	if m == nil {
		return nil
	}
	return m.normals
}

func (m *Model) faceSlice() []Face {
	if m == nil {
		return nil
	}
	return m.faces
}

func lookup[T any](s []T, i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}
