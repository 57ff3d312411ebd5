package mesh

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// number matches an optionally signed decimal with optional fraction and
// exponent ("-1", "0.5", ".5", "1.", "6.1e-05").
const number = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

// corner matches one face corner: p, p/t, p//n or p/t/n.
func corner(i int) string {
	return fmt.Sprintf(`(?P<p%[1]d>\d+)(?:/(?P<t%[1]d>\d*)(?:/(?P<n%[1]d>\d*))?)?`, i)
}

var (
	vertexPattern   = `^v\s+(?P<x>` + number + `)\s+(?P<y>` + number + `)\s+(?P<z>` + number + `)(?:\s|$)`
	normalPattern   = `^vn\s+(?P<x>` + number + `)\s+(?P<y>` + number + `)\s+(?P<z>` + number + `)(?:\s|$)`
	texCoordPattern = `^vt\s+(?P<u>` + number + `)(?:\s+(?P<v>` + number + `))?(?:\s+(?P<w>` + number + `))?(?:\s|$)`
	facePattern     = `^f\s+` + corner(0) + `\s+` + corner(1) + `\s+` + corner(2) + `(?:\s|$)`
)

// Patterns holds the compiled record patterns. Build it once with
// NewPatterns and share it; a Patterns is safe for concurrent use.
type Patterns struct {
	vertex   *regexp.Regexp
	texCoord *regexp.Regexp
	normal   *regexp.Regexp
	face     *regexp.Regexp
}

// NewPatterns compiles the record patterns.
func NewPatterns() (*Patterns, error) {
	var p Patterns
	for _, c := range []struct {
		dst  **regexp.Regexp
		kind Kind
		expr string
	}{
		{&p.vertex, KindVertex, vertexPattern},
		{&p.texCoord, KindTexCoord, texCoordPattern},
		{&p.normal, KindNormal, normalPattern},
		{&p.face, KindFace, facePattern},
	} {
		re, err := regexp.Compile(c.expr)
		if err != nil {
			return nil, fmt.Errorf("mesh: compile %s pattern: %w", c.kind, err)
		}
		*c.dst = re
	}
	return &p, nil
}

// MustPatterns is like NewPatterns but panics on error.
func MustPatterns() *Patterns {
	p, err := NewPatterns()
	if err != nil {
		panic(err)
	}
	return p
}

type decoder struct {
	kind   Kind
	decode func(p *Patterns, line string) (Record, error)
}

// decoders is keyed by descriptor token.
var decoders = map[string]decoder{
	KindVertex.Descriptor():   {KindVertex, decodeVertex},
	KindTexCoord.Descriptor(): {KindTexCoord, decodeTexCoord},
	KindNormal.Descriptor():   {KindNormal, decodeNormal},
	KindFace.Descriptor():     {KindFace, decodeFace},
}

// Descriptor returns the token before the first space of line.
func Descriptor(line string) string {
	d, _, _ := strings.Cut(line, " ")
	return d
}

// Decode decodes one line.
//
// ok is false when the descriptor is not a record kind; such lines carry no
// data and should be skipped. When err is non-nil, rec is the zero record of
// the line's kind.
func (p *Patterns) Decode(line string) (rec Record, ok bool, err error) {
	d, found := decoders[Descriptor(line)]
	if !found {
		return nil, false, nil
	}
	rec, err = d.decode(p, line)
	if err != nil {
		return zeroRecord(d.kind), true, err
	}
	return rec, true, nil
}

// captures returns the named groups of re in line, or nil when re does not
// match.
func captures(re *regexp.Regexp, line string) map[string]string {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out
}

type fieldParser struct {
	kind Kind
	line string
	err  error
}

// float parses s as float32. An empty optional field yields 0.
func (fp *fieldParser) float(s string, optional bool) float32 {
	if fp.err != nil {
		return 0
	}
	if s == "" && optional {
		return 0
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		fp.err = &DecodeError{Kind: fp.kind, Text: fp.line, Err: err}
		return 0
	}
	return float32(v)
}

// index parses s as a 1-based index. An empty field yields 0.
func (fp *fieldParser) index(s string) uint32 {
	if fp.err != nil || s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		fp.err = &DecodeError{Kind: fp.kind, Text: fp.line, Err: err}
		return 0
	}
	return uint32(v)
}

func decodeXYZ(re *regexp.Regexp, kind Kind, line string) (x, y, z float32, err error) {
	c := captures(re, line)
	if c == nil {
		return 0, 0, 0, &DecodeError{Kind: kind, Text: line}
	}
	fp := fieldParser{kind: kind, line: line}
	x = fp.float(c["x"], false)
	y = fp.float(c["y"], false)
	z = fp.float(c["z"], false)
	return x, y, z, fp.err
}

func decodeVertex(p *Patterns, line string) (Record, error) {
	x, y, z, err := decodeXYZ(p.vertex, KindVertex, line)
	if err != nil {
		return nil, err
	}
	return Vertex{X: x, Y: y, Z: z}, nil
}

func decodeNormal(p *Patterns, line string) (Record, error) {
	x, y, z, err := decodeXYZ(p.normal, KindNormal, line)
	if err != nil {
		return nil, err
	}
	return Normal{X: x, Y: y, Z: z}, nil
}

func decodeTexCoord(p *Patterns, line string) (Record, error) {
	c := captures(p.texCoord, line)
	if c == nil {
		return nil, &DecodeError{Kind: KindTexCoord, Text: line}
	}
	fp := fieldParser{kind: KindTexCoord, line: line}
	tc := TextureCoordinate{
		U: fp.float(c["u"], false),
		V: fp.float(c["v"], true),
		W: fp.float(c["w"], true),
	}
	if fp.err != nil {
		return nil, fp.err
	}
	return tc, nil
}

func decodeFace(p *Patterns, line string) (Record, error) {
	c := captures(p.face, line)
	if c == nil {
		return nil, &DecodeError{Kind: KindFace, Text: line}
	}
	fp := fieldParser{kind: KindFace, line: line}
	var f Face
	for i := range 3 {
		f.Point[i] = fp.index(c[fmt.Sprintf("p%d", i)])
		f.Tex[i] = fp.index(c[fmt.Sprintf("t%d", i)])
		f.Norm[i] = fp.index(c[fmt.Sprintf("n%d", i)])
	}
	if fp.err != nil {
		return nil, fp.err
	}
	return f, nil
}
