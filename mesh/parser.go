package mesh

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"tinyrender/internal/logging"
)

// maxLineBytes bounds a single line of input.
const maxLineBytes = 1 << 20

// Parser turns mesh descriptions into Models.
type Parser struct {
	patterns *Patterns
	log      *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sends malformed-line reports to l. By default they are dropped;
// they are always returned as Diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// NewParser returns a parser that decodes with patterns.
func NewParser(patterns *Patterns, opts ...Option) *Parser {
	p := &Parser{patterns: patterns, log: logging.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads r to the end. Malformed lines never stop parsing; only a read
// error is returned.
func (p *Parser) Parse(r io.Reader) (*Model, []Diagnostic, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		m     Model
		diags []Diagnostic
		n     int
	)
	for sc.Scan() {
		n++
		if d, ok := p.parseLine(&m, n, sc.Text()); ok {
			diags = append(diags, d)
		}
	}
	if err := sc.Err(); err != nil {
		return &m, diags, fmt.Errorf("mesh: read line %d: %w", n+1, err)
	}
	p.log.Debug("mesh parsed",
		"vertices", m.NumVertices(),
		"texcoords", m.NumTexCoords(),
		"normals", m.NumNormals(),
		"faces", m.NumFaces(),
		"malformed", len(diags))
	return &m, diags, nil
}

// ParseLines parses already split lines.
func (p *Parser) ParseLines(lines []string) (*Model, []Diagnostic) {
	var (
		m     Model
		diags []Diagnostic
	)
	for i, line := range lines {
		if d, ok := p.parseLine(&m, i+1, line); ok {
			diags = append(diags, d)
		}
	}
	return &m, diags
}

// parseLine appends the record of line to m. It reports a Diagnostic when
// the line had to be replaced by a zero record.
func (p *Parser) parseLine(m *Model, n int, line string) (Diagnostic, bool) {
	line = strings.TrimSuffix(line, "\r")
	rec, ok, err := p.patterns.Decode(line)
	if !ok {
		return Diagnostic{}, false
	}
	m.add(rec)
	if err == nil {
		return Diagnostic{}, false
	}
	d := Diagnostic{Line: n, Kind: rec.Kind(), Text: line, Err: err}
	p.log.Warn("malformed record", "line", n, "kind", d.Kind.String(), "text", line, "err", err)
	return d, true
}

// Load parses the file at path. A file that cannot be opened or read is an
// error; malformed lines are not.
func Load(path string, p *Parser) (*Model, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mesh: %w", err)
	}
	defer f.Close()

	m, diags, err := p.Parse(f)
	if err != nil {
		return nil, diags, fmt.Errorf("%s: %w", path, err)
	}
	return m, diags, nil
}
