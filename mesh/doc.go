// Package mesh reads the Wavefront OBJ subset used by tinyrender.
//
// Four record kinds are understood: vertices (v), texture coordinates (vt),
// normals (vn) and triangular faces (f). Every other line is skipped. A
// recognized line that does not decode is reported as a Diagnostic and
// replaced by the zero record of its kind, so the positions of later records
// do not move.
//
// Face indices are stored exactly as written, 1-based. Model lookups are
// 0-based; subtracting one is the caller's job.
package mesh
