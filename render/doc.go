// Package render draws a mesh.Model as a wireframe into a raster.Buffer.
//
// Pipeline (fixed):
//
//	Model faces → index lookup → screen mapping → raster.Buffer.Line.
//
// There is no camera. Object-space x and y map linearly onto the buffer and
// z is ignored.
package render
