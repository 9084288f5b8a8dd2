// Package render rasterizes index drawings into PNG images. Canvas maps the
// unit square onto a square RGBA image with y pointing up.
package render
