// Package archive provides the tar framing shared by source extraction
// and package assembly. Compression is layered on top by the callers.
package archive
