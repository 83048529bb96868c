// Package rtf assembles RTF documents in memory and serializes them to
// the RTF markup format. It is write-only: documents are built
// incrementally through the paragraph/text/footnote API and rendered
// once at the end.
//
// A Template owns the font, color, and style tables plus document
// defaults; it is populated once and then shared read-only by any
// number of Documents. A Document owns its body buffer and open
// paragraph/footnote state and is not safe for concurrent use.
package rtf
