// Package host abstracts the hosting environment's document model. Engines
// never touch the filesystem directly; all text access and mutation goes
// through a Document.
package host

// Document is one editable text buffer and its persistence operations.
type Document interface {
	// Path identifies the document for reports and the linter.
	Path() string

	// Text returns the current buffer contents.
	Text() string

	// IsUnsaved reports whether the document has never been persisted.
	IsUnsaved() bool

	// IsModifiedSinceSave reports whether the buffer has edits that are not
	// yet persisted.
	IsModifiedSinceSave() bool

	// ReplaceAll replaces the entire buffer contents.
	ReplaceAll(newText string) error

	// Persist writes the buffer to durable storage.
	Persist() error
}
