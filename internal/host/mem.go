package host

import (
	"refa/internal/apperr"
)

// MemDocument is an in-memory Document for tests. FailPersist and FailReplace
// simulate host-boundary failures.
type MemDocument struct {
	DocPath     string
	Buffer      string
	Unsaved     bool
	Modified    bool
	FailReplace bool
	FailPersist bool

	// Persisted holds the buffer content at the last successful Persist.
	Persisted string
	// PersistCount counts successful persists.
	PersistCount int
}

// NewMemDocument creates a saved in-memory document with the given text.
func NewMemDocument(path, text string) *MemDocument {
	return &MemDocument{DocPath: path, Buffer: text, Persisted: text}
}

func (d *MemDocument) Path() string { return d.DocPath }

func (d *MemDocument) Text() string { return d.Buffer }

func (d *MemDocument) IsUnsaved() bool { return d.Unsaved }

func (d *MemDocument) IsModifiedSinceSave() bool { return d.Modified }

func (d *MemDocument) ReplaceAll(newText string) error {
	if d.FailReplace {
		return apperr.New(apperr.ApplyFailure, "replace rejected by host")
	}
	d.Buffer = newText
	d.Modified = true
	return nil
}

func (d *MemDocument) Persist() error {
	if d.FailPersist {
		return apperr.New(apperr.ApplyFailure, "persist rejected by host")
	}
	d.Persisted = d.Buffer
	d.Modified = false
	d.PersistCount++
	return nil
}
