package host

import (
	"os"

	"refa/internal/apperr"
)

// FileDocument is a Document backed by a file on disk, used by the CLI.
type FileDocument struct {
	path     string
	text     string
	modified bool
}

// OpenFile loads the file at path into a FileDocument.
func OpenFile(path string) (*FileDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Newf(apperr.NoActiveTarget, "no such file: %s", path)
		}
		return nil, apperr.Wrap(apperr.NoActiveTarget, "cannot open target", err)
	}
	return &FileDocument{path: path, text: string(data)}, nil
}

func (d *FileDocument) Path() string { return d.path }

func (d *FileDocument) Text() string { return d.text }

// IsUnsaved is always false for file documents: they were read from disk.
func (d *FileDocument) IsUnsaved() bool { return false }

func (d *FileDocument) IsModifiedSinceSave() bool { return d.modified }

func (d *FileDocument) ReplaceAll(newText string) error {
	d.text = newText
	d.modified = true
	return nil
}

func (d *FileDocument) Persist() error {
	if err := os.WriteFile(d.path, []byte(d.text), 0644); err != nil {
		return apperr.Wrap(apperr.ApplyFailure, "could not persist document", err)
	}
	d.modified = false
	return nil
}
