// Package parser decodes the parts of an xlsx container without a spreadsheet library.
package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/richardlehane/mscfb"
)

// Archive gives read-only access to the parts of a zip container.
type Archive struct {
	closer io.Closer
	files  map[string]*zip.File
}

// OpenArchive opens the container at path. The caller must Close it.
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ArchiveOpenError{Path: path, Err: sniffCompoundFile(path, err)}
	}
	a := newArchive(&zr.Reader)
	a.closer = zr
	return a, nil
}

// NewArchive reads a container from r. Close is a no-op for archives built this way.
func NewArchive(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &ArchiveOpenError{Path: "<reader>", Err: err}
	}
	return newArchive(zr), nil
}

func newArchive(zr *zip.Reader) *Archive {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if _, dup := files[f.Name]; dup {
			continue
		}
		files[f.Name] = f
	}
	return &Archive{files: files}
}

// Close releases the underlying file.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// HasPart reports whether the archive contains name.
func (a *Archive) HasPart(name string) bool {
	_, ok := a.files[name]
	return ok
}

// ReadPart returns the content of the named part.
func (a *Archive) ReadPart(name string) ([]byte, error) {
	rc, err := a.OpenPart(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// OpenPart returns a reader over the named part.
func (a *Archive) OpenPart(name string) (io.ReadCloser, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrPartNotFound)
	}
	return f.Open()
}

// sniffCompoundFile checks whether a file that failed to open as zip is an
// OLE2 compound document, which is how encrypted and legacy workbooks are stored.
func sniffCompoundFile(path string, zipErr error) error {
	f, err := os.Open(path)
	if err != nil {
		return zipErr
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return zipErr
	}

	legacy := false
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "EncryptedPackage", "EncryptionInfo":
			return ErrEncryptedWorkbook
		case "Workbook", "Book":
			legacy = true
		}
	}
	if legacy {
		return ErrLegacyWorkbook
	}
	return errors.Join(errors.New("compound document is not a zip container"), zipErr)
}
