package pdftext

import (
	"context"
	"strings"
	"sync"
)

// LocalDocument is a document readable on the local file system for the
// duration of an extraction.
type LocalDocument struct {
	// Path is the local file the backends read.
	Path string

	// Source is the reference the document was acquired from.
	Source string

	once    sync.Once
	release func() error
	err     error
}

// NewLocalDocument returns a document at path. release, if not nil, is called
// once by Release.
func NewLocalDocument(path, source string, release func() error) *LocalDocument {
	return &LocalDocument{Path: path, Source: source, release: release}
}

// Release frees any resources held for the document, such as a
// downloaded temporary file. It is safe to call Release multiple times.
func (d *LocalDocument) Release() error {
	d.once.Do(func() {
		if d.release != nil {
			d.err = d.release()
		}
	})
	return d.err
}

// Acquirer resolves a document reference into a local file.
type Acquirer interface {
	// Acquire returns a local copy of the referenced document.
	// Callers must Release the document when extraction is done.
	Acquire(ctx context.Context, ref string) (*LocalDocument, error)
}

// IsRemote reports whether ref is an http or https URL.
func IsRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Ensure Router implements Acquirer at compile time.
var _ Acquirer = (*Router)(nil)

// Router sends remote references to Remote and everything else to Local.
type Router struct {
	Local  Acquirer
	Remote Acquirer
}

// Acquire delegates to the acquirer matching the reference.
func (r *Router) Acquire(ctx context.Context, ref string) (*LocalDocument, error) {
	if ref == "" {
		return nil, Errorf(EINVALID, "document reference required")
	}
	if IsRemote(ref) {
		if r.Remote == nil {
			return nil, Errorf(EUNAVAILABLE, "remote documents are not supported")
		}
		return r.Remote.Acquire(ctx, ref)
	}
	if r.Local == nil {
		return nil, Errorf(EUNAVAILABLE, "local documents are not supported")
	}
	return r.Local.Acquire(ctx, ref)
}
