// Package casc exposes read access to CASC storages (the content-addressable
// archive format Blizzard game clients install their assets into). The
// archive decoding itself lives in a pluggable Library implementation; this
// package owns handle lifecycle, the by-name/by-id open surface, seek and
// read semantics, and status-code decoding.
package casc

import (
	"fmt"
	"io"
	"sync"
)

// Library is the boundary to the storage-archive implementation. The
// surrounding program registers one with Register before OpenStorage is
// called. Implementations report failures as errors wrapping a Code (use
// *Error); untyped failures are surfaced as CAN_NOT_COMPLETE.
type Library interface {
	OpenStorage(path string, localeMask uint32) (StorageConn, error)
}

// StorageConn is an open archive container inside a Library.
type StorageConn interface {
	// BuildNumber reports the build of the product stored in the archive.
	BuildNumber() (uint32, error)
	// InstalledLocales reports the locale bitmask the archive was
	// installed with.
	InstalledLocales() (uint32, error)
	// HasEncryptionKey reports whether keyID is present in the storage's
	// TACT key table.
	HasEncryptionKey(keyID uint64) bool
	// OpenFile resolves ref within the storage.
	OpenFile(ref FileRef, localeMask uint32, opts OpenOptions) (FileConn, error)
	Close() error
}

// FileConn is an open entry inside a StorageConn. Read and Seek follow the
// io package contracts; reading an encrypted region without its key fails
// with FILE_ENCRYPTED unless the file was opened with ZerofillEncrypted.
type FileConn interface {
	Size() (int64, error)
	io.Reader
	io.Seeker
	Close() error
}

// OpenOptions adjust how a file is resolved and read.
type OpenOptions struct {
	// ZerofillEncrypted makes undecryptable regions read as zero bytes
	// instead of failing the read (CascLib's CASC_OVERCOME_ENCRYPTED).
	ZerofillEncrypted bool
	// Diagnostics enables an error-level log line when the open fails.
	Diagnostics bool
}

// OpenOption configures OpenFile.
type OpenOption func(*OpenOptions)

// WithZerofillEncrypted requests zero bytes for encrypted regions whose key
// is not registered.
func WithZerofillEncrypted() OpenOption {
	return func(o *OpenOptions) { o.ZerofillEncrypted = true }
}

// WithOpenDiagnostics logs open failures. Off by default so bulk extraction
// loops can probe optional files quietly.
func WithOpenDiagnostics() OpenOption {
	return func(o *OpenOptions) { o.Diagnostics = true }
}

// FileRef addresses an entry either by its path name or by its stable
// numeric FileDataID.
type FileRef struct {
	name string
	id   uint32
	byID bool
}

// ByName references an entry by path name.
func ByName(name string) FileRef { return FileRef{name: name} }

// ByID references an entry by FileDataID.
func ByID(id uint32) FileRef { return FileRef{id: id, byID: true} }

// IsID reports whether the reference is a FileDataID.
func (r FileRef) IsID() bool { return r.byID }

// Name returns the path name for a by-name reference, "" otherwise.
func (r FileRef) Name() string { return r.name }

// ID returns the FileDataID for a by-id reference, 0 otherwise.
func (r FileRef) ID() uint32 {
	if !r.byID {
		return 0
	}
	return r.id
}

func (r FileRef) String() string {
	if r.byID {
		return fmt.Sprintf("FileDataId %d", r.id)
	}
	return "'" + r.name + "'"
}

var (
	libMu sync.RWMutex
	lib   Library
)

// Register installs the library implementation used by OpenStorage. It is
// meant to be called once during program initialization, before any storage
// is opened.
func Register(l Library) {
	libMu.Lock()
	defer libMu.Unlock()
	lib = l
}

func library() (Library, error) {
	libMu.RLock()
	defer libMu.RUnlock()
	if lib == nil {
		return nil, &Error{Op: "open storage", Code: CodeNotSupported}
	}
	return lib, nil
}
