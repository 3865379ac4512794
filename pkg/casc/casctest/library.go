// Package casctest provides an in-memory casc.Library. It backs the package
// tests and lets the extraction tool run without a native storage backend.
package casctest

import (
	"io"
	"strings"

	"cascextract/pkg/casc"
)

// Span marks a byte range of a file's content as encrypted with a TACT key.
// When the key is absent from the storage's key table, reading the range
// fails, or yields zero bytes if the file was opened with zerofill.
type Span struct {
	Off   int64
	Len   int64
	KeyID uint64
}

// File is a fixture entry. Locales is the bitmask of locale variants the
// entry exists for; zero means the entry matches any locale.
type File struct {
	Name           string
	ID             uint32
	Locales        uint32
	Content        []byte
	EncryptedSpans []Span
}

// Storage is a fixture container.
type Storage struct {
	Build      uint32
	Locales    uint32
	Keys       []uint64
	Files      []*File
	BuildErr   error // injected failure for the build-number query
	LocalesErr error // injected failure for the installed-locales query
}

// Library is an in-memory casc.Library keyed by storage path.
type Library struct {
	Storages map[string]*Storage
}

// New returns an empty library.
func New() *Library {
	return &Library{Storages: make(map[string]*Storage)}
}

// Add registers a storage fixture under path and returns it for population.
func (l *Library) Add(path string) *Storage {
	st := &Storage{}
	l.Storages[path] = st
	return st
}

// AddFile appends a plain entry and returns it so callers can attach
// encrypted spans or locale masks.
func (s *Storage) AddFile(name string, id uint32, content []byte) *File {
	f := &File{Name: name, ID: id, Content: content}
	s.Files = append(s.Files, f)
	return f
}

func (s *Storage) hasKey(keyID uint64) bool {
	for _, k := range s.Keys {
		if k == keyID {
			return true
		}
	}
	return false
}

// OpenStorage implements casc.Library.
func (l *Library) OpenStorage(path string, localeMask uint32) (casc.StorageConn, error) {
	st, ok := l.Storages[path]
	if !ok {
		return nil, &casc.Error{Op: "open storage", Target: path, Code: casc.CodeFileNotFound}
	}
	return &storageConn{st: st}, nil
}

type storageConn struct {
	st     *Storage
	closed bool
}

func (c *storageConn) BuildNumber() (uint32, error) {
	if c.st.BuildErr != nil {
		return 0, c.st.BuildErr
	}
	return c.st.Build, nil
}

func (c *storageConn) InstalledLocales() (uint32, error) {
	if c.st.LocalesErr != nil {
		return 0, c.st.LocalesErr
	}
	return c.st.Locales, nil
}

func (c *storageConn) HasEncryptionKey(keyID uint64) bool {
	return c.st.hasKey(keyID)
}

func (c *storageConn) OpenFile(ref casc.FileRef, localeMask uint32, opts casc.OpenOptions) (casc.FileConn, error) {
	if c.closed {
		return nil, &casc.Error{Op: "open file", Target: ref.String(), Code: casc.CodeInvalidHandle}
	}
	f := c.find(ref, localeMask)
	if f == nil {
		return nil, &casc.Error{Op: "open file", Target: ref.String(), Code: casc.CodeFileNotFound}
	}
	return &fileConn{st: c.st, f: f, zerofill: opts.ZerofillEncrypted}, nil
}

func (c *storageConn) find(ref casc.FileRef, localeMask uint32) *File {
	for _, f := range c.st.Files {
		if f.Locales != 0 && f.Locales&localeMask == 0 {
			continue
		}
		if ref.IsID() {
			if f.ID == ref.ID() {
				return f
			}
			continue
		}
		if strings.EqualFold(normalize(f.Name), normalize(ref.Name())) {
			return f
		}
	}
	return nil
}

// CascLib treats entry names as case-insensitive with either separator.
func normalize(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}

func (c *storageConn) Close() error {
	c.closed = true
	return nil
}

type fileConn struct {
	st       *Storage
	f        *File
	zerofill bool
	off      int64
	closed   bool
}

func (c *fileConn) Size() (int64, error) {
	if c.closed {
		return 0, &casc.Error{Op: "file size", Target: c.f.Name, Code: casc.CodeInvalidHandle}
	}
	return int64(len(c.f.Content)), nil
}

func (c *fileConn) Read(p []byte) (int, error) {
	if c.closed {
		return 0, &casc.Error{Op: "read", Target: c.f.Name, Code: casc.CodeInvalidHandle}
	}
	size := int64(len(c.f.Content))
	if c.off >= size {
		return 0, io.EOF
	}
	n := copy(p, c.f.Content[c.off:])
	end := c.off + int64(n)

	for _, span := range c.f.EncryptedSpans {
		if c.st.hasKey(span.KeyID) {
			continue
		}
		spanEnd := span.Off + span.Len
		if spanEnd <= c.off || span.Off >= end {
			continue
		}
		if !c.zerofill {
			return 0, &casc.Error{Op: "read", Target: c.f.Name, Code: casc.CodeFileEncrypted}
		}
		lo := max(span.Off, c.off)
		hi := min(spanEnd, end)
		for i := lo; i < hi; i++ {
			p[i-c.off] = 0
		}
	}

	c.off = end
	return n, nil
}

func (c *fileConn) Seek(offset int64, whence int) (int64, error) {
	if c.closed {
		return 0, &casc.Error{Op: "seek", Target: c.f.Name, Code: casc.CodeInvalidHandle}
	}
	size := int64(len(c.f.Content))
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = c.off + offset
	case io.SeekEnd:
		target = size + offset
	default:
		return 0, &casc.Error{Op: "seek", Target: c.f.Name, Code: casc.CodeInvalidParameter}
	}
	if target < 0 || target > size {
		return 0, &casc.Error{Op: "seek", Target: c.f.Name, Code: casc.CodeInvalidParameter}
	}
	c.off = target
	return target, nil
}

func (c *fileConn) Close() error {
	c.closed = true
	return nil
}
