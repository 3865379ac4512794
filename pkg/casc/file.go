package casc

import (
	"io"

	"cascextract/pkg/logger"
)

// File is an open entry in a Storage. It implements io.ReadSeekCloser.
// A File is only valid while the Storage it was opened from is open.
type File struct {
	conn FileConn
	ref  FileRef
}

// OpenFile resolves ref inside the storage. The locale mask is passed to the
// library unmodified. On failure the returned error carries the code from
// the open attempt; a diagnostic naming the reference is logged only when
// WithOpenDiagnostics was given.
func (s *Storage) OpenFile(ref FileRef, localeMask uint32, opts ...OpenOption) (*File, error) {
	var o OpenOptions
	for _, opt := range opts {
		opt(&o)
	}

	if s.conn == nil {
		err := &Error{Op: "open file", Target: ref.String(), Code: CodeInvalidHandle}
		if o.Diagnostics {
			logger.Error("Failed to open file in casc storage", "file", ref.String(), "reason", ErrorText(err.Code))
		}
		return nil, err
	}

	conn, err := s.conn.OpenFile(ref, localeMask, o)
	if err != nil {
		openErr := coded("open file", ref.String(), err)
		if conn != nil {
			conn.Close()
		}
		if o.Diagnostics {
			logger.Error("Failed to open file in casc storage", "file", ref.String(), "reason", ErrorText(openErr.Code))
		}
		return nil, openErr
	}

	return &File{conn: conn, ref: ref}, nil
}

// Ref returns the reference the file was opened with.
func (f *File) Ref() FileRef { return f.ref }

// Size reports the entry's content size in bytes.
func (f *File) Size() (int64, error) {
	if f.conn == nil {
		return 0, &Error{Op: "file size", Target: f.ref.String(), Code: CodeInvalidHandle}
	}
	size, err := f.conn.Size()
	if err != nil {
		return 0, coded("file size", f.ref.String(), err)
	}
	return size, nil
}

// SizeParts reports the size split into low and high 32-bit halves, the way
// the native API hands it out. Both halves are zero if the query fails.
func (f *File) SizeParts() (low, high uint32) {
	size, err := f.Size()
	if err != nil {
		return 0, 0
	}
	return uint32(size), uint32(size >> 32)
}

// Read reads up to len(p) bytes at the current cursor. Fewer bytes than
// requested near end of file is a short read, not a failure; the next Read
// returns io.EOF. Reading an encrypted region without its key fails with
// FILE_ENCRYPTED unless the file was opened with WithZerofillEncrypted.
func (f *File) Read(p []byte) (int, error) {
	if f.conn == nil {
		return 0, &Error{Op: "read", Target: f.ref.String(), Code: CodeInvalidHandle}
	}
	return f.conn.Read(p)
}

// Seek moves the read cursor per the io.Seeker contract. A target outside
// the file fails with INVALID_PARAMETER.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.conn == nil {
		return 0, &Error{Op: "seek", Target: f.ref.String(), Code: CodeInvalidHandle}
	}
	return f.conn.Seek(offset, whence)
}

// Tell reports the current cursor position without moving it.
func (f *File) Tell() (int64, error) {
	return f.Seek(0, io.SeekCurrent)
}

// Close releases the entry. Idempotent.
func (f *File) Close() error {
	if f.conn == nil {
		return nil
	}
	conn := f.conn
	f.conn = nil
	return conn.Close()
}
