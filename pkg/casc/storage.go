package casc

import (
	"cascextract/pkg/logger"
)

// Storage owns an open archive container. It must outlive every File opened
// against it, and must not be used after Close.
type Storage struct {
	conn StorageConn
	path string
}

// OpenStorage opens the archive rooted at path, resolving localized entries
// against localeMask. On failure the returned error carries the code from
// the open attempt itself, not from the best-effort cleanup of a partially
// initialized connection.
func OpenStorage(path string, localeMask uint32) (*Storage, error) {
	l, err := library()
	if err != nil {
		logger.Error("Error opening casc storage", "path", path, "reason", ErrorText(CodeOf(err)))
		return nil, err
	}

	conn, err := l.OpenStorage(path, localeMask)
	if err != nil {
		openErr := coded("open storage", path, err)
		if conn != nil {
			conn.Close()
		}
		logger.Error("Error opening casc storage", "path", path, "reason", ErrorText(openErr.Code))
		return nil, openErr
	}

	logger.Info("Opened casc storage", "path", path)
	return &Storage{conn: conn, path: path}, nil
}

// Path returns the path the storage was opened with.
func (s *Storage) Path() string { return s.path }

// BuildNumber reports the build number of the product stored in the archive.
func (s *Storage) BuildNumber() (uint32, error) {
	if s.conn == nil {
		return 0, &Error{Op: "build number", Target: s.path, Code: CodeInvalidHandle}
	}
	build, err := s.conn.BuildNumber()
	if err != nil {
		return 0, coded("build number", s.path, err)
	}
	return build, nil
}

// InstalledLocales reports the locale bitmask the archive was installed with.
func (s *Storage) InstalledLocales() (uint32, error) {
	if s.conn == nil {
		return 0, &Error{Op: "installed locales", Target: s.path, Code: CodeInvalidHandle}
	}
	locales, err := s.conn.InstalledLocales()
	if err != nil {
		return 0, coded("installed locales", s.path, err)
	}
	return locales, nil
}

// HasTactKey reports whether an encryption key matching keyID is registered
// in the storage's key table.
func (s *Storage) HasTactKey(keyID uint64) bool {
	if s.conn == nil {
		return false
	}
	return s.conn.HasEncryptionKey(keyID)
}

// Close releases the storage back to the library. It is idempotent; any
// operation after Close fails with INVALID_HANDLE.
func (s *Storage) Close() error {
	if s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	return conn.Close()
}
