package main

import (
	"errors"

	"cascextract/pkg/casc"
)

// stubLibrary stands in when no CASC backend is linked into the binary.
// Programs embedding pkg/casc register a real implementation with
// casc.Register before opening storages.
type stubLibrary struct{}

func (stubLibrary) OpenStorage(path string, localeMask uint32) (casc.StorageConn, error) {
	return nil, &casc.Error{
		Op:     "open storage",
		Target: path,
		Code:   casc.CodeNotSupported,
		Err:    errors.New("no CASC backend linked into this build"),
	}
}
