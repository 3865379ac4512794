// Package extract copies entries out of a CASC storage onto a filesystem.
package extract

import (
	"fmt"
	"io"
	"path"
	"strings"

	"cascextract/pkg/casc"
	"cascextract/pkg/logger"

	"github.com/spf13/afero"
)

// Extractor streams storage entries to an output filesystem.
type Extractor struct {
	Storage    *casc.Storage
	OutFS      afero.Fs
	LocaleMask uint32
	// Zerofill opens files so undecryptable encrypted regions read as
	// zero bytes instead of failing the extraction.
	Zerofill bool
	// Quiet suppresses per-file open diagnostics from the casc layer.
	Quiet bool
}

// Result is the outcome of one extracted entry.
type Result struct {
	Ref   casc.FileRef
	Path  string
	Bytes int64
	Err   error
}

// Extract copies each referenced entry to the output filesystem. A failed
// entry is reported in its Result; the batch continues.
func (e *Extractor) Extract(refs []casc.FileRef) []Result {
	results := make([]Result, 0, len(refs))
	for _, ref := range refs {
		res := e.extractOne(ref)
		if res.Err != nil {
			logger.Warn("Extraction failed", "file", ref.String(), "reason", casc.ErrorText(casc.CodeOf(res.Err)))
		} else {
			logger.Info("Extracted", "file", ref.String(), "path", res.Path, "bytes", res.Bytes)
		}
		results = append(results, res)
	}
	return results
}

func (e *Extractor) extractOne(ref casc.FileRef) Result {
	res := Result{Ref: ref, Path: outputPath(ref)}

	var opts []casc.OpenOption
	if !e.Quiet {
		opts = append(opts, casc.WithOpenDiagnostics())
	}
	if e.Zerofill {
		opts = append(opts, casc.WithZerofillEncrypted())
	}

	f, err := e.Storage.OpenFile(ref, e.LocaleMask, opts...)
	if err != nil {
		res.Err = err
		return res
	}
	defer f.Close()

	if dir := path.Dir(res.Path); dir != "." {
		if err := e.OutFS.MkdirAll(dir, 0o755); err != nil {
			res.Err = fmt.Errorf("create output dir %s: %w", dir, err)
			return res
		}
	}

	out, err := e.OutFS.Create(res.Path)
	if err != nil {
		res.Err = fmt.Errorf("create output file %s: %w", res.Path, err)
		return res
	}

	n, err := io.Copy(out, f)
	res.Bytes = n
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		res.Err = fmt.Errorf("copy %s: %w", res.Path, err)
	}
	return res
}

// outputPath maps a reference to a slash path on the output filesystem.
// By-id references have no name, so they land under fdid/.
func outputPath(ref casc.FileRef) string {
	if ref.IsID() {
		return fmt.Sprintf("fdid/%d", ref.ID())
	}
	name := strings.ReplaceAll(ref.Name(), "\\", "/")
	return strings.TrimPrefix(path.Clean(name), "/")
}
