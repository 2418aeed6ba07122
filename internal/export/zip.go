package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
)

// archiveFolder is the folder every exported PDF lives under inside the
// bulk archive.
const archiveFolder = "invoices"

// File is one named blob destined for an archive.
type File struct {
	Name string
	Data []byte
}

// BuildArchive packs the given files under the invoices/ folder of a ZIP
// archive, preserving input order.
func BuildArchive(files []File) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, f := range files {
		entry, err := w.Create(path.Join(archiveFolder, f.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", f.Name, err)
		}
		if _, err := entry.Write(f.Data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
