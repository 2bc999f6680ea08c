package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultDumpFile is the file name used when a stats dump is requested
// without a name.
const DefaultDumpFile = "stats.json"

// Write pretty-prints the stats document to w.
//
// Stats obtained from [Parse] are written exactly as parsed (re-indented).
// Stats built in code are encoded from their module list.
func Write(s *Stats, w io.Writer) error {
	src := []byte(s.raw)
	if src == nil {
		var err error
		src, err = json.Marshal(map[string]any{"modules": s.Modules})
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", "  "); err != nil {
		return fmt.Errorf("indent: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// Export writes the stats document to a file at path, creating parent
// directories as needed. The file is written under a temporary name and
// renamed into place, so a failed dump never leaves a truncated file.
func Export(s *Stats, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	tmp := path + "." + uuid.NewString() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(s, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
