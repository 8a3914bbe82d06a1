package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gostack-labs/gostack/internal/platform"
)

// Permission constants for generated entries.
const (
	DirPerm        os.FileMode = 0755
	FilePerm       os.FileMode = 0644
	SecretFilePerm os.FileMode = 0600
)

// Result holds the outcome of writing a Plan.
type Result struct {
	Root  string
	Dirs  []string
	Files []string
}

// Materialize creates every planned directory in order, then every planned
// file. Directories are created one level at a time; a missing parent is an
// error. Nothing is overwritten: an existing path fails the write. The first
// failure is returned unwrapped and nothing already created is removed.
func Materialize(w io.Writer, p *Plan) (*Result, error) {
	result := &Result{Root: p.Root}

	for _, dir := range p.Dirs {
		if err := os.Mkdir(dir, DirPerm); err != nil {
			return result, err
		}
		result.Dirs = append(result.Dirs, dir)
		fmt.Fprintf(w, "  [ OK ] Created %s/\n", p.Rel(dir))
	}

	for _, file := range p.SortedFiles() {
		perm := filePerm(file)
		if err := platform.WriteNew(file, []byte(p.Files[file]), perm); err != nil {
			return result, err
		}
		result.Files = append(result.Files, file)
		fmt.Fprintf(w, "  [ OK ] Created %s\n", p.Rel(file))
	}

	return result, nil
}

// filePerm returns the permissions for a generated file. The .env file holds
// secrets and is readable by the owner only.
func filePerm(path string) os.FileMode {
	if filepath.Base(path) == ".env" {
		return SecretFilePerm
	}
	return FilePerm
}
