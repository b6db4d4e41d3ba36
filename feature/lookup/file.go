package lookup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"bom-checker/feature/distributor"
)

// FileProvider reads canned records from a directory.
type FileProvider struct {
	Dir string
}

// Lookup reads {Dir}/{part number}.json. Path separators in the part number are replaced by "_".
func (p *FileProvider) Lookup(ctx context.Context, partNumber string) (*distributor.Record, error) {
	name := strings.NewReplacer("/", "_", `\`, "_").Replace(partNumber) + ".json"

	f, err := os.Open(filepath.Join(p.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open record for %s: %w", partNumber, err)
	}
	defer f.Close()

	return distributor.Decode(f, partNumber)
}
