package scan

import (
	"os"

	"github.com/performer-tools/cli/internal/domain"
)

// OSLister is the default DirLister backed by the real filesystem.
type OSLister struct{}

// ListEntries returns the immediate entries of path in filesystem order.
func (OSLister) ListEntries(path string) ([]domain.DirEntryInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DirEntryInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.DirEntryInfo{
			Name:      e.Name(),
			IsDir:     e.IsDir(),
			IsSymlink: e.Type()&os.ModeSymlink != 0,
		})
	}
	return out, nil
}

// IsDir reports whether path exists and is a directory.
func (OSLister) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Verify OSLister implements domain.DirLister
var _ domain.DirLister = OSLister{}
