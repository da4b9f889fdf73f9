// Package scan enumerates performer candidate directories across a set of
// configured root directories.
//
// Enumeration is tolerant: a root that is missing, unreadable or
// not a directory is reported as a warning and skipped, never aborting the
// run. Within a root only immediate subdirectories survive, and only those
// whose names pass validation.
package scan

import (
	"path/filepath"
	"strings"

	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/log"
)

// Scanner enumerates candidates using an injected directory lister.
type Scanner struct {
	lister   domain.DirLister
	fullPath bool
}

// New creates a Scanner. The fullPath flag fixes the presentation of the
// resulting candidate sets (full path vs bare name) for the lifetime of
// the scanner.
func New(lister domain.DirLister, fullPath bool) *Scanner {
	return &Scanner{lister: lister, fullPath: fullPath}
}

// NewDefault creates a Scanner over the real filesystem.
func NewDefault(fullPath bool) *Scanner {
	return New(OSLister{}, fullPath)
}

// Enumerate lists immediate subdirectories of each root, in root-list
// order then filesystem order, and returns them as a CandidateSet.
// Roots that cannot be read are reported as warnings. Candidates are
// never de-duplicated across roots: same-named directories under two
// roots stay distinct entries keyed by full path.
func (s *Scanner) Enumerate(roots []string) (domain.CandidateSet, []domain.RootWarning) {
	var candidates []domain.Candidate
	var warnings []domain.RootWarning

	for _, root := range roots {
		if !s.lister.IsDir(root) {
			warnings = append(warnings, domain.RootWarning{
				Root:   root,
				Reason: "not an existing directory",
			})
			log.Warn("scan: skipping root %s: not an existing directory", root)
			continue
		}

		entries, err := s.lister.ListEntries(root)
		if err != nil {
			warnings = append(warnings, domain.RootWarning{
				Root:   root,
				Reason: err.Error(),
			})
			log.Warn("scan: skipping root %s: %v", root, err)
			continue
		}

		for _, entry := range entries {
			// Symlinked entries are excluded, matching junction handling
			// on windows.
			if !entry.IsDir || entry.IsSymlink {
				continue
			}
			if !ValidName(entry.Name) {
				continue
			}
			candidates = append(candidates, domain.Candidate{
				Name:     entry.Name,
				FullPath: filepath.Join(root, entry.Name),
			})
		}
	}

	log.Debug("scan: %d candidates from %d roots (%d skipped)",
		len(candidates), len(roots), len(warnings))

	return domain.NewCandidateSet(candidates, s.fullPath), warnings
}

// ValidName reports whether name is acceptable as a candidate name:
// non-empty, no path separators, and not a reserved dot entry.
// Entries failing this are excluded from enumeration, not errors.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return false
	}
	return true
}

// Verify Scanner implements domain.Enumerator
var _ domain.Enumerator = (*Scanner)(nil)
