package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/testutil"
)

// fakeLister serves canned directory listings without touching the
// filesystem.
type fakeLister struct {
	dirs map[string][]domain.DirEntryInfo
	errs map[string]error
}

func (f fakeLister) ListEntries(path string) ([]domain.DirEntryInfo, error) {
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	return f.dirs[path], nil
}

func (f fakeLister) IsDir(path string) bool {
	_, hasEntries := f.dirs[path]
	_, hasErr := f.errs[path]
	return hasEntries || hasErr
}

func dir(name string) domain.DirEntryInfo {
	return domain.DirEntryInfo{Name: name, IsDir: true}
}

func file(name string) domain.DirEntryInfo {
	return domain.DirEntryInfo{Name: name, IsDir: false}
}

func symlink(name string) domain.DirEntryInfo {
	return domain.DirEntryInfo{Name: name, IsDir: true, IsSymlink: true}
}

func TestEnumerate_CountsAllSubdirectoriesAcrossRoots(t *testing.T) {
	lister := fakeLister{dirs: map[string][]domain.DirEntryInfo{
		"/roots/a": {dir("alice"), dir("alicia")},
		"/roots/b": {dir("bob"), dir("carol"), dir("dave")},
	}}

	set, warnings := New(lister, false).Enumerate([]string{"/roots/a", "/roots/b"})

	require.Empty(t, warnings)
	require.Equal(t, 5, set.Len())
	require.Equal(t, []string{"alice", "alicia", "bob", "carol", "dave"}, set.Displays())
}

func TestEnumerate_SkipsInvalidRootsWithWarning(t *testing.T) {
	lister := fakeLister{dirs: map[string][]domain.DirEntryInfo{
		"/roots/a": {dir("alice")},
	}}

	set, warnings := New(lister, false).Enumerate([]string{"/missing", "/roots/a"})

	require.Len(t, warnings, 1)
	require.Equal(t, "/missing", warnings[0].Root)
	require.Equal(t, []string{"alice"}, set.Displays())
}

func TestEnumerate_ReportsListingErrors(t *testing.T) {
	lister := fakeLister{
		dirs: map[string][]domain.DirEntryInfo{"/roots/a": {dir("alice")}},
		errs: map[string]error{"/roots/denied": errors.New("permission denied")},
	}

	set, warnings := New(lister, false).Enumerate([]string{"/roots/denied", "/roots/a"})

	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Reason, "permission denied")
	require.Equal(t, []string{"alice"}, set.Displays())
}

func TestEnumerate_FiltersFilesSymlinksAndInvalidNames(t *testing.T) {
	lister := fakeLister{dirs: map[string][]domain.DirEntryInfo{
		"/roots/a": {
			dir("alice"),
			file("notes.txt"),
			symlink("junction"),
			dir(""),
			dir("."),
			dir(".."),
		},
	}}

	set, warnings := New(lister, false).Enumerate([]string{"/roots/a"})

	require.Empty(t, warnings)
	require.Equal(t, []string{"alice"}, set.Displays())
}

func TestEnumerate_KeepsDuplicateNamesFromDifferentRoots(t *testing.T) {
	lister := fakeLister{dirs: map[string][]domain.DirEntryInfo{
		"/roots/a": {dir("shared")},
		"/roots/b": {dir("shared")},
	}}

	set, warnings := New(lister, true).Enumerate([]string{"/roots/a", "/roots/b"})

	require.Empty(t, warnings)
	require.Equal(t, 2, set.Len())
	require.Equal(t, []string{
		filepath.Join("/roots/a", "shared"),
		filepath.Join("/roots/b", "shared"),
	}, set.Displays())
}

func TestEnumerate_EmptyRootList(t *testing.T) {
	set, warnings := New(fakeLister{}, false).Enumerate(nil)

	require.Empty(t, warnings)
	require.True(t, set.IsEmpty())
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain name", "alice", true},
		{"name with spaces and brackets", "alice [live]", true},
		{"empty", "", false},
		{"dot", ".", false},
		{"dotdot", "..", false},
		{"contains slash", "a/b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidName(tt.input))
		})
	}
}

func TestOSLister_ListsRealDirectories(t *testing.T) {
	root := testutil.NewTestRoot(t, "alice", "bob")
	testutil.SeedFile(t, root, "notes.txt")

	set, warnings := NewDefault(false).Enumerate([]string{root})

	require.Empty(t, warnings)
	require.ElementsMatch(t, []string{"alice", "bob"}, set.Displays())
}

func TestOSLister_MultipleRealRoots(t *testing.T) {
	rootA := testutil.NewTestRoot(t, "alice", "shared")
	rootB := testutil.NewTestRoot(t, "bob", "shared")

	set, warnings := NewDefault(true).Enumerate([]string{rootA, rootB})

	require.Empty(t, warnings)
	require.Equal(t, 4, set.Len())
	require.Contains(t, set.Displays(), filepath.Join(rootA, "shared"))
	require.Contains(t, set.Displays(), filepath.Join(rootB, "shared"))
}

func TestOSLister_ExcludesSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "real"), 0755))
	if err := os.Symlink(target, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	set, warnings := NewDefault(false).Enumerate([]string{root})

	require.Empty(t, warnings)
	require.Equal(t, []string{"real"}, set.Displays())
}
