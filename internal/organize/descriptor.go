package organize

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExtNone is the grouping key for files without an extension.
const ExtNone = "none"

// OthersFolder is the target folder for files grouped under ExtNone.
const OthersFolder = "OTHERS"

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// FileDescriptor captures one regular file as seen at scan time. It becomes
// stale if the file is moved or deleted afterwards; consumers must tolerate
// the file vanishing between scan and organize.
type FileDescriptor struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Ext  string `json:"ext"`
}

// ExtKey derives the grouping key for a file name: everything after the last
// '.' lowercased, or ExtNone when the name has no dot or the suffix is empty.
func ExtKey(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ExtNone
	}
	return lowerCaser.String(name[idx+1:])
}

// FolderName maps a grouping key to its target subdirectory name.
func FolderName(key string) string {
	if key == "" || key == ExtNone {
		return OthersFolder
	}
	return upperCaser.String(key)
}

// Grouping maps extension keys to the files scanned under one base directory.
// It is built fresh by each scan and consumed by the following organize call;
// descriptors must not be reused after the files have been moved.
type Grouping struct {
	BaseDir string                      `json:"base_dir"`
	Groups  map[string][]FileDescriptor `json:"groups"`
}

// NewGrouping returns an empty grouping rooted at baseDir.
func NewGrouping(baseDir string) *Grouping {
	return &Grouping{BaseDir: baseDir, Groups: make(map[string][]FileDescriptor)}
}

// Add appends a descriptor to its extension group, creating the group when
// the key is new. Order within a group is insertion (scan) order.
func (g *Grouping) Add(d FileDescriptor) {
	g.Groups[d.Ext] = append(g.Groups[d.Ext], d)
}

// Total returns the number of descriptors across all groups.
func (g *Grouping) Total() int {
	if g == nil {
		return 0
	}
	total := 0
	for _, items := range g.Groups {
		total += len(items)
	}
	return total
}

// Empty reports whether the grouping holds no descriptors.
func (g *Grouping) Empty() bool {
	return g.Total() == 0
}

// Keys returns the extension keys in lexical order. Group iteration order is
// not semantically significant; sorting keeps output and logs deterministic.
func (g *Grouping) Keys() []string {
	if g == nil {
		return nil
	}
	keys := make([]string, 0, len(g.Groups))
	for key := range g.Groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
