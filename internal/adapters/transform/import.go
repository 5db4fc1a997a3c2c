package transform

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

// ImportName is the name of the import transform.
const ImportName = "import"

var (
	importPattern = regexp.MustCompile(`@import\s+([^;\n]+);`)
	entryPattern  = regexp.MustCompile(`^\s*(url\(\s*)?["']([^"']+)["']\s*\)?\s*`)
)

var _ ports.ChildExtractor = (*Import)(nil)

// Import resolves @import statements relative to the importing file.
// As a child extractor it declares every imported file as a child asset.
// As a transform it inlines the imported content.
type Import struct{}

// NewImport creates the import transform.
func NewImport() *Import {
	return &Import{}
}

// Name implements ports.Transform.
func (*Import) Name() string {
	return ImportName
}

type importEntry struct {
	path string
	url  bool
	raw  string
}

// external reports whether the import is left for the browser to fetch.
func (e importEntry) external() bool {
	if strings.HasPrefix(e.path, "http://") || strings.HasPrefix(e.path, "https://") || strings.HasPrefix(e.path, "//") {
		return true
	}
	return e.url && path.Ext(e.path) == ".css"
}

// parseStmt splits the body of an @import rule into its comma-separated
// entries. Text after the last entry, such as a media query, is the tail.
func parseStmt(stmt []byte) ([]importEntry, string, error) {
	body := importPattern.FindSubmatch(stmt)[1]

	var entries []importEntry
	rest := body
	for {
		m := entryPattern.FindSubmatchIndex(rest)
		if m == nil {
			if len(entries) > 0 {
				return nil, "", zerr.With(zerr.Wrap(domain.ErrMalformedImport, "expected a quoted path after ','"), "statement", string(stmt))
			}
			return nil, "", nil
		}

		entries = append(entries, importEntry{
			path: string(rest[m[4]:m[5]]),
			url:  m[2] >= 0,
			raw:  strings.TrimSpace(string(rest[m[0]:m[1]])),
		})

		rest = rest[m[1]:]
		if len(rest) == 0 || rest[0] != ',' {
			return entries, strings.TrimSpace(string(rest)), nil
		}
		rest = rest[1:]
	}
}

// Children implements ports.ChildExtractor.
func (i *Import) Children(factory ports.AssetFactory, content []byte, sourceDir string) ([]domain.Asset, error) {
	var rels []string
	for _, stmt := range importPattern.FindAll(content, -1) {
		entries, _, err := parseStmt(stmt)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			if entry.external() {
				continue
			}
			rel, err := resolveImport(sourceDir, entry.path)
			if err != nil {
				return nil, err
			}
			rels = append(rels, rel)
		}
	}

	if len(rels) == 0 {
		return nil, nil
	}

	child, err := factory.Create(rels, []string{ImportName}, sourceDir)
	if err != nil {
		return nil, err
	}
	return []domain.Asset{child}, nil
}

// Apply implements ports.Transform by inlining imports recursively.
func (i *Import) Apply(content []byte, sourceDir string) ([]byte, error) {
	return i.inline(content, sourceDir, make(map[string]struct{}))
}

func (i *Import) inline(content []byte, dir string, active map[string]struct{}) ([]byte, error) {
	var failure error

	out := importPattern.ReplaceAllFunc(content, func(stmt []byte) []byte {
		if failure != nil {
			return stmt
		}

		entries, tail, err := parseStmt(stmt)
		if err != nil {
			failure = err
			return stmt
		}
		if !slices.ContainsFunc(entries, func(e importEntry) bool { return !e.external() }) {
			return stmt
		}

		var buf bytes.Buffer
		for _, entry := range entries {
			if entry.external() {
				buf.WriteString("@import " + strings.TrimSpace(entry.raw+" "+tail) + ";")
				continue
			}

			inlined, err := i.inlineFile(dir, entry.path, active)
			if err != nil {
				failure = err
				return stmt
			}
			buf.Write(inlined)
		}
		return buf.Bytes()
	})

	if failure != nil {
		return nil, failure
	}
	return out, nil
}

func (i *Import) inlineFile(dir, name string, active map[string]struct{}) ([]byte, error) {
	rel, err := resolveImport(dir, name)
	if err != nil {
		return nil, err
	}

	file := filepath.Join(dir, filepath.FromSlash(rel))
	if _, seen := active[file]; seen {
		return nil, zerr.With(zerr.Wrap(domain.ErrImportCycle, "import revisits a file"), "import", file)
	}

	data, err := os.ReadFile(file) //nolint:gosec // path resolved below a source directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read import"), "import", file)
	}

	active[file] = struct{}{}
	defer delete(active, file)

	return i.inline(data, filepath.Dir(file), active)
}

// resolveImport finds the file an import names, Sass style: the path itself,
// then with .scss, as a _partial, and with .css.
func resolveImport(dir, name string) (string, error) {
	for _, candidate := range importCandidates(name) {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(candidate)))
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrImportNotFound, "unresolved @import"), "import", name), "dir", dir)
}

func importCandidates(name string) []string {
	name = path.Clean(name)
	dir, base := path.Split(name)

	if path.Ext(base) != "" {
		candidates := []string{name}
		if !strings.HasPrefix(base, "_") {
			candidates = append(candidates, dir+"_"+base)
		}
		return candidates
	}

	return []string{
		name,
		dir + base + ".scss",
		dir + "_" + base + ".scss",
		dir + base + ".css",
	}
}
