package materializer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dumpfiles/internal/adapters/catalog"
	"go.trai.ch/dumpfiles/internal/adapters/materializer"
	"go.trai.ch/dumpfiles/internal/adapters/transform"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root   string
	cfg    *domain.Config
	logger *mocks.MockLogger
	m      *materializer.Materializer
}

func newFixture(t *testing.T, manifest string, files map[string]string) *fixture {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, domain.ManifestFileName), manifest)
	for name, content := range files {
		writeFile(t, filepath.Join(root, "src", filepath.FromSlash(name)), content)
	}

	cfg := &domain.Config{Root: root, OutputDir: filepath.Join(root, "web")}
	registry := transform.Default()
	cat := catalog.New(filepath.Join(root, domain.ManifestFileName), registry)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	return &fixture{
		root:   root,
		cfg:    cfg,
		logger: log,
		m:      materializer.New(cfg, cat, registry, log),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

const manifest = `
source_root: src
assets:
  - name: main_css
    inputs: [css/app.scss, "@vendor_css"]
    transforms: [import, strip-comments, trim]
    output: css/main.css
  - name: vendor_css
    inputs: ["vendor/*.css"]
    output: css/vendor.css
`

func TestDump_RendersAndWrites(t *testing.T) {
	f := newFixture(t, manifest, map[string]string{
		"css/app.scss":   "/* app */\n@import \"vars\";\nbody { color: $red; }   \n",
		"css/_vars.scss": "$red: #f00;",
		"vendor/a.css":   "a{}",
		"vendor/b.css":   "b{}",
	})
	target := filepath.Join(f.cfg.OutputDir, "css", "main.css")
	f.logger.EXPECT().Info("[file+] " + target)

	require.NoError(t, f.m.Dump(context.Background(), "main_css"))

	assert.Equal(t, "\n$red: #f00;\nbody { color: $red; }\n\na{}\nb{}", readFile(t, target))
}

func TestDump_SkipsUnchangedOutput(t *testing.T) {
	f := newFixture(t, manifest, map[string]string{"vendor/a.css": "a{}"})
	target := filepath.Join(f.cfg.OutputDir, "css", "vendor.css")

	f.logger.EXPECT().Info("[file+] " + target).Times(1)
	f.logger.EXPECT().Debug("[file=] " + target).Times(1)

	require.NoError(t, f.m.Dump(context.Background(), "vendor_css"))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(target, old, old))

	require.NoError(t, f.m.Dump(context.Background(), "vendor_css"))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.WithinDuration(t, old, info.ModTime(), time.Second)
}

func TestDump_ReadsOutputDirAtDumpTime(t *testing.T) {
	f := newFixture(t, manifest, map[string]string{"vendor/a.css": "a{}"})
	f.cfg.OutputDir = filepath.Join(f.root, "public")
	target := filepath.Join(f.root, "public", "css", "vendor.css")
	f.logger.EXPECT().Info("[file+] " + target)

	require.NoError(t, f.m.Dump(context.Background(), "vendor_css"))
	assert.Equal(t, "a{}", readFile(t, target))
}

func TestDump_ReferenceCycle(t *testing.T) {
	f := newFixture(t, `
assets:
  - name: a
    inputs: ["@b"]
    output: a.css
  - name: b
    inputs: ["@a"]
    output: b.css
`, nil)

	err := f.m.Dump(context.Background(), "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReferenceCycle)
}

func TestDump_UnknownAsset(t *testing.T) {
	f := newFixture(t, manifest, nil)

	err := f.m.Dump(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestLoad_AppliesChainInOrder(t *testing.T) {
	f := newFixture(t, manifest, map[string]string{"css/x.css": "a  /* c */  \n\n"})
	leaf := domain.Leaf{
		SourceRoot: filepath.Join(f.root, "src"),
		SourcePath: "css/x.css",
		Transforms: []string{"strip-comments", "trim"},
	}

	content, err := f.m.Load(context.Background(), leaf)
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(content))

	content, err = f.m.Load(context.Background(), leaf.WithTransforms(nil))
	require.NoError(t, err)
	assert.Equal(t, "a  /* c */  \n\n", string(content))
}

func TestLoad_Errors(t *testing.T) {
	f := newFixture(t, manifest, map[string]string{"x.css": ""})
	src := filepath.Join(f.root, "src")

	_, err := f.m.Load(context.Background(), domain.Leaf{SourceRoot: src, SourcePath: "missing.css"})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = f.m.Load(context.Background(), domain.Leaf{SourceRoot: src, SourcePath: "x.css", Transforms: []string{"uglify"}})
	require.ErrorIs(t, err, domain.ErrUnknownTransform)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.m.Load(ctx, domain.Leaf{SourceRoot: src, SourcePath: "x.css"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestExtractChildren(t *testing.T) {
	f := newFixture(t, manifest, map[string]string{"css/_vars.scss": ""})
	dir := filepath.Join(f.root, "src", "css")

	assert.True(t, f.m.CanExtract("import"))
	assert.False(t, f.m.CanExtract("trim"))
	assert.False(t, f.m.CanExtract("uglify"))

	children, err := f.m.ExtractChildren(context.Background(), "import", []byte(`@import "vars";`), dir)
	require.NoError(t, err)
	assert.Equal(t, []domain.Asset{domain.Composite{Children: []domain.Asset{
		domain.Leaf{SourceRoot: dir, SourcePath: "_vars.scss", Transforms: []string{"import"}},
	}}}, children)

	_, err = f.m.ExtractChildren(context.Background(), "trim", nil, dir)
	require.Error(t, err)
}
