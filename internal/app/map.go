package app

import (
	"context"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"go.trai.ch/dumpfiles/internal/core/domain"
)

// PrintMap writes the dependency map as two tables: the assets built from
// every source file, and the assets referencing every referenced asset.
// Source keys are shown relative to the project root.
func (a *App) PrintMap(ctx context.Context, w io.Writer, force bool) error {
	m, err := a.cache.Get(ctx, force)
	if m == nil {
		return err
	}
	if err != nil {
		a.logger.Error(err)
	}

	renderMap(w, m, a.cfg.Root)
	return nil
}

func renderMap(w io.Writer, m *domain.DependencyMap, root string) {
	files := newTable(w, "Source", "Assets")
	for _, key := range m.SortedFiles() {
		files.Append([]string{displayKey(key, root), strings.Join(m.Files[key].Sorted(), ", ")})
	}
	files.Render()

	if len(m.AssetRefs) == 0 {
		return
	}

	_, _ = io.WriteString(w, "\n")

	refs := newTable(w, "Asset", "Referenced by")
	for _, target := range m.SortedRefs() {
		refs.Append([]string{target, strings.Join(m.AssetRefs[target].Sorted(), ", ")})
	}
	refs.Render()
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

func displayKey(key, root string) string {
	if root == "" {
		return key
	}
	if rel, ok := strings.CutPrefix(key, strings.TrimSuffix(root, "/")+"/"); ok {
		return rel
	}
	return key
}
