package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-library-sync/models"
)

const nameWidth = 48

// visibleLibrary returns the items a user sees in the library: removed and
// temporary entries are hidden. Sorted by name, then id.
func visibleLibrary(index models.LibraryIndex) []models.LibItem {
	items := make([]models.LibItem, 0, len(index))
	for _, item := range index {
		if item.Removed || item.Temp {
			continue
		}
		items = append(items, item)
	}

	slices.SortFunc(items, func(a, b models.LibItem) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return items
}

func typeIcon(typeName string) string {
	switch typeName {
	case "movie":
		return "[M]"
	case "series":
		return "[S]"
	case "channel":
		return "[C]"
	case "tv":
		return "[T]"
	default:
		return "[?]"
	}
}

func cursor(selected bool) string {
	if selected {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func renderLibraryList(items []models.LibItem, idx int) string {
	if len(items) == 0 {
		return "Библиотека пуста"
	}

	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%s%s %s\n", cursor(i == idx), typeIcon(item.TypeName), fitText(item.Name, nameWidth))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCatalogList(metas []models.MetaPreview, idx int) string {
	if len(metas) == 0 {
		return "Каталог пуст"
	}

	var b strings.Builder
	for i, meta := range metas {
		line := fmt.Sprintf("%s%s %s", cursor(i == idx), typeIcon(meta.TypeName), fitText(meta.Name, nameWidth))
		if meta.ReleaseInfo != nil {
			line += "  " + helpStyle.Render(*meta.ReleaseInfo)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
