package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-library-sync/models"
)

func renderMetaDetail(meta models.MetaItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", titleStyle.Render(meta.Name), typeIcon(meta.TypeName))
	fmt.Fprintf(&b, "ID: %s\n", meta.ID)
	fmt.Fprintf(&b, "Год: %s\n", valueOrDash(meta.ReleaseInfo))
	fmt.Fprintf(&b, "Длительность: %s\n", valueOrDash(meta.Runtime))
	fmt.Fprintf(&b, "IMDb: %s\n", valueOrDash(meta.IMDBRating))
	fmt.Fprintf(&b, "Жанры: %s\n", joinOrDash(meta.Genres))
	fmt.Fprintf(&b, "Режиссёры: %s\n", joinOrDash(meta.Directors))
	fmt.Fprintf(&b, "Сценаристы: %s\n", joinOrDash(meta.Writers))
	fmt.Fprintf(&b, "В ролях: %s\n", joinOrDash(meta.Cast))
	if len(meta.Videos) > 0 {
		fmt.Fprintf(&b, "Видео: %d\n", len(meta.Videos))
	}
	if meta.Description != nil && *meta.Description != "" {
		b.WriteString("\n")
		b.WriteString(*meta.Description)
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderLibItemDetail(item models.LibItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", titleStyle.Render(item.Name), typeIcon(item.TypeName))
	fmt.Fprintf(&b, "ID: %s\n", item.ID)
	fmt.Fprintf(&b, "Постер: %s\n", valueOrDash(item.Poster))
	fmt.Fprintf(&b, "Форма постера: %s\n", item.PosterShape.Name())
	if item.CTime != nil {
		fmt.Fprintf(&b, "Добавлено: %s\n", item.CTime.Local().Format(time.DateTime))
	}
	fmt.Fprintf(&b, "Изменено: %s", item.MTime.Local().Format(time.DateTime))

	return b.String()
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
