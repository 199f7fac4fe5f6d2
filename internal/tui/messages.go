package tui

import (
	"github.com/MKhiriev/go-library-sync/models"
)

type libraryLoadedMsg struct {
	index models.LibraryIndex
	err   error
}

type catalogLoadedMsg struct {
	metas []models.MetaPreview
	err   error
}

type metaLoadedMsg struct {
	meta models.MetaItem
	err  error
}

type syncDoneMsg struct {
	pulled int
	err    error
}

type copiedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}
