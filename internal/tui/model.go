package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/service"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The catalog tab shows the most popular movies of the addon.
const (
	catalogType = "movie"
	catalogID   = "top"
)

const statusTTL = 3 * time.Second

type tab int

const (
	tabLibrary tab = iota
	tabCatalog
)

type browserModel struct {
	ctx       context.Context
	library   service.ClientLibraryService
	addon     service.ClientAddonService
	buildInfo models.AppBuildInfo
	copy      func(string) error

	tab     tab
	idx     int
	items   []models.LibItem
	metas   []models.MetaPreview
	loading bool
	syncing bool
	spinner spinner.Model

	// detail is set while a title is opened; libDetail is used for library
	// items when the addon has no meta for them.
	detail        *models.MetaItem
	libDetail     *models.LibItem
	detailLoading bool

	status        string
	lastErr       error
	showBuildInfo bool
	quitByUser    bool
}

func newBrowserModel(ctx context.Context, library service.ClientLibraryService, addon service.ClientAddonService, buildInfo models.AppBuildInfo) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:       ctx,
		library:   library,
		addon:     addon,
		buildInfo: buildInfo,
		copy:      func(string) error { return nil },
		spinner:   s,
		loading:   true,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadLibrary(), m.spinner.Tick)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case libraryLoadedMsg:
		m.loading = false
		m.lastErr = msg.err
		if msg.err == nil {
			m.items = visibleLibrary(msg.index)
			m.clampIdx()
		}
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		m.lastErr = msg.err
		if msg.err == nil {
			m.metas = msg.metas
			m.clampIdx()
		}
		return m, nil

	case metaLoadedMsg:
		m.detailLoading = false
		if msg.err != nil {
			// no meta in the addon: fall back to what the library knows
			if m.tab == tabLibrary {
				if item, ok := m.currentLibItem(); ok {
					m.libDetail = &item
					return m, nil
				}
			}
			m.lastErr = msg.err
			return m, nil
		}
		m.detail = &msg.meta
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.status = fmt.Sprintf("Синхронизировано, получено записей: %d", msg.pulled)
		return m, tea.Batch(m.cmdLoadLibrary(), clearStatusAfter(statusTTL))

	case copiedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.status = "ID скопирован: " + msg.id
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m browserModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.inDetail() {
		switch {
		case key.Matches(msg, keys.esc):
			m.detail, m.libDetail = nil, nil
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy(m.detailID())
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.listLen()-1 {
			m.idx++
		}
	case key.Matches(msg, keys.tab):
		return m.switchTab()
	case key.Matches(msg, keys.enter):
		return m.openCurrent()
	case key.Matches(msg, keys.copy):
		if id, ok := m.currentID(); ok {
			return m, m.cmdCopy(id)
		}
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.lastErr = nil
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)
	case key.Matches(msg, keys.reload):
		m.loading = true
		if m.tab == tabCatalog {
			return m, m.cmdLoadCatalog()
		}
		return m, m.cmdLoadLibrary()
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m browserModel) switchTab() (tea.Model, tea.Cmd) {
	m.idx = 0
	m.lastErr = nil
	if m.tab == tabLibrary {
		m.tab = tabCatalog
		if m.metas == nil {
			m.loading = true
			return m, m.cmdLoadCatalog()
		}
		return m, nil
	}

	m.tab = tabLibrary
	return m, nil
}

func (m browserModel) openCurrent() (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabLibrary:
		item, ok := m.currentLibItem()
		if !ok {
			return m, nil
		}
		m.detailLoading = true
		return m, m.cmdLoadMeta(item.TypeName, item.ID)
	default:
		if m.idx >= len(m.metas) {
			return m, nil
		}
		meta := m.metas[m.idx]
		m.detailLoading = true
		return m, m.cmdLoadMeta(meta.TypeName, meta.ID)
	}
}

func (m browserModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var title, body, hotKeys string
	switch {
	case m.detail != nil:
		title, body, hotKeys = "КАРТОЧКА", renderMetaDetail(*m.detail), "c копировать id  esc назад"
	case m.libDetail != nil:
		title, body, hotKeys = "КАРТОЧКА", renderLibItemDetail(*m.libDetail), "c копировать id  esc назад"
	default:
		title = m.renderTabs()
		body = m.renderList()
		hotKeys = "tab вкладка  enter открыть  c копировать id  s синхр.  r обновить  v версия  q выход"
	}

	if m.syncing {
		title += "  " + m.spinner.View() + " синхронизация"
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}
	if m.lastErr != nil {
		body += "\n\n" + errorStyle.Render("Ошибка: "+humanizeError(m.lastErr))
	}

	return appStyle.Render(renderPage(title, body, hotKeys))
}

func (m browserModel) renderTabs() string {
	library, catalog := inactiveTabStyle, inactiveTabStyle
	if m.tab == tabLibrary {
		library = activeTabStyle
	} else {
		catalog = activeTabStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		library.Render(fmt.Sprintf("Библиотека (%d)", len(m.items))),
		"   ",
		catalog.Render("Каталог"),
	)
}

func (m browserModel) renderList() string {
	if m.loading || m.detailLoading {
		return "Загрузка..."
	}
	if m.tab == tabCatalog {
		return renderCatalogList(m.metas, m.idx)
	}
	return renderLibraryList(m.items, m.idx)
}

func (m browserModel) inDetail() bool {
	return m.detail != nil || m.libDetail != nil
}

func (m browserModel) detailID() string {
	if m.detail != nil {
		return m.detail.ID
	}
	if m.libDetail != nil {
		return m.libDetail.ID
	}
	return ""
}

func (m browserModel) listLen() int {
	if m.tab == tabCatalog {
		return len(m.metas)
	}
	return len(m.items)
}

func (m *browserModel) clampIdx() {
	if n := m.listLen(); m.idx >= n {
		m.idx = max(n-1, 0)
	}
}

func (m browserModel) currentLibItem() (models.LibItem, bool) {
	if m.tab != tabLibrary || m.idx < 0 || m.idx >= len(m.items) {
		return models.LibItem{}, false
	}
	return m.items[m.idx], true
}

func (m browserModel) currentID() (string, bool) {
	if m.tab == tabCatalog {
		if m.idx < 0 || m.idx >= len(m.metas) {
			return "", false
		}
		return m.metas[m.idx].ID, true
	}
	item, ok := m.currentLibItem()
	return item.ID, ok
}

func (m browserModel) cmdLoadLibrary() tea.Cmd {
	return func() tea.Msg {
		index, err := m.library.Index(m.ctx)
		return libraryLoadedMsg{index: index, err: err}
	}
}

func (m browserModel) cmdLoadCatalog() tea.Cmd {
	return func() tea.Msg {
		metas, err := m.addon.Catalog(m.ctx, catalogType, catalogID)
		return catalogLoadedMsg{metas: metas, err: err}
	}
}

func (m browserModel) cmdLoadMeta(typeName, id string) tea.Cmd {
	return func() tea.Msg {
		meta, err := m.addon.Meta(m.ctx, typeName, id)
		return metaLoadedMsg{meta: meta, err: err}
	}
}

func (m browserModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		pulled, err := m.library.SyncNow(m.ctx)
		return syncDoneMsg{pulled: len(pulled), err: err}
	}
}

func (m browserModel) cmdCopy(id string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{id: id, err: copyFn(id)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
