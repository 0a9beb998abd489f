package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptdeck/internal/catalog"
)

// openViewerMsg asks the app to open the carousel on the given prompt.
type openViewerMsg struct {
	ID int
}

// favoriteRequestedMsg asks the app to toggle a favorite on the gateway.
type favoriteRequestedMsg struct {
	ID int
}

// copyRequestedMsg asks the app to copy a prompt text and record the copy.
type copyRequestedMsg struct {
	ID int
}

// promptItem adapts a catalog prompt to the bubbles list.
type promptItem struct {
	p *catalog.Prompt
}

// FilterValue is unused; filtering is the store's job, not the widget's.
func (i promptItem) FilterValue() string { return "" }

// promptDelegate renders catalog cards as two-line rows.
type promptDelegate struct {
	styles Styles
}

func (d promptDelegate) Height() int  { return 3 }
func (d promptDelegate) Spacing() int { return 0 }

func (d promptDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d promptDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(promptItem)
	if !ok {
		return
	}
	p := it.p

	heart := "♡"
	if p.IsFavorite {
		heart = d.styles.Error.Render("♥")
	}
	meta := fmt.Sprintf("%s  %s %d  ⧉ %d", p.Category, heart, p.Favorites, p.Copies)

	var title string
	if index == m.Index() {
		title = d.styles.Title.Render("▌ " + p.Title)
	} else {
		title = "  " + d.styles.Body.Render(p.Title)
	}

	desc := p.Description
	if maxW := m.Width() - 4; maxW > 3 && len([]rune(desc)) > maxW {
		desc = string([]rune(desc)[:maxW-1]) + "…"
	}

	fmt.Fprintf(w, "%s\n  %s\n  %s", title, d.styles.Muted.Render(meta), d.styles.Muted.Render(desc))
}

// CatalogPageModel is the main catalog browser: search, category tabs, sort
// cycling, the favorites filter and the reconciled card list.
type CatalogPageModel struct {
	store *catalog.Store

	list   list.Model
	search textinput.Model
	deb    debouncer

	searchFocused bool
	catIndex      int

	width  int
	height int
	styles Styles
}

// NewCatalogPageModel creates the catalog browser bound to the shared store.
func NewCatalogPageModel(store *catalog.Store, styles Styles, deb debouncer) CatalogPageModel {
	l := list.New(nil, promptDelegate{styles: styles}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	si := textinput.New()
	si.Placeholder = "Поиск промптов..."
	si.CharLimit = 100
	si.Width = 40

	return CatalogPageModel{
		store:  store,
		list:   l,
		search: si,
		deb:    deb,
		styles: styles,
	}
}

// SetSize resizes the page.
func (m *CatalogPageModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Header takes search, tabs and the counter rows.
	listHeight := height - 6
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(width, listHeight)
}

// SyncFromStore rebuilds the rendered list from the store projection. Used
// after loads and criteria changes; counter updates go through ReconcileItem.
func (m *CatalogPageModel) SyncFromStore() {
	items := make([]list.Item, len(m.store.Filtered))
	for i, p := range m.store.Filtered {
		items[i] = promptItem{p: p}
	}
	m.list.SetItems(items)
}

// renderedIDs reads the current on-screen ordering out of the widget.
func (m *CatalogPageModel) renderedIDs() []int {
	items := m.list.Items()
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.(promptItem).p.ID
	}
	return ids
}

// ReconcileItem nudges one card into its recomputed position after its
// counters changed, instead of rebuilding the whole list.
func (m *CatalogPageModel) ReconcileItem(id int) {
	m.store.Refresh()
	rendered := m.renderedIDs()
	target := catalog.ProjectIDs(m.store.Prompts, m.store.Criteria)
	move := catalog.PlanMove(target, rendered, id)

	pos := -1
	for i, rid := range rendered {
		if rid == id {
			pos = i
			break
		}
	}

	switch move.Kind {
	case catalog.MoveNone:
		return
	case catalog.MoveRemove:
		if pos >= 0 {
			m.list.RemoveItem(pos)
		}
	case catalog.MoveBefore:
		if pos < 0 {
			return
		}
		item := m.list.Items()[pos]
		m.list.RemoveItem(pos)
		anchor := len(m.list.Items())
		for i, it := range m.list.Items() {
			if it.(promptItem).p.ID == move.BeforeID {
				anchor = i
				break
			}
		}
		m.list.InsertItem(anchor, item)
	case catalog.MoveToEnd:
		if pos < 0 {
			return
		}
		item := m.list.Items()[pos]
		m.list.RemoveItem(pos)
		m.list.InsertItem(len(m.list.Items()), item)
	}
}

// SearchFocused reports whether keystrokes currently feed the search box,
// so the app does not steal them for global shortcuts.
func (m CatalogPageModel) SearchFocused() bool {
	return m.searchFocused
}

// SelectedID returns the id of the highlighted card, or 0.
func (m *CatalogPageModel) SelectedID() int {
	if it, ok := m.list.SelectedItem().(promptItem); ok {
		return it.p.ID
	}
	return 0
}

// Update handles messages.
func (m CatalogPageModel) Update(msg tea.Msg) (CatalogPageModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searchFocused {
			switch msg.String() {
			case "esc":
				m.searchFocused = false
				m.search.Blur()
				m.search.SetValue("")
				m.deb.Flush()
				m.store.SetSearch("")
				m.SyncFromStore()
				return m, nil
			case "enter":
				m.searchFocused = false
				m.search.Blur()
				m.deb.Flush()
				m.store.SetSearch(m.search.Value())
				m.SyncFromStore()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				return m, tea.Batch(cmd, m.deb.Trigger())
			}
		}

		switch msg.String() {
		case "/":
			m.searchFocused = true
			return m, m.search.Focus()
		case "left", "h":
			m.cycleCategory(-1)
			return m, nil
		case "right", "l":
			m.cycleCategory(1)
			return m, nil
		case "s":
			m.cycleSort()
			return m, nil
		case "f":
			m.store.ToggleOnlyFavorites()
			m.SyncFromStore()
			return m, nil
		case "enter":
			if id := m.SelectedID(); id != 0 {
				return m, func() tea.Msg { return openViewerMsg{ID: id} }
			}
			return m, nil
		case "x":
			if id := m.SelectedID(); id != 0 {
				return m, func() tea.Msg { return favoriteRequestedMsg{ID: id} }
			}
			return m, nil
		case "c":
			if id := m.SelectedID(); id != 0 {
				return m, func() tea.Msg { return copyRequestedMsg{ID: id} }
			}
			return m, nil
		}

	case searchDebouncedMsg:
		if m.deb.Fired(msg) {
			m.store.SetSearch(m.search.Value())
			m.SyncFromStore()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// cycleCategory moves the active tab, wrapping at both ends.
func (m *CatalogPageModel) cycleCategory(delta int) {
	cats := m.store.Categories()
	if len(cats) == 0 {
		return
	}
	m.catIndex = ((m.catIndex+delta)%len(cats) + len(cats)) % len(cats)
	m.store.SelectCategory(cats[m.catIndex])
	m.SyncFromStore()
}

// cycleSort advances to the next sort mode.
func (m *CatalogPageModel) cycleSort() {
	cur := 0
	for i, mode := range catalog.SortModes {
		if mode == m.store.Criteria.Sort {
			cur = i
			break
		}
	}
	m.store.SetSort(catalog.SortModes[(cur+1)%len(catalog.SortModes)])
	m.SyncFromStore()
}

// View renders the page.
func (m CatalogPageModel) View() string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")

	switch {
	case m.store.Loading:
		b.WriteString(m.styles.Muted.Render("Загрузка каталога..."))
	case len(m.store.Prompts) == 0:
		b.WriteString(m.styles.Muted.Render("Каталог пуст"))
	case len(m.store.Filtered) == 0:
		b.WriteString(m.styles.Muted.Render("Ничего не найдено. Попробуйте изменить фильтры или запрос."))
	default:
		b.WriteString(m.list.View())
	}

	return b.String()
}

func (m CatalogPageModel) viewTabs() string {
	cats := m.store.Categories()
	tabs := make([]string, 0, len(cats))
	for i, c := range cats {
		if i == m.catIndex {
			tabs = append(tabs, m.styles.TabActive.Render(c))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m CatalogPageModel) viewStatusLine() string {
	sort := m.styles.Muted.Render("⇅ " + m.store.Criteria.Sort.Label())
	count := m.styles.Muted.Render(fmt.Sprintf("%d из %d", len(m.store.Filtered), len(m.store.Prompts)))
	fav := ""
	if m.store.Criteria.OnlyFavorites {
		fav = "  " + m.styles.Badge.Render(fmt.Sprintf("♥ %d", m.store.FavoriteCount()))
	}
	return sort + "  " + count + fav
}
