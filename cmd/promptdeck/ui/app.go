package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"promptdeck/internal/api"
	"promptdeck/internal/catalog"
	"promptdeck/internal/config"
)

// page identifies the active top-level tab.
type page int

const (
	pageCatalog page = iota
	pageBuilder
	pageProfile
)

func (p page) title() string {
	switch p {
	case pageBuilder:
		return "Конструктор"
	case pageProfile:
		return "Профиль"
	default:
		return "Каталог"
	}
}

// App is the root model: it owns the shared catalog store, routes gateway
// answers to the pages and runs the transient overlays (tutorial, toasts).
type App struct {
	cfg    config.Config
	log    *zap.Logger
	client *api.Client

	store    *catalog.Store
	carousel *catalog.Carousel

	catalogPage CatalogPageModel
	viewerPage  ViewerPageModel
	builderPage BuilderPageModel
	profilePage ProfilePageModel

	page       page
	viewerOpen bool

	// The tutorial shows once per session, shortly after startup.
	tutorialShown   bool
	tutorialVisible bool

	// pendingFav guards against double toggles while one is in flight.
	pendingFav map[int]bool

	toast      string
	toastIsErr bool
	toastSeq   int

	width  int
	height int
	styles Styles
}

// NewApp assembles the root model.
func NewApp(cfg config.Config, client *api.Client, log *zap.Logger) App {
	styles := DefaultStyles()
	store := catalog.NewStore()
	carousel := &catalog.Carousel{}

	return App{
		cfg:         cfg,
		log:         log,
		client:      client,
		store:       store,
		carousel:    carousel,
		catalogPage: NewCatalogPageModel(store, styles, newDebouncer(cfg.Debounce())),
		viewerPage:  NewViewerPageModel(store, carousel, styles),
		builderPage: NewBuilderPageModel(styles),
		profilePage: NewProfilePageModel(cfg.UI.BotUsername, styles),
		pendingFav:  make(map[int]bool),
		styles:      styles,
	}
}

// Init kicks off the catalog and profile loads and schedules the tutorial.
func (m App) Init() tea.Cmd {
	return tea.Batch(
		fetchPromptsCmd(m.client),
		fetchProfileCmd(m.client),
		tutorialTickCmd(m.cfg.TutorialDelay()),
	)
}

// Update handles messages.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		body := msg.Height - 3
		m.catalogPage.SetSize(msg.Width, body)
		m.viewerPage.SetSize(msg.Width, body)
		m.builderPage.SetSize(msg.Width, body)
		m.profilePage.SetSize(msg.Width, body)
		return m, nil

	case tutorialTickMsg:
		if !m.tutorialShown {
			m.tutorialShown = true
			m.tutorialVisible = true
		}
		return m, nil

	case tea.KeyMsg:
		if m.tutorialVisible {
			m.tutorialVisible = false
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.viewerOpen && !m.catalogPage.SearchFocused() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.page = pageCatalog
				return m, nil
			case "2":
				if m.page != pageBuilder {
					m.builderPage.Reset()
				}
				m.page = pageBuilder
				return m, nil
			case "3":
				m.page = pageProfile
				return m, nil
			case "?":
				m.tutorialVisible = true
				return m, nil
			case "R":
				if m.page == pageCatalog {
					m.store.BeginLoad()
					m.catalogPage.SyncFromStore()
					return m, tea.Batch(fetchPromptsCmd(m.client), fetchProfileCmd(m.client))
				}
			}
		}

	case promptsLoadedMsg:
		var cmd tea.Cmd
		if msg.Err != nil {
			m.log.Warn("catalog load failed", zap.Error(msg.Err))
			m.store.FinishLoad(nil)
			m, cmd = m.showToast("Не удалось загрузить каталог", true)
		} else {
			m.store.FinishLoad(msg.Prompts)
		}
		m.catalogPage.SyncFromStore()
		return m, cmd

	case profileLoadedMsg:
		if msg.Err != nil {
			m.log.Warn("profile load failed", zap.Error(msg.Err))
			return m, nil
		}
		m.profilePage.SetProfile(msg.Profile)
		return m, nil

	case favoriteRequestedMsg:
		return m.handleFavoriteRequest(msg.ID)

	case favoriteToggledMsg:
		return m.handleFavoriteToggled(msg)

	case copyRequestedMsg:
		return m.handleCopyRequest(msg.ID)

	case copyRecordedMsg:
		if msg.Err != nil {
			m.log.Warn("copy record failed", zap.Int("prompt_id", msg.ID), zap.Error(msg.Err))
			return m, nil
		}
		m.store.ApplyCopy(msg.ID, msg.Copies)
		m.catalogPage.ReconcileItem(msg.ID)
		return m, nil

	case builderCopyRequestedMsg:
		return m, writeClipboardCmd(msg.Text, "Промпт из конструктора скопирован")

	case referralCopyRequestedMsg:
		return m, writeClipboardCmd(msg.Link, "Ссылка скопирована")

	case clipboardWrittenMsg:
		if msg.Err != nil {
			m.log.Warn("clipboard write failed", zap.Error(msg.Err))
			var cmd tea.Cmd
			m, cmd = m.showToast("Буфер обмена недоступен", true)
			return m, cmd
		}
		var cmd tea.Cmd
		m, cmd = m.showToast(msg.Label, false)
		return m, cmd

	case openViewerMsg:
		if m.carousel.Open(m.store, msg.ID) {
			m.viewerOpen = true
		}
		return m, nil

	case closeViewerMsg:
		m.viewerOpen = false
		return m, nil

	case toastExpiredMsg:
		if msg.Seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	return m.routeToPage(msg)
}

// routeToPage forwards a message to whichever page is on screen.
func (m App) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.viewerOpen:
		m.viewerPage, cmd = m.viewerPage.Update(msg)
	case m.page == pageBuilder:
		m.builderPage, cmd = m.builderPage.Update(msg)
	case m.page == pageProfile:
		m.profilePage, cmd = m.profilePage.Update(msg)
	default:
		m.catalogPage, cmd = m.catalogPage.Update(msg)
	}
	return m, cmd
}

// handleFavoriteRequest starts a toggle unless one is already in flight for
// the prompt or the viewer is anonymous.
func (m App) handleFavoriteRequest(id int) (tea.Model, tea.Cmd) {
	if !m.client.Authenticated() {
		var cmd tea.Cmd
		m, cmd = m.showToast("Избранное доступно после входа через Telegram", true)
		return m, cmd
	}
	if m.pendingFav[id] {
		return m, nil
	}
	p := m.store.FindByID(id)
	if p == nil {
		return m, nil
	}
	m.pendingFav[id] = true
	return m, toggleFavoriteCmd(m.client, id, p.IsFavorite)
}

// handleFavoriteToggled applies the gateway's answer. When the answer omits
// the new state, the toggle inverts the state captured at request time.
func (m App) handleFavoriteToggled(msg favoriteToggledMsg) (tea.Model, tea.Cmd) {
	delete(m.pendingFav, msg.ID)
	if msg.Err != nil {
		m.log.Warn("favorite toggle failed", zap.Int("prompt_id", msg.ID), zap.Error(msg.Err))
		var cmd tea.Cmd
		m, cmd = m.showToast("Не удалось изменить избранное", true)
		return m, cmd
	}

	state := !msg.WasFav
	if msg.Result.State != nil {
		state = *msg.Result.State
	}
	m.store.ApplyFavorite(msg.ID, state, msg.Result.Favorites)
	m.catalogPage.ReconcileItem(msg.ID)

	label := "Удалено из избранного"
	if state {
		label = "Добавлено в избранное"
	}
	var cmd tea.Cmd
	m, cmd = m.showToast(label, false)
	return m, cmd
}

// handleCopyRequest copies the prompt text and records the copy upstream on
// the first copy only.
func (m App) handleCopyRequest(id int) (tea.Model, tea.Cmd) {
	p := m.store.FindByID(id)
	if p == nil {
		return m, nil
	}
	text := p.PromptText
	if text == "" {
		text = p.Description
	}

	cmds := []tea.Cmd{writeClipboardCmd(text, "Промпт скопирован")}
	if m.client.Authenticated() && m.store.ShouldRecordCopy(id) {
		cmds = append(cmds, recordCopyCmd(m.client, id))
	}
	return m, tea.Batch(cmds...)
}

// showToast replaces the current toast and schedules its expiry.
func (m App) showToast(text string, isErr bool) (App, tea.Cmd) {
	m.toast = text
	m.toastIsErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{Seq: seq}
	})
}

// View renders the active page under the header, with overlays on top.
func (m App) View() string {
	header := m.viewHeader()

	var body string
	switch {
	case m.tutorialVisible:
		body = renderTutorial(m.styles, m.width)
	case m.viewerOpen:
		body = m.viewerPage.View()
	case m.page == pageBuilder:
		body = m.builderPage.View()
	case m.page == pageProfile:
		body = m.profilePage.View()
	default:
		body = m.catalogPage.View()
	}

	footer := ""
	if m.toast != "" {
		if m.toastIsErr {
			footer = m.styles.Error.Render(m.toast)
		} else {
			footer = m.styles.Success.Render(m.toast)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.styles.Content.Render(body), footer)
}

func (m App) viewHeader() string {
	tabs := make([]string, 0, 3)
	for i, p := range []page{pageCatalog, pageBuilder, pageProfile} {
		label := fmt.Sprintf("%d %s", i+1, p.title())
		if p == m.page && !m.viewerOpen {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	auth := m.styles.Warning.Render("гость")
	if m.client.Authenticated() {
		auth = m.styles.Success.Render("●")
	}
	return m.styles.Header.Render("promptdeck") + " " +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "  " + auth
}
