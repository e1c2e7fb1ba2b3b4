package ui

import (
	"context"
	"fmt"

	"github.com/abarbosa/catalogo/internal/catalog"
	"github.com/abarbosa/catalogo/internal/forms"
	"github.com/abarbosa/catalogo/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	HomeView ViewState = iota
	FavoritesView
	DetailsView
	FormView
	CategoriesView
)

// stateChangedMsg carries a new store state into the Elm loop.
type stateChangedMsg catalog.State

// Model represents the TUI application state.
type Model struct {
	ctx   context.Context
	store *catalog.Store
	state catalog.State

	view     ViewState
	prevView ViewState
	width    int
	height   int

	productList    list.Model
	categoryList   list.Model
	categoryFilter int // 0 = all categories, i = state.Categories[i-1]
	selectedID     string
	confirmDelete  bool

	form           formModel
	catInput       textinput.Model
	addingCategory bool

	stateChan   chan catalog.State
	unsubscribe func()

	help help.Model
	keys keyMap
}

// NewModel creates a TUI model bound to the given store. The model subscribes
// to the store so any mutation, from whichever screen, re-renders the UI.
func NewModel(ctx context.Context, store *catalog.Store) *Model {
	m := &Model{
		ctx:       ctx,
		store:     store,
		state:     store.State(),
		view:      HomeView,
		stateChan: make(chan catalog.State, 16),
		help:      help.New(),
		keys:      newKeyMap(),
	}

	m.unsubscribe = store.Subscribe(func(st catalog.State) {
		select {
		case m.stateChan <- st:
		default:
		}
	})

	m.productList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.productList.Title = "Produtos"
	m.productList.SetShowHelp(false)

	m.categoryList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.categoryList.Title = "Categorias"
	m.categoryList.SetShowHelp(false)

	m.catInput = textinput.New()
	m.catInput.Placeholder = "Nome da categoria"

	m.refreshLists()
	return m
}

// Init hydrates the store and starts listening for state changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.hydrate(), m.waitForState())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.productList.SetSize(msg.Width-4, msg.Height-8)
		m.categoryList.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case stateChangedMsg:
		m.state = catalog.State(msg)
		cmd := m.refreshLists()
		return m, tea.Batch(cmd, m.waitForState())

	case tea.KeyMsg:
		switch m.view {
		case HomeView, FavoritesView:
			return m.handleListKeys(msg)
		case DetailsView:
			return m.handleDetailsKeys(msg)
		case FormView:
			return m.handleFormKeys(msg)
		case CategoriesView:
			return m.handleCategoriesKeys(msg)
		}
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case HomeView, FavoritesView:
		return m.renderList()
	case DetailsView:
		return m.renderDetails()
	case FormView:
		return m.renderForm()
	case CategoriesView:
		return m.renderCategories()
	default:
		return ""
	}
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list's built-in filter prompt is active, every key belongs to it.
	if m.productList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.productList, cmd = m.productList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "enter":
		if item, ok := m.productList.SelectedItem().(productItem); ok {
			m.selectedID = item.product.ID
			m.prevView = m.view
			m.confirmDelete = false
			m.view = DetailsView
		}
		return m, nil
	case "a":
		m.openForm(nil)
		return m, nil
	case "c":
		m.view = CategoriesView
		m.addingCategory = false
		return m, nil
	case "v":
		if m.view == FavoritesView {
			m.view = HomeView
		} else {
			m.view = FavoritesView
		}
		return m, m.refreshLists()
	case "tab":
		if m.view == HomeView {
			m.categoryFilter = (m.categoryFilter + 1) % (len(m.state.Categories) + 1)
			return m, m.refreshLists()
		}
	case "esc":
		if m.view == FavoritesView {
			m.view = HomeView
			return m, m.refreshLists()
		}
	}

	var cmd tea.Cmd
	m.productList, cmd = m.productList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		switch msg.String() {
		case "y":
			m.store.RemoveProduct(m.selectedID)
			m.confirmDelete = false
			m.view = m.prevView
		case "n", "esc":
			m.confirmDelete = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "esc":
		m.view = m.prevView
	case "f":
		m.store.ToggleFavorite(m.selectedID)
	case "e":
		if p, ok := catalog.FindProduct(m.state.Products, m.selectedID); ok {
			m.openForm(&p)
		}
	case "d":
		m.confirmDelete = true
	}
	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.view = m.prevView
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "enter":
		if input, ok := m.form.parse(m.state.Categories); ok {
			m.store.UpsertProduct(input)
			m.view = m.prevView
		}
		return m, nil
	case "left":
		if m.form.focus >= fieldCategory {
			m.form.cycle(-1, len(m.state.Categories))
			return m, nil
		}
	case "right", " ":
		if m.form.focus >= fieldCategory {
			m.form.cycle(1, len(m.state.Categories))
			return m, nil
		}
	}

	return m, m.form.updateFocused(msg)
}

func (m *Model) handleCategoriesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.addingCategory {
		switch msg.String() {
		case "esc":
			m.addingCategory = false
			m.catInput.SetValue("")
			return m, nil
		case "enter":
			if input, err := (forms.CategoryForm{Name: m.catInput.Value()}).Parse(); err == nil {
				m.store.UpsertCategory(input)
				m.addingCategory = false
				m.catInput.SetValue("")
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.catInput, cmd = m.catInput.Update(msg)
		return m, cmd
	}

	if m.categoryList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.categoryList, cmd = m.categoryList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "esc":
		m.view = HomeView
		m.categoryFilter = 0
		return m, m.refreshLists()
	case "a":
		m.addingCategory = true
		m.catInput.Focus()
		return m, nil
	case "d":
		if item, ok := m.categoryList.SelectedItem().(categoryItem); ok {
			m.store.RemoveCategory(item.category.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.categoryList, cmd = m.categoryList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case HomeView, FavoritesView:
		m.productList, cmd = m.productList.Update(msg)
	case CategoriesView:
		m.categoryList, cmd = m.categoryList.Update(msg)
	}
	return m, cmd
}

func (m *Model) openForm(editing *models.Product) {
	if m.view != FormView {
		m.prevView = m.view
	}
	m.form = newProductForm(m.state.Categories, editing)
	m.view = FormView
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	return m, tea.Quit
}

func (m *Model) hydrate() tea.Cmd {
	return func() tea.Msg {
		m.store.Hydrate(m.ctx)
		return nil
	}
}

func (m *Model) waitForState() tea.Cmd {
	return func() tea.Msg {
		st, ok := <-m.stateChan
		if !ok {
			return nil
		}
		return stateChangedMsg(st)
	}
}

// refreshLists rebuilds both list models from the current state, keeping the
// active category filter and view in mind.
func (m *Model) refreshLists() tea.Cmd {
	filter := catalog.Filter{FavoritesOnly: m.view == FavoritesView}
	title := "Produtos"
	if m.view == FavoritesView {
		title = "Favoritos"
	} else if m.categoryFilter > 0 && m.categoryFilter <= len(m.state.Categories) {
		c := m.state.Categories[m.categoryFilter-1]
		filter.CategoryID = c.ID
		title = fmt.Sprintf("Produtos — %s", c.Name)
	}

	products := catalog.FilterProducts(m.state.Products, filter)
	items := make([]list.Item, len(products))
	for i, p := range products {
		items[i] = productItem{product: p, categories: m.state.Categories}
	}
	m.productList.Title = title
	cmd := m.productList.SetItems(items)

	counts := map[string]int{}
	for _, p := range m.state.Products {
		if p.CategoryID != nil {
			counts[*p.CategoryID]++
		}
	}
	catItems := make([]list.Item, len(m.state.Categories))
	for i, c := range m.state.Categories {
		catItems[i] = categoryItem{category: c, count: counts[c.ID]}
	}
	return tea.Batch(cmd, m.categoryList.SetItems(catItems))
}

func (m *Model) renderList() string {
	extra := []key.Binding{m.keys.enter, m.keys.add, m.keys.categories, m.keys.favorites}
	if m.view == HomeView {
		extra = append(extra, m.keys.filter)
	} else {
		extra = append(extra, m.keys.back)
	}
	extra = append(extra, m.keys.quit)
	return fmt.Sprintf("%s\n\n%s", m.productList.View(), m.help.ShortHelpView(extra))
}

func (m *Model) renderDetails() string {
	p, ok := catalog.FindProduct(m.state.Products, m.selectedID)
	if !ok {
		return styles.err.Render("Produto não encontrado.") + "\n\n" +
			m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	}

	title := styles.title.Render(p.Name)
	body := fmt.Sprintf("%s\nR$ %.2f\n", catalog.CategoryName(m.state.Categories, p.CategoryID), p.Price)
	if p.Featured {
		body += "Destaque: sim\n"
	} else {
		body += "Destaque: não\n"
	}
	if p.Favorite {
		body += styles.ok.Render("★ Favorito") + "\n"
	}
	if p.Description != nil {
		body += "\n" + *p.Description + "\n"
	}
	if p.ImageURL != nil {
		body += "\n" + styles.help.Render(*p.ImageURL) + "\n"
	}

	if m.confirmDelete {
		prompt := styles.warn.Render("Excluir este produto?")
		return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, body, prompt,
			m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no}))
	}

	helpKeys := []key.Binding{m.keys.favorite, m.keys.edit, m.keys.delete, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n%s", title, body, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderForm() string {
	action := "Criar produto"
	if m.form.editID != "" {
		action = "Editar produto"
	}
	title := styles.title.Render(action)

	cursor := func(field formField) string {
		if m.form.focus == field {
			return "> "
		}
		return "  "
	}
	onOff := func(v bool) string {
		if v {
			return "sim"
		}
		return "não"
	}

	body := fmt.Sprintf("%sNome: %s\n", cursor(fieldName), m.form.inputs[fieldName].View())
	body += fmt.Sprintf("%sPreço: %s\n", cursor(fieldPrice), m.form.inputs[fieldPrice].View())
	body += fmt.Sprintf("%sDescrição: %s\n", cursor(fieldDescription), m.form.inputs[fieldDescription].View())
	body += fmt.Sprintf("%sImagem: %s\n", cursor(fieldImageURL), m.form.inputs[fieldImageURL].View())
	body += fmt.Sprintf("%sCategoria: %s\n", cursor(fieldCategory), m.form.categoryLabel(m.state.Categories))
	body += fmt.Sprintf("%sDestaque: %s\n", cursor(fieldFeatured), onOff(m.form.featured))
	body += fmt.Sprintf("%sFavorito: %s\n", cursor(fieldFavorite), onOff(m.form.favorite))

	var errLine string
	if m.form.errMsg != "" {
		errLine = "\n" + styles.err.Render(m.form.errMsg)
	}

	hint := styles.help.Render("tab: próximo campo • ←/→: alternar • enter: salvar • esc: cancelar")
	return fmt.Sprintf("%s\n%s%s\n\n%s", title, body, errLine, hint)
}

func (m *Model) renderCategories() string {
	if m.addingCategory {
		title := styles.title.Render("Nova categoria")
		hint := styles.help.Render("enter: criar • esc: cancelar")
		return fmt.Sprintf("%s\n%s\n\n%s", title, m.catInput.View(), hint)
	}

	helpKeys := []key.Binding{m.keys.add, m.keys.delete, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.categoryList.View(), m.help.ShortHelpView(helpKeys))
}
