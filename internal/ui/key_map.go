package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	back       key.Binding
	add        key.Binding
	delete     key.Binding
	favorite   key.Binding
	edit       key.Binding
	categories key.Binding
	favorites  key.Binding
	filter     key.Binding
	yes        key.Binding
	no         key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		favorite:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		categories: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "categories")),
		favorites:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "favorites")),
		filter:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category filter")),
		yes:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.add, k.delete, k.favorite, k.edit},
		{k.categories, k.favorites, k.filter},
		{k.back, k.quit},
	}
}
