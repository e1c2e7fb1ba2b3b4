// Package ui implements the interactive catalog screens using bubbletea's Elm architecture.
//
// The TUI mirrors the screens of the catalog app:
//  1. [HomeView] : Browse products with search ("/") and a category filter (tab)
//  2. [FavoritesView] : Favorites-only listing with the same search
//  3. [DetailsView] : Single product with favorite/edit/delete actions
//  4. [FormView] : Create or edit a product
//  5. [CategoriesView] : Manage categories
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. State
// changes flow from the catalog store through a subscription channel, so every
// mutation re-renders whichever screen is active.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
