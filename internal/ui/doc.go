// Package ui provides the Bubble Tea terminal interface for yourenergy.
//
// # Architecture Overview
//
// Model owns a view.State and nothing else decides what is on screen. Every
// key press becomes a view event; view.Reduce returns the next state and, when
// the new state needs data, a view.Request. The request is turned into a
// tea.Cmd that calls the catalog API and answers with a message carrying the
// request's generation. Messages whose generation no longer matches the state
// are dropped, so a slow page load cannot overwrite the page the user moved
// on to.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling and Run
//   - commands.go: messages and the commands that talk to the API
//   - header.go, content.go: header, quote line, filter tabs, lists, pager bar and footer
//   - modal.go, detail.go, rating.go, subscribe.go: modal dialogs
//   - help.go, keys.go, theme.go, layout.go, strings.go: shared presentation helpers
//
// # Views
//
//   - Home: category tiles for the selected filter, or the exercises of one
//     category with keyword search
//   - Favorites: the saved exercises, paged locally, with removal
//   - Exercise detail: full record, favorite toggle and rating form
//
// # Responsive Layout
//
// Below LayoutCompactWidth columns, or with layout = "compact" in prefs, the
// narrow page sizes from config apply. Crossing the threshold reloads the
// current page.
//
// # Themes
//
// Energy, Dracula and Slate. T cycles them and the choice is saved to prefs.
package ui
