// Package ui implements a read-only terminal interface over the address
// book using bubbletea's Elm architecture.
//
// The browser has two views:
//  1. [ContactListView] : scroll and filter the contacts in the book
//  2. [ContactDetailView] : one contact's phones, birthday, and the next
//     congratulation date when it falls inside the upcoming window
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Editing still happens through the REPL; the browser never mutates the
// book it renders.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
