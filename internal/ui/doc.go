// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI previews a shuffled playlist before committing it to disk: the
// track list shows the current order, `s` reshuffles, `w` writes the
// playlist through the save callback, and `q` quits without writing.
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Keyboard navigation uses vim-style bindings (j/k, s, w, q) with contextual
// help displayed via charmbracelet/bubbles/help.
package ui
