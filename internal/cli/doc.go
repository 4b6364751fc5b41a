// Package cli provides the terminal user interface components for focset.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Form: the part entry form, with a filterable part picker per slot
//     and a file browser for the game executable
//   - Confirm: the Yes/No dialog shown for a part warning
//
// [TeaConfirmer] and [LineConfirmer] implement [core.Confirmer], the
// first with the dialog and the second with a plain y/N prompt for
// terminals where a full screen program is unwanted.
//
// # Styling
//
// Common styles are defined as package-level variables in styles.go.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
