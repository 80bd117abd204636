package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"abk/internal/book"
)

// ViewState represents the current view in the contact browser.
type ViewState int

const (
	ContactListView ViewState = iota
	ContactDetailView
)

// Model represents the browser state. It holds a reference to the live
// address book but never mutates it.
type Model struct {
	view        ViewState
	book        *book.AddressBook
	clock       book.Clock
	width       int
	height      int
	contactList list.Model
	selected    *book.Record
	help        help.Model
	keys        keyMap
}

// contactItem wraps a [book.Record] to implement list.Item. The record UID
// keeps items stable when two contacts render identically.
type contactItem struct {
	record *book.Record
}

func (i contactItem) FilterValue() string { return i.record.Name() }
func (i contactItem) Title() string       { return i.record.Name() }
func (i contactItem) Description() string {
	phones := i.record.Phones()
	desc := fmt.Sprintf("%d phone numbers", len(phones))
	if len(phones) == 1 {
		desc = "1 phone number"
	}
	if bd, ok := i.record.Birthday(); ok {
		desc = fmt.Sprintf("%s • born %s", desc, bd)
	}
	return desc
}

// NewModel creates a browser over the provided book. The clock supplies
// "today" for the upcoming-greeting line in the detail view.
func NewModel(b *book.AddressBook, clock book.Clock, title string) *Model {
	records := b.Records()
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = contactItem{record: record}
	}

	contactList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	contactList.Title = title

	return &Model{
		view:        ContactListView,
		book:        b,
		clock:       clock,
		contactList: contactList,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init implements tea.Model. The book is already in memory, so there is
// nothing to fetch.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contactList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ContactListView:
			return m.handleListKeys(msg)
		case ContactDetailView:
			return m.handleDetailKeys(msg)
		}
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.contactList.SelectedItem().(contactItem); ok {
			m.selected = item.record
			m.view = ContactDetailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.selected = nil
		m.view = ContactListView
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.view == ContactDetailView && m.selected != nil {
		return m.detailView()
	}
	if m.book.Len() == 0 {
		return styles.muted.Render("No contacts found") + "\n\n" + m.help.View(m.keys)
	}
	return m.contactList.View()
}

// detailView renders one contact: phones in stored order, the birthday,
// and the congratulation date when it lands inside the upcoming window.
func (m *Model) detailView() string {
	var sb strings.Builder
	sb.WriteString(styles.title.Render(m.selected.Name()))
	sb.WriteString("\n")

	phones := m.selected.Phones()
	if len(phones) == 0 {
		sb.WriteString(styles.muted.Render("no phone numbers") + "\n")
	}
	for _, p := range phones {
		sb.WriteString("  " + styles.value.Render(p.String()) + "\n")
	}

	if bd, ok := m.selected.Birthday(); ok {
		sb.WriteString(fmt.Sprintf("\nBirthday: %s\n", styles.value.Render(bd.String())))
		if due, ok := m.upcomingGreeting(m.selected.Name()); ok {
			sb.WriteString(fmt.Sprintf("Congratulate on: %s\n", styles.value.Render(due)))
		}
	} else {
		sb.WriteString("\n" + styles.muted.Render("no birthday recorded") + "\n")
	}

	sb.WriteString("\n" + m.help.View(m.keys))
	return sb.String()
}

// upcomingGreeting looks name up in this week's greeting schedule.
func (m *Model) upcomingGreeting(name string) (string, bool) {
	for _, g := range m.book.UpcomingBirthdays(m.clock.Now()) {
		if g.Name == name {
			return g.CongratulationDate.Format(book.BirthdayLayout), true
		}
	}
	return "", false
}
