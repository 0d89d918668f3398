package view

import (
	"strings"

	"weblarek/internal/event"
)

type ModalData struct {
	Content Fragment
}

// Modal shows one fragment above the page.
type Modal struct {
	events  event.Events
	content Fragment
	open    bool
}

func NewModal(events event.Events) *Modal {
	return &Modal{events: events}
}

func (m *Modal) SetContent(content Fragment) {
	m.content = content
}

func (m *Modal) Content() Fragment {
	return m.content
}

func (m *Modal) IsOpen() bool {
	return m.open
}

func (m *Modal) Open() {
	m.open = true
	m.events.Emit(event.ModalOpen, nil)
}

// Close hides the modal and drops its content.
func (m *Modal) Close() {
	m.open = false
	m.content = nil
	m.events.Emit(event.ModalClose, nil)
}

// Render replaces the content and opens the modal.
func (m *Modal) Render(data ModalData) string {
	m.SetContent(data.Content)
	m.Open()
	return m.String()
}

func (m *Modal) String() string {
	var b strings.Builder
	b.WriteString("+")
	b.WriteString(rule(screenWidth - 2))
	b.WriteString("+\n")
	if m.content != nil {
		for _, line := range strings.Split(m.content.String(), "\n") {
			b.WriteString("| ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("+")
	b.WriteString(rule(screenWidth - 2))
	b.WriteString(`+ type "close" to go back`)
	return b.String()
}

func (m *Modal) HandleCommand(name, _ string) (bool, error) {
	if !m.open || name != "close" {
		return false, nil
	}
	m.Close()
	return true, nil
}

func (m *Modal) Help() []string {
	if !m.open {
		return nil
	}
	return []string{helpLine("close", "close this window")}
}
