package appstate

import "weblarek/internal/event"

// Model is embedded by state holders that announce their changes on the bus.
type Model struct {
	events event.Events
}

func NewModel(events event.Events) Model {
	return Model{events: events}
}

// EmitChanges tells subscribers that the model changed.
func (m Model) EmitChanges(name string, payload any) {
	m.events.Emit(name, payload)
}
