// Package session models the interactive advisor session as a state machine.
package session

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

// Session states.
const (
	StateMenu   = "menu"
	StateReport = "report"
	StateTips   = "tips"
	StateExited = "exited"
)

// Session events.
const (
	EventChooseReport = "choose_report"
	EventChooseTips   = "choose_tips"
	EventBack         = "back"
	EventExit         = "exit"
)

// Machine tracks where the user is in the menu loop.
type Machine struct {
	fsm          *fsm.FSM
	onTransition func(from, to string)
}

// NewMachine returns a Machine in StateMenu. onTransition, if non-nil, is
// called after every state change.
func NewMachine(onTransition func(from, to string)) *Machine {
	m := &Machine{onTransition: onTransition}

	m.fsm = fsm.NewFSM(
		StateMenu,
		fsm.Events{
			{Name: EventChooseReport, Src: []string{StateMenu}, Dst: StateReport},
			{Name: EventChooseTips, Src: []string{StateMenu}, Dst: StateTips},
			{Name: EventBack, Src: []string{StateReport, StateTips}, Dst: StateMenu},
			{Name: EventExit, Src: []string{StateMenu, StateReport, StateTips}, Dst: StateExited},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if m.onTransition != nil {
					m.onTransition(e.Src, e.Dst)
				}
			},
		},
	)

	return m
}

// Current returns the current state.
func (m *Machine) Current() string {
	return m.fsm.Current()
}

// Done reports whether the session has exited.
func (m *Machine) Done() bool {
	return m.fsm.Current() == StateExited
}

// Trigger fires event, returning an error for transitions not allowed from
// the current state.
func (m *Machine) Trigger(ctx context.Context, event string) error {
	if err := m.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("trigger event %s from %s: %w", event, m.fsm.Current(), err)
	}
	return nil
}

// EventForChoice maps a menu choice to its event.
func EventForChoice(choice int) (string, error) {
	switch choice {
	case 1:
		return EventChooseReport, nil
	case 2:
		return EventChooseTips, nil
	case 3:
		return EventExit, nil
	default:
		return "", fmt.Errorf("menu choice %d out of range", choice)
	}
}
