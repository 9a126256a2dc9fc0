package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rshade/ecoadvisor/internal/greenops"
	"github.com/rshade/ecoadvisor/internal/logging"
	"github.com/rshade/ecoadvisor/internal/session"
	"github.com/rshade/ecoadvisor/internal/tui"
)

// MenuSelector returns the user's main menu choice (1-3).
type MenuSelector interface {
	SelectMenu(ctx context.Context) (int, error)
}

// tuiMenu selects through the Bubble Tea menu. The menu and the Prompter read
// the same input. Lines the Prompter has already buffered are answered with the
// text menu, and keys typed ahead while the Bubble Tea menu runs are consumed
// by it and do not reach later prompts.
type tuiMenu struct {
	prompter *Prompter
	in       io.Reader
	out      io.Writer
	styled   bool
}

func (m tuiMenu) SelectMenu(ctx context.Context) (int, error) {
	if m.prompter.Buffered() > 0 {
		return m.prompter.SelectMenu(ctx)
	}
	if err := m.prompter.Flush(); err != nil {
		return 0, err
	}
	return tui.RunMenu(ctx, m.in, m.out, m.styled)
}

// SessionOptions configures an interactive Session.
type SessionOptions struct {
	Styled  bool
	TUIMenu bool
}

// Session is one interactive advisor run.
type Session struct {
	prompter *Prompter
	menu     MenuSelector
	renderer tui.Renderer
	machine  *session.Machine
}

// NewSession builds a Session reading in and writing out.
func NewSession(ctx context.Context, in io.Reader, out io.Writer, opts SessionOptions) *Session {
	renderer := tui.NewRenderer(opts.Styled)
	prompter := NewPrompter(in, out, renderer)

	s := &Session{
		prompter: prompter,
		menu:     prompter,
		renderer: renderer,
	}
	if opts.TUIMenu {
		s.menu = tuiMenu{prompter: prompter, in: in, out: out, styled: opts.Styled}
	}

	log := logging.FromContext(ctx)
	s.machine = session.NewMachine(func(from, to string) {
		log.Debug().Str("from", from).Str("to", to).Msg("session state changed")
	})
	return s
}

// SetMenuSelector replaces how the main menu choice is obtained.
func (s *Session) SetMenuSelector(m MenuSelector) {
	s.menu = m
}

// Run drives the menu loop until the user exits or input ends.
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		if flushErr := s.prompter.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flushing output: %w", flushErr)
		}
	}()

	log := logging.FromContext(ctx)
	s.prompter.Print(s.renderer.Welcome())

	for !s.machine.Done() {
		if err = s.step(ctx); err != nil {
			if errors.Is(err, ErrInputClosed) {
				log.Debug().Str("state", s.machine.Current()).Msg("input closed, ending session")
				s.prompter.Print(s.renderer.Goodbye())
				return nil
			}
			return err
		}
	}

	s.prompter.Print(s.renderer.Goodbye())
	return nil
}

// step handles one menu round trip.
func (s *Session) step(ctx context.Context) error {
	choice, err := s.menu.SelectMenu(ctx)
	if err != nil {
		return err
	}

	event, err := session.EventForChoice(choice)
	if err != nil {
		return err
	}
	if err = s.machine.Trigger(ctx, event); err != nil {
		return err
	}

	switch s.machine.Current() {
	case session.StateReport:
		if err = s.runReport(ctx); err != nil {
			return err
		}
	case session.StateTips:
		s.prompter.Print(s.renderer.Tips(greenops.Tips()))
		if err = s.prompter.WaitForEnter("\n" + tui.TipsDoneText); err != nil {
			return err
		}
	case session.StateExited:
		return nil
	}

	return s.machine.Trigger(ctx, session.EventBack)
}

// runReport collects a profile, then prints its report.
func (s *Session) runReport(ctx context.Context) error {
	profile, err := s.collectProfile(ctx)
	if err != nil {
		return err
	}

	report := greenops.Calculate(profile)
	logging.FromContext(ctx).Info().
		Float64("net_energy_kwh", report.NetEnergyUsageKWh).
		Float64("co2_reduced_tons", report.TotalCO2ReducedTons).
		Msg("report generated")

	s.prompter.Print(s.renderer.Report(report))
	return s.prompter.WaitForEnter(tui.ReportDoneText)
}

func (s *Session) collectProfile(ctx context.Context) (greenops.HouseholdProfile, error) {
	var (
		p   greenops.HouseholdProfile
		err error
	)

	if p.Name, err = s.prompter.ReadLine(ctx, tui.PromptName); err != nil {
		return p, err
	}
	if p.LEDBulbs, err = s.prompter.ReadNonNegativeInt(ctx, tui.PromptLEDBulbs); err != nil {
		return p, err
	}
	if p.ACHoursPerDay, err = s.prompter.ReadNonNegativeInt(ctx, tui.PromptACHours); err != nil {
		return p, err
	}
	if p.UseSmartPlug, err = s.prompter.ReadYesNo(ctx, tui.PromptSmartPlug); err != nil {
		return p, err
	}
	if p.UseEV, err = s.prompter.ReadYesNo(ctx, tui.PromptEV); err != nil {
		return p, err
	}
	if p.KmPerDay, err = s.prompter.ReadNonNegativeInt(ctx, tui.PromptKmPerDay); err != nil {
		return p, err
	}
	return p, nil
}
