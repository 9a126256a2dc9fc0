package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecoadvisor/internal/greenops"
)

// Fixed session text.
const (
	WelcomeText        = "🌍🔋 === Welcome to Smart Living Energy Advisor === 🔋🌍"
	MenuTitle          = "🧭 Main Menu:"
	MenuPrompt         = "👉 Please select an option (1-3): "
	InvalidMenuText    = "❌ Invalid selection. Please enter 1, 2, or 3."
	InvalidNumberText  = "❗ Please enter a valid non-negative number."
	InvalidYesNoText   = "❗ Invalid input. Please enter 1 (Yes) or 0 (No)."
	ReportDoneText     = "✅ Done! Press [Enter] to return to the menu..."
	TipsDoneText       = "✅ Press [Enter] to return to the menu..."
	GoodbyeText        = "👋 Exiting the program. Thank you for contributing to a smarter planet!"
	TipsTitle          = "💡 === Smart Living Tips === 💡"
	reportTitlePattern = "📊 ==== Eco Impact Report for %s ===="
)

// Report flow prompts, in the order they are asked.
const (
	PromptName       = "🧑 Please enter your name: "
	PromptLEDBulbs   = "💡 How many LED bulbs do you use? "
	PromptACHours    = "❄️  How many hours/day do you use air conditioning? "
	PromptSmartPlug  = "🔌 Do you use smart plugs? (1 = Yes, 0 = No): "
	PromptEV         = "🚗 Do you drive an electric vehicle (EV)? (1 = Yes, 0 = No): "
	PromptKmPerDay   = "🛣️  On average, how many km/day do you drive? "
	unitKWh          = "kWh"
	unitTonsPerMonth = "tons/month"
)

// MenuOptions are the labels of the three menu entries.
//
//nolint:gochecknoglobals // Static content.
var MenuOptions = [...]string{
	"Calculate my smart living energy stats",
	"View smart living tips",
	"Exit",
}

//nolint:gochecknoglobals // Static content.
var menuBullets = [...]string{"1️⃣", "2️⃣", "3️⃣"}

// Renderer produces the text of every screen, optionally styled.
type Renderer struct {
	styled bool
}

// NewRenderer returns a Renderer. Unstyled output is plain text.
func NewRenderer(styled bool) Renderer {
	return Renderer{styled: styled}
}

func (r Renderer) render(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// Welcome returns the banner line.
func (r Renderer) Welcome() string {
	return r.render(HeaderStyle, WelcomeText) + "\n"
}

// Menu returns the menu block ending with the selection prompt.
func (r Renderer) Menu() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(r.render(HeaderStyle, MenuTitle))
	sb.WriteString("\n")
	for i, opt := range MenuOptions {
		sb.WriteString(menuBullets[i] + "  " + opt + "\n")
	}
	sb.WriteString(MenuPrompt)
	return sb.String()
}

// Error returns a corrective message line.
func (r Renderer) Error(msg string) string {
	return r.render(ErrorStyle, msg) + "\n"
}

type reportLine struct {
	label string
	value float64
	unit  string
}

// Report returns the eco impact block with values to two decimal places.
func (r Renderer) Report(rep greenops.EnergyReport) string {
	lines := []reportLine{
		{"💡 Lighting energy saved:        ", rep.LightingSavingsKWh, unitKWh},
		{"🔌 Appliance energy saved:       ", rep.ApplianceSavingsKWh, unitKWh},
		{"❄️  AC energy used:              ", rep.ACUsageKWh, unitKWh},
		{"🚗 Transport CO₂ emitted:        ", rep.TransportEmissionsTons, unitTonsPerMonth},
		{"🌿 Total CO₂ reduced:            ", rep.TotalCO2ReducedTons, unitTonsPerMonth},
		{"⚡ Net monthly energy usage:     ", rep.NetEnergyUsageKWh, unitKWh},
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(r.render(HeaderStyle, fmt.Sprintf(reportTitlePattern, rep.Name)))
	sb.WriteString("\n")
	for _, l := range lines {
		sb.WriteString(r.render(LabelStyle, l.label))
		sb.WriteString(r.render(ValueStyle, fmt.Sprintf("%.2f", l.value)))
		sb.WriteString(" " + l.unit + "\n")
	}
	return sb.String()
}

// Equivalency returns the CO2 equivalency line, or "" when there is none.
func (r Renderer) Equivalency(eq greenops.EquivalencyOutput) string {
	if eq.IsEmpty || eq.DisplayText == "" {
		return ""
	}
	line := fmt.Sprintf("🌳 %s (%s kg CO₂)", eq.DisplayText, greenops.FormatFloat(eq.InputKg, 2))
	return r.render(MutedStyle, line) + "\n"
}

// Tips returns the tips block.
func (r Renderer) Tips(tips []string) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(r.render(HeaderStyle, TipsTitle))
	sb.WriteString("\n")
	for _, tip := range tips {
		sb.WriteString(tip + "\n")
	}
	return sb.String()
}

// Goodbye returns the exit message.
func (r Renderer) Goodbye() string {
	return "\n" + r.render(OKStyle, GoodbyeText) + "\n"
}
