package greenops

// tips is the ordered list shown by the tips flow.
//
//nolint:gochecknoglobals // Static content.
var tips = [...]string{
	"🌱 Switch to LED lighting to cut energy waste.",
	"🔌 Use smart plugs to stop vampire power loss.",
	"🌬️ Set AC to 25°C and clean filters regularly.",
	"🚴‍♀️ Use EVs, walk, or cycle whenever possible.",
	"📴 Unplug unused electronics or put on a timer.",
	"🏠 Invest in energy-efficient home insulation.",
}

// Tips returns a copy of the smart living tips in display order.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips[:])
	return out
}
