// Package greenops computes household energy savings, usage and CO2 figures.
//
// The formulas are simple linear models over a 30-day month. Carbon reductions
// can additionally be expressed as EPA equivalencies such as "miles driven".
package greenops

import "fmt"

// HouseholdProfile holds the energy habits a user reports.
type HouseholdProfile struct {
	Name          string `json:"name"`
	LEDBulbs      int    `json:"led_bulbs"`
	ACHoursPerDay int    `json:"ac_hours_per_day"`
	UseSmartPlug  bool   `json:"use_smart_plug"`
	UseEV         bool   `json:"use_ev"`
	KmPerDay      int    `json:"km_per_day"`
}

// Validate rejects negative counts.
func (p HouseholdProfile) Validate() error {
	switch {
	case p.LEDBulbs < 0:
		return fmt.Errorf("led bulbs %d: %w", p.LEDBulbs, ErrNegativeValue)
	case p.ACHoursPerDay < 0:
		return fmt.Errorf("ac hours per day %d: %w", p.ACHoursPerDay, ErrNegativeValue)
	case p.KmPerDay < 0:
		return fmt.Errorf("km per day %d: %w", p.KmPerDay, ErrNegativeValue)
	}
	return nil
}

// EnergyReport is the monthly impact derived from a HouseholdProfile.
type EnergyReport struct {
	Name string `json:"name"`

	LightingSavingsKWh  float64 `json:"lighting_savings_kwh"`
	ApplianceSavingsKWh float64 `json:"appliance_savings_kwh"`
	ACUsageKWh          float64 `json:"ac_usage_kwh"`

	TransportEmissionsTons float64 `json:"transport_emissions_tons_per_month"`
	TotalCO2ReducedTons    float64 `json:"total_co2_reduced_tons_per_month"`

	// NetEnergyUsageKWh is never negative.
	NetEnergyUsageKWh float64 `json:"net_energy_usage_kwh"`

	Equivalency EquivalencyOutput `json:"equivalency"`
}

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput represents carbon emission data for equivalency calculation.
type CarbonInput struct {
	Value float64 `json:"value"`

	// Unit is one of g, kg, t, lb and their CO2e variants.
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	InputKg float64             `json:"input_kg"`
	Results []EquivalencyResult `json:"results,omitempty"`

	// DisplayText is the full prose format.
	// Example: "Equivalent to driving ~647 miles or charging ~15,109 smartphones"
	DisplayText string `json:"display_text,omitempty"`

	IsEmpty bool `json:"is_empty"`
}
