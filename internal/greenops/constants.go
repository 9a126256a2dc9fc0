package greenops

// Household energy factors used by the report calculator.
// These are fixed at compile time and intentionally not exposed through config.
const (
	// LEDWattageSavingsKW is the power saved per LED bulb versus an incandescent baseline.
	LEDWattageSavingsKW = 0.08

	// LEDHoursPerDay is the assumed daily burn time of a bulb.
	LEDHoursPerDay = 5

	// DaysPerMonth is the billing month length used by every monthly figure.
	DaysPerMonth = 30

	// LEDSavingsPerBulbKWh is the monthly energy saved by one LED bulb (12 kWh).
	LEDSavingsPerBulbKWh = LEDWattageSavingsKW * LEDHoursPerDay * DaysPerMonth

	// ACConsumptionPerHourKWh is the energy drawn by an air conditioner per running hour.
	ACConsumptionPerHourKWh = 1.2

	// SmartPlugSavingsKWh is the flat monthly saving credited for smart plug use.
	SmartPlugSavingsKWh = 15.0

	// EVEmissionPerKm is tons CO2 per km for an electric vehicle.
	EVEmissionPerKm = 0.04

	// ICEEmissionPerKm is tons CO2 per km for a combustion vehicle.
	ICEEmissionPerKm = 0.18

	// CO2PerKWh is tons CO2 avoided per kWh saved.
	CO2PerKWh = 0.92 / 1000
)

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// To calculate the equivalency, divide the carbon value by the factor:
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822
)

// Unit Conversion Constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display Threshold Constants control when equivalencies are shown.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold is the threshold for "~X.X million" display.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is the threshold for billion-scale display.
	BillionThreshold = 1_000_000_000
)
