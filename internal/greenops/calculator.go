package greenops

import (
	"math"

	"github.com/rs/zerolog/log"
)

// LightingSavings returns the monthly kWh saved by the given number of LED bulbs.
func LightingSavings(bulbs int) float64 {
	return float64(bulbs) * LEDSavingsPerBulbKWh
}

// ACUsage returns the monthly kWh consumed by running air conditioning hoursPerDay.
func ACUsage(hoursPerDay int) float64 {
	return float64(hoursPerDay) * (ACConsumptionPerHourKWh * DaysPerMonth)
}

// ApplianceSavings returns the flat monthly credit for smart plug use.
func ApplianceSavings(useSmartPlug bool) float64 {
	if useSmartPlug {
		return SmartPlugSavingsKWh
	}
	return 0
}

// EmissionPerKm returns the per-km emission factor for the vehicle type.
func EmissionPerKm(useEV bool) float64 {
	if useEV {
		return EVEmissionPerKm
	}
	return ICEEmissionPerKm
}

// TransportEmissions returns tons CO2 per month for kmPerDay of driving.
func TransportEmissions(useEV bool, kmPerDay int) float64 {
	return EmissionPerKm(useEV) * float64(kmPerDay) * DaysPerMonth
}

// TotalCO2Reduced returns tons CO2 avoided per month by the given kWh savings.
func TotalCO2Reduced(lightingKWh, applianceKWh float64) float64 {
	return (lightingKWh + applianceKWh) * CO2PerKWh
}

// NetEnergyUsage returns AC usage minus savings, floored at zero.
func NetEnergyUsage(acKWh, lightingKWh, applianceKWh float64) float64 {
	return math.Max(0, acKWh-lightingKWh-applianceKWh)
}

// Calculate derives the monthly EnergyReport for a profile.
//
// The profile is assumed to be validated; callers holding unchecked input
// should call Validate first. Equivalency is left empty when the CO2 reduced
// is below MinEquivalencyThresholdKg.
func Calculate(p HouseholdProfile) EnergyReport {
	lighting := LightingSavings(p.LEDBulbs)
	appliance := ApplianceSavings(p.UseSmartPlug)
	ac := ACUsage(p.ACHoursPerDay)
	reduced := TotalCO2Reduced(lighting, appliance)

	eq, err := CalculateEquivalency(CarbonInput{Value: reduced, Unit: "t"})
	if err != nil {
		log.Warn().Err(err).Float64("co2_tons", reduced).Msg("equivalency calculation failed")
	}

	return EnergyReport{
		Name:                   p.Name,
		LightingSavingsKWh:     lighting,
		ApplianceSavingsKWh:    appliance,
		ACUsageKWh:             ac,
		TransportEmissionsTons: TransportEmissions(p.UseEV, p.KmPerDay),
		TotalCO2ReducedTons:    reduced,
		NetEnergyUsageKWh:      NetEnergyUsage(ac, lighting, appliance),
		Equivalency:            eq,
	}
}
