package spc

import "fmt"

// AxisUnit is the unit code for the X, Z and W axes (fxtype/fztype/fwtype).
type AxisUnit uint8

const (
	UnitArbitrary           AxisUnit = 0
	UnitWavenumber          AxisUnit = 1 // cm-1
	UnitMicrometers         AxisUnit = 2
	UnitNanometers          AxisUnit = 3
	UnitSeconds             AxisUnit = 4
	UnitMinutes             AxisUnit = 5
	UnitHertz               AxisUnit = 6
	UnitKilohertz           AxisUnit = 7
	UnitMegahertz           AxisUnit = 8
	UnitMass                AxisUnit = 9 // M/z
	UnitPartsPerMillion     AxisUnit = 10
	UnitDays                AxisUnit = 11
	UnitYears               AxisUnit = 12
	UnitRamanShift          AxisUnit = 13 // cm-1
	UnitElectronVolt        AxisUnit = 14
	UnitTextLabel           AxisUnit = 15 // labels in the axis text field
	UnitDiodeNumber         AxisUnit = 16
	UnitChannel             AxisUnit = 17
	UnitDegrees             AxisUnit = 18
	UnitTemperatureF        AxisUnit = 19
	UnitTemperatureC        AxisUnit = 20
	UnitTemperatureK        AxisUnit = 21
	UnitDataPoints          AxisUnit = 22
	UnitMilliseconds        AxisUnit = 23
	UnitMicroseconds        AxisUnit = 24
	UnitNanoseconds         AxisUnit = 25
	UnitGigahertz           AxisUnit = 26
	UnitCentimeters         AxisUnit = 27
	UnitMeters              AxisUnit = 28
	UnitMillimeters         AxisUnit = 29
	UnitHours               AxisUnit = 30
	UnitDoubleInterferogram AxisUnit = 255
)

var axisUnitNames = map[AxisUnit]string{
	UnitArbitrary:           "Arbitrary",
	UnitWavenumber:          "Wavenumber (cm-1)",
	UnitMicrometers:         "Micrometers (um)",
	UnitNanometers:          "Nanometers (nm)",
	UnitSeconds:             "Seconds",
	UnitMinutes:             "Minutes",
	UnitHertz:               "Hertz (Hz)",
	UnitKilohertz:           "Kilohertz (KHz)",
	UnitMegahertz:           "Megahertz (MHz)",
	UnitMass:                "Mass (M/z)",
	UnitPartsPerMillion:     "Parts per million (PPM)",
	UnitDays:                "Days",
	UnitYears:               "Years",
	UnitRamanShift:          "Raman shift (cm-1)",
	UnitElectronVolt:        "Electron volt (eV)",
	UnitTextLabel:           "Text label",
	UnitDiodeNumber:         "Diode number",
	UnitChannel:             "Channel",
	UnitDegrees:             "Degrees",
	UnitTemperatureF:        "Temperature (F)",
	UnitTemperatureC:        "Temperature (C)",
	UnitTemperatureK:        "Temperature (K)",
	UnitDataPoints:          "Data points",
	UnitMilliseconds:        "Milliseconds (ms)",
	UnitMicroseconds:        "Microseconds (us)",
	UnitNanoseconds:         "Nanoseconds (ns)",
	UnitGigahertz:           "Gigahertz (GHz)",
	UnitCentimeters:         "Centimeters (cm)",
	UnitMeters:              "Meters (m)",
	UnitMillimeters:         "Millimeters (mm)",
	UnitHours:               "Hours",
	UnitDoubleInterferogram: "Double interferogram",
}

// newAxisUnit validates an X/Z/W unit code byte.
func newAxisUnit(v uint8) (AxisUnit, error) {
	u := AxisUnit(v)
	if _, ok := axisUnitNames[u]; !ok {
		return 0, fmt.Errorf("%w: axis unit %d", ErrInvalidUnitCode, v)
	}
	return u, nil
}

// String returns the documented unit label.
func (u AxisUnit) String() string {
	if name, ok := axisUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("AxisUnit(%d)", uint8(u))
}

// YUnit is the unit code for the Y axis (fytype). Values below 128 exhibit
// positive peaks; 128 and above exhibit valleys.
type YUnit uint8

const (
	YUnitArbitraryIntensity YUnit = 0
	YUnitInterferogram      YUnit = 1
	YUnitAbsorbance         YUnit = 2
	YUnitKubelkaMunk        YUnit = 3
	YUnitCounts             YUnit = 4
	YUnitVolts              YUnit = 5
	YUnitDegrees            YUnit = 6
	YUnitMilliamps          YUnit = 7
	YUnitMillimeters        YUnit = 8
	YUnitMillivolts         YUnit = 9
	YUnitLogInvR            YUnit = 10
	YUnitPercent            YUnit = 11
	YUnitIntensity          YUnit = 12
	YUnitRelativeIntensity  YUnit = 13
	YUnitEnergy             YUnit = 14
	YUnitDecibel            YUnit = 15
	YUnitTemperatureF       YUnit = 19
	YUnitTemperatureC       YUnit = 20
	YUnitTemperatureK       YUnit = 21
	YUnitRefractiveIndexN   YUnit = 22
	YUnitExtinctionCoeff    YUnit = 23
	YUnitReal               YUnit = 24
	YUnitImaginary          YUnit = 25
	YUnitComplex            YUnit = 26
	YUnitTransmission       YUnit = 128
	YUnitReflectance        YUnit = 129
	YUnitValleyArbitrary    YUnit = 130
	YUnitEmission           YUnit = 131
)

var yUnitNames = map[YUnit]string{
	YUnitArbitraryIntensity: "Arbitrary intensity",
	YUnitInterferogram:      "Interferogram",
	YUnitAbsorbance:         "Absorbance",
	YUnitKubelkaMunk:        "Kubelka-Munk",
	YUnitCounts:             "Counts",
	YUnitVolts:              "Volts",
	YUnitDegrees:            "Degrees",
	YUnitMilliamps:          "Milliamps",
	YUnitMillimeters:        "Millimeters",
	YUnitMillivolts:         "Millivolts",
	YUnitLogInvR:            "Log(1/R)",
	YUnitPercent:            "Percent",
	YUnitIntensity:          "Intensity",
	YUnitRelativeIntensity:  "Relative intensity",
	YUnitEnergy:             "Energy",
	YUnitDecibel:            "Decibel",
	YUnitTemperatureF:       "Temperature (F)",
	YUnitTemperatureC:       "Temperature (C)",
	YUnitTemperatureK:       "Temperature (K)",
	YUnitRefractiveIndexN:   "Refractive index [N]",
	YUnitExtinctionCoeff:    "Extinction coefficient [K]",
	YUnitReal:               "Real",
	YUnitImaginary:          "Imaginary",
	YUnitComplex:            "Complex",
	YUnitTransmission:       "Transmission",
	YUnitReflectance:        "Reflectance",
	YUnitValleyArbitrary:    "Arbitrary or single beam with valley peaks",
	YUnitEmission:           "Emission",
}

// newYUnit validates a Y unit code byte.
func newYUnit(v uint8) (YUnit, error) {
	u := YUnit(v)
	if _, ok := yUnitNames[u]; !ok {
		return 0, fmt.Errorf("%w: y unit %d", ErrInvalidUnitCode, v)
	}
	return u, nil
}

// String returns the documented unit label.
func (u YUnit) String() string {
	if name, ok := yUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("YUnit(%d)", uint8(u))
}

// Technique is the instrument-technique code in a new-generation header.
// Code 6 is unassigned in the format.
type Technique uint8

const (
	TechniqueGeneral         Technique = 0
	TechniqueGC              Technique = 1
	TechniqueChromatogram    Technique = 2
	TechniqueHPLC            Technique = 3
	TechniqueFTIR            Technique = 4 // FT-IR, FT-NIR or FT-Raman
	TechniqueNIR             Technique = 5
	TechniqueUVVis           Technique = 7
	TechniqueXRayDiffraction Technique = 8
	TechniqueMassSpec        Technique = 9
	TechniqueNMR             Technique = 10
	TechniqueRaman           Technique = 11
	TechniqueFluorescence    Technique = 12
	TechniqueAtomic          Technique = 13
	TechniqueDiodeArray      Technique = 14
)

var techniqueNames = map[Technique]string{
	TechniqueGeneral:         "General",
	TechniqueGC:              "Gas chromatogram",
	TechniqueChromatogram:    "General chromatogram",
	TechniqueHPLC:            "HPLC chromatogram",
	TechniqueFTIR:            "FT-IR/FT-NIR/FT-Raman",
	TechniqueNIR:             "NIR spectrum",
	TechniqueUVVis:           "UV-Vis spectrum",
	TechniqueXRayDiffraction: "X-ray diffraction",
	TechniqueMassSpec:        "Mass spectrum",
	TechniqueNMR:             "NMR spectrum",
	TechniqueRaman:           "Raman spectrum",
	TechniqueFluorescence:    "Fluorescence spectrum",
	TechniqueAtomic:          "Atomic spectrum",
	TechniqueDiodeArray:      "Chromatography diode array",
}

// newTechnique validates an instrument-technique code byte.
func newTechnique(v uint8) (Technique, error) {
	t := Technique(v)
	if _, ok := techniqueNames[t]; !ok {
		return 0, fmt.Errorf("%w: technique %d", ErrInvalidTechnique, v)
	}
	return t, nil
}

// String returns the documented technique name.
func (t Technique) String() string {
	if name, ok := techniqueNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Technique(%d)", uint8(t))
}
