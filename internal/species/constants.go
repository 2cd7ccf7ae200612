package species

// Physical constants. Mass-energy values are CODATA 2018.
const (
	// AMUKilograms converts atomic mass units to kilograms.
	AMUKilograms = 1.66054e-27

	// KeVJoules converts kiloelectronvolts to joules.
	KeVJoules = 1.60218e-16

	// AMUKeV is the energy equivalent of one atomic mass unit in keV.
	AMUKeV = 931494.10242

	// FineStructure is the fine-structure constant α.
	FineStructure = 7.2973525693e-3
)
