package physics

var defaultConstants = []Constant{
	{Symbol: "c", Value: 299792458, Unit: "m/s", Description: "Speed of light in vacuum"},
	{Symbol: "h", Value: 6.62607015e-34, Unit: "J⋅s", Description: "Planck constant"},
	{Symbol: "hbar", Value: 1.054571817e-34, Unit: "J⋅s", Description: "Reduced Planck constant"},
	{Symbol: "e", Value: 1.602176634e-19, Unit: "C", Description: "Elementary charge"},
	{Symbol: "me", Value: 9.1093837015e-31, Unit: "kg", Description: "Electron mass"},
	{Symbol: "mp", Value: 1.67262192369e-27, Unit: "kg", Description: "Proton mass"},
	{Symbol: "mn", Value: 1.67492749804e-27, Unit: "kg", Description: "Neutron mass"},
	{Symbol: "u", Value: 1.66053906660e-27, Unit: "kg", Description: "Atomic mass unit"},

	{Symbol: "G", Value: 6.67430e-11, Unit: "m³/kg⋅s²", Description: "Gravitational constant"},
	{Symbol: "k", Value: 1.380649e-23, Unit: "J/K", Description: "Boltzmann constant"},
	{Symbol: "NA", Value: 6.02214076e23, Unit: "1/mol", Description: "Avogadro constant"},
	{Symbol: "R", Value: 8.314462618, Unit: "J/mol⋅K", Description: "Gas constant"},

	{Symbol: "eps0", Value: 8.8541878128e-12, Unit: "F/m", Description: "Vacuum permittivity"},
	{Symbol: "mu0", Value: 1.25663706212e-6, Unit: "H/m", Description: "Vacuum permeability"},
	{Symbol: "ke", Value: 8.9875517923e9, Unit: "N⋅m²/C²", Description: "Coulomb constant"},

	{Symbol: "g", Value: 9.80665, Unit: "m/s²", Description: "Standard gravity"},
	{Symbol: "atm", Value: 101325, Unit: "Pa", Description: "Standard atmosphere"},
	{Symbol: "sigma", Value: 5.670374419e-8, Unit: "W/m²⋅K⁴", Description: "Stefan-Boltzmann constant"},

	{Symbol: "pi", Value: 3.141592653589793, Unit: "dimensionless", Description: "Pi"},
	{Symbol: "euler", Value: 2.718281828459045, Unit: "dimensionless", Description: "Euler's number"},
}

var defaultFormulas = []Formula{
	{
		Name:        "kinetic_energy",
		Expression:  "KE = (1/2) * m * v²",
		Variables:   []Variable{{"m", "mass (kg)"}, {"v", "velocity (m/s)"}},
		Description: "Kinetic energy of an object",
	},
	{
		Name:        "potential_energy",
		Expression:  "PE = m * g * h",
		Variables:   []Variable{{"m", "mass (kg)"}, {"g", "gravity (m/s²)"}, {"h", "height (m)"}},
		Description: "Gravitational potential energy",
	},
	{
		Name:        "force",
		Expression:  "F = m * a",
		Variables:   []Variable{{"m", "mass (kg)"}, {"a", "acceleration (m/s²)"}},
		Description: "Newton's second law",
	},
	{
		Name:        "gravitational_force",
		Expression:  "F = G * m1 * m2 / r²",
		Variables:   []Variable{{"G", "gravitational constant"}, {"m1", "mass 1 (kg)"}, {"m2", "mass 2 (kg)"}, {"r", "distance (m)"}},
		Description: "Newton's law of universal gravitation",
	},
	{
		Name:        "coulomb_law",
		Expression:  "F = k * q1 * q2 / r²",
		Variables:   []Variable{{"k", "Coulomb constant"}, {"q1", "charge 1 (C)"}, {"q2", "charge 2 (C)"}, {"r", "distance (m)"}},
		Description: "Coulomb's law for electrostatic force",
	},
	{
		Name:        "ohms_law",
		Expression:  "V = I * R",
		Variables:   []Variable{{"V", "voltage (V)"}, {"I", "current (A)"}, {"R", "resistance (Ω)"}},
		Description: "Ohm's law",
	},
	{
		Name:        "wave_equation",
		Expression:  "v = f * λ",
		Variables:   []Variable{{"v", "wave speed (m/s)"}, {"f", "frequency (Hz)"}, {"λ", "wavelength (m)"}},
		Description: "Wave equation",
	},
	{
		Name:        "ideal_gas",
		Expression:  "PV = nRT",
		Variables:   []Variable{{"P", "pressure (Pa)"}, {"V", "volume (m³)"}, {"n", "moles"}, {"R", "gas constant"}, {"T", "temperature (K)"}},
		Description: "Ideal gas law",
	},
}
