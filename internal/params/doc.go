// Package params defines the parameter schema of the driven rod-and-mass
// pendulum.
//
// The schema is a closed set of float64 fields, each with a document key and
// a default:
//
//   - [Params]: the parameter record, with yaml keys such as g, l_1, Cd_sph
//   - [Default]: a fresh instance with every field at its default
//   - [Params.Set]: the only way to assign a field by name
//   - [Presets]: named starting points for common setups
//
// # Derived Defaults
//
// The rod densities rho_1 and rho_2 default to 1/l_1 and 1/l_2. The ratio is
// taken once over the default lengths; setting l_1 later leaves rho_1 alone.
//
// # Unknown Fields
//
// [Params.Set] and [Params.Get] reject names outside the schema with an
// [UnknownFieldError] carrying the offending name.
package params
