package params

import "sort"

// Presets holds named parameter sets, each built from the defaults.
var Presets = map[string]*Params{
	"default": Default(),
	"ideal":   withValues(map[string]float64{"rho_air": 0}),
	"thick": withValues(map[string]float64{
		"r_1": 0.01, "r_2": 0.01,
		"r_j": 0.03, "r_p": 0.03, "r_b": 0.02, "r_d": 0.05,
	}),
	"heavy_tip": withValues(map[string]float64{"m_p": 5.0, "m_d": 25.0}),
	"long_arm": withValues(map[string]float64{
		"l_1": 1.5, "l_2": 2.0,
		"rho_1": 1.0 / 1.5, "rho_2": 1.0 / 2.0,
	}),
}

func withValues(values map[string]float64) *Params {
	p := Default()
	for name, v := range values {
		if err := p.Set(name, v); err != nil {
			panic(err)
		}
	}
	return p
}

// GetPreset returns a copy of the named preset, or nil if there is none.
func GetPreset(name string) *Params {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
