package params

import (
	"fmt"
	"sort"
)

// StandardGravity is the conventional value of g in m/s^2.
const StandardGravity = 9.80665

const (
	DefaultL1     = 1.0
	DefaultL2     = 1.0
	DefaultLB     = 0.2
	DefaultMJ     = 1.0
	DefaultMP     = 1.0
	DefaultMB     = 0.5
	DefaultMD     = 10.0
	DefaultRA     = 0.1
	DefaultRhoAir = 1.225
	DefaultCdCyl  = 1.1
	DefaultCdSph  = 0.47
	DefaultCdDisk = 1.17
)

// Params holds the physical parameters of the driven rod-and-mass pendulum.
// All lengths are in metres, masses in kilograms.
type Params struct {
	G float64 `yaml:"g"`

	// rods
	L1 float64 `yaml:"l_1"`
	L2 float64 `yaml:"l_2"`
	LB float64 `yaml:"l_b"`

	// initial angle of rod 2 relative to rod 1
	Theta2InitOffset float64 `yaml:"theta_2_init_offset"`

	// point masses
	MJ float64 `yaml:"m_j"`
	MP float64 `yaml:"m_p"`
	MB float64 `yaml:"m_b"`

	// linear densities of the rods
	Rho1 float64 `yaml:"rho_1"`
	Rho2 float64 `yaml:"rho_2"`

	IExtra float64 `yaml:"I_extra"`

	// driving weight and axle
	MD float64 `yaml:"m_d"`
	RA float64 `yaml:"r_a"`

	// cross-section radii of rods and masses
	R1 float64 `yaml:"r_1"`
	R2 float64 `yaml:"r_2"`
	RJ float64 `yaml:"r_j"`
	RP float64 `yaml:"r_p"`
	RB float64 `yaml:"r_b"`
	RD float64 `yaml:"r_d"`

	// drag
	RhoAir float64 `yaml:"rho_air"`
	CdCyl  float64 `yaml:"Cd_cyl"`
	CdSph  float64 `yaml:"Cd_sph"`
	CdDisk float64 `yaml:"Cd_disk"`
}

// Field describes one entry of the schema.
type Field struct {
	Name    string
	Default float64
	ref     func(*Params) *float64
}

// fields is the canonical table, in declaration order. The rod densities are
// derived from the default lengths here and stored as plain values.
var fields = []Field{
	{"g", StandardGravity, func(p *Params) *float64 { return &p.G }},
	{"l_1", DefaultL1, func(p *Params) *float64 { return &p.L1 }},
	{"l_2", DefaultL2, func(p *Params) *float64 { return &p.L2 }},
	{"l_b", DefaultLB, func(p *Params) *float64 { return &p.LB }},
	{"theta_2_init_offset", 0, func(p *Params) *float64 { return &p.Theta2InitOffset }},
	{"m_j", DefaultMJ, func(p *Params) *float64 { return &p.MJ }},
	{"m_p", DefaultMP, func(p *Params) *float64 { return &p.MP }},
	{"m_b", DefaultMB, func(p *Params) *float64 { return &p.MB }},
	{"rho_1", 1.0 / DefaultL1, func(p *Params) *float64 { return &p.Rho1 }},
	{"rho_2", 1.0 / DefaultL2, func(p *Params) *float64 { return &p.Rho2 }},
	{"I_extra", 0, func(p *Params) *float64 { return &p.IExtra }},
	{"m_d", DefaultMD, func(p *Params) *float64 { return &p.MD }},
	{"r_a", DefaultRA, func(p *Params) *float64 { return &p.RA }},
	{"r_1", 0, func(p *Params) *float64 { return &p.R1 }},
	{"r_2", 0, func(p *Params) *float64 { return &p.R2 }},
	{"r_j", 0, func(p *Params) *float64 { return &p.RJ }},
	{"r_p", 0, func(p *Params) *float64 { return &p.RP }},
	{"r_b", 0, func(p *Params) *float64 { return &p.RB }},
	{"r_d", 0, func(p *Params) *float64 { return &p.RD }},
	{"rho_air", DefaultRhoAir, func(p *Params) *float64 { return &p.RhoAir }},
	{"Cd_cyl", DefaultCdCyl, func(p *Params) *float64 { return &p.CdCyl }},
	{"Cd_sph", DefaultCdSph, func(p *Params) *float64 { return &p.CdSph }},
	{"Cd_disk", DefaultCdDisk, func(p *Params) *float64 { return &p.CdDisk }},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[f.Name] = i
	}
	return m
}()

// UnknownFieldError reports a key that is not part of the schema.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("params: unknown field %q", e.Name)
}

// Default returns a new instance with every field at its default.
func Default() *Params {
	p := &Params{}
	for _, f := range fields {
		*f.ref(p) = f.Default
	}
	return p
}

// Fields returns the schema in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldNames returns the recognized field names, sorted.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// IsField reports whether name is a recognized field.
func IsField(name string) bool {
	_, ok := byName[name]
	return ok
}

// Set assigns value to the named field. Unknown names leave p untouched and
// return an *UnknownFieldError.
func (p *Params) Set(name string, value float64) error {
	i, ok := byName[name]
	if !ok {
		return &UnknownFieldError{Name: name}
	}
	*fields[i].ref(p) = value
	return nil
}

// Get returns the named field, or an *UnknownFieldError.
func (p *Params) Get(name string) (float64, error) {
	i, ok := byName[name]
	if !ok {
		return 0, &UnknownFieldError{Name: name}
	}
	return *fields[i].ref(p), nil
}

// Values returns every declared field keyed by name.
func (p *Params) Values() map[string]float64 {
	m := make(map[string]float64, len(fields))
	for _, f := range fields {
		m[f.Name] = *f.ref(p)
	}
	return m
}

// Overrides returns the fields whose value differs from the default.
func (p *Params) Overrides() map[string]float64 {
	m := make(map[string]float64)
	for _, f := range fields {
		if v := *f.ref(p); v != f.Default {
			m[f.Name] = v
		}
	}
	return m
}

// Clone returns an independent copy of p.
func (p *Params) Clone() *Params {
	c := *p
	return &c
}
