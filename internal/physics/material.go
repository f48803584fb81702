package physics

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidElasticity = errors.New("elasticity must be >= 0")
	ErrInvalidDensity    = errors.New("density must be > 0")
	ErrInvalidFriction   = errors.New("friction must be within [0, 1]")
	ErrUnknownMaterial   = errors.New("unknown material")
	ErrDuplicateMaterial = errors.New("material already registered")
)

// Material is the physical profile of a body. Values are read-only once built and
// are copied freely between bodies.
type Material struct {
	Name       string
	Elasticity float64 // bounce factor applied on arena and static contacts
	Density    float64 // scales mass in the integrator and in impulses
	Friction   float64 // velocity factor applied on contact, 1 = no loss
}

// Built-in materials.
var (
	Default   = Material{Name: "default", Elasticity: 0.0, Density: 1.0, Friction: 1.0}
	Air       = Material{Name: "air", Elasticity: 0.1, Density: 0.01, Friction: 1.0}
	Rubber    = Material{Name: "rubber", Elasticity: 0.90, Density: 0.7, Friction: 0.98}
	SuperBall = Material{Name: "superBall", Elasticity: 0.98, Density: 0.7, Friction: 0.98}
	Steel     = Material{Name: "steel", Elasticity: 0.25, Density: 1.2, Friction: 0.96}
	Floor     = Material{Name: "floor", Elasticity: 0.02, Density: 0.6, Friction: 0.70}
)

// NewMaterial validates and returns a material.
func NewMaterial(name string, elasticity, density, friction float64) (Material, error) {
	m := Material{Name: name, Elasticity: elasticity, Density: density, Friction: friction}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// Validate checks the ranges of every field.
func (m Material) Validate() error {
	if !(m.Elasticity >= 0) {
		return fmt.Errorf("material %q: %w (got %v)", m.Name, ErrInvalidElasticity, m.Elasticity)
	}
	if !(m.Density > 0) {
		return fmt.Errorf("material %q: %w (got %v)", m.Name, ErrInvalidDensity, m.Density)
	}
	if !(m.Friction >= 0 && m.Friction <= 1) {
		return fmt.Errorf("material %q: %w (got %v)", m.Name, ErrInvalidFriction, m.Friction)
	}
	return nil
}

// MaterialRegistry maps material names to profiles. It starts with the built-in presets.
type MaterialRegistry struct {
	byName map[string]Material
}

// NewMaterialRegistry returns a registry holding the built-in materials.
func NewMaterialRegistry() *MaterialRegistry {
	r := &MaterialRegistry{byName: make(map[string]Material)}
	for _, m := range []Material{Default, Air, Rubber, SuperBall, Steel, Floor} {
		r.byName[m.Name] = m
	}
	return r
}

// Register adds a validated material. Names are unique; presets cannot be replaced.
func (r *MaterialRegistry) Register(m Material) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if _, ok := r.byName[m.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMaterial, m.Name)
	}
	r.byName[m.Name] = m
	return nil
}

// Lookup returns the material registered under name.
func (r *MaterialRegistry) Lookup(name string) (Material, error) {
	m, ok := r.byName[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// Names returns every registered name, sorted.
func (r *MaterialRegistry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
