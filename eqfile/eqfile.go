// Package eqfile reads and writes equations as small YAML documents:
//
//	name: rose
//	mode: r
//	r: sin(4t)
//	range: {start: 0, end: 6.2832, step: 0.01}
//	vars: {a: 2}
//
// Every field is optional. Missing expressions stay "1", a missing range is
// equation.DefaultRange and a missing mode is y.
package eqfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scottkirkwood/cartesian/equation"
)

// ErrBadExpression is returned when an expression in the file does not
// compile.
var ErrBadExpression = errors.New("eqfile: bad expression")

// Range is the YAML form of equation.Range.
type Range struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// Document is one equation file.
type Document struct {
	Name   string             `yaml:"name,omitempty"`
	Mode   string             `yaml:"mode,omitempty"`
	X      string             `yaml:"x,omitempty"`
	Y      string             `yaml:"y,omitempty"`
	T      string             `yaml:"t,omitempty"`
	R      string             `yaml:"r,omitempty"`
	Param  string             `yaml:"param,omitempty"`
	Radius string             `yaml:"radius,omitempty"`
	Theta  string             `yaml:"theta,omitempty"`
	Range  *Range             `yaml:"range,omitempty"`
	Vars   map[string]float64 `yaml:"vars,omitempty"`
}

// Decode reads a Document. Unknown fields are an error.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("eqfile: %w", err)
	}
	return &doc, nil
}

// Equation builds the equation the document describes, with opts passed on
// to equation.New.
func (d *Document) Equation(opts ...equation.Option) (*equation.Equation, equation.Mode, error) {
	mode := equation.ModeY
	if d.Mode != "" {
		m, err := equation.ParseMode(d.Mode)
		if err != nil {
			return nil, 0, fmt.Errorf("eqfile: %w", err)
		}
		mode = m
	}

	e := equation.New(opts...)
	if d.Name != "" {
		e.SetName(d.Name)
	}
	names := []struct {
		name string
		set  func(string) error
	}{
		{d.Param, e.SetParamName},
		{d.Radius, e.SetRadiusName},
		{d.Theta, e.SetThetaName},
	}
	for _, n := range names {
		if n.name == "" {
			continue
		}
		if err := n.set(n.name); err != nil {
			return nil, 0, fmt.Errorf("eqfile: %w", err)
		}
	}
	for name, v := range d.Vars {
		if err := e.SetVar(name, v); err != nil {
			return nil, 0, fmt.Errorf("eqfile: %w", err)
		}
	}

	exprs := []struct {
		slot equation.Slot
		src  string
	}{
		{equation.SlotX, d.X},
		{equation.SlotY, d.Y},
		{equation.SlotT, d.T},
		{equation.SlotR, d.R},
	}
	for _, x := range exprs {
		if x.src == "" {
			continue
		}
		if res := e.SetExpression(x.slot, x.src); !res.Success {
			return nil, 0, fmt.Errorf("%w: %s = %q: %v", ErrBadExpression, x.slot, x.src, res.Messages)
		}
	}

	if d.Range != nil {
		rng := equation.Range{Start: d.Range.Start, End: d.Range.End, Step: d.Range.Step}
		if err := rng.Validate(); err != nil {
			return nil, 0, fmt.Errorf("eqfile: %w", err)
		}
		e.SetRange(rng.Start, rng.End, rng.Step)
	}
	return e, mode, nil
}

// Load decodes r and builds its equation.
func Load(r io.Reader, opts ...equation.Option) (*equation.Equation, equation.Mode, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, 0, err
	}
	return doc.Equation(opts...)
}

// LoadFile is Load on the named file.
func LoadFile(fname string, opts ...equation.Option) (*equation.Equation, equation.Mode, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	e, mode, err := Load(f, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", fname, err)
	}
	return e, mode, nil
}

// FromEquation captures e and mode as a Document. Default variables are only
// kept when non-zero, since a new equation declares them as 0 anyway.
func FromEquation(e *equation.Equation, mode equation.Mode) *Document {
	rng := e.Range()
	d := &Document{
		Name:   e.Name(),
		Mode:   mode.String(),
		X:      e.XExpression(),
		Y:      e.YExpression(),
		T:      e.TExpression(),
		R:      e.RExpression(),
		Param:  e.ParamName(),
		Radius: e.RadiusName(),
		Theta:  e.ThetaName(),
		Range:  &Range{Start: rng.Start, End: rng.End, Step: rng.Step},
	}
	for _, name := range e.Vars() {
		if v, _ := e.Var(name); v != 0 || !equation.IsDefaultVar(name) {
			if d.Vars == nil {
				d.Vars = make(map[string]float64)
			}
			d.Vars[name] = v
		}
	}
	return d
}

// Encode writes the document as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("eqfile: %w", err)
	}
	return enc.Close()
}

// WriteFile writes the document to fname, so that a Document can be given to
// cartesian.SafeWrite.
func (d *Document) WriteFile(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Save writes e and mode to w.
func Save(w io.Writer, e *equation.Equation, mode equation.Mode) error {
	return FromEquation(e, mode).Encode(w)
}
