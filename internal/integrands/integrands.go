// Package integrands is a catalog of named test integrals with known values.
package integrands

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/quadlab/internal/quad"
)

// Integrand is a named definite integral. Exact is NaN when no closed form
// is known.
type Integrand struct {
	Name        string
	Description string
	F           quad.Func
	A, B        float64
	Exact       float64
}

func (i Integrand) HasExact() bool { return !math.IsNaN(i.Exact) }

// Integral builds the problem over the integrand's default interval.
func (i Integrand) Integral() *quad.Integral {
	return quad.NewIntegral(i.F, i.A, i.B)
}

// Over moves the integrand to [a, b]. The exact value is dropped unless the
// interval is unchanged.
func (i Integrand) Over(a, b float64) Integrand {
	if a != i.A || b != i.B {
		i.A, i.B = a, b
		i.Exact = math.NaN()
	}
	return i
}

var catalog = map[string]Integrand{
	"square": {
		Name:        "square",
		Description: "x^2 on [0, 1]",
		F:           func(x float64) float64 { return x * x },
		A:           0,
		B:           1,
		Exact:       1.0 / 3,
	},
	"quartic": {
		Name:        "quartic",
		Description: "x^4 on [0, 1]",
		F:           func(x float64) float64 { return x * x * x * x },
		A:           0,
		B:           1,
		Exact:       0.2,
	},
	"exp": {
		Name:        "exp",
		Description: "e^x on [0, 1]",
		F:           math.Exp,
		A:           0,
		B:           1,
		Exact:       math.E - 1,
	},
	"sine": {
		Name:        "sine",
		Description: "sin(x) on [0, pi]",
		F:           math.Sin,
		A:           0,
		B:           math.Pi,
		Exact:       2,
	},
	"damped": {
		Name:        "damped",
		Description: "e^-x sin^2(4x) on [-2, 2]",
		F: func(x float64) float64 {
			s := math.Sin(4 * x)
			return math.Exp(-x) * s * s
		},
		A:     -2,
		B:     2,
		Exact: dampedExact(),
	},
	"wifi": {
		Name:        "wifi",
		Description: "(x^3 cos(x/2) + 1/2) sqrt(4 - x^2) on [-2, 2]",
		F: func(x float64) float64 {
			return (x*x*x*math.Cos(0.5*x) + 0.5) * math.Sqrt(math.Max(0, 4-x*x))
		},
		A:     -2,
		B:     2,
		Exact: math.Pi,
	},
	"xpowx": {
		Name:        "xpowx",
		Description: "x^x on [1.5, 3.7]",
		F:           func(x float64) float64 { return math.Pow(x, x) },
		A:           1.5,
		B:           3.7,
		Exact:       math.NaN(),
	},
}

// dampedExact integrates e^-x (1 - cos 8x)/2 over [-2, 2].
func dampedExact() float64 {
	// antiderivative of e^-x cos(8x) is e^-x (8 sin 8x - cos 8x) / 65
	anti := func(x float64) float64 {
		return math.Exp(-x) * (8*math.Sin(8*x) - math.Cos(8*x)) / 65
	}
	return 0.5*(math.Exp(2)-math.Exp(-2)) - 0.5*(anti(2)-anti(-2))
}

func Get(name string) (Integrand, error) {
	in, ok := catalog[name]
	if !ok {
		return Integrand{}, fmt.Errorf("unknown integrand: %s", name)
	}
	return in, nil
}

func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
