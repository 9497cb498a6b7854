package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polycalc/utils"
)

func TestEvaluation(t *testing.T) {

	testDegree(t)
	testAt(t)
	testCompose(t)

	for _, params := range testSamplerParams {
		tc := newTestContext(t, params)
		testDegreeProperties(tc, t)
		testAtIsComposeWithScalar(tc, t)
		testComposeIdentity(tc, t)
	}
}

func testDegree(t *testing.T) {

	polyP := P(M(P(M(C(1), 3)), 0), M(P(M(C(1), 2)), 2), M(C(1), 3))

	t.Run("Degree", func(t *testing.T) {
		require.Equal(t, -1, C(0).Degree())
		require.Equal(t, 0, C(1).Degree())
		require.Equal(t, 0, C(math.MinInt64).Degree())
		require.Equal(t, 1, P(M(C(1), 1)).Degree())
		require.Equal(t, 4, polyP.Degree())
		require.Equal(t, 7, P(M(C(1), 0), M(P(M(P(M(C(1), 4)), 2)), 1)).Degree())
	})

	t.Run("DegreeBy", func(t *testing.T) {
		for k := 0; k < 4; k++ {
			require.Equal(t, -1, C(0).DegreeBy(k))
		}
		require.Equal(t, 0, C(1).DegreeBy(0))
		require.Equal(t, 0, C(1).DegreeBy(3))
		require.Equal(t, 0, P(M(C(1), 1)).DegreeBy(1))
		require.Equal(t, 3, polyP.DegreeBy(0))
		require.Equal(t, 3, polyP.DegreeBy(1))
		require.Equal(t, 0, polyP.DegreeBy(2))
		require.Equal(t, 0, polyP.DegreeBy(math.MaxInt))
		require.Panics(t, func() { polyP.DegreeBy(-1) })
	})
}

func testAt(t *testing.T) {

	for _, tt := range []struct {
		name string
		p    Polynomial
		x    int64
		want Polynomial
	}{
		{"Scalar", C(2), 1, C(2)},
		{"Zero", C(0), 5, C(0)},
		{"Large", P(M(C(1), 0), M(C(1), 18)), 10, C(1000000000000000001)},
		{"Digits", P(M(C(3), 1), M(C(2), 3), M(C(1), 5)), 10, C(102030)},
		{"Negative", P(M(C(1), 1), M(C(1), 2)), -3, C(6)},
		{"AtZero", P(M(C(7), 0), M(C(1), 3)), 0, C(7)},
		{"Nested", P(M(P(M(C(1), 4)), 0), M(P(M(C(1), 2)), 2), M(C(1), 3)), 2, P(M(C(8), 0), M(C(4), 2), M(C(1), 4))},
		{"Nested/Cancel", P(M(P(M(C(1), 1)), 0), M(P(M(C(-1), 1)), 1)), 1, C(0)},
		{"Wraparound", P(M(C(1), 64)), 2, C(0)},
		{"Wraparound/Constant", P(M(C(1), 0), M(C(1), 64)), 2, C(1)},
		{"Wraparound/Nested", P(M(P(M(C(1), 1)), 64)), 2, C(0)},
		{"Wraparound/Sign", P(M(C(1), 63)), 2, C(math.MinInt64)},
	} {
		t.Run("At/"+tt.name, func(t *testing.T) {
			requireEqual(t, tt.want, tt.p.At(tt.x))
		})
	}
}

func testCompose(t *testing.T) {

	x0 := P(M(C(1), 1))
	x1 := P(M(P(M(C(1), 1)), 0))

	// p = x0^2 + x0*x1 + 3
	p := P(M(C(3), 0), M(C(1), 2), M(P(M(C(1), 1)), 1))

	for _, tt := range []struct {
		name string
		p    Polynomial
		subs []Polynomial
		want Polynomial
	}{
		{"Scalar", C(5), []Polynomial{x0}, C(5)},
		{"NoSubstitution", p, nil, C(3)},
		{"NoSubstitution/Zero", x0, nil, C(0)},
		{"Identity", p, []Polynomial{x0, x1}, p},
		{"Swap", p, []Polynomial{x1, x0}, P(M(P(M(C(3), 0), M(C(1), 2)), 0), M(P(M(C(1), 1)), 1))},
		{"Scalars", p, []Polynomial{C(2), C(5)}, C(17)},
		{"Partial", p, []Polynomial{C(2)}, C(7)},
		{"Square", x0, []Polynomial{x0.Add(C(1)).Pow(2)}, x0.Add(C(1)).Pow(2)},
		{"Nested", P(M(C(1), 2)), []Polynomial{x0.Add(C(1))}, P(M(C(1), 0), M(C(2), 1), M(C(1), 2))},
		{"ExtraSubstitutions", x0, []Polynomial{C(4), C(9), C(11)}, C(4)},
		{"Wraparound", P(M(C(1), 64)), []Polynomial{C(2)}, C(0)},
	} {
		t.Run("Compose/"+tt.name, func(t *testing.T) {
			requireEqual(t, tt.want, tt.p.Compose(tt.subs))
		})
	}
}

func testDegreeProperties(tc *testContext, t *testing.T) {
	t.Run(testString("Degree/Properties", tc.params), func(t *testing.T) {
		for k := 0; k < 8; k++ {
			p, q := tc.sampler.Read(), tc.sampler.Read()

			require.LessOrEqual(t, p.Add(q).Degree(), utils.Max(p.Degree(), q.Degree()))

			if !p.IsZero() {
				require.Equal(t, p.Degree(), p.Neg().Degree())
			}

			for v := 0; v <= tc.params.Depth; v++ {
				require.LessOrEqual(t, p.DegreeBy(v), p.Degree())
			}
		}
	})
}

func testAtIsComposeWithScalar(tc *testContext, t *testing.T) {
	t.Run(testString("At/Compose", tc.params), func(t *testing.T) {
		for k := 0; k < 8; k++ {
			p := tc.sampler.Read()
			x := int64(k) - 4

			// Composing with (x, x_0, ..., x_{d-2}) evaluates x_0 and shifts the remaining variables.
			subs := []Polynomial{C(x)}
			for v := 0; v < tc.params.Depth; v++ {
				subs = append(subs, variable(v))
			}

			requireEqual(t, p.At(x), p.Compose(subs))
		}
	})
}

func testComposeIdentity(tc *testContext, t *testing.T) {
	t.Run(testString("Compose/Identity", tc.params), func(t *testing.T) {
		subs := make([]Polynomial, tc.params.Depth)
		for v := range subs {
			subs[v] = variable(v)
		}

		for k := 0; k < 4; k++ {
			p := tc.sampler.Read()
			requireEqual(t, p, p.Compose(subs))

			// Evaluating at scalars one variable at a time matches composing with all the scalars at once.
			points := make([]Polynomial, tc.params.Depth)
			want := p
			for v := range points {
				points[v] = C(int64(v + 2))
				want = want.At(int64(v + 2))
			}
			requireEqual(t, want, p.Compose(points))
		}
	})
}

// variable returns the polynomial x_v.
func variable(v int) Polynomial {
	p := NewMonomial(C(1), 1)
	for i := 0; i < v; i++ {
		p = NewMonomial(p, 0)
	}
	return p
}
