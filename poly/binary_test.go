package poly

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestBinary(t *testing.T) {

	testBinaryLayout(t)
	testBinaryInvalid(t)

	for _, params := range testSamplerParams {
		tc := newTestContext(t, params)
		testBinaryRoundTrip(tc, t)
	}
}

// enc builds an encoding from tags, counts, exponents and values.
type enc []byte

func (e enc) scalar(c int64) enc {
	e = append(e, tagScalar)
	return binary.LittleEndian.AppendUint64(e, uint64(c))
}

func (e enc) sum(count uint64) enc {
	e = append(e, tagSum)
	return binary.LittleEndian.AppendUint64(e, count)
}

func (e enc) exp(exp uint32) enc {
	return binary.LittleEndian.AppendUint32(e, exp)
}

func testBinaryLayout(t *testing.T) {

	t.Run("Binary/Layout", func(t *testing.T) {

		data, err := C(-2).MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, []byte(enc{}.scalar(-2)), data)

		// (1,0)+((5,2),3)
		p := P(M(C(1), 0), M(P(M(C(5), 2)), 3))
		want := enc{}.sum(2).exp(0).scalar(1).exp(3).sum(1).exp(2).scalar(5)

		data, err = p.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, []byte(want), data)
		require.Equal(t, len(want), p.BinarySize())

		var buf bytes.Buffer
		w := bufio.NewWriterSize(&buf, 16)
		n, err := p.EncodeBinary(w)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, int64(len(want)), n)
		require.Equal(t, []byte(want), buf.Bytes())

		var q Polynomial
		n, err = q.decodeBinary(bufio.NewReaderSize(&buf, 16))
		require.NoError(t, err)
		require.Equal(t, int64(len(want)), n)
		requireEqual(t, p, q)

		require.Equal(t, blake3.Sum256(want), p.Digest())
	})
}

func testBinaryInvalid(t *testing.T) {

	for _, tt := range []struct {
		name string
		data enc
	}{
		{"Empty", enc{}},
		{"Tag", enc{0x02}},
		{"Truncated/Scalar", enc{}.scalar(1)[:5]},
		{"Truncated/Sum", enc{}.sum(2).exp(1).scalar(1)},
		{"EmptySum", enc{}.sum(0)},
		{"ZeroCoefficient", enc{}.sum(1).exp(1).scalar(0)},
		{"LoneConstant", enc{}.sum(1).exp(0).scalar(4)},
		{"Order", enc{}.sum(2).exp(2).scalar(1).exp(1).scalar(1)},
		{"Duplicate", enc{}.sum(2).exp(1).scalar(1).exp(1).scalar(1)},
		{"Nested", enc{}.sum(1).exp(1).sum(1).exp(0).scalar(3)},
		{"Trailing", append(enc{}.scalar(1), 0)},
		{"HugeCount", enc{}.sum(math.MaxUint64).exp(1).scalar(1)},
	} {
		t.Run("Binary/Invalid/"+tt.name, func(t *testing.T) {
			p := C(42)
			require.Error(t, p.unmarshalBinary(tt.data))
			requireEqual(t, C(42), p)
		})
	}

	t.Run("Binary/Valid/NestedConstant", func(t *testing.T) {
		// A constant term whose coefficient is not a scalar is canonical.
		var p Polynomial
		require.NoError(t, p.unmarshalBinary(enc{}.sum(1).exp(0).sum(1).exp(1).scalar(3)))
		requireEqual(t, P(M(P(M(C(3), 1)), 0)), p)
	})

	t.Run("Binary/Valid/ProductExponent", func(t *testing.T) {
		// Products may carry exponents above MaxExponent.
		x := P(M(C(1), MaxExponent))
		p := x.Mul(x)
		data, err := p.MarshalBinary()
		require.NoError(t, err)
		var q Polynomial
		require.NoError(t, q.unmarshalBinary(data))
		require.True(t, p.Equal(q))
	})
}

func testBinaryRoundTrip(tc *testContext, t *testing.T) {
	t.Run(testString("Binary/RoundTrip", tc.params), func(t *testing.T) {
		for _, p := range tc.sampler.ReadN(16) {
			data, err := p.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, p.BinarySize())

			var q Polynomial
			require.NoError(t, q.unmarshalBinary(data))
			requireEqual(t, p, q)
			require.Equal(t, p.Digest(), q.Digest())
		}
	})
}
