package limb_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bignum/limb"
)

func TestZero(t *testing.T) {
	require.Equal(t, limb.Sequence{0}, limb.Zero())
}

func TestWord(t *testing.T) {
	s := limb.Sequence{1, 2, 3}

	require.Equal(t, uint32(1), s.Word(0))
	require.Equal(t, uint32(2), s.Word(1))
	require.Equal(t, uint32(3), s.Word(2))
	require.Equal(t, uint32(0), s.Word(3))
	require.Equal(t, uint32(0), s.Word(1000))
}

func TestNormalize(t *testing.T) {
	type TC struct {
		Name   string
		Input  limb.Sequence
		Output limb.Sequence
	}

	tcs := []TC{
		{
			Name:   "nil",
			Input:  nil,
			Output: limb.Sequence{0},
		},
		{
			Name:   "empty",
			Input:  limb.Sequence{},
			Output: limb.Sequence{0},
		},
		{
			Name:   "zero",
			Input:  limb.Sequence{0},
			Output: limb.Sequence{0},
		},
		{
			Name:   "zero-words",
			Input:  limb.Sequence{0, 0, 0},
			Output: limb.Sequence{0},
		},
		{
			Name:   "trailing-zeros",
			Input:  limb.Sequence{342, 0, 0},
			Output: limb.Sequence{342},
		},
		{
			Name:   "interior-zero",
			Input:  limb.Sequence{0, 342, 0},
			Output: limb.Sequence{0, 342},
		},
		{
			Name:   "already-canonical",
			Input:  limb.Sequence{1, 2, 3},
			Output: limb.Sequence{1, 2, 3},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Name), func(t *testing.T) {
			require.Equal(t, tc.Output, limb.Normalize(tc.Input))
		})
	}
}

func TestEqual(t *testing.T) {
	type TC struct {
		Name  string
		A     limb.Sequence
		B     limb.Sequence
		Equal bool
	}

	tcs := []TC{
		{
			Name:  "nil-vs-zeros",
			A:     nil,
			B:     limb.Sequence{0, 0},
			Equal: true,
		},
		{
			Name:  "zero-vs-zeros",
			A:     limb.Sequence{0},
			B:     limb.Sequence{0, 0},
			Equal: true,
		},
		{
			Name:  "padded",
			A:     limb.Sequence{342},
			B:     limb.Sequence{342, 0, 0},
			Equal: true,
		},
		{
			Name:  "padded-both",
			A:     limb.Sequence{342, 0, 0, 0},
			B:     limb.Sequence{342, 0},
			Equal: true,
		},
		{
			Name:  "shifted",
			A:     limb.Sequence{0, 342, 0, 0},
			B:     limb.Sequence{342, 0, 0},
			Equal: false,
		},
		{
			Name:  "differing-word",
			A:     limb.Sequence{1, 2},
			B:     limb.Sequence{1, 3},
			Equal: false,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Name), func(t *testing.T) {
			require.Equal(t, tc.Equal, limb.Equal(tc.A, tc.B))
			require.Equal(t, tc.Equal, limb.Equal(tc.B, tc.A))
		})
	}
}
