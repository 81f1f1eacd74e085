package arity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Compose(t *testing.T) {
	for _, tc := range []struct {
		name   string
		a, b   Arity
		expect Arity
	}{
		{"zero", Arity{}, Arity{}, Arity{}},
		{"exact feed", Arity{0, 2}, Arity{2, 1}, Arity{0, 1}},
		{"shortfall", Arity{0, 1}, Arity{2, 1}, Arity{1, 1}},
		{"surplus", Arity{0, 3}, Arity{2, 1}, Arity{0, 2}},
		{"print after push", Arity{0, 1}, Arity{1, 0}, Arity{0, 0}},
		{"loop body", Arity{1, 1}, Arity{1, 2}, Arity{1, 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Compose(tc.a, tc.b))
		})
	}
}

func Test_Concat(t *testing.T) {
	assert.Equal(t, Arity{3, 5}, Concat(Arity{1, 2}, Arity{2, 3}))
	assert.Equal(t, Arity{1, 2}, Concat(Arity{}, Arity{1, 2}))
}

func Test_Compose_associative(t *testing.T) {
	const max = 4
	var all []Arity
	for in := uint(0); in <= max; in++ {
		for out := uint(0); out <= max; out++ {
			all = append(all, Arity{in, out})
		}
	}
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				left := Compose(Compose(a, b), c)
				right := Compose(a, Compose(b, c))
				if left != right {
					t.Fatalf("compose not associative for %v %v %v: %v vs %v", a, b, c, left, right)
				}
				if l, r := Concat(Concat(a, b), c), Concat(a, Concat(b, c)); l != r {
					t.Fatalf("concat not associative for %v %v %v: %v vs %v", a, b, c, l, r)
				}
			}
		}
	}
}

func Test_Arity_String(t *testing.T) {
	assert.Equal(t, "(1→2)", Arity{1, 2}.String())
	assert.Equal(t, -1, Arity{2, 1}.Net())
}
