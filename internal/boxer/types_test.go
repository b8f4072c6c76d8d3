package boxer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoxerValidate(t *testing.T) {
	valid := NewBoxer{Name: "Ace", Weight: 150, Height: 70, Reach: 72.5, Age: 28}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*NewBoxer)
	}{
		{"empty name", func(n *NewBoxer) { n.Name = "" }},
		{"weight below floor", func(n *NewBoxer) { n.Weight = 124 }},
		{"zero height", func(n *NewBoxer) { n.Height = 0 }},
		{"negative reach", func(n *NewBoxer) { n.Reach = -1 }},
		{"too young", func(n *NewBoxer) { n.Age = 17 }},
		{"too old", func(n *NewBoxer) { n.Age = 41 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := valid
			tc.mutate(&n)
			assert.Error(t, n.Validate())
		})
	}
}

func TestWeightClassFor(t *testing.T) {
	cases := []struct {
		weight int
		class  string
	}{
		{203, "HEAVYWEIGHT"},
		{250, "HEAVYWEIGHT"},
		{166, "MIDDLEWEIGHT"},
		{202, "MIDDLEWEIGHT"},
		{133, "LIGHTWEIGHT"},
		{165, "LIGHTWEIGHT"},
		{125, "FEATHERWEIGHT"},
		{132, "FEATHERWEIGHT"},
	}
	for _, tc := range cases {
		got, err := WeightClassFor(tc.weight)
		assert.NoError(t, err)
		assert.Equal(t, tc.class, got, "weight %d", tc.weight)
	}

	_, err := WeightClassFor(124)
	assert.Error(t, err)
}
