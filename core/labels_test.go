// Package core_test: vertex labels.
package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertigo/core"
	"github.com/katalvlaran/vertigo/ident"
)

func TestLabel_DefaultFromHandle(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)

	l, ok := g.Label(a)
	require.True(t, ok)
	assert.Equal(t, "N_"+a.String(), l)
}

func TestLabel_DeterministicAcrossRuns(t *testing.T) {
	build := func() []string {
		g := core.NewGraph[int](core.WithGenerator[int](ident.NewGenerator()))
		var labels []string
		for i := 0; i < 5; i++ {
			id := g.AddVertex(i)
			l, _ := g.Label(id)
			labels = append(labels, l)
		}

		return labels
	}

	assert.Equal(t, build(), build())
}

func TestLabelVertex_ReturnsPrevious(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)

	old, err := g.LabelVertex(a, "start")
	require.NoError(t, err)
	assert.Equal(t, "N_"+a.String(), old)

	l, _ := g.Label(a)
	assert.Equal(t, "start", l)
}

func TestLabelVertex_Absent(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	g.Remove(a)

	_, err := g.LabelVertex(a, "x")
	assert.ErrorIs(t, err, core.ErrNoSuchVertex)
	_, ok := g.Label(a)
	assert.False(t, ok)
}

func TestMapLabels(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	b := g.AddVertex(2)

	g.MapLabels(func(_ ident.ID, l string) string { return strings.ToLower(l) })

	la, _ := g.Label(a)
	lb, _ := g.Label(b)
	assert.Equal(t, "n_"+a.String(), la)
	assert.Equal(t, "n_"+b.String(), lb)
}

func TestLabel_MutationAdvancesVersion(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)

	before := g.Version()
	_, err := g.LabelVertex(a, "x")
	require.NoError(t, err)
	assert.Greater(t, g.Version(), before)
}
