package dsl

import (
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleMachine(t *testing.T) {
	// 1. Build (a|b)*ab using the DSL
	b := New()

	b.Add("q0").Start().
		On('a', "q0", "q1").
		On('b', "q0")

	b.Add("q1").On('b', "q2")
	b.Add("q2").Accept()

	// 2. Compile to NFA
	n, err := b.NFA()
	require.NoError(t, err)

	start, ok := n.StartState()
	require.True(t, ok)
	assert.Equal(t, "q0", start.Name())
	assert.Equal(t, []domain.State{domain.NewState("q2")}, n.FinalStates())
	assert.Equal(t, 2, n.ToStates(domain.NewState("q0"), 'a').Len())

	// 3. Convert
	d, err := b.DFA()
	require.NoError(t, err)
	assert.Equal(t, 3, d.NumStates())

	to, ok := d.Transition(domain.NewState("[q0, q1]"), 'b')
	require.True(t, ok)
	assert.Equal(t, "[q0, q2]", to.Name())
	assert.True(t, d.IsFinal(to))
}

func TestBuilder_ImplicitTargets(t *testing.T) {
	b := New()
	b.Add("s").Start().Epsilon("t").Add("t").On('x', "u")

	n, err := b.NFA()
	require.NoError(t, err)

	names := make([]string, 0)
	for _, s := range n.States() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"s", "t", "u"}, names)
	assert.True(t, n.EClosure(domain.NewState("s")).Has(domain.NewState("t")))
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	first := b.Add("q0")
	assert.Same(t, first, b.Add("q0"))
}

func TestBuilder_MultipleStarts(t *testing.T) {
	b := New()
	b.Add("a").Start()
	b.Add("b").Start()

	_, err := b.NFA()
	assert.ErrorContains(t, err, "both marked start")

	_, err = b.DFA()
	assert.Error(t, err)
}

func TestBuilder_NoStart(t *testing.T) {
	b := New()
	b.Add("a").Accept()

	_, err := b.DFA()
	assert.ErrorIs(t, err, domain.ErrNoStartState)
}

func TestBuilder_Definition(t *testing.T) {
	b := New()
	b.Add("q0").Start().On('a', "q1")
	b.Add("q1").Accept()

	def, err := b.Definition()
	require.NoError(t, err)
	assert.Equal(t, "q0", def.Start)
	assert.Equal(t, []string{"q1"}, def.Final)
	require.Len(t, def.Transitions, 1)
	assert.Equal(t, "a", def.Transitions[0].Symbol)
}
