package dfa_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/dfa"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFA_Builder(t *testing.T) {
	d := dfa.New()
	d.AddStartState("a")
	d.AddState("b")
	d.AddState("b")
	d.AddFinalState("b")

	require.NoError(t, d.AddTransition("a", '0', "b"))
	require.NoError(t, d.AddTransition("b", '1', "a"))

	assert.Len(t, d.States(), 2, "duplicate AddState is a no-op")
	assert.Equal(t, []domain.State{domain.NewState("b")}, d.FinalStates())

	start, ok := d.StartState()
	require.True(t, ok)
	assert.Equal(t, "a", start.Name())
	assert.Equal(t, []domain.Symbol{'0', '1'}, d.Alphabet())

	dst, ok := d.Transition(domain.NewState("a"), '0')
	require.True(t, ok)
	assert.Equal(t, "b", dst.Name())

	_, ok = d.Transition(domain.NewState("a"), '1')
	assert.False(t, ok, "undefined transitions are absent, not errors")
}

func TestDFA_StartAndFinalAreIndependent(t *testing.T) {
	d := dfa.New()
	d.AddStartState("s")
	d.AddFinalState("s")

	start, ok := d.StartState()
	require.True(t, ok)
	assert.True(t, d.IsFinal(start))
	assert.Equal(t, 1, d.NumStates())
}

func TestDFA_AddTransitionErrors(t *testing.T) {
	d := dfa.New()
	d.AddStartState("a")
	d.AddState("b")
	d.AddState("c")
	require.NoError(t, d.AddTransition("a", 'x', "b"))

	tests := []struct {
		name    string
		from    string
		on      domain.Symbol
		to      string
		wantErr error
	}{
		{name: "Unknown Source", from: "z", on: 'x', to: "a", wantErr: domain.ErrUnknownState},
		{name: "Unknown Destination", from: "a", on: 'x', to: "z", wantErr: domain.ErrUnknownState},
		{name: "Epsilon", from: "a", on: domain.Epsilon, to: "b", wantErr: domain.ErrEpsilonSymbol},
		{name: "Second Destination", from: "a", on: 'x', to: "c", wantErr: domain.ErrNondeterministic},
		{name: "Same Edge Again", from: "a", on: 'x', to: "b", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.AddTransition(tt.from, tt.on, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	dst, _ := d.Transition(domain.NewState("a"), 'x')
	assert.Equal(t, "b", dst.Name(), "rejected writes must not overwrite")
}

func TestDFA_String(t *testing.T) {
	d := dfa.New()
	d.AddStartState("a")
	d.AddFinalState("b")
	require.NoError(t, d.AddTransition("a", '0', "b"))

	want := "Q = { a b }\n" +
		"Sigma = { 0 }\n" +
		"delta =\n" +
		"\t\t0\n" +
		"\ta\tb\n" +
		"\tb\t-\n" +
		"q0 = a\n" +
		"F = { b }\n"
	assert.Equal(t, want, d.String())
}

func TestDFA_TransitionsOrder(t *testing.T) {
	d := dfa.New()
	d.AddStartState("a")
	d.AddState("b")
	require.NoError(t, d.AddTransition("b", 'y', "a"))
	require.NoError(t, d.AddTransition("a", 'y', "b"))
	require.NoError(t, d.AddTransition("a", 'x', "a"))

	got := d.Transitions()
	require.Len(t, got, 3)
	assert.Equal(t, domain.Transition{From: domain.NewState("a"), On: 'x', To: domain.NewState("a")}, got[0])
	assert.Equal(t, domain.Transition{From: domain.NewState("a"), On: 'y', To: domain.NewState("b")}, got[1])
	assert.Equal(t, domain.Transition{From: domain.NewState("b"), On: 'y', To: domain.NewState("a")}, got[2])
}
