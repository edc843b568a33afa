package automata_test

import (
	"fmt"
	"log"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/nfa"
	"github.com/aretw0/automata/pkg/schema"
)

// Example builds an NFA with an epsilon transition and prints its DFA.
func Example() {
	n := nfa.New()
	n.AddStartState("q0")
	n.AddState("q1")
	n.AddFinalState("q2")
	_ = n.AddTransition("q0", domain.Epsilon, "q1")
	_ = n.AddTransition("q1", 'a', "q2")
	_ = n.AddTransition("q0", 'a', "q0")

	d, err := n.DFA()
	if err != nil {
		log.Fatal(err)
	}

	start, _ := d.StartState()
	fmt.Println("start:", start)
	for _, s := range d.States() {
		fmt.Println(s, d.IsFinal(s))
	}
	// Output:
	// start: [q0, q1]
	// [q0, q1] false
	// [q0, q1, q2] true
}

// ExampleConvert converts a definition and shows the optional dead state.
func ExampleConvert() {
	def := schema.Definition{
		States: []string{"q0", "q1"},
		Start:  "q0",
		Final:  []string{"q1"},
		Transitions: []schema.TransitionDef{
			{From: "q0", Symbol: "a", To: "q1"},
		},
	}

	partial, err := automata.Convert(def)
	if err != nil {
		log.Fatal(err)
	}
	total, err := automata.Convert(def, nfa.WithDeadState())
	if err != nil {
		log.Fatal(err)
	}

	to, ok := total.Transition(domain.NewState("[q1]"), 'a')
	fmt.Println(partial.NumStates(), total.NumStates(), to, ok)
	// Output:
	// 2 3 [] true
}
