/*
Package dsl provides a fluent Go builder for NFAs.

It is an alternative to YAML or JSON definitions when automata are built
in code, for example in tests or when generating machines from data.

Example usage:

	b := dsl.New()

	b.Add("q0").Start().
		On('a', "q0", "q1").
		Epsilon("q2")

	b.Add("q1").On('b', "q2")
	b.Add("q2").Accept()

	d, err := b.DFA()
*/
package dsl
