/*
Package ports defines the driven ports (interfaces) around the conversion core.

These interfaces decouple the conversion service from storage backends.

# Key Interfaces

  - DFAStore: persists converted automata keyed by the fingerprint of their source NFA.
*/
package ports
