package middleware

import "github.com/aretw0/automata/pkg/ports"

// Middleware allows wrapping a DFAStore to add behavior.
type Middleware func(ports.DFAStore) ports.DFAStore

// Chain applies middlewares so that the first one is the outermost.
func Chain(store ports.DFAStore, mws ...Middleware) ports.DFAStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
