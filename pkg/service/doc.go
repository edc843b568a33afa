/*
Package service wires definition loading, subset construction, storage and
metrics into a single Converter used by the HTTP, MCP and CLI front ends.

Converted automata are cached in a ports.DFAStore under the fingerprint of the
source definition, so converting the same NFA twice runs the subset
construction once. Conversions of the same key are serialized in-process and,
when a ports.Locker is configured, across processes.
*/
package service
