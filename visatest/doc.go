// Package visatest provides an in-memory visa.Driver backed by scriptable
// simulated instruments, for tests and examples that need a full resource
// manager and session stack without hardware.
//
// A Driver hosts any number of registered resources. Each Instrument speaks
// the IEEE-488.2 mandatory command set with correct register semantics and
// can be extended with a handler for instrument-specific commands. Fault
// injection hooks force read failures and short writes to exercise the error
// paths of the session protocol engine.
package visatest
