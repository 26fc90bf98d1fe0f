// Package visa provides a safety layer over VISA-style instrument
// communication: a resource manager that resolves and opens sessions to
// instruments addressed by resource strings (GPIB, USB, serial, TCP/IP), and
// a blocking, message-oriented session protocol engine on top of a raw byte
// transport.
//
// The transport itself is consumed through the Driver interface and never
// reimplemented here. Every raw status code a driver returns flows through
// Status.Classify, which splits it into a fatal error or a CompletionCode;
// no component bypasses the classifier.
//
// The model is purely synchronous: every operation blocks the calling
// goroutine until the driver completes or times out. The library performs no
// internal locking; concurrent use of one Session must be serialized by the
// caller.
package visa
