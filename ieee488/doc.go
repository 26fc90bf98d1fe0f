// Package ieee488 implements the IEEE-488.2 mandatory command set on top of a
// visa.Session: the thirteen common commands and queries (*IDN?, *RST, *CLS,
// *ESE, *ESR?, *OPC, *OPC?, *SRE, *STB?, *TST?, *WAI) and the register and
// identification value types their responses decode into.
//
// The command set is a capability: any type that can hand back its underlying
// session through the SessionProvider interface gains the full set, so
// higher-level instrument types do not duplicate the command surface.
//
// Register values keep their full underlying byte. Named bits are exposed as
// derived accessors, and unknown or reserved bits set by an instrument are
// retained rather than rejected.
package ieee488
