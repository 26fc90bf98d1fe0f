package ieee488

import (
	"fmt"

	"github.com/arloliu/go-visa/visa"
)

// Instrument wraps an open session to one IEEE-488.2 conformant device.
// It satisfies SessionProvider, so the full mandatory command set applies
// to it directly; instrument-specific layers can embed it.
type Instrument struct {
	session *visa.Session
	ident   Identification
}

// Session returns the instrument's underlying session.
func (inst *Instrument) Session() *visa.Session { return inst.session }

// Identification returns the identification captured when the instrument was
// opened.
func (inst *Instrument) Identification() Identification { return inst.ident }

// Close closes the instrument's session. Like visa.Session.Close, the close
// is best-effort and idempotent.
func (inst *Instrument) Close() { inst.session.Close() }

// OpenInstrument opens the named resource, queries its identification, and
// accepts it when match reports true. A nil match accepts any device.
//
// On a failed query or a rejected identification the session is closed before
// returning.
func OpenInstrument(rm *visa.ResourceManager, resource string, mode visa.AccessMode, timeout visa.Timeout, match func(Identification) bool) (*Instrument, error) {
	session, err := rm.OpenSession(resource, mode, timeout)
	if err != nil {
		return nil, err
	}

	ident, err := IdentificationQuery(session)
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("ieee488: identification query on %q failed: %w", resource, err)
	}

	if match != nil && !match(ident) {
		session.Close()
		return nil, fmt.Errorf("%w: %q identifies as %q", ErrInstrumentNotFound, resource, ident.String())
	}

	return &Instrument{session: session, ident: ident}, nil
}

// FindInstrument searches the resource namespace with the given match
// expression and opens the first resource whose identification is accepted
// by match.
//
// Candidates that fail to open or to identify are skipped; if no candidate is
// accepted the search fails with ErrInstrumentNotFound.
func FindInstrument(rm *visa.ResourceManager, expression string, mode visa.AccessMode, timeout visa.Timeout, match func(Identification) bool) (*Instrument, error) {
	resources, err := rm.FindResources(expression)
	if err != nil {
		return nil, err
	}

	for _, resource := range resources {
		inst, err := OpenInstrument(rm, resource, mode, timeout, match)
		if err != nil {
			continue
		}

		return inst, nil
	}

	return nil, fmt.Errorf("%w: no resource matching %q accepted", ErrInstrumentNotFound, expression)
}
