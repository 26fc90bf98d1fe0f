package visa

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/arloliu/go-visa/logger"
)

// ResourceManager owns the driver's default resource manager context and acts
// as the session factory. Sessions it opens are independent, separately-owned
// objects; the manager does not track them after creation.
type ResourceManager struct {
	drv    Driver
	handle Object
	logger logger.Logger
	closed atomic.Bool
}

// config holds the options applied by New.
type config struct {
	logger logger.Logger
}

// Option is a functional option for configuring a ResourceManager.
type Option interface {
	apply(*config) error
}

type optFunc func(*config) error

func (f optFunc) apply(cfg *config) error { return f(cfg) }

// WithLogger sets the logger used by the resource manager and every session
// it opens.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(cfg *config) error {
		if l == nil {
			return errors.New("visa: logger must not be nil")
		}
		cfg.logger = l

		return nil
	})
}

// New acquires the default resource manager context from drv.
//
// Failure to create the context surfaces as the classified driver error,
// typically ErrAllocation or ErrSystem.
func New(drv Driver, opts ...Option) (*ResourceManager, error) {
	if drv == nil {
		return nil, errors.New("visa: driver must not be nil")
	}

	cfg := &config{logger: logger.GetLogger()}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	handle, status := drv.OpenDefaultRM()

	code, err := status.Classify()
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("visa: default resource manager opened", "code", code.String())

	return &ResourceManager{drv: drv, handle: handle, logger: cfg.logger}, nil
}

// OpenSession opens a session to the named resource and transfers ownership
// of it to the caller.
//
// The resource name must not contain an embedded null byte. A warning-class
// completion code from the driver is not a failure; the session is returned
// with the warning logged.
func (rm *ResourceManager) OpenSession(name string, mode AccessMode, timeout Timeout) (*Session, error) {
	if strings.ContainsRune(name, 0) {
		return nil, fmt.Errorf("%w: %q contains an embedded null byte", ErrInvalidResourceName, name)
	}

	openTimeout, err := timeout.wireValue()
	if err != nil {
		return nil, err
	}

	handle, status := rm.drv.Open(rm.handle, name, uint32(mode), openTimeout)

	code, err := status.Classify()
	if err != nil {
		return nil, err
	}

	rm.logger.Debug("visa: resource opened", "resource", name, "mode", mode.String(), "code", code.String())

	return newSession(rm.drv, handle, rm.logger), nil
}

// FindResources searches the resource namespace for resources matching the
// given expression and returns their names.
//
// The expression grammar is defined by the underlying standard and passed
// through uninterpreted: ? matches any one character, \ escapes the following
// special character, [list] and [^list] match character sets (with - ranges),
// * and + repeat the preceding atom zero-or-more and one-or-more times,
// exp|exp alternates full expressions, and (exp) groups. For example,
// "?*INSTR" matches any resource name ending in INSTR.
//
// Zero matches is not an error: an empty slice is returned. Ordering follows
// the driver's enumeration order and is arbitrary but stable within one call.
func (rm *ResourceManager) FindResources(expression string) ([]string, error) {
	if strings.ContainsRune(expression, 0) {
		return nil, fmt.Errorf("%w: %q contains an embedded null byte", ErrInvalidExpression, expression)
	}

	desc := make([]byte, FindBufferLen)

	list, count, status := rm.drv.FindFirst(rm.handle, expression, desc)

	code, err := status.Classify()
	if err != nil {
		return nil, err
	}

	rm.logger.Debug("visa: resource search completed", "expression", expression, "count", count, "code", code.String())

	resources := []string{}

	if count < 1 {
		return resources, nil
	}

	// The find list is a driver handle like any other; release it once the
	// iteration is done, best effort.
	defer rm.closeObject(list, "find list")

	resource, err := decodeNullTerminated(desc)
	if err != nil {
		return nil, err
	}
	resources = append(resources, resource)

	for i := uint32(1); i < count; i++ {
		code, err := rm.drv.FindNext(list, desc).Classify()
		if err != nil {
			return nil, err
		}

		rm.logger.Debug("visa: next resource found", "code", code.String())

		resource, err := decodeNullTerminated(desc)
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}

	return resources, nil
}

// Close releases the default resource manager context.
//
// Like Session.Close, the close is best-effort and idempotent: failures are
// logged, never propagated. Sessions opened by the manager are unaffected.
func (rm *ResourceManager) Close() {
	if !rm.closed.CompareAndSwap(false, true) {
		return
	}

	rm.closeObject(rm.handle, "default resource manager")
}

func (rm *ResourceManager) closeObject(obj Object, what string) {
	code, err := rm.drv.Close(obj).Classify()
	if err != nil {
		rm.logger.Error("visa: closing "+what+" failed", "error", err)
		return
	}

	rm.logger.Debug("visa: "+what+" closed", "code", code.String())
}

// decodeNullTerminated decodes a fixed-size driver buffer as a null-terminated
// string. A buffer without a null terminator fails with ErrNoNullTerminator.
func decodeNullTerminated(buf []byte) (string, error) {
	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		return "", ErrNoNullTerminator
	}

	return string(buf[:end]), nil
}
