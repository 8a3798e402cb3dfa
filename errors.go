package ggwin

import "errors"

// Errors.
var (
	// ErrNoCapabilities is returned when the windowing driver offers no
	// usable surface capability candidates. There is no degraded mode for
	// a shell with zero usable windows, so this is fatal at startup.
	ErrNoCapabilities = errors.New("ggwin: no compatible surface capabilities")

	// ErrNoDriver is returned when no windowing driver is registered or
	// available on the current system.
	ErrNoDriver = errors.New("ggwin: no windowing driver available")

	// ErrContextCurrent indicates an attempt to make a graphics context
	// current while another context guard is still live on the dispatch
	// thread. Exactly one context may be current at any instant.
	ErrContextCurrent = errors.New("ggwin: another graphics context is current")

	// ErrLoopRecreation indicates a second call to [App.Run]. The event
	// loop may run exactly once per process.
	ErrLoopRecreation = errors.New("ggwin: event loop may only run once per process")
)

// DriverNotFoundError indicates a named driver is not registered.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "ggwin: driver not found: " + e.Name
}

// DriverUnavailableError indicates a driver exists but is not available
// on the current system.
type DriverUnavailableError struct {
	Name string
}

func (e *DriverUnavailableError) Error() string {
	return "ggwin: driver unavailable: " + e.Name
}

// Process exit codes for the failure categories of [App.Run] and [NewApp].
// A shell binary maps its error to an exit code with [ExitCode].
const (
	// ExitOK means every window was closed and the loop ended normally.
	ExitOK = 0
	// ExitOSError covers failures reported by the OS windowing layer or
	// the GPU driver.
	ExitOSError = 1
	// ExitNotSupported covers unsupported-operation failures: no usable
	// driver or no compatible capability set.
	ExitNotSupported = 2
	// ExitLoopError covers an attempt to run the event loop twice.
	ExitLoopError = 3
)

// ExitCode classifies err into one of the process exit codes above.
// A nil err maps to ExitOK; unrecognized errors map to ExitOSError.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrLoopRecreation) {
		return ExitLoopError
	}
	if errors.Is(err, ErrNoCapabilities) || errors.Is(err, ErrNoDriver) {
		return ExitNotSupported
	}
	var notFound *DriverNotFoundError
	var unavailable *DriverUnavailableError
	if errors.As(err, &notFound) || errors.As(err, &unavailable) {
		return ExitNotSupported
	}
	return ExitOSError
}
