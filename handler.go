package deferred

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"
)

// Handler customizes the diagnostic emitted when an empty cell is read.
// BadDeref is called when Get or Mut finds the cell empty; BadTake when Take
// does. Both receive the name of the concrete value type.
//
// A handler may panic with its own message, or log and return. Returning
// does not suppress the failure: the read path panics unconditionally after
// the handler returns, so no handler can turn an empty read into a silent
// success.
type Handler interface {
	BadDeref(typeName string)
	BadTake(typeName string)
}

// The installed handler. Held behind an atomic pointer so SetHandler is safe
// to call while other goroutines are reading cells.
var currentHandler = atomic.NewPointer(&defaultHandler) //nolint:gochecknoglobals

var defaultHandler Handler = panicHandler{} //nolint:gochecknoglobals

// SetHandler installs a process-wide failure handler and returns the
// previously installed one, so callers can restore it (tests in particular).
// Passing nil reinstates the default panicking handler.
func SetHandler(h Handler) Handler {
	if h == nil {
		h = panicHandler{}
	}

	prev := currentHandler.Swap(&h)

	return *prev
}

// LoggingHandler returns a Handler that emits an error-level record on the
// given logger before the failure propagates. The subsequent panic still
// terminates the read; the log record exists so the diagnostic reaches
// structured log output as well as the panic trace.
func LoggingHandler(logger *slog.Logger) Handler {
	return &loggingHandler{logger: logger}
}

// panicHandler is the default: it panics with a message naming the type.
// The panic's stack trace identifies the offending read site.
type panicHandler struct{}

func (panicHandler) BadDeref(typeName string) {
	panic(badDerefMessage(typeName))
}

func (panicHandler) BadTake(typeName string) {
	panic(badTakeMessage(typeName))
}

type loggingHandler struct {
	logger *slog.Logger
}

func (h *loggingHandler) BadDeref(typeName string) {
	h.logger.Error("dereferenced empty deferred value", "type", typeName, "op", "deref")
}

func (h *loggingHandler) BadTake(typeName string) {
	h.logger.Error("take from empty deferred value", "type", typeName, "op", "take")
}

func badDerefMessage(typeName string) string {
	return fmt.Sprintf("deferred: dereferenced empty Value[%s]", typeName)
}

func badTakeMessage(typeName string) string {
	return fmt.Sprintf("deferred: take from empty Value[%s]", typeName)
}

// badDeref reports an empty dereference to the installed handler, then
// panics. The trailing panic fires only if the handler returned normally.
func badDeref[T any]() {
	name := typeName[T]()
	(*currentHandler.Load()).BadDeref(name)
	panic(badDerefMessage(name))
}

func badTake[T any]() {
	name := typeName[T]()
	(*currentHandler.Load()).BadTake(name)
	panic(badTakeMessage(name))
}

func typeName[T any]() string {
	var zero T

	return fmt.Sprintf("%T", zero)
}
