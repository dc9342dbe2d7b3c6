package wrap

import (
	"context"
	"errors"
)

// errorWithLogCtx carries the LogCtx of the layer that produced err up to the
// layer that logs it.
type errorWithLogCtx struct {
	err    error
	logCtx LogCtx
}

func (e *errorWithLogCtx) Error() string {
	return e.err.Error()
}

func (e *errorWithLogCtx) Unwrap() error {
	return e.err
}

// Error attaches the LogCtx of ctx to err so the logging site can restore it with ErrorCtx.
// Wrapping an already wrapped error replaces the attached LogCtx.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*errorWithLogCtx); ok {
		err = e.err
	}

	return &errorWithLogCtx{
		err:    err,
		logCtx: fromCtx(ctx),
	}
}

// ErrorCtx returns ctx with the LogCtx attached to err merged over it. Fields
// the error did not record, usually the request id, keep their value from ctx.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *errorWithLogCtx
	if errors.As(err, &e) && e != nil {
		return WithLogCtx(ctx, e.logCtx)
	}
	return ctx
}
