package core

import (
	"context"

	"github.com/rs/zerolog"
)

// A Context is passed to every operation that touches values. This runtime
// excerpt only carries the logger and the embedded go context; the evaluator
// adds its own state on top.
type Context struct {
	context.Context

	logger zerolog.Logger
}

type ContextConfig struct {
	// defaults to a disabled logger
	Logger zerolog.Logger

	// defaults to context.Background()
	ParentStdLibContext context.Context
}

func NewContext(config ContextConfig) *Context {
	stdlibCtx := config.ParentStdLibContext
	if stdlibCtx == nil {
		stdlibCtx = context.Background()
	}

	return &Context{
		Context: stdlibCtx,
		logger:  config.Logger,
	}
}

func (ctx *Context) Logger() *zerolog.Logger {
	return &ctx.logger
}
