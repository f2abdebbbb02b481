package command

import (
	"context"
	"fmt"

	"github.com/jdamm/matlist/internal/config"
	"github.com/jdamm/matlist/internal/logger"
)

// CommandContext carries the run configuration and logger for all commands
type CommandContext struct {
	Config *config.Config
	Logger *logger.Logger
}

type commandContextKey struct{}

// WithCommandContext returns a new context with the command context instance
func WithCommandContext(ctx context.Context, cmdCtx *CommandContext) context.Context {
	return context.WithValue(ctx, commandContextKey{}, cmdCtx)
}

// GetCommandContext retrieves the command context instance from the context
func GetCommandContext(ctx context.Context) *CommandContext {
	if cmdCtx, ok := ctx.Value(commandContextKey{}).(*CommandContext); ok {
		return cmdCtx
	}
	return nil
}

// RequireCommandContext retrieves the command context and returns an error if not found
func RequireCommandContext(ctx context.Context) (*CommandContext, error) {
	cmdCtx := GetCommandContext(ctx)
	if cmdCtx == nil {
		return nil, fmt.Errorf("command context not initialized")
	}
	return cmdCtx, nil
}
