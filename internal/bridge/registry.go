// Package bridge holds the command table the host transports dispatch into.
//
// A command is a name bound to a typed handler. Transports hand the registry a
// command name and the raw JSON arguments; the registry decodes them into the
// handler's request type, runs the handler and returns its response. Every
// failure comes back as a *CommandError whose text is what the caller sees.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// argumentKey is the name under which the host passes a command's single argument.
const argumentKey = "request"

// Failure kinds reported by CommandError.Kind.
const (
	KindUnknownCommand = "unknown_command"
	KindInvalidArgs    = "invalid_args"
	KindFailed         = "failed"
)

// CommandError is the single failure type crossing the bridge.
//
// Error returns only Message: that string is the whole failure payload seen by
// the caller. Kind lets transports pick a status code.
type CommandError struct {
	Command string
	Kind    string
	Message string
}

func (e *CommandError) Error() string { return e.Message }

// Failf builds a handler failure for a command. Handlers return it (or any other
// error, which the registry converts) to report a failure message.
func Failf(format string, args ...any) error {
	return &CommandError{Kind: KindFailed, Message: fmt.Sprintf(format, args...)}
}

// Command is a named, invocable handler.
type Command interface {
	Name() string
	Call(ctx context.Context, args json.RawMessage) (any, error)
}

type typedCommand[Req, Resp any] struct {
	name string
	fn   func(context.Context, Req) (Resp, error)
}

// Handle binds fn to name. The resulting Command decodes its arguments into Req.
//
// Arguments may be the request object itself or an object wrapping it under
// "request". Empty arguments are treated as null; whether null is accepted is
// up to Req's JSON decoding (a plain struct decodes it to its zero value).
func Handle[Req, Resp any](name string, fn func(context.Context, Req) (Resp, error)) Command {
	return &typedCommand[Req, Resp]{name: name, fn: fn}
}

func (c *typedCommand[Req, Resp]) Name() string { return c.name }

func (c *typedCommand[Req, Resp]) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var req Req
	if err := decodeArgs(args, &req); err != nil {
		return nil, &CommandError{
			Command: c.name,
			Kind:    KindInvalidArgs,
			Message: fmt.Sprintf("invalid args for command %s: %v", c.name, err),
		}
	}
	return c.fn(ctx, req)
}

func decodeArgs(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		trimmed = []byte("null")
	}

	// Unwrap {"request": {...}} when that is the only key.
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err == nil && len(wrapper) == 1 {
		if inner, ok := wrapper[argumentKey]; ok {
			trimmed = inner
		}
	}

	return json.Unmarshal(trimmed, dst)
}

// Registry maps command names to commands. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd. Names must be non-empty and unique.
func (r *Registry) Register(cmd Command) error {
	name := cmd.Name()
	if name == "" {
		return errors.New("command name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	r.commands[name] = cmd
	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (r *Registry) MustRegister(cmds ...Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Invoke runs the command called name with the raw JSON args.
//
// Any error returned is a *CommandError. Handler errors that are not already a
// CommandError are wrapped with Kind KindFailed and their text as Message.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	cmd, ok := r.Lookup(name)
	if !ok {
		return nil, &CommandError{
			Command: name,
			Kind:    KindUnknownCommand,
			Message: fmt.Sprintf("unknown command %q", name),
		}
	}

	out, err := cmd.Call(ctx, args)
	if err != nil {
		var ce *CommandError
		if errors.As(err, &ce) {
			out := *ce
			if out.Command == "" {
				out.Command = name
			}
			return nil, &out
		}
		return nil, &CommandError{Command: name, Kind: KindFailed, Message: err.Error()}
	}
	return out, nil
}
