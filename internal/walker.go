package newt

import (
	"context"
	"errors"
)

// ArgumentSequence is a forward-only view over the tokens of one dispatch.
type ArgumentSequence struct {
	tokens []string
	pos    int
}

func NewArgumentSequence(tokens []string) *ArgumentSequence {
	return &ArgumentSequence{tokens: tokens}
}

// Next consumes one token.
func (s *ArgumentSequence) Next() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	token := s.tokens[s.pos]
	s.pos++
	return token, true
}

// Remaining is the number of unconsumed tokens.
func (s *ArgumentSequence) Remaining() int {
	return len(s.tokens) - s.pos
}

// Position is the index of the next token to be consumed.
func (s *ArgumentSequence) Position() int {
	return s.pos
}

// call is the state of one dispatch as seen by a wrapper.
type call struct {
	command   string
	usage     string
	args      *ArgumentSequence
	resultVar string
}

func (c *call) missing() *BindingError {
	return newError(PhaseDecode, KindMissingArgument).
		Command(c.command, c.usage).
		At(c.args.Position(), "").
		Build()
}

func (c *call) unparseable(position int, token string, cause error) *BindingError {
	return newError(PhaseDecode, KindUnparseableArgument).
		Command(c.command, c.usage).
		At(position, token).
		Cause(cause).
		Build()
}

func (e *engine) decodeOne(ctx context.Context, c *call, kind Kind) (any, error) {
	position := c.args.Position()
	token, ok := c.args.Next()
	if !ok {
		return nil, c.missing()
	}
	v, err := e.types[kind].FromToken(ctx, token)
	if err != nil {
		return nil, c.unparseable(position, token, err)
	}
	return v, nil
}

// walk decodes exactly len(kinds) tokens, left to right, stopping at the
// first failure. Nothing is committed anywhere until every token decoded.
func (e *engine) walk(ctx context.Context, c *call, kinds []Kind) ([]any, error) {
	values := make([]any, len(kinds))
	for i, kind := range kinds {
		v, err := e.decodeOne(ctx, c, kind)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// walkOptional is walk for a signature whose last len(defaults) parameters
// may be left off. Missing optional parameters decode their default token.
func (e *engine) walkOptional(ctx context.Context, c *call, kinds []Kind, defaults []string) ([]any, error) {
	required := len(kinds) - len(defaults)
	values, err := e.walk(ctx, c, kinds[:required])
	if err != nil {
		return nil, err
	}
	for i, kind := range kinds[required:] {
		if c.args.Remaining() > 0 {
			v, err := e.decodeOne(ctx, c, kind)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
			continue
		}
		v, err := e.types[kind].FromToken(ctx, defaults[i])
		if err != nil {
			return nil, c.unparseable(c.args.Position(), defaults[i], err)
		}
		values = append(values, v)
	}
	return values, nil
}

// walkVariadic decodes every remaining token as kind. Zero tokens is valid.
func (e *engine) walkVariadic(ctx context.Context, c *call, kind Kind) ([]any, error) {
	values := make([]any, 0, c.args.Remaining())
	for c.args.Remaining() > 0 {
		v, err := e.decodeOne(ctx, c, kind)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// walkNames consumes one variable name per result.
func (e *engine) walkNames(ctx context.Context, c *call, n int) ([]string, error) {
	names := make([]string, n)
	for i := range names {
		token, ok := c.args.Next()
		if !ok {
			return nil, c.missing()
		}
		names[i] = token
	}
	return names, nil
}

// isInvalidHandle reports whether a decode failure came from a token that
// parsed as a pointer but was never handed out.
func isInvalidHandle(err error) bool {
	return errors.Is(err, ErrInvalidHandle)
}
