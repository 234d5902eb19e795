package script

import (
	"errors"
	"fmt"
)

type command interface {
	isCommand()
}

// simpleCommand is a list of raw words, assignments first.
type simpleCommand struct {
	words []Token
}

type ifCommand struct {
	conds    []*list
	bodies   []*list
	elseBody *list
}

type whileCommand struct {
	cond  *list
	body  *list
	until bool
}

type groupCommand struct {
	body *list
}

type funcDef struct {
	name string
	body command
}

func (*simpleCommand) isCommand() {}
func (*ifCommand) isCommand()     {}
func (*whileCommand) isCommand()  {}
func (*groupCommand) isCommand()  {}
func (*funcDef) isCommand()       {}

type pipeline struct {
	negate bool
	cmd    command
}

// andOr is a chain of pipelines joined by && and ||. ops[i] joins
// pipelines i and i+1.
type andOr struct {
	pipelines []*pipeline
	ops       []TokenType
}

type list struct {
	items []*andOr
}

type ParseError struct {
	Line int
	Col  int
	Msg  string
	// Incomplete is set when the input ended inside a construct.
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err came from input that ended too early,
// so more lines could complete it.
func IsIncomplete(err error) bool {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Incomplete
	}
	var lerr *LexError
	if errors.As(err, &lerr) {
		return lerr.Incomplete
	}
	return false
}

type parser struct {
	tokens []Token
	pos    int
}

// Parse turns source text into a command list.
func Parse(src string) (*list, error) {
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	l, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Type != EOF {
		return nil, p.unexpected(t)
	}
	return l, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	t := p.tokens[p.pos]
	if t.Type != EOF {
		p.pos++
	}
	return t
}

func (p *parser) unexpected(t Token) error {
	what := t.Type.String()
	if t.Type == WORD {
		what = fmt.Sprintf("%q", t.Lexeme)
	}
	return &ParseError{Line: t.Line, Col: t.Col, Msg: "syntax error near " + what, Incomplete: t.Type == EOF}
}

func (p *parser) isReserved(words ...string) bool {
	t := p.peek()
	if t.Type != WORD {
		return false
	}
	for _, w := range words {
		if t.Lexeme == w {
			return true
		}
	}
	return false
}

func (p *parser) expectReserved(word string) error {
	if !p.isReserved(word) {
		t := p.peek()
		return &ParseError{Line: t.Line, Col: t.Col, Msg: fmt.Sprintf("expected %q", word), Incomplete: t.Type == EOF}
	}
	p.next()
	return nil
}

func (p *parser) skipNewlines() {
	for p.peek().Type == NEWLINE {
		p.next()
	}
}

// parseList reads and-or lists until end of input, a closing paren or a
// reserved word that closes an enclosing construct.
func (p *parser) parseList() (*list, error) {
	l := &list{}
	for {
		for t := p.peek(); t.Type == NEWLINE || t.Type == SEMI; t = p.peek() {
			p.next()
		}
		t := p.peek()
		if t.Type == EOF || t.Type == RPAREN || p.isReserved("then", "elif", "else", "fi", "do", "done", "}") {
			return l, nil
		}
		ao, err := p.parseAndOr()
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, ao)
	}
}

func (p *parser) parseAndOr() (*andOr, error) {
	ao := &andOr{}
	for {
		pl, err := p.parsePipeline()
		if err != nil {
			return nil, err
		}
		ao.pipelines = append(ao.pipelines, pl)

		t := p.peek()
		if t.Type != AND_IF && t.Type != OR_IF {
			return ao, nil
		}
		p.next()
		p.skipNewlines()
		ao.ops = append(ao.ops, t.Type)
	}
}

func (p *parser) parsePipeline() (*pipeline, error) {
	pl := &pipeline{}
	if p.isReserved("!") {
		p.next()
		pl.negate = true
	}
	cmd, err := p.parseCommand()
	if err != nil {
		return nil, err
	}
	pl.cmd = cmd
	return pl, nil
}

func (p *parser) parseCommand() (command, error) {
	t := p.peek()
	if t.Type != WORD {
		return nil, p.unexpected(t)
	}

	switch t.Lexeme {
	case "if":
		return p.parseIf()
	case "while", "until":
		return p.parseWhile()
	case "{":
		return p.parseGroup()
	case "function":
		p.next()
		name := p.next()
		if name.Type != WORD {
			return nil, p.unexpected(name)
		}
		if p.peek().Type == LPAREN {
			p.next()
			if t := p.next(); t.Type != RPAREN {
				return nil, p.unexpected(t)
			}
		}
		return p.parseFuncBody(name.Lexeme)
	}

	if p.tokens[p.pos+1].Type == LPAREN {
		name := p.next()
		p.next()
		if t := p.next(); t.Type != RPAREN {
			return nil, p.unexpected(t)
		}
		return p.parseFuncBody(name.Lexeme)
	}

	cmd := &simpleCommand{}
	for p.peek().Type == WORD {
		cmd.words = append(cmd.words, p.next())
	}
	return cmd, nil
}

func (p *parser) parseFuncBody(name string) (command, error) {
	if !isIdentifier(name) {
		return nil, &ParseError{Line: p.peek().Line, Col: p.peek().Col, Msg: fmt.Sprintf("%q is not a valid function name", name)}
	}
	p.skipNewlines()
	body, err := p.parseCommand()
	if err != nil {
		return nil, err
	}
	return &funcDef{name: name, body: body}, nil
}

func (p *parser) parseGroup() (command, error) {
	p.next()
	body, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if err := p.expectReserved("}"); err != nil {
		return nil, err
	}
	return &groupCommand{body: body}, nil
}

func (p *parser) parseIf() (command, error) {
	p.next()
	cmd := &ifCommand{}
	for {
		cond, err := p.parseList()
		if err != nil {
			return nil, err
		}
		if err := p.expectReserved("then"); err != nil {
			return nil, err
		}
		body, err := p.parseList()
		if err != nil {
			return nil, err
		}
		cmd.conds = append(cmd.conds, cond)
		cmd.bodies = append(cmd.bodies, body)

		if p.isReserved("elif") {
			p.next()
			continue
		}
		if p.isReserved("else") {
			p.next()
			cmd.elseBody, err = p.parseList()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectReserved("fi"); err != nil {
			return nil, err
		}
		return cmd, nil
	}
}

func (p *parser) parseWhile() (command, error) {
	t := p.next()
	cond, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if err := p.expectReserved("do"); err != nil {
		return nil, err
	}
	body, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if err := p.expectReserved("done"); err != nil {
		return nil, err
	}
	return &whileCommand{cond: cond, body: body, until: t.Lexeme == "until"}, nil
}
