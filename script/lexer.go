package script

import (
	"fmt"
)

// TokenType represents the kind of token.
type TokenType int

const (
	EOF TokenType = iota
	WORD
	NEWLINE
	SEMI
	AND_IF // "&&"
	OR_IF  // "||"
	LPAREN
	RPAREN
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case WORD:
		return "word"
	case NEWLINE:
		return "newline"
	case SEMI:
		return "';'"
	case AND_IF:
		return "'&&'"
	case OR_IF:
		return "'||'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a lexical token. Words keep their raw source text, quotes
// included; expansion happens when the command runs.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

type Lexer struct {
	src    string
	start  int
	cur    int
	line   int
	col    int
	tokens []Token
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

type LexError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg, Incomplete: l.isAtEnd()}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	if l.cur+n >= len(l.src) {
		return 0, false
	}
	return l.src[l.cur+n], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	c := l.src[l.cur]
	l.cur++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c, true
}

func (l *Lexer) addToken(tt TokenType, line, col int) {
	l.tokens = append(l.tokens, Token{Type: tt, Lexeme: l.src[l.start:l.cur], Line: line, Col: col})
}

func isMeta(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ';', '&', '|', '(', ')':
		return true
	}
	return false
}

func (l *Lexer) skipBlanks() {
	for {
		c, ok := l.peek()
		if !ok {
			return
		}
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.advance()
		case c == '\\':
			if n, _ := l.peekN(1); n == '\n' {
				l.advance()
				l.advance()
				continue
			}
			return
		case c == '#':
			for {
				c, ok := l.peek()
				if !ok || c == '\n' {
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

// scanWord reads up to the next unquoted blank or operator.
func (l *Lexer) scanWord() error {
	for {
		c, ok := l.peek()
		if !ok || isMeta(c) {
			return nil
		}
		switch c {
		case '\'':
			l.advance()
			for {
				c, ok := l.advance()
				if !ok {
					return l.err("unterminated single quote")
				}
				if c == '\'' {
					break
				}
			}
		case '"':
			l.advance()
			for {
				c, ok := l.advance()
				if !ok {
					return l.err("unterminated double quote")
				}
				if c == '\\' {
					if _, ok := l.advance(); !ok {
						return l.err("unterminated double quote")
					}
					continue
				}
				if c == '"' {
					break
				}
			}
		case '\\':
			l.advance()
			if _, ok := l.advance(); !ok {
				return l.err("trailing backslash")
			}
		case '$':
			l.advance()
			if n, _ := l.peek(); n == '{' {
				for {
					c, ok := l.advance()
					if !ok {
						return l.err("unterminated ${")
					}
					if c == '}' {
						break
					}
				}
			}
		default:
			l.advance()
		}
	}
}

func (l *Lexer) scanToken() error {
	l.skipBlanks()
	l.start = l.cur
	line, col := l.line, l.col

	c, ok := l.peek()
	if !ok {
		return nil
	}

	switch c {
	case '\n':
		l.advance()
		l.addToken(NEWLINE, line, col)
	case ';':
		l.advance()
		l.addToken(SEMI, line, col)
	case '(':
		l.advance()
		l.addToken(LPAREN, line, col)
	case ')':
		l.advance()
		l.addToken(RPAREN, line, col)
	case '&':
		if n, _ := l.peekN(1); n != '&' {
			return l.err("background jobs are not supported")
		}
		l.advance()
		l.advance()
		l.addToken(AND_IF, line, col)
	case '|':
		if n, _ := l.peekN(1); n != '|' {
			return l.err("pipes are not supported")
		}
		l.advance()
		l.advance()
		l.addToken(OR_IF, line, col)
	default:
		if err := l.scanWord(); err != nil {
			return err
		}
		l.addToken(WORD, line, col)
	}
	return nil
}

// Scan tokenizes the whole source. The last token is always EOF.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipBlanks()
		if l.isAtEnd() {
			break
		}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokens = append(l.tokens, Token{Type: EOF, Line: l.line, Col: l.col})
	return l.tokens, nil
}
