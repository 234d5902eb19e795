package script

import (
	"fmt"
	"strconv"
	"strings"
)

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

func isIdentifier(s string) bool {
	if s == "" || !isNameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameChar(s[i]) {
			return false
		}
	}
	return true
}

// LegalName reports whether name can be assigned: an identifier, or an
// identifier followed by a non-empty [key].
func LegalName(name string) bool {
	open := strings.IndexByte(name, '[')
	if open < 0 {
		return isIdentifier(name)
	}
	return isIdentifier(name[:open]) && len(name) > open+2 && name[len(name)-1] == ']'
}

// splitAssignment recognises NAME=value and NAME[key]=value in a raw word.
// The name part must be unquoted.
func splitAssignment(raw string) (name, value string, ok bool) {
	eq := strings.IndexByte(raw, '=')
	if eq <= 0 {
		return "", "", false
	}
	name = raw[:eq]
	if strings.ContainsAny(name, "'\"\\") {
		return "", "", false
	}
	if open := strings.IndexByte(name, '['); open >= 0 {
		if !isIdentifier(name[:open]) || name[len(name)-1] != ']' || len(name) < open+3 {
			return "", "", false
		}
	} else if !isIdentifier(name) {
		return "", "", false
	}
	return name, raw[eq+1:], true
}

type expander struct {
	in *Interp
}

// fields expands a raw word. Unquoted words that expand to nothing are
// dropped; "$@" expands to one field per positional parameter.
func (x expander) fields(raw string) ([]string, error) {
	if raw == `"$@"` || raw == "$@" {
		return append([]string(nil), x.in.positional()...), nil
	}
	s, quoted, err := x.expand(raw, true)
	if err != nil {
		return nil, err
	}
	if s == "" && !quoted {
		return nil, nil
	}
	return []string{s}, nil
}

// word expands raw to exactly one string.
func (x expander) word(raw string) (string, error) {
	s, _, err := x.expand(raw, true)
	return s, err
}

// expand removes quotes and substitutes parameters. With quotes false,
// quote characters are literal (used for array keys).
func (x expander) expand(raw string, quotes bool) (string, bool, error) {
	var b strings.Builder
	quoted := false
	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == '\'' && quotes:
			quoted = true
			end := strings.IndexByte(raw[i+1:], '\'')
			if end < 0 {
				return "", false, fmt.Errorf("unterminated single quote")
			}
			b.WriteString(raw[i+1 : i+1+end])
			i += end + 2
		case c == '"' && quotes:
			quoted = true
			i++
			for {
				if i >= len(raw) {
					return "", false, fmt.Errorf("unterminated double quote")
				}
				c := raw[i]
				if c == '"' {
					i++
					break
				}
				if c == '\\' && i+1 < len(raw) && strings.IndexByte("$\"\\`\n", raw[i+1]) >= 0 {
					b.WriteByte(raw[i+1])
					i += 2
					continue
				}
				if c == '$' {
					v, n, err := x.dollar(raw[i:])
					if err != nil {
						return "", false, err
					}
					b.WriteString(v)
					i += n
					continue
				}
				b.WriteByte(c)
				i++
			}
		case c == '\\' && quotes:
			quoted = true
			if i+1 < len(raw) {
				b.WriteByte(raw[i+1])
			}
			i += 2
		case c == '$':
			v, n, err := x.dollar(raw[i:])
			if err != nil {
				return "", false, err
			}
			b.WriteString(v)
			i += n
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), quoted, nil
}

// dollar expands the parameter at the start of s and returns how many
// bytes it consumed.
func (x expander) dollar(s string) (string, int, error) {
	if len(s) < 2 {
		return "$", 1, nil
	}
	c := s[1]
	switch {
	case c == '{':
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", 0, fmt.Errorf("unterminated ${")
		}
		v, err := x.braced(s[2:end])
		return v, end + 1, err
	case c == '?':
		return strconv.Itoa(x.in.status), 2, nil
	case c == '#':
		return strconv.Itoa(len(x.in.positional())), 2, nil
	case c == '@' || c == '*':
		return strings.Join(x.in.positional(), " "), 2, nil
	case c >= '0' && c <= '9':
		return x.in.arg(int(c - '0')), 2, nil
	case isNameStart(c):
		n := 2
		for n < len(s) && isNameChar(s[n]) {
			n++
		}
		v, _ := x.in.Get(s[1:n])
		return v, n, nil
	}
	return "$", 1, nil
}

// braced handles NAME, NAME[key], N and the :- default form.
func (x expander) braced(inner string) (string, error) {
	def, hasDefault := "", false
	if i := strings.Index(inner, ":-"); i >= 0 {
		inner, def, hasDefault = inner[:i], inner[i+2:], true
	}

	var v string
	if n, err := strconv.Atoi(inner); err == nil {
		v = x.in.arg(n)
	} else {
		name := inner
		if open := strings.IndexByte(inner, '['); open >= 0 && inner[len(inner)-1] == ']' {
			key, _, err := x.expand(inner[open+1:len(inner)-1], false)
			if err != nil {
				return "", err
			}
			name = inner[:open] + "[" + key + "]"
			if !isIdentifier(inner[:open]) {
				return "", fmt.Errorf("${%s}: bad substitution", inner)
			}
		} else if !isIdentifier(name) {
			return "", fmt.Errorf("${%s}: bad substitution", inner)
		}
		v, _ = x.in.Get(name)
	}

	if v == "" && hasDefault {
		d, _, err := x.expand(def, true)
		return d, err
	}
	return v, nil
}
