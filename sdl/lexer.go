/**
 * Copyright (c) 2019, The Hermes Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package sdl

import (
	"fmt"

	"github.com/botobag/hermes/graphql"
)

// tokenKind enumerates kinds of token produced by the lexer.
type tokenKind int

// Enumeration of tokenKind
const (
	tokenEOF tokenKind = iota
	tokenName
	tokenPipe         // |
	tokenEquals       // =
	tokenColon        // :
	tokenBang         // !
	tokenLeftBrace    // {
	tokenRightBrace   // }
	tokenLeftBracket  // [
	tokenRightBracket // ]
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "<EOF>"
	case tokenName:
		return "Name"
	case tokenPipe:
		return `"|"`
	case tokenEquals:
		return `"="`
	case tokenColon:
		return `":"`
	case tokenBang:
		return `"!"`
	case tokenLeftBrace:
		return `"{"`
	case tokenRightBrace:
		return `"}"`
	case tokenLeftBracket:
		return `"["`
	case tokenRightBracket:
		return `"]"`
	}
	return "<unknown>"
}

// token is a lexical token in a type definition source.
type token struct {
	kind  tokenKind
	value string

	// Both line and column are positive numbers starting from 1.
	line   int
	column int
}

func (t token) String() string {
	if t.kind == tokenName {
		return fmt.Sprintf("Name %q", t.value)
	}
	return t.kind.String()
}

// lexer tokenizes a type definition source. Commas and line comments starting with "#" are
// treated as insignificant, matching GraphQL lexical rules.
type lexer struct {
	input  string
	pos    int
	line   int
	column int
}

func newLexer(input string) *lexer {
	return &lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// isNameStart reports whether b can start a name: /[_A-Za-z]/.
func isNameStart(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// isNameContinue reports whether b can continue a name: /[_0-9A-Za-z]/.
func isNameContinue(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9')
}

// advance consumes one byte and maintains line and column counters.
func (l *lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

// skipInsignificant skips whitespace, commas and line comments.
func (l *lexer) skipInsignificant() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n', ',':
			l.advance()
		case '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// next scans and returns the next token.
func (l *lexer) next() (token, error) {
	l.skipInsignificant()

	tok := token{
		line:   l.line,
		column: l.column,
	}

	if l.pos >= len(l.input) {
		tok.kind = tokenEOF
		return tok, nil
	}

	b := l.input[l.pos]
	switch b {
	case '|':
		tok.kind = tokenPipe
	case '=':
		tok.kind = tokenEquals
	case ':':
		tok.kind = tokenColon
	case '!':
		tok.kind = tokenBang
	case '{':
		tok.kind = tokenLeftBrace
	case '}':
		tok.kind = tokenRightBrace
	case '[':
		tok.kind = tokenLeftBracket
	case ']':
		tok.kind = tokenRightBracket
	default:
		if !isNameStart(b) {
			return tok, graphql.NewError(
				fmt.Sprintf("Unexpected character %q (line %d, column %d).", string(b), l.line, l.column),
				graphql.ErrKindSyntax)
		}
		start := l.pos
		for l.pos < len(l.input) && isNameContinue(l.input[l.pos]) {
			l.advance()
		}
		tok.kind = tokenName
		tok.value = l.input[start:l.pos]
		return tok, nil
	}

	l.advance()
	return tok, nil
}
