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

// Package sdl parses the subset of the GraphQL schema definition language needed to define types
// inline: union definitions ("union Name = A | B") and object definitions
// ("type Name { field: Type }").
package sdl

import (
	"fmt"

	"github.com/botobag/hermes/graphql"
)

// IsName returns true if s is a bare type name (/[_A-Za-z][_0-9A-Za-z]*/) as opposed to a type
// definition source.
func IsName(s string) bool {
	if len(s) == 0 || !isNameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameContinue(s[i]) {
			return false
		}
	}
	return true
}

// Parse parses the given source into a single type definition.
func Parse(source string) (Definition, error) {
	p := &parser{lexer: newLexer(source)}
	if err := p.init(); err != nil {
		return nil, err
	}
	return p.parseDefinition()
}

// ParseTypeRef parses the given source into a single type reference such as "Droid", "[Droid]" or
// "Droid!".
func ParseTypeRef(source string) (TypeRef, error) {
	p := &parser{lexer: newLexer(source)}
	if err := p.init(); err != nil {
		return nil, err
	}
	ref, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenEOF); err != nil {
		return nil, err
	}
	return ref, nil
}

// parser implements a recursive-descent parser over the token stream with one token of lookahead.
type parser struct {
	lexer *lexer
	// curr is the lookahead token.
	curr token
}

func (p *parser) init() error {
	return p.consume()
}

// consume loads the next token into curr.
func (p *parser) consume() error {
	tok, err := p.lexer.next()
	if err != nil {
		return err
	}
	p.curr = tok
	return nil
}

// expect asserts that the current token has the given kind and consumes it.
func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.curr
	if tok.kind != kind {
		return tok, p.unexpected(tok, kind.String())
	}
	return tok, p.consume()
}

// expectKeyword asserts that the current token is a name with the given value and consumes it.
func (p *parser) expectKeyword(keyword string) error {
	tok := p.curr
	if tok.kind != tokenName || tok.value != keyword {
		return p.unexpected(tok, fmt.Sprintf("%q", keyword))
	}
	return p.consume()
}

// skip consumes the current token if it has the given kind.
func (p *parser) skip(kind tokenKind) (bool, error) {
	if p.curr.kind != kind {
		return false, nil
	}
	return true, p.consume()
}

func (p *parser) unexpected(tok token, expected string) error {
	return graphql.NewError(
		fmt.Sprintf("Expected %s but found %s (line %d, column %d).",
			expected, tok.String(), tok.line, tok.column),
		graphql.ErrKindSyntax)
}

// parseDefinition parses either a union or an object definition and requires the source to
// contain nothing else.
func (p *parser) parseDefinition() (Definition, error) {
	tok := p.curr
	if tok.kind != tokenName {
		return nil, p.unexpected(tok, `"union" or "type"`)
	}

	var (
		def Definition
		err error
	)
	switch tok.value {
	case "union":
		def, err = p.parseUnionDefinition()
	case "type":
		def, err = p.parseObjectDefinition()
	default:
		return nil, p.unexpected(tok, `"union" or "type"`)
	}
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokenEOF); err != nil {
		return nil, err
	}
	return def, nil
}

// parseUnionDefinition : "union" Name "=" "|"? Name ("|" Name)*
func (p *parser) parseUnionDefinition() (*UnionDefinition, error) {
	if err := p.expectKeyword("union"); err != nil {
		return nil, err
	}

	name, err := p.expect(tokenName)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokenEquals); err != nil {
		return nil, err
	}

	// An optional leading pipe is allowed.
	if _, err := p.skip(tokenPipe); err != nil {
		return nil, err
	}

	var members []string
	for {
		member, err := p.expect(tokenName)
		if err != nil {
			return nil, err
		}
		members = append(members, member.value)

		more, err := p.skip(tokenPipe)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return &UnionDefinition{
		Name:    name.value,
		Members: members,
	}, nil
}

// parseObjectDefinition : "type" Name "{" (Name ":" TypeRef)+ "}"
func (p *parser) parseObjectDefinition() (*ObjectDefinition, error) {
	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}

	name, err := p.expect(tokenName)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokenLeftBrace); err != nil {
		return nil, err
	}

	var fields []FieldDefinition
	for p.curr.kind != tokenRightBrace {
		fieldName, err := p.expect(tokenName)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenColon); err != nil {
			return nil, err
		}
		fieldType, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		fields = append(fields, FieldDefinition{
			Name: fieldName.value,
			Type: fieldType,
		})
	}

	if len(fields) == 0 {
		return nil, p.unexpected(p.curr, "at least one field definition")
	}

	if _, err := p.expect(tokenRightBrace); err != nil {
		return nil, err
	}

	return &ObjectDefinition{
		Name:   name.value,
		Fields: fields,
	}, nil
}

// parseTypeRef : Name | "[" TypeRef "]", optionally followed by "!"
func (p *parser) parseTypeRef() (TypeRef, error) {
	var ref TypeRef

	if opened, err := p.skip(tokenLeftBracket); err != nil {
		return nil, err
	} else if opened {
		element, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRightBracket); err != nil {
			return nil, err
		}
		ref = ListTypeRef{Element: element}
	} else {
		name, err := p.expect(tokenName)
		if err != nil {
			return nil, err
		}
		ref = NamedTypeRef{Name: name.value}
	}

	if nonNull, err := p.skip(tokenBang); err != nil {
		return nil, err
	} else if nonNull {
		ref = NonNullTypeRef{Element: ref}
	}

	return ref, nil
}
