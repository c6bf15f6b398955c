package kicadsexp

import (
	"io"
	"strconv"
)

// Parser parses S-expressions from a lexer
type Parser struct {
	lexer   *Lexer
	current Token
}

// NewParser creates a new parser from an io.Reader
func NewParser(r io.Reader) *Parser {
	return &Parser{
		lexer: NewLexer(r),
	}
}

// ParseAll parses all top-level S-expressions from the input
func (p *Parser) ParseAll() ([]Sexp, error) {
	var result []Sexp

	tok, err := p.lexer.NextToken()
	if err != nil {
		return nil, err
	}
	p.current = tok

	for p.current.Type != TokenEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, expr)

		tok, err := p.lexer.NextToken()
		if err != nil {
			return nil, err
		}
		p.current = tok
	}

	return result, nil
}

// ParseFirst parses the first top-level S-expression and ignores the rest.
func (p *Parser) ParseFirst() (Sexp, error) {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return nil, err
	}
	p.current = tok

	if p.current.Type == TokenEOF {
		return nil, &ParseError{Msg: "empty input"}
	}

	return p.parseExpr()
}

// parseExpr parses a single S-expression
func (p *Parser) parseExpr() (Sexp, error) {
	switch p.current.Type {
	case TokenLeftParen:
		return p.parseList()

	case TokenString:
		return Str(p.current.Value), nil

	case TokenSymbol:
		// Numeric atoms keep their source text; everything else is a
		// plain symbol. Tokens like true/false/nil get no special
		// treatment so table fields round-trip literally.
		if isNumber(p.current.Value) {
			return Number(p.current.Value), nil
		}
		return Symbol(p.current.Value), nil

	case TokenRightParen:
		return nil, &ParseError{Msg: "unexpected ')'"}

	case TokenEOF:
		return nil, &ParseError{Msg: "unexpected EOF"}

	default:
		return nil, &ParseError{Msg: "unexpected token " + p.current.Value}
	}
}

// parseList parses a list: ( ... )
func (p *Parser) parseList() (Sexp, error) {
	if p.current.Type != TokenLeftParen {
		return nil, &ParseError{Msg: "expected '(', got " + p.current.Value}
	}

	var elements []Sexp

	for {
		tok, err := p.lexer.NextToken()
		if err != nil {
			return nil, err
		}
		p.current = tok

		if p.current.Type == TokenRightParen {
			break
		}

		if p.current.Type == TokenEOF {
			return nil, &ParseError{Msg: "unbalanced parentheses: unexpected EOF in list"}
		}

		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}

	return &List{elements: elements}, nil
}

// isNumber reports whether a bare token is an integer or decimal literal.
func isNumber(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if c != '-' && c != '+' && c != '.' && (c < '0' || c > '9') {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
