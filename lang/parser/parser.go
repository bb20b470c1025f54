// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package parser implements a recursive-descent parser for the Imp language.
//
// Design overview:
//
//   - Tokens are pulled from the lexer on demand; the parser keeps exactly
//     one token of lookahead and every production is chosen by its kind.
//   - Expressions use a two-level precedence climb: Expression handles the
//     additive operators, Term the multiplicative ones, Factor the atoms and
//     parenthesised groups. Both levels are left-associative.
//   - Block terminators ("end") are consumed by the enclosing if/while, not
//     by the statement-list loop.
//   - Parsing stops at the first error. No partial tree is returned.
//
// Grammar:
//
//	Program    := Statement* EOF
//	Statement  := Assign | If | While | Print
//	Assign     := IDENT ":=" Expression ";"
//	If         := "if" Expression "then" Statement* "end"
//	While      := "while" Expression "do" Statement* "end"
//	Print      := "print" Expression ";"
//	Expression := Term (("+" | "-") Term)*
//	Term       := Factor (("*" | "/") Factor)*
//	Factor     := NUMBER | IDENT | "(" Expression ")"
package parser

import (
	"errors"
	"strconv"

	"github.com/ethereum/go-ethereum/log"

	"github.com/probechain/go-imp/lang/ast"
	"github.com/probechain/go-imp/lang/lexer"
	"github.com/probechain/go-imp/lang/token"
)

// TokenSource supplies tokens on demand. *lexer.Lexer implements it.
type TokenSource interface {
	Next() (token.Token, error)
}

// statementStart lists the kinds that may begin a statement.
var statementStart = []token.Kind{token.IDENT, token.IF, token.WHILE, token.PRINT}

// factorStart lists the kinds that may begin a factor.
var factorStart = []token.Kind{token.NUMBER, token.IDENT, token.LPAREN}

// Parser holds the mutable state for a single parse run.
type Parser struct {
	src TokenSource
	cur token.Token // current (lookahead) token
}

// ParseProgram parses a complete program from src. It returns either the
// whole tree or the first lexical or syntax error encountered.
func ParseProgram(src TokenSource) (*ast.Program, error) {
	p := &Parser{src: src}
	if err := p.advance(); err != nil {
		return nil, err
	}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	log.Trace("Parsed program", "statements", len(prog.Statements))
	return prog, nil
}

// Parse lexes and parses source text.
func Parse(source string) (*ast.Program, error) {
	return ParseProgram(lexer.New(source))
}

// IsIncomplete reports whether err is a syntax error caused by the input
// ending too early, i.e. more text could still turn it into a valid program.
func IsIncomplete(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Incomplete()
}

// ---------------------------------------------------------------------------
// Token navigation helpers
// ---------------------------------------------------------------------------

// advance pulls the next token from the source into cur.
func (p *Parser) advance() error {
	tok, err := p.src.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// curIs returns true if the current token has the given kind.
func (p *Parser) curIs(kind token.Kind) bool { return p.cur.Kind == kind }

// expect consumes the current token if it has the given kind, otherwise it
// fails with a *ParseError naming kind.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return p.cur, p.unexpected(kind)
	}
	tok := p.cur
	return tok, p.advance()
}

// unexpected builds the error for the current token.
func (p *Parser) unexpected(expected ...token.Kind) error {
	return &ParseError{Expected: expected, Found: p.cur}
}

// ---------------------------------------------------------------------------
// Program and statements
// ---------------------------------------------------------------------------

func (p *Parser) parseProgram() (*ast.Program, error) {
	stmts, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return &ast.Program{Statements: stmts}, nil
}

// parseStatementList parses statements until the current token is END or
// EOF. Neither terminator is consumed.
func (p *Parser) parseStatementList() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.curIs(token.END) && !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStatement dispatches on the current token.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.IDENT:
		return p.parseAssign()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.PRINT:
		return p.parsePrint()
	default:
		return nil, p.unexpected(statementStart...)
	}
}

// Assign := IDENT ":=" Expression ";"
func (p *Parser) parseAssign() (*ast.AssignStmt, error) {
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.AssignStmt{NamePos: name.Pos, Name: name.Lexeme, Value: value}, nil
}

// If := "if" Expression "then" Statement* "end"
func (p *Parser) parseIf() (*ast.IfStmt, error) {
	kw, cond, body, err := p.parseBlock(token.IF, token.THEN)
	if err != nil {
		return nil, err
	}
	return &ast.IfStmt{If: kw.Pos, Cond: cond, Then: body}, nil
}

// While := "while" Expression "do" Statement* "end"
func (p *Parser) parseWhile() (*ast.WhileStmt, error) {
	kw, cond, body, err := p.parseBlock(token.WHILE, token.DO)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{While: kw.Pos, Cond: cond, Body: body}, nil
}

// parseBlock parses the shared shape of if and while:
// opener Expression separator Statement* "end".
func (p *Parser) parseBlock(opener, separator token.Kind) (token.Token, ast.Expression, []ast.Statement, error) {
	kw, err := p.expect(opener)
	if err != nil {
		return kw, nil, nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return kw, nil, nil, err
	}
	if _, err := p.expect(separator); err != nil {
		return kw, nil, nil, err
	}
	body, err := p.parseStatementList()
	if err != nil {
		return kw, nil, nil, err
	}
	if _, err := p.expect(token.END); err != nil {
		return kw, nil, nil, err
	}
	return kw, cond, body, nil
}

// Print := "print" Expression ";"
func (p *Parser) parsePrint() (*ast.PrintStmt, error) {
	kw, err := p.expect(token.PRINT)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Print: kw.Pos, Value: value}, nil
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Expression := Term (("+" | "-") Term)*
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseBinary(p.parseTerm, token.PLUS, token.MINUS)
}

// Term := Factor (("*" | "/") Factor)*
func (p *Parser) parseTerm() (ast.Expression, error) {
	return p.parseBinary(p.parseFactor, token.STAR, token.SLASH)
}

// parseBinary parses one precedence level: operand (op operand)*, folding
// to the left so that a - b - c is (a - b) - c.
func (p *Parser) parseBinary(operand func() (ast.Expression, error), ops ...token.Kind) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.curIsAny(ops) {
		opTok := p.cur
		op, _ := ast.OpFromToken(opTok.Kind)
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, OpPos: opTok.Pos, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) curIsAny(kinds []token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// Factor := NUMBER | IDENT | "(" Expression ")"
func (p *Parser) parseFactor() (ast.Expression, error) {
	tok := p.cur
	switch tok.Kind {
	case token.NUMBER:
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, &ParseError{Found: tok, Reason: "integer literal out of range"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{ValuePos: tok.Pos, Value: value}, nil

	case token.IDENT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Variable{NamePos: tok.Pos, Name: tok.Lexeme}, nil

	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Grouping{Lparen: tok.Pos, Inner: inner}, nil

	default:
		return nil, p.unexpected(factorStart...)
	}
}
