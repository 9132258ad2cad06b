package enulang

// Parse builds a Program from tokens.
//
// Precedence, loosest first: assignment, + -, * /, unary + -, primary.
// Binary operators are left-associative. Newlines separate statements.
func Parse(tokens TokenStream) (*Program, error) {
	p := &parser{
		tokens: tokens,
	}
	return p.parseProgram()
}

type parser struct {
	tokens TokenStream
}

func (p *parser) parseProgram() (*Program, error) {
	program := new(Program)
	for {
		switch p.tokens.Current().Kind {
		case TokenNewline:
			p.tokens.Consume()
			continue
		case TokenEOF:
			return program, nil
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)

		token := p.tokens.Current()
		switch token.Kind {
		case TokenNewline:
			p.tokens.Consume()
		case TokenEOF:
			return program, nil
		default:
			return nil, &ParseError{
				Expected: "newline or end of input",
				Got:      token,
			}
		}
	}
}

func (p *parser) parseStatement() (Stmt, error) {
	if p.tokens.Current().Kind == TokenIdentifier &&
		p.tokens.Peek().Kind == TokenAssign {
		name := p.tokens.Current().Text
		p.tokens.Consume()
		p.tokens.Consume()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return AssignStmt{
			Name:  name,
			Value: value,
		}, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ExprStmt{
		Expr: expr,
	}, nil
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseAdditive()
}

func (p *parser) parseAdditive() (Expr, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.tokens.Current().Kind
		if kind != TokenPlus && kind != TokenMinus {
			return expr, nil
		}
		p.tokens.Consume()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = BinaryExpr{
			Op:    tokenOps[kind],
			Left:  expr,
			Right: right,
		}
	}
}

func (p *parser) parseMultiplicative() (Expr, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.tokens.Current().Kind
		if kind != TokenStar && kind != TokenSlash {
			return expr, nil
		}
		p.tokens.Consume()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = BinaryExpr{
			Op:    tokenOps[kind],
			Left:  expr,
			Right: right,
		}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	kind := p.tokens.Current().Kind
	if kind == TokenPlus || kind == TokenMinus {
		p.tokens.Consume()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return UnaryExpr{
			Op:      tokenOps[kind],
			Operand: operand,
		}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	token := p.tokens.Current()
	switch token.Kind {

	case TokenNumber:
		p.tokens.Consume()
		return NumberExpr{
			Text: token.Text,
		}, nil

	case TokenIdentifier:
		p.tokens.Consume()
		return IdentExpr{
			Name: token.Text,
		}, nil

	case TokenLeftParen:
		p.tokens.Consume()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.tokens.Current(); closing.Kind != TokenRightParen {
			return nil, &ParseError{
				Expected: "')'",
				Got:      closing,
			}
		}
		p.tokens.Consume()
		return GroupExpr{
			Inner: inner,
		}, nil

	}

	return nil, &ParseError{
		Expected: "expression",
		Got:      token,
	}
}
