package enulang

import (
	"errors"
	"reflect"
	"testing"
)

func parse(t *testing.T, src string) *Program {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("src: %s, err: %v", src, err)
	}
	program, err := Parse(NewSliceTokenStream(tokens))
	if err != nil {
		t.Fatalf("src: %s, err: %v", src, err)
	}
	return program
}

func num(text string) NumberExpr {
	return NumberExpr{Text: text}
}

func TestParser(t *testing.T) {
	tests := []struct {
		input    string
		expected []Stmt
	}{
		{
			input: "1 + 2 * 3",
			expected: []Stmt{
				ExprStmt{BinaryExpr{OpAdd, num("1"), BinaryExpr{OpMul, num("2"), num("3")}}},
			},
		},
		{
			input: "1 - 2 - 3",
			expected: []Stmt{
				ExprStmt{BinaryExpr{OpSub, BinaryExpr{OpSub, num("1"), num("2")}, num("3")}},
			},
		},
		{
			input: "8 / 4 / 2",
			expected: []Stmt{
				ExprStmt{BinaryExpr{OpDiv, BinaryExpr{OpDiv, num("8"), num("4")}, num("2")}},
			},
		},
		{
			input: "(1 + 2) * 3",
			expected: []Stmt{
				ExprStmt{BinaryExpr{OpMul, GroupExpr{BinaryExpr{OpAdd, num("1"), num("2")}}, num("3")}},
			},
		},
		{
			input: "-(x)",
			expected: []Stmt{
				ExprStmt{UnaryExpr{OpSub, GroupExpr{IdentExpr{"x"}}}},
			},
		},
		{
			input: "- -1",
			expected: []Stmt{
				ExprStmt{UnaryExpr{OpSub, num("-1")}},
			},
		},
		{
			input: "+x * -y",
			expected: []Stmt{
				ExprStmt{BinaryExpr{OpMul, UnaryExpr{OpAdd, IdentExpr{"x"}}, UnaryExpr{OpSub, IdentExpr{"y"}}}},
			},
		},
		{
			input: "x = 10 + 2;30 - 5.5",
			expected: []Stmt{
				AssignStmt{
					Name:  "x",
					Value: BinaryExpr{OpSub, BinaryExpr{OpAdd, num("10"), num("2;30")}, num("5.5")},
				},
			},
		},
		{
			input: "\n\nx = 1\n\n\nx\n",
			expected: []Stmt{
				AssignStmt{Name: "x", Value: num("1")},
				ExprStmt{IdentExpr{"x"}},
			},
		},
		{
			input:    "",
			expected: nil,
		},
		{
			input:    "\n\n",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			program := parse(t, test.input)
			if !reflect.DeepEqual(program.Stmts, test.expected) {
				t.Fatalf("expected %#v, got %#v", test.expected, program.Stmts)
			}
		})
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		got      TokenKind
	}{
		{"1 +", "expression", TokenEOF},
		{"(1", "')'", TokenEOF},
		{"(1 + 2\n)", "')'", TokenNewline},
		{")", "expression", TokenRightParen},
		{"1)", "newline or end of input", TokenRightParen},
		{"x = y = 1", "newline or end of input", TokenAssign},
		{"1 = 2", "newline or end of input", TokenAssign},
		{"1 2", "newline or end of input", TokenNumber},
		{"=", "expression", TokenAssign},
		{"x =", "expression", TokenEOF},
		{"()", "expression", TokenRightParen},
		{"1\n*", "expression", TokenStar},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, err := Tokenize(test.input)
			if err != nil {
				t.Fatal(err)
			}
			_, err = Parse(NewSliceTokenStream(tokens))
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("got %v", err)
			}
			if parseErr.Expected != test.expected {
				t.Fatalf("expected %q, got %q", test.expected, parseErr.Expected)
			}
			if parseErr.Got.Kind != test.got {
				t.Fatalf("expected %v, got %v", test.got, parseErr.Got.Kind)
			}
		})
	}
}

func TestSliceTokenStreamPastEnd(t *testing.T) {
	stream := NewSliceTokenStream(nil)
	if stream.Current().Kind != TokenEOF || stream.Peek().Kind != TokenEOF {
		t.Fatal()
	}
	stream.Consume()
	if stream.Current().Kind != TokenEOF {
		t.Fatal()
	}
}
