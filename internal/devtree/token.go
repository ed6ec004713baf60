package devtree

import "fmt"

// TokenKind identifies what a resolved token stands for.
type TokenKind int

const (
	// TokenRaw passes a raw value through untouched.
	TokenRaw TokenKind = iota
	// TokenRef is a symbolic node reference such as "&gpio0".
	TokenRef
	// TokenDecimal is a decimal literal.
	TokenDecimal
	// TokenHex is a hex literal such as "0x63".
	TokenHex
	// TokenConst is a named platform constant such as "RK_PA5".
	TokenConst
	// TokenQuoted is a double-quoted string literal.
	TokenQuoted
)

// String returns a human-readable token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenRaw:
		return "raw"
	case TokenRef:
		return "ref"
	case TokenDecimal:
		return "decimal"
	case TokenHex:
		return "hex"
	case TokenConst:
		return "const"
	case TokenQuoted:
		return "quoted"
	default:
		return "unknown"
	}
}

// Token is one element of a resolved token group.
type Token struct {
	Kind TokenKind
	// Text is the rendered form for every kind except TokenRaw.
	Text string
	// Raw holds the passthrough value for TokenRaw.
	Raw Value
}

// Group is an ordered run of tokens, e.g. a reference and its data cells.
type Group []Token

// Ref returns a reference token for the given label or path.
func Ref(name string) Token {
	return Token{Kind: TokenRef, Text: "&" + name}
}

// Decimal returns a decimal literal token.
func Decimal(v uint64) Token {
	return Token{Kind: TokenDecimal, Text: fmt.Sprintf("%d", v)}
}

// Hex returns a hex literal token.
func Hex(v uint64) Token {
	return Token{Kind: TokenHex, Text: fmt.Sprintf("0x%x", v)}
}

// Const returns a named constant token.
func Const(name string) Token {
	return Token{Kind: TokenConst, Text: name}
}

// Quoted returns s wrapped in double quotes.
func Quoted(s string) Token {
	return Token{Kind: TokenQuoted, Text: `"` + s + `"`}
}

// Raw returns a passthrough token.
func Raw(v Value) Token {
	return Token{Kind: TokenRaw, Raw: v}
}

// RawGroup wraps every element of v in a passthrough token.
func RawGroup(v Value) Group {
	elems := v.Elements()

	g := make(Group, len(elems))
	for i, e := range elems {
		g[i] = Raw(e)
	}

	return g
}

// Native returns the encodable form of the token.
func (t Token) Native() any {
	if t.Kind == TokenRaw {
		return t.Raw.Native()
	}

	return t.Text
}

// String renders the token as it would appear in source.
func (t Token) String() string {
	if t.Kind == TokenRaw {
		return t.Raw.String()
	}

	return t.Text
}

// Strings renders every token of the group.
func (g Group) Strings() []string {
	out := make([]string, len(g))
	for i, t := range g {
		out[i] = t.String()
	}

	return out
}
