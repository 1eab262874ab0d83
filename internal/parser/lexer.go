package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw string tokens out for our AST definitions.
// Basic whitespace elision is enough for our grammar.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(?:illuminate|reflect|endure|embrace|surrender|status|log|help)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][\w-]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates our parser based on the struct tags in `ast.go`
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.CaseInsensitive("Keyword"),
		participle.Elide("Whitespace"),
	)
}

var commandParser = Build()

// Parse reads one line of player input. Failures are mapped to guidance
// through MapError.
func Parse(input string) (*Command, error) {
	cmd, err := commandParser.ParseString("", input)
	if err != nil {
		return nil, MapError(input, err)
	}
	return cmd, nil
}
