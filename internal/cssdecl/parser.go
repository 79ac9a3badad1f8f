package cssdecl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a property declaration found in a stylesheet.
type Declaration struct {
	Property string // lower-cased, as written: "-webkit-transform"
	File     string
	Line     int    // 1-based
	Column   int    // 1-based byte column of the property name
	Text     string // full source line
}

// token is a lexed CSS token with its byte offset in the source.
type token struct {
	tt     css.TokenType
	text   string
	offset int
}

// ParseDeclarations extracts every property declaration from content.
//
// A declaration is an identifier at the start of a statement inside a
// block, followed by ":", whose statement ends in ";" or "}". Statements
// that open a block ("a:hover { ... }") are nested rules and are skipped.
func ParseDeclarations(content, filename string) ([]Declaration, error) {
	tokens, err := lex(content)
	if err != nil {
		return nil, fmt.Errorf("lex %s: %w", filename, err)
	}

	var decls []Declaration
	depth := 0
	atStart := true

	for i, tok := range tokens {
		switch tok.tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.LeftBraceToken:
			depth++
			atStart = true
			continue
		case css.RightBraceToken:
			if depth > 0 {
				depth--
			}
			atStart = true
			continue
		case css.SemicolonToken:
			atStart = true
			continue
		}

		if atStart && depth > 0 && tok.tt == css.IdentToken && isDeclaration(tokens, i) {
			line, col := position(content, tok.offset)
			decls = append(decls, Declaration{
				Property: strings.ToLower(tok.text),
				File:     filename,
				Line:     line,
				Column:   col,
				Text:     lineAt(content, tok.offset),
			})
		}
		atStart = false
	}

	return decls, nil
}

// ParseFile reads and parses a single stylesheet.
func ParseFile(path string) ([]Declaration, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseDeclarations(string(content), path)
}

func lex(content string) ([]token, error) {
	lexer := css.NewLexer(parse.NewInputString(content))

	var tokens []token
	offset := 0
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, err
			}
			break
		}
		tokens = append(tokens, token{tt: tt, text: string(text), offset: offset})
		offset += len(text)
	}
	return tokens, nil
}

// isDeclaration reports whether the identifier at tokens[i] is followed by
// a colon and its statement is terminated without opening a block.
func isDeclaration(tokens []token, i int) bool {
	j := nextSignificant(tokens, i+1)
	if j >= len(tokens) || tokens[j].tt != css.ColonToken {
		return false
	}

	parens := 0
	for _, tok := range tokens[j+1:] {
		switch tok.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			parens++
		case css.RightParenthesisToken:
			if parens > 0 {
				parens--
			}
		case css.LeftBraceToken:
			if parens == 0 {
				return false
			}
		case css.SemicolonToken, css.RightBraceToken:
			if parens == 0 {
				return true
			}
		}
	}
	// Unterminated final declaration
	return true
}

func nextSignificant(tokens []token, from int) int {
	for from < len(tokens) {
		switch tokens[from].tt {
		case css.WhitespaceToken, css.CommentToken:
			from++
		default:
			return from
		}
	}
	return from
}

// position converts a byte offset to a 1-based line and column.
func position(content string, offset int) (int, int) {
	before := content[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return line, col
}

func lineAt(content string, offset int) string {
	start := strings.LastIndex(content[:offset], "\n") + 1
	end := strings.IndexByte(content[offset:], '\n')
	if end < 0 {
		return strings.TrimRight(content[start:], "\r")
	}
	return strings.TrimRight(content[start:offset+end], "\r")
}
