// lexer_test.go
package dim

import (
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == Eof {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Quantity_Product(t *testing.T) {
	wantTypes(t, "2 m * 3 m", []TokenType{Number, Identifier, Star, Number, Identifier})
}

func Test_Lexer_Speed(t *testing.T) {
	got := wantTypes(t, "2 m/s", []TokenType{Number, Identifier, Slash, Identifier})
	if got[0].Literal.(float64) != 2 {
		t.Fatalf("number literal = %v, want 2", got[0].Literal)
	}
}

func Test_Lexer_Superscript_SingleToken(t *testing.T) {
	got := wantTypes(t, "16 m²", []TokenType{Number, Identifier})
	if got[1].Lexeme != "m²" {
		t.Fatalf("lexeme = %q, want m²", got[1].Lexeme)
	}
}

func Test_Lexer_Superscript_ThreeByte(t *testing.T) {
	got := wantTypes(t, "m⁴⁰", []TokenType{Identifier})
	if got[0].Lexeme != "m⁴⁰" {
		t.Fatalf("lexeme = %q, want m⁴⁰", got[0].Lexeme)
	}
}

func Test_Lexer_Multiplication_Glyphs(t *testing.T) {
	for _, src := range []string{"2 · 3", "2 ⋅ 3", "2 × 3"} {
		wantTypes(t, src, []TokenType{Number, Star, Number})
	}
}

func Test_Lexer_Keywords(t *testing.T) {
	wantTypes(t, "as and or list show clear all", []TokenType{As, And, Or, List, Show, Clear, All})
}

func Test_Lexer_Keyword_Prefix_Is_Identifier(t *testing.T) {
	got := wantTypes(t, "aster", []TokenType{Identifier})
	if got[0].Lexeme != "aster" {
		t.Fatalf("lexeme = %q", got[0].Lexeme)
	}
}

func Test_Lexer_Comparisons_And_Punctuation(t *testing.T) {
	wantTypes(t, "< <= > >= == != ! = ( ) , . : ^",
		[]TokenType{Less, LessEqual, Greater, GreaterEqual, EqualEqual, BangEqual,
			Bang, Equal, LParen, RParen, Comma, Dot, Colon, Caret})
}

func Test_Lexer_Numbers(t *testing.T) {
	got := wantTypes(t, "12 3.5 0.25", []TokenType{Number, Number, Number})
	want := []float64{12, 3.5, 0.25}
	for i, w := range want {
		if got[i].Literal.(float64) != w {
			t.Fatalf("literal %d = %v, want %v", i, got[i].Literal, w)
		}
	}
}

func Test_Lexer_Trailing_Dot_Is_Dot_Token(t *testing.T) {
	wantTypes(t, "3.", []TokenType{Number, Dot})
}

func Test_Lexer_Line_Comment(t *testing.T) {
	wantTypes(t, "1 // the rest is ignored\n2", []TokenType{Number, Number})
}

func Test_Lexer_Lines_Are_Tracked(t *testing.T) {
	got := toks(t, "1\n2\n3")
	if got[0].Line != 1 || got[1].Line != 2 || got[2].Line != 3 {
		t.Fatalf("lines = %d %d %d", got[0].Line, got[1].Line, got[2].Line)
	}
}

func Test_Lexer_Malformed_Char_Reports_And_Continues(t *testing.T) {
	ts, err := NewLexer("2 $ 3").Scan()
	if err == nil {
		t.Fatalf("expected a lex error")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("error type = %T, want *LexError", err)
	}
	// Scanning continued past the bad byte: both numbers and Eof are present.
	want := []TokenType{Number, Number}
	if !reflect.DeepEqual(typesWithoutEOF(ts), want) {
		t.Fatalf("token types = %v, want %v", typesWithoutEOF(ts), want)
	}
	if ts[len(ts)-1].Type != Eof {
		t.Fatalf("stream does not end in Eof")
	}
}

func Test_Lexer_Empty_Input_Is_Just_EOF(t *testing.T) {
	ts := toks(t, "")
	if len(ts) != 1 || ts[0].Type != Eof {
		t.Fatalf("tokens = %v", ts)
	}
}
