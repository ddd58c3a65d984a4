package notation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/lfactor"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the grammar notation.
const (
	EOF     lfactor.TokType = -1
	Ident   lfactor.TokType = 1
	Literal lfactor.TokType = 2
	Colon   lfactor.TokType = 3 // ':'  or  '::='
	Bar     lfactor.TokType = 4 // '|'
	Semi    lfactor.TokType = 5 // ';'
)

var literals = []struct {
	lexeme string
	id     lfactor.TokType
}{
	{":", Colon}, {"::=", Colon}, {"|", Bar}, {";", Semi},
}

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

// notationLexer returns the compiled DFA for the grammar notation.
func notationLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`//[^\n]*\n?`), skip)
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`\"[^"]*\"`), makeToken(Literal))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|')*`), makeToken(Ident))
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit.lexeme, ""), "\\")
			lexer.Add([]byte(r), makeToken(lit.id))
		}
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexer action which wraps a scanned match into a token.
func makeToken(id lfactor.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

// --- Tokens ----------------------------------------------------------------

// token is the token type of the notation scanner.
type token struct {
	kind   lfactor.TokType
	lexeme string
	span   lfactor.Span
}

var _ lfactor.Token = token{}

func (t token) TokType() lfactor.TokType {
	return t.kind
}

func (t token) Lexeme() string {
	return t.lexeme
}

func (t token) Span() lfactor.Span {
	return t.span
}

func (t token) String() string {
	if t.kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.lexeme)
}

// --- Scanner ---------------------------------------------------------------

// tokenizer wraps a lexmachine scanner. Lexical errors are reported to an error
// handler, and scanning continues behind the offending input.
type tokenizer struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

func newTokenizer(input string) (*tokenizer, error) {
	lx, err := notationLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &tokenizer{scanner: s, Error: logError}, nil
}

// Default error reporting function for the notation scanner.
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken returns the next token of the input, or a token of type EOF.
func (tz *tokenizer) NextToken() lfactor.Token {
	tok, err, eof := tz.scanner.Next()
	for err != nil {
		tz.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			eof = true
			break
		}
		next := ui.FailTC
		if next <= ui.StartTC {
			next = ui.StartTC + 1
		}
		tz.scanner.TC = next
		tok, err, eof = tz.scanner.Next()
	}
	if eof {
		at := uint64(tz.scanner.TC)
		return token{kind: EOF, span: lfactor.Span{at, at}}
	}
	lt := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %s", lt.Type, lt.Lexeme)
	return token{
		kind:   lfactor.TokType(lt.Type),
		lexeme: string(lt.Lexeme),
		span:   lfactor.Span{uint64(lt.TC), uint64(lt.TC + len(lt.Lexeme))},
	}
}
