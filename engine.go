// engine.go — the driver binding lexer, parser, evaluator, catalogues and
// the constants table into one session.
//
// An Engine is a self-contained calculator session. Registries are
// consulted in a fixed order — constants, SI, Imperial, CGS, Industrial,
// then user extras — with a two-pass scheme: every registry is tried for an
// exact (unit or alias) hit before any registry may expand a prefix. The
// two passes keep a prefix match in SI (m+i, milli-inch) from shadowing an
// exact match in Imperial (mi, the mile).
//
// The engine is not internally locked: one goroutine per engine, or
// serialize access externally. The constants table is the only mutable
// state.
package dim

import (
	"fmt"
	"log/slog"
	"strings"
)

// Engine is one calculator session.
type Engine struct {
	constants  *ConstantsTable
	registries []*Registry
	si         *Registry
	log        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger installs a structured logger; the engine logs constant
// definitions and removals at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithRegistry appends a user-extras registry, consulted after the
// built-in catalogues.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) { e.registries = append(e.registries, r) }
}

// New constructs an engine with the built-in catalogues and an empty
// constants table.
func New(opts ...Option) *Engine {
	si := SI()
	e := &Engine{
		constants:  NewConstantsTable(),
		registries: []*Registry{si, Imperial(), CGS(), Industrial()},
		si:         si,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// resolveUnit implements the cross-registry lookup contract: the constants
// table first, then an exact pass over every registry, then a prefix-
// expanding pass in the same order.
func (e *Engine) resolveUnit(sym string) (Unit, bool) {
	if u, ok := e.constants.Get(sym); ok {
		return u, true
	}
	for _, r := range e.registries {
		if u, ok := r.FindExact(sym); ok {
			return u, true
		}
	}
	for _, r := range e.registries {
		if u, ok := r.Find(sym); ok {
			return u, true
		}
	}
	return Unit{}, false
}

func (e *Engine) normalizeDim(d Dimension, fallback string) string {
	return Normalize(d, e.si, fallback)
}

func (e *Engine) defineConstant(name string, q Quantity) {
	e.constants.Define(name, q)
	e.log.Debug("constant defined", "name", name, "dim", q.Dim.String(), "scale", q.Value)
}

// Eval evaluates one input line: either a standalone command (list, show,
// clear) or a sequence of expressions. For multi-statement lines such as
// "d = (24 h) 200 kg/h as kg/d", earlier statements run for their side
// effects and the last value is rendered.
func (e *Engine) Eval(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	toks, lexErr := NewLexer(src).Scan()
	if lexErr != nil {
		return "", lexErr
	}
	if out, handled, err := e.command(toks); handled {
		return out, err
	}

	stmts, err := Parse(src)
	if err != nil {
		return "", err
	}

	ev := &evaluator{eng: e}
	last := Nil
	for _, stmt := range stmts {
		last, err = ev.evalStmt(stmt)
		if err != nil {
			e.log.Debug("evaluation failed", "error", err)
			return "", err
		}
	}
	return e.FormatValue(last), nil
}

// command recognizes the standalone commands at the token level:
// list, show NAME, clear NAME, clear all.
func (e *Engine) command(toks []Token) (string, bool, error) {
	if len(toks) == 0 {
		return "", false, nil
	}
	switch toks[0].Type {
	case List:
		if len(toks) == 2 && toks[1].Type == Eof {
			return e.listConstants(), true, nil
		}
	case Show:
		if len(toks) == 3 && toks[1].Type == Identifier && toks[2].Type == Eof {
			name := toks[1].Lexeme
			u, ok := e.constants.Get(name)
			if !ok {
				return "", true, &RuntimeError{Kind: ErrUndefinedVariable,
					Msg: fmt.Sprintf("undefined constant '%s'", name)}
			}
			return e.constantLine(name, u), true, nil
		}
	case Clear:
		if len(toks) == 3 && toks[1].Type == All && toks[2].Type == Eof {
			e.ClearAll()
			return "ok", true, nil
		}
		if len(toks) == 3 && toks[1].Type == Identifier && toks[2].Type == Eof {
			e.Clear(toks[1].Lexeme)
			return "ok", true, nil
		}
	}
	return "", false, nil
}

func (e *Engine) listConstants() string {
	var lines []string
	for _, name := range e.constants.Names() {
		u, _ := e.constants.Get(name)
		lines = append(lines, e.constantLine(name, u))
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) constantLine(name string, u Unit) string {
	sym := e.normalizeDim(u.Dim, "")
	line := fmt.Sprintf("%s: dim %s, 1 %s = %s", name, u.Dim, name, numText(u.Scale))
	if sym != "" {
		line += " " + sym
	}
	return line
}

// Define evaluates expr and binds the result to name, leaving the table
// untouched on failure. It is the programmatic form of "name = ( expr )".
func (e *Engine) Define(name, expr string) error {
	_, err := e.Eval(name + " = ( " + expr + " )")
	return err
}

// Clear removes one constant.
func (e *Engine) Clear(name string) {
	if e.constants.Clear(name) {
		e.log.Debug("constant cleared", "name", name)
	}
}

// ClearAll removes every constant.
func (e *Engine) ClearAll() {
	e.constants.ClearAll()
	e.log.Debug("constants cleared")
}

// Constants exposes the session's constants table.
func (e *Engine) Constants() *ConstantsTable { return e.constants }
