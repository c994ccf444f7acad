package excelhelper

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Placeholder delimiters for template rendering.
const (
	placeholderBegin = "{{"
	placeholderEnd   = "}}"
)

// evaluator compiles and runs placeholder expressions, caching compiled
// programs per expression string.
type evaluator struct {
	cache sync.Map // expression string → *vm.Program
}

func (e *evaluator) eval(expression string, data map[string]any) (any, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}
	program, err := e.compile(expression, data)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	result, err := expr.Run(program, data)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression %q: %w", expression, err)
	}
	return result, nil
}

func (e *evaluator) compile(expression string, env map[string]any) (*vm.Program, error) {
	if cached, ok := e.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	e.cache.Store(expression, program)
	return program, nil
}

// segment is a slice of a template cell value: either literal text or the
// inside of a {{ }} placeholder.
type segment struct {
	isExpr bool
	text   string
}

// splitPlaceholders cuts a cell value into literal and placeholder
// segments. An opening delimiter with no matching close marks the rest of
// the value as an unterminated placeholder, reported by errUnterminated.
func splitPlaceholders(value string) ([]segment, error) {
	var segments []segment
	remaining := value

	for {
		start := strings.Index(remaining, placeholderBegin)
		if start < 0 {
			break
		}
		end := strings.Index(remaining[start+len(placeholderBegin):], placeholderEnd)
		if end < 0 {
			return nil, fmt.Errorf("unterminated placeholder in %q", value)
		}
		end += start + len(placeholderBegin)

		if start > 0 {
			segments = append(segments, segment{text: remaining[:start]})
		}
		segments = append(segments, segment{
			isExpr: true,
			text:   remaining[start+len(placeholderBegin) : end],
		})
		remaining = remaining[end+len(placeholderEnd):]
	}

	if remaining != "" {
		segments = append(segments, segment{text: remaining})
	}
	return segments, nil
}

// singlePlaceholder reports whether the value is exactly one placeholder
// with no surrounding text, returning the inner expression if so. Such
// cells keep the evaluated value's type instead of flattening to a string.
func singlePlaceholder(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, placeholderBegin) || !strings.HasSuffix(trimmed, placeholderEnd) {
		return "", false
	}
	inner := trimmed[len(placeholderBegin) : len(trimmed)-len(placeholderEnd)]
	if strings.Contains(inner, placeholderBegin) || strings.Contains(inner, placeholderEnd) {
		return "", false
	}
	return inner, true
}
