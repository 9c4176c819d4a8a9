package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtdesk/basketref/internal/domain/sqlscript"
)

// ScriptResult is what the console renders after a run. Columns/Rows are
// string-typed on purpose: the console displays whatever came back verbatim.
type ScriptResult struct {
	Columns []string
	Rows    [][]string
	HasRows bool
	Message string
}

// ScriptExecutor runs registered script text against the store inside one
// transaction, rolling back on any failure.
type ScriptExecutor interface {
	RunScript(ctx context.Context, sql string) (ScriptResult, error)
	RunViewDefinition(ctx context.Context, sql, viewName string) (ScriptResult, error)
}

// SQLConsoleService drives the admin-only ad-hoc script runner. Scripts come
// from the startup registry only; free-text SQL is never accepted.
type SQLConsoleService struct {
	registry sqlscript.Registry
	executor ScriptExecutor
}

func NewSQLConsoleService(registry sqlscript.Registry, executor ScriptExecutor) *SQLConsoleService {
	return &SQLConsoleService{registry: registry, executor: executor}
}

func (s *SQLConsoleService) List() []sqlscript.Script {
	return s.registry.List()
}

// Run executes the script registered under key. View definitions are applied
// and then selected from; plain scripts show rows only when the statement
// returned any. Execution errors surface verbatim: this is an operator tool.
func (s *SQLConsoleService) Run(ctx context.Context, key string) (ScriptResult, error) {
	ctx, span := startSpan(ctx, "usecase.SQLConsoleService.Run")
	defer span.End()

	key = strings.TrimSpace(key)
	if key == "" {
		return ScriptResult{}, fmt.Errorf("%w: script key is required", ErrInvalidInput)
	}

	script, ok := s.registry.Get(key)
	if !ok {
		return ScriptResult{}, fmt.Errorf("%w: script %q", ErrNotFound, key)
	}

	switch script.Kind {
	case sqlscript.KindViewDefinition:
		result, err := s.executor.RunViewDefinition(ctx, script.SQL, script.ViewName)
		if err != nil {
			return ScriptResult{}, fmt.Errorf("run view definition %q: %w", key, err)
		}
		return result, nil
	case sqlscript.KindScript:
		result, err := s.executor.RunScript(ctx, script.SQL)
		if err != nil {
			return ScriptResult{}, fmt.Errorf("run script %q: %w", key, err)
		}
		return result, nil
	default:
		return ScriptResult{}, fmt.Errorf("%w: script %q has unknown kind %q", ErrInvalidInput, key, script.Kind)
	}
}
