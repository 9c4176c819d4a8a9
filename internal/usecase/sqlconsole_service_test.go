package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/courtdesk/basketref/internal/domain/sqlscript"
)

type fakeRegistry struct {
	scripts map[string]sqlscript.Script
}

func (r *fakeRegistry) List() []sqlscript.Script {
	out := make([]sqlscript.Script, 0, len(r.scripts))
	for _, s := range r.scripts {
		out = append(out, s)
	}
	return out
}

func (r *fakeRegistry) Get(key string) (sqlscript.Script, bool) {
	s, ok := r.scripts[key]
	return s, ok
}

type fakeExecutor struct {
	ranScript   string
	ranView     string
	ranViewName string
}

func (e *fakeExecutor) RunScript(_ context.Context, sql string) (ScriptResult, error) {
	e.ranScript = sql
	return ScriptResult{Message: "script ran"}, nil
}

func (e *fakeExecutor) RunViewDefinition(_ context.Context, sql, viewName string) (ScriptResult, error) {
	e.ranView = sql
	e.ranViewName = viewName
	return ScriptResult{Message: "view ran"}, nil
}

func newConsoleFixture() (*SQLConsoleService, *fakeExecutor) {
	registry := &fakeRegistry{scripts: map[string]sqlscript.Script{
		"top_scorers": {Key: "top_scorers", Kind: sqlscript.KindViewDefinition, ViewName: "top_scorers", SQL: "CREATE VIEW ..."},
		"season":      {Key: "season", Kind: sqlscript.KindScript, SQL: "SELECT 1"},
	}}
	executor := &fakeExecutor{}
	return NewSQLConsoleService(registry, executor), executor
}

func TestSQLConsoleServiceDispatchesByKind(t *testing.T) {
	svc, executor := newConsoleFixture()

	result, err := svc.Run(context.Background(), "top_scorers")
	if err != nil {
		t.Fatalf("Run view: %v", err)
	}
	if result.Message != "view ran" {
		t.Fatalf("Message = %q, want view ran", result.Message)
	}
	if executor.ranViewName != "top_scorers" {
		t.Fatalf("ranViewName = %q, want top_scorers", executor.ranViewName)
	}

	result, err = svc.Run(context.Background(), "season")
	if err != nil {
		t.Fatalf("Run script: %v", err)
	}
	if result.Message != "script ran" {
		t.Fatalf("Message = %q, want script ran", result.Message)
	}
	if executor.ranScript != "SELECT 1" {
		t.Fatalf("ranScript = %q, want SELECT 1", executor.ranScript)
	}
}

func TestSQLConsoleServiceUnknownKey(t *testing.T) {
	svc, _ := newConsoleFixture()

	if _, err := svc.Run(context.Background(), "drop_everything"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Run(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
