package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/courtdesk/basketref/internal/domain/sqlscript"
)

type executorMock struct {
	mock.Mock
}

func (m *executorMock) RunScript(ctx context.Context, sql string) (ScriptResult, error) {
	args := m.Called(ctx, sql)
	return args.Get(0).(ScriptResult), args.Error(1)
}

func (m *executorMock) RunViewDefinition(ctx context.Context, sql, viewName string) (ScriptResult, error) {
	args := m.Called(ctx, sql, viewName)
	return args.Get(0).(ScriptResult), args.Error(1)
}

func TestSQLConsoleService_Run_ViewDefinitionUsingMock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	viewSQL := "CREATE OR REPLACE VIEW club_average_height AS SELECT 1"
	registry := &fakeRegistry{scripts: map[string]sqlscript.Script{
		"club_average_height": {Key: "club_average_height", Kind: sqlscript.KindViewDefinition, ViewName: "club_average_height", SQL: viewSQL},
	}}
	executor := &executorMock{}
	executor.
		On("RunViewDefinition", mock.Anything, viewSQL, "club_average_height").
		Return(ScriptResult{Columns: []string{"name", "avg_height"}, HasRows: true}, nil).
		Once()

	service := NewSQLConsoleService(registry, executor)
	result, err := service.Run(ctx, "club_average_height")
	if err != nil {
		t.Fatalf("run view definition: %v", err)
	}
	if !result.HasRows || len(result.Columns) != 2 {
		t.Fatalf("unexpected result: %#v", result)
	}
	executor.AssertExpectations(t)
}

func TestSQLConsoleService_Run_ExecutorErrorUsingMock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry := &fakeRegistry{scripts: map[string]sqlscript.Script{
		"season_points": {Key: "season_points", Kind: sqlscript.KindScript, SQL: "SELECT season FROM game"},
	}}
	executor := &executorMock{}
	execErr := errors.New(`pq: relation "game" does not exist`)
	executor.
		On("RunScript", mock.Anything, "SELECT season FROM game").
		Return(ScriptResult{}, execErr).
		Once()

	service := NewSQLConsoleService(registry, executor)
	_, err := service.Run(ctx, "season_points")
	if !errors.Is(err, execErr) {
		t.Fatalf("expected executor error, got %v", err)
	}
	executor.AssertExpectations(t)
}
