package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/courtdesk/basketref/internal/usecase"
)

// ScriptExecutor runs registered console scripts. Every run happens inside a
// single transaction so a failing statement leaves no partial state behind.
type ScriptExecutor struct {
	db *sqlx.DB
}

func NewScriptExecutor(db *sqlx.DB) *ScriptExecutor {
	return &ScriptExecutor{db: db}
}

// RunViewDefinition applies the CREATE OR REPLACE VIEW statement and then
// selects everything from the named view so the console can show its content.
func (e *ScriptExecutor) RunViewDefinition(ctx context.Context, script, viewName string) (usecase.ScriptResult, error) {
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("apply view definition: %w", err)
	}

	rows, err := tx.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(viewName)))
	if err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("select from view %s: %w", viewName, err)
	}

	result, err := collectRows(rows)
	if err != nil {
		return usecase.ScriptResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("commit transaction: %w", err)
	}

	result.Message = fmt.Sprintf("view %s updated", viewName)
	return result, nil
}

// RunScript executes the statement and renders whatever rows it produced.
// Statements without a result set commit with just a confirmation message.
func (e *ScriptExecutor) RunScript(ctx context.Context, script string) (usecase.ScriptResult, error) {
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	rows, err := tx.QueryxContext(ctx, script)
	if err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("execute script: %w", err)
	}

	result, err := collectRows(rows)
	if err != nil {
		return usecase.ScriptResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("commit transaction: %w", err)
	}

	if !result.HasRows && len(result.Columns) == 0 {
		result.Message = "statement executed"
	}
	return result, nil
}

func collectRows(rows *sqlx.Rows) (usecase.ScriptResult, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("read result columns: %w", err)
	}

	result := usecase.ScriptResult{Columns: columns}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return usecase.ScriptResult{}, fmt.Errorf("scan result row: %w", err)
		}

		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return usecase.ScriptResult{}, fmt.Errorf("iterate result rows: %w", err)
	}

	result.HasRows = len(result.Rows) > 0
	return result, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
