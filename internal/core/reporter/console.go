package reporter

import (
	"context"
	"fmt"
	"time"

	"neocrack/internal/core/model"

	"github.com/pterm/pterm"
)

// ConsoleReporter 控制台输出
type ConsoleReporter struct{}

func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

func (r *ConsoleReporter) Report(ctx context.Context, result *model.TaskResult) error {
	if result == nil {
		return nil
	}

	pterm.Info.Printf("Task %s finished: %d attempts, %d errors, %s\n",
		result.TaskID, result.Attempts, result.Errors, result.CompletedAt.Sub(result.ExecutedAt).Round(time.Millisecond))

	loots := lootsOf(result)
	if len(loots) == 0 {
		pterm.Warning.Println("No valid credentials found.")
		return nil
	}

	// 结果本身可表格化时直接使用，否则逐条拼接
	if tabular, ok := result.Result.(TabularData); ok {
		return r.printTable(tabular.Headers(), tabular.Rows())
	}

	var rows [][]string
	for _, l := range loots {
		rows = append(rows, l.Rows()...)
	}
	return r.printTable(loots[0].Headers(), rows)
}

func (r *ConsoleReporter) printTable(headers []string, rows [][]string) error {
	tableData := pterm.TableData{headers}
	tableData = append(tableData, rows...)

	err := pterm.DefaultTable.
		WithHasHeader(true).
		WithBoxed(false). // 简洁风格
		WithData(tableData).
		Render()

	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
