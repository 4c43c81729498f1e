package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/docflowhq/docflow/internal/repository"
)

// Service produces XLSX and CSV dumps of task results and their delivery
// logs, for reconciliation against downstream systems.
type Service struct {
	tasks    repository.TaskRepository
	attempts repository.PushAttemptRepository
	logger   *slog.Logger
}

func NewService(tasks repository.TaskRepository, attempts repository.PushAttemptRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tasks: tasks, attempts: attempts, logger: logger}
}

var taskHeaders = []string{
	"Task ID",
	"Status",
	"Rule",
	"Rule Version",
	"Pages",
	"Instant",
	"Extracted Data",
	"Audit Reasons",
	"Created At",
	"Completed At",
}

// ExportTasksXLSX returns an XLSX workbook of tasks matching the filter.
func (s *Service) ExportTasksXLSX(ctx context.Context, f repository.TaskFilter) ([]byte, error) {
	start := time.Now()
	rows, err := s.taskRows(ctx, f)
	if err != nil {
		return nil, err
	}

	wb := excelize.NewFile()
	const sheet = "Tasks"
	if index, _ := wb.GetSheetIndex(sheet); index == -1 {
		if _, err := wb.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := wb.GetSheetIndex(sheet)
	wb.SetActiveSheet(activeIndex)
	if defIdx, _ := wb.GetSheetIndex("Sheet1"); defIdx != -1 && defIdx != activeIndex {
		_ = wb.DeleteSheet("Sheet1")
	}

	for i, h := range taskHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = wb.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = wb.SetCellValue(sheet, cell, v)
		}
	}

	_ = wb.SetColWidth(sheet, "A", "A", 38) // task id
	_ = wb.SetColWidth(sheet, "B", "B", 14) // status
	_ = wb.SetColWidth(sheet, "C", "D", 14) // rule + version
	_ = wb.SetColWidth(sheet, "G", "H", 60) // data + reasons
	_ = wb.SetColWidth(sheet, "I", "J", 22) // timestamps

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx.ok", "rows", len(rows), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

// ExportTasksCSV returns the same rows as ExportTasksXLSX in CSV form.
func (s *Service) ExportTasksCSV(ctx context.Context, f repository.TaskFilter) ([]byte, error) {
	rows, err := s.taskRows(ctx, f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(taskHeaders); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	s.logger.Info("export.csv.ok", "rows", len(rows))
	return buf.Bytes(), nil
}

// ExportAttemptsCSV dumps one task's delivery log.
func (s *Service) ExportAttemptsCSV(ctx context.Context, taskID string) ([]byte, error) {
	attempts, err := s.attempts.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Receiver ID", "Cycle", "Attempt", "Outcome", "HTTP Status", "Duration (ms)", "Error", "At"}); err != nil {
		return nil, err
	}
	for _, a := range attempts {
		rec := []string{
			a.ReceiverID.String(),
			strconv.Itoa(a.Cycle),
			strconv.Itoa(a.Attempt),
			string(a.Outcome),
			strconv.Itoa(a.HTTPStatus),
			strconv.FormatInt(a.DurationMS, 10),
			a.Error,
			a.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Service) taskRows(ctx context.Context, f repository.TaskFilter) ([][]string, error) {
	tasks, err := s.tasks.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		data, _ := json.Marshal(t.ExtractedData)
		reasons := ""
		if len(t.AuditReasons) > 0 {
			b, _ := json.Marshal(t.AuditReasons)
			reasons = string(b)
		}
		completed := ""
		if t.CompletedAt != nil {
			completed = t.CompletedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, []string{
			t.ID,
			string(t.Status),
			t.RuleID,
			t.RuleVersion,
			strconv.Itoa(t.PageCount),
			strconv.FormatBool(t.Instant),
			truncate(string(data), 500),
			truncate(reasons, 500),
			t.CreatedAt.UTC().Format(time.RFC3339),
			completed,
		})
	}
	return rows, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
