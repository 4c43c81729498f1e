package delivery

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/docflowhq/docflow/internal/entity"
)

// DefaultBodyTemplate is used when a receiver has no template of its own.
const DefaultBodyTemplate = `{"task_id":"{{task_id}}","rule_id":"{{rule_id}}","rule_version":"{{rule_version}}","result":{{result}},"confidence":{{confidence}},"file_url":"{{file_url}}","completed_at":"{{completed_at}}"}`

// BuildVars assembles the placeholder map for one task's delivery body.
func BuildVars(task *entity.Task, fileURL string) map[string]string {
	result, _ := json.Marshal(task.ExtractedData)
	conf, _ := json.Marshal(task.ConfidenceScores)

	completed := ""
	if task.CompletedAt != nil {
		completed = task.CompletedAt.UTC().Format(time.RFC3339)
	}

	return map[string]string{
		"task_id":      task.ID,
		"rule_id":      task.RuleID,
		"rule_version": task.RuleVersion,
		"status":       string(task.Status),
		"page_count":   strconv.Itoa(task.PageCount),
		"result":       string(result),
		"confidence":   string(conf),
		"file_url":     fileURL,
		"created_at":   task.CreatedAt.UTC().Format(time.RFC3339),
		"completed_at": completed,
	}
}

// Render substitutes {{name}} placeholders. Unknown placeholders are left
// intact so a receiver misconfiguration is visible in its own payload.
func Render(tpl string, vars map[string]string) string {
	if tpl == "" {
		tpl = DefaultBodyTemplate
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
