package dto

import (
	"time"

	"toolcrib/internal/domain"
)

type UsageLog struct {
	ID     string    `json:"id"`
	Code   string    `json:"code"`
	ToolID string    `json:"tool_id"`
	UsedBy string    `json:"used_by"`
	UsedAt time.Time `json:"used_at"`
	Notes  *string   `json:"notes,omitempty"`
}

// UsageLogWithTool is a feed entry carrying the owning tool's name and type.
type UsageLogWithTool struct {
	UsageLog
	ToolName string `json:"tool_name"`
	ToolType string `json:"tool_type"`
}

func UsageLogFromDomain(log *domain.UsageLog) *UsageLog {
	if log == nil {
		return nil
	}

	return &UsageLog{
		ID:     log.ID.String(),
		Code:   log.Code,
		ToolID: log.ToolID.String(),
		UsedBy: log.UsedBy,
		UsedAt: log.UsedAt,
		Notes:  log.Notes,
	}
}

func UsageLogsFromDomain(logs []*domain.UsageLog) []*UsageLog {
	result := make([]*UsageLog, len(logs))
	for i, log := range logs {
		result[i] = UsageLogFromDomain(log)
	}
	return result
}

func UsageLogsWithToolFromDomain(logs []*domain.UsageLogWithTool) []*UsageLogWithTool {
	result := make([]*UsageLogWithTool, len(logs))
	for i, log := range logs {
		result[i] = &UsageLogWithTool{
			UsageLog: *UsageLogFromDomain(&log.UsageLog),
			ToolName: log.ToolName,
			ToolType: log.ToolType,
		}
	}
	return result
}
