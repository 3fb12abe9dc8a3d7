package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDisplayCode(t *testing.T) {
	id := uuid.New()

	code := DisplayCode("tool", id)
	assert.True(t, strings.HasPrefix(code, "tool-"))
	assert.Len(t, code, len("tool-")+6)
	assert.Equal(t, id.String()[:6], strings.TrimPrefix(code, "tool-"))
}

func TestTool_ResharpeningExhausted(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		max       int
		exhausted bool
	}{
		{"fresh tool", 0, 3, false},
		{"one below ceiling", 2, 3, false},
		{"at ceiling", 3, 3, true},
		{"above ceiling", 4, 3, true},
		{"single-use ceiling", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := &Tool{ResharpeningCount: tt.count, MaxResharpening: tt.max}
			assert.Equal(t, tt.exhausted, tool.ResharpeningExhausted())
		})
	}
}
