package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestSetTUIConfig(t *testing.T) {
	pipeline := &mockPipeline{}
	t.Cleanup(func() { tuiConfig = nil })

	SetTUIConfig(&TUIConfig{
		SearchPipeline: pipeline,
		GateMode:       domain.GateModeNone,
	})

	assert.NotNil(t, tuiConfig)
	assert.Equal(t, pipeline, tuiConfig.SearchPipeline)
}

func TestRunTUI_InvalidPortsFails(t *testing.T) {
	tuiConfig = nil
	t.Cleanup(func() { tuiConfig = nil })

	err := runTUI(tuiCmd, nil)

	assert.ErrorContains(t, err, "failed to create TUI")
}
