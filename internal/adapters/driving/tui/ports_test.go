package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:    "missing search pipeline",
			ports:   &Ports{},
			wantErr: ErrMissingSearchPipeline,
		},
		{
			name: "open mode needs only the pipeline",
			ports: &Ports{
				Search:   &mockSearchPipeline{},
				GateMode: domain.GateModeNone,
			},
		},
		{
			name: "session mode without session service",
			ports: &Ports{
				Search:   &mockSearchPipeline{},
				GateMode: domain.GateModeSession,
			},
			wantErr: ErrMissingSessionService,
		},
		{
			name: "session mode with session service",
			ports: &Ports{
				Search:   &mockSearchPipeline{},
				Session:  &mockSessionService{},
				GateMode: domain.GateModeSession,
			},
		},
		{
			name: "token mode without verify service",
			ports: &Ports{
				Search:   &mockSearchPipeline{},
				GateMode: domain.GateModeToken,
			},
			wantErr: ErrMissingVerifyService,
		},
		{
			name: "token mode with verify service",
			ports: &Ports{
				Search:   &mockSearchPipeline{},
				Verify:   &mockVerifyService{},
				GateMode: domain.GateModeToken,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
