package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "defaults are valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "zero capacity returns ErrInvalidCapacity",
			config:  Config{Capacity: 0, Trials: 1, LogFormat: LogFormatJSON},
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "negative trials returns ErrInvalidTrials",
			config:  Config{Capacity: 10, Trials: -5, LogFormat: LogFormatJSON},
			wantErr: ErrInvalidTrials,
		},
		{
			name:    "unknown log format returns ErrLogFormatUnknown",
			config:  Config{Capacity: 10, Trials: 1, LogFormat: "xml"},
			wantErr: ErrLogFormatUnknown,
		},
		{
			name:    "log format is case insensitive",
			config:  Config{Capacity: 20, Trials: 1, LogFormat: "JSON"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
