package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMayFire(t *testing.T) {
	tests := []struct {
		name      string
		sig       Signal
		isPreview bool
		want      bool
	}{
		{
			name: "all clear",
			sig:  Signal{AlertsEnabled: true},
			want: true,
		},
		{
			name: "settings window open",
			sig:  Signal{SettingsFocused: true, AlertsEnabled: true},
			want: false,
		},
		{
			name: "presentation running",
			sig:  Signal{PresentationActive: true, AlertsEnabled: true},
			want: false,
		},
		{
			name: "alerts disabled",
			sig:  Signal{},
			want: false,
		},
		{
			name:      "preview bypasses settings focus",
			sig:       Signal{SettingsFocused: true, AlertsEnabled: true},
			isPreview: true,
			want:      true,
		},
		{
			name:      "preview bypasses everything",
			sig:       Signal{SettingsFocused: true, PresentationActive: true},
			isPreview: true,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MayFire(tt.sig, tt.isPreview))
		})
	}
}
