package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "barras", input: "01/10/2025", want: "2025-10-01"},
		{name: "hifens", input: "1-2-2024", want: "2024-02-01"},
		{name: "ano com dois digitos", input: "15/03/25", want: "2025-03-15"},
		{name: "com horario", input: "01/10/2025 14:35:00", want: "2025-10-01"},
		{name: "formato canonico", input: "2025-10-02", want: "2025-10-02"},
		{name: "canonico com horario", input: "2025-10-02T10:00:00Z", want: "2025-10-02"},
		{name: "29 de fevereiro em ano bissexto", input: "29/02/2024", want: "2024-02-29"},
		{name: "31 de fevereiro", input: "31/02/2024", wantErr: true},
		{name: "29 de fevereiro fora de ano bissexto", input: "29/02/2023", wantErr: true},
		{name: "mes 13", input: "01/13/2024", wantErr: true},
		{name: "dia zero", input: "00/01/2024", wantErr: true},
		{name: "separadores misturados", input: "01/10-2025", wantErr: true},
		{name: "ano com tres digitos", input: "01/10/202", wantErr: true},
		{name: "texto livre", input: "ontem", wantErr: true},
		{name: "vazio", input: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCanonicalDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		parsed, err := ParseDate(FormatDate(d))
		if !assert.NoError(t, err, FormatDate(d)) {
			return
		}
		if !assert.True(t, parsed.Equal(d), "data %s voltou como %s", FormatDate(d), CanonicalDate(parsed)) {
			return
		}
	}
}
