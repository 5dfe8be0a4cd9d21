package storage

import (
	"strings"
	"testing"
)

func TestDefaultSeed(t *testing.T) {
	entries, err := DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed() error = %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("DefaultSeed() returned %d entries, want 5", len(entries))
	}
	if entries[0].Question != "¿Cómo restablezco mi contraseña?" {
		t.Errorf("DefaultSeed()[0].Question = %q", entries[0].Question)
	}

	// answers are plain text, without markdown markup
	wantAnswers := map[string]string{
		"¿Cómo restablezco mi contraseña?": "Ve a Perfil → Seguridad → Restablecer y sigue el correo de verificación.",
		"¿Dónde veo mis facturas?":         "Configuración → Facturación: descarga de facturas y método de pago.",
		"¿Cómo contacto con ventas?":       "Escríbenos a ventas@ejemplo.com o usa /contacto.",
	}
	for _, e := range entries {
		if want, ok := wantAnswers[e.Question]; ok && e.Answer != want {
			t.Errorf("answer for %q = %q, want %q", e.Question, e.Answer, want)
		}
		if strings.ContainsAny(e.Answer, "*`") {
			t.Errorf("answer for %q contains markdown markup: %q", e.Question, e.Answer)
		}
	}
}

func TestLoadSeed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{
			name:    "valid entries",
			input:   "- question: q1\n  answer: a1\n- question: q2\n  answer: a2\n  tags: x\n",
			wantLen: 2,
		},
		{
			name:    "empty document",
			input:   "",
			wantLen: 0,
		},
		{
			name:    "missing answer",
			input:   "- question: q1\n",
			wantErr: true,
		},
		{
			name:    "not a list",
			input:   "question: q1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := LoadSeed(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Error("LoadSeed() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadSeed() unexpected error: %v", err)
			}
			if len(entries) != tt.wantLen {
				t.Errorf("LoadSeed() returned %d entries, want %d", len(entries), tt.wantLen)
			}
		})
	}
}
