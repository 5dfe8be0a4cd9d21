package matcher

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "accents and punctuation", in: "¿Cómo restablezco mi contraseña?", want: "como restablezco mi contrasena"},
		{name: "uppercase", in: "HOLA Mundo", want: "hola mundo"},
		{name: "collapses whitespace", in: "  precios \t\n y   planes  ", want: "precios y planes"},
		{name: "digits kept", in: "Plan 2024: $99", want: "plan 2024 99"},
		{name: "empty", in: "", want: ""},
		{name: "only symbols", in: "¡¿?!...", want: ""},
		{name: "diaeresis", in: "Pingüino", want: "pinguino"},
		{name: "non latin becomes space", in: "faq日本語test", want: "faq test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"¿Cómo restablezco mi contraseña?",
		"Ñandú   ÁÉÍÓÚ",
		"  ",
		"facturación-2024/enero",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}
