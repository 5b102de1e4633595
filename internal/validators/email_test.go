package validators

import "testing"

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"", true}, // campo opcional
		{"joao@example.com", true},
		{"maria.silva+barber@sub.example.com.br", true},
		{"sem-arroba", false},
		{"@example.com", false},
		{"joao@", false},
		{"joao silva@example.com", false},
		{"Nome <joao@example.com>", false},
	}

	for _, tc := range cases {
		if got := IsEmailValid(tc.email); got != tc.want {
			t.Errorf("IsEmailValid(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
