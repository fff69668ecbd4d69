package utils

import "testing"

func TestPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"passw0rd", true},
		{"longEnough1", true},
		{"short1", false},
		{"lettersonly", false},
		{"12345678", false},
		{"", false},
	}
	for _, c := range cases {
		if got := PasswordStrong(c.password); got != c.want {
			t.Errorf("PasswordStrong(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}
