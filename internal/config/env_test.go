package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("SKYFALL_TEST_SET", ":2222")
	t.Setenv("SKYFALL_TEST_EMPTY", "")

	tests := []struct {
		key      string
		fallback string
		expected string
	}{
		{"SKYFALL_TEST_SET", ":23234", ":2222"},
		{"SKYFALL_TEST_EMPTY", ":23234", ""},
		{"SKYFALL_TEST_UNSET", ":23234", ":23234"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetEnv(tt.key, tt.fallback); got != tt.expected {
				t.Errorf("GetEnv(%q) = %q, expected %q", tt.key, got, tt.expected)
			}
		})
	}
}
