package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "web-server", false},
		{"digits first", "10.0.0.1_host", false},
		{"spaces inside", "Web Server 01", false},
		{"single char", "a", false},
		{"max length", strings.Repeat("a", 63), false},
		{"too long", strings.Repeat("a", 64), true},
		{"leading dot", ".hidden", true},
		{"leading dash", "-web", true},
		{"leading underscore", "_web", true},
		{"illegal char", "web/01", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ObjectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHost(t *testing.T) {
	for _, ok := range []string{"10.1.1.1", "fw.example.com", "panorama-01.corp.example.org"} {
		assert.NoError(t, Host(ok), ok)
	}
	for _, bad := range []string{"", "256.1.1.1", "localhost", "-fw.example.com", "fw.example.c0m", "fw..example.com"} {
		assert.Error(t, Host(bad), bad)
	}
}

func TestCredentials(t *testing.T) {
	assert.NoError(t, Username("admin"))
	assert.Error(t, Username("ab"))
	assert.Error(t, Username("admin user"))

	assert.NoError(t, Password("s3cret"))
	assert.Error(t, Password("1234"))
	assert.Error(t, Password(strings.Repeat("x", 51)))
}
