package activedirectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDnToDomain(t *testing.T) {
	tests := []struct {
		baseDn string
		want   string
	}{
		{"DC=corp,DC=example,DC=com", "corp.example.com"},
		{"dc=old,dc=corp", "old.corp"},
		{"OU=Staff, DC=old, DC=corp", "old.corp"},
		{"CN=Users", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dnToDomain(tt.baseDn), tt.baseDn)
	}
}
