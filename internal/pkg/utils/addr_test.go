package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetAddress(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		port    uint16
		want    string
		wantErr bool
	}{
		{name: "Hostname Default Port", target: "db.example.com", port: 3306, want: "db.example.com:3306"},
		{name: "Hostname Explicit Port", target: "db.example.com:3307", port: 3306, want: "db.example.com:3307"},
		{name: "IPv4 Default Port", target: "10.0.0.1", port: 5432, want: "10.0.0.1:5432"},
		{name: "IPv4 Explicit Port", target: "10.0.0.1:15432", port: 5432, want: "10.0.0.1:15432"},
		{name: "Bracketed IPv6", target: "[::1]", port: 5432, want: "[::1]:5432"},
		{name: "Bracketed IPv6 With Port", target: "[fe80::1]:3306", port: 5432, want: "[fe80::1]:3306"},
		{name: "Bare IPv6", target: "::1", port: 3306, want: "[::1]:3306"},
		{name: "Surrounding Whitespace", target: "  localhost  ", port: 3306, want: "localhost:3306"},
		{name: "Empty", target: "", port: 3306, wantErr: true},
		{name: "Only Spaces", target: "   ", port: 3306, wantErr: true},
		{name: "Non Numeric Port", target: "db.example.com:abc", port: 3306, wantErr: true},
		{name: "Port Out Of Range", target: "db.example.com:70000", port: 3306, wantErr: true},
		{name: "Zero Port", target: "db.example.com:0", port: 3306, wantErr: true},
		{name: "Empty Port", target: "db.example.com:", port: 3306, wantErr: true},
		{name: "Too Many Colons", target: "foo:bar:baz", port: 3306, wantErr: true},
		{name: "Missing Host", target: ":3306", port: 3306, wantErr: true},
		{name: "Space In Host", target: "db example.com", port: 3306, wantErr: true},
		{name: "Leading Hyphen Label", target: "-db.example.com", port: 3306, wantErr: true},
		{name: "URL Instead Of Host", target: "mysql://db.example.com", port: 3306, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTargetAddress(tt.target, tt.port)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
