package auth

import "testing"

func Test_normalizeEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare host",
			input: "api.lagoon.example.com",
			want:  "https://api.lagoon.example.com/graphql",
		},
		{
			name:  "scheme without path",
			input: "https://api.lagoon.example.com",
			want:  "https://api.lagoon.example.com/graphql",
		},
		{
			name:  "full endpoint kept as-is",
			input: "http://localhost:3000/graphql",
			want:  "http://localhost:3000/graphql",
		},
		{
			name:    "empty",
			input:   "   ",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeEndpoint(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("normalizeEndpoint() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("normalizeEndpoint() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_maskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "long token keeps edges",
			token: "abcd1234efgh5678",
			want:  "abcd...5678",
		},
		{
			name:  "short token fully masked",
			token: "abc",
			want:  "********",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskToken(tt.token); got != tt.want {
				t.Errorf("maskToken() got = %v, want %v", got, tt.want)
			}
		})
	}
}
