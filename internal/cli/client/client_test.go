package client

import "testing"

func TestNormalizeServerURL(t *testing.T) {
	tests := []struct {
		name    string
		server  string
		want    string
		wantErr bool
	}{
		{
			name:   "host only gets a scheme",
			server: "localhost:8080",
			want:   "http://localhost:8080",
		},
		{
			name:   "existing scheme preserved",
			server: "https://sgp.example.com",
			want:   "https://sgp.example.com",
		},
		{
			name:   "path stripped",
			server: "http://localhost:8080/api/",
			want:   "http://localhost:8080",
		},
		{
			name:   "trailing slash stripped",
			server: "http://localhost:8080/",
			want:   "http://localhost:8080",
		},
		{
			name:    "empty input",
			server:  "",
			wantErr: true,
		},
		{
			name:    "scheme without host",
			server:  "http://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeServerURL(tt.server)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("normalizeServerURL(%q) = %q, want %q", tt.server, got, tt.want)
			}
		})
	}
}
