package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr: expected :8080, got %q", cfg.Addr)
	}
	if cfg.Gateway != GatewaySnapshot {
		t.Errorf("Gateway: expected snapshot, got %q", cfg.Gateway)
	}
	if cfg.CurrentUser != "Me" {
		t.Errorf("CurrentUser: expected Me, got %q", cfg.CurrentUser)
	}
	if cfg.RemoteTimeout != 5*time.Second {
		t.Errorf("RemoteTimeout: expected 5s, got %s", cfg.RemoteTimeout)
	}
	if !cfg.Seed {
		t.Error("Seed: expected true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SHOPLIST_GATEWAY", "remote")
	t.Setenv("SHOPLIST_REMOTE_URL", "http://localhost:3000")
	t.Setenv("SHOPLIST_REMOTE_TIMEOUT", "250ms")
	t.Setenv("SHOPLIST_SEED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RemoteURL != "http://localhost:3000" || cfg.RemoteTimeout != 250*time.Millisecond || cfg.Seed {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad duration", map[string]string{"SHOPLIST_REMOTE_TIMEOUT": "soon"}, "parse env:"},
		{"unknown gateway", map[string]string{"SHOPLIST_GATEWAY": "ftp"}, "unknown gateway"},
		{"remote without url", map[string]string{"SHOPLIST_GATEWAY": "remote"}, "SHOPLIST_REMOTE_URL"},
		{"negative timeout", map[string]string{"SHOPLIST_REMOTE_TIMEOUT": "-1s"}, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}
