package redis

import (
	"context"
	"testing"
	"time"
)

// unreachableConfig points at a port nothing listens on
func unreachableConfig() *Config {
	config := NewRedisConfig()
	config.Host = "127.0.0.1"
	config.Port = 1
	config.MaxRetries = -1
	config.DialTimeout = 200 * time.Millisecond
	return config
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty host", func(c *Config) { c.Host = "" }, true},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"database 16", func(c *Config) { c.Database = 16 }, true},
		{"retries disabled", func(c *Config) { c.MaxRetries = -1 }, false},
		{"retries below -1", func(c *Config) { c.MaxRetries = -2 }, true},
		{"negative read timeout", func(c *Config) { c.ReadTimeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewRedisConfig()
			tt.mutate(config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigAddr(t *testing.T) {
	config := NewRedisConfig()
	config.Host = "cache.internal"
	config.Port = 6380
	if got := config.Addr(); got != "cache.internal:6380" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	config := NewRedisConfig()
	config.Port = -1

	if _, err := NewClient(config); err == nil {
		t.Fatal("expected an error for an invalid port")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = client.Close() }()

	if client.GetConfig().Addr() != "localhost:6379" {
		t.Errorf("unexpected default address %s", client.GetConfig().Addr())
	}
}

func TestUnreachableServer(t *testing.T) {
	client, err := NewClient(unreachableConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	var value map[string]string
	found, err := client.GetJSON(ctx, "forecast::1,2", &value)
	if err == nil || found {
		t.Errorf("expected a connection error, got found=%v err=%v", found, err)
	}

	if err = client.SetJSON(ctx, "forecast::1,2", map[string]string{"a": "b"}, time.Minute); err == nil {
		t.Error("expected SetJSON to fail")
	}

	status, details := client.Health(ctx)
	if status != StatusDown {
		t.Errorf("expected DOWN, got %s", status)
	}
	if details["message"] == "" || details["port"] != "1" {
		t.Errorf("unexpected details %v", details)
	}
}

func TestSetJSONRejectsUnmarshalableValue(t *testing.T) {
	client, err := NewClient(unreachableConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = client.Close() }()

	if err = client.SetJSON(context.Background(), "key", make(chan int), time.Minute); err == nil {
		t.Error("expected a marshal error")
	}
}
