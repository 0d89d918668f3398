package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name   string
		server ServerConfig
		want   string
	}{
		{
			name:   "localhost default port",
			server: ServerConfig{Host: "localhost", Port: 8030},
			want:   "localhost:8030",
		},
		{
			name:   "bind all interfaces",
			server: ServerConfig{Host: "0.0.0.0", Port: 8080},
			want:   "0.0.0.0:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.server.Address())
		})
	}
}

func TestLarekConfig_URLs(t *testing.T) {
	l := LarekConfig{
		Origin:  "https://larek-api.nomoreparties.co/",
		APIPath: "/api/weblarek",
		CDNPath: "/content/weblarek",
	}

	assert.Equal(t, "https://larek-api.nomoreparties.co/api/weblarek", l.BaseURL())
	assert.Equal(t, "https://larek-api.nomoreparties.co/content/weblarek", l.CDNURL())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_ORIGIN", "http://localhost:9999")
	t.Setenv("ORDER_STORE", "memory")
	t.Setenv("KAFKA_ENABLED", "false")
	t.Setenv("API_TIMEOUT_MS", "2500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api/weblarek", cfg.Larek.BaseURL())
	assert.Equal(t, 2500*time.Millisecond, cfg.Larek.Timeout)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.False(t, cfg.Kafka.Enabled)
}

func TestLoad_UnknownStore(t *testing.T) {
	t.Setenv("API_ORIGIN", "http://localhost:9999")
	t.Setenv("ORDER_STORE", "redis")

	_, err := Load()
	assert.ErrorContains(t, err, "not supported")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Larek:  LarekConfig{Origin: "http://localhost:8030", APIPath: "/api/weblarek", Timeout: time.Second},
			Server: ServerConfig{Host: "0.0.0.0", Port: 8030},
			Store:  StoreConfig{Driver: StoreMemory},
			Kafka:  KafkaConfig{Brokers: []string{"localhost:9092"}, OrderTopic: "orders"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "HTTP_PORT"},
		{name: "bad timeout", mutate: func(c *Config) { c.Larek.Timeout = 0 }, wantErr: "API_TIMEOUT_MS"},
		{name: "bad origin", mutate: func(c *Config) { c.Larek.Origin = "::" }, wantErr: "API_ORIGIN"},
		{
			name:    "postgres without host",
			mutate:  func(c *Config) { c.Store.Driver = StorePostgres },
			wantErr: "database config is incomplete",
		},
		{
			name:    "kafka without brokers",
			mutate:  func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Brokers = nil },
			wantErr: "kafka brokers is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a:1", "b:2"}, splitAndTrim(" a:1, ,b:2 "))
	assert.Empty(t, splitAndTrim(""))
}
