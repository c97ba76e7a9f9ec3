package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadRequiresMySQLDSN(t *testing.T) {
	unsetEnv(t, "MYSQL_DSN")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing MYSQL_DSN")
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/enrollment?parseTime=true")
	unsetEnv(t, "KAFKA_BROKERS")
	unsetEnv(t, "CHECKOUT_POLL_INTERVAL_SECONDS")
	unsetEnv(t, "CHECKOUT_POLL_TIMEOUT_SECONDS")
	unsetEnv(t, "PAYMENT_INITIATION_FLOW")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Checkout.PollInterval != 3*time.Second || cfg.Checkout.PollTimeout != 2*time.Minute {
		t.Fatalf("unexpected checkout poll config: %+v", cfg.Checkout)
	}
	if cfg.Initiation.Flow != "run_key" {
		t.Fatalf("unexpected initiation flow: %s", cfg.Initiation.Flow)
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Fatalf("expected no kafka brokers, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/enrollment?parseTime=true")
	setEnv(t, "APP_SERVICE_NAME", "enrollment-test")
	setEnv(t, "HTTP_PORT", "8181")
	setEnv(t, "GRPC_PORT", "9191")
	setEnv(t, "MYSQL_MAX_OPEN_CONNS", "20")
	setEnv(t, "MYSQL_MAX_IDLE_CONNS", "8")
	setEnv(t, "MYSQL_CONN_MAX_LIFETIME_MINUTES", "40")
	setEnv(t, "LOG_FORMAT", "text")
	setEnv(t, "PAYMENT_INITIATION_BASE_URL", "https://portal.example.com")
	setEnv(t, "PAYMENT_INITIATION_FLOW", "bootcamp_run_id")
	setEnv(t, "PAYMENT_INITIATION_HTTP_TIMEOUT_SECONDS", "4")
	setEnv(t, "CHECKOUT_POLL_INTERVAL_SECONDS", "5")
	setEnv(t, "CHECKOUT_POLL_TIMEOUT_SECONDS", "90")
	setEnv(t, "KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")
	setEnv(t, "KAFKA_TOPIC", "enrollment-payments")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.App.ServiceName != "enrollment-test" {
		t.Fatalf("unexpected app service name: %s", cfg.App.ServiceName)
	}
	if cfg.HTTP.Port != "8181" || cfg.GRPC.Port != "9191" {
		t.Fatalf("unexpected ports: http=%s grpc=%s", cfg.HTTP.Port, cfg.GRPC.Port)
	}
	if cfg.MySQL.MaxOpenConns != 20 || cfg.MySQL.MaxIdleConns != 8 {
		t.Fatalf("unexpected mysql pool config: %+v", cfg.MySQL)
	}
	if cfg.MySQL.ConnMaxLifetime != 40*time.Minute {
		t.Fatalf("unexpected mysql lifetime: %v", cfg.MySQL.ConnMaxLifetime)
	}
	if cfg.Log.Format != "text" {
		t.Fatalf("unexpected log format: %s", cfg.Log.Format)
	}
	if cfg.Initiation.BaseURL != "https://portal.example.com" || cfg.Initiation.Flow != "bootcamp_run_id" {
		t.Fatalf("unexpected initiation config: %+v", cfg.Initiation)
	}
	if cfg.Initiation.HTTPTimeout != 4*time.Second {
		t.Fatalf("unexpected initiation timeout: %v", cfg.Initiation.HTTPTimeout)
	}
	if cfg.Checkout.PollInterval != 5*time.Second || cfg.Checkout.PollTimeout != 90*time.Second {
		t.Fatalf("unexpected checkout poll config: %+v", cfg.Checkout)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "kafka-1:9092" || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected kafka brokers: %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.Topic != "enrollment-payments" {
		t.Fatalf("unexpected kafka topic: %s", cfg.Kafka.Topic)
	}
}
