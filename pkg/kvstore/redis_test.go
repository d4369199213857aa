package kvstore

import (
	"testing"
	"time"

	"github.com/shilpokotha/shilpokotha-backend/pkg/config"
)

func TestOptionsFromConfigURLIsAuthoritative(t *testing.T) {
	t.Parallel()

	opts, err := optionsFromConfig(config.RedisConfig{
		URL: "redis://:hunter2@redis.internal:6380/0",
		DB:  5,
	})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Addr != "redis.internal:6380" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.Password != "hunter2" {
		t.Fatalf("unexpected password %q", opts.Password)
	}
	if opts.DB != 0 {
		t.Fatalf("url selected db 0, got %d", opts.DB)
	}
}

func TestOptionsFromConfigAddressBranchUsesConfigDB(t *testing.T) {
	t.Parallel()

	opts, err := optionsFromConfig(config.RedisConfig{
		Address:     "localhost:6379",
		Password:    "secret",
		DB:          3,
		PoolSize:    10,
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.DB != 3 {
		t.Fatalf("expected db 3 got %d", opts.DB)
	}
	if opts.PoolSize != 10 {
		t.Fatalf("expected pool size 10 got %d", opts.PoolSize)
	}
	if opts.DialTimeout != 5*time.Second {
		t.Fatalf("expected 5s dial timeout got %s", opts.DialTimeout)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	t.Parallel()

	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error without url or address")
	}
}
