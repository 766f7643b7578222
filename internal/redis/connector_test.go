package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/MrSnakeDoc/songjournal/internal/logger"
)

func testOptions(addr string) ConnectOptions {
	return ConnectOptions{
		Addr:           addr,
		DialTimeout:    100 * time.Millisecond,
		ConnectTimeout: 300 * time.Millisecond,
		RetryInterval:  20 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    100 * time.Millisecond,
		WarnThreshold:  1,
	}
}

func TestNewConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(context.Background(), testOptions(mr.Addr()), logger.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Errorf("client not usable: %v", err)
	}
}

func TestNewGivesUpAfterTimeout(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	start := time.Now()
	if _, err := New(context.Background(), testOptions(addr), logger.Nop()); err == nil {
		t.Fatal("New() against a stopped server should fail")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("New() took %v, should respect ConnectTimeout", elapsed)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := testOptions("localhost:6379")
	opts.RetryInterval = 0
	opts.WarnThreshold = -1

	if _, err := New(context.Background(), opts, logger.Nop()); err == nil {
		t.Error("New() should reject invalid options")
	}

	if _, err := New(context.Background(), testOptions(""), logger.Nop()); err == nil {
		t.Error("New() should require an address")
	}
}
