package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisClient_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	client := NewRedis(mr.Addr(), "", 0)
	defer client.Close()

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("expected ping to succeed, got %v", err)
	}

	mr.Close()
	if err := client.Ping(context.Background()); err == nil {
		t.Error("expected ping to fail after server shutdown")
	}
}
