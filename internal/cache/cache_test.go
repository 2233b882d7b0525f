// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"os"
	"testing"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client, err := ConnectValkey(host, port, password)
	if err != nil {
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}
	defer client.Close()

	if client.Options().Addr != host+":"+port {
		t.Errorf("addr: got %q, want %q", client.Options().Addr, host+":"+port)
	}
}

func TestConnectValkeyUnreachable(t *testing.T) {
	_, err := ConnectValkey("localhost", "1", "")
	if err == nil {
		t.Error("expected error for unreachable Valkey")
	}
}
