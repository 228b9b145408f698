package storage_test

import (
	"testing"

	"github.com/docpipe/triage/pkg/storage"
)

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := &storage.Config{
		ConnectionString: azuriteConnString,
	}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ContainerName != "documents" {
		t.Errorf("ContainerName = %q, want %q", cfg.ContainerName, "documents")
	}
	if cfg.MaxListSize != 50 {
		t.Errorf("MaxListSize = %d, want 50", cfg.MaxListSize)
	}
}

func TestConfigFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_STORAGE_CONTAINER", "uploads")
	t.Setenv("TEST_STORAGE_CONNSTRING", azuriteConnString)
	t.Setenv("TEST_STORAGE_MAX_LIST", "200")

	cfg := &storage.Config{}
	env := &storage.Env{
		ContainerName:    "TEST_STORAGE_CONTAINER",
		ConnectionString: "TEST_STORAGE_CONNSTRING",
		MaxListSize:      "TEST_STORAGE_MAX_LIST",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ContainerName != "uploads" {
		t.Errorf("ContainerName = %q, want %q", cfg.ContainerName, "uploads")
	}
	if cfg.ConnectionString != azuriteConnString {
		t.Errorf("ConnectionString not taken from environment")
	}
	if cfg.MaxListSize != 200 {
		t.Errorf("MaxListSize = %d, want 200", cfg.MaxListSize)
	}
}

func TestConfigFinalizeMaxListClamped(t *testing.T) {
	t.Setenv("TEST_STORAGE_MAX_LIST", "99999")

	cfg := &storage.Config{ConnectionString: azuriteConnString}
	env := &storage.Env{MaxListSize: "TEST_STORAGE_MAX_LIST"}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.MaxListSize != storage.MaxListCap {
		t.Errorf("MaxListSize = %d, want cap %d", cfg.MaxListSize, storage.MaxListCap)
	}
}

func TestConfigFinalizeValidation(t *testing.T) {
	cfg := &storage.Config{}

	err := cfg.Finalize(nil)
	if err == nil {
		t.Fatal("expected error for missing connection string, got nil")
	}
	if err.Error() != "connection_string required" {
		t.Errorf("error = %q, want %q", err.Error(), "connection_string required")
	}
}

func TestConfigMerge(t *testing.T) {
	base := &storage.Config{
		ContainerName:    "documents",
		ConnectionString: "base-connection",
		MaxListSize:      50,
	}

	base.Merge(&storage.Config{ContainerName: "uploads"})
	if base.ContainerName != "uploads" {
		t.Errorf("ContainerName = %q, want %q", base.ContainerName, "uploads")
	}
	if base.ConnectionString != "base-connection" {
		t.Errorf("Merge overwrote ConnectionString with zero value")
	}

	base.Merge(&storage.Config{MaxListSize: 100})
	if base.MaxListSize != 100 {
		t.Errorf("MaxListSize = %d, want 100", base.MaxListSize)
	}
}
