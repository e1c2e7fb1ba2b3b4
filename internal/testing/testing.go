// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"os"
	"testing"
)

// FailBackend is a storage.Backend double whose operations always fail.
type FailBackend struct{}

func (FailBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("backend unavailable")
}

func (FailBackend) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("backend unavailable")
}

// CorruptBackend is a storage.Backend double that returns unparseable bytes.
type CorruptBackend struct{}

func (CorruptBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return []byte("{not json"), true, nil
}

func (CorruptBackend) Set(ctx context.Context, key string, value []byte) error {
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
