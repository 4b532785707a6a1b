// Package testutil provides shared helpers for docsift tests: a thread-safe
// log buffer, an in-memory document source, and a harness that runs the full
// app against a temporary input root.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/docsift/internal/app"
	"github.com/vk/docsift/internal/pdfio"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	InputRoot string
}

// RunIntegrationTest writes the given files under a temporary input root,
// wires an app with the provided document source, and runs it. File paths
// are relative to the input root (e.g. "travel/challenge1b_input.json");
// intermediate directories are created as needed.
func RunIntegrationTest(t *testing.T, files map[string]string, source pdfio.Source, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		InputRoot: root,
		LogLevel:  "debug",
		LogFormat: "text",
	}
	if mutate != nil {
		mutate(appConfig)
	}

	logBuffer := &SafeBuffer{}

	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		testApp := app.NewApp(logBuffer, appConfig, source)
		runErr = testApp.Run(context.Background())
	}()

	if os.Getenv("DOCSIFT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		InputRoot: root,
	}
}
