package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vk/numwords/internal/hcl_adapter"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. The app reads
// input, loads HCL with an empty environment, and logs at debug level into
// the returned log buffer.
func SetupAppTest(t *testing.T, appConfig *Config, input string) (*App, *SafeBuffer, *SafeBuffer, error) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp, err := NewApp(strings.NewReader(input), outBuffer, logBuffer, appConfig, hcl_adapter.NewLoaderWithEnv(nil))

	t.Cleanup(func() {
		if os.Getenv("NUMWORDS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer, err
}
