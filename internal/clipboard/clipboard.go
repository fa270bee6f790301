// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/artilence/agentchat/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error

	// Backend hooks, replaced in tests
	initFunc  = clipboard.Init
	writeFunc = func(data []byte) { clipboard.Write(clipboard.FmtText, data) }
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	initOnce.Do(func() {
		if err := initFunc(); err != nil {
			logger.ComponentLogger("clipboard").Warn("failed to initialize", "error", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			return
		}
		logger.ComponentLogger("clipboard").Debug("initialized")
	})
	return initErr
}

// WriteText places text on the clipboard
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	writeFunc([]byte(text))
	logger.ComponentLogger("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}
