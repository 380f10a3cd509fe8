package export

import (
	"errors"
	"sync"

	"golang.design/x/clipboard"
)

// ErrClipboardUnavailable is returned when the system clipboard cannot be used,
// for example on a headless machine.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// Clipboard copies text to the system clipboard.
type Clipboard struct {
	initOnce    sync.Once
	initialized bool
	mu          sync.Mutex
}

// NewClipboard returns a Clipboard. The system clipboard is initialized lazily
// on first use.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// init initializes the system clipboard once.
func (c *Clipboard) init() {
	c.initOnce.Do(func() {
		c.initialized = clipboard.Init() == nil
	})
}

// Copy writes text to the system clipboard.
func (c *Clipboard) Copy(text string) error {
	c.init()
	if !c.initialized {
		return ErrClipboardUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// Available reports whether the system clipboard could be initialized.
func (c *Clipboard) Available() bool {
	c.init()
	return c.initialized
}
