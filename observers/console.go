// Package observers provides ready-made Observer implementations for
// embedders that do not bring their own: a console progress bar and a
// structured-log observer.
package observers

import (
	"fmt"
	"sync"

	"github.com/gosuri/uiprogress"

	"github.com/tablekit/imexport"
)

// Console renders run progress as a terminal progress bar and prints
// warnings and errors beneath it.
type Console struct {
	label string

	mu  sync.Mutex
	bar *uiprogress.Bar
}

// NewConsole creates a console observer. The label is prepended to the bar,
// e.g. "Importing: ".
func NewConsole(label string) *Console {
	return &Console{label: label}
}

// Start begins rendering. Call once before the run; pair with Stop.
func (c *Console) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	uiprogress.Start()
	c.bar = uiprogress.AddBar(100).AppendCompleted().PrependElapsed()
	c.bar.PrependFunc(func(b *uiprogress.Bar) string {
		return c.label
	})
}

// Stop stops rendering.
func (c *Console) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	uiprogress.Stop()
	c.bar = nil
}

// OnProgress moves the bar to the given percentage.
func (c *Console) OnProgress(percentage float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bar == nil {
		return
	}
	n := int(percentage)
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	c.bar.Set(n)
}

// OnWarning prints the warning beneath the bar.
func (c *Console) OnWarning(warning imexport.Warning) {
	fmt.Printf("⚠️  [%s] %s\n", warning.Kind, warning.Message)
}

// OnError prints the error beneath the bar.
func (c *Console) OnError(err *imexport.Error) {
	fmt.Printf("❌ [%s] %v\n", err.Kind, err)
}
