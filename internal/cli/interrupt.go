package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler manages graceful shutdown with friendly messages.
type InterruptHandler struct {
	writer      io.Writer
	cancelFunc  context.CancelFunc
	done        chan struct{}
	interrupted bool
	unsaved     bool
	mu          sync.Mutex
	stopOnce    sync.Once
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stdout
	}
	return &InterruptHandler{
		writer: writer,
		done:   make(chan struct{}),
	}
}

// HandleInterrupts returns a context canceled on SIGINT, SIGTERM, or when
// the parent is canceled. When unsaved is true the message warns that the
// current ratings were not submitted. Call Stop when the work finishes.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context, unsaved bool) context.Context {
	child, cancel := context.WithCancel(ctx)
	h.cancelFunc = cancel
	h.unsaved = unsaved

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
		case <-ctx.Done():
		case <-h.done:
			return
		}
		h.mu.Lock()
		if !h.interrupted {
			h.interrupted = true
			h.showInterruptMessage()
		}
		h.mu.Unlock()
		cancel()
	}()

	return child
}

// Stop releases the signal handler without printing anything.
func (h *InterruptHandler) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		if h.cancelFunc != nil {
			h.cancelFunc()
		}
	})
}

// showInterruptMessage displays a friendly interrupt message.
func (h *InterruptHandler) showInterruptMessage() {
	msg := "\n\n" + FormatWarning("평가가 중단되었습니다")

	if h.unsaved {
		msg += "\n" + FormatInfo("입력한 평가는 제출되지 않았습니다. 다시 실행하려면: evalform evaluate --plain")
	}

	msg += "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
