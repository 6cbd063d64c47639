package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler(t *testing.T) {
	tests := []struct {
		writer io.Writer
		name   string
	}{
		{
			name:   "with custom writer",
			writer: &bytes.Buffer{},
		},
		{
			name:   "with nil writer",
			writer: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInterruptHandler(tt.writer)
			assert.NotNil(t, handler)
			assert.NotNil(t, handler.writer)
			assert.False(t, handler.interrupted)
		})
	}
}

func TestHandleInterrupts(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	// Create a context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	ctx = handler.HandleInterrupts(ctx, true) //nolint:ineffassign // We need the returned context

	// Context should not be canceled initially
	select {
	case <-ctx.Done():
		t.Fatal("Context should not be canceled initially")
	default:
	}

	// Cancel the context to simulate interruption
	cancel()

	// Give the handler time to detect cancellation and write the message
	time.Sleep(50 * time.Millisecond)

	assert.True(t, handler.WasInterrupted())
	outputStr := output.String()
	assert.Contains(t, outputStr, "평가가 중단되었습니다")
	assert.Contains(t, outputStr, "제출되지 않았습니다")
	assert.Contains(t, outputStr, "evalform evaluate --plain")
}

func TestHandleInterrupts_NothingUnsaved(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	// Create a context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	_ = handler.HandleInterrupts(ctx, false)

	// Cancel the context to simulate interruption
	cancel()

	// Give the handler time to detect cancellation and write the message
	time.Sleep(50 * time.Millisecond)

	assert.True(t, handler.WasInterrupted())
	outputStr := output.String()
	assert.Contains(t, outputStr, "평가가 중단되었습니다")
	assert.NotContains(t, outputStr, "제출되지 않았습니다")
}

func TestMultipleInterrupts(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	// Create a context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	_ = handler.HandleInterrupts(ctx, true)

	// Cancel the context
	cancel()

	// Give time for the handler to process
	time.Sleep(50 * time.Millisecond)

	// Message should only be shown once
	outputStr := output.String()
	count := strings.Count(outputStr, "평가가 중단되었습니다")
	assert.Equal(t, 1, count, "Interrupt message should only be shown once")
}

func TestShowInterruptMessage(t *testing.T) {
	tests := []struct {
		name        string
		expected    []string
		notExpected []string
		unsaved     bool
	}{
		{
			name:    "with unsaved ratings",
			unsaved: true,
			expected: []string{
				"평가가 중단되었습니다",
				"제출되지 않았습니다",
				"evalform evaluate --plain",
			},
			notExpected: []string{},
		},
		{
			name:    "nothing unsaved",
			unsaved: false,
			expected: []string{
				"평가가 중단되었습니다",
			},
			notExpected: []string{
				"제출되지 않았습니다",
				"evalform evaluate",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			handler := &InterruptHandler{
				writer:  &output,
				unsaved: tt.unsaved,
			}

			handler.showInterruptMessage()

			outputStr := output.String()
			for _, expected := range tt.expected {
				assert.Contains(t, outputStr, expected)
			}
			for _, notExpected := range tt.notExpected {
				assert.NotContains(t, outputStr, notExpected)
			}
		})
	}
}

func TestStop_NoMessage(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	ctx := handler.HandleInterrupts(context.Background(), true)
	handler.Stop()
	handler.Stop()

	<-ctx.Done()
	time.Sleep(20 * time.Millisecond)

	assert.False(t, handler.WasInterrupted())
	assert.Empty(t, output.String())
}
