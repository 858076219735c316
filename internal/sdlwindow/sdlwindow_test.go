package sdlwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vkngwrapper/hellotriangle/internal/lifecycle"
)

func TestWindowFlags(t *testing.T) {
	flags := windowFlags(lifecycle.WindowOptions{Title: "Vulkan", Width: 800, Height: 600})

	assert.NotZero(t, flags&sdl.WINDOW_VULKAN)
	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
	assert.Zero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.Zero(t, flags&sdl.WINDOW_OPENGL)

	flags = windowFlags(lifecycle.WindowOptions{Resizable: true})
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
}

func TestIsCloseRequest(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  bool
	}{
		{name: "quit", event: &sdl.QuitEvent{Type: sdl.QUIT}, want: true},
		{name: "close this window", event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: 1, Event: sdl.WINDOWEVENT_CLOSE}, want: true},
		{name: "close other window", event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: 2, Event: sdl.WINDOWEVENT_CLOSE}, want: false},
		{name: "resize", event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: 1, Event: sdl.WINDOWEVENT_RESIZED}, want: false},
		{name: "key press", event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, WindowID: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isCloseRequest(tt.event, 1))
		})
	}
}

func TestWindowShouldClose(t *testing.T) {
	w := &Window{}
	assert.False(t, w.ShouldClose())

	w.shouldClose = true
	assert.True(t, w.ShouldClose())
}

func TestDestroyWithoutHandle(t *testing.T) {
	w := &Window{}
	assert.NoError(t, w.Destroy())
}
