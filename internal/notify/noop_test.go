package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmurov/reqdesk/models"
)

func TestToastBuffer_PushAndDrain(t *testing.T) {
	buf := NewToastBuffer()
	buf.Push(models.Toast{ID: "1", Text: "first"})
	buf.Push(models.Toast{ID: "2", Text: "second"})

	got := buf.Drain()

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
	assert.Empty(t, buf.Drain(), "drain must empty the buffer")
}

func TestToastBuffer_ConcurrentPush(t *testing.T) {
	buf := NewToastBuffer()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf.Push(models.Toast{Text: "t"})
		}()
	}
	wg.Wait()

	assert.Len(t, buf.Drain(), 50)
}

func TestNopDesktopNotifier_DefaultsToUnavailable(t *testing.T) {
	n := NopDesktopNotifier{}
	assert.Equal(t, models.PermissionUnavailable, n.Permission())
	assert.NoError(t, n.Notify(models.DesktopNote{Title: "x"}))
}

func TestNopDesktopNotifier_ReportsConfiguredPermission(t *testing.T) {
	n := NopDesktopNotifier{Perm: models.PermissionGranted}
	assert.Equal(t, models.PermissionGranted, n.Permission())
}
