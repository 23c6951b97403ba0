package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrainIsFIFO(t *testing.T) {
	n := New(0)
	n.Publish(LevelInfo, "one")
	n.Publish(LevelWarning, "two")
	require.Equal(t, 2, n.Pending())

	got := n.Drain()
	require.Len(t, got, 2)
	require.Equal(t, "one", got[0].Message)
	require.Equal(t, LevelWarning, got[1].Level)
	require.NotEqual(t, got[0].ID, got[1].ID)

	require.Empty(t, n.Drain())
	require.Zero(t, n.Pending())
}

func TestCapacityDropsOldest(t *testing.T) {
	n := New(2)
	n.Publish(LevelInfo, "a")
	n.Publish(LevelInfo, "b")
	n.Publish(LevelInfo, "c")

	got := n.Drain()
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].Message)
	require.Equal(t, "c", got[1].Message)
}

func TestSubscribeUnsubscribe(t *testing.T) {
	n := New(0)
	id, ch := n.Subscribe()

	n.Publish(LevelSuccess, "hello")
	note := <-ch
	require.Equal(t, "hello", note.Message)

	n.Unsubscribe(id)
	_, open := <-ch
	require.False(t, open)

	// Unsubscribed channels receive nothing and do not block publishers.
	n.Publish(LevelInfo, "after")
	n.Unsubscribe(id)
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	n := New(0)
	_, ch := n.Subscribe()

	for i := 0; i < subscriberBuffer*2; i++ {
		n.Publish(LevelInfo, "x")
	}
	require.Len(t, ch, subscriberBuffer)
}

func TestClose(t *testing.T) {
	n := New(0)
	_, ch := n.Subscribe()
	n.Publish(LevelInfo, "x")

	n.Close()
	n.Close()

	<-ch
	_, open := <-ch
	require.False(t, open)

	n.Publish(LevelInfo, "ignored")
	require.Zero(t, n.Pending())

	_, late := n.Subscribe()
	_, open = <-late
	require.False(t, open)
}
