package bus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sat8bit/cheatsheet/message"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func drain(ch <-chan *message.Message) []int {
	var got []int
	for m := range ch {
		got = append(got, m.Index)
	}
	return got
}

func TestMemoryBus_FanOutInOrder(t *testing.T) {
	b := NewMemoryBus()
	subs := []<-chan *message.Message{b.Subscribe(), b.Subscribe(), b.Subscribe()}

	results := make([][]int, len(subs))
	var wg sync.WaitGroup
	for i, ch := range subs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = drain(ch)
		}()
	}

	// more messages than a subscriber buffer holds: nothing may be dropped
	const n = subscriberBuffer * 4
	want := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		require.NoError(t, b.Broadcast(context.Background(), &message.Message{Kind: message.KindTopic, Index: i}))
		want = append(want, i)
	}
	b.Close()
	wg.Wait()

	for i := range subs {
		assert.Equal(t, want, results[i], "subscriber %d", i)
	}
}

func TestMemoryBus_Closed(t *testing.T) {
	b := NewMemoryBus()
	ch := b.Subscribe()
	b.Close()
	b.Close()

	_, ok := <-ch
	assert.False(t, ok, "subscriber channel is closed")

	err := b.Broadcast(context.Background(), &message.Message{})
	assert.ErrorIs(t, err, ErrClosed)

	late, ok := <-b.Subscribe()
	assert.Nil(t, late)
	assert.False(t, ok, "subscribing to a closed bus yields a closed channel")
}

func TestMemoryBus_BroadcastHonorsContext(t *testing.T) {
	b := NewMemoryBus()
	defer b.Close()
	_ = b.Subscribe() // never read

	for i := 0; i < subscriberBuffer; i++ {
		require.NoError(t, b.Broadcast(context.Background(), &message.Message{Index: i}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := b.Broadcast(ctx, &message.Message{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
