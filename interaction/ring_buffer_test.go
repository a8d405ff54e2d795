package interaction_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/networkteam/designkit/interaction"
)

func TestRingBuffer_Basic(t *testing.T) {
	rb := interaction.NewRingBuffer[string](3)

	assert.Equal(t, uint64(0), rb.Len())
	assert.Equal(t, uint64(3), rb.Capacity())
	assert.Empty(t, rb.Last(5))

	rb.Add("a")
	assert.Equal(t, uint64(1), rb.Len())
	assert.Equal(t, []string{"a"}, rb.Last(1))

	rb.Add("b")
	rb.Add("c")
	assert.Equal(t, []string{"a", "b", "c"}, rb.Last(3))
	assert.Equal(t, []string{"b", "c"}, rb.Last(2))
}

func TestRingBuffer_Overwrite(t *testing.T) {
	rb := interaction.NewRingBuffer[string](3)

	for _, s := range []string{"a", "b", "c", "d"} {
		rb.Add(s)
	}
	assert.Equal(t, uint64(3), rb.Len())
	assert.Equal(t, []string{"b", "c", "d"}, rb.Last(3))

	rb.Add("e")
	rb.Add("f")
	assert.Equal(t, []string{"d", "e", "f"}, rb.Last(10))
}

func TestRingBuffer_ZeroCapacityPanics(t *testing.T) {
	assert.Panics(t, func() {
		interaction.NewRingBuffer[int](0)
	})
}

func TestRingBuffer_Concurrent(t *testing.T) {
	rb := interaction.NewRingBuffer[int](50)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				rb.Add(i)
				_ = rb.Last(10)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), rb.Len())
	assert.Len(t, rb.Last(100), 50)
}
