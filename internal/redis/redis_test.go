package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClient(t *testing.T) {
	client := GetClient()
	if client == nil {
		t.Error("Expected Redis client to be created")
	}

	// Test that we can get the same client multiple times (singleton pattern)
	client2 := GetClient()
	if client != client2 {
		t.Error("Expected same client instance (singleton pattern)")
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "sunny_weather:place", Key("sunny_weather", "place"))
	assert.Equal(t, "place_search:北京", Key("place_search", "北京"))
	assert.Equal(t, "single", Key("single"))
}

func TestResetClientForTest(t *testing.T) {
	client1 := GetClient()
	ResetClientForTest()
	client2 := GetClient()
	if client1 == client2 {
		t.Error("Expected a new client instance after reset")
	}
}

func BenchmarkGetClient(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetClient()
	}
}

func TestClose(t *testing.T) {
	ResetClientForTest()
	assert.NoError(t, Close())

	_ = GetClient()
	assert.NoError(t, Close())
	ResetClientForTest()
}
