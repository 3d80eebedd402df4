package utility

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("không tìm thấy key vừa set")
	}
	if got != "v" {
		t.Errorf("giá trị sai: %v", got)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("key không tồn tại mà vẫn trả về ok")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache(10*time.Millisecond, time.Minute)

	c.Set("k", "v")
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("entry hết TTL mà vẫn đọc được")
	}
}

func TestCache_Delete(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)

	c.Set("k", 1)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("key vẫn đọc được sau khi Delete")
	}

	// Delete key không tồn tại không được panic
	c.Delete("missing")
}
