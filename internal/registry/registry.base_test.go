package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}
	if !isNew {
		t.Error("item đầu tiên phải là item mới")
	}

	got, exists := r.Get("a")
	if !exists || got != 1 {
		t.Errorf("Get trả về sai: %d, %v", got, exists)
	}

	// Ghi đè item cũ
	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register ghi đè trả về lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè item cũ mà vẫn báo là item mới")
	}
	if got, _ := r.Get("a"); got != 2 {
		t.Errorf("giá trị sau khi ghi đè sai: %d", got)
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry[int]()

	if names := r.Names(); len(names) != 0 {
		t.Errorf("registry rỗng mà vẫn trả về %d tên", len(names))
	}

	_, _ = r.Register("videos", 1)
	_, _ = r.Register("sections", 2)
	_, _ = r.Register("products", 3)

	names := r.Names()
	if len(names) != 3 {
		t.Fatalf("số lượng tên sai: %d", len(names))
	}
	// Thứ tự phải ổn định theo alphabet
	want := []string{"products", "sections", "videos"}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("tên thứ %d sai: muốn %s, nhận được %s", i, name, names[i])
		}
	}
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("name rỗng phải trả về lỗi")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	created := 0
	creator := func() (string, error) {
		created++
		return "value", nil
	}

	got, err := r.GetOrCreate("k", creator)
	if err != nil || got != "value" {
		t.Fatalf("GetOrCreate lần đầu sai: %q, %v", got, err)
	}

	// Lần hai không được gọi lại creator
	if _, err := r.GetOrCreate("k", creator); err != nil {
		t.Fatalf("GetOrCreate lần hai trả về lỗi: %v", err)
	}
	if created != 1 {
		t.Errorf("creator phải được gọi đúng 1 lần, nhận được %d", created)
	}
}

func TestRegistry_Update(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("n", 1)

	err := r.Update("n", func(v int) (int, error) { return v + 1, nil })
	if err != nil {
		t.Fatalf("Update trả về lỗi: %v", err)
	}
	if got, _ := r.Get("n"); got != 2 {
		t.Errorf("giá trị sau Update sai: %d", got)
	}

	if err := r.Update("missing", func(v int) (int, error) { return v, nil }); err == nil {
		t.Error("Update item không tồn tại phải trả về lỗi")
	}
}

func TestRegistry_ClearWithCleanup(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("n", 1)

	cleaned := false
	deleted, err := r.Clear("n", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil || !deleted {
		t.Fatalf("Clear sai: deleted=%v, err=%v", deleted, err)
	}
	if !cleaned {
		t.Error("cleanup phải được gọi trước khi xóa")
	}
	if _, exists := r.Get("n"); exists {
		t.Error("item vẫn tồn tại sau khi Clear")
	}

	// Cleanup lỗi thì item phải được giữ lại
	r.Register("m", 2)
	deleted, err = r.Clear("m", func(int) error { return errors.New("busy") })
	if err == nil || deleted {
		t.Error("cleanup lỗi mà item vẫn bị xóa")
	}
	if _, exists := r.Get("m"); !exists {
		t.Error("item phải được giữ lại khi cleanup lỗi")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()

	if _, exists := r.Get("shared"); !exists {
		t.Error("item phải tồn tại sau các thao tác đồng thời")
	}
}
