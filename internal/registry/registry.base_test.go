package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("key1", "value1")
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register key mới phải trả isNew=true")
	}

	isNew, err = r.Register("key1", "value2")
	if err != nil {
		t.Fatalf("Register ghi đè lỗi: %v", err)
	}
	if isNew {
		t.Error("Register key đã tồn tại phải trả isNew=false")
	}

	value, exists := r.Get("key1")
	if !exists || value != "value2" {
		t.Errorf("Get sau ghi đè sai: %q (exists=%v)", value, exists)
	}

	if _, exists := r.Get("không-tồn-tại"); exists {
		t.Error("Get key không tồn tại phải trả exists=false")
	}
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với name rỗng phải trả lỗi")
	}
	if _, err := r.GetOrCreate("", func() (int, error) { return 1, nil }); err == nil {
		t.Error("GetOrCreate với name rỗng phải trả lỗi")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := r.GetOrCreate("answer", creator)
	if err != nil || v != 42 {
		t.Fatalf("GetOrCreate lần đầu sai: %d (err=%v)", v, err)
	}
	v, err = r.GetOrCreate("answer", creator)
	if err != nil || v != 42 {
		t.Fatalf("GetOrCreate lần hai sai: %d (err=%v)", v, err)
	}
	if calls != 1 {
		t.Errorf("Creator phải chỉ được gọi một lần, đã gọi %d lần", calls)
	}

	_, err = r.GetOrCreate("fail", func() (int, error) { return 0, errors.New("tạo thất bại") })
	if err == nil {
		t.Error("GetOrCreate với creator lỗi phải trả lỗi")
	}
	if r.Len() != 1 {
		t.Errorf("Item tạo thất bại không được lưu vào registry, Len=%d", r.Len())
	}
}

func TestRegistry_ClearWithCleanup(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("key1", "value1")

	cleaned := false
	deleted, err := r.Clear("key1", func(s string) error {
		cleaned = true
		return nil
	})
	if err != nil || !deleted {
		t.Fatalf("Clear sai: deleted=%v err=%v", deleted, err)
	}
	if !cleaned {
		t.Error("Cleanup phải được gọi trước khi xóa")
	}

	deleted, err = r.Clear("key1", nil)
	if err != nil || deleted {
		t.Errorf("Clear key không tồn tại phải trả deleted=false, có %v (err=%v)", deleted, err)
	}
}

func TestRegistry_ClearKeepsItemOnCleanupError(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("key1", "value1")

	_, err := r.Clear("key1", func(s string) error {
		return errors.New("không giải phóng được")
	})
	if err == nil {
		t.Fatal("Clear với cleanup lỗi phải trả lỗi")
	}
	if _, exists := r.Get("key1"); !exists {
		t.Error("Item phải còn trong registry khi cleanup thất bại")
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

	if r.Len() != 1 {
		t.Errorf("Registry phải có đúng 1 item sau các lần ghi đè song song, có %d", r.Len())
	}
}
