package checkoutsvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eyewear_commerce/internal/common"
)

func TestHTTPLocationProvider_Acquire(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/location" {
			t.Errorf("Path sai: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"latitude": 10.762622, "longitude": 106.660172}`))
	}))
	defer server.Close()

	provider := NewHTTPLocationProvider(server.URL)
	point, err := provider.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire lỗi: %v", err)
	}
	if point.Latitude != 10.762622 || point.Longitude != 106.660172 {
		t.Errorf("Tọa độ sai: %+v", point)
	}
}

func TestHTTPLocationProvider_UnconfiguredService(t *testing.T) {
	provider := NewHTTPLocationProvider("")
	_, err := provider.Acquire(context.Background())
	if !common.IsCheckoutError(err, common.ErrCodeCheckoutLocation) {
		t.Fatalf("Service chưa cấu hình phải trả lỗi CHK location, có %v", err)
	}
}

func TestHTTPLocationProvider_PermissionDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("permission denied"))
	}))
	defer server.Close()

	provider := NewHTTPLocationProvider(server.URL)
	_, err := provider.Acquire(context.Background())
	if !common.IsCheckoutError(err, common.ErrCodeCheckoutLocation) {
		t.Fatalf("Bị từ chối quyền phải trả lỗi CHK location, có %v", err)
	}
}

func TestHTTPLocationProvider_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	provider := NewHTTPLocationProvider(server.URL)
	_, err := provider.Acquire(context.Background())
	if !common.IsCheckoutError(err, common.ErrCodeCheckoutLocation) {
		t.Fatalf("Response sai định dạng phải trả lỗi CHK location, có %v", err)
	}
}
