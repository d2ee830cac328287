package checkoutsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	models "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/common"
	"eyewear_commerce/internal/logger"
)

// geolocationTimeout là timeout cho một lần lấy vị trí thiết bị.
const geolocationTimeout = 15 * time.Second

// LocationProvider lấy vị trí thiết bị cho một attempt checkout.
// Mỗi attempt chỉ gọi đúng một lần, không cache kết quả của attempt
// trước (invariant: không tái sử dụng vị trí của đơn hàng cũ).
type LocationProvider interface {
	Acquire(ctx context.Context) (*models.GeoPoint, error)
}

// HTTPLocationProvider gọi location service qua HTTP.
// Endpoint trả về {latitude, longitude} cho session của caller.
type HTTPLocationProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPLocationProvider tạo provider với timeout 15 giây.
func NewHTTPLocationProvider(baseURL string) *HTTPLocationProvider {
	return &HTTPLocationProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: geolocationTimeout},
	}
}

// Acquire lấy vị trí thiết bị, một lần duy nhất, không retry.
// Mọi thất bại (timeout, từ chối quyền, service không cấu hình) trả về
// lỗi mô tả; caller quyết định có fatal không (chỉ visit order là fatal).
func (p *HTTPLocationProvider) Acquire(ctx context.Context) (*models.GeoPoint, error) {
	if p.baseURL == "" {
		return nil, common.NewError(common.ErrCodeCheckoutLocation,
			"Location service chưa được cấu hình", common.StatusServiceUnavailable, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, geolocationTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"/location", nil)
	if err != nil {
		return nil, common.NewError(common.ErrCodeCheckoutLocation,
			"Không tạo được request lấy vị trí", common.StatusInternalServerError, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Lấy vị trí thiết bị thất bại")
		return nil, common.NewError(common.ErrCodeCheckoutLocation,
			fmt.Sprintf("Không lấy được vị trí thiết bị: %v", err),
			common.StatusServiceUnavailable, nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, common.NewError(common.ErrCodeCheckoutLocation,
			fmt.Sprintf("Location service trả về status %d: %s", resp.StatusCode, string(bodyBytes)),
			common.StatusServiceUnavailable, nil)
	}

	var point models.GeoPoint
	if err := json.NewDecoder(resp.Body).Decode(&point); err != nil {
		return nil, common.NewError(common.ErrCodeCheckoutLocation,
			"Response vị trí không đúng định dạng", common.StatusServiceUnavailable, err)
	}

	return &point, nil
}
