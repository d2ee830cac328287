package checkoutsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	models "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/common"
	"eyewear_commerce/internal/logger"
	"eyewear_commerce/internal/utility"
)

// OrderItem là một dòng hàng trong payload submit.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderSubmission là payload logic gửi sang order service:
// order_type, order_date (ISO-8601 không mili giây), items, notes
// cộng với các field context đã resolve.
type OrderSubmission struct {
	OrderType     string      `json:"order_type"`
	OrderDate     string      `json:"order_date"`
	OrderItems    []OrderItem `json:"order_items"`
	OrderNotes    string      `json:"order_notes"`
	PartyID       string      `json:"party_id,omitempty"`
	DistributorID string      `json:"distributor_id,omitempty"`
	ZoneID        string      `json:"zone_id,omitempty"`
	SalesmanID    string      `json:"salesman_id,omitempty"`
	EventID       string      `json:"event_id,omitempty"`
	Latitude      *float64    `json:"latitude,omitempty"`
	Longitude     *float64    `json:"longitude,omitempty"`
}

// SubmissionResult là kết quả order service trả về khi tạo đơn thành công.
type SubmissionResult struct {
	OrderID string `json:"order_id"`
}

// OrderSubmitter gửi payload đã resolve sang order service.
type OrderSubmitter interface {
	Submit(ctx context.Context, submission *OrderSubmission) (*SubmissionResult, error)
}

// HTTPOrderSubmitter gọi order service qua HTTP POST.
type HTTPOrderSubmitter struct {
	baseURL string
	client  *http.Client
}

// NewHTTPOrderSubmitter tạo submitter với timeout 10 giây.
func NewHTTPOrderSubmitter(baseURL string) *HTTPOrderSubmitter {
	return &HTTPOrderSubmitter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// BuildSubmission ghép context đã resolve với items/notes thành payload submit.
func BuildSubmission(orderCtx *models.OrderContext, items []OrderItem, notes string, orderDate time.Time) *OrderSubmission {
	return &OrderSubmission{
		OrderType:     string(orderCtx.OrderType),
		OrderDate:     utility.FormatOrderDate(orderDate),
		OrderItems:    items,
		OrderNotes:    notes,
		PartyID:       orderCtx.PartyID,
		DistributorID: orderCtx.DistributorID,
		ZoneID:        orderCtx.ZoneID,
		SalesmanID:    orderCtx.SalesmanID,
		EventID:       orderCtx.EventID,
		Latitude:      orderCtx.Latitude,
		Longitude:     orderCtx.Longitude,
	}
}

// Submit POST payload sang order service.
// Lỗi transport hoặc status ngoài 2xx trả về SubmissionFailed, giữ
// nguyên message của order service để hiển thị cho người dùng.
func (s *HTTPOrderSubmitter) Submit(ctx context.Context, submission *OrderSubmission) (*SubmissionResult, error) {
	jsonData, err := json.Marshal(submission)
	if err != nil {
		return nil, common.NewSubmissionError(fmt.Sprintf("không serialize được payload: %v", err))
	}

	logger.GetAppLogger().WithField("payload", utility.PrettyPrint(submission)).Debug("Gửi đơn hàng sang order service")

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, common.NewSubmissionError(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).Error("Không liên lạc được order service")
		return nil, common.NewSubmissionError(err.Error())
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"response":    string(bodyBytes),
		}).Error("Order service từ chối đơn hàng")
		return nil, common.NewSubmissionError(string(bodyBytes))
	}

	var result SubmissionResult
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, common.NewSubmissionError("response tạo đơn không đúng định dạng")
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"order_id":   result.OrderID,
		"order_type": submission.OrderType,
	}).Info("Gửi đơn hàng thành công")
	return &result, nil
}
