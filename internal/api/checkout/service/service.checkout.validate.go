package checkoutsvc

import (
	"math"

	models "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/common"
)

// requiredFields là bảng field bắt buộc cố định theo order type và role.
// Key phụ của map là tên field trong payload submit.
//
// Direct có hai biến thể: đơn của party (cần party + distributor) và
// đơn của salesman (cần salesman). Validator phân biệt qua việc context
// có salesman_id hay không — hai biến thể loại trừ lẫn nhau theo §role.
type contextCheck struct {
	field   string
	present func(*models.OrderContext) bool
}

var (
	checkParty = contextCheck{"party_id", func(c *models.OrderContext) bool {
		return c.PartyID != ""
	}}
	checkDistributor = contextCheck{"distributor_id", func(c *models.OrderContext) bool {
		return c.DistributorID != ""
	}}
	checkZone = contextCheck{"zone_id", func(c *models.OrderContext) bool {
		return c.ZoneID != ""
	}}
	checkSalesman = contextCheck{"salesman_id", func(c *models.OrderContext) bool {
		return c.SalesmanID != ""
	}}
	checkEvent = contextCheck{"event_id", func(c *models.OrderContext) bool {
		return c.EventID != ""
	}}
	checkLocation = contextCheck{"latitude/longitude", func(c *models.OrderContext) bool {
		if !c.HasLocation() {
			return false
		}
		// Tọa độ phải là số thực hợp lệ, không NaN/Inf
		return !math.IsNaN(*c.Latitude) && !math.IsInf(*c.Latitude, 0) &&
			!math.IsNaN(*c.Longitude) && !math.IsInf(*c.Longitude, 0)
	}}
)

// ValidateOrderContext kiểm tra context theo bảng field bắt buộc của
// order type. Trả về ValidationError nêu tên field đầu tiên thiếu hoặc
// sai kiểu. Không gọi network — validation fail thì không có request
// nào được gửi đi. Side-effect-free.
func ValidateOrderContext(orderCtx *models.OrderContext) error {
	if orderCtx == nil {
		return common.NewValidationError("order_context", "bị thiếu")
	}

	var checks []contextCheck
	switch orderCtx.OrderType {
	case models.OrderTypeDirect:
		if orderCtx.SalesmanID != "" {
			// Direct của salesman: chỉ salesman_id bắt buộc
			checks = []contextCheck{checkSalesman}
		} else {
			// Direct của party: party + distributor bắt buộc
			checks = []contextCheck{checkParty, checkDistributor}
		}
	case models.OrderTypeDistributor:
		checks = []contextCheck{checkParty, checkDistributor, checkZone}
	case models.OrderTypeWhatsApp:
		checks = []contextCheck{checkParty, checkSalesman}
	case models.OrderTypeVisit:
		checks = []contextCheck{checkParty, checkSalesman, checkLocation}
	case models.OrderTypeEvent:
		checks = []contextCheck{checkSalesman, checkEvent}
	default:
		return common.NewValidationError("order_type", "không hợp lệ")
	}

	for _, check := range checks {
		if !check.present(orderCtx) {
			return common.NewValidationError(check.field, "bị thiếu hoặc sai kiểu")
		}
	}
	return nil
}
