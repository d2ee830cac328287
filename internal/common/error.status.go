package common

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusAccepted  = 202 // Yêu cầu được chấp nhận
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest       = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized     = 401 // Chưa xác thực
	StatusForbidden        = 403 // Không có quyền truy cập
	StatusNotFound         = 404 // Không tìm thấy tài nguyên
	StatusConflict         = 409 // Xung đột dữ liệu
	StatusTooManyRequests  = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusBadGateway          = 502 // Gateway không hợp lệ
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Gateway timeout
)

// Response Messages
const (
	MsgSuccess = "Thao tác thành công"
	MsgCreated = "Tạo mới thành công"

	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgUnauthorized    = "Vui lòng đăng nhập"
	MsgForbidden       = "Không có quyền truy cập"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgInternalError   = "Lỗi hệ thống"
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"

	MsgTokenMissing = "Thiếu token xác thực"
	MsgTokenInvalid = "Token không hợp lệ"
	MsgTokenExpired = "Token đã hết hạn"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: CHK_001)
	Category    string // Phân loại lỗi (ví dụ: Checkout)
	SubCategory string // Phân loại con (ví dụ: Selection)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Lỗi liên quan đến token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Lỗi thông tin đăng nhập",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Lỗi liên quan đến vai trò người dùng",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	// Checkout Errors (CHK_xxx) — dùng bởi engine resolve ngữ cảnh đơn hàng
	ErrCodeCheckoutSelection = ErrorCode{
		Code:        "CHK_001",
		Category:    "Checkout",
		SubCategory: "Selection",
		Description: "Người dùng chưa chọn đủ thông tin (party/event)",
	}

	ErrCodeCheckoutResolve = ErrorCode{
		Code:        "CHK_002",
		Category:    "Checkout",
		SubCategory: "Resolve",
		Description: "Không resolve được ngữ cảnh đơn hàng từ các collection",
	}

	ErrCodeCheckoutValidation = ErrorCode{
		Code:        "CHK_003",
		Category:    "Checkout",
		SubCategory: "Validation",
		Description: "Payload đơn hàng thiếu hoặc sai kiểu field bắt buộc",
	}

	ErrCodeCheckoutLocation = ErrorCode{
		Code:        "CHK_004",
		Category:    "Checkout",
		SubCategory: "Location",
		Description: "Không lấy được vị trí thiết bị cho visit order",
	}

	ErrCodeCheckoutSubmit = ErrorCode{
		Code:        "CHK_005",
		Category:    "Checkout",
		SubCategory: "Submit",
		Description: "Order service từ chối hoặc không liên lạc được",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết.
// Reason phân biệt các sentinel cùng chung một mã (ví dụ các lỗi resolve
// đều là CHK_002 nhưng PartyNotFound khác DistributorUnresolved).
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Reason     string    // Định danh sentinel trong cùng một mã (rỗng với lỗi ad-hoc)
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is).
// Hai *Error được coi là bằng nhau khi cùng Code VÀ cùng Reason —
// Details/Message có thể khác vì mang thông tin cụ thể của từng lần lỗi,
// nhưng hai sentinel khác nhau trong cùng một mã không bao giờ khớp nhau.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Reason == targetErr.Reason
	}
	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// NewErrorWithReason tạo error sentinel với Reason định danh,
// để errors.Is phân biệt được các sentinel cùng mã.
func NewErrorWithReason(code ErrorCode, reason string, message string, statusCode int) error {
	return &Error{
		Code:       code,
		Reason:     reason,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Custom errors. Sentinel dùng chung một mã phải có Reason riêng
// để errors.Is không đánh đồng chúng với nhau.
var (
	// Authentication Errors
	ErrInvalidCredentials = NewErrorWithReason(ErrCodeAuthCredentials, "invalid_credentials", "Thông tin đăng nhập không chính xác", StatusUnauthorized)
	ErrTokenExpired       = NewErrorWithReason(ErrCodeAuthToken, "token_expired", "Phiên đăng nhập đã hết hạn", StatusUnauthorized)
	ErrTokenInvalid       = NewErrorWithReason(ErrCodeAuthToken, "token_invalid", MsgTokenInvalid, StatusUnauthorized)
	ErrTokenMissing       = NewErrorWithReason(ErrCodeAuthToken, "token_missing", MsgTokenMissing, StatusUnauthorized)
	ErrUserNotFound       = NewErrorWithReason(ErrCodeAuthCredentials, "user_not_found", "Không tìm thấy thông tin người dùng", StatusNotFound)

	// Validation Errors
	ErrInvalidInput  = NewErrorWithReason(ErrCodeValidationInput, "invalid_input", "Dữ liệu đầu vào không hợp lệ", StatusBadRequest)
	ErrInvalidFormat = NewErrorWithReason(ErrCodeValidationFormat, "invalid_format", "Định dạng dữ liệu không hợp lệ", StatusBadRequest)
	ErrRequiredField = NewErrorWithReason(ErrCodeValidationInput, "required_field", "Thiếu thông tin bắt buộc", StatusBadRequest)

	// Database Errors
	ErrNotFound   = NewErrorWithReason(ErrCodeDatabaseQuery, "not_found", "Không tìm thấy dữ liệu", StatusNotFound)
	ErrDuplicate  = NewErrorWithReason(ErrCodeDatabaseQuery, "duplicate", "Dữ liệu đã tồn tại", StatusConflict)
	ErrConnection = NewErrorWithReason(ErrCodeDatabaseConnection, "connection", "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable)

	// Checkout Errors — các lỗi terminal của engine resolve.
	// PartyNotFound: quét hết mọi quốc gia mà không có party nào trùng số điện thoại.
	ErrPartyNotFound = NewErrorWithReason(ErrCodeCheckoutResolve, "party_not_found",
		"Không tìm thấy party theo số điện thoại. Vui lòng liên hệ hỗ trợ để cập nhật dữ liệu.",
		StatusNotFound)
	// DistributorUnresolved: tìm thấy party nhưng mọi bước fallback đều không ra distributor.
	ErrDistributorUnresolved = NewErrorWithReason(ErrCodeCheckoutResolve, "distributor_unresolved",
		"Không xác định được distributor cho đơn hàng.",
		StatusNotFound)
	// SalesmanIdUnresolved: không nguồn claim nào cho ra salesman id.
	ErrSalesmanIdUnresolved = NewErrorWithReason(ErrCodeCheckoutResolve, "salesman_id_unresolved",
		"Không xác định được salesman id từ bất kỳ nguồn nào.",
		StatusNotFound)
	// LocationRequired: visit order nhưng không lấy được vị trí thiết bị.
	ErrLocationRequired = NewErrorWithReason(ErrCodeCheckoutLocation, "location_required",
		"Visit order yêu cầu vị trí thiết bị. Vui lòng cấp quyền vị trí và thử lại.",
		StatusBadRequest)
	// AttemptSuperseded: kết quả resolve thuộc attempt cũ, đã bị attempt mới thay thế.
	ErrAttemptSuperseded = NewErrorWithReason(ErrCodeCheckoutResolve, "attempt_superseded",
		"Phiên resolve đã bị thay thế bởi thao tác mới hơn.",
		StatusConflict)
)

// NewMissingSelectionError tạo lỗi MissingSelection cho field người dùng chưa chọn
// (ví dụ: party_id, event_id).
func NewMissingSelectionError(field string) error {
	return NewError(ErrCodeCheckoutSelection,
		fmt.Sprintf("Vui lòng chọn %s trước khi đặt hàng", field),
		StatusBadRequest,
		map[string]interface{}{"field": field})
}

// NewValidationError tạo lỗi ValidationError khi payload thiếu/sai kiểu field bắt buộc.
func NewValidationError(field string, reason string) error {
	return NewError(ErrCodeCheckoutValidation,
		fmt.Sprintf("Payload đơn hàng không hợp lệ: field %s %s", field, reason),
		StatusBadRequest,
		map[string]interface{}{"field": field, "reason": reason})
}

// NewSubmissionError tạo lỗi SubmissionFailed, giữ nguyên message từ order service.
func NewSubmissionError(message string) error {
	return NewError(ErrCodeCheckoutSubmit,
		fmt.Sprintf("Gửi đơn hàng thất bại: %s", message),
		StatusBadGateway, nil)
}

// IsCheckoutError kiểm tra err có thuộc mã checkout cho trước không.
func IsCheckoutError(err error, code ErrorCode) bool {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code.Code == code.Code
	}
	return false
}

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound giữ nguyên, không convert
	if errors.Is(err, ErrNotFound) {
		return err
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return NewError(ErrCodeAuthCredentials, "Lỗi xác thực MongoDB", StatusUnauthorized, nil)
		default:
			return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, err)
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrConnection
	}
	if mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "Kết nối MongoDB bị timeout", StatusServiceUnavailable, nil)
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
