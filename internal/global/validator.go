package global

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"eyewear_commerce/internal/utility"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("order_type", validateOrderType)
	_ = Validate.RegisterValidation("actor_role", validateActorRole)
}

// validateNoXSS kiểm tra XSS trong input string
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateOrderType kiểm tra giá trị order type hợp lệ trên DTO.
// Danh sách phải khớp với các hằng OrderType của checkout.
func validateOrderType(fl validator.FieldLevel) bool {
	switch utility.NormalizeKeyword(fl.Field().String()) {
	case "direct", "distributor", "visit", "whatsapp", "event":
		return true
	}
	return false
}

// validateActorRole kiểm tra giá trị role hợp lệ trên DTO
func validateActorRole(fl validator.FieldLevel) bool {
	switch utility.NormalizeKeyword(fl.Field().String()) {
	case "party", "distributor", "salesman":
		return true
	}
	return false
}
