// Package checkoutsvc - Engine resolve ngữ cảnh đơn hàng và các
// collaborator của nó (dedup index, geolocation, validator, submit).
package checkoutsvc

import (
	"strings"
)

// minPhoneMatchDigits là số chữ số tối thiểu để suffix match có hiệu lực.
// Dưới ngưỡng này hai số quá ngắn để coi là cùng một thuê bao.
const minPhoneMatchDigits = 7

// NormalizePhone chuẩn hóa số điện thoại: bỏ dấu '+' đầu, khoảng trắng
// và dấu gạch ngang. Hàm idempotent: normalize(normalize(p)) == normalize(p).
func NormalizePhone(phone string) string {
	s := strings.TrimSpace(phone)
	s = strings.TrimLeft(s, "+")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// PhonesMatch so khớp hai số điện thoại sau chuẩn hóa.
// Bằng nhau tuyệt đối, hoặc một số là suffix của số kia (dung sai mã
// quốc gia: "+919876543210" khớp với "9876543210"). Suffix match chỉ
// áp dụng khi số ngắn hơn có ít nhất minPhoneMatchDigits chữ số.
func PhonesMatch(a, b string) bool {
	na := NormalizePhone(a)
	nb := NormalizePhone(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	shorter := na
	if len(nb) < len(na) {
		shorter = nb
	}
	if len(shorter) < minPhoneMatchDigits {
		return false
	}
	return strings.HasSuffix(na, nb) || strings.HasSuffix(nb, na)
}
