// Package checkoutsvc - Test chuẩn hóa và so khớp số điện thoại.
package checkoutsvc

import (
	"testing"
)

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{
		"+91 98765-43210",
		"9198765 43210",
		"  +84-90-123-4567 ",
		"",
		"+++123",
	}
	for _, p := range inputs {
		once := NormalizePhone(p)
		twice := NormalizePhone(once)
		if once != twice {
			t.Errorf("NormalizePhone không idempotent với %q: lần 1 %q, lần 2 %q", p, once, twice)
		}
	}
}

func TestNormalizePhone_StripsFormatting(t *testing.T) {
	a := NormalizePhone("+91 98765-43210")
	b := NormalizePhone("9198765 43210")
	if a != b {
		t.Errorf("Hai cách viết cùng một số phải chuẩn hóa giống nhau: %q != %q", a, b)
	}
	if a != "919876543210" {
		t.Errorf("Kết quả chuẩn hóa sai: %q", a)
	}
}

func TestPhonesMatch_CountryCodeTolerant(t *testing.T) {
	// Số có mã quốc gia phải khớp với số không có mã
	if !PhonesMatch("+919876543210", "9876543210") {
		t.Error("Số có mã quốc gia phải khớp với số nội địa tương ứng")
	}
	if !PhonesMatch("9876543210", "+919876543210") {
		t.Error("PhonesMatch phải đối xứng")
	}
}

func TestPhonesMatch_ExactAfterNormalize(t *testing.T) {
	if !PhonesMatch("+84 901 234 567", "84901234567") {
		t.Error("Hai cách viết cùng một số phải khớp")
	}
}

func TestPhonesMatch_RejectsShortSuffix(t *testing.T) {
	// Suffix quá ngắn không đủ để coi là cùng thuê bao
	if PhonesMatch("9876543210", "3210") {
		t.Error("Suffix 4 chữ số không được coi là khớp")
	}
	if PhonesMatch("", "9876543210") {
		t.Error("Số rỗng không được khớp với bất kỳ số nào")
	}
	if PhonesMatch("1234567890", "0987654321") {
		t.Error("Hai số khác nhau không được khớp")
	}
}
