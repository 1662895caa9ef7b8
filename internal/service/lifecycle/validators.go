package lifecycle

import "strings"

func isValidOrderCode(orderCode string) bool {
	return strings.TrimSpace(orderCode) != ""
}

// Телефон клиента это ровно 10 ASCII-цифр, без кода страны и разделителей.
func isValidPhone(phone string) bool {
	return isDigits(phone, 10)
}

func isValidPincode(pincode string) bool {
	return isDigits(pincode, 6)
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
