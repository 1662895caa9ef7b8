package driver

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidLat(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLng(lng float64) bool {
	return lng >= -180 && lng <= 180
}
