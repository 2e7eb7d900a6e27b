package utils

import (
	"time"
)

// DefaultExpiryThresholdDays is the warning window for expiring licenses
const DefaultExpiryThresholdDays = 30

// IsLicenseExpired reports whether a license expiry lies strictly before now
func IsLicenseExpired(expiry, now time.Time) bool {
	return expiry.Before(now)
}

// IsLicenseExpiringSoon reports whether a license expires within
// thresholdDays of now but has not expired yet
func IsLicenseExpiringSoon(expiry, now time.Time, thresholdDays int) bool {
	diff := expiry.Sub(now)
	return diff > 0 && diff < time.Duration(thresholdDays)*24*time.Hour
}
