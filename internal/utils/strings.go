package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const reportIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NormalizeEmail lowercases and trims an email for use as an account key
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDriverID uppercases and trims a driver ID for use as an account key
func NormalizeDriverID(driverID string) string {
	return strings.ToUpper(strings.TrimSpace(driverID))
}

// NewReportID builds a report identifier derived from the creation time plus
// a random suffix, matching the report_<millis>_<suffix> format
func NewReportID(now time.Time) string {
	return fmt.Sprintf("report_%d_%s", now.UnixMilli(), randomSuffix(9))
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = reportIDAlphabet[rand.Intn(len(reportIDAlphabet))]
	}
	return string(b)
}
