package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	letterRegex = regexp.MustCompile(`[A-Za-z]`)
	budgetToken = regexp.MustCompile(`^\$?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)\s*([kK])?$`)

	usdPrinter = message.NewPrinter(language.AmericanEnglish)
)

func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizePhone canonicalizes a US phone number to "(XXX) XXX-XXXX".
// Accepts 10 digits, or 11 with a leading country code 1. Returns ok=false
// when the input has letters, the wrong digit count, or an area code /
// exchange that cannot start a US number.
func NormalizePhone(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || letterRegex.MatchString(trimmed) {
		return "", false
	}

	var digits []byte
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits = append(digits, byte(r))
		}
	}

	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return "", false
	}
	if digits[0] < '2' || digits[3] < '2' {
		return "", false
	}

	return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10]), true
}

// NormalizeBudget parses "<amount>[k] [-|to] <amount>[k]" (amounts optionally
// $-prefixed and comma-grouped) into "$X" or "$X-$Y" with the smaller amount
// first and thousands separators applied.
func NormalizeBudget(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}

	parts := splitBudgetRange(trimmed)
	if len(parts) == 0 || len(parts) > 2 {
		return "", false
	}

	amounts := make([]float64, 0, 2)
	for _, part := range parts {
		amount, ok := parseBudgetAmount(part)
		if !ok {
			return "", false
		}
		amounts = append(amounts, amount)
	}

	if len(amounts) == 1 {
		return formatBudgetAmount(amounts[0]), true
	}

	low, high := amounts[0], amounts[1]
	if high < low {
		low, high = high, low
	}
	return formatBudgetAmount(low) + "-" + formatBudgetAmount(high), true
}

func splitBudgetRange(value string) []string {
	lowered := strings.ToLower(value)
	var parts []string
	switch {
	case strings.Contains(lowered, " to "):
		idx := strings.Index(lowered, " to ")
		parts = []string{value[:idx], value[idx+4:]}
	case strings.Contains(value, "-"):
		parts = strings.SplitN(value, "-", 2)
	default:
		parts = []string{value}
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseBudgetAmount(token string) (float64, bool) {
	match := budgetToken.FindStringSubmatch(token)
	if match == nil {
		return 0, false
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if match[2] != "" {
		amount *= 1000
	}
	return amount, true
}

func formatBudgetAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return usdPrinter.Sprintf("$%d", int64(amount))
	}
	return usdPrinter.Sprintf("$%.2f", amount)
}

func validateRequiredString(value, fieldName string) string {
	if strings.TrimSpace(value) == "" {
		return fieldName + " is required."
	}
	return ""
}

func validateEmailFormat(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "email is required."
	}

	at := strings.Count(trimmed, "@")
	if at != 1 || strings.HasPrefix(trimmed, "@") || strings.HasSuffix(trimmed, "@") {
		return "email is invalid."
	}

	domain := trimmed[strings.Index(trimmed, "@")+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "email is invalid."
	}
	return ""
}

func validatePhone(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if letterRegex.MatchString(trimmed) {
		return "phone must not contain letters."
	}
	if _, ok := NormalizePhone(trimmed); !ok {
		return "phone must be a valid US phone number."
	}
	return ""
}

func validateBudget(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if _, ok := NormalizeBudget(trimmed); !ok {
		return "budget must be a valid amount or range (e.g. $2,500 or $2,500-$5,000)."
	}
	return ""
}

func (inq *Inquiry) validateGuestCount() string {
	if inq.GuestCountInvalid {
		return "guest_count must be a number."
	}
	if inq.GuestCountSet && inq.GuestCount < 0 {
		return "guest_count must be a non-negative number."
	}
	return ""
}

// Validate accumulates every field error so the caller can fix all of them
// in one pass. Category-count constraints are validated separately because
// they need the live catalog.
func (inq *Inquiry) Validate() []string {
	var errors []string

	appendError := func(msg string) {
		if msg != "" {
			errors = append(errors, msg)
		}
	}

	appendError(validateRequiredString(inq.FullName, "full_name"))
	appendError(validateEmailFormat(inq.Email))
	appendError(validatePhone(inq.Phone))
	appendError(validateRequiredString(inq.Message, "message"))
	appendError(inq.validateGuestCount())
	appendError(validateBudget(inq.Budget))
	appendError(validateRequiredString(inq.ServiceInterest, "service_interest"))
	if len(inq.DesiredMenuItems) == 0 {
		appendError("desired_menu_items is required.")
	}

	return errors
}
