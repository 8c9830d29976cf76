package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"post-catering/model"
)

var (
	priceTokenPattern = regexp.MustCompile(`\$?\s*([0-9][0-9,]*(?:\.\d{1,2})?)\s*([kK])?\+?`)

	pricePrinter = message.NewPrinter(language.English)
)

// PriceFields is the persisted form of a price: display string plus the
// parsed bounds and hints used for storefront filtering.
type PriceFields struct {
	Price     *string
	AmountMin *float64
	AmountMax *float64
	Currency  *string
	Unit      *string
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}

func coercePriceNumber(value any) *float64 {
	switch v := value.(type) {
	case nil, bool:
		return nil
	case float64:
		rounded := roundCents(v)
		return &rounded
	case int:
		rounded := float64(v)
		return &rounded
	case string:
		cleaned := strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(v), "$", ""), ",", "")
		if cleaned == "" {
			return nil
		}
		cleaned = strings.TrimSuffix(cleaned, "+")
		multiplier := 1.0
		if strings.HasSuffix(strings.ToLower(cleaned), "k") {
			cleaned = cleaned[:len(cleaned)-1]
			multiplier = 1000
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		rounded := roundCents(parsed * multiplier)
		return &rounded
	default:
		return nil
	}
}

func extractPriceAmounts(text string) []float64 {
	var values []float64
	for _, match := range priceTokenPattern.FindAllStringSubmatch(text, -1) {
		rawAmount := strings.ReplaceAll(match[1], ",", "")
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			continue
		}
		if strings.EqualFold(match[2], "k") {
			amount *= 1000
		}
		values = append(values, roundCents(amount))
	}
	return values
}

func inferPriceCurrency(text string) *string {
	if strings.Contains(text, "$") || strings.Contains(strings.ToLower(text), "usd") {
		usd := "USD"
		return &usd
	}
	return nil
}

func inferPriceUnit(text string) *string {
	lower := strings.ToLower(text)
	var unit string
	switch {
	case strings.Contains(lower, "per person") || strings.Contains(lower, "/person"):
		unit = "per_person"
	case strings.Contains(lower, "per tray") || strings.Contains(lower, "/tray"):
		unit = "per_tray"
	case strings.Contains(lower, "per hour") || strings.Contains(lower, "/hour"):
		unit = "per_hour"
	case strings.Contains(lower, "flat rate") || strings.Contains(lower, "flat fee"):
		unit = "flat"
	default:
		return nil
	}
	return &unit
}

func formatPriceAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return pricePrinter.Sprintf("$%d", int64(amount))
	}
	formatted := pricePrinter.Sprintf("$%.2f", amount)
	formatted = strings.TrimRight(formatted, "0")
	return strings.TrimRight(formatted, ".")
}

func metaLookup(meta map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := meta[key]; ok {
			return value, true
		}
	}
	return nil, false
}

// NormalizePriceFields canonicalizes a price value and optional explicit
// meta into the display string plus parsed bounds. Amounts missing from the
// meta are recovered from the display text, a lone bound is mirrored, and
// inverted bounds are swapped.
func NormalizePriceFields(priceValue any, priceMeta map[string]any) PriceFields {
	var displayPrice *string
	switch v := priceValue.(type) {
	case nil, bool:
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			displayPrice = &trimmed
		}
	case float64:
		formatted := formatPriceAmount(roundCents(v))
		displayPrice = &formatted
	case int:
		formatted := formatPriceAmount(float64(v))
		displayPrice = &formatted
	}

	var amountMin, amountMax *float64
	if raw, ok := metaLookup(priceMeta, "amountMin", "amount_min", "min", "price_min"); ok {
		amountMin = coercePriceNumber(raw)
	}
	if raw, ok := metaLookup(priceMeta, "amountMax", "amount_max", "max", "price_max"); ok {
		amountMax = coercePriceNumber(raw)
	}

	var currency *string
	if raw, _ := metaLookup(priceMeta, "currency", "priceCurrency", "price_currency"); raw != nil {
		if s, ok := raw.(string); ok {
			if trimmed := strings.ToUpper(strings.TrimSpace(s)); trimmed != "" {
				currency = &trimmed
			}
		}
	}
	var unit *string
	if raw, _ := metaLookup(priceMeta, "unit", "priceUnit", "price_unit"); raw != nil {
		if s, ok := raw.(string); ok {
			if trimmed := strings.ToLower(strings.TrimSpace(s)); trimmed != "" {
				normalized := strings.ReplaceAll(strings.ReplaceAll(trimmed, "-", "_"), " ", "_")
				unit = &normalized
			}
		}
	}

	if parsed := extractPriceAmounts(derefString(displayPrice)); len(parsed) > 0 {
		parsedMin, parsedMax := parsed[0], parsed[0]
		for _, amount := range parsed[1:] {
			parsedMin = math.Min(parsedMin, amount)
			parsedMax = math.Max(parsedMax, amount)
		}
		if amountMin == nil {
			amountMin = &parsedMin
		}
		if amountMax == nil {
			amountMax = &parsedMax
		}
	}

	if amountMin != nil && amountMax == nil {
		amountMax = amountMin
	}
	if amountMax != nil && amountMin == nil {
		amountMin = amountMax
	}
	if amountMin != nil && amountMax != nil && *amountMax < *amountMin {
		amountMin, amountMax = amountMax, amountMin
	}

	if currency == nil {
		currency = inferPriceCurrency(derefString(displayPrice))
	}
	if currency == nil && (amountMin != nil || amountMax != nil) {
		usd := "USD"
		currency = &usd
	}
	if unit == nil {
		unit = inferPriceUnit(derefString(displayPrice))
	}

	return PriceFields{
		Price:     displayPrice,
		AmountMin: amountMin,
		AmountMax: amountMax,
		Currency:  currency,
		Unit:      unit,
	}
}

// pricePayload derives the display price and the optional priceMeta block
// attached to plans, sections, and tiers in the assembled payload.
func pricePayload(price *string) (string, *model.PriceMeta) {
	fields := NormalizePriceFields(derefString(price), nil)

	display := derefString(fields.Price)
	if fields.AmountMin == nil && fields.AmountMax == nil && fields.Currency == nil && fields.Unit == nil {
		return display, nil
	}
	return display, &model.PriceMeta{
		AmountMin: fields.AmountMin,
		AmountMax: fields.AmountMax,
		Currency:  fields.Currency,
		Unit:      fields.Unit,
	}
}
