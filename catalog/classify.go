package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"post-catering/model"
)

const (
	itemFallbackType     = "general"
	itemFallbackCategory = "other"

	catalogKeyTogo      = "togo"
	catalogKeyCommunity = "community"
	catalogKeyFormal    = "formal"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases and collapses non-alphanumeric runs into underscores,
// capped at 120 characters to fit the key columns.
func Slug(value string) string {
	slug := strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(value), "_"), "_")
	if len(slug) > 120 {
		slug = slug[:120]
	}
	return slug
}

func snakeFromCamel(value string) string {
	var b strings.Builder
	for i, r := range value {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeClassification slugs an item type/category, splitting camelCase
// first so "passedAppetizers" and "passed_appetizers" land on the same key.
func NormalizeClassification(value, fallback string) string {
	if slug := Slug(snakeFromCamel(value)); slug != "" {
		return slug
	}
	return fallback
}

func normalizeTrayPrice(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trayPriceFromAny normalizes a seed-payload tray price, which may arrive as
// a string or a number. Booleans are treated as absent.
func trayPriceFromAny(value any) *string {
	switch v := value.(type) {
	case nil, bool:
		return nil
	case string:
		return normalizeTrayPrice(&v)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s
	default:
		return nil
	}
}

func coerceActiveFlag(value any, def bool) int {
	fallback := 0
	if def {
		fallback = 1
	}
	switch v := value.(type) {
	case nil:
		return fallback
	case bool:
		if v {
			return 1
		}
		return 0
	case float64:
		if int(v) != 0 {
			return 1
		}
		return 0
	case int:
		if v != 0 {
			return 1
		}
		return 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return 1
		case "0", "false", "no", "n", "off":
			return 0
		}
		return fallback
	default:
		return fallback
	}
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// buildItemRef assembles the storefront item reference shape. Explicit
// half/full overrides win over the item's stored tray prices, which matters
// for togo rows that carry per-row pricing.
func buildItemRef(itemID int64, itemName string, itemType, itemCategory *string, itemActive *bool, trayHalf, trayFull *string, overrideHalf, overrideFull *string) model.ItemRef {
	half := trayHalf
	if overrideHalf != nil {
		half = overrideHalf
	}
	full := trayFull
	if overrideFull != nil {
		full = overrideFull
	}

	active := true
	if itemActive != nil {
		active = *itemActive
	}
	isActive := 0
	if active {
		isActive = 1
	}

	return model.ItemRef{
		ItemID:       itemID,
		ItemName:     itemName,
		ItemType:     NormalizeClassification(derefString(itemType), itemFallbackType),
		ItemCategory: NormalizeClassification(derefString(itemCategory), itemFallbackCategory),
		IsActive:     isActive,
		TrayPrices: model.TrayPrices{
			Half: normalizeTrayPrice(half),
			Full: normalizeTrayPrice(full),
		},
	}
}
