package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"post-catering/model"
	"post-catering/outbound/sqlgen"
)

// TierConstraintRow is the neutral input shape for tier constraint
// normalization. LegacyValue carries the single-column value used before the
// min/max rollout.
type TierConstraintRow struct {
	Key         string
	MinSelect   *int32
	MaxSelect   *int32
	LegacyValue *int32
}

func intOrZero(value *int32) int {
	if value == nil {
		return 0
	}
	return int(*value)
}

// NormalizeTierConstraints folds tier constraint rows into {min, max} pairs.
// Two legacy shapes are still honored: "<key>_min"/"<key>_max" suffix rows,
// and rows where only constraint_value is populated (it fills whichever
// bound is missing or zero).
func NormalizeTierConstraints(rows []TierConstraintRow) map[string]model.MinMax {
	constraints := map[string]model.MinMax{}
	for _, row := range rows {
		key := strings.TrimSpace(row.Key)
		if key == "" {
			continue
		}

		minSelect := row.MinSelect
		maxSelect := row.MaxSelect
		legacy := row.LegacyValue

		if strings.HasSuffix(key, "_min") && legacy != nil {
			base := strings.TrimSuffix(key, "_min")
			entry := constraints[base]
			entry.Min = int(*legacy)
			constraints[base] = entry
			continue
		}
		if strings.HasSuffix(key, "_max") && legacy != nil {
			base := strings.TrimSuffix(key, "_max")
			entry := constraints[base]
			entry.Max = int(*legacy)
			constraints[base] = entry
			continue
		}

		if legacy != nil {
			if minSelect == nil || (*minSelect == 0 && (maxSelect == nil || *maxSelect == 0)) {
				minSelect = legacy
			}
			if maxSelect == nil || (*maxSelect == 0 && (minSelect == nil || *minSelect == *legacy)) {
				maxSelect = legacy
			}
		}

		constraints[key] = model.MinMax{
			Min: intOrZero(minSelect),
			Max: intOrZero(maxSelect),
		}
	}
	return constraints
}

func normalizeMinMaxConstraints(rows []sqlgen.ConstraintKV) map[string]model.MinMax {
	constraints := map[string]model.MinMax{}
	for _, row := range rows {
		if row.ConstraintKey == "" {
			continue
		}
		constraints[row.ConstraintKey] = model.MinMax{
			Min: intOrZero(row.MinSelect),
			Max: intOrZero(row.MaxSelect),
		}
	}
	return constraints
}

func applySidesSaladsAlias(constraints map[string]model.MinMax) map[string]model.MinMax {
	combined, hasCombined := constraints["sides_salads"]
	_, hasSides := constraints["sides"]
	_, hasSalads := constraints["salads"]
	if hasCombined && !hasSides && !hasSalads {
		delete(constraints, "sides_salads")
		constraints["sides"] = combined
	}
	return constraints
}

// NormalizePayloadConstraints normalizes the legacy payload-embedded
// constraint map a client may still send on its service selection. Bare
// integers mean an exact count.
func NormalizePayloadConstraints(raw map[string]any) map[string]model.MinMax {
	normalized := map[string]model.MinMax{}
	for key, value := range raw {
		switch v := value.(type) {
		case int:
			normalized[key] = model.MinMax{Min: v, Max: v}
		case float64:
			if v == float64(int(v)) {
				normalized[key] = model.MinMax{Min: int(v), Max: int(v)}
			}
		case map[string]any:
			minValue, minOK := intFromAny(v["min"])
			maxValue, maxOK := intFromAny(v["max"])
			if minOK || maxOK {
				normalized[key] = model.MinMax{Min: minValue, Max: maxValue}
			}
		}
	}
	return applySidesSaladsAlias(normalized)
}

func intFromAny(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// ConstraintResolver resolves the effective per-category selection bounds
// for a customer's service selection against the live catalog.
type ConstraintResolver struct {
	Querier *sqlgen.Queries

	// tierMinMax reports whether the tier constraint table carries min/max
	// columns; probed once at startup.
	tierMinMax bool
}

func NewConstraintResolver(querier *sqlgen.Queries, tierMinMax bool) *ConstraintResolver {
	return &ConstraintResolver{Querier: querier, tierMinMax: tierMinMax}
}

// Resolve picks the constraint source in fixed precedence: formal plan by
// plan key, then tier by section key + tier title, then the section's
// package constraints, then the payload-embedded fallback.
func (r *ConstraintResolver) Resolve(ctx context.Context, sel model.ServiceSelection) (map[string]model.MinMax, error) {
	planID := strings.TrimSpace(sel.ID)
	level := strings.ToLower(strings.TrimSpace(sel.Level))
	sectionKey := strings.TrimSpace(sel.SectionID)
	title := strings.TrimSpace(sel.Title)

	if planID != "" {
		rows, err := r.Querier.FormalPlanConstraintsByPlanKey(ctx, planID)
		if err != nil {
			return nil, err
		}
		if constraints := normalizeMinMaxConstraints(rows); len(constraints) > 0 {
			return constraints, nil
		}
	}

	if sectionKey != "" && level == "tier" && title != "" {
		tierRows, err := r.tierConstraintRows(ctx, sectionKey, title)
		if err != nil {
			return nil, err
		}
		if constraints := NormalizeTierConstraints(tierRows); len(constraints) > 0 {
			return applySidesSaladsAlias(constraints), nil
		}
	}

	if sectionKey != "" && level == "package" {
		rows, err := r.Querier.SectionConstraintsByKey(ctx, sectionKey)
		if err != nil {
			return nil, err
		}
		if constraints := normalizeMinMaxConstraints(rows); len(constraints) > 0 {
			return constraints, nil
		}
	}

	// Fallback for clients that still embed constraints in the selection.
	return NormalizePayloadConstraints(sel.Constraints), nil
}

func (r *ConstraintResolver) tierConstraintRows(ctx context.Context, sectionKey, tierTitle string) ([]TierConstraintRow, error) {
	if r.tierMinMax {
		rows, err := r.Querier.TierConstraintsBySectionAndTitle(ctx, sectionKey, tierTitle)
		if err != nil {
			return nil, err
		}
		converted := make([]TierConstraintRow, 0, len(rows))
		for _, row := range rows {
			converted = append(converted, TierConstraintRow{
				Key:         row.ConstraintKey,
				MinSelect:   row.MinSelect,
				MaxSelect:   row.MaxSelect,
				LegacyValue: row.ConstraintValue,
			})
		}
		return converted, nil
	}

	rows, err := r.Querier.TierConstraintsBySectionAndTitleLegacy(ctx, sectionKey, tierTitle)
	if err != nil {
		return nil, err
	}
	converted := make([]TierConstraintRow, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, TierConstraintRow{
			Key:         row.ConstraintKey,
			LegacyValue: row.ConstraintValue,
		})
	}
	return converted, nil
}

// CategoryCandidates expands a category into the set of keys it may be
// counted under; sides and salads share the combined sides_salads bucket.
func CategoryCandidates(category string) map[string]struct{} {
	normalized := strings.ToLower(strings.TrimSpace(category))
	candidates := map[string]struct{}{}
	if normalized != "" {
		candidates[normalized] = struct{}{}
	}
	switch normalized {
	case "sides", "salads":
		candidates["sides_salads"] = struct{}{}
	case "sides_salads":
		candidates["sides"] = struct{}{}
		candidates["salads"] = struct{}{}
	}
	return candidates
}

// ValidateSelectionCounts checks the desired items against the resolved
// per-category bounds. A zero min means no minimum; a zero max means
// unbounded. Violations name the category and the bound.
func ValidateSelectionCounts(items []model.DesiredMenuItem, constraints map[string]model.MinMax) []string {
	if len(constraints) == 0 {
		return nil
	}

	counts := map[string]int{}
	for _, item := range items {
		category := NormalizeClassification(item.Category, itemFallbackCategory)
		for candidate := range CategoryCandidates(category) {
			counts[candidate]++
		}
	}

	keys := make([]string, 0, len(constraints))
	for key := range constraints {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errors []string
	for _, key := range keys {
		bounds := constraints[key]
		count := counts[key]
		if bounds.Min > 0 && count < bounds.Min {
			errors = append(errors, fmt.Sprintf("Please select at least %d %s item(s).", bounds.Min, key))
		}
		if bounds.Max > 0 && count > bounds.Max {
			errors = append(errors, fmt.Sprintf("Please select no more than %d %s item(s).", bounds.Max, key))
		}
	}
	return errors
}
