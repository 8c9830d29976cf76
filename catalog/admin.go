package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"post-catering/common/constant"
	"post-catering/model"
	"post-catering/outbound/sqlgen"
)

// Admin applies operator edits to the non-formal item catalog: it upserts
// items, links active ones into a matching option group and togo section,
// and refreshes the payload snapshot afterwards.
type Admin struct {
	Querier *sqlgen.Queries
	Store   *PayloadStore

	itemColumns bool
}

func NewAdmin(querier *sqlgen.Queries, store *PayloadStore, itemColumns bool) *Admin {
	return &Admin{Querier: querier, Store: store, itemColumns: itemColumns}
}

// AdminUpsertResult is the response body of a successful item upsert.
type AdminUpsertResult struct {
	Ok           bool            `json:"ok"`
	Items        []model.ItemRef `json:"items"`
	UpdatedCount int             `json:"updated_count"`
}

// UpsertNonFormalItems accepts a single item object, a bare list, or a
// wrapper object with an "items" list. Validation problems come back in the
// second return value and map to a 400.
func (a *Admin) UpsertNonFormalItems(ctx context.Context, payload any) (*AdminUpsertResult, []string, error) {
	rawItems, ok := adminRawItems(payload)
	if !ok {
		return nil, []string{"items is required and must contain at least one item payload."}, nil
	}

	items := make([]*seedItemRecord, 0, len(rawItems))
	var validationErrors []string
	for index, raw := range rawItems {
		item, problem := normalizeAdminItem(raw, index)
		if problem != "" {
			validationErrors = append(validationErrors, problem)
			continue
		}
		items = append(items, item)
	}
	if len(validationErrors) > 0 {
		return nil, validationErrors, nil
	}

	results := make([]model.ItemRef, 0, len(items))
	for _, item := range items {
		itemRef, err := a.upsertItem(ctx, item)
		var conflict *GroupConflictError
		if errors.As(err, &conflict) {
			return nil, []string{conflict.Error()}, nil
		}
		if err != nil {
			return nil, nil, err
		}
		if itemRef != nil {
			results = append(results, *itemRef)
		}
	}

	if _, err := a.Store.Refresh(ctx); err != nil {
		slog.WarnContext(ctx, "failed to refresh catalog payload after item upsert", constant.LogFieldErr, err)
	}

	return &AdminUpsertResult{Ok: true, Items: results, UpdatedCount: len(results)}, nil, nil
}

func adminRawItems(payload any) ([]any, bool) {
	switch v := payload.(type) {
	case map[string]any:
		if raw, ok := v["items"]; ok {
			items, isList := raw.([]any)
			return items, isList && len(items) > 0
		}
		return []any{v}, true
	case []any:
		return v, len(v) > 0
	default:
		return nil, false
	}
}

func normalizeAdminItem(raw any, index int) (*seedItemRecord, string) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Sprintf("items[%d] must be an object.", index)
	}

	name := strings.TrimSpace(firstString(entry, "name", "item_name", "itemName"))
	if name == "" {
		return nil, fmt.Sprintf("items[%d].name is required.", index)
	}

	trayPrices, _ := anyOf(entry, "tray_prices", "trayPrices").(map[string]any)
	var trayHalf, trayFull *string
	if value, ok := trayPrices["half"]; ok {
		trayHalf = trayPriceFromAny(value)
	} else if value, ok := trayPrices["half_tray"]; ok {
		trayHalf = trayPriceFromAny(value)
	} else {
		trayHalf = trayPriceFromAny(entry["tray_price_half"])
	}
	if value, ok := trayPrices["full"]; ok {
		trayFull = trayPriceFromAny(value)
	} else if value, ok := trayPrices["full_tray"]; ok {
		trayFull = trayPriceFromAny(value)
	} else {
		trayFull = trayPriceFromAny(entry["tray_price_full"])
	}

	active, ok := entry["is_active"]
	if !ok {
		active = entry["active"]
	}

	return &seedItemRecord{
		itemName:     name,
		itemKey:      Slug(name),
		itemType:     NormalizeClassification(firstString(entry, "item_type", "itemType", "type"), itemFallbackType),
		itemCategory: NormalizeClassification(firstString(entry, "item_category", "itemCategory", "category"), itemFallbackCategory),
		isActive:     coerceActiveFlag(active, true),
		trayHalf:     trayHalf,
		trayFull:     trayFull,
	}, ""
}

func (a *Admin) upsertItem(ctx context.Context, item *seedItemRecord) (*model.ItemRef, error) {
	var itemID int64
	var err error
	if a.itemColumns {
		itemID, err = a.Querier.UpsertMenuItem(ctx, sqlgen.UpsertMenuItemParams{
			ItemKey:       item.itemKey,
			ItemName:      item.itemName,
			ItemType:      item.itemType,
			ItemCategory:  item.itemCategory,
			TrayPriceHalf: item.trayHalf,
			TrayPriceFull: item.trayFull,
			IsActive:      item.isActive == 1,
		})
	} else {
		itemID, err = a.Querier.UpsertMenuItemLegacy(ctx, item.itemKey, item.itemName, item.isActive == 1)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		itemID, err = a.Querier.GetMenuItemIDByName(ctx, item.itemName)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("upsert menu item %q: %w", item.itemName, err)
	}

	if item.isActive == 1 {
		if err := a.ensureOptionGroupLink(ctx, itemID, item); err != nil {
			return nil, err
		}
		if err := a.ensureTogoRowLink(ctx, itemID, item); err != nil {
			return nil, err
		}
	}

	var row sqlgen.MenuItemDetailRow
	if a.itemColumns {
		row, err = a.Querier.GetMenuItemByID(ctx, itemID)
	} else {
		row, err = a.Querier.GetMenuItemByIDLegacy(ctx, itemID)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load menu item %d: %w", itemID, err)
	}

	itemRef := buildItemRef(row.ItemID, row.ItemName, row.ItemType, row.ItemCategory, &row.ItemActive, row.TrayPriceHalf, row.TrayPriceFull, nil, nil)
	return &itemRef, nil
}

// GroupConflictError reports an item placement that would pair two mutually
// exclusive group categories, e.g. 'sides' and 'salads'.
type GroupConflictError struct {
	ItemName      string
	Category      string
	ConflictsWith string
}

func (e *GroupConflictError) Error() string {
	return fmt.Sprintf("Item %q cannot join the %q group: it conflicts with the item's existing %q group.",
		e.ItemName, e.Category, e.ConflictsWith)
}

// checkGroupConflict rejects a group placement when the conflict lookup table
// pairs the target category with a category the item is already linked into.
func (a *Admin) checkGroupConflict(ctx context.Context, itemID int64, itemName, targetCategory string) error {
	target := NormalizeClassification(targetCategory, "")
	if target == "" {
		return nil
	}

	conflicts, err := a.Querier.ListGroupConflicts(ctx)
	if err != nil {
		return fmt.Errorf("list group conflicts: %w", err)
	}
	if len(conflicts) == 0 {
		return nil
	}
	disallowed := make(map[string]struct{})
	for _, pair := range conflicts {
		left, right := NormalizeClassification(pair.CategoryA, ""), NormalizeClassification(pair.CategoryB, "")
		if left == target && right != "" {
			disallowed[right] = struct{}{}
		}
		if right == target && left != "" {
			disallowed[left] = struct{}{}
		}
	}
	if len(disallowed) == 0 {
		return nil
	}

	existing, err := a.Querier.ItemGroupCategories(ctx, itemID)
	if err != nil {
		return fmt.Errorf("list item group categories: %w", err)
	}
	for _, category := range existing {
		normalized := NormalizeClassification(category, "")
		if _, ok := disallowed[normalized]; ok {
			return &GroupConflictError{ItemName: itemName, Category: target, ConflictsWith: normalized}
		}
	}
	return nil
}

// matchScore rates how well a group or section label matches an item type:
// 100 for an exact normalized match, 50 for a substring either way.
func matchScore(candidate, target string) int {
	normalizedCandidate := NormalizeClassification(candidate, "")
	normalizedTarget := NormalizeClassification(target, "")
	if normalizedCandidate == "" || normalizedTarget == "" {
		return 0
	}
	if normalizedCandidate == normalizedTarget {
		return 100
	}
	if strings.Contains(normalizedCandidate, normalizedTarget) || strings.Contains(normalizedTarget, normalizedCandidate) {
		return 50
	}
	return 0
}

// ensureOptionGroupLink links the item into the best matching active option
// group, keeping an existing display slot or appending at the end.
func (a *Admin) ensureOptionGroupLink(ctx context.Context, itemID int64, item *seedItemRecord) error {
	groups, err := a.Querier.ListActiveOptionGroups(ctx)
	if err != nil {
		return fmt.Errorf("list option groups: %w", err)
	}
	if len(groups) == 0 {
		return nil
	}

	if candidates := CategoryCandidates(item.itemCategory); len(candidates) > 0 {
		filtered := groups[:0]
		for _, group := range groups {
			if _, ok := candidates[NormalizeClassification(derefString(group.Category), "")]; ok {
				filtered = append(filtered, group)
			}
		}
		groups = filtered
	}
	if len(groups) == 0 {
		return nil
	}

	score := func(group sqlgen.ActiveOptionGroupRow) int {
		return max(
			matchScore(group.OptionKey, item.itemType),
			matchScore(group.OptionID, item.itemType),
			matchScore(group.Title, item.itemType),
		)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		si, sj := score(groups[i]), score(groups[j])
		if si != sj {
			return si > sj
		}
		if groups[i].DisplayOrder != groups[j].DisplayOrder {
			return groups[i].DisplayOrder < groups[j].DisplayOrder
		}
		return groups[i].ID < groups[j].ID
	})
	selected := groups[0]

	displayOrder, found, err := a.Querier.OptionGroupItemOrder(ctx, selected.ID, itemID)
	if err != nil {
		return fmt.Errorf("find option group link: %w", err)
	}
	if !found {
		if err := a.checkGroupConflict(ctx, itemID, item.itemName, derefString(selected.Category)); err != nil {
			return err
		}
		maxOrder, err := a.Querier.MaxOptionGroupItemOrder(ctx, selected.ID)
		if err != nil {
			return fmt.Errorf("find max option group order: %w", err)
		}
		displayOrder = maxOrder + 1
	}

	if err := a.Querier.UpsertOptionGroupItem(ctx, selected.ID, itemID, displayOrder); err != nil {
		return fmt.Errorf("link option group item: %w", err)
	}
	return nil
}

// ensureTogoRowLink links the item into the best matching togo section row,
// carrying the item's tray prices as the row values.
func (a *Admin) ensureTogoRowLink(ctx context.Context, itemID int64, item *seedItemRecord) error {
	sections, err := a.Querier.ListTogoSections(ctx)
	if err != nil {
		return fmt.Errorf("list togo sections: %w", err)
	}
	if len(sections) == 0 {
		return nil
	}

	if candidates := CategoryCandidates(item.itemCategory); len(candidates) > 0 {
		filtered := sections[:0]
		for _, section := range sections {
			if _, ok := candidates[NormalizeClassification(derefString(section.Category), "")]; ok {
				filtered = append(filtered, section)
			}
		}
		sections = filtered
	}
	if len(sections) == 0 {
		return nil
	}

	score := func(section sqlgen.TogoSectionRow) int {
		return max(
			matchScore(section.SectionKey, item.itemType),
			matchScore(section.Title, item.itemType),
		)
	}
	sort.SliceStable(sections, func(i, j int) bool {
		si, sj := score(sections[i]), score(sections[j])
		if si != sj {
			return si > sj
		}
		if sections[i].DisplayOrder != sections[j].DisplayOrder {
			return sections[i].DisplayOrder < sections[j].DisplayOrder
		}
		return sections[i].ID < sections[j].ID
	})
	selected := sections[0]

	displayOrder, found, err := a.Querier.SectionRowOrder(ctx, selected.ID, itemID)
	if err != nil {
		return fmt.Errorf("find togo row link: %w", err)
	}
	if !found {
		maxOrder, err := a.Querier.MaxSectionRowOrder(ctx, selected.ID)
		if err != nil {
			return fmt.Errorf("find max togo row order: %w", err)
		}
		displayOrder = maxOrder + 1
	}

	err = a.Querier.UpsertSectionRow(ctx, sqlgen.UpsertSectionRowParams{
		SectionID:    selected.ID,
		ItemID:       itemID,
		Value1:       item.trayHalf,
		Value2:       item.trayFull,
		DisplayOrder: displayOrder,
	})
	if err != nil {
		return fmt.Errorf("link togo row: %w", err)
	}
	return nil
}
