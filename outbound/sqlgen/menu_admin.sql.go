package sqlgen

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const upsertMenuItemLegacy = `
INSERT INTO menu_items (item_key, item_name, is_active)
VALUES ($1, $2, $3)
ON CONFLICT (item_name) DO UPDATE SET
  item_key = EXCLUDED.item_key,
  is_active = EXCLUDED.is_active,
  updated_at = CURRENT_TIMESTAMP
RETURNING id
`

// UpsertMenuItemLegacy writes an item without classification or tray price
// columns, for databases created before the catalog schema expansion.
func (q *Queries) UpsertMenuItemLegacy(ctx context.Context, itemKey, itemName string, isActive bool) (int64, error) {
	row := q.db.QueryRow(ctx, upsertMenuItemLegacy, itemKey, itemName, isActive)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getMenuItemIDByName = `
SELECT id FROM menu_items WHERE item_name = $1 LIMIT 1
`

func (q *Queries) GetMenuItemIDByName(ctx context.Context, itemName string) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, getMenuItemIDByName, itemName).Scan(&id)
	return id, err
}

type MenuItemDetailRow struct {
	ItemID        int64
	ItemName      string
	ItemType      *string
	ItemCategory  *string
	TrayPriceHalf *string
	TrayPriceFull *string
	ItemActive    bool
}

const getMenuItemByID = `
SELECT
  id AS item_id,
  item_name,
  item_type,
  item_category,
  tray_price_half,
  tray_price_full,
  is_active AS item_active
FROM menu_items
WHERE id = $1
LIMIT 1
`

func (q *Queries) GetMenuItemByID(ctx context.Context, id int64) (MenuItemDetailRow, error) {
	var r MenuItemDetailRow
	err := q.db.QueryRow(ctx, getMenuItemByID, id).Scan(
		&r.ItemID,
		&r.ItemName,
		&r.ItemType,
		&r.ItemCategory,
		&r.TrayPriceHalf,
		&r.TrayPriceFull,
		&r.ItemActive,
	)
	return r, err
}

const getMenuItemByIDLegacy = `
SELECT
  id AS item_id,
  item_name,
  is_active AS item_active
FROM menu_items
WHERE id = $1
LIMIT 1
`

func (q *Queries) GetMenuItemByIDLegacy(ctx context.Context, id int64) (MenuItemDetailRow, error) {
	var r MenuItemDetailRow
	err := q.db.QueryRow(ctx, getMenuItemByIDLegacy, id).Scan(&r.ItemID, &r.ItemName, &r.ItemActive)
	return r, err
}

type ActiveOptionGroupRow struct {
	ID           int64
	OptionKey    string
	OptionID     string
	Category     *string
	Title        string
	DisplayOrder int32
}

const listActiveOptionGroups = `
SELECT id, option_key, option_id, category, title, display_order
FROM menu_option_groups
WHERE is_active = TRUE
ORDER BY display_order ASC, id ASC
`

func (q *Queries) ListActiveOptionGroups(ctx context.Context) ([]ActiveOptionGroupRow, error) {
	rows, err := q.db.Query(ctx, listActiveOptionGroups)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ActiveOptionGroupRow
	for rows.Next() {
		var r ActiveOptionGroupRow
		if err := rows.Scan(&r.ID, &r.OptionKey, &r.OptionID, &r.Category, &r.Title, &r.DisplayOrder); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const optionGroupItemOrder = `
SELECT display_order
FROM menu_option_group_items
WHERE group_id = $1
  AND item_id = $2
LIMIT 1
`

// OptionGroupItemOrder returns the display order of an existing group link,
// with found=false when the item is not linked yet.
func (q *Queries) OptionGroupItemOrder(ctx context.Context, groupID, itemID int64) (int32, bool, error) {
	var order int32
	err := q.db.QueryRow(ctx, optionGroupItemOrder, groupID, itemID).Scan(&order)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return order, true, nil
}

const maxOptionGroupItemOrder = `
SELECT COALESCE(MAX(display_order), 0) AS max_order
FROM menu_option_group_items
WHERE group_id = $1
`

func (q *Queries) MaxOptionGroupItemOrder(ctx context.Context, groupID int64) (int32, error) {
	var order int32
	err := q.db.QueryRow(ctx, maxOptionGroupItemOrder, groupID).Scan(&order)
	return order, err
}

type TogoSectionRow struct {
	ID           int64
	SectionKey   string
	Category     *string
	Title        string
	DisplayOrder int32
}

const listTogoSections = `
SELECT s.id, s.section_key, s.category, s.title, s.display_order
FROM menu_sections s
JOIN menu_catalogs c
  ON c.id = s.catalog_id AND c.is_active = TRUE
WHERE s.is_active = TRUE
  AND c.catalog_key = 'togo'
ORDER BY s.display_order ASC, s.id ASC
`

func (q *Queries) ListTogoSections(ctx context.Context) ([]TogoSectionRow, error) {
	rows, err := q.db.Query(ctx, listTogoSections)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TogoSectionRow
	for rows.Next() {
		var r TogoSectionRow
		if err := rows.Scan(&r.ID, &r.SectionKey, &r.Category, &r.Title, &r.DisplayOrder); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type AdminMenuItemRow struct {
	ID            int64
	ItemKey       string
	ItemName      string
	ItemType      *string
	ItemCategory  *string
	TrayPriceHalf *string
	TrayPriceFull *string
	IsActive      bool
}

const listMenuItems = `
SELECT id, item_key, item_name, item_type, item_category, tray_price_half, tray_price_full, is_active
FROM menu_items
ORDER BY item_name ASC
LIMIT $1
`

func (q *Queries) ListMenuItems(ctx context.Context, limit int32) ([]AdminMenuItemRow, error) {
	rows, err := q.db.Query(ctx, listMenuItems, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AdminMenuItemRow
	for rows.Next() {
		var r AdminMenuItemRow
		err := rows.Scan(&r.ID, &r.ItemKey, &r.ItemName, &r.ItemType, &r.ItemCategory, &r.TrayPriceHalf, &r.TrayPriceFull, &r.IsActive)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listMenuItemsLegacy = `
SELECT id, item_key, item_name, is_active
FROM menu_items
ORDER BY item_name ASC
LIMIT $1
`

func (q *Queries) ListMenuItemsLegacy(ctx context.Context, limit int32) ([]AdminMenuItemRow, error) {
	rows, err := q.db.Query(ctx, listMenuItemsLegacy, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AdminMenuItemRow
	for rows.Next() {
		var r AdminMenuItemRow
		if err := rows.Scan(&r.ID, &r.ItemKey, &r.ItemName, &r.IsActive); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type GroupConflictRow struct {
	CategoryA string
	CategoryB string
}

const listGroupConflicts = `
SELECT category_a, category_b
FROM menu_group_conflicts
ORDER BY category_a ASC, category_b ASC
`

// ListGroupConflicts returns the category pairs that may not share an item,
// e.g. ('sides', 'salads').
func (q *Queries) ListGroupConflicts(ctx context.Context) ([]GroupConflictRow, error) {
	rows, err := q.db.Query(ctx, listGroupConflicts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GroupConflictRow
	for rows.Next() {
		var r GroupConflictRow
		if err := rows.Scan(&r.CategoryA, &r.CategoryB); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const itemGroupCategories = `
SELECT DISTINCT g.category
FROM menu_option_groups g
JOIN menu_option_group_items gi
  ON gi.group_id = g.id
WHERE gi.item_id = $1
  AND g.category IS NOT NULL
`

// ItemGroupCategories returns the categories of every option group the item
// is currently linked into.
func (q *Queries) ItemGroupCategories(ctx context.Context, itemID int64) ([]string, error) {
	rows, err := q.db.Query(ctx, itemGroupCategories, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

const sectionRowOrder = `
SELECT display_order
FROM menu_section_rows
WHERE section_id = $1
  AND item_id = $2
LIMIT 1
`

func (q *Queries) SectionRowOrder(ctx context.Context, sectionID, itemID int64) (int32, bool, error) {
	var order int32
	err := q.db.QueryRow(ctx, sectionRowOrder, sectionID, itemID).Scan(&order)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return order, true, nil
}

const maxSectionRowOrder = `
SELECT COALESCE(MAX(display_order), 0) AS max_order
FROM menu_section_rows
WHERE section_id = $1
`

func (q *Queries) MaxSectionRowOrder(ctx context.Context, sectionID int64) (int32, error) {
	var order int32
	err := q.db.QueryRow(ctx, maxSectionRowOrder, sectionID).Scan(&order)
	return order, err
}
