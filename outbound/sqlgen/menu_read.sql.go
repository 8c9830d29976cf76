package sqlgen

import (
	"context"
)

// Row shapes are shared between the modern queries and their legacy
// counterparts; legacy environments predate the item classification and
// tray-price columns, so those fields come back nil there.

type MenuOptionRow struct {
	GroupID       int64
	OptionKey     string
	OptionID      *string
	Category      *string
	Title         *string
	ItemID        *int64
	ItemName      *string
	ItemType      *string
	ItemCategory  *string
	TrayPriceHalf *string
	TrayPriceFull *string
	ItemActive    *bool
}

const listMenuOptionRows = `
SELECT
  g.id AS group_id,
  g.option_key,
  g.option_id,
  g.category,
  g.title,
  i.id AS item_id,
  i.item_name,
  i.item_type,
  i.item_category,
  i.tray_price_half,
  i.tray_price_full,
  i.is_active AS item_active
FROM menu_option_groups g
LEFT JOIN menu_option_group_items gi
  ON gi.group_id = g.id AND gi.is_active
LEFT JOIN menu_items i
  ON i.id = gi.item_id AND i.is_active
WHERE g.is_active
ORDER BY g.display_order ASC, g.id ASC, gi.display_order ASC, gi.id ASC
`

func (q *Queries) ListMenuOptionRows(ctx context.Context) ([]MenuOptionRow, error) {
	rows, err := q.db.Query(ctx, listMenuOptionRows)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuOptionRow
	for rows.Next() {
		var r MenuOptionRow
		if err := rows.Scan(
			&r.GroupID,
			&r.OptionKey,
			&r.OptionID,
			&r.Category,
			&r.Title,
			&r.ItemID,
			&r.ItemName,
			&r.ItemType,
			&r.ItemCategory,
			&r.TrayPriceHalf,
			&r.TrayPriceFull,
			&r.ItemActive,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listMenuOptionRowsLegacy = `
SELECT
  g.id AS group_id,
  g.option_key,
  g.option_id,
  g.category,
  g.title,
  i.id AS item_id,
  i.item_name
FROM menu_option_groups g
LEFT JOIN menu_option_group_items gi
  ON gi.group_id = g.id AND gi.is_active
LEFT JOIN menu_items i
  ON i.id = gi.item_id AND i.is_active
WHERE g.is_active
ORDER BY g.display_order ASC, g.id ASC, gi.display_order ASC, gi.id ASC
`

func (q *Queries) ListMenuOptionRowsLegacy(ctx context.Context) ([]MenuOptionRow, error) {
	rows, err := q.db.Query(ctx, listMenuOptionRowsLegacy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuOptionRow
	for rows.Next() {
		var r MenuOptionRow
		if err := rows.Scan(
			&r.GroupID,
			&r.OptionKey,
			&r.OptionID,
			&r.Category,
			&r.Title,
			&r.ItemID,
			&r.ItemName,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type FormalPlanRow struct {
	ID          int64
	PlanKey     string
	OptionLevel string
	Title       string
	Price       *string
}

const listFormalPlanOptions = `
SELECT id, plan_key, option_level, title, price
FROM formal_plan_options
WHERE is_active
ORDER BY display_order ASC, id ASC
`

func (q *Queries) ListFormalPlanOptions(ctx context.Context) ([]FormalPlanRow, error) {
	rows, err := q.db.Query(ctx, listFormalPlanOptions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FormalPlanRow
	for rows.Next() {
		var r FormalPlanRow
		if err := rows.Scan(&r.ID, &r.PlanKey, &r.OptionLevel, &r.Title, &r.Price); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type FormalPlanDetailRow struct {
	PlanOptionID int64
	DetailText   string
}

const listFormalPlanDetails = `
SELECT plan_option_id, detail_text
FROM formal_plan_option_details
WHERE is_active
ORDER BY plan_option_id ASC, display_order ASC, id ASC
`

func (q *Queries) ListFormalPlanDetails(ctx context.Context) ([]FormalPlanDetailRow, error) {
	rows, err := q.db.Query(ctx, listFormalPlanDetails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FormalPlanDetailRow
	for rows.Next() {
		var r FormalPlanDetailRow
		if err := rows.Scan(&r.PlanOptionID, &r.DetailText); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type FormalPlanConstraintRow struct {
	PlanOptionID  int64
	ConstraintKey string
	MinSelect     *int32
	MaxSelect     *int32
}

const listFormalPlanConstraints = `
SELECT plan_option_id, constraint_key, min_select, max_select
FROM formal_plan_option_constraints
WHERE is_active
ORDER BY plan_option_id ASC, id ASC
`

func (q *Queries) ListFormalPlanConstraints(ctx context.Context) ([]FormalPlanConstraintRow, error) {
	rows, err := q.db.Query(ctx, listFormalPlanConstraints)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FormalPlanConstraintRow
	for rows.Next() {
		var r FormalPlanConstraintRow
		if err := rows.Scan(&r.PlanOptionID, &r.ConstraintKey, &r.MinSelect, &r.MaxSelect); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type MenuCatalogRow struct {
	ID         int64
	CatalogKey string
	PageTitle  string
	Subtitle   string
}

const listMenuCatalogs = `
SELECT id, catalog_key, page_title, subtitle
FROM menu_catalogs
WHERE is_active
ORDER BY display_order ASC, id ASC
`

func (q *Queries) ListMenuCatalogs(ctx context.Context) ([]MenuCatalogRow, error) {
	rows, err := q.db.Query(ctx, listMenuCatalogs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuCatalogRow
	for rows.Next() {
		var r MenuCatalogRow
		if err := rows.Scan(&r.ID, &r.CatalogKey, &r.PageTitle, &r.Subtitle); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type IntroBlockRow struct {
	CatalogID  int64
	BlockID    int64
	BlockTitle *string
	BulletText *string
}

const listIntroBlockRows = `
SELECT
  b.catalog_id,
  b.id AS block_id,
  b.title AS block_title,
  ib.bullet_text
FROM menu_intro_blocks b
LEFT JOIN menu_intro_bullets ib
  ON ib.intro_block_id = b.id AND ib.is_active
WHERE b.is_active
ORDER BY b.catalog_id ASC, b.display_order ASC, b.id ASC, ib.display_order ASC, ib.id ASC
`

func (q *Queries) ListIntroBlockRows(ctx context.Context) ([]IntroBlockRow, error) {
	rows, err := q.db.Query(ctx, listIntroBlockRows)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []IntroBlockRow
	for rows.Next() {
		var r IntroBlockRow
		if err := rows.Scan(&r.CatalogID, &r.BlockID, &r.BlockTitle, &r.BulletText); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type MenuSectionRow struct {
	ID          int64
	CatalogID   int64
	SectionKey  string
	SectionType *string
	Title       string
	Description *string
	Price       *string
	Category    *string
	CourseType  *string
}

const listMenuSections = `
SELECT
  s.id,
  s.catalog_id,
  s.section_key,
  s.section_type,
  s.title,
  s.description,
  s.price,
  s.category,
  s.course_type
FROM menu_sections s
WHERE s.is_active
ORDER BY s.catalog_id ASC, s.display_order ASC, s.id ASC
`

func (q *Queries) ListMenuSections(ctx context.Context) ([]MenuSectionRow, error) {
	rows, err := q.db.Query(ctx, listMenuSections)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuSectionRow
	for rows.Next() {
		var r MenuSectionRow
		if err := rows.Scan(
			&r.ID,
			&r.CatalogID,
			&r.SectionKey,
			&r.SectionType,
			&r.Title,
			&r.Description,
			&r.Price,
			&r.Category,
			&r.CourseType,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type SectionColumnRow struct {
	SectionID   int64
	ColumnLabel string
}

const listSectionColumns = `
SELECT section_id, column_label
FROM menu_section_columns
WHERE is_active
ORDER BY section_id ASC, display_order ASC, id ASC
`

func (q *Queries) ListSectionColumns(ctx context.Context) ([]SectionColumnRow, error) {
	rows, err := q.db.Query(ctx, listSectionColumns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SectionColumnRow
	for rows.Next() {
		var r SectionColumnRow
		if err := rows.Scan(&r.SectionID, &r.ColumnLabel); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type SectionPricingRow struct {
	SectionID     int64
	ItemID        int64
	ItemName      string
	ItemType      *string
	ItemCategory  *string
	TrayPriceHalf *string
	TrayPriceFull *string
	ItemActive    *bool
	Value1        *string
	Value2        *string
}

const listSectionPricingRows = `
SELECT
  r.section_id,
  i.id AS item_id,
  i.item_name,
  i.item_type,
  i.item_category,
  i.tray_price_half,
  i.tray_price_full,
  i.is_active AS item_active,
  r.value_1,
  r.value_2
FROM menu_section_rows r
JOIN menu_items i ON i.id = r.item_id AND i.is_active
WHERE r.is_active
ORDER BY r.section_id ASC, r.display_order ASC, r.id ASC
`

func (q *Queries) ListSectionPricingRows(ctx context.Context) ([]SectionPricingRow, error) {
	rows, err := q.db.Query(ctx, listSectionPricingRows)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SectionPricingRow
	for rows.Next() {
		var r SectionPricingRow
		if err := rows.Scan(
			&r.SectionID,
			&r.ItemID,
			&r.ItemName,
			&r.ItemType,
			&r.ItemCategory,
			&r.TrayPriceHalf,
			&r.TrayPriceFull,
			&r.ItemActive,
			&r.Value1,
			&r.Value2,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listSectionPricingRowsLegacy = `
SELECT r.section_id, i.id AS item_id, i.item_name, r.value_1, r.value_2
FROM menu_section_rows r
JOIN menu_items i ON i.id = r.item_id AND i.is_active
WHERE r.is_active
ORDER BY r.section_id ASC, r.display_order ASC, r.id ASC
`

func (q *Queries) ListSectionPricingRowsLegacy(ctx context.Context) ([]SectionPricingRow, error) {
	rows, err := q.db.Query(ctx, listSectionPricingRowsLegacy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SectionPricingRow
	for rows.Next() {
		var r SectionPricingRow
		if err := rows.Scan(&r.SectionID, &r.ItemID, &r.ItemName, &r.Value1, &r.Value2); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type SectionConstraintRow struct {
	SectionID     int64
	ConstraintKey string
	MinSelect     *int32
	MaxSelect     *int32
}

const listSectionConstraints = `
SELECT section_id, constraint_key, min_select, max_select
FROM menu_section_constraints
WHERE is_active
ORDER BY section_id ASC, id ASC
`

func (q *Queries) ListSectionConstraints(ctx context.Context) ([]SectionConstraintRow, error) {
	rows, err := q.db.Query(ctx, listSectionConstraints)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SectionConstraintRow
	for rows.Next() {
		var r SectionConstraintRow
		if err := rows.Scan(&r.SectionID, &r.ConstraintKey, &r.MinSelect, &r.MaxSelect); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type SectionIncludeRow struct {
	SectionID int64
	OptionKey string
}

const listSectionIncludeGroups = `
SELECT ig.section_id, g.option_key
FROM menu_section_include_groups ig
JOIN menu_option_groups g
  ON g.id = ig.group_id AND g.is_active
WHERE ig.is_active
ORDER BY ig.section_id ASC, ig.display_order ASC, ig.id ASC
`

func (q *Queries) ListSectionIncludeGroups(ctx context.Context) ([]SectionIncludeRow, error) {
	rows, err := q.db.Query(ctx, listSectionIncludeGroups)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SectionIncludeRow
	for rows.Next() {
		var r SectionIncludeRow
		if err := rows.Scan(&r.SectionID, &r.OptionKey); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type SectionTierRow struct {
	ID        int64
	SectionID int64
	TierTitle string
	Price     *string
}

const listSectionTiers = `
SELECT id, section_id, tier_title, price
FROM menu_section_tiers
WHERE is_active
ORDER BY section_id ASC, display_order ASC, id ASC
`

func (q *Queries) ListSectionTiers(ctx context.Context) ([]SectionTierRow, error) {
	rows, err := q.db.Query(ctx, listSectionTiers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SectionTierRow
	for rows.Next() {
		var r SectionTierRow
		if err := rows.Scan(&r.ID, &r.SectionID, &r.TierTitle, &r.Price); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type TierConstraintRow struct {
	TierID          int64
	ConstraintKey   string
	MinSelect       *int32
	MaxSelect       *int32
	ConstraintValue *int32
}

const listTierConstraints = `
SELECT tier_id, constraint_key, min_select, max_select, constraint_value
FROM menu_section_tier_constraints
WHERE is_active
ORDER BY tier_id ASC, id ASC
`

func (q *Queries) ListTierConstraints(ctx context.Context) ([]TierConstraintRow, error) {
	rows, err := q.db.Query(ctx, listTierConstraints)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TierConstraintRow
	for rows.Next() {
		var r TierConstraintRow
		if err := rows.Scan(&r.TierID, &r.ConstraintKey, &r.MinSelect, &r.MaxSelect, &r.ConstraintValue); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type TierBulletRow struct {
	TierID        int64
	ItemID        *int64
	ItemName      *string
	ItemType      *string
	ItemCategory  *string
	TrayPriceHalf *string
	TrayPriceFull *string
	ItemActive    *bool
	BulletText    string
}

const listTierBullets = `
SELECT
  b.tier_id,
  i.id AS item_id,
  i.item_name,
  i.item_type,
  i.item_category,
  i.tray_price_half,
  i.tray_price_full,
  i.is_active AS item_active,
  COALESCE(i.item_name, b.bullet_text) AS bullet_text
FROM menu_section_tier_bullets b
LEFT JOIN menu_items i
  ON i.id = b.item_id AND i.is_active
WHERE b.is_active
  AND (b.item_id IS NULL OR i.id IS NOT NULL)
ORDER BY b.tier_id ASC, b.display_order ASC, b.id ASC
`

func (q *Queries) ListTierBullets(ctx context.Context) ([]TierBulletRow, error) {
	rows, err := q.db.Query(ctx, listTierBullets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TierBulletRow
	for rows.Next() {
		var r TierBulletRow
		if err := rows.Scan(
			&r.TierID,
			&r.ItemID,
			&r.ItemName,
			&r.ItemType,
			&r.ItemCategory,
			&r.TrayPriceHalf,
			&r.TrayPriceFull,
			&r.ItemActive,
			&r.BulletText,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listTierBulletsLegacy = `
SELECT b.tier_id, i.id AS item_id, i.item_name, COALESCE(i.item_name, b.bullet_text) AS bullet_text
FROM menu_section_tier_bullets b
LEFT JOIN menu_items i
  ON i.id = b.item_id AND i.is_active
WHERE b.is_active
  AND (b.item_id IS NULL OR i.id IS NOT NULL)
ORDER BY b.tier_id ASC, b.display_order ASC, b.id ASC
`

func (q *Queries) ListTierBulletsLegacy(ctx context.Context) ([]TierBulletRow, error) {
	rows, err := q.db.Query(ctx, listTierBulletsLegacy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TierBulletRow
	for rows.Next() {
		var r TierBulletRow
		if err := rows.Scan(&r.TierID, &r.ItemID, &r.ItemName, &r.BulletText); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type SharedItemRow struct {
	ItemID        int64
	ItemName      string
	ItemType      *string
	ItemCategory  *string
	TrayPriceHalf *string
	TrayPriceFull *string
	ItemActive    *bool
}

const listSharedNonFormalItems = `
SELECT DISTINCT
  i.id AS item_id,
  i.item_name,
  i.item_type,
  i.item_category,
  i.tray_price_half,
  i.tray_price_full,
  i.is_active AS item_active
FROM menu_items i
JOIN (
  SELECT gi.item_id
  FROM menu_option_group_items gi
  JOIN menu_option_groups g
    ON g.id = gi.group_id
  WHERE gi.is_active
    AND g.is_active
  UNION
  SELECT r.item_id
  FROM menu_section_rows r
  JOIN menu_sections s
    ON s.id = r.section_id AND s.is_active
  JOIN menu_catalogs c
    ON c.id = s.catalog_id AND c.is_active
  WHERE r.is_active
    AND c.catalog_key IN ('togo', 'community')
  UNION
  SELECT b.item_id
  FROM menu_section_tier_bullets b
  JOIN menu_section_tiers t
    ON t.id = b.tier_id AND t.is_active
  JOIN menu_sections s
    ON s.id = t.section_id AND s.is_active
  JOIN menu_catalogs c
    ON c.id = s.catalog_id AND c.is_active
  WHERE b.is_active
    AND b.item_id IS NOT NULL
    AND c.catalog_key IN ('togo', 'community')
) linked
  ON linked.item_id = i.id
WHERE i.is_active
ORDER BY i.item_name ASC
`

func (q *Queries) ListSharedNonFormalItems(ctx context.Context) ([]SharedItemRow, error) {
	rows, err := q.db.Query(ctx, listSharedNonFormalItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SharedItemRow
	for rows.Next() {
		var r SharedItemRow
		if err := rows.Scan(
			&r.ItemID,
			&r.ItemName,
			&r.ItemType,
			&r.ItemCategory,
			&r.TrayPriceHalf,
			&r.TrayPriceFull,
			&r.ItemActive,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listSharedNonFormalItemsLegacy = `
SELECT DISTINCT
  i.id AS item_id,
  i.item_name
FROM menu_items i
JOIN (
  SELECT gi.item_id
  FROM menu_option_group_items gi
  JOIN menu_option_groups g
    ON g.id = gi.group_id
  WHERE gi.is_active
    AND g.is_active
  UNION
  SELECT r.item_id
  FROM menu_section_rows r
  JOIN menu_sections s
    ON s.id = r.section_id AND s.is_active
  JOIN menu_catalogs c
    ON c.id = s.catalog_id AND c.is_active
  WHERE r.is_active
    AND c.catalog_key IN ('togo', 'community')
) linked
  ON linked.item_id = i.id
WHERE i.is_active
ORDER BY i.item_name ASC
`

func (q *Queries) ListSharedNonFormalItemsLegacy(ctx context.Context) ([]SharedItemRow, error) {
	rows, err := q.db.Query(ctx, listSharedNonFormalItemsLegacy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SharedItemRow
	for rows.Next() {
		var r SharedItemRow
		if err := rows.Scan(&r.ItemID, &r.ItemName); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const formalPlanConstraintsByPlanKey = `
SELECT c.constraint_key, c.min_select, c.max_select
FROM formal_plan_options p
JOIN formal_plan_option_constraints c
  ON c.plan_option_id = p.id AND c.is_active
WHERE p.is_active
  AND p.plan_key = $1
ORDER BY c.id ASC
`

type ConstraintKV struct {
	ConstraintKey string
	MinSelect     *int32
	MaxSelect     *int32
}

func (q *Queries) FormalPlanConstraintsByPlanKey(ctx context.Context, planKey string) ([]ConstraintKV, error) {
	rows, err := q.db.Query(ctx, formalPlanConstraintsByPlanKey, planKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ConstraintKV
	for rows.Next() {
		var r ConstraintKV
		if err := rows.Scan(&r.ConstraintKey, &r.MinSelect, &r.MaxSelect); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type TierConstraintKV struct {
	ConstraintKey   string
	MinSelect       *int32
	MaxSelect       *int32
	ConstraintValue *int32
}

const tierConstraintsBySectionAndTitle = `
SELECT c.constraint_key, c.min_select, c.max_select, c.constraint_value
FROM menu_sections s
JOIN menu_section_tiers t
  ON t.section_id = s.id AND t.is_active
JOIN menu_section_tier_constraints c
  ON c.tier_id = t.id AND c.is_active
WHERE s.is_active
  AND s.section_key = $1
  AND t.tier_title = $2
ORDER BY c.id ASC
`

func (q *Queries) TierConstraintsBySectionAndTitle(ctx context.Context, sectionKey, tierTitle string) ([]TierConstraintKV, error) {
	rows, err := q.db.Query(ctx, tierConstraintsBySectionAndTitle, sectionKey, tierTitle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TierConstraintKV
	for rows.Next() {
		var r TierConstraintKV
		if err := rows.Scan(&r.ConstraintKey, &r.MinSelect, &r.MaxSelect, &r.ConstraintValue); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const tierConstraintsBySectionAndTitleLegacy = `
SELECT c.constraint_key, c.constraint_value
FROM menu_sections s
JOIN menu_section_tiers t
  ON t.section_id = s.id AND t.is_active
JOIN menu_section_tier_constraints c
  ON c.tier_id = t.id AND c.is_active
WHERE s.is_active
  AND s.section_key = $1
  AND t.tier_title = $2
ORDER BY c.id ASC
`

func (q *Queries) TierConstraintsBySectionAndTitleLegacy(ctx context.Context, sectionKey, tierTitle string) ([]TierConstraintKV, error) {
	rows, err := q.db.Query(ctx, tierConstraintsBySectionAndTitleLegacy, sectionKey, tierTitle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TierConstraintKV
	for rows.Next() {
		var r TierConstraintKV
		if err := rows.Scan(&r.ConstraintKey, &r.ConstraintValue); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const sectionConstraintsByKey = `
SELECT c.constraint_key, c.min_select, c.max_select
FROM menu_sections s
JOIN menu_section_constraints c
  ON c.section_id = s.id AND c.is_active
WHERE s.is_active
  AND s.section_key = $1
ORDER BY c.id ASC
`

func (q *Queries) SectionConstraintsByKey(ctx context.Context, sectionKey string) ([]ConstraintKV, error) {
	rows, err := q.db.Query(ctx, sectionConstraintsByKey, sectionKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ConstraintKV
	for rows.Next() {
		var r ConstraintKV
		if err := rows.Scan(&r.ConstraintKey, &r.MinSelect, &r.MaxSelect); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const columnExists = `
SELECT EXISTS (
  SELECT 1
  FROM information_schema.columns
  WHERE table_name = $1
    AND column_name = $2
) AS "exists"
`

// ColumnExists probes the live schema once at startup so readers can pick
// the modern or legacy query shape without catching unknown-column errors
// per query.
func (q *Queries) ColumnExists(ctx context.Context, tableName, columnName string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, columnExists, tableName, columnName).Scan(&exists)
	return exists, err
}
