package sqlgen

import (
	"context"
)

const upsertMenuItem = `
INSERT INTO menu_items (
  item_key,
  item_name,
  item_type,
  item_category,
  tray_price_half,
  tray_price_full,
  is_active
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (item_name) DO UPDATE SET
  item_key = EXCLUDED.item_key,
  item_type = EXCLUDED.item_type,
  item_category = EXCLUDED.item_category,
  tray_price_half = EXCLUDED.tray_price_half,
  tray_price_full = EXCLUDED.tray_price_full,
  is_active = EXCLUDED.is_active,
  updated_at = CURRENT_TIMESTAMP
RETURNING id
`

type UpsertMenuItemParams struct {
	ItemKey       string
	ItemName      string
	ItemType      string
	ItemCategory  string
	TrayPriceHalf *string
	TrayPriceFull *string
	IsActive      bool
}

func (q *Queries) UpsertMenuItem(ctx context.Context, arg UpsertMenuItemParams) (int64, error) {
	row := q.db.QueryRow(ctx, upsertMenuItem,
		arg.ItemKey,
		arg.ItemName,
		arg.ItemType,
		arg.ItemCategory,
		arg.TrayPriceHalf,
		arg.TrayPriceFull,
		arg.IsActive,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

type MenuItemIDName struct {
	ID       int64
	ItemName string
}

const listMenuItemIDs = `
SELECT id, item_name FROM menu_items
`

func (q *Queries) ListMenuItemIDs(ctx context.Context) ([]MenuItemIDName, error) {
	rows, err := q.db.Query(ctx, listMenuItemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItemIDName
	for rows.Next() {
		var r MenuItemIDName
		if err := rows.Scan(&r.ID, &r.ItemName); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const upsertOptionGroup = `
INSERT INTO menu_option_groups (option_key, option_id, category, title, display_order, is_active)
VALUES ($1, $2, $3, $4, $5, TRUE)
ON CONFLICT (option_key) DO UPDATE SET
  option_id = EXCLUDED.option_id,
  category = EXCLUDED.category,
  title = EXCLUDED.title,
  display_order = EXCLUDED.display_order,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
RETURNING id
`

type UpsertOptionGroupParams struct {
	OptionKey    string
	OptionID     string
	Category     string
	Title        string
	DisplayOrder int32
}

func (q *Queries) UpsertOptionGroup(ctx context.Context, arg UpsertOptionGroupParams) (int64, error) {
	row := q.db.QueryRow(ctx, upsertOptionGroup,
		arg.OptionKey,
		arg.OptionID,
		arg.Category,
		arg.Title,
		arg.DisplayOrder,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const upsertOptionGroupItem = `
INSERT INTO menu_option_group_items (group_id, item_id, display_order, is_active)
VALUES ($1, $2, $3, TRUE)
ON CONFLICT (group_id, item_id) DO UPDATE SET
  display_order = EXCLUDED.display_order,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertOptionGroupItem(ctx context.Context, groupID, itemID int64, displayOrder int32) error {
	_, err := q.db.Exec(ctx, upsertOptionGroupItem, groupID, itemID, displayOrder)
	return err
}

const upsertFormalPlanOption = `
INSERT INTO formal_plan_options (
  plan_key,
  option_level,
  title,
  price,
  price_amount_min,
  price_amount_max,
  price_currency,
  price_unit,
  display_order,
  is_active
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
ON CONFLICT (plan_key) DO UPDATE SET
  option_level = EXCLUDED.option_level,
  title = EXCLUDED.title,
  price = EXCLUDED.price,
  price_amount_min = EXCLUDED.price_amount_min,
  price_amount_max = EXCLUDED.price_amount_max,
  price_currency = EXCLUDED.price_currency,
  price_unit = EXCLUDED.price_unit,
  display_order = EXCLUDED.display_order,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
RETURNING id
`

type UpsertFormalPlanOptionParams struct {
	PlanKey        string
	OptionLevel    string
	Title          string
	Price          *string
	PriceAmountMin *float64
	PriceAmountMax *float64
	PriceCurrency  *string
	PriceUnit      *string
	DisplayOrder   int32
}

func (q *Queries) UpsertFormalPlanOption(ctx context.Context, arg UpsertFormalPlanOptionParams) (int64, error) {
	row := q.db.QueryRow(ctx, upsertFormalPlanOption,
		arg.PlanKey,
		arg.OptionLevel,
		arg.Title,
		arg.Price,
		arg.PriceAmountMin,
		arg.PriceAmountMax,
		arg.PriceCurrency,
		arg.PriceUnit,
		arg.DisplayOrder,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const upsertFormalPlanDetail = `
INSERT INTO formal_plan_option_details (plan_option_id, detail_text, display_order, is_active)
VALUES ($1, $2, $3, TRUE)
ON CONFLICT (plan_option_id, display_order) DO UPDATE SET
  detail_text = EXCLUDED.detail_text,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertFormalPlanDetail(ctx context.Context, planOptionID int64, detailText string, displayOrder int32) error {
	_, err := q.db.Exec(ctx, upsertFormalPlanDetail, planOptionID, detailText, displayOrder)
	return err
}

const upsertFormalPlanConstraint = `
INSERT INTO formal_plan_option_constraints (plan_option_id, constraint_key, min_select, max_select, is_active)
VALUES ($1, $2, $3, $4, TRUE)
ON CONFLICT (plan_option_id, constraint_key) DO UPDATE SET
  min_select = EXCLUDED.min_select,
  max_select = EXCLUDED.max_select,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertFormalPlanConstraint(ctx context.Context, planOptionID int64, constraintKey string, minSelect, maxSelect int32) error {
	_, err := q.db.Exec(ctx, upsertFormalPlanConstraint, planOptionID, constraintKey, minSelect, maxSelect)
	return err
}

const upsertMenuCatalog = `
INSERT INTO menu_catalogs (catalog_key, page_title, subtitle, display_order, is_active)
VALUES ($1, $2, $3, $4, TRUE)
ON CONFLICT (catalog_key) DO UPDATE SET
  page_title = EXCLUDED.page_title,
  subtitle = EXCLUDED.subtitle,
  display_order = EXCLUDED.display_order,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
RETURNING id
`

func (q *Queries) UpsertMenuCatalog(ctx context.Context, catalogKey, pageTitle, subtitle string, displayOrder int32) (int64, error) {
	row := q.db.QueryRow(ctx, upsertMenuCatalog, catalogKey, pageTitle, subtitle, displayOrder)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const upsertIntroBlock = `
INSERT INTO menu_intro_blocks (catalog_id, title, display_order, is_active)
VALUES ($1, $2, $3, TRUE)
ON CONFLICT (catalog_id, display_order) DO UPDATE SET
  title = EXCLUDED.title,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
RETURNING id
`

func (q *Queries) UpsertIntroBlock(ctx context.Context, catalogID int64, title string, displayOrder int32) (int64, error) {
	row := q.db.QueryRow(ctx, upsertIntroBlock, catalogID, title, displayOrder)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const upsertIntroBullet = `
INSERT INTO menu_intro_bullets (intro_block_id, bullet_text, display_order, is_active)
VALUES ($1, $2, $3, TRUE)
ON CONFLICT (intro_block_id, display_order) DO UPDATE SET
  bullet_text = EXCLUDED.bullet_text,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertIntroBullet(ctx context.Context, introBlockID int64, bulletText string, displayOrder int32) error {
	_, err := q.db.Exec(ctx, upsertIntroBullet, introBlockID, bulletText, displayOrder)
	return err
}

const upsertMenuSection = `
INSERT INTO menu_sections (
  catalog_id,
  section_key,
  section_type,
  title,
  description,
  price,
  price_amount_min,
  price_amount_max,
  price_currency,
  price_unit,
  category,
  course_type,
  display_order,
  is_active
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, TRUE)
ON CONFLICT (catalog_id, section_key) DO UPDATE SET
  section_type = EXCLUDED.section_type,
  title = EXCLUDED.title,
  description = EXCLUDED.description,
  price = EXCLUDED.price,
  price_amount_min = EXCLUDED.price_amount_min,
  price_amount_max = EXCLUDED.price_amount_max,
  price_currency = EXCLUDED.price_currency,
  price_unit = EXCLUDED.price_unit,
  category = EXCLUDED.category,
  course_type = EXCLUDED.course_type,
  display_order = EXCLUDED.display_order,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
RETURNING id
`

type UpsertMenuSectionParams struct {
	CatalogID      int64
	SectionKey     string
	SectionType    *string
	Title          string
	Description    *string
	Price          *string
	PriceAmountMin *float64
	PriceAmountMax *float64
	PriceCurrency  *string
	PriceUnit      *string
	Category       *string
	CourseType     *string
	DisplayOrder   int32
}

func (q *Queries) UpsertMenuSection(ctx context.Context, arg UpsertMenuSectionParams) (int64, error) {
	row := q.db.QueryRow(ctx, upsertMenuSection,
		arg.CatalogID,
		arg.SectionKey,
		arg.SectionType,
		arg.Title,
		arg.Description,
		arg.Price,
		arg.PriceAmountMin,
		arg.PriceAmountMax,
		arg.PriceCurrency,
		arg.PriceUnit,
		arg.Category,
		arg.CourseType,
		arg.DisplayOrder,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const upsertSectionConstraint = `
INSERT INTO menu_section_constraints (section_id, constraint_key, min_select, max_select, is_active)
VALUES ($1, $2, $3, $4, TRUE)
ON CONFLICT (section_id, constraint_key) DO UPDATE SET
  min_select = EXCLUDED.min_select,
  max_select = EXCLUDED.max_select,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertSectionConstraint(ctx context.Context, sectionID int64, constraintKey string, minSelect, maxSelect int32) error {
	_, err := q.db.Exec(ctx, upsertSectionConstraint, sectionID, constraintKey, minSelect, maxSelect)
	return err
}

const upsertSectionColumn = `
INSERT INTO menu_section_columns (section_id, column_label, display_order, is_active)
VALUES ($1, $2, $3, TRUE)
ON CONFLICT (section_id, display_order) DO UPDATE SET
  column_label = EXCLUDED.column_label,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertSectionColumn(ctx context.Context, sectionID int64, columnLabel string, displayOrder int32) error {
	_, err := q.db.Exec(ctx, upsertSectionColumn, sectionID, columnLabel, displayOrder)
	return err
}

const upsertSectionRow = `
INSERT INTO menu_section_rows (section_id, item_id, value_1, value_2, display_order, is_active)
VALUES ($1, $2, $3, $4, $5, TRUE)
ON CONFLICT (section_id, item_id) DO UPDATE SET
  value_1 = EXCLUDED.value_1,
  value_2 = EXCLUDED.value_2,
  display_order = EXCLUDED.display_order,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

type UpsertSectionRowParams struct {
	SectionID    int64
	ItemID       int64
	Value1       *string
	Value2       *string
	DisplayOrder int32
}

func (q *Queries) UpsertSectionRow(ctx context.Context, arg UpsertSectionRowParams) error {
	_, err := q.db.Exec(ctx, upsertSectionRow, arg.SectionID, arg.ItemID, arg.Value1, arg.Value2, arg.DisplayOrder)
	return err
}

const optionGroupIDByKey = `
SELECT id FROM menu_option_groups WHERE option_key = $1
`

func (q *Queries) OptionGroupIDByKey(ctx context.Context, optionKey string) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, optionGroupIDByKey, optionKey).Scan(&id)
	return id, err
}

const upsertSectionIncludeGroup = `
INSERT INTO menu_section_include_groups (section_id, group_id, display_order, is_active)
VALUES ($1, $2, $3, TRUE)
ON CONFLICT (section_id, group_id) DO UPDATE SET
  display_order = EXCLUDED.display_order,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertSectionIncludeGroup(ctx context.Context, sectionID, groupID int64, displayOrder int32) error {
	_, err := q.db.Exec(ctx, upsertSectionIncludeGroup, sectionID, groupID, displayOrder)
	return err
}

const upsertSectionTier = `
INSERT INTO menu_section_tiers (
  section_id,
  tier_title,
  price,
  price_amount_min,
  price_amount_max,
  price_currency,
  price_unit,
  display_order,
  is_active
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
ON CONFLICT (section_id, tier_title) DO UPDATE SET
  price = EXCLUDED.price,
  price_amount_min = EXCLUDED.price_amount_min,
  price_amount_max = EXCLUDED.price_amount_max,
  price_currency = EXCLUDED.price_currency,
  price_unit = EXCLUDED.price_unit,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
RETURNING id
`

type UpsertSectionTierParams struct {
	SectionID      int64
	TierTitle      string
	Price          *string
	PriceAmountMin *float64
	PriceAmountMax *float64
	PriceCurrency  *string
	PriceUnit      *string
	DisplayOrder   int32
}

func (q *Queries) UpsertSectionTier(ctx context.Context, arg UpsertSectionTierParams) (int64, error) {
	row := q.db.QueryRow(ctx, upsertSectionTier,
		arg.SectionID,
		arg.TierTitle,
		arg.Price,
		arg.PriceAmountMin,
		arg.PriceAmountMax,
		arg.PriceCurrency,
		arg.PriceUnit,
		arg.DisplayOrder,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const upsertTierConstraint = `
INSERT INTO menu_section_tier_constraints (
  tier_id,
  constraint_key,
  min_select,
  max_select,
  constraint_value,
  is_active
)
VALUES ($1, $2, $3, $4, NULL, TRUE)
ON CONFLICT (tier_id, constraint_key) DO UPDATE SET
  min_select = EXCLUDED.min_select,
  max_select = EXCLUDED.max_select,
  constraint_value = NULL,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertTierConstraint(ctx context.Context, tierID int64, constraintKey string, minSelect, maxSelect int32) error {
	_, err := q.db.Exec(ctx, upsertTierConstraint, tierID, constraintKey, minSelect, maxSelect)
	return err
}

const upsertTierBullet = `
INSERT INTO menu_section_tier_bullets (tier_id, item_id, bullet_text, display_order, is_active)
VALUES ($1, $2, $3, $4, TRUE)
ON CONFLICT (tier_id, display_order) DO UPDATE SET
  item_id = EXCLUDED.item_id,
  bullet_text = EXCLUDED.bullet_text,
  is_active = TRUE,
  updated_at = CURRENT_TIMESTAMP
`

type UpsertTierBulletParams struct {
	TierID       int64
	ItemID       *int64
	BulletText   *string
	DisplayOrder int32
}

func (q *Queries) UpsertTierBullet(ctx context.Context, arg UpsertTierBulletParams) error {
	_, err := q.db.Exec(ctx, upsertTierBullet, arg.TierID, arg.ItemID, arg.BulletText, arg.DisplayOrder)
	return err
}
