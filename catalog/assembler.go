package catalog

import (
	"context"

	"post-catering/model"
	"post-catering/outbound/sqlgen"
)

// Assembler rebuilds the nested storefront payload from the relational
// schema. itemColumns reports whether menu_items carries the classification
// and tray-price columns; legacy databases fall back to the narrow queries.
type Assembler struct {
	Querier *sqlgen.Queries

	itemColumns bool
}

func NewAssembler(querier *sqlgen.Queries, itemColumns bool) *Assembler {
	return &Assembler{Querier: querier, itemColumns: itemColumns}
}

func (a *Assembler) menuOptionRows(ctx context.Context) ([]sqlgen.MenuOptionRow, error) {
	if a.itemColumns {
		return a.Querier.ListMenuOptionRows(ctx)
	}
	return a.Querier.ListMenuOptionRowsLegacy(ctx)
}

// MenuOptions returns the named option groups keyed by option_key, each with
// its ordered item names and item references.
func (a *Assembler) MenuOptions(ctx context.Context) (map[string]*model.OptionGroup, error) {
	rows, err := a.menuOptionRows(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]*model.OptionGroup{}
	for _, row := range rows {
		group, ok := payload[row.OptionKey]
		if !ok {
			group = &model.OptionGroup{
				ID:       derefString(row.OptionID),
				Category: derefString(row.Category),
				Title:    derefString(row.Title),
				Items:    []string{},
				ItemRefs: []model.ItemRef{},
			}
			payload[row.OptionKey] = group
		}

		if row.ItemName != nil && *row.ItemName != "" {
			group.Items = append(group.Items, *row.ItemName)
			group.ItemRefs = append(group.ItemRefs, buildItemRef(
				derefInt64(row.ItemID),
				*row.ItemName,
				row.ItemType,
				row.ItemCategory,
				row.ItemActive,
				row.TrayPriceHalf,
				row.TrayPriceFull,
				nil,
				nil,
			))
		}
	}
	return payload, nil
}

func derefInt64(value *int64) int64 {
	if value == nil {
		return 0
	}
	return *value
}

// FormalPlanOptions returns the formal plan list with details and
// constraints attached in display order.
func (a *Assembler) FormalPlanOptions(ctx context.Context) ([]*model.FormalPlanOption, error) {
	plans, err := a.Querier.ListFormalPlanOptions(ctx)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, nil
	}

	details, err := a.Querier.ListFormalPlanDetails(ctx)
	if err != nil {
		return nil, err
	}
	constraints, err := a.Querier.ListFormalPlanConstraints(ctx)
	if err != nil {
		return nil, err
	}

	detailsByPlan := map[int64][]string{}
	for _, row := range details {
		detailsByPlan[row.PlanOptionID] = append(detailsByPlan[row.PlanOptionID], row.DetailText)
	}

	constraintsByPlan := map[int64]map[string]model.MinMax{}
	for _, row := range constraints {
		bucket, ok := constraintsByPlan[row.PlanOptionID]
		if !ok {
			bucket = map[string]model.MinMax{}
			constraintsByPlan[row.PlanOptionID] = bucket
		}
		bucket[row.ConstraintKey] = model.MinMax{
			Min: intOrZero(row.MinSelect),
			Max: intOrZero(row.MaxSelect),
		}
	}

	payload := make([]*model.FormalPlanOption, 0, len(plans))
	for _, row := range plans {
		plan := &model.FormalPlanOption{
			ID:          row.PlanKey,
			Level:       row.OptionLevel,
			Title:       row.Title,
			Details:     detailsByPlan[row.ID],
			Constraints: constraintsByPlan[row.ID],
		}
		if plan.Details == nil {
			plan.Details = []string{}
		}
		if plan.Constraints == nil {
			plan.Constraints = map[string]model.MinMax{}
		}
		plan.Price, plan.PriceMeta = pricePayload(row.Price)
		payload = append(payload, plan)
	}
	return payload, nil
}

func (a *Assembler) sectionPricingRows(ctx context.Context) ([]sqlgen.SectionPricingRow, error) {
	if a.itemColumns {
		return a.Querier.ListSectionPricingRows(ctx)
	}
	return a.Querier.ListSectionPricingRowsLegacy(ctx)
}

func (a *Assembler) tierBulletRows(ctx context.Context) ([]sqlgen.TierBulletRow, error) {
	if a.itemColumns {
		return a.Querier.ListTierBullets(ctx)
	}
	return a.Querier.ListTierBulletsLegacy(ctx)
}

// MenuCatalog returns the catalog pages keyed by catalog_key, each with
// intro blocks and fully hydrated sections.
func (a *Assembler) MenuCatalog(ctx context.Context) (map[string]*model.Catalog, error) {
	catalogs, err := a.Querier.ListMenuCatalogs(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogs) == 0 {
		return map[string]*model.Catalog{}, nil
	}

	payload := map[string]*model.Catalog{}
	catalogKeys := map[int64]string{}
	for _, row := range catalogs {
		payload[row.CatalogKey] = &model.Catalog{
			PageTitle: row.PageTitle,
			Subtitle:  row.Subtitle,
		}
		catalogKeys[row.ID] = row.CatalogKey
	}

	introRows, err := a.Querier.ListIntroBlockRows(ctx)
	if err != nil {
		return nil, err
	}
	introIndex := map[int64]int{}
	for _, row := range introRows {
		catalogKey, ok := catalogKeys[row.CatalogID]
		if !ok {
			continue
		}
		catalog := payload[catalogKey]
		idx, seen := introIndex[row.BlockID]
		if !seen {
			catalog.IntroBlocks = append(catalog.IntroBlocks, model.IntroBlock{
				Title:   derefString(row.BlockTitle),
				Bullets: []string{},
			})
			idx = len(catalog.IntroBlocks) - 1
			introIndex[row.BlockID] = idx
		}
		if row.BulletText != nil {
			catalog.IntroBlocks[idx].Bullets = append(catalog.IntroBlocks[idx].Bullets, *row.BulletText)
		}
	}

	sectionRows, err := a.Querier.ListMenuSections(ctx)
	if err != nil {
		return nil, err
	}
	sectionByID := map[int64]*model.Section{}
	sectionCatalogByID := map[int64]string{}
	for _, row := range sectionRows {
		catalogKey, ok := catalogKeys[row.CatalogID]
		if !ok {
			continue
		}

		section := &model.Section{
			SectionID:   row.SectionKey,
			Type:        derefString(row.SectionType),
			CourseType:  derefString(row.CourseType),
			Category:    derefString(row.Category),
			Title:       row.Title,
			Description: derefString(row.Description),
		}
		section.Price, section.PriceMeta = pricePayload(row.Price)

		payload[catalogKey].Sections = append(payload[catalogKey].Sections, section)
		sectionByID[row.ID] = section
		sectionCatalogByID[row.ID] = catalogKey
	}

	columnRows, err := a.Querier.ListSectionColumns(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range columnRows {
		if section, ok := sectionByID[row.SectionID]; ok {
			section.Columns = append(section.Columns, row.ColumnLabel)
		}
	}

	pricingRows, err := a.sectionPricingRows(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range pricingRows {
		section, ok := sectionByID[row.SectionID]
		if !ok {
			continue
		}

		halfPrice := row.Value1
		fullPrice := row.Value2
		if sectionCatalogByID[row.SectionID] == catalogKeyTogo {
			if override := normalizeTrayPrice(row.TrayPriceHalf); override != nil {
				halfPrice = override
			}
			if override := normalizeTrayPrice(row.TrayPriceFull); override != nil {
				fullPrice = override
			}
		}

		section.Rows = append(section.Rows, []any{row.ItemName, stringOrNil(halfPrice), stringOrNil(fullPrice)})
		section.RowItems = append(section.RowItems, buildItemRef(
			row.ItemID,
			row.ItemName,
			row.ItemType,
			row.ItemCategory,
			row.ItemActive,
			row.TrayPriceHalf,
			row.TrayPriceFull,
			halfPrice,
			fullPrice,
		))
	}

	constraintRows, err := a.Querier.ListSectionConstraints(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range constraintRows {
		section, ok := sectionByID[row.SectionID]
		if !ok {
			continue
		}
		if section.Constraints == nil {
			section.Constraints = map[string]model.MinMax{}
		}
		if row.ConstraintKey == "" {
			continue
		}
		section.Constraints[row.ConstraintKey] = model.MinMax{
			Min: intOrZero(row.MinSelect),
			Max: intOrZero(row.MaxSelect),
		}
	}

	includeRows, err := a.Querier.ListSectionIncludeGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range includeRows {
		if section, ok := sectionByID[row.SectionID]; ok {
			section.IncludeKeys = append(section.IncludeKeys, row.OptionKey)
		}
	}

	tierRows, err := a.Querier.ListSectionTiers(ctx)
	if err != nil {
		return nil, err
	}
	tiersByID := map[int64]*model.Tier{}
	for _, row := range tierRows {
		section, ok := sectionByID[row.SectionID]
		if !ok {
			continue
		}
		tier := &model.Tier{
			TierTitle: row.TierTitle,
			Bullets:   []string{},
		}
		tier.Price, tier.PriceMeta = pricePayload(row.Price)
		tiersByID[row.ID] = tier
		section.Tiers = append(section.Tiers, tier)
	}

	tierConstraintRows, err := a.Querier.ListTierConstraints(ctx)
	if err != nil {
		return nil, err
	}
	tierConstraintsByID := map[int64][]TierConstraintRow{}
	for _, row := range tierConstraintRows {
		tierConstraintsByID[row.TierID] = append(tierConstraintsByID[row.TierID], TierConstraintRow{
			Key:         row.ConstraintKey,
			MinSelect:   row.MinSelect,
			MaxSelect:   row.MaxSelect,
			LegacyValue: row.ConstraintValue,
		})
	}
	for tierID, rows := range tierConstraintsByID {
		if tier, ok := tiersByID[tierID]; ok {
			tier.Constraints = NormalizeTierConstraints(rows)
		}
	}

	bulletRows, err := a.tierBulletRows(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range bulletRows {
		tier, ok := tiersByID[row.TierID]
		if !ok {
			continue
		}
		tier.Bullets = append(tier.Bullets, row.BulletText)
		if row.ItemID != nil {
			tier.BulletItems = append(tier.BulletItems, buildItemRef(
				*row.ItemID,
				derefString(row.ItemName),
				row.ItemType,
				row.ItemCategory,
				row.ItemActive,
				row.TrayPriceHalf,
				row.TrayPriceFull,
				nil,
				nil,
			))
		}
	}

	return payload, nil
}

func stringOrNil(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

// SharedNonFormalItems returns every active item linked into an option
// group or a non-formal catalog, ordered by name.
func (a *Assembler) SharedNonFormalItems(ctx context.Context) ([]model.ItemRef, error) {
	var rows []sqlgen.SharedItemRow
	var err error
	if a.itemColumns {
		rows, err = a.Querier.ListSharedNonFormalItems(ctx)
	} else {
		rows, err = a.Querier.ListSharedNonFormalItemsLegacy(ctx)
	}
	if err != nil {
		return nil, err
	}

	refs := make([]model.ItemRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, buildItemRef(
			row.ItemID,
			row.ItemName,
			row.ItemType,
			row.ItemCategory,
			row.ItemActive,
			row.TrayPriceHalf,
			row.TrayPriceFull,
			nil,
			nil,
		))
	}
	return refs, nil
}

// Payload assembles the complete storefront payload. It returns nil without
// error when the catalog tables are not populated yet, so callers can fall
// back to the seed file.
func (a *Assembler) Payload(ctx context.Context) (*model.CatalogPayload, error) {
	menuOptions, err := a.MenuOptions(ctx)
	if err != nil {
		return nil, err
	}
	formalPlanOptions, err := a.FormalPlanOptions(ctx)
	if err != nil {
		return nil, err
	}
	menu, err := a.MenuCatalog(ctx)
	if err != nil {
		return nil, err
	}
	sharedNonFormalItems, err := a.SharedNonFormalItems(ctx)
	if err != nil {
		return nil, err
	}

	if len(menuOptions) == 0 || len(formalPlanOptions) == 0 || len(menu) == 0 {
		return nil, nil
	}

	return &model.CatalogPayload{
		MenuOptions:          menuOptions,
		FormalPlanOptions:    formalPlanOptions,
		Menu:                 menu,
		SharedNonFormalItems: sharedNonFormalItems,
	}, nil
}
