package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"post-catering/outbound/sqlgen"
)

// orderedObject is a JSON object that remembers key order. Seed payloads use
// object order to derive display_order for option groups and catalogs.
type orderedObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func (o *orderedObject) UnmarshalJSON(data []byte) error {
	o.keys = nil
	o.values = map[string]json.RawMessage{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("expected a JSON object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("expected a string object key")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if _, exists := o.values[key]; !exists {
			o.keys = append(o.keys, key)
		}
		o.values[key] = raw
	}
	_, err = dec.Token()
	return err
}

// SeedPayload is the decoded seed document. Both snake_case and the legacy
// upper-case top-level keys are accepted.
type SeedPayload struct {
	MenuOptions       orderedObject
	FormalPlanOptions []formalPlanSeed
	Menu              orderedObject
	NonFormalItems    []map[string]any
}

func (p *SeedPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	pick := func(keys ...string) json.RawMessage {
		for _, key := range keys {
			if value, ok := raw[key]; ok && !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
				return value
			}
		}
		return nil
	}

	if value := pick("menu_options", "MENU_OPTIONS"); value != nil {
		if err := json.Unmarshal(value, &p.MenuOptions); err != nil {
			return err
		}
	}
	if value := pick("formal_plan_options", "FORMAL_PLAN_OPTIONS"); value != nil {
		if err := json.Unmarshal(value, &p.FormalPlanOptions); err != nil {
			return err
		}
	}
	if value := pick("menu", "MENU"); value != nil {
		if err := json.Unmarshal(value, &p.Menu); err != nil {
			return err
		}
	}
	if value := pick("non_formal_items", "shared_non_formal_items", "NON_FORMAL_ITEMS", "SHARED_NON_FORMAL_ITEMS"); value != nil {
		if err := json.Unmarshal(value, &p.NonFormalItems); err != nil {
			return err
		}
	}
	return nil
}

// ParseSeedPayload decodes a seed document from its JSON bytes.
func ParseSeedPayload(data []byte) (*SeedPayload, error) {
	var payload SeedPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse seed payload: %w", err)
	}
	return &payload, nil
}

type optionGroupSeed struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Items    []string `json:"items"`
}

type formalPlanSeed struct {
	ID             string         `json:"id"`
	Level          string         `json:"level"`
	Title          string         `json:"title"`
	Price          any            `json:"price"`
	PriceMeta      map[string]any `json:"priceMeta"`
	PriceMetaSnake map[string]any `json:"price_meta"`
	Details        []string       `json:"details"`
	Constraints    map[string]any `json:"constraints"`
}

func (p formalPlanSeed) priceMeta() map[string]any {
	if len(p.PriceMeta) > 0 {
		return p.PriceMeta
	}
	return p.PriceMetaSnake
}

type catalogSeed struct {
	PageTitle   string           `json:"pageTitle"`
	Subtitle    string           `json:"subtitle"`
	IntroBlocks []introBlockSeed `json:"introBlocks"`
	Sections    []sectionSeed    `json:"sections"`
}

type introBlockSeed struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type sectionSeed struct {
	SectionID      string         `json:"sectionId"`
	Type           *string        `json:"type"`
	CourseType     *string        `json:"courseType"`
	Category       *string        `json:"category"`
	Title          string         `json:"title"`
	Description    *string        `json:"description"`
	Price          any            `json:"price"`
	PriceMeta      map[string]any `json:"priceMeta"`
	PriceMetaSnake map[string]any `json:"price_meta"`
	Constraints    map[string]any `json:"constraints"`
	Columns        []string       `json:"columns"`
	Rows           [][]any        `json:"rows"`
	IncludeKeys    []string       `json:"includeKeys"`
	Tiers          []tierSeed     `json:"tiers"`
}

func (s sectionSeed) priceMeta() map[string]any {
	if len(s.PriceMeta) > 0 {
		return s.PriceMeta
	}
	return s.PriceMetaSnake
}

type tierSeed struct {
	TierTitle      string         `json:"tierTitle"`
	Price          any            `json:"price"`
	PriceMeta      map[string]any `json:"priceMeta"`
	PriceMetaSnake map[string]any `json:"price_meta"`
	Constraints    map[string]any `json:"constraints"`
	Bullets        []string       `json:"bullets"`
}

func (t tierSeed) priceMeta() map[string]any {
	if len(t.PriceMeta) > 0 {
		return t.PriceMeta
	}
	return t.PriceMetaSnake
}

// seedItemRecord is the merged view of a menu item gathered from every place
// the seed payload mentions it.
type seedItemRecord struct {
	itemName     string
	itemKey      string
	itemType     string
	itemCategory string
	isActive     int
	trayHalf     *string
	trayFull     *string
}

type itemRecordSet map[string]*seedItemRecord

// ensure inserts or merges an item mention. Hints only fill classification
// slots still holding the fallback, the active flag only ever widens, and
// tray prices overwrite when present.
func (set itemRecordSet) ensure(name, typeHint, categoryHint string, isActive int, trayHalf, trayFull *string) {
	itemName := strings.TrimSpace(name)
	if itemName == "" {
		return
	}

	existing, ok := set[itemName]
	if !ok {
		set[itemName] = &seedItemRecord{
			itemName:     itemName,
			itemKey:      Slug(itemName),
			itemType:     NormalizeClassification(typeHint, itemFallbackType),
			itemCategory: NormalizeClassification(categoryHint, itemFallbackCategory),
			isActive:     coerceActiveFlag(isActive, true),
			trayHalf:     normalizeTrayPrice(trayHalf),
			trayFull:     normalizeTrayPrice(trayFull),
		}
		return
	}

	if typeHint != "" && existing.itemType == itemFallbackType {
		existing.itemType = NormalizeClassification(typeHint, itemFallbackType)
	}
	if categoryHint != "" && existing.itemCategory == itemFallbackCategory {
		existing.itemCategory = NormalizeClassification(categoryHint, itemFallbackCategory)
	}
	existing.isActive = max(existing.isActive, coerceActiveFlag(isActive, true))
	if half := normalizeTrayPrice(trayHalf); half != nil {
		existing.trayHalf = half
	}
	if full := normalizeTrayPrice(trayFull); full != nil {
		existing.trayFull = full
	}
}

func stringFromAny(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// extractNonFormalItems normalizes the optional standalone item list a seed
// payload may carry alongside the catalog tree.
func extractNonFormalItems(raw []map[string]any) []*seedItemRecord {
	var items []*seedItemRecord
	for _, entry := range raw {
		name := strings.TrimSpace(firstString(entry, "name", "item_name", "itemName"))
		if name == "" {
			continue
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

		items = append(items, &seedItemRecord{
			itemName:     name,
			itemKey:      Slug(name),
			itemType:     NormalizeClassification(firstString(entry, "item_type", "itemType", "type"), itemFallbackType),
			itemCategory: NormalizeClassification(firstString(entry, "item_category", "itemCategory", "category"), itemFallbackCategory),
			isActive:     coerceActiveFlag(active, true),
			trayHalf:     trayHalf,
			trayFull:     trayFull,
		})
	}
	return items
}

func firstString(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := entry[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func anyOf(entry map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := entry[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

// Seeder loads a seed payload into the normalized menu tables. Writes are
// upserts keyed on natural keys, so reseeding is idempotent.
type Seeder struct {
	Querier *sqlgen.Queries

	// itemColumns reports whether menu_items carries the classification and
	// tray price columns; probed once at startup.
	itemColumns bool
}

func NewSeeder(querier *sqlgen.Queries, itemColumns bool) *Seeder {
	return &Seeder{Querier: querier, itemColumns: itemColumns}
}

func (s *Seeder) SeedFromPayload(ctx context.Context, payload *SeedPayload) error {
	nonFormalItems := extractNonFormalItems(payload.NonFormalItems)
	records := collectItemRecords(payload, nonFormalItems)

	if err := s.upsertItems(ctx, records); err != nil {
		return err
	}

	itemIDs, err := s.itemIDsByName(ctx)
	if err != nil {
		return err
	}

	groupIDs, err := s.seedOptionGroups(ctx, payload, itemIDs)
	if err != nil {
		return err
	}
	if err := s.seedFormalPlans(ctx, payload); err != nil {
		return err
	}
	return s.seedCatalogs(ctx, payload, records, itemIDs, groupIDs)
}

// collectItemRecords walks every payload location that names an item and
// merges the mentions into one record per item name.
func collectItemRecords(payload *SeedPayload, nonFormalItems []*seedItemRecord) itemRecordSet {
	records := itemRecordSet{}

	for _, item := range nonFormalItems {
		records.ensure(item.itemName, item.itemType, item.itemCategory, item.isActive, item.trayHalf, item.trayFull)
	}

	for _, optionKey := range payload.MenuOptions.keys {
		var group optionGroupSeed
		if err := json.Unmarshal(payload.MenuOptions.values[optionKey], &group); err != nil {
			continue
		}
		for _, itemName := range group.Items {
			records.ensure(itemName, optionKey, group.Category, 1, nil, nil)
		}
	}

	for _, catalogKey := range payload.Menu.keys {
		var catalog catalogSeed
		if err := json.Unmarshal(payload.Menu.values[catalogKey], &catalog); err != nil {
			continue
		}
		normalizedKey := strings.ToLower(strings.TrimSpace(catalogKey))
		isNonFormal := normalizedKey == catalogKeyTogo || normalizedKey == catalogKeyCommunity

		for _, section := range catalog.Sections {
			courseType := derefString(section.CourseType)
			for _, row := range section.Rows {
				if len(row) == 0 {
					continue
				}
				var trayHalf, trayFull *string
				if normalizedKey == catalogKeyTogo {
					if len(row) > 1 {
						trayHalf = trayPriceFromAny(row[1])
					}
					if len(row) > 2 {
						trayFull = trayPriceFromAny(row[2])
					}
				}
				typeHint := section.SectionID
				categoryHint := derefString(section.Category)
				if !isNonFormal {
					if courseType != "" {
						typeHint = courseType
					}
					categoryHint = courseType
				}
				records.ensure(stringFromAny(row[0]), typeHint, categoryHint, 1, trayHalf, trayFull)
			}

			// Tier bullets only become items on the formal catalog or on
			// sections that declare a course type.
			if normalizedKey != catalogKeyFormal && courseType == "" {
				continue
			}
			for _, tier := range section.Tiers {
				typeHint := courseType
				if typeHint == "" {
					typeHint = section.SectionID
				}
				categoryHint := courseType
				if categoryHint == "" {
					categoryHint = derefString(section.Category)
				}
				for _, bullet := range tier.Bullets {
					records.ensure(bullet, typeHint, categoryHint, 1, nil, nil)
				}
			}
		}
	}

	return records
}

func (s *Seeder) upsertItems(ctx context.Context, records itemRecordSet) error {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		record := records[name]
		var err error
		if s.itemColumns {
			_, err = s.Querier.UpsertMenuItem(ctx, sqlgen.UpsertMenuItemParams{
				ItemKey:       record.itemKey,
				ItemName:      record.itemName,
				ItemType:      record.itemType,
				ItemCategory:  record.itemCategory,
				TrayPriceHalf: record.trayHalf,
				TrayPriceFull: record.trayFull,
				IsActive:      record.isActive == 1,
			})
		} else {
			_, err = s.Querier.UpsertMenuItemLegacy(ctx, record.itemKey, record.itemName, record.isActive == 1)
		}
		if err != nil {
			return fmt.Errorf("upsert menu item %q: %w", record.itemName, err)
		}
	}
	return nil
}

func (s *Seeder) itemIDsByName(ctx context.Context) (map[string]int64, error) {
	rows, err := s.Querier.ListMenuItemIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	ids := make(map[string]int64, len(rows))
	for _, row := range rows {
		ids[row.ItemName] = row.ID
	}
	return ids, nil
}

func (s *Seeder) seedOptionGroups(ctx context.Context, payload *SeedPayload, itemIDs map[string]int64) (map[string]int64, error) {
	groupIDs := map[string]int64{}
	for idx, optionKey := range payload.MenuOptions.keys {
		var group optionGroupSeed
		if err := json.Unmarshal(payload.MenuOptions.values[optionKey], &group); err != nil {
			return nil, fmt.Errorf("decode option group %q: %w", optionKey, err)
		}

		groupID, err := s.Querier.UpsertOptionGroup(ctx, sqlgen.UpsertOptionGroupParams{
			OptionKey:    optionKey,
			OptionID:     group.ID,
			Category:     group.Category,
			Title:        group.Title,
			DisplayOrder: int32(idx + 1),
		})
		if err != nil {
			return nil, fmt.Errorf("upsert option group %q: %w", optionKey, err)
		}
		groupIDs[optionKey] = groupID

		for itemOrder, itemName := range group.Items {
			itemID, ok := itemIDs[itemName]
			if !ok {
				continue
			}
			if err := s.Querier.UpsertOptionGroupItem(ctx, groupID, itemID, int32(itemOrder+1)); err != nil {
				return nil, fmt.Errorf("upsert option group item %q/%q: %w", optionKey, itemName, err)
			}
		}
	}
	return groupIDs, nil
}

func (s *Seeder) seedFormalPlans(ctx context.Context, payload *SeedPayload) error {
	for idx, plan := range payload.FormalPlanOptions {
		price := NormalizePriceFields(plan.Price, plan.priceMeta())
		planID, err := s.Querier.UpsertFormalPlanOption(ctx, sqlgen.UpsertFormalPlanOptionParams{
			PlanKey:        plan.ID,
			OptionLevel:    plan.Level,
			Title:          plan.Title,
			Price:          price.Price,
			PriceAmountMin: price.AmountMin,
			PriceAmountMax: price.AmountMax,
			PriceCurrency:  price.Currency,
			PriceUnit:      price.Unit,
			DisplayOrder:   int32(idx + 1),
		})
		if err != nil {
			return fmt.Errorf("upsert formal plan %q: %w", plan.ID, err)
		}

		for detailOrder, detailText := range plan.Details {
			if err := s.Querier.UpsertFormalPlanDetail(ctx, planID, detailText, int32(detailOrder+1)); err != nil {
				return fmt.Errorf("upsert formal plan detail %q: %w", plan.ID, err)
			}
		}
		for constraintKey, limits := range plan.Constraints {
			bounds, _ := limits.(map[string]any)
			minSelect, _ := intFromAny(bounds["min"])
			maxSelect, _ := intFromAny(bounds["max"])
			if err := s.Querier.UpsertFormalPlanConstraint(ctx, planID, constraintKey, int32(minSelect), int32(maxSelect)); err != nil {
				return fmt.Errorf("upsert formal plan constraint %q/%q: %w", plan.ID, constraintKey, err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedCatalogs(ctx context.Context, payload *SeedPayload, records itemRecordSet, itemIDs map[string]int64, groupIDs map[string]int64) error {
	for catalogOrder, catalogKey := range payload.Menu.keys {
		var catalog catalogSeed
		if err := json.Unmarshal(payload.Menu.values[catalogKey], &catalog); err != nil {
			return fmt.Errorf("decode catalog %q: %w", catalogKey, err)
		}

		catalogID, err := s.Querier.UpsertMenuCatalog(ctx, catalogKey, catalog.PageTitle, catalog.Subtitle, int32(catalogOrder+1))
		if err != nil {
			return fmt.Errorf("upsert catalog %q: %w", catalogKey, err)
		}

		for blockOrder, block := range catalog.IntroBlocks {
			blockID, err := s.Querier.UpsertIntroBlock(ctx, catalogID, block.Title, int32(blockOrder+1))
			if err != nil {
				return fmt.Errorf("upsert intro block %q: %w", catalogKey, err)
			}
			for bulletOrder, bullet := range block.Bullets {
				if err := s.Querier.UpsertIntroBullet(ctx, blockID, bullet, int32(bulletOrder+1)); err != nil {
					return fmt.Errorf("upsert intro bullet %q: %w", catalogKey, err)
				}
			}
		}

		isTogo := strings.ToLower(strings.TrimSpace(catalogKey)) == catalogKeyTogo
		for sectionOrder, section := range catalog.Sections {
			if err := s.seedSection(ctx, catalogID, section, int32(sectionOrder+1), isTogo, records, itemIDs, groupIDs); err != nil {
				return fmt.Errorf("seed section %q/%q: %w", catalogKey, section.SectionID, err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedSection(
	ctx context.Context,
	catalogID int64,
	section sectionSeed,
	displayOrder int32,
	isTogo bool,
	records itemRecordSet,
	itemIDs map[string]int64,
	groupIDs map[string]int64,
) error {
	price := NormalizePriceFields(section.Price, section.priceMeta())
	sectionID, err := s.Querier.UpsertMenuSection(ctx, sqlgen.UpsertMenuSectionParams{
		CatalogID:      catalogID,
		SectionKey:     section.SectionID,
		SectionType:    section.Type,
		Title:          section.Title,
		Description:    section.Description,
		Price:          price.Price,
		PriceAmountMin: price.AmountMin,
		PriceAmountMax: price.AmountMax,
		PriceCurrency:  price.Currency,
		PriceUnit:      price.Unit,
		Category:       section.Category,
		CourseType:     section.CourseType,
		DisplayOrder:   displayOrder,
	})
	if err != nil {
		return fmt.Errorf("upsert section: %w", err)
	}

	for constraintKey, limits := range section.Constraints {
		var minSelect, maxSelect int
		switch bounds := limits.(type) {
		case float64:
			value, ok := intFromAny(bounds)
			if !ok {
				continue
			}
			maxSelect = value
		case map[string]any:
			minSelect, _ = intFromAny(bounds["min"])
			maxSelect, _ = intFromAny(bounds["max"])
		default:
			continue
		}
		if err := s.Querier.UpsertSectionConstraint(ctx, sectionID, constraintKey, int32(minSelect), int32(maxSelect)); err != nil {
			return fmt.Errorf("upsert section constraint %q: %w", constraintKey, err)
		}
	}

	for colOrder, label := range section.Columns {
		if err := s.Querier.UpsertSectionColumn(ctx, sectionID, label, int32(colOrder+1)); err != nil {
			return fmt.Errorf("upsert section column %q: %w", label, err)
		}
	}

	for rowOrder, row := range section.Rows {
		if len(row) == 0 {
			continue
		}
		itemName := stringFromAny(row[0])
		itemID, ok := itemIDs[itemName]
		if !ok {
			continue
		}
		var value1, value2 *string
		if len(row) > 1 {
			value1 = trayPriceFromAny(row[1])
		}
		if len(row) > 2 {
			value2 = trayPriceFromAny(row[2])
		}
		if isTogo {
			// Togo rows prefer the item's merged tray prices over the row
			// literals, so admin price edits survive a reseed.
			if record, ok := records[itemName]; ok {
				if record.trayHalf != nil {
					value1 = record.trayHalf
				}
				if record.trayFull != nil {
					value2 = record.trayFull
				}
			}
		}
		err := s.Querier.UpsertSectionRow(ctx, sqlgen.UpsertSectionRowParams{
			SectionID:    sectionID,
			ItemID:       itemID,
			Value1:       value1,
			Value2:       value2,
			DisplayOrder: int32(rowOrder + 1),
		})
		if err != nil {
			return fmt.Errorf("upsert section row %q: %w", itemName, err)
		}
	}

	for includeOrder, includeKey := range section.IncludeKeys {
		groupID, ok := groupIDs[includeKey]
		if !ok {
			id, err := s.Querier.OptionGroupIDByKey(ctx, includeKey)
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			if err != nil {
				return fmt.Errorf("resolve include group %q: %w", includeKey, err)
			}
			groupID = id
			groupIDs[includeKey] = id
		}
		if err := s.Querier.UpsertSectionIncludeGroup(ctx, sectionID, groupID, int32(includeOrder+1)); err != nil {
			return fmt.Errorf("upsert include group %q: %w", includeKey, err)
		}
	}

	for tierOrder, tier := range section.Tiers {
		if err := s.seedTier(ctx, sectionID, tier, int32(tierOrder+1), itemIDs); err != nil {
			return fmt.Errorf("seed tier %q: %w", tier.TierTitle, err)
		}
	}
	return nil
}

func (s *Seeder) seedTier(ctx context.Context, sectionID int64, tier tierSeed, displayOrder int32, itemIDs map[string]int64) error {
	price := NormalizePriceFields(tier.Price, tier.priceMeta())
	tierID, err := s.Querier.UpsertSectionTier(ctx, sqlgen.UpsertSectionTierParams{
		SectionID:      sectionID,
		TierTitle:      tier.TierTitle,
		Price:          price.Price,
		PriceAmountMin: price.AmountMin,
		PriceAmountMax: price.AmountMax,
		PriceCurrency:  price.Currency,
		PriceUnit:      price.Unit,
		DisplayOrder:   displayOrder,
	})
	if err != nil {
		return fmt.Errorf("upsert tier: %w", err)
	}

	for constraintKey, raw := range tier.Constraints {
		var minSelect, maxSelect *int
		switch bounds := raw.(type) {
		case float64:
			if value, ok := intFromAny(bounds); ok {
				minSelect = &value
				maxValue := value
				maxSelect = &maxValue
			}
		case map[string]any:
			if value, ok := intFromAny(bounds["min"]); ok {
				minSelect = &value
			}
			if value, ok := intFromAny(bounds["max"]); ok {
				maxSelect = &value
			}
		}
		if minSelect == nil && maxSelect == nil {
			continue
		}
		if minSelect == nil {
			minSelect = maxSelect
		}
		if maxSelect == nil {
			maxSelect = minSelect
		}
		if err := s.Querier.UpsertTierConstraint(ctx, tierID, constraintKey, int32(*minSelect), int32(*maxSelect)); err != nil {
			return fmt.Errorf("upsert tier constraint %q: %w", constraintKey, err)
		}
	}

	for bulletOrder, bullet := range tier.Bullets {
		params := sqlgen.UpsertTierBulletParams{
			TierID:       tierID,
			DisplayOrder: int32(bulletOrder + 1),
		}
		if itemID, ok := itemIDs[bullet]; ok {
			params.ItemID = &itemID
		} else {
			text := bullet
			params.BulletText = &text
		}
		if err := s.Querier.UpsertTierBullet(ctx, params); err != nil {
			return fmt.Errorf("upsert tier bullet: %w", err)
		}
	}
	return nil
}
