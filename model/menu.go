package model

// Wire shapes of the storefront catalog payload. Field names mirror what the
// storefront client consumes, so the JSON tags are load-bearing.

type TrayPrices struct {
	Half *string `json:"half"`
	Full *string `json:"full"`
}

type ItemRef struct {
	ItemID       int64      `json:"itemId"`
	ItemName     string     `json:"itemName"`
	ItemType     string     `json:"itemType"`
	ItemCategory string     `json:"itemCategory"`
	IsActive     int        `json:"isActive"`
	TrayPrices   TrayPrices `json:"trayPrices"`
}

type OptionGroup struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	Title    string    `json:"title"`
	Items    []string  `json:"items"`
	ItemRefs []ItemRef `json:"itemRefs"`
}

type MinMax struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type PriceMeta struct {
	AmountMin *float64 `json:"amountMin"`
	AmountMax *float64 `json:"amountMax"`
	Currency  *string  `json:"currency"`
	Unit      *string  `json:"unit"`
}

type FormalPlanOption struct {
	ID          string            `json:"id"`
	Level       string            `json:"level"`
	Title       string            `json:"title"`
	Price       string            `json:"price,omitempty"`
	PriceMeta   *PriceMeta        `json:"priceMeta,omitempty"`
	Details     []string          `json:"details"`
	Constraints map[string]MinMax `json:"constraints"`
}

type IntroBlock struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type Tier struct {
	TierTitle   string            `json:"tierTitle"`
	Price       string            `json:"price,omitempty"`
	PriceMeta   *PriceMeta        `json:"priceMeta,omitempty"`
	Bullets     []string          `json:"bullets"`
	BulletItems []ItemRef         `json:"bulletItems,omitempty"`
	Constraints map[string]MinMax `json:"constraints,omitempty"`
}

type Section struct {
	SectionID   string            `json:"sectionId"`
	Type        string            `json:"type,omitempty"`
	CourseType  string            `json:"courseType,omitempty"`
	Category    string            `json:"category,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Price       string            `json:"price,omitempty"`
	PriceMeta   *PriceMeta        `json:"priceMeta,omitempty"`
	Columns     []string          `json:"columns,omitempty"`
	Rows        [][]any           `json:"rows,omitempty"`
	RowItems    []ItemRef         `json:"rowItems,omitempty"`
	Constraints map[string]MinMax `json:"constraints,omitempty"`
	IncludeKeys []string          `json:"includeKeys,omitempty"`
	Tiers       []*Tier           `json:"tiers,omitempty"`
}

type Catalog struct {
	PageTitle   string       `json:"pageTitle"`
	Subtitle    string       `json:"subtitle"`
	IntroBlocks []IntroBlock `json:"introBlocks,omitempty"`
	Sections    []*Section   `json:"sections,omitempty"`
}

// CatalogPayload is the nested structure the storefront expects, rebuilt on
// each read from the live relational schema.
type CatalogPayload struct {
	MenuOptions          map[string]*OptionGroup `json:"menu_options"`
	FormalPlanOptions    []*FormalPlanOption     `json:"formal_plan_options"`
	Menu                 map[string]*Catalog     `json:"menu"`
	SharedNonFormalItems []ItemRef               `json:"shared_non_formal_items,omitempty"`
}

// MenuItemRecord is one sellable item row in the unified item table.
type MenuItemRecord struct {
	ID            int64
	ItemKey       string
	ItemName      string
	ItemType      string
	ItemCategory  string
	TrayPriceHalf *string
	TrayPriceFull *string
	IsActive      bool
}
