package catalog

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"

	"post-catering/outbound/sqlgen"
)

type SeedPayloadTestSuite struct {
	suite.Suite
}

func TestSeedPayloadTestSuite(t *testing.T) {
	suite.Run(t, new(SeedPayloadTestSuite))
}

func (s *SeedPayloadTestSuite) TestParseSeedPayloadKeepsObjectOrder() {
	payload, err := ParseSeedPayload([]byte(`{
		"MENU_OPTIONS": {
			"entrees": {"id": "entrees", "title": "Entrees", "items": ["Brisket"]},
			"appetizers": {"id": "appetizers", "title": "Appetizers", "items": []},
			"sides": {"id": "sides", "title": "Sides", "items": []}
		},
		"MENU": {
			"togo": {"pageTitle": "Togo"},
			"community": {"pageTitle": "Community"}
		}
	}`))

	s.NoError(err)
	s.Equal([]string{"entrees", "appetizers", "sides"}, payload.MenuOptions.keys)
	s.Equal([]string{"togo", "community"}, payload.Menu.keys)
}

func (s *SeedPayloadTestSuite) TestParseSeedPayloadLowercaseKeys() {
	payload, err := ParseSeedPayload([]byte(`{
		"menu_options": {"entrees": {"title": "Entrees"}},
		"formal_plan_options": [{"id": "formal_plated", "title": "Plated"}],
		"non_formal_items": [{"name": "Brisket"}]
	}`))

	s.NoError(err)
	s.Equal([]string{"entrees"}, payload.MenuOptions.keys)
	s.Len(payload.FormalPlanOptions, 1)
	s.Len(payload.NonFormalItems, 1)
}

func (s *SeedPayloadTestSuite) TestCollectItemRecordsMergesMentions() {
	payload, err := ParseSeedPayload([]byte(`{
		"menu_options": {
			"entrees": {"category": "entrees", "title": "Entrees", "items": ["Brisket", "Pulled Pork"]}
		},
		"menu": {
			"togo": {
				"sections": [{
					"sectionId": "togo_entrees",
					"category": "entrees",
					"title": "Entrees",
					"rows": [["Brisket", "$40", "$75"]]
				}]
			},
			"formal": {
				"sections": [{
					"sectionId": "plans",
					"courseType": "entrees",
					"title": "Plans",
					"tiers": [{"tierTitle": "Tier 1", "bullets": ["Salmon"]}]
				}]
			}
		},
		"non_formal_items": [
			{"name": "Brisket", "item_type": "smoked", "tray_prices": {"half": "$38"}, "is_active": false}
		]
	}`))
	s.NoError(err)

	records := collectItemRecords(payload, extractNonFormalItems(payload.NonFormalItems))
	s.Len(records, 3)

	brisket := records["Brisket"]
	// Non-formal entry sets the type first, so later hints do not replace it.
	s.Equal("smoked", brisket.itemType)
	s.Equal("entrees", brisket.itemCategory)
	// The togo row mention is active, and the widest flag wins.
	s.Equal(1, brisket.isActive)
	// The togo row price overwrites the earlier non-formal price.
	s.Equal("$40", *brisket.trayHalf)
	s.Equal("$75", *brisket.trayFull)

	salmon := records["Salmon"]
	s.Equal("entrees", salmon.itemType)
	s.Equal("entrees", salmon.itemCategory)

	pulledPork := records["Pulled Pork"]
	s.Equal("entrees", pulledPork.itemType)
	s.Nil(pulledPork.trayHalf)
}

func (s *SeedPayloadTestSuite) TestCollectItemRecordsSkipsNonFormalTierBullets() {
	payload, err := ParseSeedPayload([]byte(`{
		"menu": {
			"community": {
				"sections": [{
					"sectionId": "packages",
					"title": "Packages",
					"tiers": [{"tierTitle": "Tier 1", "bullets": ["Choice of two sides"]}]
				}]
			}
		}
	}`))
	s.NoError(err)

	records := collectItemRecords(payload, nil)
	s.Empty(records)
}

type SeederTestSuite struct {
	suite.Suite

	PgxMock pgxmock.PgxPoolIface
	Querier *sqlgen.Queries
}

func (s *SeederTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}
	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)
}

func (s *SeederTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

func (s *SeederTestSuite) TestSeedFromPayload() {
	payload, err := ParseSeedPayload([]byte(`{
		"menu_options": {
			"entrees": {"id": "entrees", "category": "entrees", "title": "Entrees", "items": ["Brisket"]}
		},
		"menu": {
			"togo": {
				"pageTitle": "Togo Trays",
				"sections": [{
					"sectionId": "togo_entrees",
					"category": "entrees",
					"title": "Entrees",
					"columns": ["Item", "Half Tray", "Full Tray"],
					"rows": [["Brisket", "$40", "$75"]]
				}]
			}
		}
	}`))
	s.NoError(err)

	s.PgxMock.ExpectQuery(`INSERT INTO menu_items`).
		WithArgs("brisket", "Brisket", "entrees", "entrees", strPtr("$40"), strPtr("$75"), true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	s.PgxMock.ExpectQuery(`SELECT id, item_name FROM menu_items`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item_name"}).AddRow(int64(1), "Brisket"))
	s.PgxMock.ExpectQuery(`INSERT INTO menu_option_groups`).
		WithArgs("entrees", "entrees", "entrees", "Entrees", int32(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	s.PgxMock.ExpectExec(`INSERT INTO menu_option_group_items`).
		WithArgs(int64(10), int64(1), int32(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.PgxMock.ExpectQuery(`INSERT INTO menu_catalogs`).
		WithArgs("togo", "Togo Trays", "", int32(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(20)))
	s.PgxMock.ExpectQuery(`INSERT INTO menu_sections`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(30)))
	s.PgxMock.ExpectExec(`INSERT INTO menu_section_columns`).
		WithArgs(int64(30), "Item", int32(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.PgxMock.ExpectExec(`INSERT INTO menu_section_columns`).
		WithArgs(int64(30), "Half Tray", int32(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.PgxMock.ExpectExec(`INSERT INTO menu_section_columns`).
		WithArgs(int64(30), "Full Tray", int32(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	s.PgxMock.ExpectExec(`INSERT INTO menu_section_rows`).
		WithArgs(int64(30), int64(1), strPtr("$40"), strPtr("$75"), int32(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	seeder := NewSeeder(s.Querier, true)
	s.NoError(seeder.SeedFromPayload(context.Background(), payload))
	s.NoError(s.PgxMock.ExpectationsWereMet())
}

func (s *SeederTestSuite) TestSeedFromPayloadLegacyItemColumns() {
	payload, err := ParseSeedPayload([]byte(`{
		"non_formal_items": [{"name": "Brisket"}]
	}`))
	s.NoError(err)

	s.PgxMock.ExpectQuery(`INSERT INTO menu_items \(item_key, item_name, is_active\)`).
		WithArgs("brisket", "Brisket", true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	s.PgxMock.ExpectQuery(`SELECT id, item_name FROM menu_items`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item_name"}).AddRow(int64(1), "Brisket"))

	seeder := NewSeeder(s.Querier, false)
	s.NoError(seeder.SeedFromPayload(context.Background(), payload))
	s.NoError(s.PgxMock.ExpectationsWereMet())
}
