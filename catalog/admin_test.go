package catalog

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"

	"post-catering/outbound/sqlgen"
)

type AdminTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Admin *Admin
}

func (s *AdminTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}
	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	assembler := NewAssembler(s.Querier, true)
	store := NewPayloadStore(viper.New(), assembler, s.Querier, nil)
	s.Admin = NewAdmin(s.Querier, store, true)
}

func (s *AdminTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestAdminTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}

func (s *AdminTestSuite) TestAdminRawItemsShapes() {
	tests := []struct {
		name    string
		payload any
		count   int
		ok      bool
	}{
		{name: "nil payload", payload: nil, ok: false},
		{name: "scalar payload", payload: "brisket", ok: false},
		{name: "bare list", payload: []any{map[string]any{"name": "Brisket"}}, count: 1, ok: true},
		{name: "empty list", payload: []any{}, ok: false},
		{name: "wrapper object", payload: map[string]any{"items": []any{map[string]any{}, map[string]any{}}}, count: 2, ok: true},
		{name: "wrapper with empty items", payload: map[string]any{"items": []any{}}, ok: false},
		{name: "single item object", payload: map[string]any{"name": "Brisket"}, count: 1, ok: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			items, ok := adminRawItems(tc.payload)
			s.Equal(tc.ok, ok)
			if tc.ok {
				s.Len(items, tc.count)
			}
		})
	}
}

func (s *AdminTestSuite) TestNormalizeAdminItem() {
	item, problem := normalizeAdminItem(map[string]any{
		"name":      "  Mac & Cheese  ",
		"itemType":  "Sides",
		"category":  "sides",
		"is_active": "no",
		"trayPrices": map[string]any{
			"half_tray": 45.0,
			"full_tray": "85",
		},
	}, 0)

	s.Empty(problem)
	s.Equal("Mac & Cheese", item.itemName)
	s.Equal("mac_cheese", item.itemKey)
	s.Equal("sides", item.itemType)
	s.Equal("sides", item.itemCategory)
	s.Equal(0, item.isActive)
	s.Equal("45", *item.trayHalf)
	s.Equal("85", *item.trayFull)
}

func (s *AdminTestSuite) TestNormalizeAdminItemFallbacks() {
	item, problem := normalizeAdminItem(map[string]any{"name": "Sweet Tea"}, 2)

	s.Empty(problem)
	s.Equal("sweet_tea", item.itemKey)
	s.Equal("general", item.itemType)
	s.Equal("other", item.itemCategory)
	s.Equal(1, item.isActive)
	s.Nil(item.trayHalf)
	s.Nil(item.trayFull)
}

func (s *AdminTestSuite) TestMatchScore() {
	s.Equal(100, matchScore("Sides", "sides"))
	s.Equal(100, matchScore("passedAppetizers", "passed_appetizers"))
	s.Equal(50, matchScore("sides_salads", "sides"))
	s.Equal(0, matchScore("desserts", "entrees"))
	s.Equal(0, matchScore("", "entrees"))
}

func (s *AdminTestSuite) TestCheckGroupConflict() {
	conflictColumns := []string{"category_a", "category_b"}

	s.Run("conflicting pair is rejected both ways", func() {
		s.PgxMock.ExpectQuery(`FROM menu_group_conflicts`).
			WillReturnRows(pgxmock.NewRows(conflictColumns).AddRow("sides", "salads"))
		s.PgxMock.ExpectQuery(`SELECT DISTINCT g.category`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"category"}).AddRow("Salads"))

		err := s.Admin.checkGroupConflict(context.Background(), 7, "Potato Salad", "sides")

		var conflict *GroupConflictError
		s.ErrorAs(err, &conflict)
		s.Equal(`Item "Potato Salad" cannot join the "sides" group: it conflicts with the item's existing "salads" group.`, err.Error())
	})

	s.Run("unrelated categories pass", func() {
		s.PgxMock.ExpectQuery(`FROM menu_group_conflicts`).
			WillReturnRows(pgxmock.NewRows(conflictColumns).AddRow("sides", "salads"))
		s.PgxMock.ExpectQuery(`SELECT DISTINCT g.category`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"category"}).AddRow("entrees"))

		s.NoError(s.Admin.checkGroupConflict(context.Background(), 7, "Potato Salad", "sides"))
	})

	s.Run("empty conflict table short-circuits", func() {
		s.PgxMock.ExpectQuery(`FROM menu_group_conflicts`).
			WillReturnRows(pgxmock.NewRows(conflictColumns))

		s.NoError(s.Admin.checkGroupConflict(context.Background(), 7, "Potato Salad", "sides"))
	})

	s.Run("blank target category skips the lookup", func() {
		s.NoError(s.Admin.checkGroupConflict(context.Background(), 7, "Potato Salad", ""))
	})

	s.NoError(s.PgxMock.ExpectationsWereMet())
}
