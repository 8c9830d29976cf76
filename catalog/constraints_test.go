package catalog

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"

	"post-catering/model"
	"post-catering/outbound/sqlgen"
)

func int32Ptr(v int32) *int32 { return &v }

type ConstraintsTestSuite struct {
	suite.Suite
}

func TestConstraintsTestSuite(t *testing.T) {
	suite.Run(t, new(ConstraintsTestSuite))
}

func (s *ConstraintsTestSuite) TestNormalizeTierConstraintsModernRows() {
	constraints := NormalizeTierConstraints([]TierConstraintRow{
		{Key: "entrees", MinSelect: int32Ptr(1), MaxSelect: int32Ptr(2)},
		{Key: "sides", MinSelect: int32Ptr(2), MaxSelect: int32Ptr(2)},
	})

	s.Equal(map[string]model.MinMax{
		"entrees": {Min: 1, Max: 2},
		"sides":   {Min: 2, Max: 2},
	}, constraints)
}

func (s *ConstraintsTestSuite) TestNormalizeTierConstraintsSuffixRows() {
	constraints := NormalizeTierConstraints([]TierConstraintRow{
		{Key: "entrees_min", LegacyValue: int32Ptr(1)},
		{Key: "entrees_max", LegacyValue: int32Ptr(3)},
	})

	s.Equal(map[string]model.MinMax{"entrees": {Min: 1, Max: 3}}, constraints)
}

func (s *ConstraintsTestSuite) TestNormalizeTierConstraintsLegacyValueFill() {
	constraints := NormalizeTierConstraints([]TierConstraintRow{
		{Key: "sides", LegacyValue: int32Ptr(3)},
		{Key: "entrees", MinSelect: int32Ptr(0), MaxSelect: int32Ptr(0), LegacyValue: int32Ptr(2)},
	})

	s.Equal(map[string]model.MinMax{
		"sides":   {Min: 3, Max: 3},
		"entrees": {Min: 2, Max: 2},
	}, constraints)
}

func (s *ConstraintsTestSuite) TestNormalizeTierConstraintsSkipsBlankKeys() {
	constraints := NormalizeTierConstraints([]TierConstraintRow{
		{Key: "  ", MinSelect: int32Ptr(1)},
	})
	s.Empty(constraints)
}

func (s *ConstraintsTestSuite) TestNormalizePayloadConstraints() {
	constraints := NormalizePayloadConstraints(map[string]any{
		"entrees": 2.0,
		"salads":  map[string]any{"min": 1.0, "max": 3.0},
		"noise":   "two",
		"partial": 1.5,
	})

	s.Equal(map[string]model.MinMax{
		"entrees": {Min: 2, Max: 2},
		"salads":  {Min: 1, Max: 3},
	}, constraints)
}

func (s *ConstraintsTestSuite) TestNormalizePayloadConstraintsSidesSaladsAlias() {
	constraints := NormalizePayloadConstraints(map[string]any{
		"sides_salads": map[string]any{"min": 2.0, "max": 2.0},
	})
	s.Equal(map[string]model.MinMax{"sides": {Min: 2, Max: 2}}, constraints)

	constraints = NormalizePayloadConstraints(map[string]any{
		"sides_salads": map[string]any{"min": 2.0, "max": 2.0},
		"sides":        1.0,
	})
	s.Equal(map[string]model.MinMax{
		"sides_salads": {Min: 2, Max: 2},
		"sides":        {Min: 1, Max: 1},
	}, constraints)
}

func (s *ConstraintsTestSuite) TestCategoryCandidates() {
	s.Equal(map[string]struct{}{"entrees": {}}, CategoryCandidates("Entrees"))
	s.Equal(map[string]struct{}{"sides": {}, "sides_salads": {}}, CategoryCandidates("sides"))
	s.Equal(map[string]struct{}{"sides_salads": {}, "sides": {}, "salads": {}}, CategoryCandidates("sides_salads"))
	s.Empty(CategoryCandidates("  "))
}

func (s *ConstraintsTestSuite) TestValidateSelectionCounts() {
	items := []model.DesiredMenuItem{
		{Name: "Brisket", Category: "entrees"},
		{Name: "Mac & Cheese", Category: "sides"},
		{Name: "Caesar", Category: "salads"},
	}

	errors := ValidateSelectionCounts(items, map[string]model.MinMax{
		"entrees":      {Min: 2, Max: 0},
		"sides_salads": {Min: 0, Max: 1},
	})

	s.Equal([]string{
		"Please select at least 2 entrees item(s).",
		"Please select no more than 1 sides_salads item(s).",
	}, errors)
}

func (s *ConstraintsTestSuite) TestValidateSelectionCountsNoConstraints() {
	items := []model.DesiredMenuItem{{Name: "Brisket", Category: "entrees"}}
	s.Nil(ValidateSelectionCounts(items, nil))
}

func (s *ConstraintsTestSuite) TestValidateSelectionCountsSatisfied() {
	items := []model.DesiredMenuItem{
		{Name: "Brisket", Category: "Entrees"},
		{Name: "Pulled Pork", Category: "entrees"},
	}
	s.Empty(ValidateSelectionCounts(items, map[string]model.MinMax{"entrees": {Min: 1, Max: 2}}))
}

type ConstraintResolverTestSuite struct {
	suite.Suite

	PgxMock pgxmock.PgxPoolIface
	Querier *sqlgen.Queries
}

func (s *ConstraintResolverTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}
	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)
}

func (s *ConstraintResolverTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestConstraintResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ConstraintResolverTestSuite))
}

func (s *ConstraintResolverTestSuite) TestResolveFormalPlan() {
	s.PgxMock.ExpectQuery(`JOIN formal_plan_option_constraints c`).
		WithArgs("formal_plated").
		WillReturnRows(pgxmock.NewRows([]string{"constraint_key", "min_select", "max_select"}).
			AddRow("entrees", int32Ptr(1), int32Ptr(2)))

	resolver := NewConstraintResolver(s.Querier, true)
	constraints, err := resolver.Resolve(context.Background(), model.ServiceSelection{ID: "formal_plated"})

	s.NoError(err)
	s.Equal(map[string]model.MinMax{"entrees": {Min: 1, Max: 2}}, constraints)
	s.NoError(s.PgxMock.ExpectationsWereMet())
}

func (s *ConstraintResolverTestSuite) TestResolveTierAfterEmptyPlan() {
	s.PgxMock.ExpectQuery(`JOIN formal_plan_option_constraints c`).
		WithArgs("community_tiered").
		WillReturnRows(pgxmock.NewRows([]string{"constraint_key", "min_select", "max_select"}))
	s.PgxMock.ExpectQuery(`JOIN menu_section_tier_constraints c`).
		WithArgs("tiered_packages", "Tier 2").
		WillReturnRows(pgxmock.NewRows([]string{"constraint_key", "min_select", "max_select", "constraint_value"}).
			AddRow("sides_salads", int32Ptr(2), int32Ptr(2), nil))

	resolver := NewConstraintResolver(s.Querier, true)
	constraints, err := resolver.Resolve(context.Background(), model.ServiceSelection{
		ID:        "community_tiered",
		Level:     "Tier",
		SectionID: "tiered_packages",
		Title:     "Tier 2",
	})

	s.NoError(err)
	s.Equal(map[string]model.MinMax{"sides": {Min: 2, Max: 2}}, constraints)
	s.NoError(s.PgxMock.ExpectationsWereMet())
}

func (s *ConstraintResolverTestSuite) TestResolveTierLegacyColumns() {
	s.PgxMock.ExpectQuery(`JOIN menu_section_tier_constraints c`).
		WithArgs("tiered_packages", "Tier 1").
		WillReturnRows(pgxmock.NewRows([]string{"constraint_key", "constraint_value"}).
			AddRow("entrees", int32Ptr(2)))

	resolver := NewConstraintResolver(s.Querier, false)
	constraints, err := resolver.Resolve(context.Background(), model.ServiceSelection{
		Level:     "tier",
		SectionID: "tiered_packages",
		Title:     "Tier 1",
	})

	s.NoError(err)
	s.Equal(map[string]model.MinMax{"entrees": {Min: 2, Max: 2}}, constraints)
	s.NoError(s.PgxMock.ExpectationsWereMet())
}

func (s *ConstraintResolverTestSuite) TestResolveSectionPackage() {
	s.PgxMock.ExpectQuery(`JOIN menu_section_constraints c`).
		WithArgs("backyard_bbq").
		WillReturnRows(pgxmock.NewRows([]string{"constraint_key", "min_select", "max_select"}).
			AddRow("entrees", int32Ptr(0), int32Ptr(3)))

	resolver := NewConstraintResolver(s.Querier, true)
	constraints, err := resolver.Resolve(context.Background(), model.ServiceSelection{
		Level:     "package",
		SectionID: "backyard_bbq",
	})

	s.NoError(err)
	s.Equal(map[string]model.MinMax{"entrees": {Min: 0, Max: 3}}, constraints)
	s.NoError(s.PgxMock.ExpectationsWereMet())
}

func (s *ConstraintResolverTestSuite) TestResolvePayloadFallback() {
	resolver := NewConstraintResolver(s.Querier, true)
	constraints, err := resolver.Resolve(context.Background(), model.ServiceSelection{
		Level:       "package",
		Constraints: map[string]any{"entrees": 2.0},
	})

	s.NoError(err)
	s.Equal(map[string]model.MinMax{"entrees": {Min: 2, Max: 2}}, constraints)
	s.NoError(s.PgxMock.ExpectationsWereMet())
}
