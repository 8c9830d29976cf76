package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClassifyTestSuite struct {
	suite.Suite
}

func TestClassifyTestSuite(t *testing.T) {
	suite.Run(t, new(ClassifyTestSuite))
}

func (s *ClassifyTestSuite) TestSlug() {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "simple", value: "Pulled Pork", expected: "pulled_pork"},
		{name: "punctuation", value: "Mac & Cheese!", expected: "mac_cheese"},
		{name: "leading and trailing noise", value: "  --Brisket--  ", expected: "brisket"},
		{name: "empty", value: "", expected: ""},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, Slug(tc.value))
		})
	}
}

func (s *ClassifyTestSuite) TestSlugCapsLength() {
	long := ""
	for range 20 {
		long += "abcdefghij"
	}
	s.Len(Slug(long), 120)
}

func (s *ClassifyTestSuite) TestNormalizeClassification() {
	tests := []struct {
		name     string
		value    string
		fallback string
		expected string
	}{
		{name: "camel case", value: "passedAppetizers", fallback: "other", expected: "passed_appetizers"},
		{name: "snake case", value: "passed_appetizers", fallback: "other", expected: "passed_appetizers"},
		{name: "spaced", value: "Passed Appetizers", fallback: "other", expected: "passed_appetizers"},
		{name: "blank falls back", value: "  ", fallback: "other", expected: "other"},
		{name: "symbols only fall back", value: "!!!", fallback: "general", expected: "general"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, NormalizeClassification(tc.value, tc.fallback))
		})
	}
}

func (s *ClassifyTestSuite) TestCoerceActiveFlag() {
	s.Equal(1, coerceActiveFlag(nil, true))
	s.Equal(0, coerceActiveFlag(nil, false))
	s.Equal(1, coerceActiveFlag(true, false))
	s.Equal(0, coerceActiveFlag(false, true))
	s.Equal(1, coerceActiveFlag(1.0, false))
	s.Equal(0, coerceActiveFlag(0.0, true))
	s.Equal(1, coerceActiveFlag("yes", false))
	s.Equal(0, coerceActiveFlag("off", true))
	s.Equal(1, coerceActiveFlag("maybe", true))
}

func (s *ClassifyTestSuite) TestTrayPriceFromAny() {
	s.Equal("$45", *trayPriceFromAny(" $45 "))
	s.Equal("45.5", *trayPriceFromAny(45.5))
	s.Nil(trayPriceFromAny(""))
	s.Nil(trayPriceFromAny(true))
	s.Nil(trayPriceFromAny(nil))
}

func (s *ClassifyTestSuite) TestBuildItemRefOverrides() {
	active := true
	half := "$40"
	override := "$55"

	ref := buildItemRef(7, "Brisket", strPtr("entrees"), strPtr("entrees"), &active, &half, nil, &override, nil)

	s.Equal(int64(7), ref.ItemID)
	s.Equal("Brisket", ref.ItemName)
	s.Equal("entrees", ref.ItemType)
	s.Equal(1, ref.IsActive)
	s.Equal("$55", *ref.TrayPrices.Half)
	s.Nil(ref.TrayPrices.Full)
}

func (s *ClassifyTestSuite) TestBuildItemRefDefaults() {
	ref := buildItemRef(3, "Mystery Dish", nil, nil, nil, nil, nil, nil, nil)

	s.Equal("general", ref.ItemType)
	s.Equal("other", ref.ItemCategory)
	s.Equal(1, ref.IsActive)
}
