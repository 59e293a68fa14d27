package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("accepted formats", func(t *testing.T) {
		for _, value := range []string{"2000-01-15", " 2000-01-15 ", "2000-01-15T10:30", "2000-01-15T10:30:00Z"} {
			got, ok := validator.ParseDate(value)
			require.True(t, ok, "should parse %q", value)
			assert.Equal(t, 2000, got.Year())
			assert.Equal(t, time.January, got.Month())
			assert.Equal(t, 15, got.Day())
		}
	})

	t.Run("rejected values", func(t *testing.T) {
		for _, value := range []string{"", "   ", "15/01/2000", "2000-13-01", "2001-02-29", "yesterday"} {
			_, ok := validator.ParseDate(value)
			assert.False(t, ok, "should not parse %q", value)
		}
	})
}

func TestAge(t *testing.T) {
	t.Parallel()

	birth := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"birthday today", time.Date(2018, time.June, 15, 0, 0, 0, 0, time.UTC), 18},
		{"day before birthday", time.Date(2018, time.June, 14, 23, 59, 0, 0, time.UTC), 17},
		{"month before birthday", time.Date(2018, time.May, 30, 0, 0, 0, 0, time.UTC), 17},
		{"after birthday", time.Date(2018, time.December, 1, 0, 0, 0, 0, time.UTC), 18},
		{"future birthdate", time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Age(birth, tt.now))
		})
	}

	t.Run("leap day birthday", func(t *testing.T) {
		leap := time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 17, validator.Age(leap, time.Date(2018, time.February, 28, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, 18, validator.Age(leap, time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.ValidDate("dob", "1990-05-01")))

	err := validator.Apply(validator.ValidDate("dob", "not a date"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, validator.ErrFormatInvalid))
}

func TestMinAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	t.Run("exactly eighteen", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.MinAge("dob", "2008-10-19", 18, now)))
	})

	t.Run("one day short", func(t *testing.T) {
		err := validator.Apply(validator.MinAge("dob", "2008-10-20", 18, now))
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrConstraintUnmet))

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, "validation.min_age", verrs[0].TranslationKey)
		assert.Equal(t, 18, verrs[0].TranslationValues["min_age"])
	})

	t.Run("year one is a real date", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.MinAge("dob", "0001-01-01", 18, now)))
	})

	t.Run("unparsable or empty", func(t *testing.T) {
		for _, value := range []string{"", "not a date", "2008-13-01"} {
			assert.Error(t, validator.Apply(validator.MinAge("dob", value, 18, now)), value)
		}
	})
}
