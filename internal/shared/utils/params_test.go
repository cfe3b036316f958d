package utils

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

func TestParseIDParam(t *testing.T) {
	c := newQueryContext("")
	c.Params = append(c.Params, gin.Param{Key: "id", Value: "42"})
	id, err := ParseIDParam(c, "id", "ticket")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		c := newQueryContext("")
		c.Params = append(c.Params, gin.Param{Key: "id", Value: raw})
		_, err := ParseIDParam(c, "id", "ticket")
		assert.True(t, errors.IsValidationError(err), raw)
	}
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc":  "abc",
		"bearer  abc": "abc",
		"Basic abc":   "",
		"abc":         "",
		"":            "",
	}
	for header, want := range tests {
		c := newQueryContext("")
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, BearerToken(c), header)
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("end_date", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalDate("end_date", "2026-03-01T10:00:00Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Hour())

	_, err = ParseOptionalDate("end_date", "03/01/2026")
	assert.True(t, errors.IsValidationError(err))
}
