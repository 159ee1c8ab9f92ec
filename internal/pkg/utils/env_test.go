package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SPSNS_TEST_STRING", "value")
	t.Setenv("SPSNS_TEST_INT", "42")
	t.Setenv("SPSNS_TEST_BAD_INT", "forty")
	t.Setenv("SPSNS_TEST_BOOL", "true")
	t.Setenv("SPSNS_TEST_SLICE", "http://a.test, ,http://b.test")

	assert.Equal(t, "value", GetEnvString("SPSNS_TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("SPSNS_TEST_MISSING", "default"))
	assert.Equal(t, 42, GetEnvInt("SPSNS_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("SPSNS_TEST_BAD_INT", 1))
	assert.True(t, GetEnvBool("SPSNS_TEST_BOOL", false))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvStringSlice("SPSNS_TEST_SLICE", nil))
	assert.Equal(t, []string{"*"}, GetEnvStringSlice("SPSNS_TEST_MISSING", []string{"*"}))
}
