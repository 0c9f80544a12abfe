package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusLabels(t *testing.T) {
	labels := parseStatusLabels("pending=0, approved=1 ,rejected=2")
	assert.Equal(t, map[string]int{"pending": 0, "approved": 1, "rejected": 2}, labels)
}

func TestParseStatusLabelsSkipsInvalidPairs(t *testing.T) {
	labels := parseStatusLabels("ok=1,broken,alsobad=x,=3")
	assert.Equal(t, map[string]int{"ok": 1}, labels)
}

func TestParseStatusLabelsFallsBackToDefaults(t *testing.T) {
	for _, input := range []string{"", "garbage", "x=y"} {
		labels := parseStatusLabels(input)
		assert.Equal(t, DefaultStatusLabels, labels, "input %q", input)
	}
}

func TestDefaultStatusLabelsMatchStateCodes(t *testing.T) {
	assert.Equal(t, 0, DefaultStatusLabels["待审核"])
	assert.Equal(t, 1, DefaultStatusLabels["已通过"])
	assert.Equal(t, 2, DefaultStatusLabels["已驳回"])
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Equal(t, []string{"a", "b"}, parseList(" a , b ,"))
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.True(t, (&Config{Environment: " Production "}).IsProduction())
	assert.False(t, (&Config{Environment: "development"}).IsProduction())
}
