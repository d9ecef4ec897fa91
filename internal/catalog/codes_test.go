package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelsTableOrderAndOmission(t *testing.T) {
	// codes out of order, one unknown; labels come back in table order
	got := Colors.Labels([]int{12, 99, 10})
	assert.Equal(t, []string{"Black", "Red"}, got)

	assert.Nil(t, Types.Labels(nil))
	assert.Nil(t, Audience.Labels([]int{42}))
}

func TestCodeLabelRoundTrip(t *testing.T) {
	codes := []int{10, 12}
	for _, label := range Colors.Labels(codes) {
		code, ok := Colors.Code(label)
		require.True(t, ok, "label %q should resolve", label)
		assert.Contains(t, codes, code)
	}

	_, ok := Colors.Code("Chartreuse")
	assert.False(t, ok)
}

func TestKnownCode(t *testing.T) {
	for code := 1; code <= 15; code++ {
		assert.True(t, KnownCode(code), "code %d", code)
	}
	assert.False(t, KnownCode(0))
	assert.False(t, KnownCode(16))
}

func TestConditionMapping(t *testing.T) {
	assert.Equal(t, "Brand New", ConditionLabel("new"))
	assert.Equal(t, "Used – Fair", ConditionLabel("worn"))
	assert.Equal(t, "", ConditionLabel("mint"))

	for _, label := range ConditionLabels() {
		tag, ok := ConditionTag(label)
		require.True(t, ok)
		assert.Equal(t, label, ConditionLabel(tag))
	}
}
