package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ListingInput {
	return ListingInput{
		OwnerID:    "ava@test.io",
		Title:      "Wool Peacoat",
		Condition:  "excellent",
		Size:       "Medium",
		Price:      48,
		ForSale:    true,
		Images:     []string{"/media/1/a.jpg"},
		Categories: []int{1, 6, 13},
	}
}

func TestListingValid(t *testing.T) {
	v := New()
	assert.Nil(t, v.Listing(validInput()))
}

func TestListingFieldErrors(t *testing.T) {
	v := New()

	in := validInput()
	in.Title = ""
	in.Price = -1
	in.Condition = "mint"
	fields := v.Listing(in)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "item_condition")
}

func TestListingRejectsUnknownCategoryCode(t *testing.T) {
	v := New()
	in := validInput()
	in.Categories = []int{1, 99}
	fields := v.Listing(in)
	require.NotNil(t, fields)
	assert.NotEmpty(t, fields)
}

func TestListingRejectsBlankFirstImage(t *testing.T) {
	v := New()
	in := validInput()
	in.Images = []string{"   ", "/media/1/b.jpg"}
	fields := v.Listing(in)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "images")
}

func TestUserInput(t *testing.T) {
	v := New()
	assert.Nil(t, v.Fields(UserInput{Email: "ava@test.io", FirstName: "Ava", LastName: "Nguyen"}))

	fields := v.Fields(UserInput{Email: "not-an-email"})
	require.NotNil(t, fields)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
}
