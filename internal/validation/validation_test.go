package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmail("marla@example.com"))
	assert.NoError(t, ValidateEmail("a.b+tag@sub.example.org"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@domain"))
	assert.Error(t, ValidateEmail("two@@example.com"))
	assert.Error(t, ValidateEmail("spaces in@example.com"))
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateUsername("marla"))
	assert.NoError(t, ValidateUsername("user_name.42"))

	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 31)))
	assert.Error(t, ValidateUsername("has space"))
	assert.Error(t, ValidateUsername("emoji🙂"))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("longenough"))

	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 73)))
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePhone(""))
	assert.NoError(t, ValidatePhone("+1 (555) 867-5309"))
	assert.NoError(t, ValidatePhone("5558675309"))

	assert.Error(t, ValidatePhone("abc"))
	assert.Error(t, ValidatePhone("12"))
}

func TestValidateCommunityName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCommunityName("gophers"))
	assert.NoError(t, ValidateCommunityName("Home Cooking"))

	assert.Error(t, ValidateCommunityName("go"))
	assert.Error(t, ValidateCommunityName(strings.Repeat("g", 121)))
	assert.Error(t, ValidateCommunityName("admin"))
	assert.Error(t, ValidateCommunityName("  API  "))
}

func TestValidatePostTitle(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePostTitle("A perfectly fine title"))

	assert.Error(t, ValidatePostTitle(""))
	assert.Error(t, ValidatePostTitle("   "))
	assert.Error(t, ValidatePostTitle(strings.Repeat("t", 301)))
}

func TestValidateCommentContent(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCommentContent("nice post"))

	assert.Error(t, ValidateCommentContent(""))
	assert.Error(t, ValidateCommentContent("   "))
	assert.Error(t, ValidateCommentContent(strings.Repeat("c", 10001)))
}
