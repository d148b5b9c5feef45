package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"jane@x.com",
		"jane.doe@example.co.uk",
		"jane-doe@sub.example.com",
		"j_doe1@example.io",
	}
	for _, email := range valid {
		require.True(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"jane@",
		"@x.com",
		"jane@x",
		"jane doe@x.com",
	}
	for _, email := range invalid {
		require.False(t, ValidateEmail(email), email)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+15551234567",
		"15551234567",
		"+79991234567",
		"4915123456789",
		"+1234567890123456",
	}
	for _, phone := range valid {
		require.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"+",
		"0551234567",
		"555-123-4567",
		"+1 555 123",
		"+12345678901234567",
		"phone",
	}
	for _, phone := range invalid {
		require.False(t, ValidatePhone(phone), phone)
	}
}

func TestSanitizeInput(t *testing.T) {
	require.Equal(t, "Jane Doe", SanitizeInput("  Jane Doe  "))
	require.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", SanitizeInput("<script>alert(1)</script>"))
	require.Equal(t, "Tom &amp; Jerry", SanitizeInput("Tom & Jerry"))
	require.Equal(t, "&quot;quoted&quot; &#39;text&#39;", SanitizeInput(`"quoted" 'text'`))
	require.Equal(t, "", SanitizeInput("   "))
}
