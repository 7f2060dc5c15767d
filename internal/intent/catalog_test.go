package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_CanonicalRequests(t *testing.T) {
	tests := []struct {
		request string
		want    string
	}{
		{"match an email", "email"},
		{"validate date MM/DD/YYYY", "date-mmddyyyy"},
		{"check ipv4 address", "ipv4"},
		{"us phone number", "us-phone"},
		{"http url", "url"},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			rule, ok := Detect(tt.request)
			require.True(t, ok)
			assert.Equal(t, tt.want, rule.Intent)
		})
	}
}

func TestDetect_CaseInsensitive(t *testing.T) {
	upper, ok := Detect("EMAIL")
	require.True(t, ok)
	lower, ok := Detect("email")
	require.True(t, ok)

	assert.Equal(t, lower, upper)
	assert.Equal(t, "email", upper.Intent)
}

func TestDetect_NoMatch(t *testing.T) {
	for _, request := range []string{"", "   ", "reverse a string", "date in a normal format", "phone number"} {
		rule, ok := Detect(request)
		assert.False(t, ok, "request %q", request)
		assert.Empty(t, rule.Intent)
	}
}

func TestDetect_FirstRuleWins(t *testing.T) {
	// Satisfies email, ipv4 and url at once.
	rule, ok := Detect("email me a url with an ipv4 host")
	require.True(t, ok)
	assert.Equal(t, "email", rule.Intent)

	rule, ok = Detect("url for ipv4")
	require.True(t, ok)
	assert.Equal(t, "ipv4", rule.Intent)
}

func TestDetect_PlainSubstring(t *testing.T) {
	// No word boundaries: "nonemail" still contains "email".
	rule, ok := Detect("nonemail")
	require.True(t, ok)
	assert.Equal(t, "email", rule.Intent)

	// "us" is found inside "status".
	rule, ok = Detect("phone status")
	require.True(t, ok)
	assert.Equal(t, "us-phone", rule.Intent)

	rule, ok = Detect("dates: mm/dd/yyyy")
	require.True(t, ok)
	assert.Equal(t, "date-mmddyyyy", rule.Intent)
}

func TestDetect_CustomCatalogOrder(t *testing.T) {
	c := Catalog{
		{Intent: "b", Keywords: []string{"x"}, Pattern: "b"},
		{Intent: "a", Keywords: []string{"x", "y"}, Pattern: "a"},
	}

	rule, ok := c.Detect("X and Y")
	require.True(t, ok)
	assert.Equal(t, "b", rule.Intent)

	_, ok = c.Detect("only y")
	assert.False(t, ok)
}

func TestDetect_Deterministic(t *testing.T) {
	first, ok1 := Detect("validate date MM/DD/YYYY")
	second, ok2 := Detect("validate date MM/DD/YYYY")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestDefault_Contents(t *testing.T) {
	c := Default()
	require.Len(t, c, 5)
	assert.Equal(t, []string{"email", "date-mmddyyyy", "ipv4", "us-phone", "url"}, c.Names())

	date, ok := c.Lookup("date-mmddyyyy")
	require.True(t, ok)
	assert.Equal(t, []string{"date", "mm/dd/yyyy"}, date.Keywords)
	assert.Equal(t, "Matches calendar dates in MM/DD/YYYY format.", date.Notes)

	phone, ok := c.Lookup("us-phone")
	require.True(t, ok)
	assert.Equal(t, []string{"phone", "us"}, phone.Keywords)

	_, ok = c.Lookup("EMAIL")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{
			name:    "no keywords",
			catalog: Catalog{{Intent: "a", Pattern: "a"}},
			wantErr: "no keywords",
		},
		{
			name: "duplicate intent",
			catalog: Catalog{
				{Intent: "a", Keywords: []string{"a"}, Pattern: "a"},
				{Intent: "a", Keywords: []string{"b"}, Pattern: "b"},
			},
			wantErr: "duplicate intent",
		},
		{
			name:    "uppercase keyword",
			catalog: Catalog{{Intent: "a", Keywords: []string{"Email"}, Pattern: "a"}},
			wantErr: "lowercase",
		},
		{
			name:    "bad pattern",
			catalog: Catalog{{Intent: "a", Keywords: []string{"a"}, Pattern: "(a"}},
			wantErr: "invalid pattern",
		},
		{
			name:    "empty intent",
			catalog: Catalog{{Keywords: []string{"a"}, Pattern: "a"}},
			wantErr: "empty intent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSupportedHint(t *testing.T) {
	assert.Equal(t, "email, date MM/DD/YYYY, IPv4, US phone, or URL", Default().SupportedHint())

	assert.Equal(t, "", Catalog{}.SupportedHint())
	assert.Equal(t, "x", Catalog{{Intent: "x"}}.SupportedHint())
	assert.Equal(t, "x or Y", Catalog{{Intent: "x"}, {Intent: "y", Hint: "Y"}}.SupportedHint())
}

func TestResult(t *testing.T) {
	rule, ok := Detect("http url")
	require.True(t, ok)

	r := rule.Result()
	assert.Equal(t, "url", r.Intent)
	assert.Equal(t, `^https?://[^\s/$.?#].[^\s]*$`, r.Pattern)
	assert.Equal(t, "Matches basic HTTP/HTTPS URLs.", r.Notes)

	results := Default().Results()
	require.Len(t, results, 5)
	assert.Equal(t, r, results[4])
}

func TestResolve(t *testing.T) {
	rule, err := Default().Resolve("us phone number")
	require.NoError(t, err)
	assert.Equal(t, "us-phone", rule.Intent)

	_, err = Default().Resolve("reverse a string")
	require.Error(t, err)

	var nm *NoMatchError
	require.ErrorAs(t, err, &nm)
	assert.Equal(t, "reverse a string", nm.Request)
	assert.Equal(t, "no supported pattern detected. Try email, date MM/DD/YYYY, IPv4, US phone, or URL.", err.Error())
}
