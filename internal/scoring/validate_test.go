package scoring

import "testing"

// TestIsValidPhone verifies the 10-15 digit rule after stripping formatting.
func TestIsValidPhone(t *testing.T) {
	testCases := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "us number with punctuation", phone: "(415) 555-0134", want: true},
		{name: "international with plus", phone: "+44 20 7946 0958", want: true},
		{name: "fifteen digits", phone: "123456789012345", want: true},
		{name: "sixteen digits", phone: "1234567890123456", want: false},
		{name: "nine digits", phone: "123456789", want: false},
		{name: "letters only", phone: "call me", want: false},
		{name: "empty", phone: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidPhone(tc.phone); got != tc.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tc.phone, got, tc.want)
			}
		})
	}
}

// TestIsValidWebsite verifies the scheme-plus-dot rule.
func TestIsValidWebsite(t *testing.T) {
	testCases := []struct {
		name    string
		website string
		want    bool
	}{
		{name: "https url", website: "https://example.com", want: true},
		{name: "http url", website: "http://shop.example.co.uk/path", want: true},
		{name: "missing scheme", website: "example.com", want: false},
		{name: "scheme without dot", website: "https://localhost", want: false},
		{name: "ftp scheme", website: "ftp://example.com", want: false},
		{name: "empty", website: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidWebsite(tc.website); got != tc.want {
				t.Errorf("IsValidWebsite(%q) = %v, want %v", tc.website, got, tc.want)
			}
		})
	}
}
