package domain

import "testing"

// TestFingerprint verifies the lowercase-underscore-join derivation.
func TestFingerprint(t *testing.T) {
	testCases := []struct {
		name      string
		business  string
		sourceURL string
		want      string
	}{
		{
			name:      "spaces become underscores",
			business:  "Golden Gate Dental",
			sourceURL: "https://maps.example.com/ggd",
			want:      "golden_gate_dental_https://maps.example.com/ggd",
		},
		{
			name:      "already lowercase",
			business:  "deli",
			sourceURL: "url",
			want:      "deli_url",
		},
		{
			name:      "empty source keeps trailing separator",
			business:  "Corner Shop",
			sourceURL: "",
			want:      "corner_shop_",
		},
		{
			name:      "surrounding whitespace trimmed",
			business:  "  Neat Cafe ",
			sourceURL: "u",
			want:      "neat_cafe_u",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fingerprint(tc.business, tc.sourceURL); got != tc.want {
				t.Errorf("Fingerprint = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestLeadStatusValid verifies lifecycle validation accepts known states only.
func TestLeadStatusValid(t *testing.T) {
	for _, s := range []LeadStatus{LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusRejected} {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	for _, s := range []LeadStatus{"", "archived", "NEW"} {
		if s.Valid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}
