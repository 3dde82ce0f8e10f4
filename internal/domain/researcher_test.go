package domain

import "testing"

func TestResearcherInputValidate(t *testing.T) {
	testCases := []struct {
		name      string
		input     ResearcherInput
		wantField string
	}{
		{
			name:  "valid",
			input: ResearcherInput{Name: "Maria Santos", Email: "maria@example.org"},
		},
		{
			name:      "missing name",
			input:     ResearcherInput{Email: "maria@example.org"},
			wantField: "name",
		},
		{
			name:      "whitespace name",
			input:     ResearcherInput{Name: "   ", Email: "maria@example.org"},
			wantField: "name",
		},
		{
			name:      "missing email",
			input:     ResearcherInput{Name: "Maria Santos"},
			wantField: "email",
		},
		{
			name:      "email without domain",
			input:     ResearcherInput{Name: "Maria Santos", Email: "maria"},
			wantField: "email",
		},
		{
			name:      "email with display name rejected",
			input:     ResearcherInput{Name: "Maria Santos", Email: "Maria <maria@example.org>"},
			wantField: "email",
		},
		{
			name:  "plus addressing accepted",
			input: ResearcherInput{Name: "Maria Santos", Email: "maria+field@example.org"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error on %s", tc.wantField)
			}
			assertFieldError(t, err, tc.wantField)
		})
	}
}
