package service

import (
	"testing"

	"receipt-desk/internal/models"

	"github.com/google/uuid"
)

func TestParseExtraction(t *testing.T) {
	amount := func(f float64) *float64 { return &f }
	company := func(s string) *string { return &s }

	cases := []struct {
		name    string
		in      string
		amount  *float64
		company *string
	}{
		{
			name:   "fenced malformed json with unknown company",
			in:     "```json\n{\"amount\": 1,500.50, \"company\": \"UNKNOWN\"}\n```",
			amount: amount(1500.50),
		},
		{
			name:    "labeled plain text",
			in:      `Amount: $2,000.00 Company: "Acme LLC"`,
			amount:  amount(2000),
			company: company("Acme LLC"),
		},
		{
			name:    "labeled plain text with trailing label",
			in:      `Company: Acme LLC, Amount: 500`,
			amount:  amount(500),
			company: company("Acme LLC"),
		},
		{
			name:    "company name containing a comma",
			in:      `Amount: 75 Company: Acme, Inc`,
			amount:  amount(75),
			company: company("Acme, Inc"),
		},
		{
			name:    "well formed json",
			in:      `{"amount": 250.75, "company": "Beta Corp"}`,
			amount:  amount(250.75),
			company: company("Beta Corp"),
		},
		{
			name:    "json amount as string",
			in:      "```\n{\"amount\": \"3,100.10\", \"company\": \"Beta\"}\n```",
			amount:  amount(3100.10),
			company: company("Beta"),
		},
		{
			name:    "json array takes first object",
			in:      `[{"amount": 10, "company": "First"}, {"amount": 20, "company": "Second"}]`,
			amount:  amount(10),
			company: company("First"),
		},
		{
			name:    "json wrapped in prose",
			in:      `Here you go: {"amount": 42, "company": "Gamma"} hope it helps`,
			amount:  amount(42),
			company: company("Gamma"),
		},
		{
			name:    "zero amount is no suggestion",
			in:      `{"amount": 0, "company": "Acme"}`,
			company: company("Acme"),
		},
		{
			name: "unknown in lower case",
			in:   `{"company": "unknown"}`,
		},
		{
			name:    "markdown bold labels",
			in:      "**Amount:** $1,234.56\n**Company:** Delta Holdings",
			amount:  amount(1234.56),
			company: company("Delta Holdings"),
		},
		{
			name: "empty answer",
			in:   "   ",
		},
		{
			name: "nothing recognizable",
			in:   "I cannot read this image.",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseExtraction(c.in)

			switch {
			case c.amount == nil && got.Amount != nil:
				t.Fatalf("want no amount, got %v", *got.Amount)
			case c.amount != nil && got.Amount == nil:
				t.Fatalf("want amount %v, got none", *c.amount)
			case c.amount != nil && *got.Amount != *c.amount:
				t.Fatalf("want amount %v, got %v", *c.amount, *got.Amount)
			}

			switch {
			case c.company == nil && got.Company != nil:
				t.Fatalf("want no company, got %q", *got.Company)
			case c.company != nil && got.Company == nil:
				t.Fatalf("want company %q, got none", *c.company)
			case c.company != nil && *got.Company != *c.company:
				t.Fatalf("want company %q, got %q", *c.company, *got.Company)
			}
		})
	}
}

func TestResolveCompany(t *testing.T) {
	acme := &models.Company{ID: uuid.New(), Name: "Acme LLC"}
	beta := &models.Company{ID: uuid.New(), Name: "Beta Corp"}
	registry := []*models.Company{acme, beta}

	cases := []struct {
		guess string
		want  *models.Company
	}{
		{"acme", acme},
		{"ACME LLC, Inc.", acme},
		{"beta corp", beta},
		{"Gamma", nil},
		{"", nil},
		{"   ", nil},
	}

	for _, c := range cases {
		if got := ResolveCompany(c.guess, registry); got != c.want {
			t.Errorf("guess %q: want %v got %v", c.guess, c.want, got)
		}
	}
}

func TestResolveCompanyFirstMatchWins(t *testing.T) {
	first := &models.Company{ID: uuid.New(), Name: "Acme"}
	second := &models.Company{ID: uuid.New(), Name: "Acme Holdings"}

	if got := ResolveCompany("acme holdings", []*models.Company{first, second}); got != first {
		t.Fatalf("want registry order to decide, got %v", got.Name)
	}
	if got := ResolveCompany("acme", []*models.Company{{Name: ""}, second}); got != second {
		t.Fatal("blank registry names must not match")
	}
}
