package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		want   model.Category
		wantOK bool
	}{
		{
			name:   "food and drink",
			code:   "FOOD_AND_DRINK",
			want:   model.CategoryFood,
			wantOK: true,
		},
		{
			name:   "auto and transport",
			code:   "AUTO_AND_TRANSPORT",
			want:   model.CategoryTransportation,
			wantOK: true,
		},
		{
			name:   "general merchandise folds into shopping",
			code:   "GENERAL_MERCHANDISE",
			want:   model.CategoryShopping,
			wantOK: true,
		},
		{
			name:   "loan payments fold into other",
			code:   "LOAN_PAYMENTS",
			want:   model.CategoryOther,
			wantOK: true,
		},
		{
			name:   "unmapped code degrades to uncategorized",
			code:   "SOMETHING_NEW",
			want:   model.CategoryUncategorized,
			wantOK: false,
		},
		{
			name:   "lookup is case-sensitive",
			code:   "food_and_drink",
			want:   model.CategoryUncategorized,
			wantOK: false,
		},
		{
			name:   "simplified name maps to itself",
			code:   "Food",
			want:   model.CategoryFood,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	assert.Len(t, codes, 12)

	// Every advertised code resolves without falling back.
	for _, code := range codes {
		got, ok := Lookup(code)
		assert.True(t, ok, "code %s", code)
		assert.NotEqual(t, model.CategoryUncategorized, got, "code %s", code)
	}
}

func amount(v float64) *float64 {
	return &v
}

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name string
		raw  model.RawTransaction
		want model.Category
	}{
		{
			name: "description wins over structured code",
			raw: model.RawTransaction{
				Description:     "travel",
				FinanceCategory: &model.PersonalFinanceCategory{Primary: "SHOPPING"},
			},
			want: model.CategoryTravel,
		},
		{
			name: "unmapped description falls through to structured code",
			raw: model.RawTransaction{
				Description:     "something nobody mapped",
				FinanceCategory: &model.PersonalFinanceCategory{Primary: "SHOPPING"},
			},
			want: model.CategoryShopping,
		},
		{
			name: "structured code wins over labels",
			raw: model.RawTransaction{
				FinanceCategory: &model.PersonalFinanceCategory{Primary: "ENTERTAINMENT"},
				Labels:          []string{"TRAVEL"},
			},
			want: model.CategoryEntertainment,
		},
		{
			name: "first label used when nothing else present",
			raw: model.RawTransaction{
				Labels: []string{"TRANSFER", "FOOD_AND_DRINK"},
			},
			want: model.CategoryOther,
		},
		{
			name: "empty record falls back to uncategorized",
			raw:  model.RawTransaction{Amount: amount(12.0)},
			want: model.CategoryUncategorized,
		},
		{
			name: "unmapped label falls back to uncategorized",
			raw: model.RawTransaction{
				Labels: []string{"MYSTERY"},
			},
			want: model.CategoryUncategorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.raw))
		})
	}
}
