package entities

import "strings"

type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryFashion     ProductCategory = "fashion"
	CategoryBeauty      ProductCategory = "beauty"
	CategoryHomeLiving  ProductCategory = "home_living"
	CategoryOther       ProductCategory = "other"
)

// QuoteTemplate holds the defaults used to pre-fill a quote for a product
// category.
type QuoteTemplate struct {
	ID                string
	Name              string
	Category          ProductCategory
	ServiceFeePercent float64
	AdditionalFees    []QuotationFee
	ShippingFee       int64
	ValidDays         int
}

// Checked in order; the first category with a matching keyword wins.
var categoryKeywords = []struct {
	category ProductCategory
	keywords []string
}{
	{CategoryElectronics, []string{"아이폰", "갤럭시", "노트북", "컴퓨터", "헤드폰", "이어폰", "tv", "모니터", "iphone", "galaxy", "laptop", "headphone", "earphone", "monitor"}},
	{CategoryFashion, []string{"티셔츠", "바지", "신발", "가방", "자켓", "드레스", "t-shirt", "jeans", "sneakers", "jacket", "dress"}},
	{CategoryBeauty, []string{"화장품", "스킨케어", "메이크업", "향수", "skincare", "makeup", "perfume"}},
	{CategoryHomeLiving, []string{"침구", "가구", "인테리어", "주방", "bedding", "furniture", "kitchen"}},
}

// DetectProductCategory guesses the category from keywords in the product title.
func DetectProductCategory(title string) ProductCategory {
	t := strings.ToLower(title)
	for _, c := range categoryKeywords {
		for _, k := range c.keywords {
			if strings.Contains(t, k) {
				return c.category
			}
		}
	}
	return CategoryOther
}
