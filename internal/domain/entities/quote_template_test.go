package entities

import "testing"

func TestDetectProductCategory(t *testing.T) {
	cases := []struct {
		title string
		want  ProductCategory
	}{
		{"Apple iPhone 16", CategoryElectronics},
		{"삼성 4K TV 65인치", CategoryElectronics},
		{"린넨 자켓 네이비", CategoryFashion},
		{"Chanel perfume 100ml", CategoryBeauty},
		{"원목 가구 수납장", CategoryHomeLiving},
		{"Stainless kitchen set", CategoryHomeLiving},
		{"Air fryer", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range cases {
		if got := DetectProductCategory(tc.title); got != tc.want {
			t.Errorf("DetectProductCategory(%q) = %s, want %s", tc.title, got, tc.want)
		}
	}
}
