package rentals

// Category is the browse-page filter chip. Each one maps to a backend
// property_type; All maps to no filter at all.
type Category string

const (
	CategoryAll         Category = "All"
	CategoryApartments  Category = "Apartments"
	CategoryVillas      Category = "Villas"
	CategoryStudios     Category = "Studios"
	CategoryFamilyHomes Category = "Family Homes"
	CategoryLuxury      Category = "Luxury"
	CategoryBudget      Category = "Budget"
)

var categoryPropertyTypes = map[Category]string{
	CategoryAll:         "",
	CategoryApartments:  "apartment",
	CategoryVillas:      "villa",
	CategoryStudios:     "studio",
	CategoryFamilyHomes: "house",
	CategoryLuxury:      "luxury",
	CategoryBudget:      "budget",
}

// Categories lists the chips in display order.
func Categories() []Category {
	return []Category{
		CategoryAll, CategoryApartments, CategoryVillas, CategoryStudios,
		CategoryFamilyHomes, CategoryLuxury, CategoryBudget,
	}
}

// ParseCategory degrades unknown input to All rather than erroring.
func ParseCategory(raw string) Category {
	c := Category(raw)
	if _, ok := categoryPropertyTypes[c]; ok {
		return c
	}
	return CategoryAll
}

func (c Category) propertyType() string {
	return categoryPropertyTypes[c]
}
