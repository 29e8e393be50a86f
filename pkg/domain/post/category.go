package post

type Category string

const (
	CategoryCollege       Category = "College"
	CategoryWork          Category = "Work"
	CategoryFamily        Category = "Family"
	CategoryRelationships Category = "Relationships"
	CategoryPersonal      Category = "Personal"
)

const DefaultCategory = CategoryPersonal

func Categories() []Category {
	return []Category{CategoryCollege, CategoryWork, CategoryFamily, CategoryRelationships, CategoryPersonal}
}

func ParseCategory(value string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == value {
			return c, true
		}
	}
	return "", false
}
