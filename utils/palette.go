package utils

// CategoryPalette is the set of colour classes the staff availability grid
// cycles through.
var CategoryPalette = []string{
	"bg-red-700",
	"bg-indigo-700",
	"bg-green-700",
	"bg-purple-700",
	"bg-pink-700",
	"bg-violet-700",
}

// PaletteIndex maps a category id onto a palette of size n.
func PaletteIndex(categoryID uint, n int) int {
	if n <= 0 {
		return 0
	}
	return int(categoryID % uint(n))
}

// CategoryColor returns the palette entry for a category.
func CategoryColor(categoryID uint) string {
	return CategoryPalette[PaletteIndex(categoryID, len(CategoryPalette))]
}
