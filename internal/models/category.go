package models

// Category identifies one of the nine head-to-head fantasy categories.
type Category string

const (
	CategoryFG3M Category = "FG3M"
	CategoryPTS  Category = "PTS"
	CategoryREB  Category = "REB"
	CategoryAST  Category = "AST"
	CategorySTL  Category = "STL"
	CategoryBLK  Category = "BLK"
	CategoryTOV  Category = "TOV"
	CategoryFGP  Category = "FG%"
	CategoryFTP  Category = "FT%"
)

// CountingCategories are the categories scored by summing projected totals.
// Order matters: it is the display order used in matchup results and reports.
var CountingCategories = []Category{
	CategoryFG3M,
	CategoryPTS,
	CategoryREB,
	CategoryAST,
	CategorySTL,
	CategoryBLK,
	CategoryTOV,
}

// RatioCategories are scored on aggregate makes over aggregate attempts.
var RatioCategories = []Category{CategoryFGP, CategoryFTP}

// AllCategories lists all nine categories in report order.
var AllCategories = append(append([]Category{}, CountingCategories...), RatioCategories...)

// IsRatio reports whether the category is a shooting percentage.
func (c Category) IsRatio() bool {
	return c == CategoryFGP || c == CategoryFTP
}

// Winner tags which side takes a category.
type Winner string

const (
	WinnerMe  Winner = "ME"
	WinnerOpp Winner = "OPP"
)
