package catalog

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoCategories     = errors.New("no categories found, please create a category first")
	ErrNoFields         = errors.New("no fields to update")
)
