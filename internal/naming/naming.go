// Package naming provides shared identifier case conversion utilities.
package naming

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
)

// maxPasses bounds the re-splitting loop of settle.
const maxPasses = 4

// settle converts s through snake_case with to and repeats the conversion
// until the result no longer changes. A run of capitals produced by
// one-letter words ("a_b_c" -> "ABC") reads back as a single word, so a
// single pass is not always a fixed point.
func settle(s string, to func(string) string) string {
	out := to(strcase.ToSnake(s))
	for range maxPasses {
		next := to(strcase.ToSnake(out))
		if next == out {
			break
		}
		out = next
	}
	return out
}

// ToPascalCase converts an identifier to PascalCase.
// Example: "article_id" -> "ArticleId"
// Example: "userProfile" -> "UserProfile"
// Example: "is_a_member" -> "IsAMember"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}
	return settle(s, strcase.ToCamel)
}

// ToCamelCase converts an identifier to camelCase.
// Example: "article_id" -> "articleId"
// Example: "PostType" -> "postType"
func ToCamelCase(s string) string {
	if s == "" {
		return ""
	}
	return settle(s, strcase.ToLowerCamel)
}

// ToSnakeCase converts an identifier to snake_case.
// Example: "articleId" -> "article_id"
// Example: "IngredientCategory" -> "ingredient_category"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	return strcase.ToSnake(s)
}

// ToPlural returns the English plural of the trailing word of s.
// Already plural words, irregular ones included, are returned unchanged.
// Example: "ingredientCategory" -> "ingredientCategories"
// Example: "children" -> "children"
func ToPlural(s string) string {
	if s == "" {
		return ""
	}
	if inflection.Plural(inflection.Singular(s)) == s {
		return s
	}
	return inflection.Plural(s)
}

// ToSingular returns the English singular of the trailing word of s.
// Example: "users" -> "user"
func ToSingular(s string) string {
	if s == "" {
		return ""
	}
	return inflection.Singular(s)
}

// NormalizeToken trims and case-folds a convention token so that
// "Snake", " snake " and "SNAKE" all compare equal.
func NormalizeToken(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
