// Package naming provides the identifier case primitives used by schemacase.
//
// The casing functions wrap github.com/iancoleman/strcase and the
// plural/singular inflections wrap github.com/jinzhu/inflection. Every
// function is pure and idempotent on identifiers that already conform:
//
//	ToSnakeCase(ToSnakeCase("articleId")) == ToSnakeCase("articleId")
//
// These functions are used for:
//   - convention package: resolving rule tokens and matching scope keys
//   - rewriter package: pluralizing array-typed field names
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
