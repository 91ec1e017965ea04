// Package convention resolves which casing applies to a model, enum or field.
//
// A [Store] is a tree of scopes. The root carries the global rule, its children
// are keyed by entity name and their children by field name or field-name
// pattern. Each node holds a [Rule] with up to six casings, one per [Axis]:
//
//	table     model and view identifiers        (default pascal)
//	field     field identifiers                 (default camel)
//	enum      enum identifiers                  (default: table)
//	mapTable  @@map value of models and views   (default unset)
//	mapField  @map value of fields              (default unset)
//	mapEnum   @@map value of enums              (default: mapTable)
//
// plus a pluralize flag for array fields and a disable flag.
//
// # Rule Strings
//
// Rules are written as semicolon separated key=value pairs:
//
//	table=pascal; field=camel; mapTable=snake,plural
//
// Values are "pascal", "camel" or "snake", optionally followed by ",plural" or
// ",singular". The literal rule "disable" turns rewriting off for a scope.
//
// # Resolution
//
// A scope such as ("Account", "refresh_token") is matched one segment at a
// time. Each segment is looked up among the child keys as written, then as
// pascal, snake and camel case, and finally every child key is tried as an
// anchored regular expression against those four spellings. The deepest
// matched node that sets the requested axis wins.
//
// # Building a Store
//
//	store, err := convention.New(&convention.File{
//		Default: "table=pascal; mapTable=snake",
//		Override: map[string]any{
//			"LegacyTable": "disable",
//		},
//	}, convention.WithPluralize(true))
//
// Setting [File.UsesNextAuth] adds the fixed overrides needed by the
// NextAuth.js Prisma adapter models (Account, Session, User and
// VerificationToken).
package convention
