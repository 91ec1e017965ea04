// Package schemacase migrates Prisma schemas between identifier casing
// conventions without changing the names stored in the database.
//
// A schema written with snake_case tables and columns can be rewritten to
// PascalCase models and camelCase fields; every renamed identifier keeps its
// database name through a @map or @@map attribute, so the generated client
// changes while the database does not.
//
// # Packages
//
//   - convention: the scoped convention store and its rule grammar
//   - rewriter: the four-pass schema rewrite
//   - schema: line grammar of Prisma block headers, fields and attributes
//   - caseerrors: structured error types with sentinel matching
//
// The schemacase command wraps these packages with a configuration file
// (.prisma-case-format, YAML or JSON), a dry-run mode and an MCP server.
//
// # Quick Start
//
//	store, err := convention.New(&convention.File{
//		Default: "table=pascal; field=camel; mapTable=snake",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := rewriter.Migrate(text, store)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(result.Text)
//
// Migrating the output again returns the same text.
package schemacase
