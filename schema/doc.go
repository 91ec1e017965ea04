// Package schema locates and parses the line-level constructs of a Prisma
// schema document that schemacase rewrites.
//
// The package is deliberately narrow. It recognizes:
//
//   - block headers: model, view and enum declarations ([ParseHeader])
//   - block bounds: a header line through the first line that trims to
//     end with "}" ([Scan])
//   - field declarations: name, type, array/optional modifiers and the
//     trailing attribute text ([ParseField])
//   - @map and @@map storage-name annotations
//   - the identifier lists of @relation, @@unique, @@id and @@index
//     ([RewriteRelation], [RewriteBlockAttribute])
//
// Every other line (datasource and generator blocks, comments, blank lines,
// unrelated attributes) is left to pass through untouched by callers.
package schema
