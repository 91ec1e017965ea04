// Package rewriter migrates a Prisma schema to a casing convention.
//
// Model, view, enum and field identifiers are renamed to the casing resolved
// by a [convention.Store], while the names stored in the database are kept
// through @@map and @map attributes. Field lists in @relation, @@unique,
// @@id and @@index attributes follow the renamed fields.
//
// # Quick Start
//
//	store, err := convention.New(&convention.File{Default: "mapTable=snake"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := rewriter.Migrate(text, store)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Applied %d changes\n", result.ChangeCount)
//
// Or with functional options:
//
//	result, err := rewriter.MigrateWithOptions(
//		rewriter.WithFilePath("prisma/schema.prisma"),
//		rewriter.WithStore(store),
//		rewriter.WithLogger(rewriter.NewSlogAdapter(slog.Default())),
//	)
//
// # Passes
//
// A migration runs four passes over one working copy of the document:
//
//  1. Model and view headers are renamed and their @@map kept in step.
//  2. The final name of every enum is recorded.
//  3. Enum headers are renamed and their @@map kept in step.
//  4. Fields are renamed, their types follow renamed enums and models, and
//     attribute field lists are rewritten.
//
// A block whose declared and stored names differ carries exactly one @@map;
// one whose names agree carries none. Running a migration on its own output
// returns the same text.
//
// Any error aborts the migration and no partial text is returned.
package rewriter
