// Package testutil provides test utilities and schema fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// SchemaModelColumnsWithUnderscores has snake_case columns in a pascal model.
const SchemaModelColumnsWithUnderscores = `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model Demo {
  id         Int      @id @default(autoincrement())
  article_id Int
  created_at DateTime @default(now())
}
`

// SchemaCascadingDeletionAndFK has relations with extra options, named
// foreign keys and a references-first relation.
const SchemaCascadingDeletionAndFK = `model jira_projects {
  id          Int           @id
  project_key String        @unique
  jira_issues jira_issues[]
}

model jira_issues {
  id         Int          @id
  project_id Int
  summary    String
  project    jira_projects @relation(fields: [project_id], references: [id], onDelete: Cascade, onUpdate: NoAction, map: "jira_issues_projects_fkey")

  @@index([project_id])
}

model form_responses {
  id      Int   @id
  form_id Int
  form    forms @relation(references: [id], fields: [form_id], onDelete: Cascade)
}

model forms {
  id             Int              @id
  form_responses form_responses[]
}
`

// SchemaEnum has an enum-typed camelCase field.
const SchemaEnum = `model Post {
  id       Int      @id
  postType PostType
}

enum PostType {
  Article
  Video
}
`

// SchemaPluralizeFields has singular names on list fields.
const SchemaPluralizeFields = `model Recipe {
  id                  Int                  @id
  ingredient_category IngredientCategory[]
  language            String[]
  child               String[]
  people              String[]
}

model IngredientCategory {
  id       Int     @id
  recipe   Recipe? @relation(fields: [recipe_id], references: [id])
  recipe_id Int?
}
`

// SchemaSingleLetterWords has identifiers with one-letter words inside.
const SchemaSingleLetterWords = `model plan_a_option {
  id          Int     @id
  is_a_member Boolean
  a_b_c       String?
}
`

// SchemaCommentsOnModelLines has trailing comments on field lines.
const SchemaCommentsOnModelLines = `model Commented {
  id                  Int     @id // primary key
  field_with_comments String? // This should not break our ability to insert map annotations
}
`

// SchemaMixed exercises every rewritten construct at once.
const SchemaMixed = `generator client {
  provider = "prisma-client-js"
}

/// Accounts of the billing system.
model user_account {
  id           Int           @id @default(autoincrement())
  email_address String       @unique
  role         user_role     @default(MEMBER)
  org_id       Int
  organization organization  @relation(fields: [org_id], references: [id])
  invoices     invoice[]
  created_at   DateTime      @default(now()) @map("created")

  @@unique([email_address, org_id])
  @@index(fields: [created_at(sort: Desc), org_id], map: "user_created_idx")
}

model organization {
  id            Int            @id
  display_name  String
  user_accounts user_account[]

  @@map("orgs")
}

model invoice {
  id          Int          @id
  account_id  Int
  total_cents BigInt
  account     user_account @relation(fields: [account_id], references: [id], onDelete: Cascade)
}

view active_users {
  user_id Int    @unique
  email   String
}

enum user_role {
  ADMIN
  MEMBER
}
`

// SchemaNextAuth is the schema shape generated for the NextAuth.js Prisma adapter.
const SchemaNextAuth = `model Account {
  id                String  @id @default(cuid())
  userId            String
  type              String
  provider          String
  providerAccountId String
  refresh_token     String? @db.Text
  access_token      String? @db.Text
  expires_at        Int?
  token_type        String?
  scope             String?
  id_token          String? @db.Text
  session_state     String?
  user              User    @relation(fields: [userId], references: [id], onDelete: Cascade)

  @@unique([provider, providerAccountId])
}

model Session {
  id           String   @id @default(cuid())
  sessionToken String   @unique
  userId       String
  expires      DateTime
  user         User     @relation(fields: [userId], references: [id], onDelete: Cascade)
}

model User {
  id            String    @id @default(cuid())
  name          String?
  email         String?   @unique
  emailVerified DateTime?
  accounts      Account[]
  sessions      Session[]
}

model VerificationToken {
  identifier String
  token      String   @unique
  expires    DateTime

  @@unique([identifier, token])
}
`

// WriteTempSchema writes a schema to a temporary file and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempSchema(t *testing.T, content string) string {
	t.Helper()
	return WriteTempFile(t, "schema.prisma", []byte(content))
}

// WriteTempFile writes data to name inside a fresh temporary directory.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "config.yaml", data)
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "config.json", data)
}
