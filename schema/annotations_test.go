package schema

import (
	"strings"
	"testing"

	"github.com/erraggy/schemacase/internal/naming"
	"github.com/stretchr/testify/assert"
)

func TestRewriteRelation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "extra options kept",
			line: `  project Project @relation(fields: [project_id], references: [id], onDelete: Cascade, onUpdate: NoAction, map: "jira_issues_projects_fkey")`,
			want: `  project Project @relation(fields: [projectId], references: [id], onDelete: Cascade, onUpdate: NoAction, map: "jira_issues_projects_fkey")`,
		},
		{
			name: "references first",
			line: `  form Form @relation(references: [id], fields: [form_id], onDelete: Cascade)`,
			want: `  form Form @relation(references: [id], fields: [formId], onDelete: Cascade)`,
		},
		{
			name: "named relation with compound keys",
			line: `  owner User @relation("owned_by", fields: [owner_id,owner_org], references: [id, org_id]) // owner`,
			want: `  owner User @relation("owned_by", fields: [ownerId, ownerOrg], references: [id, orgId]) // owner`,
		},
		{
			name: "back relation without lists",
			line: `  posts Post[] @relation("owned_by")`,
			want: `  posts Post[] @relation("owned_by")`,
		},
		{
			name: "no relation",
			line: `  article_id Int`,
			want: `  article_id Int`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteRelation(tt.line, naming.ToCamelCase, naming.ToCamelCase)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, RewriteRelation(got, naming.ToCamelCase, naming.ToCamelCase), "rewrite must be idempotent")
		})
	}

	t.Run("separate converters per side", func(t *testing.T) {
		line := `  a A @relation(fields: [a_id], references: [someId])`
		got := RewriteRelation(line, naming.ToCamelCase, naming.ToSnakeCase)
		assert.Equal(t, `  a A @relation(fields: [aId], references: [some_id])`, got)
	})
}

func TestRewriteBlockAttribute(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "unique",
			line: `  @@unique([user_id, post_id])`,
			want: `  @@unique([userId, postId])`,
		},
		{
			name: "id without spaces",
			line: `  @@id([user_id,post_id])`,
			want: `  @@id([userId, postId])`,
		},
		{
			name: "simple index with map",
			line: `  @@index([created_at], map: "idx_created_at")`,
			want: `  @@index([createdAt], map: "idx_created_at")`,
		},
		{
			name: "structured index with modifiers",
			line: `  @@index(fields: [author_id(sort: Desc), created_at], name: "author_idx")`,
			want: `  @@index(fields: [authorId(sort: Desc), createdAt], name: "author_idx")`,
		},
		{
			name: "structured index with operator class",
			line: `  @@index([search_text(ops: raw("gin_trgm_ops"))], type: Gin)`,
			want: `  @@index([searchText(ops: raw("gin_trgm_ops"))], type: Gin)`,
		},
		{
			name: "structured unique keeps order and duplicates",
			line: `  @@unique(fields: [b_col, a_col(length: 10)])`,
			want: `  @@unique(fields: [bCol, aCol(length: 10)])`,
		},
		{
			name: "no attribute",
			line: `  @@map("users")`,
			want: `  @@map("users")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteBlockAttribute(tt.line, naming.ToCamelCase)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, RewriteBlockAttribute(got, naming.ToCamelCase), "rewrite must be idempotent")
		})
	}

	t.Run("several attributes on one line", func(t *testing.T) {
		line := `model Tag { name_key String @@unique([name_key]) @@index([name_key]) }`
		got := RewriteBlockAttribute(line, naming.ToCamelCase)
		assert.Equal(t, 2, strings.Count(got, "[nameKey]"))
	})
}

func TestAttributeFieldNames(t *testing.T) {
	tests := []struct {
		name string
		args string
		want []string
	}{
		{name: "plain list", args: `[a, b]`, want: []string{"a", "b"}},
		{name: "fields cue", args: `fields: [a(sort: Desc), b]`, want: []string{"a", "b"}},
		{name: "union keeps first-seen order", args: `fields: [b, a], references: [c, a]`, want: []string{"b", "a", "c"}},
		{name: "nested modifier", args: `[title(ops: raw("gin_trgm_ops"))], type: Gin`, want: []string{"title"}},
		{name: "no list", args: `name: "x"`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttributeFieldNames(tt.args))
		})
	}
}
