package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantOK bool
		kind   Kind
		ident  string
	}{
		{name: "model", line: "model user_account {", wantOK: true, kind: KindModel, ident: "user_account"},
		{name: "view", line: "view ActiveUsers {", wantOK: true, kind: KindView, ident: "ActiveUsers"},
		{name: "enum no space before brace", line: "enum Role{", wantOK: true, kind: KindEnum, ident: "Role"},
		{name: "indented with comment", line: "  model Post { // posts", wantOK: true, kind: KindModel, ident: "Post"},
		{name: "missing brace", line: "model Post", wantOK: false},
		{name: "field named model", line: "  model String", wantOK: false},
		{name: "datasource", line: "datasource db {", wantOK: false},
		{name: "comment", line: "// model Post {", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := ParseHeader(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.kind, h.Kind())
			assert.Equal(t, tt.ident, h.Name)
			assert.Equal(t, tt.line, h.String(), "header must reassemble to the source line")
		})
	}
}

func TestParseField(t *testing.T) {
	t.Run("scalar with attributes", func(t *testing.T) {
		f, ok := ParseField("  article_id Int @unique")
		require.True(t, ok)
		assert.Equal(t, "  ", f.Indent)
		assert.Equal(t, "article_id", f.Name)
		assert.Equal(t, "Int", f.Type)
		assert.Equal(t, "", f.Modifiers)
		assert.Equal(t, " @unique", f.Rest)
		assert.False(t, f.IsArray())
		assert.False(t, f.IsNullable())
		assert.Equal(t, "  article_id Int @unique", f.String())
	})

	t.Run("optional with comment", func(t *testing.T) {
		f, ok := ParseField("  field_with_comments String? // keep me")
		require.True(t, ok)
		assert.Equal(t, "?", f.Modifiers)
		assert.True(t, f.IsNullable())
		assert.Equal(t, " // keep me", f.Rest)
	})

	t.Run("array relation", func(t *testing.T) {
		f, ok := ParseField("  ingredient_category IngredientCategory[]")
		require.True(t, ok)
		assert.True(t, f.IsArray())
		assert.Equal(t, "IngredientCategory", f.BaseType())
	})

	t.Run("unsupported with arguments", func(t *testing.T) {
		f, ok := ParseField(`  location Unsupported("point")?`)
		require.True(t, ok)
		assert.Equal(t, `Unsupported("point")`, f.Type)
		assert.Equal(t, "Unsupported", f.BaseType())
		assert.True(t, IsPrimitive(f.Type))
	})

	t.Run("relation attribute", func(t *testing.T) {
		f, ok := ParseField("  project Project @relation(fields: [project_id], references: [id])")
		require.True(t, ok)
		assert.True(t, f.HasRelation())
		assert.False(t, IsPrimitive(f.Type))
	})

	t.Run("relation mentioned in comment", func(t *testing.T) {
		tests := []struct {
			line string
			want bool
		}{
			{line: "  owner_id Int // see @relation on Project", want: false},
			{line: `  website String @default("https://example.com") // @relation`, want: false},
			{line: "  project Project @relation(fields: [project_id], references: [id]) // owner", want: true},
			{line: `  project Project @relation("a//b", fields: [project_id], references: [id])`, want: true},
		}
		for _, tt := range tests {
			f, ok := ParseField(tt.line)
			require.True(t, ok, tt.line)
			assert.Equal(t, tt.want, f.HasRelation(), tt.line)
		}
	})

	t.Run("non-field lines", func(t *testing.T) {
		for _, line := range []string{
			"",
			"}",
			"  @@map(\"users\")",
			"  @@index([a, b])",
			"  // a comment line",
			"  /// documentation",
			"  ADMIN",
		} {
			_, ok := ParseField(line)
			assert.False(t, ok, "line %q should not parse as a field", line)
		}
	})
}

func TestFieldMap(t *testing.T) {
	f, ok := ParseField(`  articleId Int @map("article_id") @unique`)
	require.True(t, ok)

	name, ok := f.MapName()
	require.True(t, ok)
	assert.Equal(t, "article_id", name)

	stripped := f.WithoutMap()
	assert.Equal(t, " @unique", stripped.Rest)
	_, ok = stripped.MapName()
	assert.False(t, ok)

	t.Run("named argument form", func(t *testing.T) {
		f, ok := ParseField(`  articleId Int @map(name: "article_id")`)
		require.True(t, ok)
		name, ok := f.MapName()
		require.True(t, ok)
		assert.Equal(t, "article_id", name)
		assert.Equal(t, "", f.WithoutMap().Rest)
	})

	assert.Equal(t, `@map("article_id")`, MapAttribute("article_id"))

	t.Run("set map name", func(t *testing.T) {
		f, ok := ParseField(`  createdAt DateTime   @default(now()) @map("created")`)
		require.True(t, ok)
		assert.Equal(t, `   @default(now()) @map("created_at")`, f.WithMapName("created_at").Rest)

		f, ok = ParseField(`  createdAt DateTime // audit`)
		require.True(t, ok)
		assert.Equal(t, ` @map("created_at") // audit`, f.WithMapName("created_at").Rest)
	})

	t.Run("map in comment", func(t *testing.T) {
		f, ok := ParseField(`  createdAt DateTime // was @map("created")`)
		require.True(t, ok)
		_, ok = f.MapName()
		assert.False(t, ok)
		assert.Equal(t, f.Rest, f.WithoutMap().Rest)
		assert.Equal(t, ` @map("created_at") // was @map("created")`, f.WithMapName("created_at").Rest)
	})
}

func TestIsPrimitive(t *testing.T) {
	for _, typ := range []string{"String", "Boolean", "Int", "BigInt", "Float", "Decimal", "DateTime", "Json", "Bytes", "String[]", "Int?", `Unsupported("circle")`} {
		assert.True(t, IsPrimitive(typ), "%s should be primitive", typ)
	}
	for _, typ := range []string{"User", "PostType", "Post[]", "string"} {
		assert.False(t, IsPrimitive(typ), "%s should not be primitive", typ)
	}
}

func TestBlockMap(t *testing.T) {
	name, ok := BlockMapName(`  @@map("users")`)
	require.True(t, ok)
	assert.Equal(t, "users", name)

	name, ok = BlockMapName(`  @@map(name: "users") // legacy`)
	require.True(t, ok)
	assert.Equal(t, "users", name)

	_, ok = BlockMapName(`  @@index([a])`)
	assert.False(t, ok)

	assert.Equal(t, `  @@map("accounts") // legacy`, ReplaceBlockMapName(`  @@map(name: "users") // legacy`, "accounts"))
	assert.Equal(t, `  @@map("users")`, BlockMapLine("users"))
}

func TestRemoveBlockMap(t *testing.T) {
	assert.Equal(t, "", RemoveBlockMap(`  @@map("users")`))
	assert.Equal(t, `model A { }`, RemoveBlockMap(`model A { @@map("a") }`))
	assert.Equal(t, `  @@index([a])`, RemoveBlockMap(`  @@index([a])`))
}
