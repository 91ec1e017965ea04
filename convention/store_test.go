package convention

import (
	"errors"
	"testing"

	"github.com/erraggy/schemacase/caseerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Defaults(t *testing.T) {
	store, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, "pascal", store.Table("user_account").Token)
	assert.Equal(t, "camel", store.Field("user_account", "article_id").Token)
	assert.Equal(t, "pascal", store.Enum("role").Token)
	assert.Nil(t, store.MapTable("user_account"))
	assert.Nil(t, store.MapField("user_account", "article_id"))
	assert.Nil(t, store.MapEnum("role"))
	assert.False(t, store.IsPlural("user_account"))
	assert.False(t, store.IsDisabled("user_account"))
}

func TestStore_Fallbacks(t *testing.T) {
	store, err := New(&File{Default: "table=snake; mapTable=pascal"})
	require.NoError(t, err)

	assert.Equal(t, "snake", store.Enum("Role").Token, "enum falls back to table")
	assert.Equal(t, "pascal", store.MapEnum("Role").Token, "mapEnum falls back to mapTable")

	store, err = New(&File{Default: "table=snake; enum=camel; mapTable=pascal; mapEnum=snake"})
	require.NoError(t, err)
	assert.Equal(t, "camel", store.Enum("Role").Token)
	assert.Equal(t, "snake", store.MapEnum("Role").Token)
}

func TestStore_Overrides(t *testing.T) {
	store, err := New(&File{
		Default: "table=pascal; field=camel; mapTable=snake",
		Override: map[string]any{
			"LegacyTable": "disable",
			"UserAccount": "table=snake",
			"Account": map[string]any{
				"default": "mapTable=pascal; field=snake",
				"field": map[string]any{
					"userId":     "field=camel",
					"created_.*": "field=pascal",
				},
			},
			"Audit.*": map[string]any{
				"field": "field=snake; mapField=snake",
			},
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		got   *Case
		token string
	}{
		{name: "unconfigured entity uses root", got: store.Table("Post"), token: "pascal"},
		{name: "exact entity key", got: store.Table("UserAccount"), token: "snake"},
		{name: "entity key matched via pascal spelling", got: store.Table("user_account"), token: "snake"},
		{name: "entity key matched from camel input", got: store.Table("userAccount"), token: "snake"},
		{name: "entity default", got: store.MapTable("Account"), token: "pascal"},
		{name: "entity default applies to its fields", got: store.Field("Account", "provider"), token: "snake"},
		{name: "exact field key", got: store.Field("Account", "userId"), token: "camel"},
		{name: "field key matched via camel spelling", got: store.Field("account", "user_id"), token: "camel"},
		{name: "field pattern key", got: store.Field("Account", "created_at"), token: "pascal"},
		{name: "field pattern key via snake spelling", got: store.Field("Account", "createdAt"), token: "pascal"},
		{name: "entity pattern with wildcard field", got: store.Field("AuditLog", "actorId"), token: "snake"},
		{name: "entity pattern via pascal spelling", got: store.MapField("audit_entry", "actor_id"), token: "snake"},
		{name: "root applies outside patterns", got: store.Field("Post", "authorId"), token: "camel"},
		{name: "root mapTable", got: store.MapTable("Post"), token: "snake"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.got)
			assert.Equal(t, tt.token, tt.got.Token)
		})
	}

	t.Run("disabled entity and its fields", func(t *testing.T) {
		assert.True(t, store.IsDisabled("LegacyTable"))
		assert.True(t, store.IsDisabled("legacy_table"))
		assert.True(t, store.IsDisabled("LegacyTable", "any_field"))
		assert.False(t, store.IsDisabled("Account"))
	})
}

func TestStore_Options(t *testing.T) {
	store, err := New(&File{Default: "table=pascal; field=camel"},
		WithCase(AxisField, "snake"),
		WithCase(AxisMapTable, "snake,plural"),
		WithCase(AxisEnum, ""),
		WithPluralize(true),
	)
	require.NoError(t, err)

	assert.Equal(t, "snake", store.Field("Post", "authorId").Token)
	assert.Equal(t, "snake,plural", store.MapTable("Post").Token)
	assert.Equal(t, "pascal", store.Enum("Role").Token)
	assert.True(t, store.IsPlural("Post"))

	t.Run("invalid token", func(t *testing.T) {
		_, err := New(nil, WithCase(AxisTable, "kebab"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, caseerrors.ErrUnsupportedCaseConvention))
	})

	t.Run("invalid axis", func(t *testing.T) {
		_, err := New(nil, WithCase(Axis("column"), "snake"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, caseerrors.ErrUnrecognizedOption))
	})
}

func TestStore_NextAuth(t *testing.T) {
	user := map[string]any{"Account": "disable", "Post": "table=snake"}
	store, err := New(&File{UsesNextAuth: true, Default: "table=snake; field=snake; mapTable=snake", Override: user})
	require.NoError(t, err)

	assert.Equal(t, "disable", user["Account"], "caller's override map must not be modified")

	assert.False(t, store.IsDisabled("Account"), "next-auth replaces the user override")
	assert.Equal(t, "pascal", store.Table("Account").Token)
	assert.Equal(t, "pascal", store.MapTable("Account").Token)
	assert.Equal(t, "camel", store.Field("Account", "providerAccountId").Token)
	assert.Equal(t, "snake", store.Field("Account", "refresh_token").Token)
	assert.Equal(t, "snake", store.MapField("Account", "access_token").Token)
	assert.Equal(t, "camel", store.Field("Session", "sessionToken").Token)
	assert.Equal(t, "camel", store.MapField("User", "emailVerified").Token)
	assert.Equal(t, "pascal", store.Table("VerificationToken").Token)
	assert.Equal(t, "snake", store.Table("Post").Token)

	t.Run("option overrides file", func(t *testing.T) {
		store, err := New(&File{UsesNextAuth: true}, WithNextAuth(false))
		require.NoError(t, err)
		assert.Nil(t, store.MapTable("Account"))
	})
}

func TestStore_InvalidOverrides(t *testing.T) {
	tests := []struct {
		name     string
		override any
		sentinel error
	}{
		{name: "null", override: nil, sentinel: caseerrors.ErrInvalidOverrideShape},
		{name: "number", override: 42, sentinel: caseerrors.ErrInvalidOverrideShape},
		{name: "array", override: []any{"table=snake"}, sentinel: caseerrors.ErrInvalidOverrideShape},
		{name: "non-string default", override: map[string]any{"default": true}, sentinel: caseerrors.ErrInvalidOverrideShape},
		{name: "non-string field rule", override: map[string]any{"field": map[string]any{"id": 1}}, sentinel: caseerrors.ErrInvalidOverrideShape},
		{name: "unknown object key", override: map[string]any{"fields": "field=snake"}, sentinel: caseerrors.ErrUnrecognizedOption},
		{name: "bad rule", override: "table=kebab", sentinel: caseerrors.ErrUnsupportedCaseConvention},
		{name: "bad field rule", override: map[string]any{"field": map[string]any{"id": "col=snake"}}, sentinel: caseerrors.ErrUnrecognizedOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&File{Override: map[string]any{"Post": tt.override}})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.True(t, errors.Is(err, caseerrors.ErrConfig))
			assert.Contains(t, err.Error(), `"Post"`)
		})
	}

	t.Run("shape error names the entity", func(t *testing.T) {
		_, err := New(&File{Override: map[string]any{"Post": nil}})
		var shapeErr *caseerrors.OverrideShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, "Post", shapeErr.Entity)
		assert.Equal(t, "null", shapeErr.Kind)
	})

	t.Run("yaml style keys", func(t *testing.T) {
		store, err := New(&File{Override: map[string]any{
			"Post": map[any]any{"default": "table=snake", "field": map[any]any{"authorId": "field=snake"}},
		}})
		require.NoError(t, err)
		assert.Equal(t, "snake", store.Table("Post").Token)
		assert.Equal(t, "snake", store.Field("Post", "authorId").Token)
	})
}

func TestFromRuleString(t *testing.T) {
	store, err := FromRuleString("table=snake; field=pascal; mapField=snake")
	require.NoError(t, err)
	assert.Equal(t, "snake", store.Table("AnyModel").Token)
	assert.Equal(t, "pascal", store.Field("AnyModel", "any_field").Token)
	assert.Equal(t, "snake", store.MapField("AnyModel", "any_field").Token)

	_, err = FromRuleString("table=upper")
	require.Error(t, err)
}

func TestStore_Describe(t *testing.T) {
	store, err := New(&File{
		Default:  "mapTable=snake",
		Override: map[string]any{"Post": map[string]any{"field": "field=snake"}},
	}, WithPluralize(true))
	require.NoError(t, err)

	got := store.Describe("Post", "authorId")
	assert.Equal(t, Resolution{
		Scope:     []string{"Post", "authorId"},
		Table:     "pascal",
		Field:     "snake",
		Enum:      "pascal",
		MapTable:  "snake",
		MapEnum:   "snake",
		Pluralize: true,
	}, got)
}
