package tmpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-utils/tmpl"
)

func TestResolve(t *testing.T) {
	root := tmpl.From(map[string]any{
		"user": map[string]any{
			"name":  "Ada",
			"roles": []any{map[string]any{"name": "admin"}, map[string]any{"name": "dev"}},
		},
		"grid":  []any{[]any{1, 2}, []any{3, 4}},
		"empty": []any{},
		"none":  nil,
	})

	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{"user.name", "Ada", true},
		{"user.roles[0].name", "admin", true},
		{"user.roles[-1].name", "dev", true},
		{"grid[1][0]", "3", true},
		{"grid[-1][-1]", "4", true},
		{"none", "", true},
		{"user.roles[2]", "", false},
		{"user.roles[-3]", "", false},
		{"empty[0]", "", false},
		{"user.missing", "", false},
		{"user.name.first", "", false},
		{"user.name[0]", "", false},
		{"user[0]", "", false},
		{"", "", false},
		{"user..name", "", false},
		{"grid[x]", "", false},
		{"grid[1", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := tmpl.Resolve(root, tc.path)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestResolve_DoesNotMutate(t *testing.T) {
	data := map[string]any{"items": []any{"A", "B"}}
	root := tmpl.From(data)
	before := root.String()
	tmpl.Resolve(root, "items[-1]")
	tmpl.Resolve(root, "items[9].x")
	assert.Equal(t, before, root.String())
	assert.Equal(t, map[string]any{"items": []any{"A", "B"}}, data)
}
