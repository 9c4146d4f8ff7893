package tmpl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-utils/tmpl"
)

func TestDefaultFormatters_Names(t *testing.T) {
	fs := tmpl.DefaultFormatters()
	for _, name := range []string{"upper", "lower", "pad", "plural", "number"} {
		assert.Contains(t, fs, name)
	}
	assert.Len(t, fs, 5)

	// Each call returns an independent map.
	delete(fs, "upper")
	assert.Contains(t, tmpl.DefaultFormatters(), "upper")
}

func TestCaseFormatters(t *testing.T) {
	assert.Equal(t, "HELLO", tmpl.Upper("hello", nil))
	assert.Equal(t, "STRASSE", tmpl.Upper("straße", nil))
	assert.Equal(t, "hello", tmpl.Lower("HeLLo", nil))
	assert.Equal(t, "İ", tmpl.Upper("i", []string{"tr"}))
	assert.Equal(t, "I", tmpl.Upper("i", []string{"not a locale!"}))
	assert.Equal(t, "Hello World", tmpl.Title("hello world", nil))
}

func TestPad(t *testing.T) {
	cases := []struct {
		value string
		args  []string
		want  string
	}{
		{"42", []string{"4", "0"}, "0042"},
		{"42", []string{"4"}, "0042"},
		{"42", []string{"5", "*"}, "***42"},
		{"7", []string{"4", "ab"}, "aba7"},
		{"é", []string{"3"}, "00é"},
		{"12345", []string{"3"}, "12345"},
		{"x", []string{"bad"}, "x"},
		{"x", nil, "x"},
		{"x", []string{"-2"}, "x"},
		{"42", []string{"50000000"}, "42"},
		{"42", []string{"9999999999"}, "42"},
		{"42", []string{"99999999999999999999"}, "42"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tmpl.Pad(tc.value, tc.args), "%q %v", tc.value, tc.args)
	}
}

func TestPad_Limit(t *testing.T) {
	assert.Len(t, tmpl.Pad("", []string{"65536", "x"}), 65536)
	assert.Equal(t, "7", tmpl.Pad("7", []string{"65537"}))
	assert.Equal(t, "7", tmpl.Format("{n:pad(50000000)}", map[string]any{"n": 7}))
}

func TestPlural(t *testing.T) {
	forms := []string{"item", "items"}
	assert.Equal(t, "item", tmpl.Plural("1", forms))
	assert.Equal(t, "item", tmpl.Plural("1.0", forms))
	assert.Equal(t, "items", tmpl.Plural("0", forms))
	assert.Equal(t, "items", tmpl.Plural("2", forms))
	assert.Equal(t, "items", tmpl.Plural("-1", forms))
	assert.Equal(t, "items", tmpl.Plural("many", forms))
	assert.Equal(t, "1", tmpl.Plural("1", []string{"item"}))
}

func TestNumber(t *testing.T) {
	cases := []struct {
		value string
		args  []string
		want  string
	}{
		{"3.5", []string{"en", "2", "2"}, "3.50"},
		{"1234.5678", []string{"en", "0", "2"}, "1234.57"},
		{"1.005", []string{"en", "0", "2"}, "1.01"},
		{"-2.5", []string{"en", "0", "0"}, "-3"},
		{"2.000", []string{"en"}, "2"},
		{"0.1", nil, "0.1"},
		{"7", []string{"en", "3"}, "7.000"},
		{"7.12345", []string{"en", "3", "1"}, "7.123"},
		{"abc", []string{"en", "2", "2"}, "abc"},
		{"", nil, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tmpl.Number(tc.value, tc.args), "%q %v", tc.value, tc.args)
	}
}

func TestExtraFormatters(t *testing.T) {
	fs := tmpl.ExtraFormatters()
	assert.Len(t, fs, 4)

	assert.Equal(t, "hi", tmpl.Trim("  hi \t", nil))
	assert.Equal(t, "hello...", tmpl.Truncate("hello world", []string{"5"}))
	assert.Equal(t, "hello", tmpl.Truncate("hello world", []string{"5", ""}))
	assert.Equal(t, "hello world", tmpl.Truncate("hello world", []string{"20"}))
	assert.Equal(t, "hello world", tmpl.Truncate("hello world", []string{"x"}))
}

func TestHash(t *testing.T) {
	assert.Equal(t,
		"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		tmpl.Hash("abc", []string{"sha3"}))
	assert.Equal(t, tmpl.Hash("abc", []string{"blake2b"}), tmpl.Hash("abc", nil))
	assert.Len(t, tmpl.Hash("abc", nil), 64)
	assert.Len(t, tmpl.Hash("abc", []string{"BLAKE2B-512"}), 128)
	assert.Len(t, tmpl.Hash("abc", []string{"sha3-512"}), 128)
	assert.Equal(t, "abc", tmpl.Hash("abc", []string{"md5"}))
}
