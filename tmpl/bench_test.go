package tmpl_test

import (
	"testing"

	"github.com/hasbyte1/go-utils/tmpl"
)

var benchData = map[string]any{
	"user":  map[string]any{"name": "Ada", "id": 42},
	"items": []string{"A", "B", "C"},
	"count": 3,
}

func BenchmarkFormat_Named(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tmpl.Format("{user.name} #{user.id:pad(6)} has {count} {count:plural(item,items)}, last {items[-1]}", benchData)
	}
}

func BenchmarkEngine_Format(b *testing.B) {
	e, _ := tmpl.New(tmpl.Options{})
	for i := 0; i < b.N; i++ {
		e.Format("{user.name} #{user.id:pad(6)} has {count} {count:plural(item,items)}, last {items[-1]}", benchData)
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Parse("price:number(en,2,2):pad(10, )|n/a")
	}
}
