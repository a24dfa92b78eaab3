package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dashboard/logger"
)

func titles(routes []Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Title
	}
	return out
}

func TestRouteOrder(t *testing.T) {
	assert.Equal(t, []string{"Home", "Sales", "Costs", "Payments", "Finances", "Messages"}, titles(Primary()))
	assert.Equal(t, []string{"Settings", "Support"}, titles(Bottom()))
	assert.Equal(t, append(titles(Primary()), titles(Bottom())...), titles(All()))
}

func TestRouteTablesAreCopied(t *testing.T) {
	p := Primary()
	p[0].Title = "Changed"
	b := Bottom()
	b[1].Path = "/elsewhere"

	assert.Equal(t, "Home", Primary()[0].Title)
	assert.Equal(t, "/support", Bottom()[1].Path)
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("Payments")
	require.True(t, ok)
	assert.Equal(t, Route{Title: "Payments", Icon: "wallet", Path: "/payments"}, r)

	_, ok = Lookup("payments")
	assert.False(t, ok)

	r, ok = LookupPath("/support")
	require.True(t, ok)
	assert.Equal(t, "Support", r.Title)

	_, ok = LookupPath("/nowhere")
	assert.False(t, ok)
}

func TestUniqueTitlesAndPaths(t *testing.T) {
	seenTitle := map[string]bool{}
	seenPath := map[string]bool{}
	for _, r := range All() {
		assert.False(t, seenTitle[r.Title], "duplicate title %s", r.Title)
		assert.False(t, seenPath[r.Path], "duplicate path %s", r.Path)
		assert.NotEmpty(t, r.Icon)
		seenTitle[r.Title] = true
		seenPath[r.Path] = true
	}
}

func TestLogNavigator(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Use(zap.New(core))
	t.Cleanup(func() { logger.Use(zap.NewNop()) })

	Log{}.Navigate("/costs")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, `going to "/costs"`, logs.All()[0].Message)
}

func TestChain(t *testing.T) {
	var got []string
	record := func(tag string) Navigator {
		return Func(func(path string) { got = append(got, tag+path) })
	}

	Chain(record("a"), nil, record("b")).Navigate("/x")

	assert.Equal(t, []string{"a/x", "b/x"}, got)
}

func TestNilFunc(t *testing.T) {
	var f Func
	assert.NotPanics(t, func() { f.Navigate("/") })
}
