package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKnownPaths(t *testing.T) {
	cases := []struct {
		path string
		want Route
	}{
		{"", Create()},
		{"/", Create()},
		{"/new", Create()},
		{"new", Create()},
		{"/new/", Create()},
		{"/m/abc123", Respond("abc123")},
		{"m/abc123", Respond("abc123")},
		{"/m/abc123/", Respond("abc123")},
		{"/host/abc123", Host("abc123")},
		{"//host/abc123//", Host("abc123")},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.path), "path %q", tc.path)
	}
}

func TestParsePermissiveFallback(t *testing.T) {
	// Всё нераспознанное - экран создания, ошибок не бывает
	for _, path := range []string{
		"///",
		"/m",
		"/m/",
		"/m//",
		"/m/a/b",
		"/host",
		"/host/",
		"/unknown/abc",
		"/new/extra",
		"/M/abc", // регистр имеет значение
		"\x00weird\npath",
	} {
		assert.Equal(t, Create(), Parse(path), "path %q", path)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, r := range []Route{
		Create(),
		Respond("abc123"),
		Respond("x"),
		Host("qwerty9876"),
	} {
		assert.Equal(t, r, Parse(Serialize(r)))
	}
}

func TestSerializePaths(t *testing.T) {
	assert.Equal(t, "/new", Serialize(Create()))
	assert.Equal(t, "/m/abc", Serialize(Respond("abc")))
	assert.Equal(t, "/host/abc", Serialize(Host("abc")))
}
