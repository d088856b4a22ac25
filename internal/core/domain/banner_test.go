package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verifiedBannerJSON = `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"uphold","status":2}`

func requireParseError(t *testing.T, err error, kind ParseErrorKind, key string) {
	t.Helper()
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %v", err)
	assert.Equal(t, kind, pe.Kind)
	assert.Equal(t, key, pe.Key)
}

func TestParseBanner_WithoutLinks(t *testing.T) {
	b, err := ParseBannerString(verifiedBannerJSON)
	require.NoError(t, err)

	assert.Equal(t, "p1", b.PublisherKey())
	assert.Equal(t, "T", b.Title())
	assert.Equal(t, "N", b.Name())
	assert.Equal(t, "D", b.Description())
	assert.Equal(t, "B", b.Background())
	assert.Equal(t, "L", b.Logo())
	assert.Equal(t, "uphold", b.Provider())
	assert.Equal(t, WalletStatusVerified, b.Status())
	assert.False(t, b.Links().IsSet())
	assert.Nil(t, b.Links().Map())
}

func TestParseBanner_WithLinks(t *testing.T) {
	payload := `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"uphold","links":{"a":"url1","b":"url2"},"status":2}`

	b, err := ParseBannerString(payload)
	require.NoError(t, err)

	links := b.Links()
	require.True(t, links.IsSet())
	assert.Equal(t, map[string]string{"a": "url1", "b": "url2"}, links.Map())
	assert.Equal(t, []string{"a", "b"}, links.Keys())
	assert.Equal(t, 2, links.Len())

	url, ok := links.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "url2", url)
}

func TestParseBanner_LinksLeftUnset(t *testing.T) {
	tests := []struct {
		name  string
		links string
	}{
		{"empty object", `{}`},
		{"null", `null`},
		{"array", `["a"]`},
		{"string", `"verify"`},
		{"number", `7`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"uphold","links":` + tt.links + `,"status":0}`
			b, err := ParseBannerString(payload)
			require.NoError(t, err)
			assert.False(t, b.Links().IsSet())
		})
	}
}

func TestParseBanner_MissingField(t *testing.T) {
	for _, key := range []string{
		KeyPublisherKey, KeyTitle, KeyName, KeyDescription,
		KeyBackground, KeyLogo, KeyProvider, KeyStatus,
	} {
		t.Run(key, func(t *testing.T) {
			var obj map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(verifiedBannerJSON), &obj))
			delete(obj, key)
			payload, err := json.Marshal(obj)
			require.NoError(t, err)

			b, err := ParseBanner(payload)
			assert.Nil(t, b)
			requireParseError(t, err, MissingField, key)
		})
	}
}

func TestParseBanner_MissingProvider(t *testing.T) {
	payload := `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","status":2}`

	_, err := ParseBannerString(payload)
	requireParseError(t, err, MissingField, "provider")
	assert.Contains(t, err.Error(), `missing field "provider"`)
}

func TestParseBanner_NullRequiredField(t *testing.T) {
	payload := `{"publisher_key":"p1","title":null,"name":"N","description":"D","background":"B","logo":"L","provider":"x","status":2}`

	_, err := ParseBannerString(payload)
	requireParseError(t, err, MissingField, KeyTitle)
}

func TestParseBanner_TypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		key     string
	}{
		{
			name:    "numeric title",
			payload: `{"publisher_key":"p1","title":5,"name":"N","description":"D","background":"B","logo":"L","provider":"x","status":2}`,
			key:     KeyTitle,
		},
		{
			name:    "string status",
			payload: `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"x","status":"2"}`,
			key:     KeyStatus,
		},
		{
			name:    "fractional status",
			payload: `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"x","status":2.5}`,
			key:     KeyStatus,
		},
		{
			name:    "status beyond int32",
			payload: `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"x","status":4294967296}`,
			key:     KeyStatus,
		},
		{
			name:    "non-string link",
			payload: `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"x","links":{"verify":1},"status":2}`,
			key:     "links.verify",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBannerString(tt.payload)
			assert.Nil(t, b)
			requireParseError(t, err, TypeMismatch, tt.key)
		})
	}
}

func TestParseBanner_Malformed(t *testing.T) {
	for _, payload := range []string{``, `{`, `[]`, `"banner"`, `null`, `{"title":"T",}`} {
		t.Run(payload, func(t *testing.T) {
			b, err := ParseBannerString(payload)
			assert.Nil(t, b)
			requireParseError(t, err, MalformedJSON, "")
		})
	}
}

func TestParseBanner_IntegralFloatStatus(t *testing.T) {
	payload := `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"x","status":5.0}`

	b, err := ParseBannerString(payload)
	require.NoError(t, err)
	assert.Equal(t, WalletStatusPending, b.Status())
}

func TestParseBanner_UnknownStatusKept(t *testing.T) {
	payload := `{"publisher_key":"p1","title":"T","name":"N","description":"D","background":"B","logo":"L","provider":"x","status":42}`

	b, err := ParseBannerString(payload)
	require.NoError(t, err)
	assert.False(t, b.Status().IsKnown())
	assert.Equal(t, int32(42), b.Status().Raw())
	assert.Equal(t, "Unknown(42)", b.Status().String())
}

func TestWalletStatus_String(t *testing.T) {
	tests := []struct {
		status WalletStatus
		want   string
	}{
		{WalletStatusNotConnected, "NotConnected"},
		{WalletStatusConnected, "Connected"},
		{WalletStatusVerified, "Verified"},
		{WalletStatusDisconnectedNotVerified, "DisconnectedNotVerified"},
		{WalletStatusDisconnectedVerified, "DisconnectedVerified"},
		{WalletStatusPending, "Pending"},
		{WalletStatus(-1), "Unknown(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestNewBanner_CopiesLinks(t *testing.T) {
	src := map[string]string{"verify": "https://example.com/verify"}
	b := NewBanner(BannerFields{PublisherKey: "p1", Links: src})

	src["verify"] = "changed"
	url, _ := b.Links().Get("verify")
	assert.Equal(t, "https://example.com/verify", url)

	out := b.Links().Map()
	out["verify"] = "changed again"
	url, _ = b.Links().Get("verify")
	assert.Equal(t, "https://example.com/verify", url)
}

func TestNewBanner_EmptyLinksUnset(t *testing.T) {
	b := NewBanner(BannerFields{PublisherKey: "p1", Links: map[string]string{}})
	assert.False(t, b.Links().IsSet())
}

func TestBanner_String(t *testing.T) {
	b := NewBanner(BannerFields{
		PublisherKey: "p1",
		Title:        "T",
		Provider:     "uphold",
		Links:        map[string]string{"b": "u2", "a": "u1"},
		Status:       WalletStatusConnected,
	})

	s := b.String()
	assert.Contains(t, s, `publisherKey="p1"`)
	assert.Contains(t, s, `provider="uphold"`)
	assert.Contains(t, s, "links={a=u1, b=u2}")
	assert.Contains(t, s, "status=Connected")
	assert.NotContains(t, s, "\n")

	assert.Contains(t, NewBanner(BannerFields{}).String(), "links=null")
}

func TestBanner_MarshalJSON_RoundTrip(t *testing.T) {
	b := NewBanner(BannerFields{
		PublisherKey: "p1", Title: "T", Name: "N", Description: "D",
		Background: "B", Logo: "L", Provider: "uphold",
		Links:  map[string]string{"verify": "https://example.com"},
		Status: WalletStatus(9),
	})

	data, err := json.Marshal(b)
	require.NoError(t, err)

	back, err := ParseBanner(data)
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestBanner_MarshalJSON_OmitsUnsetLinks(t *testing.T) {
	b, err := ParseBannerString(verifiedBannerJSON)
	require.NoError(t, err)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.NotContains(t, string(data), KeyLinks)
	assert.JSONEq(t, verifiedBannerJSON, string(data))
}
