package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// JSON keys of the publisher banner payload.
const (
	KeyPublisherKey = "publisher_key"
	KeyTitle        = "title"
	KeyName         = "name"
	KeyDescription  = "description"
	KeyBackground   = "background"
	KeyLogo         = "logo"
	KeyProvider     = "provider"
	KeyLinks        = "links"
	KeyStatus       = "status"
)

// WalletStatus is the state of a creator's linked payment-provider wallet.
// Values outside the known range are kept verbatim (see IsKnown).
type WalletStatus int32

const (
	WalletStatusNotConnected            WalletStatus = 0
	WalletStatusConnected               WalletStatus = 1
	WalletStatusVerified                WalletStatus = 2
	WalletStatusDisconnectedNotVerified WalletStatus = 3
	WalletStatusDisconnectedVerified    WalletStatus = 4
	WalletStatusPending                 WalletStatus = 5
)

var walletStatusNames = map[WalletStatus]string{
	WalletStatusNotConnected:            "NotConnected",
	WalletStatusConnected:               "Connected",
	WalletStatusVerified:                "Verified",
	WalletStatusDisconnectedNotVerified: "DisconnectedNotVerified",
	WalletStatusDisconnectedVerified:    "DisconnectedVerified",
	WalletStatusPending:                 "Pending",
}

// IsKnown returns true if the status is one of the declared values.
func (s WalletStatus) IsKnown() bool {
	_, ok := walletStatusNames[s]
	return ok
}

// Raw returns the integer carried on the wire.
func (s WalletStatus) Raw() int32 {
	return int32(s)
}

func (s WalletStatus) String() string {
	if name, ok := walletStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int32(s))
}

// Links maps provider-defined action names (e.g. "verify") to URLs.
// The zero value is unset; a set Links always has at least one entry.
type Links struct {
	m map[string]string
}

// NewLinks copies m. A nil or empty map yields unset Links.
func NewLinks(m map[string]string) Links {
	if len(m) == 0 {
		return Links{}
	}
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Links{m: cp}
}

// IsSet reports whether the banner carried a links object.
func (l Links) IsSet() bool {
	return l.m != nil
}

// Len returns the number of links.
func (l Links) Len() int {
	return len(l.m)
}

// Get returns the URL for name.
func (l Links) Get(name string) (string, bool) {
	v, ok := l.m[name]
	return v, ok
}

// Keys returns link names in sorted order.
func (l Links) Keys() []string {
	keys := make([]string, 0, len(l.m))
	for k := range l.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the links, or nil when unset.
func (l Links) Map() map[string]string {
	if l.m == nil {
		return nil
	}
	cp := make(map[string]string, len(l.m))
	for k, v := range l.m {
		cp[k] = v
	}
	return cp
}

func (l Links) String() string {
	if !l.IsSet() {
		return "null"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range l.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(l.m[k])
	}
	b.WriteByte('}')
	return b.String()
}

// BannerFields carries the values for NewBanner.
type BannerFields struct {
	PublisherKey string
	Title        string
	Name         string
	Description  string
	Background   string
	Logo         string
	Provider     string
	Links        map[string]string
	Status       WalletStatus
}

// Banner is a creator banner as shown to end users. It is immutable once
// constructed and safe for concurrent reads.
type Banner struct {
	publisherKey string
	title        string
	name         string
	description  string
	background   string
	logo         string
	provider     string
	links        Links
	status       WalletStatus
}

// NewBanner builds a Banner from f. The links map is copied.
func NewBanner(f BannerFields) *Banner {
	return &Banner{
		publisherKey: f.PublisherKey,
		title:        f.Title,
		name:         f.Name,
		description:  f.Description,
		background:   f.Background,
		logo:         f.Logo,
		provider:     f.Provider,
		links:        NewLinks(f.Links),
		status:       f.Status,
	}
}

func (b *Banner) PublisherKey() string { return b.publisherKey }
func (b *Banner) Title() string        { return b.title }
func (b *Banner) Name() string         { return b.name }
func (b *Banner) Description() string  { return b.description }
func (b *Banner) Background() string   { return b.background }
func (b *Banner) Logo() string         { return b.logo }
func (b *Banner) Provider() string     { return b.provider }
func (b *Banner) Links() Links         { return b.links }
func (b *Banner) Status() WalletStatus { return b.status }

// String returns a single-line dump of every field, for diagnostics only.
func (b *Banner) String() string {
	return fmt.Sprintf(
		"Banner{publisherKey=%q, title=%q, name=%q, description=%q, background=%q, logo=%q, provider=%q, links=%s, status=%s}",
		b.publisherKey, b.title, b.name, b.description, b.background, b.logo, b.provider, b.links, b.status,
	)
}

// bannerJSON mirrors the payload schema accepted by ParseBanner.
type bannerJSON struct {
	PublisherKey string            `json:"publisher_key"`
	Title        string            `json:"title"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Background   string            `json:"background"`
	Logo         string            `json:"logo"`
	Provider     string            `json:"provider"`
	Links        map[string]string `json:"links,omitempty"`
	Status       int32             `json:"status"`
}

// MarshalJSON encodes the banner in the same schema ParseBanner reads.
// Unset links are omitted.
func (b *Banner) MarshalJSON() ([]byte, error) {
	return json.Marshal(bannerJSON{
		PublisherKey: b.publisherKey,
		Title:        b.title,
		Name:         b.name,
		Description:  b.description,
		Background:   b.background,
		Logo:         b.logo,
		Provider:     b.provider,
		Links:        b.links.m,
		Status:       b.status.Raw(),
	})
}
