// Package capability describes what the calling browser can do. The service never
// touches browser APIs itself; it decides which action to hand back based on the
// capabilities a client declares.
package capability

import (
	"sort"
	"strings"
)

type Capability string

const (
	SpeechSynthesis   Capability = "speech-synthesis"
	SpeechRecognition Capability = "speech-recognition"
	Share             Capability = "share"
)

// Header is the request header a front-end uses to declare its capabilities,
// e.g. "X-Client-Capabilities: speech-synthesis, share".
const Header = "X-Client-Capabilities"

var known = map[Capability]bool{
	SpeechSynthesis:   true,
	SpeechRecognition: true,
	Share:             true,
}

var touchMarkers = []string{"Mobile", "Android", "iPhone"}

type Client struct {
	UserAgent    string
	Capabilities map[Capability]bool
}

// Parse builds a Client from a user agent and a comma separated capability list.
// Unknown capability names are ignored.
func Parse(userAgent, declared string) Client {
	c := Client{UserAgent: userAgent, Capabilities: map[Capability]bool{}}
	for _, raw := range strings.Split(declared, ",") {
		name := Capability(strings.ToLower(strings.TrimSpace(raw)))
		if known[name] {
			c.Capabilities[name] = true
		}
	}
	return c
}

func (c Client) Has(cap Capability) bool {
	return c.Capabilities[cap]
}

// IsTouch reports whether the user agent looks like a phone or tablet.
func (c Client) IsTouch() bool {
	for _, m := range touchMarkers {
		if strings.Contains(c.UserAgent, m) {
			return true
		}
	}
	return false
}

func (c Client) List() []string {
	out := make([]string, 0, len(c.Capabilities))
	for k, ok := range c.Capabilities {
		if ok {
			out = append(out, string(k))
		}
	}
	sort.Strings(out)
	return out
}
