// Package contacts is a read-only emergency contact directory. The only decisions it
// makes are how a client should place a call or share the page.
package contacts

import (
	"fmt"
	"strings"

	"safesteps/internal/capability"
	"safesteps/internal/notice"
)

type Kind string

const (
	Emergency Kind = "emergency"
	Support   Kind = "support"
	Medical   Kind = "medical"
)

type Contact struct {
	ID          string
	Name        string
	Number      string
	Description string
	Kind        Kind
	Available   string
}

// Hotline is the number behind the "Call 911 Now" banner.
var Hotline = Contact{
	ID:          "911",
	Name:        "Emergency Services",
	Number:      "911",
	Description: "Police, fire, or medical emergencies",
	Kind:        Emergency,
	Available:   "24/7",
}

type ActionKind string

const (
	Dial  ActionKind = "dial"
	Copy  ActionKind = "copy"
	Share ActionKind = "share"
)

// Action tells the front-end which browser capability to invoke.
type Action struct {
	Kind   ActionKind
	URI    string
	Text   string
	Title  string
	URL    string
	Notice *notice.Notice
}

// InitiateCall dials on touch clients and falls back to copying the number elsewhere.
// The copy is best effort, so no capability gates it.
func InitiateCall(client capability.Client, name, number string) Action {
	if client.IsTouch() {
		return Action{Kind: Dial, URI: "tel:" + number}
	}
	return Action{
		Kind: Copy,
		Text: number,
		Notice: &notice.Notice{
			Level:       notice.Success,
			Message:     fmt.Sprintf("%s: %s", name, number),
			Description: "Number copied to clipboard",
		},
	}
}

const (
	shareTitle = "Emergency Contacts - SafeSteps"
	shareText  = "Important emergency contact numbers everyone should know"
)

// SharePage prefers the native share sheet and otherwise copies the link.
func SharePage(client capability.Client, pageURL string) Action {
	if client.Has(capability.Share) {
		return Action{Kind: Share, Title: shareTitle, Text: shareText, URL: pageURL}
	}
	return Action{
		Kind:   Copy,
		Text:   pageURL,
		Notice: notice.New(notice.Success, "Link copied to clipboard!"),
	}
}

const ExportFilename = "emergency-contacts.txt"

func ExportText(list []Contact) string {
	lines := make([]string, 0, len(list))
	for _, c := range list {
		lines = append(lines, fmt.Sprintf("%s: %s - %s", c.Name, c.Number, c.Description))
	}
	return "EMERGENCY CONTACTS\n\n" + strings.Join(lines, "\n") + "\n\nKeep this list handy at all times!"
}
