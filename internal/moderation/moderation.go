// Package moderation defines the content-moderation verdict type and the
// offline denylist policy used when no external classifier is reachable.
package moderation

import "strings"

// Verdict is the outcome of a content check. Reason is empty when the
// content is appropriate.
type Verdict struct {
	Appropriate bool   `json:"is_appropriate"`
	Reason      string `json:"reason,omitempty"`
}

// Policy decides whether a piece of user-generated text is acceptable.
// Implementations must be stateless and side-effect free.
type Policy interface {
	Check(content string) Verdict
}

// denylist covers the minimum bar for degraded-mode moderation. A real
// classifier is expected to front this in production.
var denylist = []string{"spam", "scam", "hate", "abuse"}

// DenylistPolicy flags content containing any denylisted term,
// case-insensitively.
type DenylistPolicy struct{}

func NewDenylistPolicy() *DenylistPolicy {
	return &DenylistPolicy{}
}

func (p *DenylistPolicy) Check(content string) Verdict {
	lowered := strings.ToLower(content)
	for _, term := range denylist {
		if strings.Contains(lowered, term) {
			return Verdict{Appropriate: false, Reason: "content contains inappropriate language"}
		}
	}
	return Verdict{Appropriate: true}
}
