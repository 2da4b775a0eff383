package polyscout

import (
	"context"
	"encoding/json"
	"strings"
)

// OverrideKind identifies the merge policy an override entry selects.
type OverrideKind int

// Override merge policies. An entry that sets none of the override fields
// resolves to OverrideNone and is a no-op at merge time.
const (
	OverrideNone OverrideKind = iota
	OverrideExclude
	OverrideReplace
	OverrideAugment
)

// Override is a manually authored correction to the auto-discovered data,
// resolved to an explicit variant at load time. Flag precedence (exclude
// over replace over augment) is decided here, once, so the merge never
// re-checks flag combinations.
type Override struct {
	Kind      OverrideKind
	Fallbacks []Fallback
}

// Overrides holds the curated override set keyed by feature identifier.
type Overrides map[string]Override

// OverrideSource loads the curated override set.
type OverrideSource interface {
	// Overrides returns the override set. A missing override document is
	// the legitimate empty case; a malformed one is an EINVALID failure.
	Overrides(ctx context.Context) (Overrides, error)
}

// overrideRecord is the on-disk shape of one override entry.
type overrideRecord struct {
	Exclude   bool       `json:"exclude"`
	Replace   bool       `json:"replace"`
	Fallbacks []Fallback `json:"fallbacks"`
}

// ParseOverrides parses the override document. Keys beginning with an
// underscore are comments and are ignored. A malformed document is a hard
// EINVALID failure; it must never degrade to an empty override set.
func ParseOverrides(data []byte) (Overrides, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Errorf(EINVALID, "malformed overrides document: %v", err)
	}

	overrides := make(Overrides, len(raw))
	for id, entry := range raw {
		if strings.HasPrefix(id, "_") {
			continue
		}

		var rec overrideRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			return nil, Errorf(EINVALID, "malformed override entry %q: %v", id, err)
		}
		overrides[id] = resolveOverride(rec)
	}
	return overrides, nil
}

// resolveOverride maps an on-disk record to its variant. Exclude is
// authoritative when combined with other fields.
func resolveOverride(rec overrideRecord) Override {
	fallbacks := make([]Fallback, 0, len(rec.Fallbacks))
	for _, fb := range rec.Fallbacks {
		if fb.Type == "" {
			fb.Type = FallbackTypePolyfill
		}
		fallbacks = append(fallbacks, fb)
	}

	switch {
	case rec.Exclude:
		return Override{Kind: OverrideExclude}
	case rec.Replace:
		return Override{Kind: OverrideReplace, Fallbacks: fallbacks}
	case rec.Fallbacks != nil:
		return Override{Kind: OverrideAugment, Fallbacks: fallbacks}
	default:
		return Override{Kind: OverrideNone}
	}
}
