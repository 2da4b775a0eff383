package polyscout

// Merge combines the auto-discovered per-feature fallback map with the
// curated override set into the final mapping. Per override entry:
//
//   - OverrideExclude removes the feature entirely, whether or not
//     auto-discovery produced anything for it.
//   - OverrideReplace discards the auto-discovered fallbacks and sets the
//     list to exactly the override's (an empty list is legitimate and
//     means "confirmed no polyfills exist").
//   - OverrideAugment appends the override fallbacks to the end of the
//     auto-discovered list, creating the record if none exists. Augmented
//     entries are not deduplicated against existing URLs.
//   - OverrideNone passes the feature through unchanged.
//
// Features absent from the override set pass through unchanged. The inputs
// are not mutated.
func Merge(discovered Mapping, overrides Overrides) Mapping {
	merged := make(Mapping, len(discovered))
	for id, rec := range discovered {
		merged[id] = &FeatureFallbacks{Fallbacks: copyFallbacks(rec.Fallbacks)}
	}

	for id, ov := range overrides {
		switch ov.Kind {
		case OverrideExclude:
			delete(merged, id)
		case OverrideReplace:
			merged[id] = &FeatureFallbacks{Fallbacks: copyFallbacks(ov.Fallbacks)}
		case OverrideAugment:
			if rec, ok := merged[id]; ok {
				rec.Fallbacks = append(rec.Fallbacks, ov.Fallbacks...)
			} else {
				merged[id] = &FeatureFallbacks{Fallbacks: copyFallbacks(ov.Fallbacks)}
			}
		}
	}

	return merged
}

// copyFallbacks returns a non-nil copy so records always serialize as
// JSON arrays, never null.
func copyFallbacks(fallbacks []Fallback) []Fallback {
	out := make([]Fallback, len(fallbacks))
	copy(out, fallbacks)
	return out
}
