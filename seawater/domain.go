package seawater

// Every formula is an empirical fit, valid over the range of the dataset it
// was fitted on. Evaluation never rejects out-of-range inputs by itself;
// ValidateDomain is the opt-in check against the documented fitted range.

// ValidateDomain reports whether the sample lies inside the documented fitted
// range of the named variant. Inputs the variant's domain does not mention
// are not checked. The first offending value is returned as a DomainError.
func ValidateDomain(tag string, s Sample) error {
	info, ok := findVariant(tag)
	if !ok {
		return invalidSelector("variant", tag, allTags())
	}
	for _, in := range domainInputs(s) {
		r, checked := info.Domain[in.name]
		if !checked {
			continue
		}
		for _, v := range in.vals {
			if v < r.Min || v > r.Max {
				return &DomainError{Input: in.name, Value: v,
					Reason: "outside fitted range of " + tag}
			}
		}
	}
	return nil
}

func domainInputs(s Sample) []namedInput {
	return []namedInput{
		{"temperature", s.T},
		{"salinity", s.S},
		{"depth", s.Z},
		{"pressure", s.P},
		{"frequency", s.F},
		{"pH", s.PH},
		{"latitude", s.Lat},
	}
}

func findVariant(tag string) (VariantInfo, bool) {
	for _, quantity := range Quantities() {
		if info, ok := variantInfos[quantity][tag]; ok {
			return info, true
		}
	}
	return VariantInfo{}, false
}

func allTags() []string {
	var tags []string
	for _, quantity := range Quantities() {
		tags = append(tags, variantTags(quantity)...)
	}
	return tags
}
