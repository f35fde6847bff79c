package seawater

import (
	"sort"
	"strconv"
)

// Quantity group names used by the registry.
const (
	QuantityAbsorption    = "absorption"
	QuantitySoundSpeed    = "soundspeed"
	QuantityDensity       = "density"
	QuantityDepthPressure = "depthpressure"
)

// Accuracy levels of the Leroy 1969 sound-speed equations: how many of the
// high-order correction terms are added on top of the base polynomial.
const (
	AccuracySimple   = "sim" // 1 correction term
	AccuracyBasic    = "bas" // 3 correction terms
	AccuracyComplete = "com" // 5 correction terms
)

// OutputMode selects between the summed absorption coefficient and the
// per-contributor breakdown.
type OutputMode string

const (
	ModeTotal          OutputMode = "total"
	ModePerContributor OutputMode = "contributors"
)

// ParseOutputMode validates an output-mode string. Unknown values are
// rejected, never defaulted.
func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case ModeTotal, ModePerContributor:
		return OutputMode(s), nil
	}
	return "", invalidSelector("output mode", s,
		[]string{string(ModeTotal), string(ModePerContributor)})
}

// Range is a closed interval of validity for one physical input.
type Range struct {
	Min, Max float64
}

// VariantInfo is the immutable metadata of one registered formula variant.
type VariantInfo struct {
	Quantity   string
	Tag        string
	Year       int
	Unit       string
	Equations  []int             // valid sub-equation ids, nil when single-form
	Accuracies []string          // valid accuracy levels, nil when fixed
	Regions    []string          // valid region codes (Leroy-Parthiot only)
	Domain     map[string]Range  // documented fitted range per input name
}

// options carries the discrete selector arguments of a call, with the
// documented defaults applied up front.
type options struct {
	equation int
	accuracy string
	region   string
}

func defaultOptions() options {
	return options{equation: 1, accuracy: AccuracyComplete, region: RegionCommon}
}

// Option is a discrete selector argument (sub-equation, accuracy level,
// region code) passed to a variant evaluation.
type Option func(*options)

// Equation selects a variant's sub-equation (1-based, per the original
// publication).
func Equation(n int) Option { return func(o *options) { o.equation = n } }

// Accuracy selects the accuracy level of the Leroy 1969 equations.
func Accuracy(level string) Option { return func(o *options) { o.accuracy = level } }

// Region selects the ocean/sea region of the Leroy-Parthiot 1998 pair.
func Region(code string) Option { return func(o *options) { o.region = code } }

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

var variantInfos = map[string]map[string]VariantInfo{}

func register(info VariantInfo) {
	group, ok := variantInfos[info.Quantity]
	if !ok {
		group = map[string]VariantInfo{}
		variantInfos[info.Quantity] = group
	}
	group[info.Tag] = info
}

// Variants lists the registered variants of one quantity group, sorted by
// tag. An unknown quantity yields an empty list.
func Variants(quantity string) []VariantInfo {
	group := variantInfos[quantity]
	infos := make([]VariantInfo, 0, len(group))
	for _, info := range group {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Tag < infos[j].Tag })
	return infos
}

// Quantities lists the known quantity groups.
func Quantities() []string {
	return []string{QuantityAbsorption, QuantitySoundSpeed, QuantityDensity, QuantityDepthPressure}
}

func variantTags(quantity string) []string {
	group := variantInfos[quantity]
	tags := make([]string, 0, len(group))
	for tag := range group {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func checkEquation(info VariantInfo, eq int) error {
	for _, n := range info.Equations {
		if n == eq {
			return nil
		}
	}
	allowed := make([]string, len(info.Equations))
	for i, n := range info.Equations {
		allowed[i] = strconv.Itoa(n)
	}
	return invalidSelector("equation", strconv.Itoa(eq), allowed)
}
