package sales

// ItemSize is the closed catalog of jewellery sizes. Ring sizes (ARO),
// necklace lengths (CM), hoop diameters (MM), one-size (UNICO) and the
// sentinel PERSONALIZADO for anything outside the catalog.
type ItemSize string

const (
	SizeAro12 ItemSize = "ARO_12"
	SizeAro13 ItemSize = "ARO_13"
	SizeAro14 ItemSize = "ARO_14"
	SizeAro15 ItemSize = "ARO_15"
	SizeAro16 ItemSize = "ARO_16"
	SizeAro17 ItemSize = "ARO_17"
	SizeAro18 ItemSize = "ARO_18"
	SizeAro19 ItemSize = "ARO_19"
	SizeAro20 ItemSize = "ARO_20"
	SizeAro21 ItemSize = "ARO_21"
	SizeAro22 ItemSize = "ARO_22"
	SizeAro23 ItemSize = "ARO_23"
	SizeAro24 ItemSize = "ARO_24"
	SizeAro25 ItemSize = "ARO_25"
	SizeAro26 ItemSize = "ARO_26"

	SizeCm40 ItemSize = "CM_40"
	SizeCm45 ItemSize = "CM_45"
	SizeCm50 ItemSize = "CM_50"
	SizeCm60 ItemSize = "CM_60"
	SizeCm70 ItemSize = "CM_70"

	SizeMm8  ItemSize = "MM_8"
	SizeMm10 ItemSize = "MM_10"
	SizeMm12 ItemSize = "MM_12"

	SizeOne    ItemSize = "UNICO"
	SizeCustom ItemSize = "PERSONALIZADO"
)

var knownSizes = map[ItemSize]struct{}{
	SizeAro12: {}, SizeAro13: {}, SizeAro14: {}, SizeAro15: {},
	SizeAro16: {}, SizeAro17: {}, SizeAro18: {}, SizeAro19: {},
	SizeAro20: {}, SizeAro21: {}, SizeAro22: {}, SizeAro23: {},
	SizeAro24: {}, SizeAro25: {}, SizeAro26: {},
	SizeCm40: {}, SizeCm45: {}, SizeCm50: {}, SizeCm60: {}, SizeCm70: {},
	SizeMm8: {}, SizeMm10: {}, SizeMm12: {},
	SizeOne: {}, SizeCustom: {},
}

// Valid reports whether the size is a catalog member
func (s ItemSize) Valid() bool {
	_, ok := knownSizes[s]
	return ok
}

// NormalizeSize matches free text against the size catalog. An exact
// symbolic match yields that member and an empty custom text; anything
// else yields the PERSONALIZADO sentinel with the original text kept
// verbatim.
func NormalizeSize(text string) (ItemSize, string) {
	candidate := ItemSize(text)
	if candidate.Valid() {
		return candidate, ""
	}
	return SizeCustom, text
}
