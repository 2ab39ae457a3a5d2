package address

// ValidationType records how an address was checked.
type ValidationType int

const (
	ValidationUnknown ValidationType = iota
	ValidationNotChecked
	ValidationPafCheckFailed
	ValidationNlpgCheckFailed
	ValidationPafCheckValid
	ValidationNlpgCheckValid
)

var validationNames = map[ValidationType]string{
	ValidationUnknown:         "unknown",
	ValidationNotChecked:      "not_checked",
	ValidationPafCheckFailed:  "paf_check_failed",
	ValidationNlpgCheckFailed: "nlpg_check_failed",
	ValidationPafCheckValid:   "paf_check_valid",
	ValidationNlpgCheckValid:  "nlpg_check_valid",
}

func (v ValidationType) String() string {
	if name, ok := validationNames[v]; ok {
		return name
	}
	return validationNames[ValidationUnknown]
}

// ParseValidationType is the inverse of ValidationType.String.
// Unrecognised names give ValidationUnknown.
func ParseValidationType(name string) ValidationType {
	for v, n := range validationNames {
		if n == name {
			return v
		}
	}
	return ValidationUnknown
}

// AddressInfo holds one street address in each of the formats it is known in.
type AddressInfo struct {
	ID               int
	PAF              PAFAddress
	BS7666           BS7666Address
	Simple           SimpleAddress
	VerificationCode string
	ValidationType   ValidationType
}

// SimpleAddress lays out the best available source: the gazetteer
// address, then the PAF address, then any lines stored as they are.
func (ai AddressInfo) SimpleAddress(opts Options) SimpleAddress {
	switch {
	case ai.BS7666.HasAddress():
		return ai.BS7666.Compose(opts)
	case ai.PAF.HasAddress():
		return ai.PAF.Compose(opts)
	}
	return ai.Simple
}
