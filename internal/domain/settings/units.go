package settings

// AllUnits is the unit filter that matches every unit.
const AllUnits = "ALL"

var unitCodes = []string{
	"ADR", "ALP", "ALV", "ANK", "ARD", "ARK", "ATL", "CDM", "CGR", "CHR", "CHT", "CLD",
	"CTL", "CTR", "CTY", "CWS", "EDT", "EKM", "EMY", "ETP", "GVR", "HPD", "IJK", "KDR",
	"KGD", "KHD", "KKD", "KKM", "KLM", "KLP", "KMG", "KMR", "KMY", "KNI", "KNP", "KNR",
	"KPM", "KPT", "KTD", "KTM", "KTP", "KTR", "KYM", "MKD", "MLA", "MLP", "MLT", "MND",
	"MNR", "MPY", "MVK", "MVP", "NBR", "NDD", "NDM", "NPR", "NTA", "PBR", "PDK", "PDM",
	"PLA", "PLD", "PLK", "PLR", "PMN", "PNI", "PNK", "PNR", "PPD", "PPM", "PRK", "PSL",
	"PTA", "PVM", "PVR", "RNI", "RWA", "RWE", "RWK", "RWM", "SBY", "TBN", "TDP", "TDY",
	"TLY", "TPM", "TSR", "TSY", "TVL", "TVM", "VDK", "VJD", "VDA", "VKB", "VKM", "VND",
	"VRD", "VTR", "VZM",
}

var unitSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(unitCodes))
	for _, code := range unitCodes {
		set[code] = struct{}{}
	}
	return set
}()

// UnitCodes returns the known unit codes in display order.
func UnitCodes() []string {
	return cloneStrings(unitCodes)
}

// IsKnownUnit reports whether code is a known unit code.
func IsKnownUnit(code string) bool {
	_, ok := unitSet[code]
	return ok
}
