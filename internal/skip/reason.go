// Package skip implements the closed validation-skip taxonomy: a symbolic
// Reason, an Info carrying template-interpolation details, and a total
// template lookup.
package skip

// Reason is one of the closed set of validation-failure classifications.
type Reason string

const (
	ReasonInvalidName         Reason = "INVALID_NAME"
	ReasonNoDescription       Reason = "NO_DESCRIPTION"
	ReasonNoValidReleases     Reason = "NO_VALID_RELEASES"
	ReasonReservedName        Reason = "RESERVED_NAME"
	ReasonNoZipAsset          Reason = "NO_ZIP_ASSET"
	ReasonModuleIDMismatch    Reason = "MODULE_ID_MISMATCH"
	ReasonMissingVersion      Reason = "MISSING_VERSION"
	ReasonMissingModuleProp   Reason = "MISSING_MODULE_PROP"
)
