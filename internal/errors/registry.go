package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// Sentinels for errors.Is checks. Matching is by code, so any error created
// with New(code) compares equal to the sentinel of the same code.
var (
	ErrInvalidTag       = &Error{Code: "E101"}
	ErrInvalidAttribute = &Error{Code: "E102"}
	ErrNilParent        = &Error{Code: "E103"}
	ErrHierarchyRequest = &Error{Code: "E104"}
	ErrConfig           = &Error{Code: "E120"}
	ErrInvalidConfig    = &Error{Code: "E121"}
	ErrOutput           = &Error{Code: "E140"}
	ErrInvalidInput     = &Error{Code: "E141"}
)

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Tree Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryTree,
		Message:  "Invalid tag name",
		Detail:   "Tag names must be non-empty and contain no whitespace, quotes, '/', '<', '>' or '='.",
	},
	"E102": {
		Category: CategoryTree,
		Message:  "Invalid attribute name",
		Detail:   "Attribute names must be non-empty and contain no whitespace, quotes, '/', '<', '>' or '='.",
	},
	"E103": {
		Category: CategoryTree,
		Message:  "Parent node is nil",
		Detail:   "A node can only be attached to an existing parent.",
	},
	"E104": {
		Category: CategoryTree,
		Message:  "Hierarchy request error",
		Detail:   "The node cannot be inserted at this point in the tree.",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "typewriter.json could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Output write failed",
		Detail:   "The rendered page could not be written.",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Invalid command input",
		Detail:   "A flag or argument has an unusable value.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
