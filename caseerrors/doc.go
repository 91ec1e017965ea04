// Package caseerrors provides structured error types for the schemacase library.
//
// Import path: github.com/erraggy/schemacase/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a structural parse failure (fatal for the whole run)
// apart from a bad convention configuration.
//
// # Error Types
//
//   - [ScanError]: a model, view or enum block that never closes
//   - [CaseConventionError]: an unsupported casing token such as "kebab"
//   - [OptionError]: an unrecognized rule key such as "column=snake"
//   - [OverrideShapeError]: an override entry that is neither a string nor an object
//   - [DeclarationError]: a block header that no longer matches its grammar
//   - [ConfigError]: a configuration file that cannot be read or decoded
//
// # Sentinel Errors
//
//   - [ErrUnterminatedBlock]: Matches any [ScanError]
//   - [ErrUnsupportedCaseConvention]: Matches any [CaseConventionError]
//   - [ErrUnrecognizedOption]: Matches any [OptionError]
//   - [ErrInvalidOverrideShape]: Matches any [OverrideShapeError]
//   - [ErrMalformedDeclaration]: Matches any [DeclarationError]
//   - [ErrConfig]: Matches [ConfigError], [CaseConventionError], [OptionError]
//     and [OverrideShapeError]
//
// # Usage Examples
//
//	store, err := convention.New(file)
//	if errors.Is(err, caseerrors.ErrConfig) {
//	    // Report the configuration problem and exit
//	}
//
//	var scanErr *caseerrors.ScanError
//	if errors.As(err, &scanErr) {
//	    fmt.Printf("%s starting on line %d did not end\n", scanErr.Kind, scanErr.Line)
//	}
package caseerrors
