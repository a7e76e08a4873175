// Package paths provides the path handling shared by dotstash components.
//
// It handles:
//
//   - Home directory expansion of "~/" patterns, against an explicit home
//     value rather than the process environment
//   - Path normalization
//   - Path-segment containment checks (so /a/b contains /a/b/c but not /a/bc)
//   - Validation of scope names and backup keys read from the tracked config
package paths
