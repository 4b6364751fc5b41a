// Package core provides the part entry generator for focset.
//
// This package contains the submission logic separated from UI concerns.
// It validates a [model.PartSelection], draws a six digit identifier,
// resolves part names through the catalog and appends the rendered entry
// to the two DLC files next to the game executable.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Warnings are answered through an injected [Confirmer]
//   - UI-specific logic belongs in the cli package, not here
//
// # Submission
//
// [Generator.Submit] runs the steps in a fixed order:
//
//  1. [Validate] the selection (executable, classes, display name, ...)
//  2. Create the DLC directory and draw an identifier
//  3. Fail with [ErrDuplicateIdentifier] if the primary file already uses it
//  4. Resolve parts, confirming each warning; a declined warning aborts
//  5. Append the block to both files
//
// Nothing reaches either file unless steps 1-4 succeed. Duplicate
// identifiers are reported, never retried.
package core
