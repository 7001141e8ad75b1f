// Package printer formats the non-interactive command output with colors.
// Colors follow fatih/color's terminal detection and NO_COLOR.
package printer
