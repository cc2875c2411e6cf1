// Package sanitize provides the text and filename sanitization primitives
// shared by the media, request, and plugin layers.
// The functions are pure and never fail: hostile input degrades to a safe value.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// invalidCharsPattern includes ASCII control characters (0-31) and Windows-restricted characters: < > : " / \ | ? *.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	invalidCharsPattern = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

	// tagsPattern matches angle-bracketed markup fragments stripped from text fields.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	tagsPattern = regexp.MustCompile(`<[^>]*>`)

	// controlCharsPattern matches ASCII control characters, including DEL, stripped from text fields.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	controlCharsPattern = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

	// whitespaceRunsPattern matches whitespace runs collapsed into a single space.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	whitespaceRunsPattern = regexp.MustCompile(`\s+`)

	// windowsReservedNames is a map of filenames that are reserved on Windows systems.
	// These names are case-insensitive and cannot be used as filenames or folder names.
	// Examples include "CON", "PRN", "AUX", "NUL", and COM1-COM9, LPT1-LPT9.
	//nolint:gochecknoglobals // This is an immutable map used as a constant for validation purposes.
	windowsReservedNames = map[string]struct{}{
		"CON":  {},
		"PRN":  {},
		"AUX":  {},
		"NUL":  {},
		"COM1": {},
		"COM2": {},
		"COM3": {},
		"COM4": {},
		"COM5": {},
		"COM6": {},
		"COM7": {},
		"COM8": {},
		"COM9": {},
		"LPT1": {},
		"LPT2": {},
		"LPT3": {},
		"LPT4": {},
		"LPT5": {},
		"LPT6": {},
		"LPT7": {},
		"LPT8": {},
		"LPT9": {},
	}
)

// Filename sanitizes a filename or folder name to be valid on both Windows and Unix-like systems.
// It removes or replaces invalid characters, handles Windows reserved names, and ensures the filename is not empty.
func Filename(name string) string {
	if name == "" {
		return ""
	}

	result := invalidCharsPattern.ReplaceAllString(name, "_")

	// Extract base filename (without extension) for comparison
	baseName := result
	if dotIndex := strings.LastIndex(result, "."); dotIndex != -1 {
		baseName = result[:dotIndex]
	}

	// If base name is a Windows reserved name, prepend an underscore.
	if _, ok := windowsReservedNames[strings.ToUpper(baseName)]; ok {
		result = "_" + result
	}

	// Remove trailing dots from the filename.
	result = strings.TrimRight(result, ".")

	// Ensure the filename is not empty.
	if result == "" {
		result = "_"
	}

	return result
}

// TextField sanitizes a single-line text value: markup fragments and control
// characters are removed, whitespace runs collapse into a single space, and
// surrounding whitespace is trimmed.
// A value that is already plain single-line text comes back unchanged,
// so textual IP addresses and similar tokens survive the pass byte-for-byte.
func TextField(value string) string {
	if value == "" {
		return ""
	}

	result := tagsPattern.ReplaceAllString(value, "")
	result = controlCharsPattern.ReplaceAllString(result, "")
	result = whitespaceRunsPattern.ReplaceAllString(result, " ")

	return strings.TrimSpace(result)
}
