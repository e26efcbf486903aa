// Package hyprconf reads and patches brace-delimited window manager configuration
// files in place.
//
// It is not a parser for the configuration language. Blocks are located by name and
// brace balance at the moment they are needed, keys are matched as `name = value`
// lines inside the located span, and writes replace only the value token of a
// matched line. Everything else in the file, including comments, spacing, key
// order and unrelated blocks, is left byte for byte as it was.
//
// Reader never fails: a missing or unreadable file yields the domain defaults and a
// key that cannot be found or parsed is left out of the result. Writer fails only
// when the file is missing, the delta is invalid, or the file cannot be written;
// keys that cannot be located are skipped.
package hyprconf
