// Package cli provides the interactive fort command-line front-end.
//
// It prompts once for the master password (without echo when stdin is a
// terminal), builds a generator.PasswordGenerator and then serves a small
// REPL:
//
//	help                                  show available commands
//	templates                             list template names in catalog order
//	algorithms                            list supported hash algorithms
//	sites                                 list sites with a stored profile
//	site [name]                           derive using the site's profile (prompts if omitted)
//	gen <site> [template] [counter] [len] derive with explicit parameters
//	exit | quit                           wipe the master key and leave
//
// Errors are reported to the user and logged; they never end the session.
// Passwords are printed to the terminal only and never logged.
package cli
