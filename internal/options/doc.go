// Package options loads the optional HCL options file. Values from the file
// sit between built-in defaults and explicit command-line flags: flags win,
// file values fill whatever the flags left unset.
package options
