// Package gen renders schema bindings and drives generation over a whole
// schema.
//
// Each definition goes through plan, emit and a language renderer on its
// own. Renderers use text/template; Go output is run through go/format.
//
// Output layouts:
//   - one file per definition, placed in its namespace directory
//   - one combined file, <file_name>_generated.<ext>
package gen
