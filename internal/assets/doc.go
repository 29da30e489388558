// Package assets provides the LaTeX document templates used by the converter.
//
// Templates come from two sources, both read through fs.FS:
//
//   - the embedded set compiled into the binary (report, extended)
//   - an optional asset directory laid out as {base}/templates/{name}.tex
//
// A Resolver consults the asset directory first and falls back to the
// embedded set when a name is missing there, so one template can be
// overridden while the others stay built in. A value that looks like a path
// (it has a separator or ends in .tex) is read as a file instead.
//
// Templates are Go text/templates using << and >> as delimiters, so that
// LaTeX braces never collide with template actions. Available fields:
// Title, Subtitle, Tagline, Header, Date, Language and Body.
//
// Asset directories are opened with os.OpenRoot: names are restricted to
// letters, digits, '-' and '_', and symlinks cannot lead outside the base.
package assets
