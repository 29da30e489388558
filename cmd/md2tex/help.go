package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tex [command] [flags] [title words...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to LaTeX (default)")
	fmt.Fprintln(w, "  doctor     Check for LaTeX engines and system setup")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2tex help <command>' for details on a specific command.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A title starting with a command name needs an explicit command:")
	fmt.Fprintln(w, "  md2tex convert help desk")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tex [convert] [flags] [title words...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to LaTeX documents with a title page.")
	fmt.Fprintln(w, "Title words are joined with spaces; without them the title is")
	fmt.Fprintln(w, "document.title from the config, or \"Rapportens titel\".")
	fmt.Fprintln(w, "When the first title word is a command name (convert, doctor,")
	fmt.Fprintln(w, "version, help), write the command first: md2tex convert help desk")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Markdown file or directory (default: rapport.md)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default: beside input)")
	fmt.Fprintln(w, "      --stdout              Write a single document to standard output")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Title Page:")
	fmt.Fprintln(w, "      --subtitle <s>        Subtitle (default: ChatGPT Deep Research)")
	fmt.Fprintln(w, "      --tagline <s>         Tagline (default: Underlag framtagen av AI)")
	fmt.Fprintln(w, "      --header <s>          Running header (default: subtitle)")
	fmt.Fprintln(w, "      --date <s>            Date: \"today\", \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Date]: YYYY")
	fmt.Fprintln(w, "      --language <s>        Babel language (default: swedish)")
	fmt.Fprintln(w, "      --title-from-h1       Use the first level-1 heading as title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "      --template <s>        Template name (report, extended) or .tex path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/<name>.tex overrides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --variant <s>         Substitutions: extended (default), basic")
	fmt.Fprintln(w, "      --no-math-patch       Keep \\alpha_{N}\\delta outside math mode")
	fmt.Fprintln(w, "      --number-tables       Suffix table labels with _1, _2, ...")
	fmt.Fprintln(w, "      --caption <s>         Table caption")
	fmt.Fprintln(w, "      --label <s>           Table label")
	fmt.Fprintln(w, "      --body-only           Write the body without the template")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show sizes, timing and stage logs")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn (default), error")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2TEX_CONFIG, MD2TEX_TEMPLATE, MD2TEX_INPUT_DIR, MD2TEX_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MD2TEX_LANGUAGE, MD2TEX_DATE, MD2TEX_WORKERS")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tex doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check for LaTeX engines on PATH, that the built-in templates load,")
	fmt.Fprintln(w, "and that the current directory is writable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Machine-readable output")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2tex version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2tex help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
