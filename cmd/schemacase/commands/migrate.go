package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/schemacase/convention"
	"github.com/erraggy/schemacase/internal/cliutil"
	"github.com/erraggy/schemacase/internal/conffile"
	"github.com/erraggy/schemacase/internal/fileutil"
	"github.com/erraggy/schemacase/internal/prettyprint"
	"github.com/erraggy/schemacase/rewriter"
)

// MigrateFlags contains flags for the migrate command
type MigrateFlags struct {
	File         string
	ConfigFile   string
	DryRun       bool
	TableCase    string
	FieldCase    string
	EnumCase     string
	MapTableCase string
	MapFieldCase string
	MapEnumCase  string
	Pluralize    bool
	UsesNextAuth bool
	NoFormat     bool
	Quiet        bool
	Verbose      bool
}

// SetupMigrateFlags creates and configures a FlagSet for the migrate command.
// Returns the FlagSet and a MigrateFlags struct with bound flag variables.
func SetupMigrateFlags() (*flag.FlagSet, *MigrateFlags) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	flags := &MigrateFlags{}

	fs.StringVar(&flags.File, "f", DefaultSchemaPath, "schema file to migrate, or '-' for stdin")
	fs.StringVar(&flags.File, "file", DefaultSchemaPath, "schema file to migrate, or '-' for stdin")
	fs.StringVar(&flags.ConfigFile, "c", conffile.DefaultPath, "convention config file (YAML or JSON)")
	fs.StringVar(&flags.ConfigFile, "config-file", conffile.DefaultPath, "convention config file (YAML or JSON)")
	fs.BoolVar(&flags.DryRun, "D", false, "print the migrated schema to stdout instead of writing the file")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "print the migrated schema to stdout instead of writing the file")
	fs.StringVar(&flags.TableCase, "table-case", "", "casing of model and view names: pascal, camel, snake (optionally ,plural or ,singular)")
	fs.StringVar(&flags.FieldCase, "field-case", "", "casing of field names")
	fs.StringVar(&flags.EnumCase, "enum-case", "", "casing of enum names (default: table casing)")
	fs.StringVar(&flags.MapTableCase, "map-table-case", "", "casing of @@map values of models and views")
	fs.StringVar(&flags.MapFieldCase, "map-field-case", "", "casing of @map values of fields")
	fs.StringVar(&flags.MapEnumCase, "map-enum-case", "", "casing of @@map values of enums (default: map table casing)")
	fs.BoolVar(&flags.Pluralize, "p", false, "pluralize the names of list fields")
	fs.BoolVar(&flags.Pluralize, "pluralize", false, "pluralize the names of list fields")
	fs.BoolVar(&flags.UsesNextAuth, "uses-next-auth", false, "keep the NextAuth.js adapter models in their required casing")
	fs.BoolVar(&flags.NoFormat, "no-format", false, "do not align the migrated schema")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log every change to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every change to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schemacase [migrate] [flags]\n\n")
		cliutil.Writef(fs.Output(), "Rename the models, views, enums and fields of a Prisma schema to a casing\n")
		cliutil.Writef(fs.Output(), "convention, keeping database names through @map and @@map.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nConvention Config:\n")
		cliutil.Writef(fs.Output(), "  default: \"table=pascal; field=camel; mapTable=snake; mapField=snake\"\n")
		cliutil.Writef(fs.Output(), "  uses_next_auth: false\n")
		cliutil.Writef(fs.Output(), "  override:\n")
		cliutil.Writef(fs.Output(), "    AuditLog:\n")
		cliutil.Writef(fs.Output(), "      default: \"field=snake\"\n")
		cliutil.Writef(fs.Output(), "      field:\n")
		cliutil.Writef(fs.Output(), "        legacy_id: \"disable\"\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schemacase\n")
		cliutil.Writef(fs.Output(), "  schemacase -f prisma/schema.prisma --dry-run\n")
		cliutil.Writef(fs.Output(), "  schemacase --field-case snake --map-table-case snake -p\n")
		cliutil.Writef(fs.Output(), "  cat schema.prisma | schemacase -q -f - > migrated.prisma\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Schema migrated (or already conforming)\n")
		cliutil.Writef(fs.Output(), "  1    Failed to read, migrate or write the schema\n")
	}

	return fs, flags
}

// HandleMigrate executes the migrate command
func HandleMigrate(args []string) error {
	return RunMigrate(args, os.Stdin, os.Stdout, os.Stderr)
}

// RunMigrate executes the migrate command against the given streams.
func RunMigrate(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupMigrateFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("migrate command takes no arguments; use -f to select the schema file")
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	store, err := buildStore(flags, set)
	if err != nil {
		return err
	}

	opts := []rewriter.Option{
		rewriter.WithStore(store),
		rewriter.WithLogger(NewLogger(flags.Verbose, stderr)),
	}
	fromStdin := flags.File == StdinFilePath
	if fromStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		opts = append(opts, rewriter.WithSource(string(data)))
	} else {
		opts = append(opts, rewriter.WithFilePath(flags.File))
	}

	startTime := time.Now()
	result, err := rewriter.MigrateWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	doc := result.Text
	if !flags.NoFormat {
		doc = prettyprint.Format(doc)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		writeHeader(stderr, "Prisma Schema Migration", flags.File)
		cliutil.Writef(stderr, "Total Time: %v\n\n", totalTime)
		if result.HasChanges() {
			cliutil.Writef(stderr, "Changes (%d):\n", result.ChangeCount)
			for _, c := range result.Changes {
				cliutil.Writef(stderr, "  - line %d: [%s] %s\n", c.Line, c.Type, c.Scope)
			}
			cliutil.Writef(stderr, "\n")
			cliutil.Writef(stderr, "✓ Applied %d change(s)\n", result.ChangeCount)
		} else {
			cliutil.Writef(stderr, "✓ No changes needed - schema already follows the convention\n")
		}
	}

	if flags.DryRun || fromStdin {
		if _, err := io.WriteString(stdout, doc); err != nil {
			return fmt.Errorf("writing migrated schema to stdout: %w", err)
		}
		return nil
	}

	if err := fileutil.WriteFile(flags.File, []byte(doc)); err != nil {
		return fmt.Errorf("writing schema file: %w", err)
	}
	if !flags.Quiet {
		cliutil.Writef(stderr, "\nOutput written to: %s\n", flags.File)
	}
	return nil
}

// buildStore loads the convention config and applies the case flags. The
// pluralize and next-auth flags only apply when given on the command line,
// so a config value is not reset by their defaults.
func buildStore(flags *MigrateFlags, set map[string]bool) (*convention.Store, error) {
	file, err := conffile.Load(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	opts := []convention.Option{
		convention.WithCase(convention.AxisTable, flags.TableCase),
		convention.WithCase(convention.AxisField, flags.FieldCase),
		convention.WithCase(convention.AxisEnum, flags.EnumCase),
		convention.WithCase(convention.AxisMapTable, flags.MapTableCase),
		convention.WithCase(convention.AxisMapField, flags.MapFieldCase),
		convention.WithCase(convention.AxisMapEnum, flags.MapEnumCase),
	}
	if set["p"] || set["pluralize"] {
		opts = append(opts, convention.WithPluralize(flags.Pluralize))
	}
	if set["uses-next-auth"] {
		opts = append(opts, convention.WithNextAuth(flags.UsesNextAuth))
	}
	return convention.New(file, opts...)
}
