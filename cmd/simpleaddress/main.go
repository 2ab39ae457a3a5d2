package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llpg-simpleaddress/internal/address"
	"github.com/llpg-simpleaddress/internal/config"
	"github.com/llpg-simpleaddress/internal/db"
	import_pkg "github.com/llpg-simpleaddress/internal/import"
	"github.com/llpg-simpleaddress/internal/label"
	"github.com/llpg-simpleaddress/internal/llpg"
	"github.com/llpg-simpleaddress/internal/parse"
	"github.com/llpg-simpleaddress/internal/parse/libpostal"
	"github.com/llpg-simpleaddress/internal/web"
)

var (
	cfg        *config.Config
	configFile string
	debugFlag  bool
	jsonOutput bool
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "simpleaddress",
		Short: "Compose UK addresses into simple address lines",
		Long:  `Lays out Royal Mail PAF and BS7666 gazetteer addresses as presentational address lines`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				log.Fatalf("Failed to load config: %v", err)
			}
			if debugFlag {
				cfg.Debug = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "simpleaddress.yaml", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	rootCmd.AddCommand(createPAFCmd())
	rootCmd.AddCommand(createBS7666Cmd())
	rootCmd.AddCommand(createParseCmd())
	rootCmd.AddCommand(createImportCmd())
	rootCmd.AddCommand(createLabelCmd())
	rootCmd.AddCommand(createLLPGCmd())
	rootCmd.AddCommand(createServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newComposer() *address.Composer {
	return address.NewComposer(cfg.AddressOptions())
}

func connect(ctx context.Context) *db.Connection {
	conn, err := db.NewConnection(ctx, cfg.Database.URL, cfg.Database.MaxConnections)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return conn
}

// printAddress writes the composed lines, one per line, or as JSON
func printAddress(sa address.SimpleAddress) {
	if jsonOutput {
		out := struct {
			Lines  []string       `json:"lines"`
			Tagged []address.Line `json:"tagged"`
			Text   string         `json:"text"`
		}{sa.Lines(), sa.Tagged(), sa.String()}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("Failed to encode output: %v", err)
		}
		return
	}

	for _, line := range sa.Lines() {
		fmt.Println(line)
	}
}

// createPAFCmd composes a PAF address given as flags
func createPAFCmd() *cobra.Command {
	var a address.PAFAddress

	cmd := &cobra.Command{
		Use:   "paf",
		Short: "Compose a Royal Mail PAF address",
		Example: `  simpleaddress paf --building-number 14 --thoroughfare "HIGH STREET" \
    --post-town LEWES --postcode BN71AB`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !a.HasAddress() {
				log.Fatal("No address fields given")
			}
			printAddress(newComposer().Compose(a))
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.OrganisationName, "organisation", "", "Organisation name (ON)")
	f.StringVar(&a.DepartmentName, "department", "", "Department name (DP)")
	f.StringVar(&a.POBoxNumber, "po-box", "", "PO box number (PB)")
	f.StringVar(&a.SubBuildingName, "sub-building", "", "Sub-building name (SB)")
	f.StringVar(&a.BuildingName, "building-name", "", "Building name (BD)")
	f.StringVar(&a.BuildingNumber, "building-number", "", "Building number (BN)")
	f.StringVar(&a.DependentThoroughfareName, "dependent-thoroughfare", "", "Dependent thoroughfare (DR)")
	f.StringVar(&a.ThoroughfareName, "thoroughfare", "", "Thoroughfare (TN)")
	f.StringVar(&a.DoubleDependentLocalityName, "double-dependent-locality", "", "Double dependent locality (DD)")
	f.StringVar(&a.DependentLocalityName, "dependent-locality", "", "Dependent locality (DL)")
	f.StringVar(&a.PostTown, "post-town", "", "Post town (PT)")
	f.StringVar(&a.PostalCounty, "county", "", "Postal county (CN)")
	f.StringVar(&a.Postcode, "postcode", "", "Postcode (PC)")

	return cmd
}

// createBS7666Cmd composes a gazetteer address given as flags
func createBS7666Cmd() *cobra.Command {
	var uprn, usrn, saon, paon, street, locality, town, area, postcode string

	cmd := &cobra.Command{
		Use:   "bs7666",
		Short: "Compose a BS7666 gazetteer address",
		Example: `  simpleaddress bs7666 --saon "FLAT 3" --paon "ROSE COURT" --street "MILL LANE" \
    --town LEWES --postcode "BN7 2AA"`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a := address.NewBS7666Address(uprn, usrn, paon, saon, street, locality, town, area, postcode)
			if !a.HasAddress() {
				log.Fatal("No address fields given")
			}
			printAddress(newComposer().Compose(a))
		},
	}

	f := cmd.Flags()
	f.StringVar(&uprn, "uprn", "", "Unique property reference number")
	f.StringVar(&usrn, "usrn", "", "Unique street reference number")
	f.StringVar(&saon, "saon", "", "Secondary addressable object name")
	f.StringVar(&paon, "paon", "", "Primary addressable object name")
	f.StringVar(&street, "street", "", "Street name")
	f.StringVar(&locality, "locality", "", "Locality")
	f.StringVar(&town, "town", "", "Town")
	f.StringVar(&area, "area", "", "Administrative area")
	f.StringVar(&postcode, "postcode", "", "Postcode")

	return cmd
}

// createParseCmd parses free text with libpostal and composes the result
func createParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [address text]",
		Short: "Parse a free-text address and compose it as PAF",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			text := strings.Join(args, " ")
			components := libpostal.Parse(text)
			if len(components) == 0 {
				log.Fatalf("libpostal found no components in %q", text)
			}

			if !jsonOutput {
				fmt.Println("Components:")
				for _, c := range components {
					fmt.Printf("   %-15s: %s\n", c.Label, c.Value)
				}
				fmt.Println("\nSimple address:")
			}
			printAddress(newComposer().Compose(parse.ToPAF(components)))
		},
	}
}

// createImportCmd composes every row of a PAF or BS7666 CSV file
func createImportCmd() *cobra.Command {
	var schemaName string

	cmd := &cobra.Command{
		Use:   "import [input.csv] [output.csv]",
		Short: "Compose a PAF or BS7666 CSV file into simple address lines",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			schema, err := import_pkg.ParseSchema(schemaName)
			if err != nil {
				log.Fatal(err)
			}

			importer := import_pkg.NewCSVImporter(newComposer(), cfg.Debug)
			stats, err := importer.ImportFile(args[0], args[1], schema)
			if err != nil {
				log.Fatalf("Failed to import %s: %v", args[0], err)
			}

			fmt.Printf("Read %d records, wrote %d, skipped %d\n", stats.Read, stats.Written, stats.Skipped)
		},
	}

	cmd.Flags().StringVar(&schemaName, "schema", string(import_pkg.SchemaPAF), "Input layout: paf or bs7666")
	return cmd
}

// createLabelCmd prints a source CSV file as a PDF sheet of address labels
func createLabelCmd() *cobra.Command {
	var schemaName, fontFile string

	cmd := &cobra.Command{
		Use:   "label [input.csv] [output.pdf]",
		Short: "Render a PAF or BS7666 CSV file as A4 address labels",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			schema, err := import_pkg.ParseSchema(schemaName)
			if err != nil {
				log.Fatal(err)
			}
			if fontFile == "" {
				fontFile = cfg.Label.FontFile
			}
			if fontFile == "" {
				log.Fatal("No font file: set label.font_file, LABEL_FONT_FILE or --font")
			}

			layout := label.Layout{Columns: cfg.Label.Columns, Rows: cfg.Label.Rows, Margin: 10, Padding: 4}
			sheet, err := label.NewSheet(fontFile, layout, cfg.Label.FontSize)
			if err != nil {
				log.Fatalf("Failed to create label sheet: %v", err)
			}

			in, err := os.Open(args[0])
			if err != nil {
				log.Fatalf("Failed to open %s: %v", args[0], err)
			}
			defer in.Close()

			importer := import_pkg.NewCSVImporter(newComposer(), cfg.Debug)
			stats, err := importer.Each(in, schema, func(key string, sa address.SimpleAddress) error {
				return sheet.Add(sa)
			})
			if err != nil {
				log.Fatalf("Failed to render labels: %v", err)
			}

			if err := sheet.Save(args[1]); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Wrote %d labels to %s (%d records skipped)\n", sheet.Count(), args[1], stats.Skipped)
		},
	}

	cmd.Flags().StringVar(&schemaName, "schema", string(import_pkg.SchemaPAF), "Input layout: paf or bs7666")
	cmd.Flags().StringVar(&fontFile, "font", "", "TrueType font file (overrides config)")
	return cmd
}

// createLLPGCmd groups the gazetteer database commands
func createLLPGCmd() *cobra.Command {
	llpgCmd := &cobra.Command{
		Use:   "llpg",
		Short: "Compose addresses held in the LLPG database",
	}

	llpgCmd.AddCommand(createLLPGInitCmd())
	llpgCmd.AddCommand(createLLPGRenderCmd())
	llpgCmd.AddCommand(createLLPGShowCmd())
	llpgCmd.AddCommand(createLLPGPostcodeCmd())

	return llpgCmd
}

func createLLPGInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the gazetteer and simple address tables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			conn := connect(ctx)
			defer conn.Close()

			if err := llpg.NewStore(conn.DB).InitSchema(ctx); err != nil {
				log.Fatal(err)
			}
			fmt.Println("Schema ready")
		},
	}
}

func createLLPGRenderCmd() *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose every gazetteer address into llpg_simple_address",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			conn := connect(ctx)
			defer conn.Close()

			n, err := llpg.NewStore(conn.DB).RenderAll(ctx, newComposer(), batchSize, cfg.Debug)
			if err != nil {
				log.Fatalf("Render stopped after %d addresses: %v", n, err)
			}
			fmt.Printf("Rendered %d addresses\n", n)
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 1000, "Addresses per transaction")
	return cmd
}

func createLLPGShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [uprn]",
		Short: "Compose one gazetteer address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			conn := connect(ctx)
			defer conn.Close()

			addr, err := llpg.NewStore(conn.DB).Get(ctx, args[0])
			if err != nil {
				log.Fatal(err)
			}
			printAddress(newComposer().Compose(addr))
		},
	}
}

func createLLPGPostcodeCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "postcode [postcode]",
		Short: "Compose every gazetteer address in a postcode",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			conn := connect(ctx)
			defer conn.Close()

			postcode := strings.Join(args, " ")
			addrs, err := llpg.NewStore(conn.DB).ByPostcode(ctx, postcode, limit)
			if err != nil {
				log.Fatal(err)
			}

			composer := newComposer()
			for _, addr := range addrs {
				fmt.Printf("%s\t%s\n", addr.Uprn, composer.Compose(addr).String())
			}
			fmt.Printf("%d addresses in %s\n", len(addrs), address.FormatPostcode(postcode))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum addresses to list")
	return cmd
}

// createServeCmd starts the HTTP API
func createServeCmd() *cobra.Command {
	var noDB bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compose and gazetteer HTTP API",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts := []web.Option{
				web.WithParser(func(text string) address.PAFAddress {
					return libpostal.ParsePAF(text, cfg.Debug)
				}),
			}

			if !noDB {
				conn := connect(cmd.Context())
				defer conn.Close()
				opts = append(opts, web.WithDatabase(conn.DB))
			}

			if err := web.NewServer(cfg, opts...).Start(); err != nil {
				log.Fatal(err)
			}
		},
	}

	cmd.Flags().BoolVar(&noDB, "no-db", false, "Serve the compose routes only, without the gazetteer")
	return cmd
}
