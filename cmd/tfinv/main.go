// tfinv generates an Ansible inventory from Terraform outputs JSON.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	apperrors "tfinv/pkg/errors"
	"tfinv/pkg/inventory"
	"tfinv/pkg/logger"
	"tfinv/pkg/outputs"
)

const defaultOutput = "ansible/inventory/dynamic_hosts.yml"

func main() {
	var (
		outputPath string
		validate   bool
		format     string
		debug      bool
	)
	flag.StringVar(&outputPath, "output", defaultOutput, "Output inventory file path")
	flag.StringVar(&outputPath, "o", defaultOutput, "Output inventory file path (shorthand)")
	flag.BoolVar(&validate, "validate", false, "Validate inventory after generation")
	flag.BoolVar(&validate, "v", false, "Validate inventory after generation (shorthand)")
	flag.StringVar(&format, "format", inventory.FormatYAML, "Output format: yaml or json")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Usage = usage
	flag.Parse()

	level := logger.InfoLevel
	if debug {
		level = logger.DebugLevel
	}
	logger.Init(&logger.Config{Level: level, Output: os.Stderr})

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	if format != inventory.FormatYAML && format != inventory.FormatJSON {
		logger.Errorf("Unsupported output format: %s", format)
		os.Exit(1)
	}

	logger.Debugf("Starting generation run %s", uuid.NewString())

	tfOutputs, err := outputs.Load(flag.Arg(0))
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	inv := inventory.Build(tfOutputs, inventory.DefaultConfig())

	if validate && !inventory.Validate(inv) {
		logger.Errorf("%v", apperrors.NewValidationFailure("Inventory validation failed"))
		os.Exit(1)
	}

	writtenPath, err := inventory.Write(inv, outputPath, format)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	printSummary(inv, writtenPath)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: tfinv [flags] <terraform-outputs.json>")
	fmt.Fprintln(os.Stderr, "Example: tfinv -o ansible/inventory/hosts.yml -validate outputs.json")
	flag.PrintDefaults()
}

func printSummary(inv *inventory.Inventory, path string) {
	webCount := 0
	if web := inv.Webservers(); web != nil && web.Hosts != nil {
		webCount = web.Hosts.Len()
	}
	dbHost, _ := inv.All.Vars.Get("database_host")
	s3Bucket, _ := inv.All.Vars.Get("s3_bucket_name")

	fmt.Println("\nDynamic inventory generated successfully!")
	fmt.Println("Summary:")
	fmt.Printf("  - Web servers: %d\n", webCount)
	fmt.Printf("  - Database host: %v\n", dbHost)
	fmt.Printf("  - S3 bucket: %v\n", s3Bucket)
	fmt.Printf("  - Output file: %s\n", path)
}
