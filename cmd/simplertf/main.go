// Command simplertf builds RTF documents from declarative inputs.
// It accepts authoring scripts (.rtfs), JSON and XML document
// descriptions, and simple HTML, and writes the rendered .rtf artifact
// (optionally xz-compressed and recorded in a build catalog).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/xavi-mat/simplertf/core/rtf"
	"github.com/xavi-mat/simplertf/core/script"
	"github.com/xavi-mat/simplertf/internal/catalog"
	"github.com/xavi-mat/simplertf/internal/fileutil"
	"github.com/xavi-mat/simplertf/internal/formats/htmldoc"
	"github.com/xavi-mat/simplertf/internal/formats/jsondoc"
	"github.com/xavi-mat/simplertf/internal/formats/xmldoc"
	"github.com/xavi-mat/simplertf/internal/logging"
)

// CLI defines the command-line interface for simplertf.
var CLI struct {
	// Global flags
	Verbose bool `name:"verbose" short:"v" help:"Enable debug logging"`
	LogJSON bool `name:"log-json" help:"Log in JSON format"`

	Build   BuildCmd   `cmd:"" help:"Build an RTF document from a script, JSON, XML, or HTML input"`
	Layouts LayoutsCmd `cmd:"" help:"List the known layout presets"`
	Catalog CatalogCmd `cmd:"" help:"List recorded builds"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// BuildCmd builds one document.
type BuildCmd struct {
	Input    string `arg:"" help:"Input file (.rtfs, .json, .xml, .html)" type:"existingfile"`
	Output   string `name:"output" short:"o" help:"Output path (default: input name with .rtf)"`
	Format   string `name:"format" short:"f" enum:"auto,script,json,xml,html" default:"auto" help:"Input format (default: by extension)"`
	Layout   string `name:"layout" help:"Layout preset applied after the input's own layout"`
	Compress bool   `name:"compress" short:"z" help:"Write an xz-compressed artifact (.rtf.xz)"`
	Catalog  string `name:"catalog" help:"Record the build in this catalog database" type:"path"`
}

// detectFormat maps a file extension to an input format name.
func detectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rtfs", ".script":
		return "script", nil
	case ".json":
		return "json", nil
	case ".xml":
		return "xml", nil
	case ".html", ".htm":
		return "html", nil
	}
	return "", fmt.Errorf("cannot detect input format of %q; use --format", path)
}

// Run executes the build command.
func (c *BuildCmd) Run() error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	format := c.Format
	if format == "" || format == "auto" {
		format, err = detectFormat(c.Input)
		if err != nil {
			return err
		}
	}

	tpl := rtf.DefaultTemplate()
	if err := tpl.Validate(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	var doc *rtf.Document
	switch format {
	case "script":
		doc, err = script.Build(filepath.Base(c.Input), data, tpl)
	case "json":
		doc, err = jsondoc.Build(data, tpl)
	case "xml":
		doc, err = xmldoc.Build(data, tpl)
	case "html":
		doc, err = htmldoc.Build(data, tpl)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to build document: %w", err)
	}

	if c.Layout != "" {
		if err := doc.SetLayout(c.Layout, rtf.LayoutOverrides{}); err != nil {
			return err
		}
	}

	output := c.Output
	if output == "" {
		base := strings.TrimSuffix(c.Input, filepath.Ext(c.Input))
		output = base + rtf.Extension
	}

	rendered := doc.Render()
	if c.Compress {
		if !strings.HasSuffix(output, ".xz") {
			output += ".xz"
		}
		err = fileutil.WriteFileXZ(output, rendered)
	} else {
		err = fileutil.WriteFile(output, rendered)
	}
	if err != nil {
		return err
	}

	if c.Catalog != "" {
		cat, err := catalog.Open(c.Catalog)
		if err != nil {
			return err
		}
		defer cat.Close()
		entry, err := cat.Record(doc.Title, doc.Author, output, rendered)
		if err != nil {
			return err
		}
		logging.Info("build recorded", "id", entry.ID, "checksum", entry.Checksum)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", output, len(rendered))
	return nil
}

// LayoutsCmd prints the known layout presets.
type LayoutsCmd struct{}

// Run executes the layouts command.
func (c *LayoutsCmd) Run() error {
	for _, name := range rtf.PresetNames() {
		fmt.Println(name)
	}
	return nil
}

// CatalogCmd lists recorded builds.
type CatalogCmd struct {
	Path string `arg:"" help:"Catalog database path" type:"path"`
}

// Run executes the catalog command.
func (c *CatalogCmd) Run() error {
	cat, err := catalog.Open(c.Path)
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s  %s  %.12s  %s  %q\n",
			e.Created.Format("2006-01-02 15:04"), e.ID, e.Checksum, e.Path, e.Title)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Printf("simplertf %s\n", rtf.Version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("simplertf"),
		kong.Description("Build RTF documents from declarative inputs."),
		kong.UsageOnError(),
	)

	level := logging.LevelWarn
	if CLI.Verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "simplertf: %v\n", err)
		os.Exit(1)
	}
}
