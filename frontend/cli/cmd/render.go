package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

func (f *OutputFormat) String() string {
	if f == nil || *f == "" {
		return string(OutputFormatTable)
	}
	return string(*f)
}

func (f *OutputFormat) Set(v string) error {
	switch OutputFormat(v) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		*f = OutputFormat(v)
		return nil
	}
	return errors.New(`must be one of "table", "json", or "yaml"`)
}

func (f *OutputFormat) Type() string {
	return "format"
}

type RenderOptions struct {
	Format OutputFormat
	Wide   bool
}

func addRenderOptions(cmd *cobra.Command, options *RenderOptions) {
	cmd.Flags().VarP(&options.Format, "output", "o", "output format (table, json, yaml)")
	cmd.Flags().BoolVar(&options.Wide, "wide", false, "show all columns in table output")
}

type OutputRenderer interface {
	Render(out io.Writer, resources any, options *RenderOptions) error
}

// DefaultRenderer prints resources as a table or serialized document. Table
// columns are the struct fields tagged with detail:"default", plus the ones
// tagged detail:"wide" when wide output is requested.
type DefaultRenderer struct{}

func (r *DefaultRenderer) Render(out io.Writer, resources any, options *RenderOptions) error {
	switch options.Format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resources)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(resources); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return renderTable(out, resources, options.Wide)
	}
}

func renderTable(out io.Writer, resources any, wide bool) error {
	rows := reflect.ValueOf(resources)
	if rows.Kind() != reflect.Slice {
		wrapped := reflect.MakeSlice(reflect.SliceOf(rows.Type()), 1, 1)
		wrapped.Index(0).Set(rows)
		rows = wrapped
	}

	elemType := rows.Type().Elem()
	if elemType.Kind() == reflect.Pointer {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("cannot render %s as a table", elemType)
	}

	var (
		headers []string
		columns []int
	)
	for i := 0; i < elemType.NumField(); i++ {
		field := elemType.Field(i)
		detail := field.Tag.Get("detail")
		if detail != "default" && !(wide && detail == "wide") {
			continue
		}

		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" {
			name = field.Name
		}
		headers = append(headers, strings.ToUpper(name))
		columns = append(columns, i)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for i := 0; i < rows.Len(); i++ {
		row := reflect.Indirect(rows.Index(i))
		values := make([]string, 0, len(columns))
		for _, column := range columns {
			values = append(values, fmt.Sprint(row.Field(column).Interface()))
		}
		table.Append(values)
	}

	table.Render()
	return nil
}
