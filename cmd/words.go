package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/spellit/internal/store"
	"github.com/abhisek/spellit/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the word list",
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all words",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		master := d.inv.Master()

		fmt.Fprintf(out, "%-24s  %s\n", "Word", "Translation")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, e := range master {
			fmt.Fprintf(out, "%-24s  %s\n", e.Key, e.Translation)
		}
		fmt.Fprintf(out, "\n%d words\n", len(master))
		return nil
	},
}

var wordsAddCmd = &cobra.Command{
	Use:   "add [WORD TRANSLATION]",
	Short: "Add one word, or many with --text",
	Args: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		if text != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		var entries []words.Entry
		if text, _ := cmd.Flags().GetString("text"); text != "" {
			raw, err := readInput(cmd, text)
			if err != nil {
				return err
			}
			entries = words.ParseBulk(string(raw), d.cfg.Practice.Delimiter)
		} else {
			e := words.NewEntry(args[0], args[1])
			if !e.Valid() {
				return fmt.Errorf("word and translation must not be empty")
			}
			entries = []words.Entry{e}
		}

		return addEntries(cmd, d, entries)
	},
}

var wordsRemoveCmd = &cobra.Command{
	Use:   "remove WORD...",
	Short: "Remove words from the list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		var missing []string
		for _, key := range args {
			if !d.inv.Contains(words.Normalize(key)) {
				missing = append(missing, key)
				continue
			}
			d.inv.RemoveWord(cmd.Context(), key)
			fmt.Fprintf(out, "Removed %s\n", words.Normalize(key))
		}
		if len(missing) > 0 {
			return fmt.Errorf("not in the word list: %s", strings.Join(missing, ", "))
		}
		return nil
	},
}

var wordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every word (defaults return on next start)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		n := d.inv.Len()
		d.inv.RemoveAll(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d words\n", n)
		return nil
	},
}

var wordsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import words from a .json, .yaml or text file (- for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		raw, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		entries, err := decodeWords(args[0], raw, d.cfg.Practice.Delimiter)
		if err != nil {
			return err
		}
		return addEntries(cmd, d, entries)
	},
}

var wordsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the word list to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		return encodeWords(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, d.inv.Master(), d.cfg.Practice.Delimiter)
	},
}

func init() {
	wordsAddCmd.Flags().String("text", "", "Read \"word - translation\" lines from FILE (- for stdin)")
	wordsExportCmd.Flags().String("format", "json", "Output format: json, yaml or text")

	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsRemoveCmd)
	wordsCmd.AddCommand(wordsClearCmd)
	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsExportCmd)
}

func addEntries(cmd *cobra.Command, d *deps, entries []words.Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no valid words found")
	}
	before := d.inv.Len()
	d.inv.AddWords(cmd.Context(), entries)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d new words (%d total)\n", d.inv.Len()-before, d.inv.Len())
	return nil
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return raw, nil
}

// decodeWords picks a decoder from the file extension. Unknown extensions
// and stdin go through the bulk line parser.
func decodeWords(name string, raw []byte, delimiter string) ([]words.Entry, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		entries, err := store.DecodeWordList(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return words.Normalized(entries), nil
	case ".yaml", ".yml":
		var entries []words.Entry
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return words.Normalized(entries), nil
	default:
		return words.ParseBulk(string(raw), delimiter), nil
	}
}

func encodeWords(w, warn io.Writer, format string, entries []words.Entry, delimiter string) error {
	if entries == nil {
		entries = []words.Entry{}
	}
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(entries)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		text, skipped := words.FormatBulk(entries, delimiter)
		for _, e := range skipped {
			fmt.Fprintf(warn, "skipped %q: contains delimiter %q, use --format json or yaml\n", e.Key, delimiter)
		}
		_, err := io.WriteString(w, text)
		return err
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or text)", format)
	}
}
