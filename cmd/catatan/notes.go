package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	catatanku "github.com/muhzarfan/catatanku"
	"github.com/muhzarfan/catatanku/editor"
	"github.com/muhzarfan/catatanku/tags"
)

func newListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Tampilkan daftar catatan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.manager.Refresh(cmd.Context()); err != nil {
				return errors.New(userMessage(err))
			}

			notes := a.manager.Search(query)
			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				if query != "" {
					fmt.Fprintln(out, "No notes found")
				} else {
					fmt.Fprintln(out, "No notes yet")
				}
				return nil
			}
			for _, n := range notes {
				printNote(out, n)
			}
			fmt.Fprintf(out, "Total: %d catatan\n", len(a.manager.Notes()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Cari catatan, judul, atau tags")
	return cmd
}

func newCreateCmd() *cobra.Command {
	var title, rawTags, content string
	var format formatFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Buat catatan baru",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.manager.Refresh(cmd.Context()); err != nil {
				return errors.New(userMessage(err))
			}
			if err := a.manager.StartCreate(); err != nil {
				return errors.New(userMessage(err))
			}

			a.manager.SetDraftTitle(title)
			a.manager.SetDraftTags(rawTags)

			text, err := contentOrStdin(content)
			if err != nil {
				return err
			}
			composeContent(a.manager, "", text, format)

			if err := saveAndReport(cmd, a.manager); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Judul catatan")
	cmd.Flags().StringVar(&rawTags, "tags", "", "Tags, mis. \"#penting #kerja\"")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Isi catatan (kosong = baca dari stdin)")
	format.register(cmd)
	return cmd
}

func newEditCmd() *cobra.Command {
	var title, rawTags, content string
	var format formatFlags

	cmd := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Ubah catatan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.manager.Refresh(cmd.Context()); err != nil {
				return errors.New(userMessage(err))
			}
			if err := a.manager.StartEdit(args[0]); err != nil {
				return errors.New(userMessage(err))
			}

			if cmd.Flags().Changed("title") {
				a.manager.SetDraftTitle(title)
			}
			if cmd.Flags().Changed("tags") {
				a.manager.SetDraftTags(rawTags)
			}
			if cmd.Flags().Changed("content") || format.any() {
				composeContent(a.manager, a.manager.Draft().Content, content, format)
			}

			if err := saveAndReport(cmd, a.manager); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Judul baru")
	cmd.Flags().StringVar(&rawTags, "tags", "", "Tags baru")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Isi baru")
	format.register(cmd)
	return cmd
}

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Hapus catatan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.manager.Refresh(cmd.Context()); err != nil {
				return errors.New(userMessage(err))
			}

			before := len(a.manager.Notes())
			confirm := func() bool { return yes || promptConfirm("Yakin ingin menghapus catatan ini? [y/N] ") }
			if err := a.manager.Delete(cmd.Context(), args[0], confirm); err != nil {
				return errors.New(userMessage(err))
			}
			if len(a.manager.Notes()) == before {
				fmt.Fprintln(cmd.OutOrStdout(), "Dibatalkan.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Catatan dihapus.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Hapus tanpa konfirmasi")
	return cmd
}

// formatFlags are the whole-content formatting toggles the CLI exposes in
// place of a toolbar.
type formatFlags struct {
	bold      bool
	italic    bool
	underline bool
	bullets   bool
	numbered  bool
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.bold, "bold", false, "Tebalkan seluruh isi")
	cmd.Flags().BoolVar(&f.italic, "italic", false, "Miringkan seluruh isi")
	cmd.Flags().BoolVar(&f.underline, "underline", false, "Garis bawahi seluruh isi")
	cmd.Flags().BoolVar(&f.bullets, "bullets", false, "Jadikan daftar berpoin")
	cmd.Flags().BoolVar(&f.numbered, "numbered", false, "Jadikan daftar bernomor")
}

func (f *formatFlags) any() bool {
	return f.bold || f.italic || f.underline || f.bullets || f.numbered
}

// composeContent runs the new text through the edit surface so escaping,
// line breaks and formatting all produce the same markup the editor
// would. The manager's draft mirrors the surface via its change callback.
func composeContent(m *catatanku.Manager, existing, text string, format formatFlags) {
	surface := editor.New(m.SetDraftContent)
	surface.SetValue(existing)
	surface.Focus()
	defer surface.Blur()

	if text != "" || existing == "" {
		surface.Select(0, len([]rune(surface.Value())))
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			surface.InsertText(line)
			if i < len(lines)-1 {
				surface.NewLine()
			}
		}
	}

	surface.Select(0, len([]rune(surface.Value())))
	if format.bold {
		surface.Apply(editor.Bold)
	}
	if format.italic {
		surface.Apply(editor.Italic)
	}
	if format.underline {
		surface.Apply(editor.Underline)
	}
	if format.bullets {
		surface.Apply(editor.BulletList)
	}
	if format.numbered {
		surface.Apply(editor.NumberedList)
	}
}

// contentOrStdin returns the --content value, or reads the note body from
// stdin until EOF when the flag is empty.
func contentOrStdin(content string) (string, error) {
	if content != "" {
		return content, nil
	}
	fmt.Fprintln(os.Stderr, "Isi catatan (akhiri dengan Ctrl+D):")
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(raw), "\n"), nil
}

func saveAndReport(cmd *cobra.Command, m *catatanku.Manager) error {
	err := m.Save(cmd.Context())
	var stale *catatanku.RefreshError
	switch {
	case errors.As(err, &stale):
		fmt.Fprintln(cmd.OutOrStdout(), "Catatan disimpan, tapi daftar belum diperbarui.")
		return nil
	case err != nil:
		return errors.New(userMessage(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Catatan disimpan.")
	return nil
}

func printNote(out io.Writer, n catatanku.Note) {
	fmt.Fprintf(out, "[%s] %s\n", n.ID, n.Title)
	if n.UpdatedAt != "" && n.UpdatedAt != n.CreatedAt {
		fmt.Fprintf(out, "  Created: %s • Updated: %s\n", n.CreatedAt, n.UpdatedAt)
	} else if n.CreatedAt != "" {
		fmt.Fprintf(out, "  Created: %s\n", n.CreatedAt)
	}
	if extracted := tags.Extract(n.Tags); len(extracted) > 0 {
		fmt.Fprintf(out, "  Tags: %s\n", strings.Join(extracted, " "))
	}
	if n.Content != "" {
		fmt.Fprintf(out, "  %s\n", n.Content)
	}
}

func promptConfirm(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "ya" || answer == "yes"
}
