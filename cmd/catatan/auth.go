package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	catatanku "github.com/muhzarfan/catatanku"
)

func newRegisterCmd() *cobra.Command {
	var username, email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Daftar akun baru",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Konfirmasi password: ")
			if err != nil {
				return err
			}

			err = a.client.Register(cmd.Context(), catatanku.RegisterRequest{
				Username:        username,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
			})
			if err != nil {
				return errors.New(userMessage(err))
			}

			// Registration does not log in; the account must sign in next.
			fmt.Fprintln(cmd.OutOrStdout(), "Pendaftaran berhasil! Silakan masuk.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Masuk ke akun",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			sess, err := a.client.Login(cmd.Context(), username, password)
			if err != nil {
				return errors.New(userMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Login berhasil sebagai %s!\n", sess.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Keluar dan hapus sesi lokal",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.manager.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logout berhasil!")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Tampilkan sesi aktif",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			sess := a.client.Session()
			if sess == nil {
				return errors.New("Belum login. Jalankan 'catatan login' dulu.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.Username)
			return nil
		},
	}
}

// promptPassword reads a password without echo on a terminal, or a plain
// line when stdin is a pipe (tests, scripts).
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// userMessage maps SDK errors to the wording the user should see. Logs
// carry the diagnostic detail; this is the product voice.
func userMessage(err error) string {
	if catatanku.IsSessionExpired(err) {
		return catatanku.SessionExpiredMessage
	}
	if catatanku.IsConnectionError(err) {
		return "Koneksi gagal atau server bermasalah."
	}
	var fields catatanku.FieldErrors
	if errors.As(err, &fields) {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		lines := make([]string, 0, len(fields))
		for _, name := range names {
			lines = append(lines, fields[name])
		}
		return strings.Join(lines, "\n")
	}
	var apiErr *catatanku.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
