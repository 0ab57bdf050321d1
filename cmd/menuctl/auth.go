package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mergestat/timediff"
	"github.com/spf13/cobra"
)

func newLoginCmd(e *env) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión como administrador",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = line
			}

			out, err := e.client.Login(cmd.Context(), username, password)
			if err != nil {
				_ = clearSession(e.opts.SessionFile)
				return err
			}
			if err := saveSession(e.opts.SessionFile, &session{Token: out.Token, User: out.User, LoggedInAt: time.Now().UTC()}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", out.Message, out.User.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Usuario administrador")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Contraseña (si se omite se lee de stdin)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar la sesión de administrador",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			apiErr := e.client.Logout(cmd.Context())
			if apiErr != nil {
				e.log.Warn().Err(apiErr).Msg("logout en la API")
			}
			if err := clearSession(e.opts.SessionFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newStatusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Mostrar la sesión guardada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.session == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s) against %s\n",
				e.session.User.Username, timediff.TimeDiff(e.session.LoggedInAt), e.opts.API)
			return nil
		},
	}
}

// readLine lee una línea de r sin el salto final.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("leer entrada: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
