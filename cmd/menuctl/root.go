package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/menu-api/pkg/logger"
	"github.com/jhoicas/menu-api/pkg/menuclient"
	"github.com/jhoicas/menu-api/pkg/money"
)

const (
	envAPI         = "MENU_API_URL"
	defaultAPI     = "http://localhost:8080"
	sessionDirName = "menuctl"
)

var errNotLoggedIn = errors.New("no hay sesión activa: ejecute 'menuctl login'")

// rootOptions flags persistentes.
type rootOptions struct {
	API            string
	SessionFile    string
	LogLevel       string
	Timeout        time.Duration
	Currency       string
	CurrencySymbol string
}

// env dependencias resueltas en PersistentPreRunE y compartidas por los subcomandos.
type env struct {
	opts      *rootOptions
	log       *logger.Logger
	client    *menuclient.Client
	session   *session
	formatter *money.Formatter
}

// requireSession falla si no hay sesión persistida.
func (e *env) requireSession() error {
	if e.session == nil {
		return errNotLoggedIn
	}
	return nil
}

// adminErr traduce un 401 de la API en una indicación de volver a iniciar sesión.
func (e *env) adminErr(err error) error {
	if menuclient.IsUnauthorized(err) {
		e.log.Debug().Err(err).Msg("token rechazado por la API")
		return fmt.Errorf("sesión expirada o inválida: ejecute 'menuctl login' (%w)", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	e := &env{opts: opts}

	cmd := &cobra.Command{
		Use:   "menuctl",
		Short: "Cliente de la API del menú del restaurante",
		Long:  `menuctl muestra la carta a clientes y permite al administrador gestionar ítems, ver estadísticas y exportar la carta.`,
		Example: `menuctl browse --category 2
  menuctl login -u admin
  menuctl items add --name "Pad Thai" --price 15.5 --category 1`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
	}

	defaultSession := ""
	if dir, err := os.UserConfigDir(); err == nil {
		defaultSession = filepath.Join(dir, sessionDirName, "session.json")
	}
	apiURL := os.Getenv(envAPI)
	if apiURL == "" {
		apiURL = defaultAPI
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.API, "api", apiURL, "URL base de la API (env "+envAPI+")")
	pf.StringVar(&opts.SessionFile, "session-file", defaultSession, "Archivo donde se guarda la sesión admin")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "Nivel de log (debug, info, warn, error)")
	pf.DurationVar(&opts.Timeout, "timeout", menuclient.DefaultTimeout, "Timeout por petición")
	pf.StringVar(&opts.Currency, "currency", "AUD", "Moneda de visualización (ISO 4217)")
	pf.StringVar(&opts.CurrencySymbol, "currency-symbol", "AU$", "Símbolo de la moneda")

	cmd.AddCommand(
		newLoginCmd(e),
		newLogoutCmd(e),
		newStatusCmd(e),
		newCategoriesCmd(e),
		newBrowseCmd(e),
		newStatsCmd(e),
		newItemsCmd(e),
		newExportCmd(e),
	)
	return cmd
}

func (e *env) setup(cmd *cobra.Command) error {
	e.log = logger.New(logger.Config{Env: "development", Level: e.opts.LogLevel, Out: cmd.ErrOrStderr()})

	formatter, err := money.NewFormatter(e.opts.Currency, e.opts.CurrencySymbol)
	if err != nil {
		return err
	}
	e.formatter = formatter

	sess, err := loadSession(e.opts.SessionFile)
	if err != nil {
		return err
	}
	e.session = sess

	clientOpts := []menuclient.Option{menuclient.WithTimeout(e.opts.Timeout)}
	if sess != nil {
		clientOpts = append(clientOpts, menuclient.WithToken(sess.Token))
	}
	e.client = menuclient.New(e.opts.API, clientOpts...)
	e.log.Debug().Str("api", e.opts.API).Bool("session", sess != nil).Msg("menuctl listo")
	return nil
}
