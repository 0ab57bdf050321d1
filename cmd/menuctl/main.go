// menuctl cliente de línea de comandos de la API del menú: carta para clientes y panel admin.
//
// Uso: menuctl --api http://localhost:8080 login -u admin
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
