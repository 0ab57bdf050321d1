package repository

import "context"

// TxRunner ejecuta fn con repositorios atados a una única transacción: Commit si fn devuelve nil, Rollback si no.
// Lo usa el seeder para cargar categorías y usuarios en bloque.
type TxRunner interface {
	Run(ctx context.Context, fn func(users UserRepository, categories CategoryRepository) error) error
}
