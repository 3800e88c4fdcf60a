// Comando para crear una cuenta administradora (staff + superuser) desde la
// terminal, sin pasar por el endpoint público de registro.
//
// Uso:
//
//	go run ./cmd/createsuperuser -email admin@example.com -password <secreto> [-name Admin]
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	appauth "github.com/dorozco/pedidos-api/internal/application/auth"
	"github.com/dorozco/pedidos-api/internal/domain/entity"
	"github.com/dorozco/pedidos-api/internal/infrastructure/postgres"
	"github.com/dorozco/pedidos-api/pkg/config"
	"github.com/dorozco/pedidos-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email de la cuenta (requerido)")
	password := flag.String("password", "", "password en texto plano (requerido)")
	name := flag.String("name", "", "nombre a mostrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *email == "" || *password == "" {
		log.Fatal().Msg("uso: createsuperuser -email <email> -password <password> [-name <nombre>]")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplyMigrations(cfg.DB.MigrationsPath, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        appauth.NormalizeEmail(*email),
		Name:         *name,
		PasswordHash: string(hash),
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := postgres.NewUserRepository(pool).Create(user); err != nil {
		log.Fatal().Err(err).Msg("crear superusuario")
	}

	log.Info().Str("email", user.Email).Str("id", user.ID).Msg("superusuario creado")
}
