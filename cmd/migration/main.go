package main

import (
	"flag"
	"log"

	"github.com/hugohenrick/filial-service/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	migrationsPath := flag.String("path", "migrations", "Caminho para os arquivos de migração")
	flag.Parse()

	// Executar as migrações
	if err := database.RunMigrations(*migrationsPath); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
