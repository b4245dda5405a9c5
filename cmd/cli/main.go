package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yourorg/dashapi/internal/auth"
	"github.com/yourorg/dashapi/internal/config"
	appdb "github.com/yourorg/dashapi/internal/db"
	"github.com/yourorg/dashapi/internal/store"
)

func main() {
	_ = godotenv.Load()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("==== Dashboards API CLI ====")
		fmt.Println("1) Health check API")
		fmt.Println("2) Seed database (sample users + dashboards)")
		fmt.Println("3) Generate password hash")
		fmt.Println("4) Test DB connection")
		fmt.Println("5) Exit")
		fmt.Print("Select option: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)
		switch choice {
		case "1":
			doHealthCheck()
		case "2":
			doSeed()
		case "3":
			doHashPassword(reader)
		case "4":
			doTestDB()
		case "5":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Invalid option")
		}
		fmt.Println()
	}
}

func doHealthCheck() {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	url := strings.TrimRight(base, "/") + "/api/health"
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Health: ERROR:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("Health status:", resp.Status)
}

func openDB() *sql.DB {
	cfg, err := config.Load()
	if err != nil {
		log.Println("Config error:", err)
		return nil
	}
	db, err := appdb.Connect(cfg)
	if err != nil {
		log.Println("DB connect error:", err)
		return nil
	}
	return db
}

func doSeed() {
	db := openDB()
	if db == nil {
		return
	}
	defer db.Close()
	if err := appdb.EnsureSchema(db); err != nil {
		log.Println("Ensure schema error:", err)
		return
	}
	seedUsers(db)
	seedDashboards(db)
}

func seedUsers(db *sql.DB) {
	users := []struct {
		username string
		password string
		role     string
		sector   sql.NullString
	}{
		{"maria.secretaria", "secretaria123", "secretaria", sql.NullString{}},
		{"joao.financeiro", "gestor123", "gestor", sql.NullString{String: "Financeiro", Valid: true}},
		{"ana.rh", "gestor123", "gestor", sql.NullString{String: "RH", Valid: true}},
	}
	for _, u := range users {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			log.Println("Hash error:", err)
			return
		}
		_, err = db.Exec(`
			INSERT INTO users (username, password_hash, role, sector)
			VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE password_hash = VALUES(password_hash)
		`, u.username, hash, u.role, u.sector)
		if err != nil {
			log.Println("Seed user error:", err)
			return
		}
		fmt.Printf("Seeded user %s (role=%s, password=%s)\n", u.username, u.role, u.password)
	}
}

func seedDashboards(db *sql.DB) {
	dashboards := []struct {
		title       string
		dtype       string
		description string
		updatedDate string
		tags        []string
		sector      string
		url         string
	}{
		{"Fluxo de Caixa", "BI", "Visão consolidada do caixa", "02/06/2025", []string{"caixa", "mensal"}, "Financeiro", "https://bi.example.com/fluxo-caixa"},
		{"Orçamento Anual", "REPORT", "Execução orçamentária por área", "15/05/2025", []string{"orcamento"}, "Financeiro", "https://bi.example.com/orcamento"},
		{"Headcount", "BI", "Quadro de pessoal por unidade", "28/05/2025", []string{"pessoas", "mensal"}, "RH", "https://bi.example.com/headcount"},
		{"Indicadores Gerais", "BI", "Painel executivo da secretaria", "01/06/2025", []string{"executivo"}, "Gabinete", "https://bi.example.com/indicadores"},
	}
	for _, d := range dashboards {
		tags, err := store.EncodeTags(d.tags)
		if err != nil {
			log.Println("Encode tags error:", err)
			return
		}
		_, err = db.Exec(`
			INSERT INTO dashboards (title, type, description, updated_date, tags, sector, url)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, d.title, d.dtype, d.description, d.updatedDate, tags, d.sector, d.url)
		if err != nil {
			log.Println("Seed dashboard error:", err)
			return
		}
		fmt.Printf("Seeded dashboard %q (sector=%s)\n", d.title, d.sector)
	}
}

// doHashPassword prints a bcrypt hash for manual user provisioning.
func doHashPassword(reader *bufio.Reader) {
	fmt.Print("Password: ")
	password, _ := reader.ReadString('\n')
	password = strings.TrimSpace(password)
	if password == "" {
		fmt.Println("Empty password")
		return
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Println("Hash error:", err)
		return
	}
	fmt.Println("Hash (para o banco):", hash)
}

func doTestDB() {
	db := openDB()
	if db == nil {
		return
	}
	defer db.Close()
	var one int
	if err := db.QueryRow(`SELECT 1`).Scan(&one); err != nil {
		fmt.Println("❌ DB connection failed:", err)
		fmt.Println("   Check DB_HOST/DB_PORT/DB_USER/DB_PASS/DB_NAME in your .env")
		return
	}
	fmt.Println("✅ DB connection OK")
}
