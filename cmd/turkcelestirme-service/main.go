package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/config"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/customlist"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/database"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/lexicon"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/logger"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/prefs"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/retry"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/server"
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/service"
)

var (
	ServiceVersion string
	GitCommit      string
	BuildDate      string
)

const serviceName = "turkcelestirme-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Kritik Hata: Konfigürasyon yüklenemedi: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(serviceName, cfg.Env, cfg.LogLevel)

	log.Info().
		Str("version", ServiceVersion).
		Str("commit", GitCommit).
		Str("build_date", BuildDate).
		Str("profile", cfg.Env).
		Msg("🚀 Türkçeleştirme servisi başlatılıyor...")

	lex := lexicon.Load(cfg.DataDir, log)

	// Tercih deposu: Postgres yoksa bellek-içi depoyla (geliştirme modu) devam.
	var store prefs.Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := retry.WithExponentialBackoff(ctx, "postgres-connect", func(context.Context) (*sql.DB, error) {
			return database.Connect(cfg.DatabaseURL, log)
		}, 3)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Postgres bağlantısı kurulamadı")
		}
		defer db.Close()

		pgStore, err := prefs.NewPostgresStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("Tercih deposu hazırlanamadı")
		}
		store = pgStore
	} else {
		log.Warn().Msg("DATABASE_URL tanımlı değil, bellek-içi tercih deposu kullanılıyor")
		store = prefs.NewMemoryStore()
	}

	// Özel beyaz liste: Redis opsiyonel, yoksa statik beyaz liste yeter.
	var custom *customlist.List
	if cfg.RedisURL != "" {
		rc, err := database.NewRedisClient(cfg.RedisURL, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis'e ulaşılamadı, özel beyaz liste devre dışı")
		} else {
			defer rc.Close()
			custom = customlist.New(rc.Client, log)
		}
	}

	svc := service.New(lex, store, custom, log)
	httpServer := server.NewHTTPServer(fmt.Sprintf(":%s", cfg.HttpPort), svc, custom, log)

	go func() {
		log.Info().Str("port", cfg.HttpPort).Msg("HTTP sunucusu dinleniyor...")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP sunucusu başlatılamadı")
		}
	}()

	// Graceful shutdown için sinyal dinleyicisi
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn().Msg("Kapatma sinyali alındı, servis durduruluyor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP sunucusu düzgün kapatılamadı.")
	} else {
		log.Info().Msg("HTTP sunucusu durduruldu.")
	}

	log.Info().Msg("Servis başarıyla durduruldu.")
}
