package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "propostas-backend/internal/adapter/http"
	appmw "propostas-backend/internal/adapter/middleware"
	"propostas-backend/internal/adapter/repository/mysql"
	"propostas-backend/internal/config"
	domain "propostas-backend/internal/domain/proposal"
	"propostas-backend/internal/infrastructure/cache"
	"propostas-backend/internal/infrastructure/db"
	lifecycleuc "propostas-backend/internal/usecase/lifecycle"
	proposaluc "propostas-backend/internal/usecase/proposal"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&domain.Proposal{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	repo := mysql.NewProposalRepository(gdb)
	engine := proposaluc.NewUsecase(repo)
	lifecycle := lifecycleuc.NewUsecase(mysql.NewGormUoW(gdb))

	h := httpadp.NewHandler()
	ph := httpadp.NewProposalHandler(engine)
	sh := httpadp.NewStatusHandler(lifecycle)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)
	e.GET("/proposals", ph.ListProposals)
	e.POST("/proposals", ph.CreateProposal)
	e.GET("/proposals/:proposal_id", ph.GetProposal)
	e.PATCH("/proposals/:proposal_id/status", sh.ChangeStatus)
	e.DELETE("/proposals/:proposal_id", ph.DeleteProposal)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
